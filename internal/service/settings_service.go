package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/zerobudget/backend/internal/apperror"
	"github.com/zerobudget/backend/internal/model"
	"github.com/zerobudget/backend/pkg/currency"
)

// SettingsRepoInterface defines the contract for settings data access.
type SettingsRepoInterface interface {
	Get(ctx context.Context) (*model.Settings, error)
	Update(ctx context.Context, settings *model.Settings) error
}

// SettingsService manages the settings singleton. The current month field
// is advanced only by the month-close flow, never through this service.
type SettingsService struct {
	repo SettingsRepoInterface
}

// NewSettingsService creates a new SettingsService with the given repository.
func NewSettingsService(repo SettingsRepoInterface) *SettingsService {
	return &SettingsService{repo: repo}
}

type UpdateSettingsInput struct {
	MonthlyIncome *decimal.Decimal `json:"monthlyIncome,omitempty"`
	Currency      *string          `json:"currency,omitempty"`
}

// Get returns the settings, created with defaults on first access.
func (s *SettingsService) Get(ctx context.Context) (*model.Settings, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting settings: %w", err)
	}
	return settings, nil
}

// Update applies the provided fields, leaving absent ones untouched.
func (s *SettingsService) Update(ctx context.Context, input UpdateSettingsInput) (*model.Settings, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching settings for update: %w", err)
	}

	if input.MonthlyIncome != nil {
		if input.MonthlyIncome.IsNegative() {
			return nil, apperror.ValidationError("monthlyIncome", "must not be negative")
		}
		settings.MonthlyIncome = *input.MonthlyIncome
	}
	if input.Currency != nil {
		code := currency.Currency(*input.Currency)
		if !currency.IsValid(code) {
			return nil, apperror.ValidationError("currency", fmt.Sprintf("unsupported currency %q", *input.Currency))
		}
		settings.Currency = code
	}

	if err := s.repo.Update(ctx, settings); err != nil {
		return nil, fmt.Errorf("updating settings: %w", err)
	}

	return settings, nil
}

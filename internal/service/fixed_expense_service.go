package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/zerobudget/backend/internal/apperror"
	"github.com/zerobudget/backend/internal/model"
)

// FixedExpenseRepoInterface defines the contract for fixed expense data access.
type FixedExpenseRepoInterface interface {
	Create(ctx context.Context, expense *model.FixedExpense) error
	GetByID(ctx context.Context, id string) (*model.FixedExpense, error)
	List(ctx context.Context) ([]model.FixedExpense, error)
	Update(ctx context.Context, expense *model.FixedExpense) error
	Delete(ctx context.Context, id string) error
	NextSortOrder(ctx context.Context) (int, error)
}

// FixedExpenseService handles business logic for recurring monthly costs.
// Fixed expenses carry no category and no date; they count against every
// month until deleted.
type FixedExpenseService struct {
	repo FixedExpenseRepoInterface
}

// NewFixedExpenseService creates a new FixedExpenseService with the given repository.
func NewFixedExpenseService(repo FixedExpenseRepoInterface) *FixedExpenseService {
	return &FixedExpenseService{repo: repo}
}

type CreateFixedExpenseInput struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

type UpdateFixedExpenseInput struct {
	Name   *string          `json:"name,omitempty"`
	Amount *decimal.Decimal `json:"amount,omitempty"`
	Order  *int             `json:"order,omitempty"`
}

// Create adds a fixed expense at the end of the list.
func (s *FixedExpenseService) Create(ctx context.Context, input CreateFixedExpenseInput) (*model.FixedExpense, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.ValidationError("name", "must not be empty")
	}
	if input.Amount.IsNegative() {
		return nil, apperror.ValidationError("amount", "must not be negative")
	}

	sortOrder, err := s.repo.NextSortOrder(ctx)
	if err != nil {
		return nil, fmt.Errorf("computing sort order: %w", err)
	}

	expense := &model.FixedExpense{
		Name:      name,
		Amount:    input.Amount,
		SortOrder: sortOrder,
	}
	if err := s.repo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("creating fixed expense: %w", err)
	}

	return expense, nil
}

// Get retrieves a fixed expense by its ID.
func (s *FixedExpenseService) Get(ctx context.Context, id string) (*model.FixedExpense, error) {
	expense, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting fixed expense %s: %w", id, err)
	}
	return expense, nil
}

// List retrieves all fixed expenses in display order.
func (s *FixedExpenseService) List(ctx context.Context) ([]model.FixedExpense, error) {
	expenses, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing fixed expenses: %w", err)
	}
	return expenses, nil
}

// Update applies the provided fields, leaving absent ones untouched.
func (s *FixedExpenseService) Update(ctx context.Context, id string, input UpdateFixedExpenseInput) (*model.FixedExpense, error) {
	expense, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching fixed expense %s for update: %w", id, err)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, apperror.ValidationError("name", "must not be empty")
		}
		expense.Name = name
	}
	if input.Amount != nil {
		if input.Amount.IsNegative() {
			return nil, apperror.ValidationError("amount", "must not be negative")
		}
		expense.Amount = *input.Amount
	}
	if input.Order != nil {
		expense.SortOrder = *input.Order
	}

	if err := s.repo.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("updating fixed expense %s: %w", id, err)
	}

	return expense, nil
}

// Delete removes a fixed expense. Deleting an absent id is not an error.
func (s *FixedExpenseService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting fixed expense %s: %w", id, err)
	}
	return nil
}

// Total sums all fixed expense amounts.
func (s *FixedExpenseService) Total(ctx context.Context) (decimal.Decimal, error) {
	expenses, err := s.repo.List(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("listing fixed expenses for total: %w", err)
	}
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total, nil
}

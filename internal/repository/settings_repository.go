package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/zerobudget/backend/internal/model"
	"github.com/zerobudget/backend/pkg/currency"
	"github.com/zerobudget/backend/pkg/datetime"
)

type SettingsRepository struct {
	db *sqlx.DB
}

func NewSettingsRepository(db *sqlx.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get returns the settings singleton, creating it with defaults on first
// access. Absence is the documented bootstrap state, not an error.
func (r *SettingsRepository) Get(ctx context.Context) (*model.Settings, error) {
	var settings model.Settings
	err := r.db.GetContext(ctx, &settings, `SELECT * FROM settings WHERE id = ?`, model.SettingsID)
	if errors.Is(err, sql.ErrNoRows) {
		return r.bootstrap(ctx)
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Update persists the full settings record and bumps updated_at.
func (r *SettingsRepository) Update(ctx context.Context, settings *model.Settings) error {
	settings.UpdatedAt = time.Now().UTC()
	query := `
		UPDATE settings
		SET monthly_income = ?, currency = ?, current_month = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		settings.MonthlyIncome, settings.Currency, settings.CurrentMonth,
		settings.UpdatedAt, model.SettingsID,
	)
	return err
}

func (r *SettingsRepository) bootstrap(ctx context.Context) (*model.Settings, error) {
	now := time.Now().UTC()
	settings := &model.Settings{
		ID:            model.SettingsID,
		MonthlyIncome: decimal.Zero,
		Currency:      currency.Default,
		CurrentMonth:  datetime.CurrentMonth(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	query := `
		INSERT OR IGNORE INTO settings (id, monthly_income, currency, current_month, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query,
		settings.ID, settings.MonthlyIncome, settings.Currency,
		settings.CurrentMonth, settings.CreatedAt, settings.UpdatedAt,
	); err != nil {
		return nil, err
	}

	// Re-read in case a concurrent bootstrap won the insert.
	var stored model.Settings
	if err := r.db.GetContext(ctx, &stored, `SELECT * FROM settings WHERE id = ?`, model.SettingsID); err != nil {
		return nil, err
	}
	return &stored, nil
}

package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/zerobudget/backend/internal/model"
)

// BackupRepository reads and replaces the entire data set. It backs the
// export/import flow, where a restore must atomically swap everything.
type BackupRepository struct {
	db *sqlx.DB
}

func NewBackupRepository(db *sqlx.DB) *BackupRepository {
	return &BackupRepository{db: db}
}

// Snapshot reads every collection in one consistent view.
func (r *BackupRepository) Snapshot(ctx context.Context) (*model.BackupData, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin snapshot: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	data := &model.BackupData{
		FixedExpenses:   []model.FixedExpense{},
		Categories:      []model.Category{},
		Expenses:        []model.Expense{},
		MonthlyArchives: []model.MonthlyArchive{},
	}

	var settings model.Settings
	if err := tx.GetContext(ctx, &settings, `SELECT * FROM settings WHERE id = ?`, model.SettingsID); err == nil {
		data.Settings = &settings
	}

	if err := tx.SelectContext(ctx, &data.FixedExpenses,
		`SELECT * FROM fixed_expenses ORDER BY sort_order, created_at`); err != nil {
		return nil, fmt.Errorf("snapshot fixed expenses: %w", err)
	}
	if err := tx.SelectContext(ctx, &data.Categories,
		`SELECT * FROM categories ORDER BY sort_order, created_at`); err != nil {
		return nil, fmt.Errorf("snapshot categories: %w", err)
	}
	if err := tx.SelectContext(ctx, &data.Expenses,
		`SELECT * FROM expenses ORDER BY date, created_at`); err != nil {
		return nil, fmt.Errorf("snapshot expenses: %w", err)
	}
	if err := tx.SelectContext(ctx, &data.MonthlyArchives,
		`SELECT * FROM monthly_archives ORDER BY month`); err != nil {
		return nil, fmt.Errorf("snapshot archives: %w", err)
	}

	return data, tx.Commit()
}

// ReplaceAll wipes every collection and loads the given data in a single
// transaction. Either the whole restore lands or none of it does.
func (r *BackupRepository) ReplaceAll(ctx context.Context, data *model.BackupData) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin restore: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Expenses reference categories, so they go first on the way out
	// and last on the way in.
	for _, table := range []string{"expenses", "fixed_expenses", "monthly_archives", "categories", "settings"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	if data.Settings != nil {
		query := `
			INSERT INTO settings (id, monthly_income, currency, current_month, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)`
		s := data.Settings
		if _, err := tx.ExecContext(ctx, query,
			model.SettingsID, s.MonthlyIncome, s.Currency, s.CurrentMonth, s.CreatedAt, s.UpdatedAt,
		); err != nil {
			return fmt.Errorf("restore settings: %w", err)
		}
	}

	for _, fe := range data.FixedExpenses {
		query := `
			INSERT INTO fixed_expenses (id, name, amount, sort_order, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)`
		if _, err := tx.ExecContext(ctx, query,
			fe.ID, fe.Name, fe.Amount, fe.SortOrder, fe.CreatedAt, fe.UpdatedAt,
		); err != nil {
			return fmt.Errorf("restore fixed expense %s: %w", fe.ID, err)
		}
	}

	for _, c := range data.Categories {
		query := `
			INSERT INTO categories (id, name, budget_limit, color, sort_order, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`
		if _, err := tx.ExecContext(ctx, query,
			c.ID, c.Name, c.BudgetLimit, c.Color, c.SortOrder, c.CreatedAt, c.UpdatedAt,
		); err != nil {
			return fmt.Errorf("restore category %s: %w", c.ID, err)
		}
	}

	for _, e := range data.Expenses {
		query := `
			INSERT INTO expenses (id, category_id, description, amount, date, month, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
		if _, err := tx.ExecContext(ctx, query,
			e.ID, e.CategoryID, e.Description, e.Amount, e.Date, e.Month, e.CreatedAt, e.UpdatedAt,
		); err != nil {
			return fmt.Errorf("restore expense %s: %w", e.ID, err)
		}
	}

	for _, a := range data.MonthlyArchives {
		query := `
			INSERT INTO monthly_archives (id, month, closed_at, summary, fixed_expenses, categories, expenses)
			VALUES (?, ?, ?, ?, ?, ?, ?)`
		if _, err := tx.ExecContext(ctx, query,
			a.ID, a.Month, a.ClosedAt, a.Summary, a.FixedExpenses, a.Categories, a.Expenses,
		); err != nil {
			return fmt.Errorf("restore archive %s: %w", a.Month, err)
		}
	}

	return tx.Commit()
}

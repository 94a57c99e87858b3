package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/zerobudget/backend/internal/model"
	"github.com/zerobudget/backend/pkg/datetime"
)

var ErrExpenseNotFound = errors.New("expense not found")

type ExpenseRepository struct {
	db *sqlx.DB
}

func NewExpenseRepository(db *sqlx.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) Create(ctx context.Context, expense *model.Expense) error {
	expense.ID = uuid.NewString()
	expense.Month = expense.Date.MonthKey()
	now := time.Now().UTC()
	expense.CreatedAt = now
	expense.UpdatedAt = now

	query := `
		INSERT INTO expenses (id, category_id, description, amount, date, month, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		expense.ID, expense.CategoryID, expense.Description, expense.Amount,
		expense.Date, expense.Month, expense.CreatedAt, expense.UpdatedAt,
	)
	return err
}

func (r *ExpenseRepository) GetByID(ctx context.Context, id string) (*model.Expense, error) {
	var expense model.Expense
	err := r.db.GetContext(ctx, &expense, `SELECT * FROM expenses WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrExpenseNotFound
	}
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

// List returns every expense across all months, most recent date first.
func (r *ExpenseRepository) List(ctx context.Context) ([]model.Expense, error) {
	expenses := []model.Expense{}
	query := `SELECT * FROM expenses ORDER BY date DESC, created_at DESC`
	err := r.db.SelectContext(ctx, &expenses, query)
	return expenses, err
}

// ListByMonth is the primary access path for aggregation: every expense
// whose month partition matches, most recent date first.
func (r *ExpenseRepository) ListByMonth(ctx context.Context, month datetime.MonthKey) ([]model.Expense, error) {
	expenses := []model.Expense{}
	query := `SELECT * FROM expenses WHERE month = ? ORDER BY date DESC, created_at DESC`
	err := r.db.SelectContext(ctx, &expenses, query, month)
	return expenses, err
}

// ListByCategoryAndMonth returns one category's expenses for a month,
// most recent date first.
func (r *ExpenseRepository) ListByCategoryAndMonth(ctx context.Context, categoryID string, month datetime.MonthKey) ([]model.Expense, error) {
	expenses := []model.Expense{}
	query := `
		SELECT * FROM expenses
		WHERE category_id = ? AND month = ?
		ORDER BY date DESC, created_at DESC`
	err := r.db.SelectContext(ctx, &expenses, query, categoryID, month)
	return expenses, err
}

// Update persists the full record. The month partition is recomputed from
// the date so the two can never diverge.
func (r *ExpenseRepository) Update(ctx context.Context, expense *model.Expense) error {
	expense.Month = expense.Date.MonthKey()
	expense.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE expenses
		SET category_id = ?, description = ?, amount = ?, date = ?, month = ?, updated_at = ?
		WHERE id = ?`
	result, err := r.db.ExecContext(ctx, query,
		expense.CategoryID, expense.Description, expense.Amount,
		expense.Date, expense.Month, expense.UpdatedAt, expense.ID,
	)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrExpenseNotFound
	}
	return nil
}

// Delete removes an expense. Deleting an absent id is a no-op.
func (r *ExpenseRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, id)
	return err
}

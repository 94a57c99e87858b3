package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/zerobudget/backend/internal/model"
)

var ErrFixedExpenseNotFound = errors.New("fixed expense not found")

type FixedExpenseRepository struct {
	db *sqlx.DB
}

func NewFixedExpenseRepository(db *sqlx.DB) *FixedExpenseRepository {
	return &FixedExpenseRepository{db: db}
}

func (r *FixedExpenseRepository) Create(ctx context.Context, expense *model.FixedExpense) error {
	expense.ID = uuid.NewString()
	now := time.Now().UTC()
	expense.CreatedAt = now
	expense.UpdatedAt = now

	query := `
		INSERT INTO fixed_expenses (id, name, amount, sort_order, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		expense.ID, expense.Name, expense.Amount, expense.SortOrder,
		expense.CreatedAt, expense.UpdatedAt,
	)
	return err
}

func (r *FixedExpenseRepository) GetByID(ctx context.Context, id string) (*model.FixedExpense, error) {
	var expense model.FixedExpense
	err := r.db.GetContext(ctx, &expense, `SELECT * FROM fixed_expenses WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrFixedExpenseNotFound
	}
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *FixedExpenseRepository) List(ctx context.Context) ([]model.FixedExpense, error) {
	expenses := []model.FixedExpense{}
	query := `SELECT * FROM fixed_expenses ORDER BY sort_order, created_at`
	err := r.db.SelectContext(ctx, &expenses, query)
	return expenses, err
}

func (r *FixedExpenseRepository) Update(ctx context.Context, expense *model.FixedExpense) error {
	expense.UpdatedAt = time.Now().UTC()
	query := `
		UPDATE fixed_expenses
		SET name = ?, amount = ?, sort_order = ?, updated_at = ?
		WHERE id = ?`
	result, err := r.db.ExecContext(ctx, query,
		expense.Name, expense.Amount, expense.SortOrder, expense.UpdatedAt, expense.ID,
	)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrFixedExpenseNotFound
	}
	return nil
}

// Delete removes a fixed expense. Deleting an absent id is a no-op: the
// record is treated as already deleted.
func (r *FixedExpenseRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM fixed_expenses WHERE id = ?`, id)
	return err
}

// NextSortOrder returns the sort order a newly created record should take
// to append at the end of the list.
func (r *FixedExpenseRepository) NextSortOrder(ctx context.Context) (int, error) {
	var next int
	err := r.db.GetContext(ctx, &next, `SELECT COALESCE(MAX(sort_order) + 1, 0) FROM fixed_expenses`)
	return next, err
}

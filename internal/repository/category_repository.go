package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/zerobudget/backend/internal/model"
)

var ErrCategoryNotFound = errors.New("category not found")

type CategoryRepository struct {
	db *sqlx.DB
}

func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, category *model.Category) error {
	category.ID = uuid.NewString()
	now := time.Now().UTC()
	category.CreatedAt = now
	category.UpdatedAt = now

	query := `
		INSERT INTO categories (id, name, budget_limit, color, sort_order, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		category.ID, category.Name, category.BudgetLimit, category.Color,
		category.SortOrder, category.CreatedAt, category.UpdatedAt,
	)
	return err
}

func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*model.Category, error) {
	var category model.Category
	err := r.db.GetContext(ctx, &category, `SELECT * FROM categories WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// Exists reports whether a category with the given id is present.
func (r *CategoryRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM categories WHERE id = ?)`, id)
	return exists, err
}

func (r *CategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	categories := []model.Category{}
	query := `SELECT * FROM categories ORDER BY sort_order, created_at`
	err := r.db.SelectContext(ctx, &categories, query)
	return categories, err
}

func (r *CategoryRepository) Update(ctx context.Context, category *model.Category) error {
	category.UpdatedAt = time.Now().UTC()
	query := `
		UPDATE categories
		SET name = ?, budget_limit = ?, color = ?, sort_order = ?, updated_at = ?
		WHERE id = ?`
	result, err := r.db.ExecContext(ctx, query,
		category.Name, category.BudgetLimit, category.Color,
		category.SortOrder, category.UpdatedAt, category.ID,
	)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

// Delete removes a category and every expense referencing it, across all
// months, in a single transaction. No intermediate state where expenses
// reference a deleted category is observable. Deleting an absent id is a
// no-op.
func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin cascade delete: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM expenses WHERE category_id = ?`, id); err != nil {
		return fmt.Errorf("delete category expenses: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	return tx.Commit()
}

// NextSortOrder returns the sort order a newly created record should take
// to append at the end of the list.
func (r *CategoryRepository) NextSortOrder(ctx context.Context) (int, error) {
	var next int
	err := r.db.GetContext(ctx, &next, `SELECT COALESCE(MAX(sort_order) + 1, 0) FROM categories`)
	return next, err
}

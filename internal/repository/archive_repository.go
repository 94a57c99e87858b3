package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/zerobudget/backend/internal/model"
	"github.com/zerobudget/backend/pkg/datetime"
)

var (
	ErrArchiveNotFound    = errors.New("archive not found")
	ErrMonthAlreadyClosed = errors.New("month already closed")
)

type ArchiveRepository struct {
	db *sqlx.DB
}

func NewArchiveRepository(db *sqlx.DB) *ArchiveRepository {
	return &ArchiveRepository{db: db}
}

// CreateAndPurge writes the archive and deletes every live expense of the
// archived month in one transaction: the archive cannot exist without the
// purge having happened, and vice versa. Returns ErrMonthAlreadyClosed if
// an archive for the month is already present.
func (r *ArchiveRepository) CreateAndPurge(ctx context.Context, archive *model.MonthlyArchive) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin close month: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var exists bool
	if err := tx.GetContext(ctx, &exists,
		`SELECT EXISTS(SELECT 1 FROM monthly_archives WHERE month = ?)`, archive.Month); err != nil {
		return fmt.Errorf("check existing archive: %w", err)
	}
	if exists {
		return ErrMonthAlreadyClosed
	}

	query := `
		INSERT INTO monthly_archives (id, month, closed_at, summary, fixed_expenses, categories, expenses)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	if _, err := tx.ExecContext(ctx, query,
		archive.ID, archive.Month, archive.ClosedAt, archive.Summary,
		archive.FixedExpenses, archive.Categories, archive.Expenses,
	); err != nil {
		return fmt.Errorf("insert archive: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM expenses WHERE month = ?`, archive.Month); err != nil {
		return fmt.Errorf("purge archived expenses: %w", err)
	}

	return tx.Commit()
}

func (r *ArchiveRepository) GetByMonth(ctx context.Context, month datetime.MonthKey) (*model.MonthlyArchive, error) {
	var archive model.MonthlyArchive
	err := r.db.GetContext(ctx, &archive, `SELECT * FROM monthly_archives WHERE month = ?`, month)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrArchiveNotFound
	}
	if err != nil {
		return nil, err
	}
	return &archive, nil
}

// Exists reports whether the month already has an archive.
func (r *ArchiveRepository) Exists(ctx context.Context, month datetime.MonthKey) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS(SELECT 1 FROM monthly_archives WHERE month = ?)`, month)
	return exists, err
}

// List returns all archives, most recent month first.
func (r *ArchiveRepository) List(ctx context.Context) ([]model.MonthlyArchive, error) {
	archives := []model.MonthlyArchive{}
	query := `SELECT * FROM monthly_archives ORDER BY month DESC`
	err := r.db.SelectContext(ctx, &archives, query)
	return archives, err
}

// Delete removes a whole archive. This is an administrative operation, not
// part of the normal flow; archives are otherwise immutable. Deleting an
// absent month is a no-op.
func (r *ArchiveRepository) Delete(ctx context.Context, month datetime.MonthKey) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM monthly_archives WHERE month = ?`, month)
	return err
}

package repository

import (
	"context"

	"github.com/zerobudget/backend/internal/model"
	"github.com/zerobudget/backend/pkg/datetime"
)

//go:generate mockery --name=SettingsRepositoryInterface --output=../mocks --outpkg=mocks
type SettingsRepositoryInterface interface {
	Get(ctx context.Context) (*model.Settings, error)
	Update(ctx context.Context, settings *model.Settings) error
}

//go:generate mockery --name=FixedExpenseRepositoryInterface --output=../mocks --outpkg=mocks
type FixedExpenseRepositoryInterface interface {
	Create(ctx context.Context, expense *model.FixedExpense) error
	GetByID(ctx context.Context, id string) (*model.FixedExpense, error)
	List(ctx context.Context) ([]model.FixedExpense, error)
	Update(ctx context.Context, expense *model.FixedExpense) error
	Delete(ctx context.Context, id string) error
	NextSortOrder(ctx context.Context) (int, error)
}

//go:generate mockery --name=CategoryRepositoryInterface --output=../mocks --outpkg=mocks
type CategoryRepositoryInterface interface {
	Create(ctx context.Context, category *model.Category) error
	GetByID(ctx context.Context, id string) (*model.Category, error)
	Exists(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]model.Category, error)
	Update(ctx context.Context, category *model.Category) error
	Delete(ctx context.Context, id string) error
	NextSortOrder(ctx context.Context) (int, error)
}

//go:generate mockery --name=ExpenseRepositoryInterface --output=../mocks --outpkg=mocks
type ExpenseRepositoryInterface interface {
	Create(ctx context.Context, expense *model.Expense) error
	GetByID(ctx context.Context, id string) (*model.Expense, error)
	List(ctx context.Context) ([]model.Expense, error)
	ListByMonth(ctx context.Context, month datetime.MonthKey) ([]model.Expense, error)
	ListByCategoryAndMonth(ctx context.Context, categoryID string, month datetime.MonthKey) ([]model.Expense, error)
	Update(ctx context.Context, expense *model.Expense) error
	Delete(ctx context.Context, id string) error
}

//go:generate mockery --name=ArchiveRepositoryInterface --output=../mocks --outpkg=mocks
type ArchiveRepositoryInterface interface {
	CreateAndPurge(ctx context.Context, archive *model.MonthlyArchive) error
	GetByMonth(ctx context.Context, month datetime.MonthKey) (*model.MonthlyArchive, error)
	Exists(ctx context.Context, month datetime.MonthKey) (bool, error)
	List(ctx context.Context) ([]model.MonthlyArchive, error)
	Delete(ctx context.Context, month datetime.MonthKey) error
}

//go:generate mockery --name=BackupRepositoryInterface --output=../mocks --outpkg=mocks
type BackupRepositoryInterface interface {
	Snapshot(ctx context.Context) (*model.BackupData, error)
	ReplaceAll(ctx context.Context, data *model.BackupData) error
}

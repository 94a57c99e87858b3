package handler

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/zerobudget/backend/internal/model"
	"github.com/zerobudget/backend/internal/service"
	"github.com/zerobudget/backend/pkg/datetime"
)

// SettingsServiceInterface for handler testing
type SettingsServiceInterface interface {
	Get(ctx context.Context) (*model.Settings, error)
	Update(ctx context.Context, input service.UpdateSettingsInput) (*model.Settings, error)
}

// FixedExpenseServiceInterface for handler testing
type FixedExpenseServiceInterface interface {
	Create(ctx context.Context, input service.CreateFixedExpenseInput) (*model.FixedExpense, error)
	Get(ctx context.Context, id string) (*model.FixedExpense, error)
	List(ctx context.Context) ([]model.FixedExpense, error)
	Update(ctx context.Context, id string, input service.UpdateFixedExpenseInput) (*model.FixedExpense, error)
	Delete(ctx context.Context, id string) error
	Total(ctx context.Context) (decimal.Decimal, error)
}

// CategoryServiceInterface for handler testing
type CategoryServiceInterface interface {
	Create(ctx context.Context, input service.CreateCategoryInput) (*model.Category, error)
	Get(ctx context.Context, id string) (*model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	Update(ctx context.Context, id string, input service.UpdateCategoryInput) (*model.Category, error)
	Delete(ctx context.Context, id string) error
}

// ExpenseServiceInterface for handler testing
type ExpenseServiceInterface interface {
	Create(ctx context.Context, input service.CreateExpenseInput) (*model.Expense, error)
	Get(ctx context.Context, id string) (*model.Expense, error)
	List(ctx context.Context) ([]model.Expense, error)
	ListByMonth(ctx context.Context, month datetime.MonthKey) ([]model.Expense, error)
	Update(ctx context.Context, id string, input service.UpdateExpenseInput) (*model.Expense, error)
	Delete(ctx context.Context, id string) error
}

// ReportServiceInterface for handler testing
type ReportServiceInterface interface {
	Overview(ctx context.Context, month datetime.MonthKey) (*model.BudgetOverview, error)
	CategoriesWithSpending(ctx context.Context, month datetime.MonthKey) ([]model.CategoryWithSpending, error)
	CategorySpending(ctx context.Context, categoryID string, month datetime.MonthKey) (*model.CategoryWithSpending, error)
	Distribution(ctx context.Context, month datetime.MonthKey) ([]model.DistributionSlice, error)
	BudgetVsActual(ctx context.Context, month datetime.MonthKey) ([]model.BudgetVsActual, error)
}

// ArchiveServiceInterface for handler testing
type ArchiveServiceInterface interface {
	CloseMonth(ctx context.Context, month *datetime.MonthKey) (*model.MonthlyArchive, error)
	Get(ctx context.Context, month datetime.MonthKey) (*model.MonthlyArchive, error)
	List(ctx context.Context) ([]model.MonthlyArchive, error)
	Delete(ctx context.Context, month datetime.MonthKey) error
}

// ExportServiceInterface for handler testing
type ExportServiceInterface interface {
	ExportBackup(ctx context.Context) (*model.Backup, error)
	ImportBackup(ctx context.Context, backup *model.Backup) error
	ExportExpensesCSV(ctx context.Context, month datetime.MonthKey) ([]byte, error)
	ExportArchivePDF(ctx context.Context, month datetime.MonthKey) ([]byte, error)
}

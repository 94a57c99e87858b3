package handler

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/zerobudget/backend/internal/model"
	"github.com/zerobudget/backend/internal/service"
	"github.com/zerobudget/backend/pkg/datetime"
)

// Shared service mocks used across the handler tests.

type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) Get(ctx context.Context) (*model.Settings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Settings), args.Error(1)
}

func (m *MockSettingsService) Update(ctx context.Context, input service.UpdateSettingsInput) (*model.Settings, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Settings), args.Error(1)
}

type MockFixedExpenseService struct {
	mock.Mock
}

func (m *MockFixedExpenseService) Create(ctx context.Context, input service.CreateFixedExpenseInput) (*model.FixedExpense, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FixedExpense), args.Error(1)
}

func (m *MockFixedExpenseService) Get(ctx context.Context, id string) (*model.FixedExpense, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FixedExpense), args.Error(1)
}

func (m *MockFixedExpenseService) List(ctx context.Context) ([]model.FixedExpense, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FixedExpense), args.Error(1)
}

func (m *MockFixedExpenseService) Update(ctx context.Context, id string, input service.UpdateFixedExpenseInput) (*model.FixedExpense, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FixedExpense), args.Error(1)
}

func (m *MockFixedExpenseService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFixedExpenseService) Total(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) Create(ctx context.Context, input service.CreateCategoryInput) (*model.Category, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryService) Get(ctx context.Context, id string) (*model.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryService) List(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *MockCategoryService) Update(ctx context.Context, id string, input service.UpdateCategoryInput) (*model.Category, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockExpenseService struct {
	mock.Mock
}

func (m *MockExpenseService) Create(ctx context.Context, input service.CreateExpenseInput) (*model.Expense, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Expense), args.Error(1)
}

func (m *MockExpenseService) Get(ctx context.Context, id string) (*model.Expense, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Expense), args.Error(1)
}

func (m *MockExpenseService) List(ctx context.Context) ([]model.Expense, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Expense), args.Error(1)
}

func (m *MockExpenseService) ListByMonth(ctx context.Context, month datetime.MonthKey) ([]model.Expense, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Expense), args.Error(1)
}

func (m *MockExpenseService) Update(ctx context.Context, id string, input service.UpdateExpenseInput) (*model.Expense, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Expense), args.Error(1)
}

func (m *MockExpenseService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) Overview(ctx context.Context, month datetime.MonthKey) (*model.BudgetOverview, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BudgetOverview), args.Error(1)
}

func (m *MockReportService) CategoriesWithSpending(ctx context.Context, month datetime.MonthKey) ([]model.CategoryWithSpending, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CategoryWithSpending), args.Error(1)
}

func (m *MockReportService) CategorySpending(ctx context.Context, categoryID string, month datetime.MonthKey) (*model.CategoryWithSpending, error) {
	args := m.Called(ctx, categoryID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CategoryWithSpending), args.Error(1)
}

func (m *MockReportService) Distribution(ctx context.Context, month datetime.MonthKey) ([]model.DistributionSlice, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DistributionSlice), args.Error(1)
}

func (m *MockReportService) BudgetVsActual(ctx context.Context, month datetime.MonthKey) ([]model.BudgetVsActual, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BudgetVsActual), args.Error(1)
}

type MockArchiveService struct {
	mock.Mock
}

func (m *MockArchiveService) CloseMonth(ctx context.Context, month *datetime.MonthKey) (*model.MonthlyArchive, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MonthlyArchive), args.Error(1)
}

func (m *MockArchiveService) Get(ctx context.Context, month datetime.MonthKey) (*model.MonthlyArchive, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MonthlyArchive), args.Error(1)
}

func (m *MockArchiveService) List(ctx context.Context) ([]model.MonthlyArchive, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MonthlyArchive), args.Error(1)
}

func (m *MockArchiveService) Delete(ctx context.Context, month datetime.MonthKey) error {
	args := m.Called(ctx, month)
	return args.Error(0)
}

type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) ExportBackup(ctx context.Context) (*model.Backup, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Backup), args.Error(1)
}

func (m *MockExportService) ImportBackup(ctx context.Context, backup *model.Backup) error {
	args := m.Called(ctx, backup)
	return args.Error(0)
}

func (m *MockExportService) ExportExpensesCSV(ctx context.Context, month datetime.MonthKey) ([]byte, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockExportService) ExportArchivePDF(ctx context.Context, month datetime.MonthKey) ([]byte, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

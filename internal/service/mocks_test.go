package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/zerobudget/backend/internal/model"
	"github.com/zerobudget/backend/pkg/datetime"
)

// Shared repository mocks used across the service tests.

type MockSettingsRepo struct {
	mock.Mock
}

func (m *MockSettingsRepo) Get(ctx context.Context) (*model.Settings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Settings), args.Error(1)
}

func (m *MockSettingsRepo) Update(ctx context.Context, settings *model.Settings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

type MockFixedExpenseRepo struct {
	mock.Mock
}

func (m *MockFixedExpenseRepo) Create(ctx context.Context, expense *model.FixedExpense) error {
	args := m.Called(ctx, expense)
	if expense.ID == "" {
		expense.ID = "fx-new"
	}
	return args.Error(0)
}

func (m *MockFixedExpenseRepo) GetByID(ctx context.Context, id string) (*model.FixedExpense, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FixedExpense), args.Error(1)
}

func (m *MockFixedExpenseRepo) List(ctx context.Context) ([]model.FixedExpense, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FixedExpense), args.Error(1)
}

func (m *MockFixedExpenseRepo) Update(ctx context.Context, expense *model.FixedExpense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockFixedExpenseRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFixedExpenseRepo) NextSortOrder(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockCategoryRepo struct {
	mock.Mock
}

func (m *MockCategoryRepo) Create(ctx context.Context, category *model.Category) error {
	args := m.Called(ctx, category)
	if category.ID == "" {
		category.ID = "cat-new"
	}
	return args.Error(0)
}

func (m *MockCategoryRepo) GetByID(ctx context.Context, id string) (*model.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryRepo) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryRepo) List(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *MockCategoryRepo) Update(ctx context.Context, category *model.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCategoryRepo) NextSortOrder(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockExpenseRepo struct {
	mock.Mock
}

func (m *MockExpenseRepo) Create(ctx context.Context, expense *model.Expense) error {
	args := m.Called(ctx, expense)
	if expense.ID == "" {
		expense.ID = "exp-new"
	}
	expense.Month = expense.Date.MonthKey()
	return args.Error(0)
}

func (m *MockExpenseRepo) GetByID(ctx context.Context, id string) (*model.Expense, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Expense), args.Error(1)
}

func (m *MockExpenseRepo) List(ctx context.Context) ([]model.Expense, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Expense), args.Error(1)
}

func (m *MockExpenseRepo) ListByMonth(ctx context.Context, month datetime.MonthKey) ([]model.Expense, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Expense), args.Error(1)
}

func (m *MockExpenseRepo) ListByCategoryAndMonth(ctx context.Context, categoryID string, month datetime.MonthKey) ([]model.Expense, error) {
	args := m.Called(ctx, categoryID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Expense), args.Error(1)
}

func (m *MockExpenseRepo) Update(ctx context.Context, expense *model.Expense) error {
	args := m.Called(ctx, expense)
	expense.Month = expense.Date.MonthKey()
	return args.Error(0)
}

func (m *MockExpenseRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockArchiveRepo struct {
	mock.Mock
}

func (m *MockArchiveRepo) CreateAndPurge(ctx context.Context, archive *model.MonthlyArchive) error {
	args := m.Called(ctx, archive)
	return args.Error(0)
}

func (m *MockArchiveRepo) GetByMonth(ctx context.Context, month datetime.MonthKey) (*model.MonthlyArchive, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MonthlyArchive), args.Error(1)
}

func (m *MockArchiveRepo) List(ctx context.Context) ([]model.MonthlyArchive, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MonthlyArchive), args.Error(1)
}

func (m *MockArchiveRepo) Delete(ctx context.Context, month datetime.MonthKey) error {
	args := m.Called(ctx, month)
	return args.Error(0)
}

type MockBackupRepo struct {
	mock.Mock
}

func (m *MockBackupRepo) Snapshot(ctx context.Context) (*model.BackupData, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BackupData), args.Error(1)
}

func (m *MockBackupRepo) ReplaceAll(ctx context.Context, data *model.BackupData) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/zerobudget/backend/internal/apperror"
	"github.com/zerobudget/backend/internal/model"
	"github.com/zerobudget/backend/pkg/datetime"
)

// ExpenseRepoInterface defines the contract for expense data access.
type ExpenseRepoInterface interface {
	Create(ctx context.Context, expense *model.Expense) error
	GetByID(ctx context.Context, id string) (*model.Expense, error)
	List(ctx context.Context) ([]model.Expense, error)
	ListByMonth(ctx context.Context, month datetime.MonthKey) ([]model.Expense, error)
	ListByCategoryAndMonth(ctx context.Context, categoryID string, month datetime.MonthKey) ([]model.Expense, error)
	Update(ctx context.Context, expense *model.Expense) error
	Delete(ctx context.Context, id string) error
}

// CategoryRepoForExpense provides the category existence check used when
// attributing an expense.
type CategoryRepoForExpense interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// ExpenseService handles business logic for expense records. An expense
// must reference an existing category; the referential check happens here
// rather than relying on the database alone so the caller gets a clean
// validation error.
type ExpenseService struct {
	repo         ExpenseRepoInterface
	categoryRepo CategoryRepoForExpense
}

// NewExpenseService creates a new ExpenseService with the given repositories.
func NewExpenseService(repo ExpenseRepoInterface, categoryRepo CategoryRepoForExpense) *ExpenseService {
	return &ExpenseService{repo: repo, categoryRepo: categoryRepo}
}

type CreateExpenseInput struct {
	CategoryID  string          `json:"categoryId"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        datetime.Date   `json:"date"`
}

type UpdateExpenseInput struct {
	CategoryID  *string          `json:"categoryId,omitempty"`
	Description *string          `json:"description,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Date        *datetime.Date   `json:"date,omitempty"`
}

// Create records an expense. The month it counts against is derived from
// the date, which may belong to any month, past or future.
func (s *ExpenseService) Create(ctx context.Context, input CreateExpenseInput) (*model.Expense, error) {
	if strings.TrimSpace(input.CategoryID) == "" {
		return nil, apperror.ValidationError("categoryId", "must not be empty")
	}
	if input.Amount.IsNegative() {
		return nil, apperror.ValidationError("amount", "must not be negative")
	}
	if input.Date.IsZero() {
		return nil, apperror.ValidationError("date", "must be a valid date")
	}

	exists, err := s.categoryRepo.Exists(ctx, input.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("checking category %s: %w", input.CategoryID, err)
	}
	if !exists {
		return nil, apperror.ValidationError("categoryId", fmt.Sprintf("category %s does not exist", input.CategoryID))
	}

	expense := &model.Expense{
		CategoryID:  input.CategoryID,
		Description: strings.TrimSpace(input.Description),
		Amount:      input.Amount,
		Date:        input.Date,
	}
	if err := s.repo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("creating expense: %w", err)
	}

	return expense, nil
}

// Get retrieves an expense by its ID.
func (s *ExpenseService) Get(ctx context.Context, id string) (*model.Expense, error) {
	expense, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting expense %s: %w", id, err)
	}
	return expense, nil
}

// List retrieves every expense across all months.
func (s *ExpenseService) List(ctx context.Context) ([]model.Expense, error) {
	expenses, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}
	return expenses, nil
}

// ListByMonth retrieves the expenses of one month, most recent first.
func (s *ExpenseService) ListByMonth(ctx context.Context, month datetime.MonthKey) ([]model.Expense, error) {
	if !month.IsValid() {
		return nil, apperror.ValidationError("month", "must be in YYYY-MM format")
	}
	expenses, err := s.repo.ListByMonth(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("listing expenses for %s: %w", month, err)
	}
	return expenses, nil
}

// Update applies the provided fields, leaving absent ones untouched.
// Changing the date moves the expense to the month the new date falls in.
func (s *ExpenseService) Update(ctx context.Context, id string, input UpdateExpenseInput) (*model.Expense, error) {
	expense, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching expense %s for update: %w", id, err)
	}

	if input.CategoryID != nil {
		exists, err := s.categoryRepo.Exists(ctx, *input.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("checking category %s: %w", *input.CategoryID, err)
		}
		if !exists {
			return nil, apperror.ValidationError("categoryId", fmt.Sprintf("category %s does not exist", *input.CategoryID))
		}
		expense.CategoryID = *input.CategoryID
	}
	if input.Description != nil {
		expense.Description = strings.TrimSpace(*input.Description)
	}
	if input.Amount != nil {
		if input.Amount.IsNegative() {
			return nil, apperror.ValidationError("amount", "must not be negative")
		}
		expense.Amount = *input.Amount
	}
	if input.Date != nil {
		if input.Date.IsZero() {
			return nil, apperror.ValidationError("date", "must be a valid date")
		}
		expense.Date = *input.Date
	}

	if err := s.repo.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("updating expense %s: %w", id, err)
	}

	return expense, nil
}

// Delete removes an expense. Deleting an absent id is not an error.
func (s *ExpenseService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting expense %s: %w", id, err)
	}
	return nil
}

package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/zerobudget/backend/internal/apperror"
	"github.com/zerobudget/backend/internal/model"
	"github.com/zerobudget/backend/pkg/datetime"
)

// FixedExpenseRepoForReport provides the fixed expense list for totals.
type FixedExpenseRepoForReport interface {
	List(ctx context.Context) ([]model.FixedExpense, error)
}

// CategoryRepoForReport provides the category list for aggregation.
type CategoryRepoForReport interface {
	List(ctx context.Context) ([]model.Category, error)
	GetByID(ctx context.Context, id string) (*model.Category, error)
}

// ExpenseRepoForReport provides the month's expenses for aggregation.
type ExpenseRepoForReport interface {
	ListByMonth(ctx context.Context, month datetime.MonthKey) ([]model.Expense, error)
}

// ReportService computes all derived monthly figures. Nothing here is
// persisted; every report is recomputed from live records on demand, so
// reports always reflect the latest writes.
type ReportService struct {
	settingsRepo     SettingsRepoInterface
	fixedExpenseRepo FixedExpenseRepoForReport
	categoryRepo     CategoryRepoForReport
	expenseRepo      ExpenseRepoForReport
}

// NewReportService creates a new ReportService with the given repositories.
func NewReportService(
	settingsRepo SettingsRepoInterface,
	fixedExpenseRepo FixedExpenseRepoForReport,
	categoryRepo CategoryRepoForReport,
	expenseRepo ExpenseRepoForReport,
) *ReportService {
	return &ReportService{
		settingsRepo:     settingsRepo,
		fixedExpenseRepo: fixedExpenseRepo,
		categoryRepo:     categoryRepo,
		expenseRepo:      expenseRepo,
	}
}

// Overview computes the month-level summary. Percentages are shares of the
// monthly income, clamped to [0, 100]; a non-positive income yields zero
// for all three.
func (s *ReportService) Overview(ctx context.Context, month datetime.MonthKey) (*model.BudgetOverview, error) {
	if !month.IsValid() {
		return nil, apperror.ValidationError("month", "must be in YYYY-MM format")
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting settings for overview: %w", err)
	}
	fixedExpenses, err := s.fixedExpenseRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing fixed expenses for overview: %w", err)
	}
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing categories for overview: %w", err)
	}
	expenses, err := s.expenseRepo.ListByMonth(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("listing expenses for overview: %w", err)
	}

	totalFixed := decimal.Zero
	for _, fe := range fixedExpenses {
		totalFixed = totalFixed.Add(fe.Amount)
	}
	totalBudgeted := decimal.Zero
	for _, c := range categories {
		totalBudgeted = totalBudgeted.Add(c.BudgetLimit)
	}
	totalSpent := decimal.Zero
	for _, e := range expenses {
		totalSpent = totalSpent.Add(e.Amount)
	}

	income := settings.MonthlyIncome
	availableForBudget := income.Sub(totalFixed)

	return &model.BudgetOverview{
		Month:              month,
		Currency:           settings.Currency,
		MonthlyIncome:      income,
		TotalFixedExpenses: totalFixed,
		TotalBudgeted:      totalBudgeted,
		TotalSpent:         totalSpent,
		AvailableForBudget: availableForBudget,
		Unassigned:         availableForBudget.Sub(totalBudgeted),
		RealAvailable:      availableForBudget.Sub(totalSpent),
		FixedPercentage:    shareOf(totalFixed, income),
		BudgetedPercentage: shareOf(totalBudgeted, income),
		SpentPercentage:    shareOf(totalSpent, income),
	}, nil
}

// CategoriesWithSpending returns every category with its spending figures
// for the month. The month's expenses are grouped in a single pass.
func (s *ReportService) CategoriesWithSpending(ctx context.Context, month datetime.MonthKey) ([]model.CategoryWithSpending, error) {
	if !month.IsValid() {
		return nil, apperror.ValidationError("month", "must be in YYYY-MM format")
	}

	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	expenses, err := s.expenseRepo.ListByMonth(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("listing expenses for %s: %w", month, err)
	}

	spentByCategory := make(map[string]decimal.Decimal, len(categories))
	countByCategory := make(map[string]int, len(categories))
	for _, e := range expenses {
		spentByCategory[e.CategoryID] = spentByCategory[e.CategoryID].Add(e.Amount)
		countByCategory[e.CategoryID]++
	}

	result := make([]model.CategoryWithSpending, len(categories))
	for i, c := range categories {
		result[i] = categorySpending(c, spentByCategory[c.ID], countByCategory[c.ID])
	}
	return result, nil
}

// CategorySpending returns one category's spending figures for the month,
// including its expense records.
func (s *ReportService) CategorySpending(ctx context.Context, categoryID string, month datetime.MonthKey) (*model.CategoryWithSpending, error) {
	if !month.IsValid() {
		return nil, apperror.ValidationError("month", "must be in YYYY-MM format")
	}

	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("getting category %s: %w", categoryID, err)
	}
	expenses, err := s.expenseRepo.ListByMonth(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("listing expenses for %s: %w", month, err)
	}

	spent := decimal.Zero
	own := []model.Expense{}
	for _, e := range expenses {
		if e.CategoryID != categoryID {
			continue
		}
		spent = spent.Add(e.Amount)
		own = append(own, e)
	}

	cws := categorySpending(*category, spent, len(own))
	cws.Expenses = own
	return &cws, nil
}

// Distribution returns the share of each category in the month's spending.
// Categories without spending are omitted.
func (s *ReportService) Distribution(ctx context.Context, month datetime.MonthKey) ([]model.DistributionSlice, error) {
	withSpending, err := s.CategoriesWithSpending(ctx, month)
	if err != nil {
		return nil, err
	}

	totalSpent := decimal.Zero
	for _, c := range withSpending {
		totalSpent = totalSpent.Add(c.Spent)
	}

	slices := []model.DistributionSlice{}
	for _, c := range withSpending {
		if c.Spent.IsZero() {
			continue
		}
		slices = append(slices, model.DistributionSlice{
			Name:       c.Name,
			Value:      c.Spent,
			Color:      c.Color,
			Percentage: shareOf(c.Spent, totalSpent),
		})
	}
	return slices, nil
}

// BudgetVsActual compares each category's limit against its spending.
func (s *ReportService) BudgetVsActual(ctx context.Context, month datetime.MonthKey) ([]model.BudgetVsActual, error) {
	withSpending, err := s.CategoriesWithSpending(ctx, month)
	if err != nil {
		return nil, err
	}

	result := make([]model.BudgetVsActual, len(withSpending))
	for i, c := range withSpending {
		result[i] = model.BudgetVsActual{
			Name:   c.Name,
			Budget: c.BudgetLimit,
			Actual: c.Spent,
			Color:  c.Color,
		}
	}
	return result, nil
}

func categorySpending(c model.Category, spent decimal.Decimal, count int) model.CategoryWithSpending {
	percentage := shareOf(spent, c.BudgetLimit)
	return model.CategoryWithSpending{
		Category:     c,
		Spent:        spent,
		Remaining:    c.BudgetLimit.Sub(spent),
		Percentage:   percentage,
		Status:       model.StatusForPercentage(percentage),
		ExpenseCount: count,
	}
}

// shareOf returns part/total as a percentage clamped to [0, 100].
// A non-positive total yields 0.
func shareOf(part, total decimal.Decimal) float64 {
	if !total.IsPositive() {
		return 0
	}
	pct := part.Div(total).Mul(decimal.NewFromInt(100)).InexactFloat64()
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

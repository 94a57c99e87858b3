package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/zerobudget/backend/internal/apperror"
	"github.com/zerobudget/backend/internal/logger"
	"github.com/zerobudget/backend/internal/model"
	"github.com/zerobudget/backend/internal/repository"
	"github.com/zerobudget/backend/pkg/datetime"
)

// ArchiveRepoInterface defines the contract for archive data access.
type ArchiveRepoInterface interface {
	CreateAndPurge(ctx context.Context, archive *model.MonthlyArchive) error
	GetByMonth(ctx context.Context, month datetime.MonthKey) (*model.MonthlyArchive, error)
	List(ctx context.Context) ([]model.MonthlyArchive, error)
	Delete(ctx context.Context, month datetime.MonthKey) error
}

// ArchiveService implements the month-close protocol: snapshot the month,
// write the immutable archive, purge the archived expenses, and advance
// the current month. A single mutex serializes closes so two concurrent
// requests cannot both snapshot the same month.
type ArchiveService struct {
	repo             ArchiveRepoInterface
	settingsRepo     SettingsRepoInterface
	fixedExpenseRepo FixedExpenseRepoForReport
	categoryRepo     CategoryRepoForReport
	expenseRepo      ExpenseRepoForReport

	closeMu sync.Mutex
}

// NewArchiveService creates a new ArchiveService with the given repositories.
func NewArchiveService(
	repo ArchiveRepoInterface,
	settingsRepo SettingsRepoInterface,
	fixedExpenseRepo FixedExpenseRepoForReport,
	categoryRepo CategoryRepoForReport,
	expenseRepo ExpenseRepoForReport,
) *ArchiveService {
	return &ArchiveService{
		repo:             repo,
		settingsRepo:     settingsRepo,
		fixedExpenseRepo: fixedExpenseRepo,
		categoryRepo:     categoryRepo,
		expenseRepo:      expenseRepo,
	}
}

// CloseMonth archives the given month, or the current month when month is
// nil. Closing a month past the current one is rejected: months can only
// be closed up to where the ledger stands. When the closed month is the
// current one, the current month advances to the next calendar month, so
// closing December rolls into January of the following year.
func (s *ArchiveService) CloseMonth(ctx context.Context, month *datetime.MonthKey) (*model.MonthlyArchive, error) {
	s.closeMu.Lock()
	defer s.closeMu.Unlock()

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting settings for close: %w", err)
	}

	target := settings.CurrentMonth
	if month != nil {
		if !month.IsValid() {
			return nil, apperror.ValidationError("month", "must be in YYYY-MM format")
		}
		target = *month
	}
	if target.After(settings.CurrentMonth) {
		return nil, apperror.ValidationError("month", fmt.Sprintf("cannot close %s before the current month %s", target, settings.CurrentMonth))
	}
	ctx = logger.WithMonth(ctx, string(target))

	archive, err := s.buildSnapshot(ctx, settings, target)
	if err != nil {
		return nil, err
	}

	if err := s.repo.CreateAndPurge(ctx, archive); err != nil {
		if errors.Is(err, repository.ErrMonthAlreadyClosed) {
			return nil, apperror.AlreadyClosed(string(target))
		}
		return nil, fmt.Errorf("archiving %s: %w", target, err)
	}

	if target == settings.CurrentMonth {
		settings.CurrentMonth = settings.CurrentMonth.Next()
		if err := s.settingsRepo.Update(ctx, settings); err != nil {
			return nil, fmt.Errorf("advancing current month: %w", err)
		}
	}

	logger.FromContext(ctx).Info("month closed",
		"expenses", len(archive.Expenses),
		"totalSaved", archive.Summary.TotalSaved.String())
	return archive, nil
}

// Get retrieves the archive of a closed month.
func (s *ArchiveService) Get(ctx context.Context, month datetime.MonthKey) (*model.MonthlyArchive, error) {
	archive, err := s.repo.GetByMonth(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("getting archive %s: %w", month, err)
	}
	return archive, nil
}

// List retrieves all archives, most recent month first.
func (s *ArchiveService) List(ctx context.Context) ([]model.MonthlyArchive, error) {
	archives, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing archives: %w", err)
	}
	return archives, nil
}

// Delete removes an archive. The purged expenses of that month are gone;
// deleting the archive does not bring them back.
func (s *ArchiveService) Delete(ctx context.Context, month datetime.MonthKey) error {
	if err := s.repo.Delete(ctx, month); err != nil {
		return fmt.Errorf("deleting archive %s: %w", month, err)
	}
	return nil
}

func (s *ArchiveService) buildSnapshot(ctx context.Context, settings *model.Settings, month datetime.MonthKey) (*model.MonthlyArchive, error) {
	fixedExpenses, err := s.fixedExpenseRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing fixed expenses for snapshot: %w", err)
	}
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing categories for snapshot: %w", err)
	}
	expenses, err := s.expenseRepo.ListByMonth(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("listing expenses for snapshot: %w", err)
	}

	totalFixed := decimal.Zero
	for _, fe := range fixedExpenses {
		totalFixed = totalFixed.Add(fe.Amount)
	}

	spentByCategory := make(map[string]decimal.Decimal, len(categories))
	totalSpent := decimal.Zero
	for _, e := range expenses {
		spentByCategory[e.CategoryID] = spentByCategory[e.CategoryID].Add(e.Amount)
		totalSpent = totalSpent.Add(e.Amount)
	}

	totalBudgeted := decimal.Zero
	archivedCategories := make(model.CategorySnapshots, len(categories))
	for i, c := range categories {
		totalBudgeted = totalBudgeted.Add(c.BudgetLimit)
		spent := spentByCategory[c.ID]
		archivedCategories[i] = model.ArchivedCategory{
			Category:   c,
			Spent:      spent,
			Remaining:  c.BudgetLimit.Sub(spent),
			Percentage: shareOf(spent, c.BudgetLimit),
		}
	}

	return &model.MonthlyArchive{
		ID:       string(month),
		Month:    month,
		ClosedAt: time.Now().UTC(),
		Summary: model.ArchiveSummary{
			MonthlyIncome:      settings.MonthlyIncome,
			TotalFixedExpenses: totalFixed,
			TotalBudgeted:      totalBudgeted,
			TotalSpent:         totalSpent,
			TotalSaved:         settings.MonthlyIncome.Sub(totalFixed).Sub(totalSpent),
			Currency:           settings.Currency,
		},
		FixedExpenses: model.FixedExpenseSnapshots(fixedExpenses),
		Categories:    archivedCategories,
		Expenses:      model.ExpenseSnapshots(expenses),
	}, nil
}

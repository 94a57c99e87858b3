package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/zerobudget/backend/pkg/currency"
	"github.com/zerobudget/backend/pkg/datetime"
)

// ArchiveSummary holds the financial totals of a closed month.
// TotalSaved = MonthlyIncome − TotalFixedExpenses − TotalSpent.
type ArchiveSummary struct {
	MonthlyIncome      decimal.Decimal   `json:"monthlyIncome"`
	TotalFixedExpenses decimal.Decimal   `json:"totalFixedExpenses"`
	TotalBudgeted      decimal.Decimal   `json:"totalBudgeted"`
	TotalSpent         decimal.Decimal   `json:"totalSpent"`
	TotalSaved         decimal.Decimal   `json:"totalSaved"`
	Currency           currency.Currency `json:"currency"`
}

// ArchivedCategory is a category snapshot enriched with the month's
// spending figures at closure time.
type ArchivedCategory struct {
	Category
	Spent      decimal.Decimal `json:"spent"`
	Remaining  decimal.Decimal `json:"remaining"`
	Percentage float64         `json:"percentage"`
}

// MonthlyArchive is the immutable snapshot written when a month is closed.
// Its id equals the month key, so at most one archive can ever exist per
// month. The snapshot lists are stored as JSON columns.
type MonthlyArchive struct {
	ID            string                `db:"id" json:"id"`
	Month         datetime.MonthKey     `db:"month" json:"month"`
	ClosedAt      time.Time             `db:"closed_at" json:"closedAt"`
	Summary       ArchiveSummary        `db:"summary" json:"summary"`
	FixedExpenses FixedExpenseSnapshots `db:"fixed_expenses" json:"fixedExpenses"`
	Categories    CategorySnapshots     `db:"categories" json:"categories"`
	Expenses      ExpenseSnapshots      `db:"expenses" json:"expenses"`
}

// FixedExpenseSnapshots is a JSON-column list of fixed expense records.
type FixedExpenseSnapshots []FixedExpense

// CategorySnapshots is a JSON-column list of archived categories.
type CategorySnapshots []ArchivedCategory

// ExpenseSnapshots is a JSON-column list of expense records.
type ExpenseSnapshots []Expense

func (s ArchiveSummary) Value() (driver.Value, error) {
	return jsonValue(s)
}

func (s *ArchiveSummary) Scan(src any) error {
	return jsonScan(src, s)
}

func (s FixedExpenseSnapshots) Value() (driver.Value, error) {
	return jsonValue(s)
}

func (s *FixedExpenseSnapshots) Scan(src any) error {
	return jsonScan(src, s)
}

func (s CategorySnapshots) Value() (driver.Value, error) {
	return jsonValue(s)
}

func (s *CategorySnapshots) Scan(src any) error {
	return jsonScan(src, s)
}

func (s ExpenseSnapshots) Value() (driver.Value, error) {
	return jsonValue(s)
}

func (s *ExpenseSnapshots) Scan(src any) error {
	return jsonScan(src, s)
}

func jsonValue(v any) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func jsonScan(src, dst any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case string:
		return json.Unmarshal([]byte(v), dst)
	case []byte:
		return json.Unmarshal(v, dst)
	default:
		return fmt.Errorf("cannot scan %T into %T", src, dst)
	}
}

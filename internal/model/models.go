package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/zerobudget/backend/pkg/currency"
	"github.com/zerobudget/backend/pkg/datetime"
)

// SettingsID is the fixed id of the settings singleton.
const SettingsID = "main"

// Settings is the application-wide singleton holding the declared monthly
// income, the display currency, and the period currently accepting expenses.
// It is created with defaults on first store access.
type Settings struct {
	ID            string            `db:"id" json:"id"`
	MonthlyIncome decimal.Decimal   `db:"monthly_income" json:"monthlyIncome"`
	Currency      currency.Currency `db:"currency" json:"currency"`
	CurrentMonth  datetime.MonthKey `db:"current_month" json:"currentMonth"`
	CreatedAt     time.Time         `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time         `db:"updated_at" json:"updatedAt"`
}

// FixedExpense is a recurring monthly cost not attributed to any category.
type FixedExpense struct {
	ID        string          `db:"id" json:"id"`
	Name      string          `db:"name" json:"name"`
	Amount    decimal.Decimal `db:"amount" json:"amount"`
	SortOrder int             `db:"sort_order" json:"order"`
	CreatedAt time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time       `db:"updated_at" json:"updatedAt"`
}

// Category is a spending bucket with a budget limit. It owns zero or more
// expenses; deleting a category cascades to all of its expenses across every
// month.
type Category struct {
	ID          string          `db:"id" json:"id"`
	Name        string          `db:"name" json:"name"`
	BudgetLimit decimal.Decimal `db:"budget_limit" json:"budgetLimit"`
	Color       string          `db:"color" json:"color"`
	SortOrder   int             `db:"sort_order" json:"order"`
	CreatedAt   time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updatedAt"`
}

// Expense is a single spending record attributed to exactly one category.
// Month is always the first seven characters of Date and is recomputed
// whenever Date changes; it is the sole partitioning key deciding which
// budgeting period the expense counts against.
type Expense struct {
	ID          string            `db:"id" json:"id"`
	CategoryID  string            `db:"category_id" json:"categoryId"`
	Description string            `db:"description" json:"description"`
	Amount      decimal.Decimal   `db:"amount" json:"amount"`
	Date        datetime.Date     `db:"date" json:"date"`
	Month       datetime.MonthKey `db:"month" json:"month"`
	CreatedAt   time.Time         `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time         `db:"updated_at" json:"updatedAt"`
}

// CategoryPalette is the fixed set of colors a category may use.
var CategoryPalette = []string{
	"#ef4444", // red
	"#f97316", // orange
	"#f59e0b", // amber
	"#84cc16", // lime
	"#22c55e", // green
	"#14b8a6", // teal
	"#06b6d4", // cyan
	"#3b82f6", // blue
	"#8b5cf6", // violet
	"#ec4899", // pink
}

// DefaultCategoryColor is used when no color is chosen.
var DefaultCategoryColor = CategoryPalette[0]

// IsPaletteColor reports whether the color belongs to the fixed palette.
func IsPaletteColor(color string) bool {
	for _, c := range CategoryPalette {
		if c == color {
			return true
		}
	}
	return false
}

// ProgressStatus classifies how far along a budget is consumed.
type ProgressStatus string

const (
	StatusNormal  ProgressStatus = "normal"
	StatusWarning ProgressStatus = "warning"
	StatusDanger  ProgressStatus = "danger"
)

// StatusForPercentage maps a consumed-budget percentage onto a status:
// >=100 danger, >=80 warning, otherwise normal.
func StatusForPercentage(pct float64) ProgressStatus {
	switch {
	case pct >= 100:
		return StatusDanger
	case pct >= 80:
		return StatusWarning
	default:
		return StatusNormal
	}
}

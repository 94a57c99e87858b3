package model

import (
	"github.com/shopspring/decimal"

	"github.com/zerobudget/backend/pkg/currency"
	"github.com/zerobudget/backend/pkg/datetime"
)

// BudgetOverview is the month-level summary: where the declared income
// stands after fixed costs, budget allocations, and actual spending.
type BudgetOverview struct {
	Month              datetime.MonthKey `json:"month"`
	Currency           currency.Currency `json:"currency"`
	MonthlyIncome      decimal.Decimal   `json:"monthlyIncome"`
	TotalFixedExpenses decimal.Decimal   `json:"totalFixedExpenses"`
	TotalBudgeted      decimal.Decimal   `json:"totalBudgeted"`
	TotalSpent         decimal.Decimal   `json:"totalSpent"`
	AvailableForBudget decimal.Decimal   `json:"availableForBudget"` // income − fixed
	Unassigned         decimal.Decimal   `json:"unassigned"`         // (income − fixed) − budgeted
	RealAvailable      decimal.Decimal   `json:"realAvailable"`      // income − fixed − spent
	FixedPercentage    float64           `json:"fixedPercentage"`
	BudgetedPercentage float64           `json:"budgetedPercentage"`
	SpentPercentage    float64           `json:"spentPercentage"`
}

// CategoryWithSpending is a category plus its spending figures for one month.
// Expenses is populated only by the single-category lookup and is sorted by
// date descending.
type CategoryWithSpending struct {
	Category
	Spent        decimal.Decimal `json:"spent"`
	Remaining    decimal.Decimal `json:"remaining"`
	Percentage   float64         `json:"percentage"`
	Status       ProgressStatus  `json:"status"`
	ExpenseCount int             `json:"expenseCount"`
	Expenses     []Expense       `json:"expenses,omitempty"`
}

// DistributionSlice feeds proportional visualizations; only categories with
// spending appear.
type DistributionSlice struct {
	Name       string          `json:"name"`
	Value      decimal.Decimal `json:"value"`
	Color      string          `json:"color"`
	Percentage float64         `json:"percentage"`
}

// BudgetVsActual compares a category's limit against its actual spending.
type BudgetVsActual struct {
	Name   string          `json:"name"`
	Budget decimal.Decimal `json:"budget"`
	Actual decimal.Decimal `json:"actual"`
	Color  string          `json:"color"`
}

package ledger

import (
	"context"
	"strings"
	"time"

	"github.com/envelope-zero/expenses/pkg/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetFields are the user supplied values of a budget entry.
type BudgetFields struct {
	Category string // Name of the category, created if it does not exist
	Month    *int
	Year     *int
	Limit    decimal.NullDecimal
}

func (f BudgetFields) validate() (BudgetFields, error) {
	var v validation

	f.Category = strings.TrimSpace(f.Category)
	v.check(f.Category != "", "category", "category is required")

	if v.check(f.Month != nil, "month", "month is required") {
		v.check(*f.Month >= 1 && *f.Month <= 12, "month", "month must be between 1 and 12")
	}

	if v.check(f.Year != nil, "year", "year is required") {
		v.check(*f.Year >= 1, "year", "year must be greater than 0")
	}

	if v.check(f.Limit.Valid, "limit", "limit is required") {
		v.check(f.Limit.Decimal.IsPositive(), "limit", "limit must be greater than 0")
	}

	return f, v.err()
}

// BudgetSummary is a budget entry together with the spending figures
// derived from the expenses of its category.
type BudgetSummary struct {
	ID          uuid.UUID       `json:"id" example:"7f1d7c77-8a1f-4a0e-92ad-7f5fbb35c8d9"` // ID of the budget entry
	Category    string          `json:"category" example:"Food"`                           // Name of the category
	Month       uint8           `json:"month" example:"6"`                                 // Month, 1 to 12
	Year        int             `json:"year" example:"2024"`                               // Year
	BudgetLimit decimal.Decimal `json:"budgetLimit" example:"200"`                         // Spending limit
	TotalSpent  decimal.Decimal `json:"totalSpent" example:"50"`                           // Spent in the category, see CreateBudget and ListBudgets for the scope
	Remaining   decimal.Decimal `json:"remaining" example:"150"`                           // BudgetLimit minus TotalSpent. Negative when overspent.
	PeriodSpent decimal.Decimal `json:"periodSpent" example:"20"`                          // Spent in the category during the month of the entry
	Overspent   bool            `json:"overspent" example:"false"`                         // Remaining is negative
}

func newBudgetSummary(entry models.BudgetEntry, category string, totalSpent, periodSpent decimal.Decimal) BudgetSummary {
	remaining := entry.BudgetLimit.Sub(totalSpent)

	return BudgetSummary{
		ID:          entry.ID,
		Category:    category,
		Month:       entry.Month,
		Year:        entry.Year,
		BudgetLimit: entry.BudgetLimit,
		TotalSpent:  totalSpent,
		Remaining:   remaining,
		PeriodSpent: periodSpent,
		Overspent:   remaining.IsNegative(),
	}
}

// CreateBudget creates a new budget entry for the category, linked to the
// current income of the user.
//
// Existing entries for the same category and month are not checked, every
// call creates a new entry. TotalSpent of the summary is the sum of the
// expenses tagged with the new entry.
func (l *Ledger) CreateBudget(ctx context.Context, userID uuid.UUID, fields BudgetFields) (BudgetSummary, error) {
	fields, err := fields.validate()
	if err != nil {
		return BudgetSummary{}, err
	}

	var summary BudgetSummary
	err = l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		income, err := currentIncome(tx, userID)
		if err != nil {
			return err
		}

		category, err := resolveOrCreate(tx, userID, fields.Category)
		if err != nil {
			return err
		}

		entry := models.BudgetEntry{
			CategoryID:  category.ID,
			IncomeID:    income.ID,
			Month:       uint8(*fields.Month),
			Year:        *fields.Year,
			BudgetLimit: fields.Limit.Decimal,
		}

		err = tx.Create(&entry).Error
		if err != nil {
			return err
		}

		tagged, err := entry.Expenses(tx)
		if err != nil {
			return err
		}

		expenses, err := category.Expenses(tx)
		if err != nil {
			return err
		}

		summary = newBudgetSummary(entry, category.Name, sumAmounts(tagged), periodSpent(expenses, entry))
		return nil
	})
	if err != nil {
		return BudgetSummary{}, err
	}

	budgetsCreated.Inc()
	log.Debug().Str("user", userID.String()).Str("budget", summary.ID.String()).Msg("created budget entry")
	return summary, nil
}

// ListBudgets returns a summary for every budget entry of the user, newest
// period first.
//
// TotalSpent is the all time sum of the expenses in the category of the
// entry, independent of the month of the entry. PeriodSpent only contains
// the expenses dated in the month of the entry.
func (l *Ledger) ListBudgets(ctx context.Context, userID uuid.UUID) ([]BudgetSummary, error) {
	db := l.db.WithContext(ctx)

	var entries []models.BudgetEntry
	err := db.
		Preload("Category").
		Where("category_id IN (?)", ownedCategoryIDs(db, userID)).
		Order("year DESC, month DESC, created_at ASC").
		Find(&entries).Error
	if err != nil {
		return []BudgetSummary{}, err
	}

	// Entries of the same category share the expenses
	expensesByCategory := make(map[uuid.UUID][]models.Expense)

	summaries := make([]BudgetSummary, 0, len(entries))
	for _, entry := range entries {
		expenses, ok := expensesByCategory[entry.CategoryID]
		if !ok {
			expenses, err = entry.Category.Expenses(db)
			if err != nil {
				return []BudgetSummary{}, err
			}
			expensesByCategory[entry.CategoryID] = expenses
		}

		summaries = append(summaries, newBudgetSummary(entry, entry.Category.Name, sumAmounts(expenses), periodSpent(expenses, entry)))
	}

	return summaries, nil
}

// periodSpent sums the expenses that are dated in the month of the entry.
func periodSpent(expenses []models.Expense, entry models.BudgetEntry) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range expenses {
		if e.Date.InMonth(entry.Year, time.Month(entry.Month)) {
			sum = sum.Add(e.Amount)
		}
	}

	return roundSum(sum)
}

// sumAmounts returns the sum of the amounts of the expenses.
func sumAmounts(expenses []models.Expense) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range expenses {
		sum = sum.Add(e.Amount)
	}

	return roundSum(sum)
}

// roundSum removes floating point artifacts the store introduces when summing.
func roundSum(d decimal.Decimal) decimal.Decimal {
	return d.Round(8)
}

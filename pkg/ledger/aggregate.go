package ledger

import (
	"context"
	"errors"

	"github.com/envelope-zero/expenses/pkg/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// CategoryTotal is a sum grouped by category.
type CategoryTotal struct {
	Name  string          `json:"name" example:"Food"` // Name of the category
	Total decimal.Decimal `json:"total" example:"50"`  // Summed value
}

// CategoryTotals returns the sum of all expense amounts for every category
// of the user, highest total first. Categories without expenses are
// included with a total of 0.
func (l *Ledger) CategoryTotals(ctx context.Context, userID uuid.UUID) ([]CategoryTotal, error) {
	return categoryRollup(l.db.WithContext(ctx), userID, "expenses", "amount")
}

// BudgetTotals returns the sum of all budget limits for every category of
// the user, highest total first. Categories without budget entries are
// included with a total of 0.
func (l *Ledger) BudgetTotals(ctx context.Context, userID uuid.UUID) ([]CategoryTotal, error) {
	return categoryRollup(l.db.WithContext(ctx), userID, "budget_entries", "budget_limit")
}

// TopCategory returns the category with the highest summed expense amount.
// If the user has no expenses, nil is returned.
func (l *Ledger) TopCategory(ctx context.Context, userID uuid.UUID) (*CategoryTotal, error) {
	var totals []CategoryTotal

	err := l.db.WithContext(ctx).
		Table("categories").
		Select("categories.name AS name, SUM(expenses.amount) AS total").
		Joins("JOIN expenses ON expenses.category_id = categories.id").
		Where("categories.user_id = ?", userID).
		Group("categories.id, categories.name").
		Order("total DESC, categories.name ASC").
		Limit(1).
		Scan(&totals).
		Error
	if err != nil {
		return nil, err
	}

	if len(totals) == 0 {
		return nil, nil
	}

	top := totals[0]
	top.Total = roundSum(top.Total)
	return &top, nil
}

// MostRecentExpense returns the expense of the user that was created last.
// If the user has no expenses, nil is returned.
func (l *Ledger) MostRecentExpense(ctx context.Context, userID uuid.UUID) (*models.Expense, error) {
	db := l.db.WithContext(ctx)

	var expense models.Expense
	err := db.
		Preload("Category").
		Where("category_id IN (?)", ownedCategoryIDs(db, userID)).
		Order("created_at DESC").
		First(&expense).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return &expense, nil
}

// MostRecentBudget returns the budget entry of the user that was created last.
// If the user has no budget entries, nil is returned.
func (l *Ledger) MostRecentBudget(ctx context.Context, userID uuid.UUID) (*models.BudgetEntry, error) {
	db := l.db.WithContext(ctx)

	var entry models.BudgetEntry
	err := db.
		Where("category_id IN (?)", ownedCategoryIDs(db, userID)).
		Order("created_at DESC").
		First(&entry).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return &entry, nil
}

// Dashboard is the overview of the finances of a user.
type Dashboard struct {
	Income            *models.Income      `json:"income"`            // Current income, null if none is configured
	TopCategory       *CategoryTotal      `json:"topCategory"`       // Category with the most spending, null if there are no expenses
	MostRecentExpense *models.Expense     `json:"mostRecentExpense"` // Expense created last, null if there are none
	MostRecentBudget  *models.BudgetEntry `json:"mostRecentBudget"`  // Budget entry created last, null if there are none
	CategoryTotals    []CategoryTotal     `json:"categoryTotals"`    // Spending per category
	BudgetTotals      []CategoryTotal     `json:"budgetTotals"`      // Budget limits per category
}

// Dashboard computes all projections for the dashboard of the user.
func (l *Ledger) Dashboard(ctx context.Context, userID uuid.UUID) (Dashboard, error) {
	var d Dashboard
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		income, err := l.CurrentIncome(ctx, userID)
		if errors.Is(err, ErrNoIncomeConfigured) {
			return nil
		} else if err != nil {
			return err
		}

		d.Income = &income
		return nil
	})

	g.Go(func() (err error) {
		d.TopCategory, err = l.TopCategory(ctx, userID)
		return
	})

	g.Go(func() (err error) {
		d.MostRecentExpense, err = l.MostRecentExpense(ctx, userID)
		return
	})

	g.Go(func() (err error) {
		d.MostRecentBudget, err = l.MostRecentBudget(ctx, userID)
		return
	})

	g.Go(func() (err error) {
		d.CategoryTotals, err = l.CategoryTotals(ctx, userID)
		return
	})

	g.Go(func() (err error) {
		d.BudgetTotals, err = l.BudgetTotals(ctx, userID)
		return
	})

	if err := g.Wait(); err != nil {
		return Dashboard{}, err
	}

	return d, nil
}

// Report contains the spending and budget rollups of a user.
type Report struct {
	CategoryTotals []CategoryTotal `json:"categoryTotals"` // Spending per category
	BudgetTotals   []CategoryTotal `json:"budgetTotals"`   // Budget limits per category
	Budgets        []BudgetSummary `json:"budgets"`        // All budget entries with their spending
}

// Report computes the rollups for the reports of the user.
func (l *Ledger) Report(ctx context.Context, userID uuid.UUID) (Report, error) {
	var r Report
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		r.CategoryTotals, err = l.CategoryTotals(ctx, userID)
		return
	})

	g.Go(func() (err error) {
		r.BudgetTotals, err = l.BudgetTotals(ctx, userID)
		return
	})

	g.Go(func() (err error) {
		r.Budgets, err = l.ListBudgets(ctx, userID)
		return
	})

	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	return r, nil
}

// categoryRollup sums column of table per category of the user. The table
// must reference categories with a category_id column.
func categoryRollup(db *gorm.DB, userID uuid.UUID, table, column string) ([]CategoryTotal, error) {
	var totals []CategoryTotal

	err := db.
		Table("categories").
		Select("categories.name AS name, COALESCE(SUM(t."+column+"), 0) AS total").
		Joins("LEFT JOIN "+table+" t ON t.category_id = categories.id").
		Where("categories.user_id = ?", userID).
		Group("categories.id, categories.name").
		Order("total DESC, categories.name ASC").
		Scan(&totals).
		Error
	if err != nil {
		return []CategoryTotal{}, err
	}

	for i := range totals {
		totals[i].Total = roundSum(totals[i].Total)
	}

	if totals == nil {
		return []CategoryTotal{}, nil
	}

	return totals, nil
}

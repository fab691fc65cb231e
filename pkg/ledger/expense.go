package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/envelope-zero/expenses/internal/types"
	"github.com/envelope-zero/expenses/pkg/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ExpenseFields are the user supplied values of an expense.
type ExpenseFields struct {
	Description   string
	Merchant      string
	Category      string // Name of the category, created if it does not exist
	Amount        decimal.NullDecimal
	Currency      string     // ISO 4217 code, case insensitive
	BudgetEntryID *uuid.UUID // Optional budget entry of the same category
}

// validate checks all fields and returns them normalized.
func (f ExpenseFields) validate() (ExpenseFields, error) {
	var v validation

	f.Description = strings.TrimSpace(f.Description)
	f.Merchant = strings.TrimSpace(f.Merchant)
	f.Category = strings.TrimSpace(f.Category)
	f.Currency = strings.TrimSpace(f.Currency)

	v.check(f.Description != "", "description", "description is required")
	v.check(f.Merchant != "", "merchant", "merchant is required")
	v.check(f.Category != "", "category", "category is required")

	if v.check(f.Amount.Valid, "amount", "amount is required") {
		v.check(f.Amount.Decimal.IsPositive(), "amount", "amount must be greater than 0")
	}

	if v.check(f.Currency != "", "currency", "currency is required") {
		unit, err := currency.ParseISO(f.Currency)
		if v.check(err == nil, "currency", fmt.Sprintf("currency '%s' is not an ISO 4217 currency code", f.Currency)) {
			f.Currency = unit.String()
		}
	}

	if f.BudgetEntryID != nil && *f.BudgetEntryID == uuid.Nil {
		f.BudgetEntryID = nil
	}

	return f, v.err()
}

// OverspendWarning is returned together with an expense whose amount
// exceeds the current income of the user. The expense is recorded anyway.
type OverspendWarning struct {
	Amount decimal.Decimal
	Income decimal.Decimal
}

func (w OverspendWarning) String() string {
	return fmt.Sprintf("you cannot afford this expense: the amount of %s exceeds your income of %s", w.Amount, w.Income)
}

// ExpenseResult is the outcome of recording or editing an expense.
type ExpenseResult struct {
	Expense   models.Expense
	Overspend *OverspendWarning // Set if the amount exceeds the current income
}

// RecordExpense validates the fields and records a new expense dated
// on the current day.
//
// On a *ValidationError or ErrNoIncomeConfigured nothing is persisted,
// including the category if it would have been created.
func (l *Ledger) RecordExpense(ctx context.Context, userID uuid.UUID, fields ExpenseFields) (ExpenseResult, error) {
	fields, err := fields.validate()
	if err != nil {
		return ExpenseResult{}, err
	}

	var result ExpenseResult
	err = l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		category, err := resolveOrCreate(tx, userID, fields.Category)
		if err != nil {
			return err
		}

		income, err := currentIncome(tx, userID)
		if err != nil {
			return err
		}

		err = checkBudgetEntryTag(tx, userID, category, fields.BudgetEntryID)
		if err != nil {
			return err
		}

		expense := models.Expense{
			CategoryID:    category.ID,
			BudgetEntryID: fields.BudgetEntryID,
			Description:   fields.Description,
			Merchant:      fields.Merchant,
			Amount:        fields.Amount.Decimal,
			Currency:      fields.Currency,
			Date:          types.DateOf(l.now().In(time.UTC)),
		}

		err = tx.Create(&expense).Error
		if err != nil {
			return err
		}
		expense.Category = category

		result = ExpenseResult{Expense: expense, Overspend: overspend(expense.Amount, &income)}
		return nil
	})
	if err != nil {
		return ExpenseResult{}, err
	}

	expensesRecorded.Inc()
	if result.Overspend != nil {
		expensesOverspent.Inc()
		log.Info().Str("user", userID.String()).Str("expense", result.Expense.ID.String()).Msg(result.Overspend.String())
	}

	return result, nil
}

// EditExpense replaces all fields of an expense owned by the user.
// The ID and the date of the expense do not change.
//
// If the user does not own an expense with the ID, ErrExpenseNotFound
// is returned. An income is not required, but if one is configured the
// overspend check is applied.
func (l *Ledger) EditExpense(ctx context.Context, userID, expenseID uuid.UUID, fields ExpenseFields) (ExpenseResult, error) {
	var result ExpenseResult

	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		expense, err := ownedExpense(tx, userID, expenseID)
		if err != nil {
			return err
		}

		fields, err := fields.validate()
		if err != nil {
			return err
		}

		category, err := resolveOrCreate(tx, userID, fields.Category)
		if err != nil {
			return err
		}

		err = checkBudgetEntryTag(tx, userID, category, fields.BudgetEntryID)
		if err != nil {
			return err
		}

		expense.CategoryID = category.ID
		expense.Category = category
		expense.BudgetEntryID = fields.BudgetEntryID
		expense.Description = fields.Description
		expense.Merchant = fields.Merchant
		expense.Amount = fields.Amount.Decimal
		expense.Currency = fields.Currency

		err = tx.Omit(clause.Associations).Save(&expense).Error
		if err != nil {
			return err
		}

		income, err := currentIncome(tx, userID)
		if err != nil && !errors.Is(err, ErrNoIncomeConfigured) {
			return err
		}

		var current *models.Income
		if err == nil {
			current = &income
		}

		result = ExpenseResult{Expense: expense, Overspend: overspend(expense.Amount, current)}
		return nil
	})
	if err != nil {
		return ExpenseResult{}, err
	}

	return result, nil
}

// DeleteExpense deletes an expense owned by the user. It reports whether
// an expense was deleted, IDs of expenses the user does not own are ignored.
func (l *Ledger) DeleteExpense(ctx context.Context, userID, expenseID uuid.UUID) (bool, error) {
	db := l.db.WithContext(ctx)

	tx := db.
		Where("id = ? AND category_id IN (?)", expenseID, ownedCategoryIDs(db, userID)).
		Delete(&models.Expense{})
	if tx.Error != nil {
		return false, tx.Error
	}

	return tx.RowsAffected > 0, nil
}

// GetExpense returns an expense owned by the user.
func (l *Ledger) GetExpense(ctx context.Context, userID, expenseID uuid.UUID) (models.Expense, error) {
	return ownedExpense(l.db.WithContext(ctx), userID, expenseID)
}

// ExpenseFilter restricts the expenses returned by ListExpenses.
// Zero values do not filter.
type ExpenseFilter struct {
	Category string // Exact category name
	Currency string // Currency code, case insensitive
	Merchant string // Glob pattern matched against the merchant, e.g. "Corner*"
	Offset   uint   // Number of matching expenses to skip
	Limit    int    // Maximum number of expenses to return, 0 or less returns all
}

// ListExpenses returns the user's expenses matching the filter, newest
// first, together with the total number of matching expenses.
func (l *Ledger) ListExpenses(ctx context.Context, userID uuid.UUID, filter ExpenseFilter) ([]models.Expense, int, error) {
	db := l.db.WithContext(ctx)

	categories := ownedCategoryIDs(db, userID)
	if filter.Category != "" {
		categories = categories.Where("name = ?", strings.TrimSpace(filter.Category))
	}

	q := db.
		Preload("Category").
		Where("category_id IN (?)", categories).
		Order("date DESC, created_at DESC")

	if filter.Currency != "" {
		q = q.Where("currency = ?", strings.ToUpper(strings.TrimSpace(filter.Currency)))
	}

	var expenses []models.Expense
	err := q.Find(&expenses).Error
	if err != nil {
		return []models.Expense{}, 0, err
	}

	matching := make([]models.Expense, 0, len(expenses))
	for _, e := range expenses {
		if filter.Merchant != "" && !glob.Glob(filter.Merchant, e.Merchant) {
			continue
		}
		matching = append(matching, e)
	}

	total := len(matching)
	if int(filter.Offset) >= total {
		return []models.Expense{}, total, nil
	}
	matching = matching[filter.Offset:]

	if filter.Limit > 0 && filter.Limit < len(matching) {
		matching = matching[:filter.Limit]
	}

	return matching, total, nil
}

// ownedCategoryIDs is a subquery selecting the IDs of all categories of the user.
func ownedCategoryIDs(db *gorm.DB, userID uuid.UUID) *gorm.DB {
	return db.Session(&gorm.Session{NewDB: true}).
		Model(&models.Category{}).
		Select("id").
		Where("user_id = ?", userID)
}

// ownedExpense looks up the expense by ID, restricted to expenses in
// categories of the user.
func ownedExpense(tx *gorm.DB, userID, expenseID uuid.UUID) (models.Expense, error) {
	var expense models.Expense

	err := tx.
		Preload("Category").
		Where("id = ? AND category_id IN (?)", expenseID, ownedCategoryIDs(tx, userID)).
		First(&expense).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		return models.Expense{}, ErrExpenseNotFound
	}

	return expense, err
}

// checkBudgetEntryTag verifies that an expense in the category may be tagged
// with the budget entry.
func checkBudgetEntryTag(tx *gorm.DB, userID uuid.UUID, category models.Category, budgetEntryID *uuid.UUID) error {
	if budgetEntryID == nil {
		return nil
	}

	entries, err := category.BudgetEntries(tx)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.ID == *budgetEntryID {
			return nil
		}
	}

	// The entry exists for the user, but in another category
	var count int64
	err = tx.
		Model(&models.BudgetEntry{}).
		Where("id = ? AND category_id IN (?)", *budgetEntryID, ownedCategoryIDs(tx, userID)).
		Count(&count).Error
	if err != nil {
		return err
	}

	if count == 0 {
		return &ValidationError{Errors: []FieldError{{Field: "budgetEntryId", Message: "there is no budget entry with this ID for your user"}}}
	}

	return &ValidationError{Errors: []FieldError{{Field: "budgetEntryId", Message: "the budget entry must belong to the category of the expense"}}}
}

// overspend returns a warning if the amount exceeds the income.
func overspend(amount decimal.Decimal, income *models.Income) *OverspendWarning {
	if income == nil || !amount.GreaterThan(income.Value) {
		return nil
	}

	return &OverspendWarning{Amount: amount, Income: income.Value}
}

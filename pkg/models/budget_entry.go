package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetEntry is the spending limit for one category in one month.
//
// Nothing prevents multiple entries for the same category and month.
type BudgetEntry struct {
	DefaultModel
	CategoryID  uuid.UUID       `json:"categoryId" gorm:"index" example:"1b4a5e0e-2f0b-4d43-a8e7-58b5b3c5b2c1"` // ID of the category the entry limits
	Category    Category        `json:"-"`
	IncomeID    uuid.UUID       `json:"incomeId" example:"d1e9a7b3-7a7f-4f4e-9d3c-1b0e3e8f6b1a"` // ID of the income that was current when the entry was created
	Income      Income          `json:"-"`
	Month       uint8           `json:"month" example:"6"`                                     // Month, 1 to 12
	Year        int             `json:"year" example:"2024"`                                   // Year
	BudgetLimit decimal.Decimal `json:"budgetLimit" gorm:"type:DECIMAL(20,8)" example:"200"` // Spending limit for the month
}

func (BudgetEntry) Self() string {
	return "Budget Entry"
}

// Expenses returns all expenses explicitly tagged with the budget entry.
func (b BudgetEntry) Expenses(db *gorm.DB) ([]Expense, error) {
	var expenses []Expense

	err := db.
		Where("budget_entry_id = ?", b.ID).
		Order("date DESC, created_at DESC").
		Find(&expenses).Error
	if err != nil {
		return []Expense{}, err
	}

	return expenses, nil
}

package models

import (
	"strings"
	"time"

	"github.com/envelope-zero/expenses/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is a single transaction recorded against a category.
type Expense struct {
	DefaultModel
	CategoryID    uuid.UUID       `json:"categoryId" gorm:"index" example:"1b4a5e0e-2f0b-4d43-a8e7-58b5b3c5b2c1"` // ID of the category
	Category      Category        `json:"-"`
	BudgetEntryID *uuid.UUID      `json:"budgetEntryId" example:"7f1d7c77-8a1f-4a0e-92ad-7f5fbb35c8d9"` // ID of the budget entry the expense is tagged to, if any
	BudgetEntry   *BudgetEntry    `json:"-"`
	Description   string          `json:"description" example:"Weekly groceries"`            // What the money was spent on
	Merchant      string          `json:"merchant" example:"Corner Shop"`                    // Where the money was spent
	Amount        decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"42.17"` // Amount spent
	Currency      string          `json:"currency" example:"USD"`                            // ISO 4217 currency code. Stored, never converted.
	Date          types.Date      `json:"date" gorm:"index" example:"2024-06-03"`            // Day the expense was recorded
}

func (Expense) Self() string {
	return "Expense"
}

// BeforeSave
//   - trims whitespace from string fields
//   - ensures that the BudgetEntryID is nil and not a pointer to a nil UUID
//   - defaults the date to the current day
func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Description = strings.TrimSpace(e.Description)
	e.Merchant = strings.TrimSpace(e.Merchant)
	e.Currency = strings.TrimSpace(e.Currency)

	if e.BudgetEntryID != nil && *e.BudgetEntryID == uuid.Nil {
		e.BudgetEntryID = nil
	}

	if e.Date.IsZero() {
		e.Date = types.DateOf(time.Now().In(time.UTC))
	}

	return nil
}

package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Income is a declared income figure of a user.
//
// Incomes are never updated. Setting a new income appends a new row,
// the current income of a user is the most recently created one.
type Income struct {
	DefaultModel
	UserID uuid.UUID       `json:"userId" gorm:"index" example:"3eb0a1d4-3b4c-4a0f-9a6a-6e0ac3cd7ff1"` // ID of the user the income belongs to
	User   User            `json:"-"`
	Value  decimal.Decimal `json:"value" gorm:"type:DECIMAL(20,8)" example:"2800"` // Income value
}

func (Income) Self() string {
	return "Income"
}

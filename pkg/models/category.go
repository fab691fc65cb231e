package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is a named spending bucket of a user.
type Category struct {
	DefaultModel
	UserID uuid.UUID `json:"userId" gorm:"uniqueIndex:category_user_name" example:"3eb0a1d4-3b4c-4a0f-9a6a-6e0ac3cd7ff1"` // ID of the user owning the category
	User   User      `json:"-"`
	Name   string    `json:"name" gorm:"uniqueIndex:category_user_name" example:"Food"` // Name of the category, unique per user
}

func (Category) Self() string {
	return "Category"
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	return nil
}

// Expenses returns all expenses of the category.
func (c Category) Expenses(db *gorm.DB) ([]Expense, error) {
	var expenses []Expense

	err := db.
		Where("category_id = ?", c.ID).
		Order("date DESC, created_at DESC").
		Find(&expenses).Error
	if err != nil {
		return []Expense{}, err
	}

	return expenses, nil
}

// BudgetEntries returns all budget entries of the category in insertion order.
func (c Category) BudgetEntries(db *gorm.DB) ([]BudgetEntry, error) {
	var entries []BudgetEntry

	err := db.
		Where("category_id = ?", c.ID).
		Order("created_at ASC").
		Find(&entries).Error
	if err != nil {
		return []BudgetEntry{}, err
	}

	return entries, nil
}

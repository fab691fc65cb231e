package models

import (
	"strings"

	"gorm.io/gorm"
)

// User is the owner of all other resources.
//
// Incomes and Categories reference the user directly, BudgetEntries and
// Expenses transitively through their Category.
type User struct {
	DefaultModel
	Email        string `json:"email" gorm:"uniqueIndex" example:"jane@example.com"` // Email address used to log in
	PasswordHash string `json:"-"`                                                   // bcrypt hash of the password
}

func (User) Self() string {
	return "User"
}

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	return nil
}

// Categories returns all categories owned by the user, ordered by name.
func (u User) Categories(db *gorm.DB) ([]Category, error) {
	var categories []Category

	err := db.
		Where("user_id = ?", u.ID).
		Order("name ASC").
		Find(&categories).Error
	if err != nil {
		return []Category{}, err
	}

	return categories, nil
}

// Incomes returns the income history of the user, newest first.
func (u User) Incomes(db *gorm.DB) ([]Income, error) {
	var incomes []Income

	err := db.
		Where("user_id = ?", u.ID).
		Order("created_at DESC").
		Find(&incomes).Error
	if err != nil {
		return []Income{}, err
	}

	return incomes, nil
}

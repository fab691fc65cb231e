package models_test

import (
	"time"

	"github.com/envelope-zero/expenses/internal/types"
	"github.com/envelope-zero/expenses/pkg/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestExpenseBeforeSave() {
	nilID := uuid.Nil
	e := models.Expense{
		Description:   "  Groceries ",
		Merchant:      "\tCorner Shop",
		Currency:      " USD ",
		BudgetEntryID: &nilID,
	}

	err := e.BeforeSave(suite.db)
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), "Groceries", e.Description)
	assert.Equal(suite.T(), "Corner Shop", e.Merchant)
	assert.Equal(suite.T(), "USD", e.Currency)
	assert.Nil(suite.T(), e.BudgetEntryID)
	assert.True(suite.T(), types.DateOf(time.Now().In(time.UTC)).Equal(e.Date))
}

func (suite *TestSuiteStandard) TestBudgetEntryExpenses() {
	user := suite.createTestUser("tagged@example.com")
	income := suite.createTestIncome(user, 1000)
	category := suite.createTestCategory(models.Category{UserID: user.ID, Name: "Food"})

	entry := models.BudgetEntry{CategoryID: category.ID, IncomeID: income.ID, Month: 6, Year: 2024, BudgetLimit: decimal.NewFromFloat(200)}
	suite.Require().Nil(suite.db.Create(&entry).Error)

	tagged := suite.createTestExpense(models.Expense{CategoryID: category.ID, BudgetEntryID: &entry.ID, Amount: decimal.NewFromFloat(12)})
	_ = suite.createTestExpense(models.Expense{CategoryID: category.ID, Amount: decimal.NewFromFloat(3)})

	expenses, err := entry.Expenses(suite.db)
	suite.Require().Nil(err)
	suite.Require().Len(expenses, 1)
	suite.Assert().Equal(tagged.ID, expenses[0].ID)
	suite.Assert().True(decimal.NewFromFloat(12).Equal(expenses[0].Amount))
}

package models_test

import (
	"strings"

	"github.com/envelope-zero/expenses/internal/types"
	"github.com/envelope-zero/expenses/pkg/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCategoryTrimWhitespace() {
	name := "\t Whitespace galore!   "

	category := suite.createTestCategory(models.Category{
		Name:   name,
		UserID: suite.createTestUser("trim@example.com").ID,
	})

	assert.Equal(suite.T(), strings.TrimSpace(name), category.Name)
}

func (suite *TestSuiteStandard) TestCategoryExpenses() {
	user := suite.createTestUser("expenses@example.com")
	food := suite.createTestCategory(models.Category{UserID: user.ID, Name: "Food"})
	transport := suite.createTestCategory(models.Category{UserID: user.ID, Name: "Transport"})

	older := suite.createTestExpense(models.Expense{CategoryID: food.ID, Amount: decimal.NewFromFloat(10), Date: types.NewDate(2024, 1, 1)})
	newer := suite.createTestExpense(models.Expense{CategoryID: food.ID, Amount: decimal.NewFromFloat(20), Date: types.NewDate(2024, 2, 1)})
	_ = suite.createTestExpense(models.Expense{CategoryID: transport.ID, Amount: decimal.NewFromFloat(5)})

	expenses, err := food.Expenses(suite.db)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), expenses, 2)
	assert.Equal(suite.T(), newer.ID, expenses[0].ID)
	assert.Equal(suite.T(), older.ID, expenses[1].ID)
}

func (suite *TestSuiteStandard) TestCategoryBudgetEntries() {
	user := suite.createTestUser("entries@example.com")
	income := suite.createTestIncome(user, 1000)
	category := suite.createTestCategory(models.Category{UserID: user.ID, Name: "Food"})

	for _, month := range []uint8{5, 6} {
		err := suite.db.Create(&models.BudgetEntry{
			CategoryID:  category.ID,
			IncomeID:    income.ID,
			Month:       month,
			Year:        2024,
			BudgetLimit: decimal.NewFromFloat(200),
		}).Error
		require.Nil(suite.T(), err)
	}

	entries, err := category.BudgetEntries(suite.db)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), entries, 2)
	assert.Equal(suite.T(), uint8(5), entries[0].Month)
	assert.Equal(suite.T(), uint8(6), entries[1].Month)
}

func (suite *TestSuiteStandard) TestCategoryExpensesDBFail() {
	category := suite.createTestCategory(models.Category{
		UserID: suite.createTestUser("fail@example.com").ID,
		Name:   "Food",
	})
	suite.CloseDB()

	_, err := category.Expenses(suite.db)
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}

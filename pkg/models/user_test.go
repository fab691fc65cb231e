package models_test

import (
	"github.com/envelope-zero/expenses/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestUserEmailNormalized() {
	user := suite.createTestUser("  Jane.Doe@Example.com ")
	assert.Equal(suite.T(), "jane.doe@example.com", user.Email)
}

func (suite *TestSuiteStandard) TestUserCategories() {
	user := suite.createTestUser("categories@example.com")
	other := suite.createTestUser("someone-else@example.com")

	_ = suite.createTestCategory(models.Category{UserID: user.ID, Name: "Transport"})
	_ = suite.createTestCategory(models.Category{UserID: user.ID, Name: "Food"})
	_ = suite.createTestCategory(models.Category{UserID: other.ID, Name: "Rent"})

	categories, err := user.Categories(suite.db)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), categories, 2)
	assert.Equal(suite.T(), "Food", categories[0].Name)
	assert.Equal(suite.T(), "Transport", categories[1].Name)
}

func (suite *TestSuiteStandard) TestUserIncomesNewestFirst() {
	user := suite.createTestUser("incomes@example.com")

	_ = suite.createTestIncome(user, 1000)
	latest := suite.createTestIncome(user, 1200)

	incomes, err := user.Incomes(suite.db)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), incomes, 2)
	assert.Equal(suite.T(), latest.ID, incomes[0].ID)
}

package ledger_test

import (
	"testing"

	"github.com/envelope-zero/expenses/pkg/ledger"
	"github.com/envelope-zero/expenses/pkg/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestCreateBudget() {
	user := suite.createTestUser("budget@example.com")
	income := suite.createTestIncome(user, 2000)

	summary, err := suite.ledger.CreateBudget(suite.ctx, user.ID, budgetFields("Food", 6, 2024, 200))
	suite.Require().Nil(err)
	suite.Assert().Equal("Food", summary.Category)
	suite.Assert().Equal(uint8(6), summary.Month)
	suite.Assert().Equal(2024, summary.Year)
	suite.Assert().True(summary.BudgetLimit.Equal(decimal.NewFromFloat(200)))
	suite.Assert().True(summary.TotalSpent.IsZero())
	suite.Assert().True(summary.Remaining.Equal(decimal.NewFromFloat(200)))
	suite.Assert().False(summary.Overspent)

	var entry models.BudgetEntry
	suite.Require().Nil(suite.db.Where("id = ?", summary.ID).First(&entry).Error)
	suite.Assert().Equal(income.ID, entry.IncomeID, "The entry must link the current income")
}

func (suite *TestSuiteStandard) TestCreateBudgetWithPriorExpenses() {
	user := suite.createTestUser("budget-prior@example.com")
	suite.createTestIncome(user, 2000)
	suite.createTestExpense(user, "Food", 50)

	summary := suite.createTestBudget(user, "Food", 6, 2024, 200)
	suite.Assert().True(summary.TotalSpent.IsZero(), "No expense can be tagged with a new entry")
	suite.Assert().True(summary.Remaining.Equal(decimal.NewFromFloat(200)))
	suite.Assert().True(summary.PeriodSpent.Equal(decimal.NewFromFloat(50)))

	categories, err := suite.ledger.ListCategories(suite.ctx, user.ID)
	suite.Require().Nil(err)
	suite.Assert().Len(categories, 1, "The existing category must be reused")
}

func (suite *TestSuiteStandard) TestCreateBudgetValidation() {
	user := suite.createTestUser("budget-invalid@example.com")
	suite.createTestIncome(user, 2000)

	month := 13
	year := 0

	tests := []struct {
		name   string
		fields ledger.BudgetFields
		errors map[string]string
	}{
		{"Missing", ledger.BudgetFields{}, map[string]string{
			"category": "category is required",
			"month":    "month is required",
			"year":     "year is required",
			"limit":    "limit is required",
		}},
		{"Out of range", ledger.BudgetFields{Category: "Food", Month: &month, Year: &year, Limit: decimal.NewNullDecimal(decimal.NewFromFloat(-1))}, map[string]string{
			"month": "month must be between 1 and 12",
			"year":  "year must be greater than 0",
			"limit": "limit must be greater than 0",
		}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			_, err := suite.ledger.CreateBudget(suite.ctx, user.ID, tt.fields)

			var validationErr *ledger.ValidationError
			suite.Require().ErrorAs(err, &validationErr)
			suite.Assert().Equal(tt.errors, validationErr.Fields())
		})
	}

	suite.Assert().Equal(int64(0), suite.countRows(&models.BudgetEntry{}))
}

func (suite *TestSuiteStandard) TestCreateBudgetNoIncome() {
	user := suite.createTestUser("budget-no-income@example.com")

	_, err := suite.ledger.CreateBudget(suite.ctx, user.ID, budgetFields("Food", 6, 2024, 200))
	suite.Assert().ErrorIs(err, ledger.ErrNoIncomeConfigured)
	suite.Assert().Equal(int64(0), suite.countRows(&models.Category{}))
	suite.Assert().Equal(int64(0), suite.countRows(&models.BudgetEntry{}))
}

func (suite *TestSuiteStandard) TestCreateBudgetAllowsDuplicates() {
	user := suite.createTestUser("budget-dup@example.com")
	suite.createTestIncome(user, 2000)

	first := suite.createTestBudget(user, "Food", 6, 2024, 200)
	second := suite.createTestBudget(user, "Food", 6, 2024, 300)

	suite.Assert().NotEqual(first.ID, second.ID)
	suite.Assert().Equal(int64(2), suite.countRows(&models.BudgetEntry{}))
}

func (suite *TestSuiteStandard) TestListBudgets() {
	user := suite.createTestUser("budget-list@example.com")
	other := suite.createTestUser("budget-list-other@example.com")
	suite.createTestIncome(user, 2000)
	suite.createTestIncome(other, 2000)

	june := suite.createTestBudget(user, "Food", 6, 2024, 200)
	july := suite.createTestBudget(user, "Food", 7, 2024, 40)
	suite.createTestBudget(other, "Food", 6, 2024, 500)

	// Both expenses are dated in June 2024
	suite.createTestExpense(user, "Food", 30)
	suite.createTestExpense(user, "Food", 20)
	suite.createTestExpense(other, "Food", 1000)

	summaries, err := suite.ledger.ListBudgets(suite.ctx, user.ID)
	suite.Require().Nil(err)
	suite.Require().Len(summaries, 2)

	// Newest period first
	suite.Assert().Equal(july.ID, summaries[0].ID)
	suite.Assert().Equal(june.ID, summaries[1].ID)

	// The total spent is category scoped for every entry
	for _, s := range summaries {
		suite.Assert().Equal("Food", s.Category)
		suite.Assert().True(s.TotalSpent.Equal(decimal.NewFromFloat(50)), "Total spent is %s", s.TotalSpent)
	}

	suite.Assert().True(summaries[0].Remaining.Equal(decimal.NewFromFloat(-10)))
	suite.Assert().True(summaries[0].Overspent)
	suite.Assert().True(summaries[0].PeriodSpent.IsZero())

	suite.Assert().True(summaries[1].Remaining.Equal(decimal.NewFromFloat(150)))
	suite.Assert().False(summaries[1].Overspent)
	suite.Assert().True(summaries[1].PeriodSpent.Equal(decimal.NewFromFloat(50)))
}

func (suite *TestSuiteStandard) TestListBudgetsEmpty() {
	user := suite.createTestUser("budget-empty@example.com")

	summaries, err := suite.ledger.ListBudgets(suite.ctx, user.ID)
	suite.Require().Nil(err)
	suite.Assert().Len(summaries, 0)
}

func (suite *TestSuiteStandard) TestListBudgetsDBFail() {
	user := suite.createTestUser("budget-fail@example.com")
	suite.CloseDB()

	_, err := suite.ledger.ListBudgets(suite.ctx, user.ID)
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}

package ledger_test

import (
	"testing"

	"github.com/envelope-zero/expenses/pkg/ledger"
	"github.com/envelope-zero/expenses/pkg/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestCurrentIncomeIsLatest() {
	user := suite.createTestUser("income@example.com")

	_, err := suite.ledger.CurrentIncome(suite.ctx, user.ID)
	suite.Assert().ErrorIs(err, ledger.ErrNoIncomeConfigured)

	suite.createTestIncome(user, 1000)
	latest := suite.createTestIncome(user, 1500)

	current, err := suite.ledger.CurrentIncome(suite.ctx, user.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(latest.ID, current.ID)
	suite.Assert().True(current.Value.Equal(decimal.NewFromFloat(1500)))
	suite.Assert().Equal(int64(2), suite.countRows(&models.Income{}), "Older incomes must be kept")
}

func (suite *TestSuiteStandard) TestSetIncomeValidation() {
	user := suite.createTestUser("invalid-income@example.com")

	tests := []struct {
		name  string
		value decimal.NullDecimal
		msg   string
	}{
		{"Missing", decimal.NullDecimal{}, "income is required"},
		{"Zero", decimal.NewNullDecimal(decimal.Zero), "income must be greater than 0"},
		{"Negative", decimal.NewNullDecimal(decimal.NewFromFloat(-10)), "income must be greater than 0"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			_, err := suite.ledger.SetIncome(suite.ctx, user.ID, tt.value)

			var validationErr *ledger.ValidationError
			suite.Require().ErrorAs(err, &validationErr)
			suite.Assert().Equal(map[string]string{"value": tt.msg}, validationErr.Fields())
		})
	}

	suite.Assert().Equal(int64(0), suite.countRows(&models.Income{}))
}

func (suite *TestSuiteStandard) TestSetIncomeUnknownUser() {
	_, err := suite.ledger.SetIncome(suite.ctx, uuid.New(), decimal.NewNullDecimal(decimal.NewFromFloat(100)))
	suite.Assert().NotNil(err, "Incomes must reference an existing user")
}

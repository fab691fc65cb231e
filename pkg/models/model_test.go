package models_test

import (
	"time"

	"github.com/envelope-zero/expenses/pkg/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestModelTimeUTC() {
	tz, _ := time.LoadLocation("Europe/Berlin")

	model := models.DefaultModel{
		Timestamps: models.Timestamps{
			CreatedAt: time.Date(2000, 1, 2, 3, 4, 5, 6, tz),
			UpdatedAt: time.Date(2001, 2, 3, 4, 5, 6, 7, tz),
		},
	}

	err := model.AfterFind(suite.db)
	if err != nil {
		assert.Fail(suite.T(), "model.AfterFind failed")
	}

	assert.Equal(suite.T(), time.UTC, model.CreatedAt.Location(), "Timezone for model is not UTC")
	assert.Equal(suite.T(), time.UTC, model.UpdatedAt.Location(), "Timezone for model is not UTC")
}

func (suite *TestSuiteStandard) TestModelBeforeCreateKeepsID() {
	id := uuid.New()
	model := models.DefaultModel{ID: id}

	assert.Nil(suite.T(), model.BeforeCreate(suite.db))
	assert.Equal(suite.T(), id, model.ID)

	model = models.DefaultModel{}
	assert.Nil(suite.T(), model.BeforeCreate(suite.db))
	assert.NotEqual(suite.T(), uuid.Nil, model.ID)
}

func (suite *TestSuiteStandard) TestModelSelf() {
	tests := []struct {
		model models.Model
		name  string
	}{
		{models.User{}, "User"},
		{models.Income{}, "Income"},
		{models.Category{}, "Category"},
		{models.BudgetEntry{}, "Budget Entry"},
		{models.Expense{}, "Expense"},
	}

	for _, tt := range tests {
		assert.Equal(suite.T(), tt.name, tt.model.Self())
	}
}

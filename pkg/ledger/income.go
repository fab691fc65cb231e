package ledger

import (
	"context"

	"github.com/envelope-zero/expenses/pkg/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SetIncome records a new income for the user. Older incomes are kept,
// the new one becomes the current income.
func (l *Ledger) SetIncome(ctx context.Context, userID uuid.UUID, value decimal.NullDecimal) (models.Income, error) {
	var v validation
	if v.check(value.Valid, "value", "income is required") {
		v.check(value.Decimal.IsPositive(), "value", "income must be greater than 0")
	}
	if err := v.err(); err != nil {
		return models.Income{}, err
	}

	income := models.Income{UserID: userID, Value: value.Decimal}
	err := l.db.WithContext(ctx).Create(&income).Error
	if err != nil {
		return models.Income{}, err
	}

	return income, nil
}

// CurrentIncome returns the most recently created income of the user.
//
// If the user never set an income, ErrNoIncomeConfigured is returned.
func (l *Ledger) CurrentIncome(ctx context.Context, userID uuid.UUID) (models.Income, error) {
	return currentIncome(l.db.WithContext(ctx), userID)
}

func currentIncome(tx *gorm.DB, userID uuid.UUID) (models.Income, error) {
	incomes, err := models.User{DefaultModel: models.DefaultModel{ID: userID}}.Incomes(tx)
	if err != nil {
		return models.Income{}, err
	}

	if len(incomes) == 0 {
		return models.Income{}, ErrNoIncomeConfigured
	}

	return incomes[0], nil
}

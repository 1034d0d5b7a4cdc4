package models_test

import (
	"time"

	"github.com/budgetflow/backend/internal/models"
	"github.com/budgetflow/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestRecurringItemDayOfMonthOutOfRange() {
	for _, day := range []int{0, -1, 32} {
		item := models.RecurringItem{
			Label:      "Rent",
			Amount:     decimal.NewFromFloat(743.17),
			Type:       models.TypeExpense,
			DayOfMonth: day,
		}

		err := models.DB.Create(&item).Error
		assert.ErrorIs(suite.T(), err, models.ErrDayOfMonthOutOfRange, "dayOfMonth %d was not rejected", day)
	}
}

func (suite *TestSuiteStandard) TestRecurringItemNegativeAmount() {
	item := models.RecurringItem{
		Label:      "Rent",
		Amount:     decimal.NewFromFloat(-743.17),
		Type:       models.TypeExpense,
		DayOfMonth: 1,
	}

	err := models.DB.Create(&item).Error
	assert.ErrorIs(suite.T(), err, models.ErrAmountNegative)
}

func (suite *TestSuiteStandard) TestRecurringItemSignedAmount() {
	expense := models.RecurringItem{Amount: decimal.NewFromFloat(15.99), Type: models.TypeExpense}
	income := models.RecurringItem{Amount: decimal.NewFromFloat(3000), Type: models.TypeIncome}

	assert.True(suite.T(), expense.SignedAmount().Equal(decimal.NewFromFloat(-15.99)))
	assert.True(suite.T(), income.SignedAmount().Equal(decimal.NewFromFloat(3000)))
}

func (suite *TestSuiteStandard) TestRecurringItemFiresInWithoutWindow() {
	item := models.RecurringItem{Amount: decimal.NewFromFloat(15.99), Type: models.TypeExpense, DayOfMonth: 5}

	assert.True(suite.T(), item.FiresIn(types.NewMonth(1999, 1)))
	assert.True(suite.T(), item.FiresIn(types.NewMonth(2100, 12)))
}

func (suite *TestSuiteStandard) TestRecurringItemFiresInWindow() {
	start := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	duration := 3

	item := models.RecurringItem{
		Amount:         decimal.NewFromFloat(15.99),
		Type:           models.TypeExpense,
		DayOfMonth:     5,
		StartDate:      &start,
		DurationMonths: &duration,
	}

	assert.False(suite.T(), item.FiresIn(types.NewMonth(2023, 12)))
	assert.True(suite.T(), item.FiresIn(types.NewMonth(2024, 1)))
	assert.True(suite.T(), item.FiresIn(types.NewMonth(2024, 3)))
	assert.False(suite.T(), item.FiresIn(types.NewMonth(2024, 4)))
}

func (suite *TestSuiteStandard) TestRecurringItemZeroDurationNeverFires() {
	start := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	duration := 0

	item := models.RecurringItem{
		Amount:         decimal.NewFromFloat(15.99),
		Type:           models.TypeExpense,
		DayOfMonth:     5,
		StartDate:      &start,
		DurationMonths: &duration,
	}

	assert.False(suite.T(), item.FiresIn(types.NewMonth(2024, 1)))
}

func (suite *TestSuiteStandard) TestRecurringItemEndDate() {
	end := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	item := models.RecurringItem{
		Amount:     decimal.NewFromFloat(15.99),
		Type:       models.TypeExpense,
		DayOfMonth: 5,
		EndDate:    &end,
	}

	assert.True(suite.T(), item.FiresIn(types.NewMonth(2024, 3)), "the month of the end date is still included")
	assert.False(suite.T(), item.FiresIn(types.NewMonth(2024, 4)))
}

func (suite *TestSuiteStandard) TestRecurringItemLabelTrimmed() {
	item := models.RecurringItem{
		Label:      "  Netflix ",
		Amount:     decimal.NewFromFloat(15.99),
		Type:       models.TypeExpense,
		DayOfMonth: 5,
	}

	err := models.DB.Create(&item).Error
	if err != nil {
		suite.Assert().FailNow("RecurringItem could not be saved", err)
	}

	assert.Equal(suite.T(), "Netflix", item.Label)
}

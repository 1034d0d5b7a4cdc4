package models_test

import (
	"github.com/budgetflow/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestSettingUpsert() {
	err := models.SetSetting(models.SettingCurrency, "EUR")
	if err != nil {
		suite.Assert().FailNow("Setting could not be saved", err)
	}

	err = models.SetSetting(models.SettingCurrency, "USD")
	if err != nil {
		suite.Assert().FailNow("Setting could not be updated", err)
	}

	setting, err := models.GetSetting(models.SettingCurrency)
	if err != nil {
		suite.Assert().FailNow("Setting could not be read", err)
	}

	assert.Equal(suite.T(), "USD", setting.Value)
}

func (suite *TestSuiteStandard) TestSettingCurrencyValidated() {
	err := models.SetSetting(models.SettingCurrency, "not-a-currency")
	assert.ErrorIs(suite.T(), err, models.ErrCurrencyInvalid)
}

func (suite *TestSuiteStandard) TestSettingEmptyKey() {
	err := models.SetSetting("", "value")
	assert.ErrorIs(suite.T(), err, models.ErrSettingKeyEmpty)
}

func (suite *TestSuiteStandard) TestInitialBalanceDefaultsToZero() {
	balance, err := models.InitialBalance()
	if err != nil {
		suite.Assert().FailNow("Initial balance could not be read", err)
	}

	assert.True(suite.T(), balance.IsZero(), "An unset initial balance is zero, got %s", balance)
}

func (suite *TestSuiteStandard) TestInitialBalanceRoundTrip() {
	err := models.SetInitialBalance(decimal.NewFromFloat(1234.56))
	if err != nil {
		suite.Assert().FailNow("Initial balance could not be saved", err)
	}

	balance, err := models.InitialBalance()
	if err != nil {
		suite.Assert().FailNow("Initial balance could not be read", err)
	}

	assert.True(suite.T(), balance.Equal(decimal.NewFromFloat(1234.56)))
}

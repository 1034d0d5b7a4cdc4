package models_test

import (
	"time"

	"github.com/budgetflow/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTransactionExpenseAmountNegated() {
	transaction := models.Transaction{
		Label:  "Rent",
		Amount: decimal.NewFromFloat(743.17),
		Type:   models.TypeExpense,
		Status: models.TransactionConfirmed,
	}

	err := models.DB.Create(&transaction).Error
	if err != nil {
		suite.Assert().FailNow("Transaction could not be saved", err)
	}

	assert.True(suite.T(), transaction.Amount.Equal(decimal.NewFromFloat(-743.17)), "Expense amount is not negative: %s", transaction.Amount)
}

func (suite *TestSuiteStandard) TestTransactionIncomeAmountPositive() {
	transaction := models.Transaction{
		Label:  "Salary",
		Amount: decimal.NewFromFloat(-3000),
		Type:   models.TypeIncome,
		Status: models.TransactionConfirmed,
	}

	err := models.DB.Create(&transaction).Error
	if err != nil {
		suite.Assert().FailNow("Transaction could not be saved", err)
	}

	assert.True(suite.T(), transaction.Amount.Equal(decimal.NewFromFloat(3000)), "Income amount is not positive: %s", transaction.Amount)
}

func (suite *TestSuiteStandard) TestTransactionSkippedAmountZeroed() {
	transaction := models.Transaction{
		Label:  "Netflix",
		Amount: decimal.NewFromFloat(15.99),
		Type:   models.TypeExpense,
		Status: models.TransactionSkipped,
	}

	err := models.DB.Create(&transaction).Error
	if err != nil {
		suite.Assert().FailNow("Transaction could not be saved", err)
	}

	assert.True(suite.T(), transaction.Amount.IsZero(), "Skip tombstone amount is not zero: %s", transaction.Amount)
	assert.False(suite.T(), transaction.CountsTowardsBalance())
}

func (suite *TestSuiteStandard) TestTransactionStatusDefaultsToConfirmed() {
	transaction := models.Transaction{
		Label:  "Coffee",
		Amount: decimal.NewFromFloat(3.50),
		Type:   models.TypeExpense,
	}

	err := models.DB.Create(&transaction).Error
	if err != nil {
		suite.Assert().FailNow("Transaction could not be saved", err)
	}

	assert.Equal(suite.T(), models.TransactionConfirmed, transaction.Status)
	assert.True(suite.T(), transaction.CountsTowardsBalance())
}

func (suite *TestSuiteStandard) TestTransactionInvalidStatus() {
	transaction := models.Transaction{
		Label:  "Coffee",
		Amount: decimal.NewFromFloat(3.50),
		Type:   models.TypeExpense,
		Status: "maybe",
	}

	err := models.DB.Create(&transaction).Error
	assert.ErrorIs(suite.T(), err, models.ErrTransactionStatusInvalid)
}

func (suite *TestSuiteStandard) TestTransactionInvalidType() {
	transaction := models.Transaction{
		Label:  "Coffee",
		Amount: decimal.NewFromFloat(3.50),
		Type:   "transfer",
	}

	err := models.DB.Create(&transaction).Error
	assert.ErrorIs(suite.T(), err, models.ErrItemTypeInvalid)
}

func (suite *TestSuiteStandard) TestTransactionDateDefaultsToNow() {
	transaction := models.Transaction{
		Label:  "Coffee",
		Amount: decimal.NewFromFloat(3.50),
		Type:   models.TypeExpense,
	}

	err := models.DB.Create(&transaction).Error
	if err != nil {
		suite.Assert().FailNow("Transaction could not be saved", err)
	}

	assert.False(suite.T(), transaction.Date.IsZero())
	assert.Equal(suite.T(), time.UTC, transaction.Date.Location(), "Timezone for model is not UTC")
}

func (suite *TestSuiteStandard) TestTransactionFindTimeUTC() {
	tz, _ := time.LoadLocation("Europe/Berlin")

	transaction := models.Transaction{
		Label:  "Lunch",
		Amount: decimal.NewFromFloat(12.80),
		Type:   models.TypeExpense,
		Date:   time.Date(2024, 1, 2, 3, 4, 5, 0, tz),
	}

	err := models.DB.Create(&transaction).Error
	if err != nil {
		suite.Assert().FailNow("Transaction could not be saved", err)
	}

	var dbTransaction models.Transaction
	err = models.DB.First(&dbTransaction, transaction.ID).Error
	if err != nil {
		suite.Assert().FailNow("Transaction could not be read", err)
	}

	assert.Equal(suite.T(), time.UTC, dbTransaction.Date.Location(), "Timezone for model is not UTC")
}

func (suite *TestSuiteStandard) TestTransactionUnknownReference() {
	id := uuid.New()
	transaction := models.Transaction{
		Label:       "Rent",
		Amount:      decimal.NewFromFloat(743.17),
		Type:        models.TypeExpense,
		RecurringID: &id,
	}

	err := models.DB.Create(&transaction).Error
	assert.ErrorIs(suite.T(), err, models.ErrReferenceNotFound)
}

func (suite *TestSuiteStandard) TestTransactionCategoryDeleteNullsReference() {
	category := models.Category{Label: "Dining", Type: models.TypeExpense}
	err := models.DB.Create(&category).Error
	if err != nil {
		suite.Assert().FailNow("Category could not be saved", err)
	}

	transaction := models.Transaction{
		Label:      "Lunch",
		Amount:     decimal.NewFromFloat(12.80),
		Type:       models.TypeExpense,
		CategoryID: &category.ID,
	}
	err = models.DB.Create(&transaction).Error
	if err != nil {
		suite.Assert().FailNow("Transaction could not be saved", err)
	}

	err = models.DB.Unscoped().Delete(&category).Error
	if err != nil {
		suite.Assert().FailNow("Category could not be deleted", err)
	}

	var dbTransaction models.Transaction
	err = models.DB.First(&dbTransaction, transaction.ID).Error
	if err != nil {
		suite.Assert().FailNow("Transaction could not be read", err)
	}

	assert.Nil(suite.T(), dbTransaction.CategoryID)
}

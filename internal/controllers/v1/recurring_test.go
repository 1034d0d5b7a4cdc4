package v1_test

import (
	"fmt"
	"net/http"
	"time"

	v1 "github.com/budgetflow/backend/internal/controllers/v1"
	"github.com/budgetflow/backend/internal/models"
	"github.com/budgetflow/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestRecurringItemCreate() {
	response := suite.createTestRecurringItem(v1.RecurringItemEditable{
		Label:      "Netflix",
		Amount:     decimal.NewFromFloat(15.99),
		Type:       models.TypeExpense,
		DayOfMonth: 5,
	})

	assert.Equal(suite.T(), "Netflix", response.Data.Label)
	assert.Equal(suite.T(), 5, response.Data.DayOfMonth)
	assert.NotEmpty(suite.T(), response.Data.Links.Realize)
	assert.NotEmpty(suite.T(), response.Data.Links.Skip)
}

func (suite *TestSuiteStandard) TestRecurringItemCreateInvalidDay() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/recurring", []v1.RecurringItemEditable{
		{Label: "Netflix", Amount: decimal.NewFromFloat(15.99), Type: models.TypeExpense, DayOfMonth: 32},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.RecurringItemCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), models.ErrDayOfMonthOutOfRange.Error(), *response.Data[0].Error)
}

func (suite *TestSuiteStandard) TestRecurringItemList() {
	suite.createTestRecurringItem(v1.RecurringItemEditable{Label: "Rent", Amount: decimal.NewFromFloat(743.17), Type: models.TypeExpense, DayOfMonth: 1})
	suite.createTestRecurringItem(v1.RecurringItemEditable{Label: "Netflix", Amount: decimal.NewFromFloat(15.99), Type: models.TypeExpense, DayOfMonth: 5})
	suite.createTestRecurringItem(v1.RecurringItemEditable{Label: "Salary", Amount: decimal.NewFromFloat(3000), Type: models.TypeIncome, DayOfMonth: 28})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/recurring", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.RecurringItemListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 3)

	// Sorted by the day the rule fires on
	assert.Equal(suite.T(), "Rent", response.Data[0].Label)
	assert.Equal(suite.T(), "Salary", response.Data[2].Label)

	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/recurring?type=income", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 1)
}

func (suite *TestSuiteStandard) TestRecurringItemUpdate() {
	created := suite.createTestRecurringItem(v1.RecurringItemEditable{
		Label:      "Netflix",
		Amount:     decimal.NewFromFloat(15.99),
		Type:       models.TypeExpense,
		DayOfMonth: 5,
	})

	recorder := test.Request(suite.T(), http.MethodPatch, created.Data.Links.Self, map[string]any{
		"amount": "17.99",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.RecurringItemResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.True(suite.T(), response.Data.Amount.Equal(decimal.NewFromFloat(17.99)))
	assert.Equal(suite.T(), 5, response.Data.DayOfMonth, "A patch that does not send dayOfMonth keeps it")
}

func (suite *TestSuiteStandard) TestRecurringItemDeleteClearsReferences() {
	created := suite.createTestRecurringItem(v1.RecurringItemEditable{
		Label:      "Netflix",
		Amount:     decimal.NewFromFloat(15.99),
		Type:       models.TypeExpense,
		DayOfMonth: 5,
	})

	recorder := test.Request(suite.T(), http.MethodPost, created.Data.Links.Realize, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var realized v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &realized)

	recorder = test.Request(suite.T(), http.MethodDelete, created.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	// The realized transaction survives, its reference is cleared
	recorder = test.Request(suite.T(), http.MethodGet, realized.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var transaction v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &transaction)
	assert.Nil(suite.T(), transaction.Data.RecurringID)
}

func (suite *TestSuiteStandard) TestRecurringItemRealize() {
	created := suite.createTestRecurringItem(v1.RecurringItemEditable{
		Label:      "Netflix",
		Amount:     decimal.NewFromFloat(15.99),
		Type:       models.TypeExpense,
		DayOfMonth: 5,
	})

	recorder := test.Request(suite.T(), http.MethodPost, created.Data.Links.Realize, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), "Netflix", response.Data.Label)
	assert.Equal(suite.T(), models.TransactionConfirmed, response.Data.Status)
	assert.True(suite.T(), response.Data.Amount.Equal(decimal.NewFromFloat(-15.99)))
	assert.Equal(suite.T(), created.Data.ID, *response.Data.RecurringID)
}

func (suite *TestSuiteStandard) TestRecurringItemRealizeOverrides() {
	created := suite.createTestRecurringItem(v1.RecurringItemEditable{
		Label:      "Netflix",
		Amount:     decimal.NewFromFloat(15.99),
		Type:       models.TypeExpense,
		DayOfMonth: 5,
	})

	recorder := test.Request(suite.T(), http.MethodPost, created.Data.Links.Realize, map[string]any{
		"date":   "2024-01-09T00:00:00Z",
		"amount": "17.49",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC), response.Data.Date)
	assert.True(suite.T(), response.Data.Amount.Equal(decimal.NewFromFloat(-17.49)))
}

func (suite *TestSuiteStandard) TestRecurringItemSkip() {
	created := suite.createTestRecurringItem(v1.RecurringItemEditable{
		Label:      "Netflix",
		Amount:     decimal.NewFromFloat(15.99),
		Type:       models.TypeExpense,
		DayOfMonth: 5,
	})

	recorder := test.Request(suite.T(), http.MethodPost, created.Data.Links.Skip, map[string]any{
		"month": "2024-02",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), models.TransactionSkipped, response.Data.Status)
	assert.True(suite.T(), response.Data.Amount.IsZero(), "A skip marker carries no money movement")
	assert.Equal(suite.T(), time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC), response.Data.Date)
}

func (suite *TestSuiteStandard) TestRecurringItemSkipSuppressesReport() {
	created := suite.createTestRecurringItem(v1.RecurringItemEditable{
		Label:      "Netflix",
		Amount:     decimal.NewFromFloat(15.99),
		Type:       models.TypeExpense,
		DayOfMonth: 5,
	})

	recorder := test.Request(suite.T(), http.MethodPost, created.Data.Links.Skip, map[string]any{
		"month": "2024-02",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/report?month=2024-02", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var report v1.ReportResponse
	test.DecodeResponse(suite.T(), &recorder, &report)
	assert.Empty(suite.T(), report.Data.Events, "Neither the skip marker nor the generated occurrence show up")

	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/report?month=2024-03", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	test.DecodeResponse(suite.T(), &recorder, &report)
	assert.Len(suite.T(), report.Data.Events, 1, "Only the skipped month is suppressed")
}

func (suite *TestSuiteStandard) TestRecurringItemRealizeNonexistent() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/recurring/cb4a49a3-99af-4fc2-a87a-77d45f99bd9a/realize", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestRecurringItemWindow() {
	start := "2024-01-15T00:00:00Z"
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/recurring", []map[string]any{
		{
			"label":          "Gym",
			"amount":         "29.90",
			"type":           "expense",
			"dayOfMonth":     1,
			"startDate":      start,
			"durationMonths": 3,
		},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.RecurringItemCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	for month, count := range map[string]int{"2023-12": 0, "2024-01": 1, "2024-03": 1, "2024-04": 0} {
		recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/report?month=%s", month), "")
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

		var report v1.ReportResponse
		test.DecodeResponse(suite.T(), &recorder, &report)
		assert.Len(suite.T(), report.Data.Events, count, "Wrong number of events for month %s", month)
	}
}

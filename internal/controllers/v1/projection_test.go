package v1_test

import (
	"net/http"

	v1 "github.com/budgetflow/backend/internal/controllers/v1"
	"github.com/budgetflow/backend/internal/models"
	"github.com/budgetflow/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestProjectionFirstPointIsCurrentBalance() {
	err := models.SetInitialBalance(decimal.NewFromFloat(1000))
	if err != nil {
		suite.Assert().FailNow("Initial balance could not be saved", err)
	}

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/projection", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ProjectionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	if !assert.NotEmpty(suite.T(), response.Data) {
		return
	}
	assert.True(suite.T(), response.Data[0].Balance.Equal(decimal.NewFromFloat(1000)), "The first point is today's balance, got %s", response.Data[0].Balance)
}

func (suite *TestSuiteStandard) TestProjectionIncludesRecurringOccurrences() {
	suite.createTestRecurringItem(v1.RecurringItemEditable{
		Label:      "Netflix",
		Amount:     decimal.NewFromFloat(15.99),
		Type:       models.TypeExpense,
		DayOfMonth: 5,
	})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/projection?months=3", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ProjectionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	// The first point is today, every following point is one occurrence.
	// Depending on the day the test runs, the current month's occurrence
	// may already be in the past.
	events := len(response.Data) - 1
	assert.GreaterOrEqual(suite.T(), events, 2)
	assert.LessOrEqual(suite.T(), events, 3)

	// Each expense occurrence lowers the running balance
	for i := 1; i < len(response.Data); i++ {
		assert.True(suite.T(), response.Data[i].Balance.LessThan(response.Data[i-1].Balance), "The running balance does not decrease at point %d", i)
	}
}

func (suite *TestSuiteStandard) TestProjectionSkipRemovesOccurrence() {
	created := suite.createTestRecurringItem(v1.RecurringItemEditable{
		Label:      "Netflix",
		Amount:     decimal.NewFromFloat(15.99),
		Type:       models.TypeExpense,
		DayOfMonth: 5,
	})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/projection?months=3", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var before v1.ProjectionResponse
	test.DecodeResponse(suite.T(), &recorder, &before)

	// Skip the last projected month
	lastMonth := before.Data[len(before.Data)-1].Date.Format("2006-01")
	recorder = test.Request(suite.T(), http.MethodPost, created.Data.Links.Skip, map[string]any{
		"month": lastMonth,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/projection?months=3", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var after v1.ProjectionResponse
	test.DecodeResponse(suite.T(), &recorder, &after)
	assert.Len(suite.T(), after.Data, len(before.Data)-1, "The skipped month's occurrence disappears")
}

package v1_test

import (
	"net/http"

	v1 "github.com/budgetflow/backend/internal/controllers/v1"
	"github.com/budgetflow/backend/internal/models"
	"github.com/budgetflow/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestSavingsGoalCreate() {
	response := suite.createTestSavingsGoal(v1.SavingsGoalEditable{
		Label:         "Emergency fund",
		TargetAmount:  decimal.NewFromFloat(5000),
		CurrentAmount: decimal.NewFromFloat(1250),
	})

	assert.Equal(suite.T(), "Emergency fund", response.Data.Label)
	assert.True(suite.T(), response.Data.Progress.Equal(decimal.NewFromFloat(0.25)), "Progress is %s", response.Data.Progress)
}

func (suite *TestSuiteStandard) TestSavingsGoalCreateInvalidTarget() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/savings-goals", []v1.SavingsGoalEditable{
		{Label: "Emergency fund", TargetAmount: decimal.Zero},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.SavingsGoalCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), models.ErrGoalTargetNotPositive.Error(), *response.Data[0].Error)
}

func (suite *TestSuiteStandard) TestSavingsGoalUpdate() {
	created := suite.createTestSavingsGoal(v1.SavingsGoalEditable{
		Label:        "Emergency fund",
		TargetAmount: decimal.NewFromFloat(5000),
	})

	recorder := test.Request(suite.T(), http.MethodPatch, created.Data.Links.Self, map[string]any{
		"currentAmount": "2500",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.SavingsGoalResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.True(suite.T(), response.Data.Progress.Equal(decimal.NewFromFloat(0.5)), "Progress is %s", response.Data.Progress)
}

func (suite *TestSuiteStandard) TestSavingsGoalDelete() {
	created := suite.createTestSavingsGoal(v1.SavingsGoalEditable{
		Label:        "Emergency fund",
		TargetAmount: decimal.NewFromFloat(5000),
	})

	recorder := test.Request(suite.T(), http.MethodDelete, created.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, created.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

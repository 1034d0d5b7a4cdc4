package v1_test

import (
	"net/http"

	v1 "github.com/budgetflow/backend/internal/controllers/v1"
	"github.com/budgetflow/backend/internal/models"
	"github.com/budgetflow/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestSettingPutAndGet() {
	recorder := test.Request(suite.T(), http.MethodPut, "http://example.com/v1/settings/currency", v1.SettingEditable{Value: "EUR"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.SettingResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "EUR", response.Data.Value)

	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/settings/currency", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "EUR", response.Data.Value)
}

func (suite *TestSuiteStandard) TestSettingPutOverwrites() {
	recorder := test.Request(suite.T(), http.MethodPut, "http://example.com/v1/settings/currency", v1.SettingEditable{Value: "EUR"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = test.Request(suite.T(), http.MethodPut, "http://example.com/v1/settings/currency", v1.SettingEditable{Value: "USD"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.SettingResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "USD", response.Data.Value)
}

func (suite *TestSuiteStandard) TestSettingPutInvalidCurrency() {
	recorder := test.Request(suite.T(), http.MethodPut, "http://example.com/v1/settings/currency", v1.SettingEditable{Value: "MOONBUCKS"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.SettingResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), models.ErrCurrencyInvalid.Error(), *response.Error)
}

func (suite *TestSuiteStandard) TestSettingGetNonexistent() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/settings/doesNotExist", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestSettingList() {
	recorder := test.Request(suite.T(), http.MethodPut, "http://example.com/v1/settings/currency", v1.SettingEditable{Value: "EUR"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/settings", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.SettingListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 1)
}

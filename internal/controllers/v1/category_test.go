package v1_test

import (
	"net/http"

	v1 "github.com/budgetflow/backend/internal/controllers/v1"
	"github.com/budgetflow/backend/internal/models"
	"github.com/budgetflow/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCategoryCreate() {
	response := suite.createTestCategory(v1.CategoryEditable{
		Label: "Pets",
		Type:  models.TypeExpense,
		Color: "#84cc16",
		Icon:  "PawPrint",
	})

	assert.Equal(suite.T(), "Pets", response.Data.Label)
	assert.Equal(suite.T(), "#84cc16", response.Data.Color)
	assert.NotEmpty(suite.T(), response.Data.Links.Transactions)
}

func (suite *TestSuiteStandard) TestCategoryCreateDuplicateLabel() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/categories", []v1.CategoryEditable{
		{Label: "Groceries", Type: models.TypeExpense},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.CategoryCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), models.ErrCategoryLabelNotUnique.Error(), *response.Data[0].Error)
}

func (suite *TestSuiteStandard) TestCategoryList() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.NotEmpty(suite.T(), response.Data, "A fresh instance has the default category set")
}

func (suite *TestSuiteStandard) TestCategoryUpdate() {
	created := suite.createTestCategory(v1.CategoryEditable{
		Label: "Pets",
		Type:  models.TypeExpense,
	})

	recorder := test.Request(suite.T(), http.MethodPatch, created.Data.Links.Self, map[string]any{
		"label": "Pet care",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "Pet care", response.Data.Label)
}

func (suite *TestSuiteStandard) TestCategoryDelete() {
	created := suite.createTestCategory(v1.CategoryEditable{
		Label: "Pets",
		Type:  models.TypeExpense,
	})

	recorder := test.Request(suite.T(), http.MethodDelete, created.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, created.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

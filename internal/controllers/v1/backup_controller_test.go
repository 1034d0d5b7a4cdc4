package v1_test

import (
	"bytes"
	"mime/multipart"
	"net/http"

	v1 "github.com/budgetflow/backend/internal/controllers/v1"
	"github.com/budgetflow/backend/internal/models"
	"github.com/budgetflow/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// restoreBody builds the multipart body for a restore request.
func (suite *TestSuiteStandard) restoreBody(blob []byte, secret string) (*bytes.Buffer, string) {
	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)

	w, err := mw.CreateFormFile("file", "budgetflow.backup")
	if err != nil {
		suite.Assert().Fail(err.Error())
	}

	_, err = w.Write(blob)
	if err != nil {
		suite.Assert().Fail(err.Error())
	}

	err = mw.WriteField("secret", secret)
	if err != nil {
		suite.Assert().Fail(err.Error())
	}
	mw.Close()

	return body, mw.FormDataContentType()
}

func (suite *TestSuiteStandard) TestBackupSecretRequired() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/backup", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestBackupCreateSetsLastBackup() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/backup?secret=hunter2", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	assert.Equal(suite.T(), "application/octet-stream", recorder.Header().Get("Content-Type"))
	assert.Contains(suite.T(), recorder.Header().Get("Content-Disposition"), "budgetflow-")
	assert.NotZero(suite.T(), recorder.Body.Len())

	setting, err := models.GetSetting(models.SettingLastBackup)
	if err != nil {
		suite.Assert().FailNow("Last backup setting could not be read", err)
	}
	assert.NotEmpty(suite.T(), setting.Value)
}

func (suite *TestSuiteStandard) TestBackupRestoreRoundTrip() {
	transaction := suite.createTestTransaction(v1.TransactionEditable{
		Label:  "Rent",
		Amount: decimal.NewFromFloat(743.17),
		Type:   models.TypeExpense,
	})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/backup?secret=hunter2", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	blob := recorder.Body.Bytes()

	// Drift: everything added after the backup disappears on restore
	suite.createTestTransaction(v1.TransactionEditable{
		Label:  "Drift",
		Amount: decimal.NewFromFloat(10),
		Type:   models.TypeExpense,
	})

	body, contentType := suite.restoreBody(blob, "hunter2")
	recorder = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/restore", body, map[string]string{"Content-Type": contentType})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	var transactions []models.Transaction
	err := models.DB.Find(&transactions).Error
	if err != nil {
		suite.Assert().FailNow("Transactions could not be read", err)
	}

	assert.Len(suite.T(), transactions, 1)
	assert.Equal(suite.T(), transaction.Data.ID, transactions[0].ID, "Restored resources keep their IDs")
}

func (suite *TestSuiteStandard) TestBackupRestoreWrongSecret() {
	suite.createTestTransaction(v1.TransactionEditable{
		Label:  "Rent",
		Amount: decimal.NewFromFloat(743.17),
		Type:   models.TypeExpense,
	})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/backup?secret=hunter2", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	blob := recorder.Body.Bytes()

	body, contentType := suite.restoreBody(blob, "wrong")
	recorder = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/restore", body, map[string]string{"Content-Type": contentType})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnprocessableEntity)

	// Nothing was wiped
	var count int64
	err := models.DB.Model(&models.Transaction{}).Count(&count).Error
	if err != nil {
		suite.Assert().FailNow("Transactions could not be counted", err)
	}
	assert.Equal(suite.T(), int64(1), count)
}

func (suite *TestSuiteStandard) TestBackupRestoreMissingFile() {
	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)
	err := mw.WriteField("secret", "hunter2")
	if err != nil {
		suite.Assert().Fail(err.Error())
	}
	mw.Close()

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/restore", body, map[string]string{"Content-Type": mw.FormDataContentType()})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

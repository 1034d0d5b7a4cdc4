package v1

import (
	"errors"
	"net/http"

	"github.com/budgetflow/backend/internal/backup"
	"github.com/budgetflow/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, backup.ErrBackupDecrypt) || errors.Is(err, backup.ErrBackupTruncated) {
		return http.StatusUnprocessableEntity
	}

	return http.StatusBadRequest
}

// Cleanup errors
var (
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
)

// Report and projection errors
var (
	errMonthNotSetInQuery = errors.New("the month query parameter must be set")
)

// Backup errors
var (
	errBackupSecretNotSet = errors.New("the secret parameter must be set")
	errNoFilePost         = errors.New("you must send a file to this endpoint")
)

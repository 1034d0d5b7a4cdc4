package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Validation errors. These are returned by gorm hooks before
// anything is persisted.
var (
	ErrItemTypeInvalid          = errors.New("type must be income or expense")
	ErrTransactionStatusInvalid = errors.New("status must be confirmed, planned or skipped")
	ErrAmountNegative           = errors.New("recurring amounts are unsigned magnitudes and must not be negative")
	ErrDayOfMonthOutOfRange     = errors.New("dayOfMonth must be between 1 and 31")
	ErrGoalTargetNotPositive    = errors.New("savings goal targets must be larger than zero")
	ErrCurrencyInvalid          = errors.New("the currency setting must be a valid ISO 4217 code")
	ErrSettingKeyEmpty          = errors.New("the setting key must not be empty")
)

// Constraint violations translated from database errors.
var (
	ErrCategoryLabelNotUnique = errors.New("the category label is already in use")
	ErrReferenceNotFound      = errors.New("a resource referenced by ID does not exist")
)

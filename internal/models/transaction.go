package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionStatus controls whether a transaction counts towards the
// balance and how it is displayed.
type TransactionStatus string

const (
	// TransactionConfirmed is real money movement that has happened.
	TransactionConfirmed TransactionStatus = "confirmed"

	// TransactionPlanned is a future movement the user expects.
	TransactionPlanned TransactionStatus = "planned"

	// TransactionSkipped is a tombstone. It carries a zero amount and only
	// exists to suppress a recurring occurrence for its month.
	TransactionSkipped TransactionStatus = "skipped"
)

// Transaction is a realized or planned money movement.
type Transaction struct {
	DefaultModel
	Label       string            `json:"label" example:"Rent January"`
	Amount      decimal.Decimal   `json:"amount" gorm:"type:DECIMAL(20,8)" example:"-743.17"` // Signed: negative for expenses, positive for income
	Date        time.Time         `json:"date" example:"2024-01-05T00:00:00Z"`
	Type        ItemType          `json:"type" example:"expense"`
	Status      TransactionStatus `json:"status" example:"confirmed"`
	CategoryID  *uuid.UUID        `json:"categoryId"`
	Category    *Category         `json:"-" gorm:"constraint:OnDelete:SET NULL"`
	RecurringID *uuid.UUID        `json:"recurringId"` // The recurring item this transaction realizes or skips
	Recurring   *RecurringItem    `json:"-" gorm:"foreignKey:RecurringID;constraint:OnDelete:SET NULL"`
}

// BeforeSave validates the transaction and normalizes the stored amount.
//
// The type is authoritative for the sign: expenses are stored with a
// negative amount, income with a positive one. This means type and sign
// can never drift apart through edits. Skip tombstones always store zero.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Label = strings.TrimSpace(t.Label)

	if t.Status == "" {
		t.Status = TransactionConfirmed
	}

	if t.Status != TransactionConfirmed && t.Status != TransactionPlanned && t.Status != TransactionSkipped {
		return ErrTransactionStatusInvalid
	}

	if !t.Type.Valid() {
		return ErrItemTypeInvalid
	}

	switch {
	case t.Status == TransactionSkipped:
		t.Amount = decimal.Zero
	case t.Type == TypeExpense:
		t.Amount = t.Amount.Abs().Neg()
	default:
		t.Amount = t.Amount.Abs()
	}

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	return nil
}

// AfterFind normalizes the date to UTC, see DefaultModel.AfterFind.
func (t *Transaction) AfterFind(tx *gorm.DB) error {
	t.Date = t.Date.In(time.UTC)
	return t.DefaultModel.AfterFind(tx)
}

// CountsTowardsBalance reports whether the transaction is part of the
// current balance. Only confirmed movements are; planned ones have not
// happened yet and skip tombstones are not money movement at all.
func (t Transaction) CountsTowardsBalance() bool {
	return t.Status == TransactionConfirmed
}

// Export returns all transactions on this instance.
func (Transaction) Export() (json.RawMessage, error) {
	var transactions []Transaction
	err := DB.Unscoped().Where(&Transaction{}).Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return json.Marshal(&transactions)
}

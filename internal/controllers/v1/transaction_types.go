package v1

import (
	"fmt"
	"time"

	"github.com/budgetflow/backend/internal/models"
	bf_uuid "github.com/budgetflow/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionEditable struct {
	Label string `json:"label" example:"Rent January" default:""` // A short description of the movement

	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Amount decimal.Decimal `json:"amount" example:"743.17" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount of the transaction, the sign is derived from the type

	Date        time.Time                `json:"date" example:"2024-01-05T00:00:00Z"`       // Date of the transaction. Time is currently only used for sorting
	Type        models.ItemType          `json:"type" example:"expense"`                    // income or expense
	Status      models.TransactionStatus `json:"status" example:"confirmed"`                // confirmed, planned or skipped. Defaults to confirmed
	CategoryID  *uuid.UUID               `json:"categoryId" example:"2649c965-7999-4873-ae16-89d5d5fa972e"`  // ID of the category
	RecurringID *uuid.UUID               `json:"recurringId" example:"8e16b456-a719-48ce-9fec-e115cfa7cbcc"` // ID of the recurring item this transaction realizes or skips
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		Label:       editable.Label,
		Amount:      editable.Amount,
		Date:        editable.Date,
		Type:        editable.Type,
		Status:      editable.Status,
		CategoryID:  editable.CategoryID,
		RecurringID: editable.RecurringID,
	}
}

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
}

// Transaction is the representation of a Transaction in API v1.
type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Links TransactionLinks `json:"links"`
}

// newTransaction returns the API v1 representation of the resource
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			Label:       model.Label,
			Amount:      model.Amount,
			Date:        model.Date,
			Type:        model.Type,
			Status:      model.Status,
			CategoryID:  model.CategoryID,
			RecurringID: model.RecurringID,
		},
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
		},
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                                          // List of created Transactions
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this transaction
	Data  *Transaction `json:"data"`                                                          // The Transaction data, if creation was successful
}

type TransactionQueryFilter struct {
	Date        time.Time                `form:"date" filterField:"false"`      // Exact date. Time is ignored.
	FromDate    time.Time                `form:"fromDate" filterField:"false"`  // From this date. Time is ignored.
	UntilDate   time.Time                `form:"untilDate" filterField:"false"` // Before this date. Time is ignored.
	Label       string                   `form:"label" filterField:"false"`     // Label matches this glob pattern, e.g. "Net*"
	Type        models.ItemType          `form:"type"`                          // Type of the item
	Status      models.TransactionStatus `form:"status"`                        // Status of the transaction
	CategoryID  bf_uuid.UUID             `form:"category"`                      // ID of the category
	RecurringID bf_uuid.UUID             `form:"recurring"`                     // ID of the recurring item
	Offset      uint                     `form:"offset" filterField:"false"`    // The offset of the first Transaction returned. Defaults to 0.
	Limit       int                      `form:"limit" filterField:"false"`     // Maximum number of Transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() models.Transaction {
	var categoryID, recurringID *uuid.UUID
	if f.CategoryID != bf_uuid.Nil {
		categoryID = &f.CategoryID.UUID
	}
	if f.RecurringID != bf_uuid.Nil {
		recurringID = &f.RecurringID.UUID
	}

	// This does not set the string or date fields since they are
	// handled in the controller function
	return models.Transaction{
		Type:        f.Type,
		Status:      f.Status,
		CategoryID:  categoryID,
		RecurringID: recurringID,
	}
}

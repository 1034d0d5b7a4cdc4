package v1

import (
	"fmt"
	"time"

	"github.com/budgetflow/backend/internal/models"
	"github.com/budgetflow/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RecurringItemEditable struct {
	Label string `json:"label" example:"Netflix" default:""` // A short description of the rule

	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Amount decimal.Decimal `json:"amount" example:"15.99" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // Unsigned magnitude, the sign is derived from the type

	Type       models.ItemType `json:"type" example:"expense"`                                    // income or expense
	CategoryID *uuid.UUID      `json:"categoryId" example:"2649c965-7999-4873-ae16-89d5d5fa972e"` // ID of the category
	DayOfMonth int             `json:"dayOfMonth" example:"5" minimum:"1" maximum:"31"`           // Day of the month the rule fires on, clamped to short months

	StartDate      *time.Time `json:"startDate" example:"2024-01-15T00:00:00Z"` // First month the rule is active in, optional
	DurationMonths *int       `json:"durationMonths" example:"12"`              // Number of months the rule is active for, starting with the month of startDate
	EndDate        *time.Time `json:"endDate" example:"2024-12-31T00:00:00Z"`   // Last month the rule is active in, optional
}

// model returns the database resource for the API representation of the editable fields
func (editable RecurringItemEditable) model() models.RecurringItem {
	return models.RecurringItem{
		Label:          editable.Label,
		Amount:         editable.Amount,
		Type:           editable.Type,
		CategoryID:     editable.CategoryID,
		DayOfMonth:     editable.DayOfMonth,
		StartDate:      editable.StartDate,
		DurationMonths: editable.DurationMonths,
		EndDate:        editable.EndDate,
	}
}

type RecurringItemLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/recurring/d430d7c3-d14c-4712-9336-ee56965a6673"`         // The recurring item itself
	Realize string `json:"realize" example:"https://example.com/api/v1/recurring/d430d7c3-d14c-4712-9336-ee56965a6673/realize"` // Turn this month's occurrence into a confirmed transaction
	Skip    string `json:"skip" example:"https://example.com/api/v1/recurring/d430d7c3-d14c-4712-9336-ee56965a6673/skip"`    // Suppress this month's occurrence
}

// RecurringItem is the representation of a RecurringItem in API v1.
type RecurringItem struct {
	models.DefaultModel
	RecurringItemEditable
	Links RecurringItemLinks `json:"links"`
}

// newRecurringItem returns the API v1 representation of the resource
func newRecurringItem(c *gin.Context, model models.RecurringItem) RecurringItem {
	url := c.GetString(string(models.DBContextURL))
	self := fmt.Sprintf("%s/v1/recurring/%s", url, model.ID)

	return RecurringItem{
		DefaultModel: model.DefaultModel,
		RecurringItemEditable: RecurringItemEditable{
			Label:          model.Label,
			Amount:         model.Amount,
			Type:           model.Type,
			CategoryID:     model.CategoryID,
			DayOfMonth:     model.DayOfMonth,
			StartDate:      model.StartDate,
			DurationMonths: model.DurationMonths,
			EndDate:        model.EndDate,
		},
		Links: RecurringItemLinks{
			Self:    self,
			Realize: self + "/realize",
			Skip:    self + "/skip",
		},
	}
}

type RecurringItemListResponse struct {
	Data       []RecurringItem `json:"data"`                                                          // List of recurring items
	Error      *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination     `json:"pagination"`                                                    // Pagination information
}

type RecurringItemCreateResponse struct {
	Error *string                 `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []RecurringItemResponse `json:"data"`                                                          // List of created recurring items
}

func (r *RecurringItemCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, RecurringItemResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type RecurringItemResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this recurring item
	Data  *RecurringItem `json:"data"`                                                          // The recurring item data, if creation was successful
}

type RecurringItemQueryFilter struct {
	Label      string          `form:"label" filterField:"false"`  // Label matches this glob pattern, e.g. "Net*"
	Type       models.ItemType `form:"type"`                       // Type of the rule
	DayOfMonth int             `form:"dayOfMonth"`                 // Day of the month the rule fires on
	Offset     uint            `form:"offset" filterField:"false"` // The offset of the first item returned. Defaults to 0.
	Limit      int             `form:"limit" filterField:"false"`  // Maximum number of items to return. Defaults to 50.
}

func (f RecurringItemQueryFilter) model() models.RecurringItem {
	return models.RecurringItem{
		Type:       f.Type,
		DayOfMonth: f.DayOfMonth,
	}
}

// RealizeEditable is the payload for realizing a recurring item: turning
// one month's occurrence into a confirmed transaction.
type RealizeEditable struct {
	Date   time.Time       `json:"date" example:"2024-01-09T00:00:00Z"` // The date the payment actually happened. Defaults to the occurrence date in the current month.
	Amount decimal.Decimal `json:"amount" example:"17.99"`              // The amount actually paid. Defaults to the rule's amount.
}

// SkipEditable is the payload for skipping one month of a recurring item.
type SkipEditable struct {
	Month types.Month `json:"month" example:"2024-01-01T00:00:00Z"` // The month to skip. Defaults to the current month.
}

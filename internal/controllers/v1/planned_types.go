package v1

import (
	"fmt"
	"time"

	"github.com/budgetflow/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PlannedItemEditable struct {
	Label string `json:"label" example:"Car inspection" default:""` // A short description of the item

	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Amount decimal.Decimal `json:"amount" example:"120" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount of the item, the sign is derived from the type

	Date       time.Time       `json:"date" example:"2024-03-14T00:00:00Z"`                       // The date the item is expected on
	Type       models.ItemType `json:"type" example:"expense"`                                    // income or expense
	CategoryID *uuid.UUID      `json:"categoryId" example:"2649c965-7999-4873-ae16-89d5d5fa972e"` // ID of the category
}

// model returns the database resource for the API representation of the editable fields
func (editable PlannedItemEditable) model() models.PlannedItem {
	return models.PlannedItem{
		Label:      editable.Label,
		Amount:     editable.Amount,
		Date:       editable.Date,
		Type:       editable.Type,
		CategoryID: editable.CategoryID,
	}
}

type PlannedItemLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/planned/d430d7c3-d14c-4712-9336-ee56965a6673"` // The planned item itself
}

// PlannedItem is the representation of a PlannedItem in API v1.
type PlannedItem struct {
	models.DefaultModel
	PlannedItemEditable
	Links PlannedItemLinks `json:"links"`
}

// newPlannedItem returns the API v1 representation of the resource
func newPlannedItem(c *gin.Context, model models.PlannedItem) PlannedItem {
	url := c.GetString(string(models.DBContextURL))

	return PlannedItem{
		DefaultModel: model.DefaultModel,
		PlannedItemEditable: PlannedItemEditable{
			Label:      model.Label,
			Amount:     model.Amount,
			Date:       model.Date,
			Type:       model.Type,
			CategoryID: model.CategoryID,
		},
		Links: PlannedItemLinks{
			Self: fmt.Sprintf("%s/v1/planned/%s", url, model.ID),
		},
	}
}

type PlannedItemListResponse struct {
	Data       []PlannedItem `json:"data"`                                                          // List of planned items
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type PlannedItemCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []PlannedItemResponse `json:"data"`                                                          // List of created planned items
}

func (p *PlannedItemCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	p.Data = append(p.Data, PlannedItemResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type PlannedItemResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this planned item
	Data  *PlannedItem `json:"data"`                                                          // The planned item data, if creation was successful
}

type PlannedItemQueryFilter struct {
	FromDate  time.Time       `form:"fromDate" filterField:"false"`  // Items at and after this date. Time is ignored.
	UntilDate time.Time       `form:"untilDate" filterField:"false"` // Items before this date. Time is ignored.
	Type      models.ItemType `form:"type"`                          // Type of the item
	Offset    uint            `form:"offset" filterField:"false"`    // The offset of the first item returned. Defaults to 0.
	Limit     int             `form:"limit" filterField:"false"`     // Maximum number of items to return. Defaults to 50.
}

func (f PlannedItemQueryFilter) model() models.PlannedItem {
	return models.PlannedItem{
		Type: f.Type,
	}
}

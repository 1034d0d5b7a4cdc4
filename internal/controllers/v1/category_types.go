package v1

import (
	"fmt"

	"github.com/budgetflow/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type CategoryEditable struct {
	Label string          `json:"label" example:"Groceries" default:""` // The label of the category, unique per instance
	Type  models.ItemType `json:"type" example:"expense"`               // income or expense
	Color string          `json:"color" example:"#f59e0b" default:"#6366f1"`
	Icon  string          `json:"icon" example:"ShoppingCart" default:"Circle"` // Icon name the frontend renders
}

// model returns the database resource for the API representation of the editable fields
func (editable CategoryEditable) model() models.Category {
	return models.Category{
		Label: editable.Label,
		Type:  editable.Type,
		Color: editable.Color,
		Icon:  editable.Icon,
	}
}

type CategoryLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/categories/d430d7c3-d14c-4712-9336-ee56965a6673"`              // The category itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?category=d430d7c3-d14c-4712-9336-ee56965a6673"` // Transactions in this category
}

// Category is the representation of a Category in API v1.
type Category struct {
	models.DefaultModel
	CategoryEditable
	Links CategoryLinks `json:"links"`
}

// newCategory returns the API v1 representation of the resource
func newCategory(c *gin.Context, model models.Category) Category {
	url := c.GetString(string(models.DBContextURL))

	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			Label: model.Label,
			Type:  model.Type,
			Color: model.Color,
			Icon:  model.Icon,
		},
		Links: CategoryLinks{
			Self:         fmt.Sprintf("%s/v1/categories/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?category=%s", url, model.ID),
		},
	}
}

type CategoryListResponse struct {
	Data       []Category  `json:"data"`                                                          // List of categories
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type CategoryCreateResponse struct {
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []CategoryResponse `json:"data"`                                                          // List of created categories
}

func (r *CategoryCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, CategoryResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CategoryResponse struct {
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this category
	Data  *Category `json:"data"`                                                          // The category data, if creation was successful
}

type CategoryQueryFilter struct {
	Label  string          `form:"label" filterField:"false"`  // Label matches this glob pattern, e.g. "Gro*"
	Type   models.ItemType `form:"type"`                       // Type of the category
	Offset uint            `form:"offset" filterField:"false"` // The offset of the first category returned. Defaults to 0.
	Limit  int             `form:"limit" filterField:"false"`  // Maximum number of categories to return. Defaults to 50.
}

func (f CategoryQueryFilter) model() models.Category {
	return models.Category{
		Type: f.Type,
	}
}

package v1

import (
	"fmt"
	"time"

	"github.com/budgetflow/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type SavingsGoalEditable struct {
	Label string `json:"label" example:"Emergency fund" default:""` // A short description of the goal

	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	TargetAmount decimal.Decimal `json:"targetAmount" example:"5000" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount to be saved

	CurrentAmount decimal.Decimal `json:"currentAmount" example:"1250"`            // The amount already put aside
	Deadline      *time.Time      `json:"deadline" example:"2024-12-31T00:00:00Z"` // The date the goal should be reached by, optional
}

// model returns the database resource for the API representation of the editable fields
func (editable SavingsGoalEditable) model() models.SavingsGoal {
	return models.SavingsGoal{
		Label:         editable.Label,
		TargetAmount:  editable.TargetAmount,
		CurrentAmount: editable.CurrentAmount,
		Deadline:      editable.Deadline,
	}
}

type SavingsGoalLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/savings-goals/d430d7c3-d14c-4712-9336-ee56965a6673"` // The savings goal itself
}

// SavingsGoal is the representation of a SavingsGoal in API v1.
type SavingsGoal struct {
	models.DefaultModel
	SavingsGoalEditable
	Progress decimal.Decimal  `json:"progress" example:"0.25"` // CurrentAmount divided by TargetAmount, clamped to [0, 1]
	Links    SavingsGoalLinks `json:"links"`
}

// newSavingsGoal returns the API v1 representation of the resource
func newSavingsGoal(c *gin.Context, model models.SavingsGoal) SavingsGoal {
	url := c.GetString(string(models.DBContextURL))

	return SavingsGoal{
		DefaultModel: model.DefaultModel,
		SavingsGoalEditable: SavingsGoalEditable{
			Label:         model.Label,
			TargetAmount:  model.TargetAmount,
			CurrentAmount: model.CurrentAmount,
			Deadline:      model.Deadline,
		},
		Progress: model.Progress(),
		Links: SavingsGoalLinks{
			Self: fmt.Sprintf("%s/v1/savings-goals/%s", url, model.ID),
		},
	}
}

type SavingsGoalListResponse struct {
	Data       []SavingsGoal `json:"data"`                                                          // List of savings goals
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type SavingsGoalCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []SavingsGoalResponse `json:"data"`                                                          // List of created savings goals
}

func (r *SavingsGoalCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, SavingsGoalResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type SavingsGoalResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this savings goal
	Data  *SavingsGoal `json:"data"`                                                          // The savings goal data, if creation was successful
}

type SavingsGoalQueryFilter struct {
	Label  string `form:"label" filterField:"false"`  // Label matches this glob pattern
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first goal returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of goals to return. Defaults to 50.
}

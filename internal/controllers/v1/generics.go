package v1

import (
	"github.com/budgetflow/backend/internal/httputil"
	"github.com/budgetflow/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// resourceOptionsDetail returns the appropriate response for an HTTP OPTIONS request for a specific resource.
//
// Note: This function only works for resources with an ID, not for configurations (like /settings) or calculated endpoints (like /projection)
func resourceOptionsDetail[R models.Category | models.RecurringItem | models.Transaction | models.PlannedItem | models.SavingsGoal](c *gin.Context, resource R) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&resource, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

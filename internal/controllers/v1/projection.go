package v1

import (
	"net/http"
	"time"

	"github.com/budgetflow/backend/internal/httputil"
	"github.com/budgetflow/backend/internal/ledger"
	"github.com/budgetflow/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type ProjectionQuery struct {
	Months int `form:"months" example:"6"` // The number of months to project. Defaults to 6.
}

type ProjectionResponse struct {
	Error *string        `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
	Data  []ledger.Point `json:"data"`                                                                // The projected running balance, one point per event
}

// RegisterProjectionRoutes registers the routes for the projection with
// the RouterGroup that is passed.
func RegisterProjectionRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGet)
		r.GET("", GetProjection)
	}
}

// @Summary		Balance projection
// @Description	Projects the running balance into the future. The first point is today's balance, every following point is one upcoming event: a planned transaction, a one-off planned item or a generated occurrence of a recurring item whose month is not claimed by a transaction yet.
// @Tags			Projection
// @Produce		json
// @Success		200		{object}	ProjectionResponse
// @Failure		400		{object}	ProjectionResponse
// @Failure		500		{object}	ProjectionResponse
// @Param			months	query		int	false	"The number of months to project. Defaults to 6."
// @Router			/v1/projection [get]
func GetProjection(c *gin.Context) {
	var query ProjectionQuery
	if err := c.Bind(&query); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ProjectionResponse{
			Error: &e,
		})
		return
	}

	snapshot, err := ledger.LoadSnapshot(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProjectionResponse{
			Error: &e,
		})
		return
	}

	initial, err := models.InitialBalance()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProjectionResponse{
			Error: &e,
		})
		return
	}

	balance := ledger.Balance(initial, snapshot.Transactions)
	points := snapshot.Project(balance, time.Now().In(time.UTC), query.Months)

	c.JSON(http.StatusOK, ProjectionResponse{Data: points})
}

package v1

import (
	"net/http"

	"github.com/budgetflow/backend/internal/httputil"
	"github.com/budgetflow/backend/internal/ledger"
	"github.com/budgetflow/backend/internal/models"
	"github.com/budgetflow/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type ReportQuery struct {
	Month string `form:"month" example:"2024-01"` // The month to report on, in YYYY-MM format
}

type ReportObject struct {
	Month    types.Month     `json:"month" example:"2024-01-01T00:00:00Z"` // The month the report covers
	Income   decimal.Decimal `json:"income" example:"3000"`                // Sum of all income events in the month
	Expenses decimal.Decimal `json:"expenses" example:"-1264.31"`          // Sum of all expense events in the month
	Net      decimal.Decimal `json:"net" example:"1735.69"`                // Income plus expenses
	Events   []ledger.Event  `json:"events"`                               // All events of the month, sorted by date
}

type ReportResponse struct {
	Error *string       `json:"error" example:"the month query parameter must be set"` // The error, if any occurred
	Data  *ReportObject `json:"data"`                                                  // The report
}

// RegisterReportRoutes registers the routes for the monthly report with
// the RouterGroup that is passed.
func RegisterReportRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGet)
		r.GET("", GetReport)
	}
}

// @Summary		Monthly report
// @Description	Returns the full activity of one month: every transaction dated in the month plus the generated occurrences of recurring items no transaction has claimed. Skipped months show neither the skip marker nor the generated occurrence.
// @Tags			Report
// @Produce		json
// @Success		200		{object}	ReportResponse
// @Failure		400		{object}	ReportResponse
// @Failure		500		{object}	ReportResponse
// @Param			month	query		string	true	"The month to report on, in YYYY-MM format"
// @Router			/v1/report [get]
func GetReport(c *gin.Context) {
	var query ReportQuery
	if err := c.Bind(&query); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ReportResponse{
			Error: &e,
		})
		return
	}

	if query.Month == "" {
		e := errMonthNotSetInQuery.Error()
		c.JSON(http.StatusBadRequest, ReportResponse{
			Error: &e,
		})
		return
	}

	month, err := types.ParseMonth(query.Month)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ReportResponse{
			Error: &e,
		})
		return
	}

	snapshot, err := ledger.LoadSnapshot(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReportResponse{
			Error: &e,
		})
		return
	}

	events := snapshot.MonthlyReport(month)

	income, expenses := decimal.Zero, decimal.Zero
	for _, event := range events {
		if event.Amount.IsPositive() {
			income = income.Add(event.Amount)
		} else {
			expenses = expenses.Add(event.Amount)
		}
	}

	c.JSON(http.StatusOK, ReportResponse{
		Data: &ReportObject{
			Month:    month,
			Income:   income,
			Expenses: expenses,
			Net:      income.Add(expenses),
			Events:   events,
		},
	})
}

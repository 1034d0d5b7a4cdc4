package v1

import (
	"net/http"

	"github.com/budgetflow/backend/internal/httputil"
	"github.com/budgetflow/backend/internal/ledger"
	"github.com/budgetflow/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type BalanceObject struct {
	Balance        decimal.Decimal `json:"balance" example:"2750"`        // The current balance: initial balance plus all confirmed transactions
	InitialBalance decimal.Decimal `json:"initialBalance" example:"500"`  // The configured starting point of the ledger
}

type BalanceResponse struct {
	Error *string        `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
	Data  *BalanceObject `json:"data"`                                                                // The balance
}

type BalanceEditable struct {
	Balance decimal.Decimal `json:"balance" example:"3000"` // The balance the ledger should show
}

// RegisterBalanceRoutes registers the routes for the balance with
// the RouterGroup that is passed.
func RegisterBalanceRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGetPut)
		r.GET("", GetBalance)
		r.PUT("", UpdateBalance)
	}
}

// @Summary		Get balance
// @Description	Returns the current balance, derived from the initial balance and all confirmed transactions
// @Tags			Balance
// @Produce		json
// @Success		200	{object}	BalanceResponse
// @Failure		500	{object}	BalanceResponse
// @Router			/v1/balance [get]
func GetBalance(c *gin.Context) {
	initial, err := models.InitialBalance()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BalanceResponse{
			Error: &e,
		})
		return
	}

	var transactions []models.Transaction
	err = models.DB.Find(&transactions).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BalanceResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, BalanceResponse{
		Data: &BalanceObject{
			Balance:        ledger.Balance(initial, transactions),
			InitialBalance: initial,
		},
	})
}

// @Summary		Set balance
// @Description	Sets the current balance by adjusting the initial balance. The confirmed transaction history is never modified, the initial balance is solved so that the derived balance matches the requested one.
// @Tags			Balance
// @Accept			json
// @Produce		json
// @Success		200		{object}	BalanceResponse
// @Failure		400		{object}	BalanceResponse
// @Failure		500		{object}	BalanceResponse
// @Param			balance	body		BalanceEditable	true	"Balance"
// @Router			/v1/balance [put]
func UpdateBalance(c *gin.Context) {
	var editable BalanceEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BalanceResponse{
			Error: &e,
		})
		return
	}

	initial, err := models.InitialBalance()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BalanceResponse{
			Error: &e,
		})
		return
	}

	var transactions []models.Transaction
	err = models.DB.Find(&transactions).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BalanceResponse{
			Error: &e,
		})
		return
	}

	balance := ledger.Balance(initial, transactions)
	solved := ledger.BackSolveInitial(editable.Balance, balance, initial)

	err = models.SetInitialBalance(solved)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BalanceResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, BalanceResponse{
		Data: &BalanceObject{
			Balance:        editable.Balance,
			InitialBalance: solved,
		},
	})
}

package v1

import (
	"net/http"

	"github.com/budgetflow/backend/internal/httputil"
	"github.com/budgetflow/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
)

// RegisterSavingsGoalRoutes registers the routes for savings goals with
// the RouterGroup that is passed.
func RegisterSavingsGoalRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsSavingsGoals)
		r.GET("", GetSavingsGoals)
		r.POST("", CreateSavingsGoals)
	}

	// Savings goal with ID
	{
		r.OPTIONS("/:id", OptionsSavingsGoalDetail)
		r.GET("/:id", GetSavingsGoal)
		r.PATCH("/:id", UpdateSavingsGoal)
		r.DELETE("/:id", DeleteSavingsGoal)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			SavingsGoals
// @Success		204
// @Router			/v1/savings-goals [options]
func OptionsSavingsGoals(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			SavingsGoals
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/savings-goals/{id} [options]
func OptionsSavingsGoalDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.SavingsGoal{})
}

// @Summary		Get savings goal
// @Description	Returns a specific savings goal
// @Tags			SavingsGoals
// @Produce		json
// @Success		200	{object}	SavingsGoalResponse
// @Failure		400	{object}	SavingsGoalResponse
// @Failure		404	{object}	SavingsGoalResponse
// @Failure		500	{object}	SavingsGoalResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/savings-goals/{id} [get]
func GetSavingsGoal(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &e,
		})
		return
	}

	var goal models.SavingsGoal
	err = models.DB.First(&goal, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &e,
		})
		return
	}

	data := newSavingsGoal(c, goal)
	c.JSON(http.StatusOK, SavingsGoalResponse{Data: &data})
}

// @Summary		Get savings goals
// @Description	Returns a list of savings goals
// @Tags			SavingsGoals
// @Produce		json
// @Success		200	{object}	SavingsGoalListResponse
// @Failure		400	{object}	SavingsGoalListResponse
// @Failure		500	{object}	SavingsGoalListResponse
// @Router			/v1/savings-goals [get]
// @Param			label	query	string	false	"Label matches this glob pattern"
// @Param			offset	query	uint	false	"The offset of the first goal returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of goals to return. Defaults to 50."
func GetSavingsGoals(c *gin.Context) {
	var filter SavingsGoalQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, SavingsGoalListResponse{
			Error: &s,
		})
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.Order("savings_goals.label ASC")

	q = q.Offset(int(filter.Offset))

	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var goals []models.SavingsGoal
	err := q.Find(&goals).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsGoalListResponse{
			Error: &e,
		})
		return
	}

	if filter.Label != "" {
		matched := make([]models.SavingsGoal, 0, len(goals))
		for _, goal := range goals {
			if glob.Glob(filter.Label, goal.Label) {
				matched = append(matched, goal)
			}
		}
		goals = matched
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsGoalListResponse{
			Error: &e,
		})
		return
	}

	data := make([]SavingsGoal, 0)
	for _, goal := range goals {
		data = append(data, newSavingsGoal(c, goal))
	}

	c.JSON(http.StatusOK, SavingsGoalListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Create savings goals
// @Description	Creates savings goals from the list of submitted data. The response code is the highest response code number that a single creation would have caused. If it is not equal to 201, at least one savings goal has an error.
// @Tags			SavingsGoals
// @Produce		json
// @Success		201		{object}	SavingsGoalCreateResponse
// @Failure		400		{object}	SavingsGoalCreateResponse
// @Failure		500		{object}	SavingsGoalCreateResponse
// @Param			goals	body		[]SavingsGoalEditable	true	"Savings goals"
// @Router			/v1/savings-goals [post]
func CreateSavingsGoals(c *gin.Context) {
	var editables []SavingsGoalEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsGoalCreateResponse{
			Error: &e,
		})
		return
	}

	status := http.StatusCreated
	r := SavingsGoalCreateResponse{}

	for _, editable := range editables {
		goal := editable.model()
		err := models.DB.Create(&goal).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newSavingsGoal(c, goal)
		r.Data = append(r.Data, SavingsGoalResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Update savings goal
// @Description	Updates an existing savings goal. Only values to be updated need to be specified.
// @Tags			SavingsGoals
// @Accept			json
// @Produce		json
// @Success		200		{object}	SavingsGoalResponse
// @Failure		400		{object}	SavingsGoalResponse
// @Failure		404		{object}	SavingsGoalResponse
// @Failure		500		{object}	SavingsGoalResponse
// @Param			id		path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			goal	body		SavingsGoalEditable	true	"Savings goal"
// @Router			/v1/savings-goals/{id} [patch]
func UpdateSavingsGoal(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &e,
		})
		return
	}

	var goal models.SavingsGoal
	err = models.DB.First(&goal, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, SavingsGoalEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &e,
		})
		return
	}

	var update SavingsGoalEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &e,
		})
		return
	}

	if update.TargetAmount.IsZero() {
		update.TargetAmount = goal.TargetAmount
	}

	err = models.DB.Model(&goal).Select("", updateFields...).Updates(update.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &e,
		})
		return
	}

	data := newSavingsGoal(c, goal)
	c.JSON(http.StatusOK, SavingsGoalResponse{Data: &data})
}

// @Summary		Delete savings goal
// @Description	Deletes a savings goal
// @Tags			SavingsGoals
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/savings-goals/{id} [delete]
func DeleteSavingsGoal(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var goal models.SavingsGoal
	err = models.DB.First(&goal, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&goal).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

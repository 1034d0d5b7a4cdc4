package v1

import (
	"net/http"
	"time"

	"github.com/budgetflow/backend/internal/httputil"
	"github.com/budgetflow/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterPlannedItemRoutes registers the routes for planned items with
// the RouterGroup that is passed.
func RegisterPlannedItemRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsPlannedItems)
		r.GET("", GetPlannedItems)
		r.POST("", CreatePlannedItems)
	}

	// Planned item with ID
	{
		r.OPTIONS("/:id", OptionsPlannedItemDetail)
		r.GET("/:id", GetPlannedItem)
		r.PATCH("/:id", UpdatePlannedItem)
		r.DELETE("/:id", DeletePlannedItem)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			PlannedItems
// @Success		204
// @Router			/v1/planned [options]
func OptionsPlannedItems(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			PlannedItems
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/planned/{id} [options]
func OptionsPlannedItemDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.PlannedItem{})
}

// @Summary		Get planned item
// @Description	Returns a specific planned item
// @Tags			PlannedItems
// @Produce		json
// @Success		200	{object}	PlannedItemResponse
// @Failure		400	{object}	PlannedItemResponse
// @Failure		404	{object}	PlannedItemResponse
// @Failure		500	{object}	PlannedItemResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/planned/{id} [get]
func GetPlannedItem(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PlannedItemResponse{
			Error: &e,
		})
		return
	}

	var item models.PlannedItem
	err = models.DB.First(&item, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PlannedItemResponse{
			Error: &e,
		})
		return
	}

	data := newPlannedItem(c, item)
	c.JSON(http.StatusOK, PlannedItemResponse{Data: &data})
}

// @Summary		Get planned items
// @Description	Returns a list of planned items
// @Tags			PlannedItems
// @Produce		json
// @Success		200	{object}	PlannedItemListResponse
// @Failure		400	{object}	PlannedItemListResponse
// @Failure		500	{object}	PlannedItemListResponse
// @Router			/v1/planned [get]
// @Param			fromDate	query	string	false	"Items at and after this date. Ignores exact time, matches on the day of the RFC3339 timestamp provided."
// @Param			untilDate	query	string	false	"Items before this date. Ignores exact time, matches on the day of the RFC3339 timestamp provided."
// @Param			type		query	string	false	"Filter by type, income or expense"
// @Param			offset		query	uint	false	"The offset of the first item returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of items to return. Defaults to 50."
func GetPlannedItems(c *gin.Context) {
	var filter PlannedItemQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, PlannedItemListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)
	model := filter.model()

	q := models.DB.
		Order("datetime(planned_items.date) ASC").
		Where(&model, queryFields...)

	if !filter.FromDate.IsZero() {
		q = q.Where("planned_items.date >= date(?)", time.Date(filter.FromDate.Year(), filter.FromDate.Month(), filter.FromDate.Day(), 0, 0, 0, 0, time.UTC))
	}

	if !filter.UntilDate.IsZero() {
		q = q.Where("planned_items.date < date(?)", time.Date(filter.UntilDate.Year(), filter.UntilDate.Month(), filter.UntilDate.Day(), 0, 0, 0, 0, time.UTC))
	}

	q = q.Offset(int(filter.Offset))

	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var items []models.PlannedItem
	err := q.Find(&items).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PlannedItemListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PlannedItemListResponse{
			Error: &e,
		})
		return
	}

	data := make([]PlannedItem, 0)
	for _, item := range items {
		data = append(data, newPlannedItem(c, item))
	}

	c.JSON(http.StatusOK, PlannedItemListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Create planned items
// @Description	Creates planned items from the list of submitted data. The response code is the highest response code number that a single creation would have caused. If it is not equal to 201, at least one planned item has an error.
// @Tags			PlannedItems
// @Produce		json
// @Success		201		{object}	PlannedItemCreateResponse
// @Failure		400		{object}	PlannedItemCreateResponse
// @Failure		404		{object}	PlannedItemCreateResponse
// @Failure		500		{object}	PlannedItemCreateResponse
// @Param			planned	body		[]PlannedItemEditable	true	"Planned items"
// @Router			/v1/planned [post]
func CreatePlannedItems(c *gin.Context) {
	var editables []PlannedItemEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PlannedItemCreateResponse{
			Error: &e,
		})
		return
	}

	status := http.StatusCreated
	r := PlannedItemCreateResponse{}

	for _, editable := range editables {
		item := editable.model()
		err := models.DB.Create(&item).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newPlannedItem(c, item)
		r.Data = append(r.Data, PlannedItemResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Update planned item
// @Description	Updates an existing planned item. Only values to be updated need to be specified.
// @Tags			PlannedItems
// @Accept			json
// @Produce		json
// @Success		200		{object}	PlannedItemResponse
// @Failure		400		{object}	PlannedItemResponse
// @Failure		404		{object}	PlannedItemResponse
// @Failure		500		{object}	PlannedItemResponse
// @Param			id		path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			planned	body		PlannedItemEditable	true	"Planned item"
// @Router			/v1/planned/{id} [patch]
func UpdatePlannedItem(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PlannedItemResponse{
			Error: &e,
		})
		return
	}

	var item models.PlannedItem
	err = models.DB.First(&item, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PlannedItemResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, PlannedItemEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PlannedItemResponse{
			Error: &e,
		})
		return
	}

	var update PlannedItemEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PlannedItemResponse{
			Error: &e,
		})
		return
	}

	if update.Amount.IsZero() {
		update.Amount = item.Amount
	}
	if update.Type == "" {
		update.Type = item.Type
	}

	err = models.DB.Model(&item).Select("", updateFields...).Updates(update.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PlannedItemResponse{
			Error: &e,
		})
		return
	}

	data := newPlannedItem(c, item)
	c.JSON(http.StatusOK, PlannedItemResponse{Data: &data})
}

// @Summary		Delete planned item
// @Description	Deletes a planned item
// @Tags			PlannedItems
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/planned/{id} [delete]
func DeletePlannedItem(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var item models.PlannedItem
	err = models.DB.First(&item, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&item).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

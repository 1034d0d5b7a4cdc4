package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/budgetflow/backend/internal/httputil"
	"github.com/budgetflow/backend/internal/models"
	"github.com/budgetflow/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
)

// RegisterRecurringItemRoutes registers the routes for recurring items
// with the RouterGroup that is passed.
func RegisterRecurringItemRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsRecurringItems)
		r.GET("", GetRecurringItems)
		r.POST("", CreateRecurringItems)
	}

	// Recurring item with ID
	{
		r.OPTIONS("/:id", OptionsRecurringItemDetail)
		r.GET("/:id", GetRecurringItem)
		r.PATCH("/:id", UpdateRecurringItem)
		r.DELETE("/:id", DeleteRecurringItem)
	}

	// Commands acting on one month of a rule
	{
		r.OPTIONS("/:id/realize", httputil.OptionsPost)
		r.POST("/:id/realize", RealizeRecurringItem)
		r.OPTIONS("/:id/skip", httputil.OptionsPost)
		r.POST("/:id/skip", SkipRecurringItem)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			RecurringItems
// @Success		204
// @Router			/v1/recurring [options]
func OptionsRecurringItems(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			RecurringItems
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/recurring/{id} [options]
func OptionsRecurringItemDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.RecurringItem{})
}

// @Summary		Get recurring item
// @Description	Returns a specific recurring item
// @Tags			RecurringItems
// @Produce		json
// @Success		200	{object}	RecurringItemResponse
// @Failure		400	{object}	RecurringItemResponse
// @Failure		404	{object}	RecurringItemResponse
// @Failure		500	{object}	RecurringItemResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/recurring/{id} [get]
func GetRecurringItem(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringItemResponse{
			Error: &e,
		})
		return
	}

	var item models.RecurringItem
	err = models.DB.First(&item, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringItemResponse{
			Error: &e,
		})
		return
	}

	data := newRecurringItem(c, item)
	c.JSON(http.StatusOK, RecurringItemResponse{Data: &data})
}

// @Summary		Get recurring items
// @Description	Returns a list of recurring items
// @Tags			RecurringItems
// @Produce		json
// @Success		200	{object}	RecurringItemListResponse
// @Failure		400	{object}	RecurringItemListResponse
// @Failure		500	{object}	RecurringItemListResponse
// @Router			/v1/recurring [get]
// @Param			label		query	string	false	"Label matches this glob pattern, e.g. 'Net*'"
// @Param			type		query	string	false	"Filter by type, income or expense"
// @Param			dayOfMonth	query	int		false	"Filter by the day of the month the rule fires on"
// @Param			offset		query	uint	false	"The offset of the first item returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of items to return. Defaults to 50."
func GetRecurringItems(c *gin.Context) {
	var filter RecurringItemQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, RecurringItemListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)
	model := filter.model()

	q := models.DB.
		Order("recurring_items.day_of_month ASC, recurring_items.label ASC").
		Where(&model, queryFields...)

	q = q.Offset(int(filter.Offset))

	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var items []models.RecurringItem
	err := q.Find(&items).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringItemListResponse{
			Error: &e,
		})
		return
	}

	if filter.Label != "" {
		matched := make([]models.RecurringItem, 0, len(items))
		for _, item := range items {
			if glob.Glob(filter.Label, item.Label) {
				matched = append(matched, item)
			}
		}
		items = matched
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringItemListResponse{
			Error: &e,
		})
		return
	}

	data := make([]RecurringItem, 0)
	for _, item := range items {
		data = append(data, newRecurringItem(c, item))
	}

	c.JSON(http.StatusOK, RecurringItemListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Create recurring items
// @Description	Creates recurring items from the list of submitted data. The response code is the highest response code number that a single creation would have caused. If it is not equal to 201, at least one recurring item has an error.
// @Tags			RecurringItems
// @Produce		json
// @Success		201			{object}	RecurringItemCreateResponse
// @Failure		400			{object}	RecurringItemCreateResponse
// @Failure		404			{object}	RecurringItemCreateResponse
// @Failure		500			{object}	RecurringItemCreateResponse
// @Param			recurring	body		[]RecurringItemEditable	true	"Recurring items"
// @Router			/v1/recurring [post]
func CreateRecurringItems(c *gin.Context) {
	var editables []RecurringItemEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringItemCreateResponse{
			Error: &e,
		})
		return
	}

	status := http.StatusCreated
	r := RecurringItemCreateResponse{}

	for _, editable := range editables {
		item := editable.model()
		err := models.DB.Create(&item).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newRecurringItem(c, item)
		r.Data = append(r.Data, RecurringItemResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Update recurring item
// @Description	Updates an existing recurring item. Only values to be updated need to be specified.
// @Tags			RecurringItems
// @Accept			json
// @Produce		json
// @Success		200			{object}	RecurringItemResponse
// @Failure		400			{object}	RecurringItemResponse
// @Failure		404			{object}	RecurringItemResponse
// @Failure		500			{object}	RecurringItemResponse
// @Param			id			path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			recurring	body		RecurringItemEditable	true	"Recurring item"
// @Router			/v1/recurring/{id} [patch]
func UpdateRecurringItem(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringItemResponse{
			Error: &e,
		})
		return
	}

	var item models.RecurringItem
	err = models.DB.First(&item, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringItemResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, RecurringItemEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringItemResponse{
			Error: &e,
		})
		return
	}

	var update RecurringItemEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringItemResponse{
			Error: &e,
		})
		return
	}

	// Fall back to the old values for fields a partial update does not
	// send but the model validation needs
	if update.Amount.IsZero() {
		update.Amount = item.Amount
	}
	if update.Type == "" {
		update.Type = item.Type
	}
	if update.DayOfMonth == 0 {
		update.DayOfMonth = item.DayOfMonth
	}

	err = models.DB.Model(&item).Select("", updateFields...).Updates(update.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringItemResponse{
			Error: &e,
		})
		return
	}

	data := newRecurringItem(c, item)
	c.JSON(http.StatusOK, RecurringItemResponse{Data: &data})
}

// @Summary		Delete recurring item
// @Description	Deletes a recurring item. Transactions referencing it keep existing, their reference is cleared.
// @Tags			RecurringItems
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/recurring/{id} [delete]
func DeleteRecurringItem(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var item models.RecurringItem
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

// @Summary		Realize recurring item
// @Description	Creates a confirmed transaction for one occurrence of the recurring item. The transaction claims the occurrence's month, so the generated event for that month disappears from projections.
// @Tags			RecurringItems
// @Accept			json
// @Produce		json
// @Success		201		{object}	TransactionResponse
// @Failure		400		{object}	TransactionResponse
// @Failure		404		{object}	TransactionResponse
// @Failure		500		{object}	TransactionResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			realize	body		RealizeEditable	false	"Overrides for date and amount"
// @Router			/v1/recurring/{id}/realize [post]
func RealizeRecurringItem(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	var item models.RecurringItem
	err = models.DB.First(&item, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	var editable RealizeEditable
	err = httputil.BindData(c, &editable)
	if err != nil && !errors.Is(err, httputil.ErrRequestBodyEmpty) {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	// Without an explicit date, the payment is booked on the occurrence
	// day of the current month
	date := editable.Date
	if date.IsZero() {
		date = types.MonthOf(time.Now().In(time.UTC)).Day(item.DayOfMonth)
	}

	amount := editable.Amount
	if amount.IsZero() {
		amount = item.Amount
	}

	transaction := models.Transaction{
		Label:       item.Label,
		Amount:      amount,
		Date:        date,
		Type:        item.Type,
		Status:      models.TransactionConfirmed,
		CategoryID:  item.CategoryID,
		RecurringID: &item.ID,
	}

	err = models.DB.Create(&transaction).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	data := newTransaction(c, transaction)
	c.JSON(http.StatusCreated, TransactionResponse{Data: &data})
}

// @Summary		Skip recurring item
// @Description	Suppresses one occurrence of the recurring item by creating a skip marker for its month. The month's generated event disappears from projections and reports without any money movement being recorded.
// @Tags			RecurringItems
// @Accept			json
// @Produce		json
// @Success		201		{object}	TransactionResponse
// @Failure		400		{object}	TransactionResponse
// @Failure		404		{object}	TransactionResponse
// @Failure		500		{object}	TransactionResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			skip	body		SkipEditable	false	"The month to skip"
// @Router			/v1/recurring/{id}/skip [post]
func SkipRecurringItem(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	var item models.RecurringItem
	err = models.DB.First(&item, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	var editable SkipEditable
	err = httputil.BindData(c, &editable)
	if err != nil && !errors.Is(err, httputil.ErrRequestBodyEmpty) {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	month := editable.Month
	if month.IsZero() {
		month = types.MonthOf(time.Now().In(time.UTC))
	}

	transaction := models.Transaction{
		Label:       item.Label,
		Date:        month.Day(item.DayOfMonth),
		Type:        item.Type,
		Status:      models.TransactionSkipped,
		CategoryID:  item.CategoryID,
		RecurringID: &item.ID,
	}

	err = models.DB.Create(&transaction).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	data := newTransaction(c, transaction)
	c.JSON(http.StatusCreated, TransactionResponse{Data: &data})
}

package v1

import (
	"net/http"

	"github.com/budgetflow/backend/internal/httputil"
	"github.com/budgetflow/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// URIKey is the URI binding for settings, which are keyed by name
// instead of UUID.
type URIKey struct {
	Key string `uri:"key" binding:"required" example:"currency"` // Key of the setting
}

type SettingEditable struct {
	Value string `json:"value" example:"EUR"` // The value of the setting
}

type SettingResponse struct {
	Error *string         `json:"error" example:"the setting key must not be empty"` // The error, if any occurred
	Data  *models.Setting `json:"data"`                                              // The setting
}

type SettingListResponse struct {
	Error *string          `json:"error" example:"the setting key must not be empty"` // The error, if any occurred
	Data  []models.Setting `json:"data"`                                              // List of settings
}

// RegisterSettingRoutes registers the routes for settings with
// the RouterGroup that is passed.
func RegisterSettingRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGet)
		r.GET("", GetSettings)
	}

	{
		r.OPTIONS("/:key", httputil.OptionsGetPut)
		r.GET("/:key", GetSettingByKey)
		r.PUT("/:key", UpdateSetting)
	}
}

// @Summary		Get settings
// @Description	Returns all settings of the instance
// @Tags			Settings
// @Produce		json
// @Success		200	{object}	SettingListResponse
// @Failure		500	{object}	SettingListResponse
// @Router			/v1/settings [get]
func GetSettings(c *gin.Context) {
	var settings []models.Setting
	err := models.DB.Find(&settings).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingListResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, SettingListResponse{Data: settings})
}

// @Summary		Get setting
// @Description	Returns the setting for a key
// @Tags			Settings
// @Produce		json
// @Success		200	{object}	SettingResponse
// @Failure		404	{object}	SettingResponse
// @Failure		500	{object}	SettingResponse
// @Param			key	path		string	true	"Key of the setting"
// @Router			/v1/settings/{key} [get]
func GetSettingByKey(c *gin.Context) {
	var uri URIKey
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingResponse{
			Error: &e,
		})
		return
	}

	setting, err := models.GetSetting(uri.Key)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, SettingResponse{Data: &setting})
}

// @Summary		Set setting
// @Description	Creates or updates the setting for a key
// @Tags			Settings
// @Accept			json
// @Produce		json
// @Success		200		{object}	SettingResponse
// @Failure		400		{object}	SettingResponse
// @Failure		500		{object}	SettingResponse
// @Param			key		path		string			true	"Key of the setting"
// @Param			setting	body		SettingEditable	true	"Setting"
// @Router			/v1/settings/{key} [put]
func UpdateSetting(c *gin.Context) {
	var uri URIKey
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingResponse{
			Error: &e,
		})
		return
	}

	var editable SettingEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingResponse{
			Error: &e,
		})
		return
	}

	err = models.SetSetting(uri.Key, editable.Value)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingResponse{
			Error: &e,
		})
		return
	}

	setting, err := models.GetSetting(uri.Key)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, SettingResponse{Data: &setting})
}

package v1

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/budgetflow/backend/internal/backup"
	"github.com/budgetflow/backend/internal/httputil"
	"github.com/budgetflow/backend/internal/models"
	"github.com/gin-gonic/gin"
)

var backendVersion string

// RegisterBackupRoutes registers the routes for backups with
// the RouterGroup that is passed.
func RegisterBackupRoutes(r *gin.RouterGroup, version string) {
	backendVersion = version

	{
		r.OPTIONS("/backup", httputil.OptionsPost)
		r.POST("/backup", CreateBackup)
		r.OPTIONS("/restore", httputil.OptionsPost)
		r.POST("/restore", RestoreBackup)
	}
}

// @Summary		Create backup
// @Description	Exports all resources of the instance as an encrypted blob. The secret passed as query parameter is needed to restore the backup.
// @Tags			Backup
// @Produce		application/octet-stream
// @Success		200
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			secret	query		string	true	"Secret used to encrypt the backup"
// @Router			/v1/backup [post]
func CreateBackup(c *gin.Context) {
	var params struct {
		Secret string `form:"secret"`
	}

	err := c.Bind(&params)
	if err != nil || params.Secret == "" {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errBackupSecretNotSet.Error(),
		})
		return
	}

	blob, err := backup.Create(backendVersion, params.Secret)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.SetSetting(models.SettingLastBackup, time.Now().In(time.UTC).Format(time.RFC3339))
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	filename := fmt.Sprintf("budgetflow-%s.backup", time.Now().In(time.UTC).Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/octet-stream", blob)
}

// @Summary		Restore backup
// @Description	Replaces all resources of the instance with the content of the uploaded backup. The replacement is transactional, a backup that cannot be decrypted or parsed leaves the instance untouched.
// @Tags			Backup
// @Accept			multipart/form-data
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		422		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			file	formData	file	true	"The backup blob"
// @Param			secret	formData	string	true	"Secret the backup was encrypted with"
// @Router			/v1/restore [post]
func RestoreBackup(c *gin.Context) {
	secret := c.PostForm("secret")
	if secret == "" {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errBackupSecretNotSet.Error(),
		})
		return
	}

	formFile, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errNoFilePost.Error(),
		})
		return
	}

	file, err := formFile.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: err.Error(),
		})
		return
	}
	defer file.Close()

	blob, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: err.Error(),
		})
		return
	}

	err = backup.Restore(models.DB, blob, secret)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

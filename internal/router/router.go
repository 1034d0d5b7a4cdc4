package router

import (
	"net/http"
	"os"
	"strings"

	docs "github.com/budgetflow/backend/api"
	v1 "github.com/budgetflow/backend/internal/controllers/v1"
	"github.com/budgetflow/backend/internal/httputil"
	"github.com/budgetflow/backend/internal/models"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// This is set at build time with ldflags.
var version = "0.0.0"

// Version returns the software version of the backend.
func Version() string {
	return version
}

// Config sets up the router and all middlewares.
func Config() (*gin.Engine, error) {
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(URLMiddleware())
	r.Use(MetricsMiddleware())
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, l zerolog.Logger) zerolog.Logger {
			return l.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings
	allowOrigins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS")
	if ok {
		log.Debug().Str("CORS Allowed Origins", allowOrigins).Msg("Router")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Fields(allowOrigins),
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PATCH", "PUT", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	if err := registerPrometheusMetrics(); err != nil {
		return nil, err
	}

	docs.SwaggerInfo.Title = "BudgetFlow"
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Description = "The backend for BudgetFlow, a personal finance tracker that projects recurring and planned cash flow into the future."

	log.Info().Str("version", version).Msg("Router")

	return r, nil
}

// AttachRoutes attaches the API routes to the router group that is passed in.
// Separating this from Config() allows us to attach them to different
// paths for different use cases.
func AttachRoutes(group *gin.RouterGroup) {
	group.GET("", GetRoot)
	group.OPTIONS("", OptionsRoot)
	group.GET("/version", GetVersion)
	group.OPTIONS("/version", OptionsVersion)

	group.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// pprof performance profiles
	enablePprof, ok := os.LookupEnv("ENABLE_PPROF")
	if ok && enablePprof == "true" {
		pprof.RouteRegister(group, "debug/pprof")
	}

	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 setup
	v1Group := group.Group("/v1")
	{
		v1Group.GET("", GetV1)
		v1Group.DELETE("", v1.Cleanup)
		v1Group.OPTIONS("", OptionsV1)
	}

	v1.RegisterTransactionRoutes(v1Group.Group("/transactions"))
	v1.RegisterRecurringItemRoutes(v1Group.Group("/recurring"))
	v1.RegisterPlannedItemRoutes(v1Group.Group("/planned"))
	v1.RegisterCategoryRoutes(v1Group.Group("/categories"))
	v1.RegisterSavingsGoalRoutes(v1Group.Group("/savings-goals"))
	v1.RegisterSettingRoutes(v1Group.Group("/settings"))
	v1.RegisterBalanceRoutes(v1Group.Group("/balance"))
	v1.RegisterProjectionRoutes(v1Group.Group("/projection"))
	v1.RegisterReportRoutes(v1Group.Group("/report"))
	v1.RegisterBackupRoutes(v1Group, version)
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Docs    string `json:"docs" example:"https://example.com/api/docs/index.html"` // Swagger API documentation
	Metrics string `json:"metrics" example:"https://example.com/api/metrics"`      // Prometheus metrics
	Version string `json:"version" example:"https://example.com/api/version"`      // Endpoint returning the version of the backend
	V1      string `json:"v1" example:"https://example.com/api/v1"`                // List endpoint for all v1 endpoints
}

// GetRoot returns the link list for the API root
//
//	@Summary		API root
//	@Description	Entrypoint for the API, listing all endpoints
//	@Tags			General
//	@Success		200	{object}	RootResponse
//	@Router			/ [get]
func GetRoot(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Docs:    url + "/docs/index.html",
			Metrics: url + "/metrics",
			Version: url + "/version",
			V1:      url + "/v1",
		},
	})
}

type VersionResponse struct {
	Data VersionObject `json:"data"`
}
type VersionObject struct {
	Version string `json:"version" example:"1.1.0"`
}

// GetVersion returns the software version of the API
//
//	@Summary		API version
//	@Description	Returns the software version of the API
//	@Tags			General
//	@Success		200	{object}	VersionResponse
//	@Router			/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Data: VersionObject{
			Version: version,
		},
	})
}

// OptionsRoot returns the allowed HTTP verbs
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/ [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}

// OptionsVersion returns the allowed HTTP verbs
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/version [options]
func OptionsVersion(c *gin.Context) {
	httputil.OptionsGet(c)
}

type V1Response struct {
	Links V1Links `json:"links"`
}

type V1Links struct {
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions"`  // Transaction endpoints
	Recurring    string `json:"recurring" example:"https://example.com/api/v1/recurring"`        // Recurring item endpoints
	Planned      string `json:"planned" example:"https://example.com/api/v1/planned"`            // Planned item endpoints
	Categories   string `json:"categories" example:"https://example.com/api/v1/categories"`      // Category endpoints
	SavingsGoals string `json:"savingsGoals" example:"https://example.com/api/v1/savings-goals"` // Savings goal endpoints
	Settings     string `json:"settings" example:"https://example.com/api/v1/settings"`          // Setting endpoints
	Balance      string `json:"balance" example:"https://example.com/api/v1/balance"`            // Balance endpoints
	Projection   string `json:"projection" example:"https://example.com/api/v1/projection"`      // Balance projection
	Report       string `json:"report" example:"https://example.com/api/v1/report"`              // Monthly report
	Backup       string `json:"backup" example:"https://example.com/api/v1/backup"`              // Backup creation
	Restore      string `json:"restore" example:"https://example.com/api/v1/restore"`            // Backup restoration
}

// GetV1 returns general information about the v1 API
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			General
//	@Success		200	{object}	V1Response
//	@Router			/v1 [get]
func GetV1(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL)) + "/v1"

	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			Transactions: url + "/transactions",
			Recurring:    url + "/recurring",
			Planned:      url + "/planned",
			Categories:   url + "/categories",
			SavingsGoals: url + "/savings-goals",
			Settings:     url + "/settings",
			Balance:      url + "/balance",
			Projection:   url + "/projection",
			Report:       url + "/report",
			Backup:       url + "/backup",
			Restore:      url + "/restore",
		},
	})
}

// OptionsV1 returns the allowed HTTP verbs
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/v1 [options]
func OptionsV1(c *gin.Context) {
	c.Header("allow", "OPTIONS, GET, DELETE")
	c.Status(http.StatusNoContent)
}

package router

import (
	"net/http"
	"net/url"

	docs "github.com/envelope-zero/expenses/api"
	"github.com/envelope-zero/expenses/pkg/controllers/healthz"
	"github.com/envelope-zero/expenses/pkg/controllers/root"
	v1 "github.com/envelope-zero/expenses/pkg/controllers/v1"
	"github.com/envelope-zero/expenses/pkg/controllers/version"
	"github.com/envelope-zero/expenses/pkg/httperrors"
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

// Options configures the optional parts of the router.
type Options struct {
	// AllowOrigins enables CORS for the listed origins
	AllowOrigins []string

	// Pprof registers the pprof profiling endpoints
	Pprof bool

	// Version is returned by the version endpoint
	Version string
}

func Config(url *url.URL, opts Options) (*gin.Engine, error) {
	err := registerPrometheusMetrics()
	if err != nil {
		return nil, err
	}

	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(URLMiddleware(url))
	r.Use(MetricsMiddleware())
	r.NoMethod(func(c *gin.Context) {
		httperrors.Respond(c, httperrors.Error{Status: http.StatusMethodNotAllowed, Err: httperrors.ErrMethodNotAllowed})
	})
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, logger zerolog.Logger) zerolog.Logger {
			return logger.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings
	if len(opts.AllowOrigins) > 0 {
		log.Debug().Strs("CORS Allowed Origins", opts.AllowOrigins).Msg("Router")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     opts.AllowOrigins,
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PUT", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	log.Debug().Str("API Base URL", url.String()).Str("Host", url.Host).Str("Path", url.Path).Msg("Router")
	log.Info().Str("version", opts.Version).Msg("Router")

	docs.SwaggerInfo.Host = url.Host
	docs.SwaggerInfo.BasePath = url.Path
	docs.SwaggerInfo.Title = "Expenses"
	docs.SwaggerInfo.Version = opts.Version
	docs.SwaggerInfo.Description = "The backend for tracking personal expenses against an income and monthly budgets per category."

	return r, nil
}

// AttachRoutes attaches the API routes to the router group that is passed in
// Separating this from Config() allows us to attach it to different
// paths for different use cases.
func AttachRoutes(co v1.Controller, group *gin.RouterGroup, opts Options) {
	root.RegisterRoutes(group)
	version.RegisterRoutes(group.Group("/version"), opts.Version)
	healthz.RegisterRoutes(group.Group("/healthz"), co.Ledger)

	group.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// pprof performance profiles
	if opts.Pprof {
		pprof.RouteRegister(group, "debug/pprof")
	}

	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 setup
	auth := AuthMiddleware(co.Ledger)

	v1Group := group.Group("/v1")
	v1.RegisterRootRoutes(v1Group)
	co.RegisterUserRoutes(v1Group.Group("/users"), auth)

	authenticated := v1Group.Group("", auth)
	co.RegisterIncomeRoutes(authenticated.Group("/income"))
	co.RegisterCategoryRoutes(authenticated.Group("/categories"))
	co.RegisterExpenseRoutes(authenticated.Group("/expenses"))
	co.RegisterBudgetRoutes(authenticated.Group("/budgets"))
	co.RegisterReportRoutes(authenticated)
}

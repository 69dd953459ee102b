// Package server builds the gin engine: middleware, dependencies, routes.
package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"assessment-backend/internal/assessments"
	"assessment-backend/internal/catalog"
	"assessment-backend/internal/config"
	"assessment-backend/internal/services/health"
	"assessment-backend/internal/shared/metrics"
	"assessment-backend/internal/shared/server/middleware"
	"assessment-backend/internal/shared/server/respond"
)

const exportRateGroup = "EXPORT"

// NewRouter constructs the gin engine with middleware and routes registered.
func NewRouter(cfg config.Config, cat catalog.Catalog) *gin.Engine {
	gin.SetMode(ginMode(cfg.Env))
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				exportRateGroup: {Rate: 2, Burst: 5},
			},
			GroupFor: func(c *gin.Context) string {
				if strings.Contains(c.Request.URL.Path, "/exports/") {
					return exportRateGroup
				}
				return ""
			},
		}),
	)

	healthSvc := health.NewService(cat.Version, cat.QuestionCount())
	assessmentSvc := assessments.NewService(cat, assessments.NewMemoryRepo())
	assessmentHandler := assessments.NewHandler(assessmentSvc)
	catalogHandler := catalog.NewHandler(cat)

	r.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, healthSvc.Status())
	})
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	catalogHandler.RegisterRoutes(api)
	assessmentHandler.RegisterRoutes(api)

	return r
}

func ginMode(env string) string {
	switch env {
	case "production", "staging":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}

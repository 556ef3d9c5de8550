package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"therapy-backend/internal/assessments"
	googleauth "therapy-backend/internal/auth"
	"therapy-backend/internal/exercises"
	"therapy-backend/internal/services/health"
	sharedauth "therapy-backend/internal/shared/auth"
	"therapy-backend/internal/shared/config"
	"therapy-backend/internal/shared/metrics"
	"therapy-backend/internal/shared/server/middleware"
	"therapy-backend/internal/shared/server/respond"
	"therapy-backend/internal/users"
)

// RouterDeps carries the wired handlers and services the router needs.
type RouterDeps struct {
	Config            config.Config
	Tokens            *sharedauth.Tokens
	AssessmentHandler *assessments.Handler
	ExerciseHandler   *exercises.Handler
	UserHandler       *users.Handler
	GoogleAuth        *googleauth.GoogleService
	Health            *health.Service
	RateLimitRules    map[string]middleware.RateLimitRule
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(deps.Tokens),
	)
	if len(deps.RateLimitRules) > 0 {
		r.Use(middleware.RateLimit(middleware.RateLimitConfig{
			Rules:    deps.RateLimitRules,
			GroupFor: middleware.RecommendationGroup,
		}))
	}

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, deps.Health.Status())
	})
	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	if deps.UserHandler != nil {
		deps.UserHandler.RegisterRoutes(api)
	}
	if deps.ExerciseHandler != nil {
		deps.ExerciseHandler.RegisterRoutes(api)
	}
	if deps.AssessmentHandler != nil {
		deps.AssessmentHandler.RegisterRoutes(api)
	}

	return r
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

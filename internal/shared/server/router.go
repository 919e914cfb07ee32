package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"seo-audit-backend/internal/audits"
	googleauth "seo-audit-backend/internal/auth"
	"seo-audit-backend/internal/shared/config"
	"seo-audit-backend/internal/shared/metrics"
	"seo-audit-backend/internal/shared/server/middleware"
	"seo-audit-backend/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config       config.Config
	AuditHandler *audits.Handler
	GoogleAuth   *googleauth.GoogleService
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
		middleware.RateLimit(middleware.RateLimitConfig{
			DefaultGroup: "DEFAULT",
			GroupFor:     rateLimitGroup,
			Rules: map[string]middleware.RateLimitRule{
				"DEFAULT": {Rate: 5, Burst: 10},
				"POLLING": {Rate: 20, Burst: 40},
			},
		}),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/metrics", metrics.Handler())

	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	if deps.AuditHandler != nil {
		deps.AuditHandler.RegisterRoutes(api)
	}

	return r
}

// Status polling is read-heavy, so it gets a looser rate limit group.
func rateLimitGroup(c *gin.Context) string {
	if c.Request.Method == http.MethodGet {
		switch c.FullPath() {
		case "/api/v1/audits/:id", "/api/v1/audits/:id/plan":
			return "POLLING"
		}
	}
	return "DEFAULT"
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

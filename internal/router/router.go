package router

import (
	"github.com/gin-gonic/gin"

	"insdocs/internal/domain"
	"insdocs/internal/handler"
	"insdocs/internal/middleware"
	"insdocs/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	authSvc service.AuthService,
	corsOrigins []string,
	authH *handler.AuthHandler,
	scanH *handler.ScanHandler,
	docH *handler.DocumentHandler,
	fileH *handler.FileHandler,
	exportH *handler.ExportHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(corsOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.Refresh)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	// Stateless scan
	protected.POST("/scan", scanH.Scan)

	// Document records
	docs := protected.Group("/documents")
	docs.GET("", docH.ListAll)
	docs.POST("/:type", docH.Create)
	docs.GET("/:type", docH.List)
	docs.GET("/:type/:id", docH.GetByID)
	docs.PUT("/:type/:id", docH.Update)
	docs.DELETE("/:type/:id", middleware.RequireRole(domain.RoleAdmin), docH.Delete)
	docs.GET("/:type/:id/file", fileH.Download)
	docs.GET("/:type/:id/preview", fileH.Preview)

	// Summary exports
	protected.GET("/export", exportH.Export)

	return r
}

package app

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/emeraldgate/core/internal/middleware"
	"github.com/emeraldgate/core/internal/models"
	"github.com/emeraldgate/core/internal/modules/auth"
	"github.com/emeraldgate/core/internal/modules/catalog/agent"
	"github.com/emeraldgate/core/internal/modules/catalog/listing"
	"github.com/emeraldgate/core/internal/modules/catalog/saved"
	"github.com/emeraldgate/core/internal/modules/content/category"
	"github.com/emeraldgate/core/internal/modules/content/page"
	"github.com/emeraldgate/core/internal/modules/content/post"
	"github.com/emeraldgate/core/internal/modules/content/render"
	"github.com/emeraldgate/core/internal/modules/feedback"
	"github.com/emeraldgate/core/internal/modules/storage/file"
	pkgredis "github.com/emeraldgate/core/internal/pkg/redis"
	"github.com/emeraldgate/core/internal/pkg/response"
	"github.com/emeraldgate/core/internal/pkg/s3store"
)

const apiPrefix = "/api/v1"

func (a *App) registerRoutes(rc *pkgredis.Client, store *s3store.Client) {
	r := a.router
	db := a.db
	authMW := middleware.Auth(db)
	adminMW := middleware.RequireRole(db, models.RoleAdmin)

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	// Rate limiting and the double-submit guard run on every route.
	r.Use(middleware.RateLimit(rc.Raw()))
	r.Use(middleware.Idempotence(rc.Raw()))

	// Server-rendered pages live outside the versioned API.
	root := r.Group("", middleware.OptionalAuth(db))
	render.NewHandler(db).RegisterRoutes(root, authMW)

	api := r.Group(apiPrefix)
	api.Use(middleware.OptionalAuth(db))
	api.Use(middleware.HTTPCache(rc.Raw()))

	api.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": "pong"})
	})
	api.GET("/uptime", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"uptime_ms": time.Since(processStart).Milliseconds()})
	})

	// Auth
	auth.NewHandler(auth.NewService(db)).RegisterRoutes(api, authMW)

	// Content
	post.NewHandler(post.NewService(db)).RegisterRoutes(api, adminMW)
	category.NewHandler(category.NewService(db)).RegisterRoutes(api, adminMW)
	page.NewHandler(page.NewService(db)).RegisterRoutes(api, adminMW)

	// Catalog
	listing.NewHandler(listing.NewService(db)).RegisterRoutes(api, authMW, adminMW)
	agent.NewHandler(agent.NewService(db)).RegisterRoutes(api, adminMW)
	saved.NewHandler(saved.NewService(db)).RegisterRoutes(api, authMW)

	// Feedback
	feedback.NewHandler(feedback.NewService(db)).RegisterRoutes(api, adminMW)

	// Uploads
	file.NewHandler(store).RegisterRoutes(api, authMW, adminMW)
}

var processStart = time.Now()

package render

import (
	"errors"
	"net/http"
	"strings"

	"github.com/emeraldgate/core/internal/middleware"
	"github.com/emeraldgate/core/internal/models"
	"github.com/emeraldgate/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	db *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler { return &Handler{db: db} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/render")
	g.GET("/posts/:identifier", h.renderPost)
}

// renderPost serves the full HTML page for a post addressed by id or slug.
// Drafts are only visible to administrators; everyone else gets the same
// not-found page as for a missing post.
func (h *Handler) renderPost(c *gin.Context) {
	identifier := strings.TrimSpace(c.Param("identifier"))
	if identifier == "" {
		h.notFound(c)
		return
	}

	var post models.PostModel
	err := h.db.Preload("Category").
		First(&post, "id = ? OR slug = ?", identifier, identifier).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.notFound(c)
			return
		}
		response.InternalError(c, err)
		return
	}

	if !post.IsPublished && !middleware.IsAdmin(c) {
		h.notFound(c)
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, renderDocument(post.Title, RenderArticle(&post)))
}

func (h *Handler) notFound(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusNotFound, renderNotFound())
}

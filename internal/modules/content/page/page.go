package page

import (
	"bytes"
	"errors"
	"net/http"
	"time"

	"github.com/emeraldgate/core/internal/models"
	"github.com/emeraldgate/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"
	"gorm.io/gorm"
)

// ErrSlugExists is returned when a page slug is already taken.
var ErrSlugExists = errors.New("slug already exists")

var markdownEngine = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Linkify,
		extension.Typographer,
	),
	goldmark.WithRendererOptions(
		htmlrenderer.WithHardWraps(),
		htmlrenderer.WithXHTML(),
	),
)

type CreatePageDTO struct {
	Slug     string `json:"slug"     binding:"required"`
	Title    string `json:"title"    binding:"required"`
	Text     string `json:"text"     binding:"required"`
	Subtitle string `json:"subtitle"`
	Order    *int   `json:"order"`
}

type UpdatePageDTO struct {
	Slug     *string `json:"slug"`
	Title    *string `json:"title"`
	Text     *string `json:"text"`
	Subtitle *string `json:"subtitle"`
	Order    *int    `json:"order"`
}

type pageResponse struct {
	ID       string    `json:"id"`
	Slug     string    `json:"slug"`
	Title    string    `json:"title"`
	Text     string    `json:"text"`
	Subtitle string    `json:"subtitle"`
	Order    int       `json:"order"`
	Created  time.Time `json:"created_at"`
	Modified time.Time `json:"updated_at"`
}

func toResponse(p *models.PageModel) pageResponse {
	return pageResponse{
		ID: p.ID, Slug: p.Slug, Title: p.Title, Text: p.Text,
		Subtitle: p.Subtitle, Order: p.Order,
		Created: p.CreatedAt, Modified: p.UpdatedAt,
	}
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) List() ([]models.PageModel, error) {
	var pages []models.PageModel
	err := s.db.Order("order_num ASC, created_at ASC").Find(&pages).Error
	return pages, err
}

func (s *Service) GetBySlug(slug string) (*models.PageModel, error) {
	var p models.PageModel
	if err := s.db.Where("slug = ?", slug).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (s *Service) GetByID(id string) (*models.PageModel, error) {
	var p models.PageModel
	if err := s.db.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// GetByIdentifier fetches by ID first, then slug fallback.
func (s *Service) GetByIdentifier(identifier string) (*models.PageModel, error) {
	if p, err := s.GetByID(identifier); err != nil {
		return nil, err
	} else if p != nil {
		return p, nil
	}
	return s.GetBySlug(identifier)
}

func (s *Service) Create(dto *CreatePageDTO) (*models.PageModel, error) {
	var count int64
	s.db.Model(&models.PageModel{}).Where("slug = ?", dto.Slug).Count(&count)
	if count > 0 {
		return nil, ErrSlugExists
	}
	p := models.PageModel{
		Slug: dto.Slug, Title: dto.Title, Text: dto.Text, Subtitle: dto.Subtitle,
	}
	if dto.Order != nil {
		p.Order = *dto.Order
	}
	return &p, s.db.Create(&p).Error
}

func (s *Service) Update(id string, dto *UpdatePageDTO) (*models.PageModel, error) {
	p, err := s.GetByID(id)
	if err != nil || p == nil {
		return p, err
	}
	updates := map[string]interface{}{}
	if dto.Slug != nil && *dto.Slug != p.Slug {
		var count int64
		s.db.Model(&models.PageModel{}).
			Where("slug = ? AND id <> ?", *dto.Slug, p.ID).Count(&count)
		if count > 0 {
			return nil, ErrSlugExists
		}
		updates["slug"] = *dto.Slug
	}
	if dto.Title != nil {
		updates["title"] = *dto.Title
	}
	if dto.Text != nil {
		updates["text"] = *dto.Text
	}
	if dto.Subtitle != nil {
		updates["subtitle"] = *dto.Subtitle
	}
	if dto.Order != nil {
		updates["order_num"] = *dto.Order
	}
	if err := s.db.Model(p).Updates(updates).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Delete(id string) error {
	return s.db.Delete(&models.PageModel{}, "id = ?", id).Error
}

// RenderHTML converts a page's markdown body to HTML.
func RenderHTML(text string) (string, error) {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(text), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, adminMW gin.HandlerFunc) {
	g := rg.Group("/pages")
	g.GET("", h.list)
	g.GET("/:identifier", h.getByIdentifier)
	g.GET("/:identifier/html", h.getHTML)

	a := g.Group("", adminMW)
	a.POST("", h.create)
	a.PUT("/:id", h.update)
	a.PATCH("/:id", h.update)
	a.DELETE("/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	pages, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	items := make([]pageResponse, len(pages))
	for i := range pages {
		items[i] = toResponse(&pages[i])
	}
	response.OK(c, items)
}

func (h *Handler) getByIdentifier(c *gin.Context) {
	p, err := h.svc.GetByIdentifier(c.Param("identifier"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if p == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, toResponse(p))
}

// getHTML GET /pages/:identifier/html serves the markdown body rendered to HTML.
func (h *Handler) getHTML(c *gin.Context) {
	p, err := h.svc.GetByIdentifier(c.Param("identifier"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if p == nil {
		response.NotFound(c)
		return
	}
	html, err := RenderHTML(p.Text)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, html)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreatePageDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	p, err := h.svc.Create(&dto)
	if err != nil {
		if errors.Is(err, ErrSlugExists) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, toResponse(p))
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdatePageDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	p, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		if errors.Is(err, ErrSlugExists) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	if p == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, toResponse(p))
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}

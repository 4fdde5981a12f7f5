package category

import (
	"errors"

	"github.com/emeraldgate/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

// CreateCategoryDTO is the request body for creating a category.
type CreateCategoryDTO struct {
	Name string `json:"name" binding:"required"`
	Type string `json:"type" binding:"required,oneof=listing blog"`
}

// UpdateCategoryDTO is the request body for updating a category.
type UpdateCategoryDTO struct {
	Name *string `json:"name"`
	Type *string `json:"type" binding:"omitempty,oneof=listing blog"`
}

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, adminMW gin.HandlerFunc) {
	cats := rg.Group("/categories")
	cats.GET("", h.list)

	admin := cats.Group("", adminMW)
	admin.POST("", h.create)
	admin.PUT("/:id", h.update)
	admin.PATCH("/:id", h.update)
	admin.DELETE("/:id", h.delete)
}

// list GET /categories?type=blog|listing
func (h *Handler) list(c *gin.Context) {
	cats, err := h.svc.List(c.Query("type"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, cats)
}

// create POST /categories  [admin]
func (h *Handler) create(c *gin.Context) {
	var dto CreateCategoryDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	cat, err := h.svc.Create(&dto)
	if err != nil {
		if errors.Is(err, ErrNameExists) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, cat)
}

// update PUT /categories/:id  [admin]
func (h *Handler) update(c *gin.Context) {
	var dto UpdateCategoryDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	cat, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		if errors.Is(err, ErrNameExists) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	if cat == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, cat)
}

// delete DELETE /categories/:id  [admin]
func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		if errors.Is(err, ErrInUse) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}

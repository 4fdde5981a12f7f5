package feedback

import (
	"errors"

	"github.com/emeraldgate/core/internal/models"
	"github.com/emeraldgate/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateTestimonialDTO struct {
	Name   string `json:"name" binding:"required"`
	Role   string `json:"role"`
	Quote  string `json:"quote" binding:"required"`
	Rating *int   `json:"rating" binding:"omitempty,min=1,max=5"`
}

type UpdateTestimonialDTO struct {
	Name   *string `json:"name"`
	Role   *string `json:"role"`
	Quote  *string `json:"quote"`
	Rating *int    `json:"rating" binding:"omitempty,min=1,max=5"`
}

func (s *Service) ListTestimonials() ([]models.TestimonialModel, error) {
	var items []models.TestimonialModel
	err := s.db.Order("created_at DESC").Find(&items).Error
	return items, err
}

func (s *Service) GetTestimonial(id string) (*models.TestimonialModel, error) {
	var tm models.TestimonialModel
	if err := s.db.First(&tm, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tm, nil
}

func (s *Service) CreateTestimonial(dto *CreateTestimonialDTO) (*models.TestimonialModel, error) {
	tm := models.TestimonialModel{Name: dto.Name, Role: dto.Role, Quote: dto.Quote, Rating: 5}
	if dto.Rating != nil {
		tm.Rating = *dto.Rating
	}
	return &tm, s.db.Create(&tm).Error
}

func (s *Service) UpdateTestimonial(id string, dto *UpdateTestimonialDTO) (*models.TestimonialModel, error) {
	tm, err := s.GetTestimonial(id)
	if err != nil || tm == nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if dto.Name != nil {
		updates["name"] = *dto.Name
	}
	if dto.Role != nil {
		updates["role"] = *dto.Role
	}
	if dto.Quote != nil {
		updates["quote"] = *dto.Quote
	}
	if dto.Rating != nil {
		updates["rating"] = *dto.Rating
	}

	if err := s.db.Model(tm).Updates(updates).Error; err != nil {
		return nil, err
	}
	return tm, nil
}

func (s *Service) DeleteTestimonial(id string) error {
	return s.db.Delete(&models.TestimonialModel{}, "id = ?", id).Error
}

func (h *Handler) registerTestimonialRoutes(rg *gin.RouterGroup, adminMW gin.HandlerFunc) {
	g := rg.Group("/testimonials")
	g.GET("", h.listTestimonials)

	a := g.Group("", adminMW)
	a.POST("", h.createTestimonial)
	a.PUT("/:id", h.updateTestimonial)
	a.PATCH("/:id", h.updateTestimonial)
	a.DELETE("/:id", h.deleteTestimonial)
}

// listTestimonials GET /testimonials
func (h *Handler) listTestimonials(c *gin.Context) {
	items, err := h.svc.ListTestimonials()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, items)
}

// createTestimonial POST /testimonials  [admin]
func (h *Handler) createTestimonial(c *gin.Context) {
	var dto CreateTestimonialDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	tm, err := h.svc.CreateTestimonial(&dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, tm)
}

// updateTestimonial PUT /testimonials/:id  [admin]
func (h *Handler) updateTestimonial(c *gin.Context) {
	var dto UpdateTestimonialDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	tm, err := h.svc.UpdateTestimonial(c.Param("id"), &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if tm == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, tm)
}

// deleteTestimonial DELETE /testimonials/:id  [admin]
func (h *Handler) deleteTestimonial(c *gin.Context) {
	if err := h.svc.DeleteTestimonial(c.Param("id")); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}

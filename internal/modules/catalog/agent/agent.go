package agent

import (
	"errors"

	"github.com/emeraldgate/core/internal/models"
	"github.com/emeraldgate/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ErrEmailExists is returned when an agent's email is already on the roster.
var ErrEmailExists = errors.New("agent email already exists")

type CreateAgentDTO struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Title    string `json:"title"`
	PhotoURL string `json:"photo_url"`
	Bio      string `json:"bio"`
}

type UpdateAgentDTO struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Phone    *string `json:"phone"`
	Title    *string `json:"title"`
	PhotoURL *string `json:"photo_url"`
	Bio      *string `json:"bio"`
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// List returns the roster, optionally narrowed by a name/email search.
func (s *Service) List(search string) ([]models.AgentModel, error) {
	tx := s.db.Model(&models.AgentModel{}).Order("name ASC")
	if search != "" {
		pat := "%" + search + "%"
		tx = tx.Where("name LIKE ? OR email LIKE ?", pat, pat)
	}
	var agents []models.AgentModel
	err := tx.Find(&agents).Error
	return agents, err
}

func (s *Service) GetByID(id string) (*models.AgentModel, error) {
	var a models.AgentModel
	if err := s.db.First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (s *Service) Create(dto *CreateAgentDTO) (*models.AgentModel, error) {
	var count int64
	s.db.Model(&models.AgentModel{}).Where("email = ?", dto.Email).Count(&count)
	if count > 0 {
		return nil, ErrEmailExists
	}

	a := models.AgentModel{
		Name: dto.Name, Email: dto.Email, Phone: dto.Phone,
		Title: dto.Title, PhotoURL: dto.PhotoURL, Bio: dto.Bio,
	}
	return &a, s.db.Create(&a).Error
}

func (s *Service) Update(id string, dto *UpdateAgentDTO) (*models.AgentModel, error) {
	a, err := s.GetByID(id)
	if err != nil || a == nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if dto.Email != nil && *dto.Email != a.Email {
		var count int64
		s.db.Model(&models.AgentModel{}).
			Where("email = ? AND id <> ?", *dto.Email, a.ID).Count(&count)
		if count > 0 {
			return nil, ErrEmailExists
		}
		updates["email"] = *dto.Email
	}
	if dto.Name != nil {
		updates["name"] = *dto.Name
	}
	if dto.Phone != nil {
		updates["phone"] = *dto.Phone
	}
	if dto.Title != nil {
		updates["title"] = *dto.Title
	}
	if dto.PhotoURL != nil {
		updates["photo_url"] = *dto.PhotoURL
	}
	if dto.Bio != nil {
		updates["bio"] = *dto.Bio
	}

	if err := s.db.Model(a).Updates(updates).Error; err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) Delete(id string) error {
	return s.db.Delete(&models.AgentModel{}, "id = ?", id).Error
}

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, adminMW gin.HandlerFunc) {
	g := rg.Group("/agents")
	g.GET("", h.list)
	g.GET("/:id", h.getByID)

	a := g.Group("", adminMW)
	a.POST("", h.create)
	a.PUT("/:id", h.update)
	a.PATCH("/:id", h.update)
	a.DELETE("/:id", h.delete)
}

// list GET /agents?q=
func (h *Handler) list(c *gin.Context) {
	agents, err := h.svc.List(c.Query("q"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, agents)
}

func (h *Handler) getByID(c *gin.Context) {
	a, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if a == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, a)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateAgentDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	a, err := h.svc.Create(&dto)
	if err != nil {
		if errors.Is(err, ErrEmailExists) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, a)
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateAgentDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	a, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		if errors.Is(err, ErrEmailExists) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	if a == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, a)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}

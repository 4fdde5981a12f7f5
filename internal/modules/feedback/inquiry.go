// Package feedback covers the public-facing contact surfaces: listing
// inquiries from the contact form and the testimonials shown on the site.
package feedback

import (
	"github.com/emeraldgate/core/internal/models"
	"github.com/emeraldgate/core/internal/pkg/pagination"
	"github.com/emeraldgate/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateInquiryDTO is the public contact-form payload. ListingID is set when
// the inquiry was sent from a listing's detail page.
type CreateInquiryDTO struct {
	Name      string  `json:"name" binding:"required"`
	Email     string  `json:"email" binding:"required,email"`
	Phone     string  `json:"phone"`
	Message   string  `json:"message" binding:"required"`
	ListingID *string `json:"listing_id"`
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) CreateInquiry(dto *CreateInquiryDTO) (*models.InquiryModel, error) {
	if dto.ListingID != nil {
		var count int64
		if err := s.db.Model(&models.ListingModel{}).
			Where("id = ?", *dto.ListingID).Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			// Listing may have been pulled between page load and submit.
			dto.ListingID = nil
		}
	}

	inq := models.InquiryModel{
		Name: dto.Name, Email: dto.Email, Phone: dto.Phone,
		Message: dto.Message, ListingID: dto.ListingID,
	}
	return &inq, s.db.Create(&inq).Error
}

func (s *Service) ListInquiries(q pagination.Query) ([]models.InquiryModel, response.Pagination, error) {
	tx := s.db.Model(&models.InquiryModel{}).
		Preload("Listing").
		Order("created_at DESC")

	var inquiries []models.InquiryModel
	pag, err := pagination.Paginate(tx, q, &inquiries)
	return inquiries, pag, err
}

func (s *Service) DeleteInquiry(id string) error {
	return s.db.Delete(&models.InquiryModel{}, "id = ?", id).Error
}

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, adminMW gin.HandlerFunc) {
	inq := rg.Group("/inquiries")
	inq.POST("", h.createInquiry)

	inqAdmin := inq.Group("", adminMW)
	inqAdmin.GET("", h.listInquiries)
	inqAdmin.DELETE("/:id", h.deleteInquiry)

	h.registerTestimonialRoutes(rg, adminMW)
}

// createInquiry POST /inquiries
func (h *Handler) createInquiry(c *gin.Context) {
	var dto CreateInquiryDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	inq, err := h.svc.CreateInquiry(&dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, inq)
}

// listInquiries GET /inquiries  [admin]
func (h *Handler) listInquiries(c *gin.Context) {
	q := pagination.FromContext(c)
	inquiries, pag, err := h.svc.ListInquiries(q)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, inquiries, pag)
}

// deleteInquiry DELETE /inquiries/:id  [admin]
func (h *Handler) deleteInquiry(c *gin.Context) {
	if err := h.svc.DeleteInquiry(c.Param("id")); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}

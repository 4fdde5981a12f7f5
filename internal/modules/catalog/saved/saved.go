package saved

import (
	"errors"

	"github.com/emeraldgate/core/internal/middleware"
	"github.com/emeraldgate/core/internal/models"
	"github.com/emeraldgate/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ErrListingGone is returned when bookmarking a listing that does not exist
// or is no longer approved.
var ErrListingGone = errors.New("listing not available")

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// List returns a user's bookmarks, newest first, with listings preloaded.
func (s *Service) List(userID string) ([]models.SavedListingModel, error) {
	var saved []models.SavedListingModel
	err := s.db.Preload("Listing").Preload("Listing.Category").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&saved).Error
	return saved, err
}

// Save bookmarks a listing for a user. Saving twice is a no-op.
func (s *Service) Save(userID, listingID string) (*models.SavedListingModel, error) {
	var listing models.ListingModel
	err := s.db.Select("id, status").First(&listing, "id = ?", listingID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && listing.Status != models.ListingApproved) {
		return nil, ErrListingGone
	}
	if err != nil {
		return nil, err
	}

	var existing models.SavedListingModel
	err = s.db.Where("user_id = ? AND listing_id = ?", userID, listingID).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	sv := models.SavedListingModel{UserID: userID, ListingID: listingID}
	if err := s.db.Create(&sv).Error; err != nil {
		return nil, err
	}
	return &sv, nil
}

// Unsave removes a bookmark. Removing a bookmark that is not there is fine.
func (s *Service) Unsave(userID, listingID string) error {
	return s.db.Unscoped().
		Where("user_id = ? AND listing_id = ?", userID, listingID).
		Delete(&models.SavedListingModel{}).Error
}

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/saved-listings", authMW)
	g.GET("", h.list)
	g.PUT("/:listingId", h.save)
	g.DELETE("/:listingId", h.unsave)
}

// list GET /saved-listings  [auth]
func (h *Handler) list(c *gin.Context) {
	saved, err := h.svc.List(middleware.CurrentUserID(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, saved)
}

// save PUT /saved-listings/:listingId  [auth]
func (h *Handler) save(c *gin.Context) {
	sv, err := h.svc.Save(middleware.CurrentUserID(c), c.Param("listingId"))
	if err != nil {
		if errors.Is(err, ErrListingGone) {
			response.NotFoundMsg(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, sv)
}

// unsave DELETE /saved-listings/:listingId  [auth]
func (h *Handler) unsave(c *gin.Context) {
	if err := h.svc.Unsave(middleware.CurrentUserID(c), c.Param("listingId")); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}

package listing

import (
	"errors"

	"github.com/emeraldgate/core/internal/models"
	"github.com/emeraldgate/core/internal/pkg/pagination"
	"github.com/emeraldgate/core/internal/pkg/response"
	"gorm.io/gorm"
)

// Service handles listing catalog business logic.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func applyFilters(tx *gorm.DB, lq ListQuery) *gorm.DB {
	if lq.Search != nil {
		pat := "%" + *lq.Search + "%"
		tx = tx.Where("title LIKE ? OR address LIKE ?", pat, pat)
	}
	if lq.City != nil {
		tx = tx.Where("city = ?", *lq.City)
	}
	if lq.Type != nil {
		tx = tx.Where("type = ?", *lq.Type)
	}
	if lq.MinPrice != nil {
		tx = tx.Where("price >= ?", *lq.MinPrice)
	}
	if lq.MaxPrice != nil {
		tx = tx.Where("price <= ?", *lq.MaxPrice)
	}

	switch lq.Sort {
	case "price_asc":
		tx = tx.Order("price ASC")
	case "price_desc":
		tx = tx.Order("price DESC")
	default:
		tx = tx.Order("created_at DESC")
	}
	return tx
}

// List returns the public catalog: approved listings only.
func (s *Service) List(q pagination.Query, lq ListQuery) ([]models.ListingModel, response.Pagination, error) {
	tx := s.db.Model(&models.ListingModel{}).
		Preload("Category").
		Where("status = ?", models.ListingApproved)
	tx = applyFilters(tx, lq)

	var listings []models.ListingModel
	pag, err := pagination.Paginate(tx, q, &listings)
	return listings, pag, err
}

// ListAll returns listings of every status for the back office.
func (s *Service) ListAll(q pagination.Query, aq AdminListQuery) ([]models.ListingModel, response.Pagination, error) {
	tx := s.db.Model(&models.ListingModel{}).
		Preload("Category").
		Preload("User")
	if aq.Status != nil {
		tx = tx.Where("status = ?", *aq.Status)
	}
	tx = applyFilters(tx, aq.ListQuery)

	var listings []models.ListingModel
	pag, err := pagination.Paginate(tx, q, &listings)
	return listings, pag, err
}

// ListMine returns all of one agent's own listings, any status.
func (s *Service) ListMine(userID string, q pagination.Query) ([]models.ListingModel, response.Pagination, error) {
	tx := s.db.Model(&models.ListingModel{}).
		Preload("Category").
		Where("user_id = ?", userID).
		Order("created_at DESC")

	var listings []models.ListingModel
	pag, err := pagination.Paginate(tx, q, &listings)
	return listings, pag, err
}

// GetByID fetches a listing. Returns (nil, nil) when absent.
func (s *Service) GetByID(id string) (*models.ListingModel, error) {
	var l models.ListingModel
	if err := s.db.Preload("Category").First(&l, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

// Create submits a new listing on behalf of userID. Status always starts
// pending; only moderation can change it.
func (s *Service) Create(userID string, dto *CreateListingDTO) (*models.ListingModel, error) {
	l := models.ListingModel{
		Title:       dto.Title,
		Price:       dto.Price,
		Address:     dto.Address,
		City:        dto.City,
		Beds:        dto.Beds,
		Baths:       dto.Baths,
		Sqft:        dto.Sqft,
		Type:        dto.Type,
		Description: dto.Description,
		Images:      dto.Images,
		Status:      models.ListingPending,
		UserID:      userID,
		CategoryID:  dto.CategoryID,
	}
	if l.Images == nil {
		l.Images = models.StringArray{}
	}
	if err := s.db.Create(&l).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

// Update edits listing fields. Moderation status is handled separately.
func (s *Service) Update(id string, dto *UpdateListingDTO) (*models.ListingModel, error) {
	l, err := s.GetByID(id)
	if err != nil || l == nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if dto.Title != nil {
		updates["title"] = *dto.Title
	}
	if dto.Price != nil {
		updates["price"] = *dto.Price
	}
	if dto.Address != nil {
		updates["address"] = *dto.Address
	}
	if dto.City != nil {
		updates["city"] = *dto.City
	}
	if dto.Beds != nil {
		updates["beds"] = *dto.Beds
	}
	if dto.Baths != nil {
		updates["baths"] = *dto.Baths
	}
	if dto.Sqft != nil {
		updates["sqft"] = *dto.Sqft
	}
	if dto.Type != nil {
		updates["type"] = *dto.Type
	}
	if dto.Description != nil {
		updates["description"] = *dto.Description
	}
	if dto.Images != nil {
		updates["images"] = *dto.Images
	}
	if dto.CategoryID != nil {
		updates["category_id"] = *dto.CategoryID
	}

	if err := s.db.Model(l).Updates(updates).Error; err != nil {
		return nil, err
	}
	return l, nil
}

// SetStatus moves a listing to pending, approved or rejected.
func (s *Service) SetStatus(id, status string) (*models.ListingModel, error) {
	l, err := s.GetByID(id)
	if err != nil || l == nil {
		return nil, err
	}
	if err := s.db.Model(l).Update("status", status).Error; err != nil {
		return nil, err
	}
	return l, nil
}

// Delete soft-deletes a listing and drops any bookmarks pointing at it.
func (s *Service) Delete(id string) error {
	if err := s.db.Delete(&models.SavedListingModel{}, "listing_id = ?", id).Error; err != nil {
		return err
	}
	return s.db.Delete(&models.ListingModel{}, "id = ?", id).Error
}

package category

import (
	"errors"

	"github.com/emeraldgate/core/internal/models"
	"gorm.io/gorm"
)

// ErrNameExists is returned when a category name is already taken within
// its type.
var ErrNameExists = errors.New("category already exists")

// ErrInUse is returned when trying to delete a category that posts or
// listings still reference.
var ErrInUse = errors.New("category is still in use")

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// List returns categories, optionally filtered by type.
func (s *Service) List(categoryType string) ([]models.CategoryModel, error) {
	tx := s.db.Model(&models.CategoryModel{}).Order("name ASC")
	if categoryType != "" {
		tx = tx.Where("type = ?", categoryType)
	}
	var cats []models.CategoryModel
	if err := tx.Find(&cats).Error; err != nil {
		return nil, err
	}
	return cats, nil
}

// GetByID fetches a category. Returns (nil, nil) when absent.
func (s *Service) GetByID(id string) (*models.CategoryModel, error) {
	var cat models.CategoryModel
	if err := s.db.First(&cat, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cat, nil
}

func (s *Service) Create(dto *CreateCategoryDTO) (*models.CategoryModel, error) {
	var count int64
	s.db.Model(&models.CategoryModel{}).
		Where("name = ? AND type = ?", dto.Name, dto.Type).Count(&count)
	if count > 0 {
		return nil, ErrNameExists
	}

	cat := models.CategoryModel{Name: dto.Name, Type: dto.Type}
	if err := s.db.Create(&cat).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (s *Service) Update(id string, dto *UpdateCategoryDTO) (*models.CategoryModel, error) {
	cat, err := s.GetByID(id)
	if err != nil || cat == nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if dto.Name != nil {
		updates["name"] = *dto.Name
	}
	if dto.Type != nil {
		updates["type"] = *dto.Type
	}
	if len(updates) > 0 {
		name, typ := cat.Name, cat.Type
		if dto.Name != nil {
			name = *dto.Name
		}
		if dto.Type != nil {
			typ = *dto.Type
		}
		var count int64
		s.db.Model(&models.CategoryModel{}).
			Where("name = ? AND type = ? AND id <> ?", name, typ, cat.ID).Count(&count)
		if count > 0 {
			return nil, ErrNameExists
		}
		if err := s.db.Model(cat).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return cat, nil
}

// Delete removes a category. Posts and listings must be detached first.
func (s *Service) Delete(id string) error {
	var count int64
	if err := s.db.Model(&models.PostModel{}).
		Where("category_id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		if err := s.db.Model(&models.ListingModel{}).
			Where("category_id = ?", id).Count(&count).Error; err != nil {
			return err
		}
	}
	if count > 0 {
		return ErrInUse
	}
	return s.db.Delete(&models.CategoryModel{}, "id = ?", id).Error
}

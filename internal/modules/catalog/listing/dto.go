package listing

import (
	"time"

	"github.com/emeraldgate/core/internal/models"
)

// CreateListingDTO is the request body for submitting a listing. New
// listings always start pending regardless of who submits them.
type CreateListingDTO struct {
	Title       string             `json:"title" binding:"required"`
	Price       float64            `json:"price" binding:"required,gt=0"`
	Address     string             `json:"address" binding:"required"`
	City        string             `json:"city" binding:"required"`
	Beds        int                `json:"beds"`
	Baths       float64            `json:"baths"`
	Sqft        int                `json:"sqft"`
	Type        string             `json:"type" binding:"required"`
	Description string             `json:"description"`
	Images      models.StringArray `json:"images"`
	CategoryID  *string            `json:"category_id"`
}

// UpdateListingDTO is the request body for editing a listing (all optional).
type UpdateListingDTO struct {
	Title       *string             `json:"title"`
	Price       *float64            `json:"price"`
	Address     *string             `json:"address"`
	City        *string             `json:"city"`
	Beds        *int                `json:"beds"`
	Baths       *float64            `json:"baths"`
	Sqft        *int                `json:"sqft"`
	Type        *string             `json:"type"`
	Description *string             `json:"description"`
	Images      *models.StringArray `json:"images"`
	CategoryID  *string             `json:"category_id"`
}

// StatusDTO moves a listing through the moderation pipeline.
type StatusDTO struct {
	Status string `json:"status" binding:"required,oneof=pending approved rejected"`
}

// ListQuery holds the public catalogue filters.
type ListQuery struct {
	Search   *string  `form:"q"`
	City     *string  `form:"city"`
	Type     *string  `form:"type"`
	MinPrice *float64 `form:"min_price"`
	MaxPrice *float64 `form:"max_price"`
	Sort     string   `form:"sort"`
}

// AdminListQuery adds moderation filters on top of the public ones.
type AdminListQuery struct {
	ListQuery
	Status *string `form:"status" binding:"omitempty,oneof=pending approved rejected"`
}

type listingResponse struct {
	ID          string                `json:"id"`
	Title       string                `json:"title"`
	Price       float64               `json:"price"`
	Address     string                `json:"address"`
	City        string                `json:"city"`
	Beds        int                   `json:"beds"`
	Baths       float64               `json:"baths"`
	Sqft        int                   `json:"sqft"`
	Type        string                `json:"type"`
	Description string                `json:"description"`
	Images      models.StringArray    `json:"images"`
	Status      string                `json:"status"`
	UserID      string                `json:"user_id"`
	CategoryID  *string               `json:"category_id"`
	Category    *models.CategoryModel `json:"category"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

func toResponse(l *models.ListingModel) listingResponse {
	images := l.Images
	if images == nil {
		images = models.StringArray{}
	}
	return listingResponse{
		ID:          l.ID,
		Title:       l.Title,
		Price:       l.Price,
		Address:     l.Address,
		City:        l.City,
		Beds:        l.Beds,
		Baths:       l.Baths,
		Sqft:        l.Sqft,
		Type:        l.Type,
		Description: l.Description,
		Images:      images,
		Status:      l.Status,
		UserID:      l.UserID,
		CategoryID:  l.CategoryID,
		Category:    l.Category,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

package models

// Listing moderation states. Agent submissions start pending and only
// approved listings appear on the public site.
const (
	ListingPending  = "pending"
	ListingApproved = "approved"
	ListingRejected = "rejected"
)

// ListingModel is one property listing in the catalog.
type ListingModel struct {
	Base
	Title       string         `json:"title"       gorm:"not null"`
	Price       float64        `json:"price"       gorm:"not null;index"`
	Address     string         `json:"address"`
	City        string         `json:"city"        gorm:"index"`
	Beds        int            `json:"beds"`
	Baths       float64        `json:"baths"`
	Sqft        int            `json:"sqft"`
	Type        string         `json:"type"        gorm:"index"` // apartment, house, land, ...
	Description string         `json:"description" gorm:"type:text"`
	Images      StringArray    `json:"images"      gorm:"type:longtext"`
	Status      string         `json:"status"      gorm:"default:pending;index"`
	UserID      string         `json:"user_id"     gorm:"index;not null"`
	User        *UserModel     `json:"user,omitempty"     gorm:"foreignKey:UserID"`
	CategoryID  *string        `json:"category_id" gorm:"index"`
	Category    *CategoryModel `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}

func (ListingModel) TableName() string { return "listings" }

// SavedListingModel bookmarks a listing for a user.
type SavedListingModel struct {
	Base
	UserID    string        `json:"user_id"    gorm:"not null;uniqueIndex:idx_saved_user_listing"`
	ListingID string        `json:"listing_id" gorm:"not null;uniqueIndex:idx_saved_user_listing"`
	Listing   *ListingModel `json:"listing,omitempty" gorm:"foreignKey:ListingID"`
}

func (SavedListingModel) TableName() string { return "saved_listings" }

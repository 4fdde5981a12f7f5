package models

// InquiryModel is a contact-form submission, optionally tied to a listing.
type InquiryModel struct {
	Base
	Name      string        `json:"name"    gorm:"not null"`
	Email     string        `json:"email"   gorm:"not null"`
	Phone     string        `json:"phone"`
	Message   string        `json:"message" gorm:"type:text;not null"`
	ListingID *string       `json:"listing_id" gorm:"index"`
	Listing   *ListingModel `json:"listing,omitempty" gorm:"foreignKey:ListingID"`
}

func (InquiryModel) TableName() string { return "inquiries" }

// TestimonialModel is a curated client quote shown on the marketing site.
type TestimonialModel struct {
	Base
	Name   string `json:"name"   gorm:"not null"`
	Role   string `json:"role"`
	Quote  string `json:"quote"  gorm:"type:text;not null"`
	Rating int    `json:"rating" gorm:"default:5"`
}

func (TestimonialModel) TableName() string { return "testimonials" }

package models

// Category type discriminators. Listing categories classify properties,
// blog categories classify posts.
const (
	CategoryListing = "listing"
	CategoryBlog    = "blog"
)

// CategoryModel classifies either listings or blog posts, keyed by Type.
type CategoryModel struct {
	Base
	Name string `json:"name" gorm:"not null;uniqueIndex:idx_categories_name_type"`
	Type string `json:"type" gorm:"not null;index;uniqueIndex:idx_categories_name_type"`
}

func (CategoryModel) TableName() string { return "categories" }

package models

// PostModel is a blog post: metadata plus an ordered block document body.
type PostModel struct {
	Base
	Title       string         `json:"title"        gorm:"not null"`
	Slug        string         `json:"slug"         gorm:"uniqueIndex;not null"`
	Excerpt     string         `json:"excerpt"`
	BannerImage string         `json:"banner_image"`
	TemplateID  int            `json:"template_id"  gorm:"default:1"`
	CategoryID  *string        `json:"category_id"  gorm:"index"`
	Category    *CategoryModel `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	IsPublished bool           `json:"is_published" gorm:"default:false;index"`
	Content     Blocks         `json:"content"      gorm:"type:longtext;serializer:json"`
}

func (PostModel) TableName() string { return "blog_posts" }

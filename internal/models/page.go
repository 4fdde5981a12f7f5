package models

// PageModel is an admin-editable static page (about, affiliate, ...).
// Text is markdown, rendered on read.
type PageModel struct {
	Base
	Slug     string `json:"slug"     gorm:"uniqueIndex;not null"`
	Title    string `json:"title"    gorm:"not null"`
	Text     string `json:"text"     gorm:"type:longtext"`
	Order    int    `json:"order"    gorm:"column:order_num;default:0"`
	Subtitle string `json:"subtitle"`
}

func (PageModel) TableName() string { return "pages" }

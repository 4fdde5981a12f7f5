package post

import (
	"encoding/json"
	"time"

	"github.com/emeraldgate/core/internal/models"
)

// CreatePostDTO is the request body for creating a post. Slug is optional;
// when blank it is derived from the title.
type CreatePostDTO struct {
	Title       string        `json:"title" binding:"required"`
	Slug        string        `json:"slug"`
	Excerpt     string        `json:"excerpt"`
	BannerImage string        `json:"banner_image"`
	TemplateID  *int          `json:"template_id"`
	CategoryID  *string       `json:"category_id"`
	IsPublished *bool         `json:"is_published"`
	Content     models.Blocks `json:"content"`
}

// UpdatePostDTO is the request body for updating a post (all fields optional).
type UpdatePostDTO struct {
	Title       *string        `json:"title"`
	Slug        *string        `json:"slug"`
	Excerpt     *string        `json:"excerpt"`
	BannerImage *string        `json:"banner_image"`
	TemplateID  *int           `json:"template_id"`
	CategoryID  *string        `json:"category_id"`
	IsPublished *bool          `json:"is_published"`
	Content     *models.Blocks `json:"content"`
}

// PublishDTO toggles a post's published flag.
type PublishDTO struct {
	IsPublished *bool `json:"is_published" binding:"required"`
}

// AppendBlockDTO adds a new empty block to the end of a post.
type AppendBlockDTO struct {
	Type models.BlockKind `json:"type" binding:"required,oneof=heading paragraph image video list"`
}

// UpdateBlockDTO patches one block. Content is decoded against the block's
// kind; Level applies to heading blocks only.
type UpdateBlockDTO struct {
	Content json.RawMessage `json:"content"`
	Level   *int            `json:"level"`
}

// MoveBlockDTO swaps a block with its neighbor.
type MoveBlockDTO struct {
	Index     *int   `json:"index" binding:"required"`
	Direction string `json:"direction" binding:"required,oneof=up down"`
}

// ListQuery holds query params for listing posts.
type ListQuery struct {
	Category *string `form:"category"`
	Search   *string `form:"q"`
}

// postResponse is the API response shape for a post.
type postResponse struct {
	ID          string                `json:"id"`
	Slug        string                `json:"slug"`
	Title       string                `json:"title"`
	Excerpt     string                `json:"excerpt"`
	BannerImage string                `json:"banner_image"`
	TemplateID  int                   `json:"template_id"`
	CategoryID  *string               `json:"category_id"`
	Category    *models.CategoryModel `json:"category"`
	IsPublished bool                  `json:"is_published"`
	Content     models.Blocks         `json:"content"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

func toResponse(p *models.PostModel) postResponse {
	content := p.Content
	if content == nil {
		content = models.Blocks{}
	}
	return postResponse{
		ID:          p.ID,
		Slug:        p.Slug,
		Title:       p.Title,
		Excerpt:     p.Excerpt,
		BannerImage: p.BannerImage,
		TemplateID:  p.TemplateID,
		CategoryID:  p.CategoryID,
		Category:    p.Category,
		IsPublished: p.IsPublished,
		Content:     content,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

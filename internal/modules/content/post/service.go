package post

import (
	"errors"

	"github.com/emeraldgate/core/internal/models"
	"github.com/emeraldgate/core/internal/modules/content/blocks"
	"github.com/emeraldgate/core/internal/pkg/pagination"
	"github.com/emeraldgate/core/internal/pkg/response"
	"github.com/emeraldgate/core/internal/pkg/slug"
	"gorm.io/gorm"
)

// ErrSlugExists is returned when a post's slug collides with another post.
var ErrSlugExists = errors.New("slug already exists")

// Service handles blog post business logic.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// List returns a paginated list of posts. Drafts are included only when
// includeDrafts is set.
func (s *Service) List(q pagination.Query, lq ListQuery, includeDrafts bool) ([]models.PostModel, response.Pagination, error) {
	tx := s.db.Model(&models.PostModel{}).
		Preload("Category").
		Order("created_at DESC")

	if !includeDrafts {
		tx = tx.Where("is_published = ?", true)
	}
	if lq.Category != nil {
		tx = tx.Where("category_id = ?", *lq.Category)
	}
	if lq.Search != nil {
		pat := "%" + *lq.Search + "%"
		tx = tx.Where("title LIKE ? OR excerpt LIKE ?", pat, pat)
	}

	var posts []models.PostModel
	pag, err := pagination.Paginate(tx, q, &posts)
	return posts, pag, err
}

// GetByID fetches a single post by ID. Returns (nil, nil) when absent.
func (s *Service) GetByID(id string) (*models.PostModel, error) {
	var post models.PostModel
	if err := s.db.Preload("Category").First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// GetBySlug fetches a single post by slug.
func (s *Service) GetBySlug(sl string, includeDrafts bool) (*models.PostModel, error) {
	var post models.PostModel
	tx := s.db.Preload("Category").Where("slug = ?", sl)
	if !includeDrafts {
		tx = tx.Where("is_published = ?", true)
	}
	if err := tx.First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// GetByIdentifier fetches a post by ID first, then falls back to slug.
func (s *Service) GetByIdentifier(identifier string, includeDrafts bool) (*models.PostModel, error) {
	if post, err := s.GetByID(identifier); err != nil {
		return nil, err
	} else if post != nil {
		if !includeDrafts && !post.IsPublished {
			return nil, nil
		}
		return post, nil
	}
	return s.GetBySlug(identifier, includeDrafts)
}

// Create inserts a new post. A blank slug is derived from the title; the
// stored template number is kept as provided and only resolved when the
// post is rendered.
func (s *Service) Create(dto *CreatePostDTO) (*models.PostModel, error) {
	sl := dto.Slug
	if sl == "" {
		sl = slug.Derive(dto.Title)
	}

	var count int64
	s.db.Model(&models.PostModel{}).Where("slug = ?", sl).Count(&count)
	if count > 0 {
		return nil, ErrSlugExists
	}

	post := models.PostModel{
		Title:       dto.Title,
		Slug:        sl,
		Excerpt:     dto.Excerpt,
		BannerImage: dto.BannerImage,
		TemplateID:  1,
		CategoryID:  dto.CategoryID,
		Content:     dto.Content,
	}
	if dto.TemplateID != nil {
		post.TemplateID = *dto.TemplateID
	}
	if dto.IsPublished != nil {
		post.IsPublished = *dto.IsPublished
	}
	if post.Content == nil {
		post.Content = models.Blocks{}
	}

	if err := s.db.Create(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// Update patches a post by ID.
func (s *Service) Update(id string, dto *UpdatePostDTO) (*models.PostModel, error) {
	post, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, nil
	}

	updates := map[string]interface{}{}
	if dto.Slug != nil && *dto.Slug != post.Slug {
		var count int64
		s.db.Model(&models.PostModel{}).
			Where("slug = ? AND id <> ?", *dto.Slug, post.ID).Count(&count)
		if count > 0 {
			return nil, ErrSlugExists
		}
		updates["slug"] = *dto.Slug
	}
	if dto.Title != nil {
		updates["title"] = *dto.Title
	}
	if dto.Excerpt != nil {
		updates["excerpt"] = *dto.Excerpt
	}
	if dto.BannerImage != nil {
		updates["banner_image"] = *dto.BannerImage
	}
	if dto.TemplateID != nil {
		updates["template_id"] = *dto.TemplateID
	}
	if dto.CategoryID != nil {
		updates["category_id"] = *dto.CategoryID
	}
	if dto.IsPublished != nil {
		updates["is_published"] = *dto.IsPublished
	}
	if dto.Content != nil {
		updates["content"] = *dto.Content
	}

	if err := s.db.Model(post).Updates(updates).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// editBlocks loads a post, runs fn over an editing session on its content
// and persists whatever the session ends up with.
func (s *Service) editBlocks(id string, fn func(*blocks.Editor)) (*models.PostModel, error) {
	post, err := s.GetByID(id)
	if err != nil || post == nil {
		return nil, err
	}

	ed := blocks.NewEditor(post.Content)
	fn(ed)
	post.Content = ed.Blocks()

	if err := s.db.Model(post).Update("content", post.Content).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// AppendBlock adds an empty block of the given kind to the end of a post.
func (s *Service) AppendBlock(id string, kind models.BlockKind) (*models.PostModel, error) {
	return s.editBlocks(id, func(ed *blocks.Editor) { ed.Append(kind) })
}

// UpdateBlock patches a single block's content and, for headings, its level.
// Unknown block ids and mismatched content shapes are silently ignored.
func (s *Service) UpdateBlock(id, blockID string, dto *UpdateBlockDTO) (*models.PostModel, error) {
	return s.editBlocks(id, func(ed *blocks.Editor) {
		if dto.Content != nil {
			if b, ok := ed.Get(blockID); ok {
				ed.UpdateContent(blockID, models.DecodeContent(b.Kind, dto.Content))
			}
		}
		if dto.Level != nil {
			ed.SetHeadingLevel(blockID, *dto.Level)
		}
	})
}

// RemoveBlock deletes a single block from a post.
func (s *Service) RemoveBlock(id, blockID string) (*models.PostModel, error) {
	return s.editBlocks(id, func(ed *blocks.Editor) { ed.Remove(blockID) })
}

// MoveBlock swaps the block at index with its neighbor in the given direction.
func (s *Service) MoveBlock(id string, index int, dir blocks.Direction) (*models.PostModel, error) {
	return s.editBlocks(id, func(ed *blocks.Editor) { ed.Move(index, dir) })
}

// SetPublished flips the published flag without touching anything else.
func (s *Service) SetPublished(id string, published bool) (*models.PostModel, error) {
	post, err := s.GetByID(id)
	if err != nil || post == nil {
		return nil, err
	}
	if err := s.db.Model(post).Update("is_published", published).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// Delete soft-deletes a post by ID.
func (s *Service) Delete(id string) error {
	return s.db.Delete(&models.PostModel{}, "id = ?", id).Error
}

package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/emeraldgate/core/internal/models"
)

func testService(t *testing.T) *Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.PageModel{}))
	return NewService(db)
}

func TestCreateAndLookupByIdentifier(t *testing.T) {
	svc := testService(t)

	p, err := svc.Create(&CreatePageDTO{Slug: "about", Title: "About Us", Text: "# Hello"})
	require.NoError(t, err)

	byID, err := svc.GetByIdentifier(p.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)

	bySlug, err := svc.GetByIdentifier("about")
	require.NoError(t, err)
	require.NotNil(t, bySlug)
	assert.Equal(t, p.ID, bySlug.ID)
}

func TestCreateDuplicateSlug(t *testing.T) {
	svc := testService(t)

	_, err := svc.Create(&CreatePageDTO{Slug: "about", Title: "About", Text: "x"})
	require.NoError(t, err)
	_, err = svc.Create(&CreatePageDTO{Slug: "about", Title: "Other", Text: "y"})
	assert.ErrorIs(t, err, ErrSlugExists)
}

func TestListOrdersByOrderField(t *testing.T) {
	svc := testService(t)

	two := 2
	one := 1
	_, err := svc.Create(&CreatePageDTO{Slug: "second", Title: "B", Text: "b", Order: &two})
	require.NoError(t, err)
	_, err = svc.Create(&CreatePageDTO{Slug: "first", Title: "A", Text: "a", Order: &one})
	require.NoError(t, err)

	pages, err := svc.List()
	require.NoError(t, err)
	require.Len(t, pages, 2)
	assert.Equal(t, "first", pages[0].Slug)
	assert.Equal(t, "second", pages[1].Slug)
}

func TestRenderHTML(t *testing.T) {
	html, err := RenderHTML("# Title\n\nSome **bold** text.")
	require.NoError(t, err)
	assert.Contains(t, html, "<h1")
	assert.Contains(t, html, "<strong>bold</strong>")
}

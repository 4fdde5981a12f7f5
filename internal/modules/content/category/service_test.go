package category

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
	require.NoError(t, db.AutoMigrate(
		&models.CategoryModel{}, &models.PostModel{}, &models.ListingModel{}, &models.UserModel{},
	))
	return NewService(db)
}

func TestListFiltersByType(t *testing.T) {
	svc := testService(t)

	_, err := svc.Create(&CreateCategoryDTO{Name: "Apartments", Type: models.CategoryListing})
	require.NoError(t, err)
	_, err = svc.Create(&CreateCategoryDTO{Name: "Guides", Type: models.CategoryBlog})
	require.NoError(t, err)

	listing, err := svc.List(models.CategoryListing)
	require.NoError(t, err)
	require.Len(t, listing, 1)
	assert.Equal(t, "Apartments", listing[0].Name)

	all, err := svc.List("")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCreateSameNameDifferentTypeIsAllowed(t *testing.T) {
	svc := testService(t)

	_, err := svc.Create(&CreateCategoryDTO{Name: "Featured", Type: models.CategoryListing})
	require.NoError(t, err)
	_, err = svc.Create(&CreateCategoryDTO{Name: "Featured", Type: models.CategoryBlog})
	require.NoError(t, err)

	_, err = svc.Create(&CreateCategoryDTO{Name: "Featured", Type: models.CategoryBlog})
	assert.ErrorIs(t, err, ErrNameExists)
}

func TestUpdateRejectsCollision(t *testing.T) {
	svc := testService(t)

	_, err := svc.Create(&CreateCategoryDTO{Name: "News", Type: models.CategoryBlog})
	require.NoError(t, err)
	other, err := svc.Create(&CreateCategoryDTO{Name: "Tips", Type: models.CategoryBlog})
	require.NoError(t, err)

	name := "News"
	_, err = svc.Update(other.ID, &UpdateCategoryDTO{Name: &name})
	assert.ErrorIs(t, err, ErrNameExists)
}

func TestDeleteRefusesWhenReferenced(t *testing.T) {
	svc := testService(t)

	cat, err := svc.Create(&CreateCategoryDTO{Name: "Market", Type: models.CategoryBlog})
	require.NoError(t, err)

	post := models.PostModel{Title: "P", Slug: "p", CategoryID: &cat.ID, Content: models.Blocks{}}
	require.NoError(t, svc.db.Create(&post).Error)

	assert.ErrorIs(t, svc.Delete(cat.ID), ErrInUse)

	require.NoError(t, svc.db.Model(&post).Update("category_id", nil).Error)
	assert.NoError(t, svc.Delete(cat.ID))
}

package saved

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
		&models.UserModel{}, &models.ListingModel{}, &models.SavedListingModel{},
	))
	return NewService(db)
}

func seed(t *testing.T, svc *Service, status string) (userID, listingID string) {
	t.Helper()
	u := models.UserModel{Email: "u@example.com", Password: "x", FullName: "U"}
	require.NoError(t, svc.db.Create(&u).Error)
	l := models.ListingModel{Title: "L", Price: 1, City: "Lagos", Type: "house", Status: status, UserID: u.ID}
	require.NoError(t, svc.db.Create(&l).Error)
	return u.ID, l.ID
}

func TestSaveAndList(t *testing.T) {
	svc := testService(t)
	uid, lid := seed(t, svc, models.ListingApproved)

	_, err := svc.Save(uid, lid)
	require.NoError(t, err)

	saved, err := svc.List(uid)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	require.NotNil(t, saved[0].Listing)
	assert.Equal(t, lid, saved[0].Listing.ID)
}

func TestSaveTwiceIsIdempotent(t *testing.T) {
	svc := testService(t)
	uid, lid := seed(t, svc, models.ListingApproved)

	first, err := svc.Save(uid, lid)
	require.NoError(t, err)
	second, err := svc.Save(uid, lid)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	saved, err := svc.List(uid)
	require.NoError(t, err)
	assert.Len(t, saved, 1)
}

func TestSaveRejectsUnapprovedListing(t *testing.T) {
	svc := testService(t)
	uid, lid := seed(t, svc, models.ListingPending)

	_, err := svc.Save(uid, lid)
	assert.ErrorIs(t, err, ErrListingGone)

	_, err = svc.Save(uid, "missing-id")
	assert.ErrorIs(t, err, ErrListingGone)
}

func TestUnsave(t *testing.T) {
	svc := testService(t)
	uid, lid := seed(t, svc, models.ListingApproved)

	_, err := svc.Save(uid, lid)
	require.NoError(t, err)
	require.NoError(t, svc.Unsave(uid, lid))

	saved, err := svc.List(uid)
	require.NoError(t, err)
	assert.Empty(t, saved)

	// Removing again is not an error.
	assert.NoError(t, svc.Unsave(uid, lid))
}

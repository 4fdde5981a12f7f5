package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/emeraldgate/core/internal/models"
	"github.com/emeraldgate/core/internal/pkg/pagination"
)

func testService(t *testing.T) *Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.UserModel{}, &models.CategoryModel{},
		&models.ListingModel{}, &models.SavedListingModel{},
	))
	return NewService(db)
}

func seedAgent(t *testing.T, svc *Service) string {
	t.Helper()
	u := models.UserModel{Email: "agent@example.com", Password: "x", FullName: "Agent"}
	require.NoError(t, svc.db.Create(&u).Error)
	return u.ID
}

func approve(t *testing.T, svc *Service, id string) {
	t.Helper()
	_, err := svc.SetStatus(id, models.ListingApproved)
	require.NoError(t, err)
}

var page = pagination.Query{Page: 1, Size: 20}

func TestCreateStartsPending(t *testing.T) {
	svc := testService(t)
	uid := seedAgent(t, svc)

	l, err := svc.Create(uid, &CreateListingDTO{
		Title: "3 Bed Flat", Price: 45_000_000, Address: "12 Admiralty Way",
		City: "Lagos", Type: "apartment",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ListingPending, l.Status)
	assert.Equal(t, uid, l.UserID)
}

func TestListShowsOnlyApproved(t *testing.T) {
	svc := testService(t)
	uid := seedAgent(t, svc)

	a, err := svc.Create(uid, &CreateListingDTO{Title: "Approved", Price: 1, Address: "a", City: "Abuja", Type: "house"})
	require.NoError(t, err)
	approve(t, svc, a.ID)
	_, err = svc.Create(uid, &CreateListingDTO{Title: "Pending", Price: 1, Address: "b", City: "Abuja", Type: "house"})
	require.NoError(t, err)

	listings, pag, err := svc.List(page, ListQuery{})
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "Approved", listings[0].Title)
	assert.Equal(t, int64(1), pag.Total)
}

func TestListFilters(t *testing.T) {
	svc := testService(t)
	uid := seedAgent(t, svc)

	seed := []CreateListingDTO{
		{Title: "Lekki Duplex", Price: 90_000_000, Address: "Lekki Phase 1", City: "Lagos", Type: "house"},
		{Title: "Wuse Flat", Price: 30_000_000, Address: "Wuse Zone 4", City: "Abuja", Type: "apartment"},
		{Title: "Ikoyi Penthouse", Price: 250_000_000, Address: "Banana Island", City: "Lagos", Type: "apartment"},
	}
	for i := range seed {
		l, err := svc.Create(uid, &seed[i])
		require.NoError(t, err)
		approve(t, svc, l.ID)
	}

	city := "Lagos"
	got, _, err := svc.List(page, ListQuery{City: &city})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	typ := "apartment"
	got, _, err = svc.List(page, ListQuery{City: &city, Type: &typ})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Ikoyi Penthouse", got[0].Title)

	minP, maxP := 20_000_000.0, 100_000_000.0
	got, _, err = svc.List(page, ListQuery{MinPrice: &minP, MaxPrice: &maxP})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	q := "lekki"
	got, _, err = svc.List(page, ListQuery{Search: &q})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Lekki Duplex", got[0].Title)
}

func TestListSortsByPrice(t *testing.T) {
	svc := testService(t)
	uid := seedAgent(t, svc)

	for _, price := range []float64{50, 10, 30} {
		l, err := svc.Create(uid, &CreateListingDTO{Title: "L", Price: price, Address: "a", City: "c", Type: "house"})
		require.NoError(t, err)
		approve(t, svc, l.ID)
	}

	got, _, err := svc.List(page, ListQuery{Sort: "price_asc"})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, float64(10), got[0].Price)
	assert.Equal(t, float64(50), got[2].Price)

	got, _, err = svc.List(page, ListQuery{Sort: "price_desc"})
	require.NoError(t, err)
	assert.Equal(t, float64(50), got[0].Price)
}

func TestListMineIncludesPending(t *testing.T) {
	svc := testService(t)
	uid := seedAgent(t, svc)

	other := models.UserModel{Email: "other@example.com", Password: "x", FullName: "Other"}
	require.NoError(t, svc.db.Create(&other).Error)

	_, err := svc.Create(uid, &CreateListingDTO{Title: "Mine", Price: 1, Address: "a", City: "c", Type: "house"})
	require.NoError(t, err)
	_, err = svc.Create(other.ID, &CreateListingDTO{Title: "Theirs", Price: 1, Address: "a", City: "c", Type: "house"})
	require.NoError(t, err)

	got, _, err := svc.ListMine(uid, page)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Mine", got[0].Title)
	assert.Equal(t, models.ListingPending, got[0].Status)
}

func TestListAllFiltersByStatus(t *testing.T) {
	svc := testService(t)
	uid := seedAgent(t, svc)

	a, err := svc.Create(uid, &CreateListingDTO{Title: "A", Price: 1, Address: "a", City: "c", Type: "house"})
	require.NoError(t, err)
	approve(t, svc, a.ID)
	_, err = svc.Create(uid, &CreateListingDTO{Title: "B", Price: 1, Address: "a", City: "c", Type: "house"})
	require.NoError(t, err)

	all, _, err := svc.ListAll(page, AdminListQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	pending := models.ListingPending
	got, _, err := svc.ListAll(page, AdminListQuery{Status: &pending})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "B", got[0].Title)
}

func TestSetStatusRoundTrip(t *testing.T) {
	svc := testService(t)
	uid := seedAgent(t, svc)

	l, err := svc.Create(uid, &CreateListingDTO{Title: "L", Price: 1, Address: "a", City: "c", Type: "house"})
	require.NoError(t, err)

	_, err = svc.SetStatus(l.ID, models.ListingRejected)
	require.NoError(t, err)

	got, err := svc.GetByID(l.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ListingRejected, got.Status)
}

func TestDeleteRemovesBookmarks(t *testing.T) {
	svc := testService(t)
	uid := seedAgent(t, svc)

	l, err := svc.Create(uid, &CreateListingDTO{Title: "L", Price: 1, Address: "a", City: "c", Type: "house"})
	require.NoError(t, err)

	saved := models.SavedListingModel{UserID: uid, ListingID: l.ID}
	require.NoError(t, svc.db.Create(&saved).Error)

	require.NoError(t, svc.Delete(l.ID))

	got, err := svc.GetByID(l.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	var count int64
	require.NoError(t, svc.db.Model(&models.SavedListingModel{}).
		Where("listing_id = ?", l.ID).Count(&count).Error)
	assert.Zero(t, count)
}

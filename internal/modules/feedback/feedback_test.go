package feedback

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
		&models.UserModel{}, &models.ListingModel{},
		&models.InquiryModel{}, &models.TestimonialModel{},
	))
	return NewService(db)
}

func TestCreateInquiryKeepsListingReference(t *testing.T) {
	svc := testService(t)

	u := models.UserModel{Email: "a@example.com", Password: "x", FullName: "A"}
	require.NoError(t, svc.db.Create(&u).Error)
	l := models.ListingModel{Title: "L", Price: 1, City: "Lagos", Type: "house", Status: models.ListingApproved, UserID: u.ID}
	require.NoError(t, svc.db.Create(&l).Error)

	inq, err := svc.CreateInquiry(&CreateInquiryDTO{
		Name: "Buyer", Email: "buyer@example.com", Message: "Still available?", ListingID: &l.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, inq.ListingID)
	assert.Equal(t, l.ID, *inq.ListingID)
}

func TestCreateInquiryDropsDanglingListing(t *testing.T) {
	svc := testService(t)

	gone := "00000000-0000-0000-0000-000000000000"
	inq, err := svc.CreateInquiry(&CreateInquiryDTO{
		Name: "Buyer", Email: "buyer@example.com", Message: "hi", ListingID: &gone,
	})
	require.NoError(t, err)
	assert.Nil(t, inq.ListingID)
}

func TestListInquiriesNewestFirst(t *testing.T) {
	svc := testService(t)

	for _, name := range []string{"first", "second"} {
		_, err := svc.CreateInquiry(&CreateInquiryDTO{Name: name, Email: name + "@example.com", Message: "m"})
		require.NoError(t, err)
	}

	inquiries, pag, err := svc.ListInquiries(pagination.Query{Page: 1, Size: 10})
	require.NoError(t, err)
	assert.Len(t, inquiries, 2)
	assert.Equal(t, int64(2), pag.Total)
}

func TestTestimonialDefaultsToFiveStars(t *testing.T) {
	svc := testService(t)

	tm, err := svc.CreateTestimonial(&CreateTestimonialDTO{Name: "Chioma", Quote: "Great service"})
	require.NoError(t, err)
	assert.Equal(t, 5, tm.Rating)

	three := 3
	tm, err = svc.CreateTestimonial(&CreateTestimonialDTO{Name: "Emeka", Quote: "Decent", Rating: &three})
	require.NoError(t, err)
	assert.Equal(t, 3, tm.Rating)
}

func TestTestimonialUpdateAndDelete(t *testing.T) {
	svc := testService(t)

	tm, err := svc.CreateTestimonial(&CreateTestimonialDTO{Name: "Chioma", Quote: "Great"})
	require.NoError(t, err)

	quote := "Even better now"
	got, err := svc.UpdateTestimonial(tm.ID, &UpdateTestimonialDTO{Quote: &quote})
	require.NoError(t, err)
	require.NotNil(t, got)

	fetched, err := svc.GetTestimonial(tm.ID)
	require.NoError(t, err)
	assert.Equal(t, "Even better now", fetched.Quote)

	require.NoError(t, svc.DeleteTestimonial(tm.ID))
	fetched, err = svc.GetTestimonial(tm.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched)
}

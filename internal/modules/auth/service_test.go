package auth

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/emeraldgate/core/internal/models"
	jwtpkg "github.com/emeraldgate/core/internal/pkg/jwt"
)

func testService(t *testing.T) *Service {
	t.Helper()
	jwtpkg.SetSecret("test-secret")
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.UserModel{}, &models.UserSession{}))
	return NewService(db)
}

func TestFirstRegisteredUserIsAdmin(t *testing.T) {
	svc := testService(t)

	first, err := svc.Register(&RegisterDTO{Email: "boss@example.com", Password: "secret1", FullName: "Boss"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, first.Role)

	second, err := svc.Register(&RegisterDTO{Email: "agent@example.com", Password: "secret1", FullName: "Agent"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAgent, second.Role)
}

func TestRegisterHashesPassword(t *testing.T) {
	svc := testService(t)

	u, err := svc.Register(&RegisterDTO{Email: "a@example.com", Password: "secret1", FullName: "A"})
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", u.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret1")))
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := testService(t)

	_, err := svc.Register(&RegisterDTO{Email: "a@example.com", Password: "secret1", FullName: "A"})
	require.NoError(t, err)
	_, err = svc.Register(&RegisterDTO{Email: "a@example.com", Password: "other99", FullName: "B"})
	assert.ErrorIs(t, err, errEmailExists)
}

func TestLoginIssuesSessionToken(t *testing.T) {
	svc := testService(t)

	_, err := svc.Register(&RegisterDTO{Email: "a@example.com", Password: "secret1", FullName: "A"})
	require.NoError(t, err)

	token, u, err := svc.Login("a@example.com", "secret1", "127.0.0.1", "tests")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	require.NotNil(t, u.LastLoginTime)
	assert.Equal(t, "127.0.0.1", u.LastLoginIP)

	claims, err := jwtpkg.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.NotEmpty(t, claims.SessionID)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := testService(t)

	_, err := svc.Register(&RegisterDTO{Email: "a@example.com", Password: "secret1", FullName: "A"})
	require.NoError(t, err)

	_, _, err = svc.Login("a@example.com", "nope", "127.0.0.1", "tests")
	assert.ErrorIs(t, err, errWrongPassword)
}

func TestChangePassword(t *testing.T) {
	svc := testService(t)

	u, err := svc.Register(&RegisterDTO{Email: "a@example.com", Password: "secret1", FullName: "A"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.ChangePassword(u.ID, "wrong", "newpass1"), errWrongPassword)
	assert.ErrorIs(t, svc.ChangePassword(u.ID, "secret1", "secret1"), errPasswordSameAsOld)
	require.NoError(t, svc.ChangePassword(u.ID, "secret1", "newpass1"))

	_, _, err = svc.Login("a@example.com", "newpass1", "127.0.0.1", "tests")
	assert.NoError(t, err)
}

func TestUpdateProfile(t *testing.T) {
	svc := testService(t)

	u, err := svc.Register(&RegisterDTO{Email: "a@example.com", Password: "secret1", FullName: "A"})
	require.NoError(t, err)

	name := "Adaeze N."
	phone := "+2348012345678"
	got, err := svc.UpdateProfile(u.ID, &UpdateProfileDTO{FullName: &name, Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, name, got.FullName)

	fetched, err := svc.GetByID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, phone, fetched.Phone)
}

func TestConcurrentRegistersYieldOneAdmin(t *testing.T) {
	svc := testService(t)
	sqlDB, err := svc.db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	const n = 8
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			_, err := svc.Register(&RegisterDTO{
				Email:    fmt.Sprintf("user%d@example.com", i),
				Password: "secret1",
				FullName: fmt.Sprintf("User %d", i),
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	var admins int64
	require.NoError(t, svc.db.Model(&models.UserModel{}).
		Where("role = ?", models.RoleAdmin).Count(&admins).Error)
	assert.Equal(t, int64(1), admins)
}

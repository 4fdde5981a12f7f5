package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/emeraldgate/core/internal/models"
	jwtpkg "github.com/emeraldgate/core/internal/pkg/jwt"
	sessionpkg "github.com/emeraldgate/core/internal/pkg/session"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.UserModel{}, &models.UserSession{}))
	return db
}

func loginAs(t *testing.T, db *gorm.DB, role string) string {
	t.Helper()
	u := models.UserModel{Email: role + "@example.com", Password: "x", Role: role}
	require.NoError(t, db.Create(&u).Error)
	token, _, err := sessionpkg.Issue(db, u.ID, "127.0.0.1", "test", time.Hour)
	require.NoError(t, err)
	return token
}

func doRequest(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/gated", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestOptionalAuthCarriesStoredRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwtpkg.SetSecret("test-secret")
	db := testDB(t)

	var gotRole string
	var gotAdmin bool
	r := gin.New()
	r.Use(OptionalAuth(db))
	r.GET("/gated", func(c *gin.Context) {
		gotRole = CurrentRole(c)
		gotAdmin = IsAdmin(c)
		c.Status(http.StatusOK)
	})

	doRequest(r, loginAs(t, db, models.RoleAdmin))
	assert.Equal(t, models.RoleAdmin, gotRole)
	assert.True(t, gotAdmin)

	doRequest(r, loginAs(t, db, models.RoleAgent))
	assert.Equal(t, models.RoleAgent, gotRole)
	assert.False(t, gotAdmin)

	doRequest(r, "")
	assert.Empty(t, gotRole)
	assert.False(t, gotAdmin)
}

func TestRequireRoleRejectsNonAdmins(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwtpkg.SetSecret("test-secret")
	db := testDB(t)

	r := gin.New()
	r.GET("/gated", RequireRole(db, models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	assert.Equal(t, http.StatusOK, doRequest(r, loginAs(t, db, models.RoleAdmin)).Code)
	assert.Equal(t, http.StatusForbidden, doRequest(r, loginAs(t, db, models.RoleAgent)).Code)
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "").Code)
}

func TestRequireRoleAfterAuthUsesContextIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwtpkg.SetSecret("test-secret")
	db := testDB(t)

	r := gin.New()
	r.Use(Auth(db))
	r.GET("/gated", RequireRole(db, models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	assert.Equal(t, http.StatusOK, doRequest(r, loginAs(t, db, models.RoleAdmin)).Code)
	assert.Equal(t, http.StatusForbidden, doRequest(r, loginAs(t, db, models.RoleAgent)).Code)
}

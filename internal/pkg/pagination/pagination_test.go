package pagination

import (
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type row struct {
	ID   uint `gorm:"primaryKey"`
	Name string
}

func seededDB(t *testing.T, n int) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&row{}))
	for i := 1; i <= n; i++ {
		require.NoError(t, db.Create(&row{Name: fmt.Sprintf("row-%02d", i)}).Error)
	}
	return db
}

func queryFor(rawQuery string) Query {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/listings?"+rawQuery, nil)
	return FromContext(c)
}

func TestFromContextDefaultsAndClamping(t *testing.T) {
	assert.Equal(t, Query{Page: 1, Size: 12}, queryFor(""))
	assert.Equal(t, Query{Page: 3, Size: 24}, queryFor("page=3&size=24"))
	assert.Equal(t, Query{Page: 1, Size: 12}, queryFor("page=-2&size=0"))
	assert.Equal(t, Query{Page: 1, Size: 100}, queryFor("size=5000"))
	assert.Equal(t, Query{Page: 1, Size: 12}, queryFor("page=abc&size=xyz"))
}

func TestPaginateMetadata(t *testing.T) {
	db := seededDB(t, 25)

	var rows []row
	pag, err := Paginate(db.Model(&row{}).Order("id"), Query{Page: 2, Size: 10}, &rows)
	require.NoError(t, err)

	assert.Len(t, rows, 10)
	assert.Equal(t, "row-11", rows[0].Name)
	assert.Equal(t, int64(25), pag.Total)
	assert.Equal(t, 2, pag.CurrentPage)
	assert.Equal(t, 3, pag.TotalPage)
	assert.True(t, pag.HasNextPage)

	pag, err = Paginate(db.Model(&row{}).Order("id"), Query{Page: 3, Size: 10}, &rows)
	require.NoError(t, err)
	assert.Len(t, rows, 5)
	assert.False(t, pag.HasNextPage)
}

func TestPaginateClampsRawQuery(t *testing.T) {
	db := seededDB(t, 3)

	var rows []row
	pag, err := Paginate(db.Model(&row{}).Order("id"), Query{Page: 0, Size: -1}, &rows)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
	assert.Equal(t, 1, pag.CurrentPage)
	assert.Equal(t, DefaultSize, pag.Size)
}

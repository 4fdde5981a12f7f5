// Package pagination implements the page/size query contract shared by the
// public listing grid and the back-office tables: pages are 1-based, twelve
// rows by default, never more than a hundred. Out-of-contract values are
// clamped, not rejected.
package pagination

import (
	"strconv"

	"github.com/emeraldgate/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	DefaultPage = 1
	DefaultSize = 12
	MaxSize     = 100
)

// Query is a sanitized page request.
type Query struct {
	Page int
	Size int
}

// Offset returns the row offset of the requested page.
func (q Query) Offset() int { return (q.Page - 1) * q.Size }

func (q Query) clamp() Query {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Size < 1 {
		q.Size = DefaultSize
	}
	if q.Size > MaxSize {
		q.Size = MaxSize
	}
	return q
}

// FromContext reads ?page= and ?size= from the request.
func FromContext(c *gin.Context) Query {
	return Query{
		Page: atoiDefault(c.Query("page"), DefaultPage),
		Size: atoiDefault(c.Query("size"), DefaultSize),
	}.clamp()
}

// Paginate counts tx, loads one page into dest and fills the response
// metadata. The tx must already carry every filter and the ordering.
func Paginate[T any](tx *gorm.DB, q Query, dest *[]T) (response.Pagination, error) {
	q = q.clamp()

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return response.Pagination{}, err
	}
	if err := tx.Offset(q.Offset()).Limit(q.Size).Find(dest).Error; err != nil {
		return response.Pagination{}, err
	}

	pages := int((total + int64(q.Size) - 1) / int64(q.Size))
	return response.Pagination{
		Total:       total,
		CurrentPage: q.Page,
		TotalPage:   pages,
		Size:        q.Size,
		HasNextPage: q.Page < pages,
	}, nil
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

package s3store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emeraldgate/core/internal/config"
)

func TestNewWithoutBucketIsDisabled(t *testing.T) {
	assert.Nil(t, New(config.S3Options{}))
}

func TestPublicURLCustomDomainWins(t *testing.T) {
	c := New(config.S3Options{
		Bucket:       "assets",
		Endpoint:     "https://x.r2.cloudflarestorage.com",
		CustomDomain: "https://cdn.example.com/",
	})
	require.NotNil(t, c)
	assert.Equal(t, "https://cdn.example.com/listings/a.jpg", c.PublicURL("listings/a.jpg"))
}

func TestPublicURLPathStyleEndpoint(t *testing.T) {
	c := New(config.S3Options{
		Bucket:    "assets",
		Endpoint:  "https://minio.internal:9000",
		PathStyle: true,
	})
	require.NotNil(t, c)
	assert.Equal(t, "https://minio.internal:9000/assets/listings/a.jpg", c.PublicURL("listings/a.jpg"))
}

func TestPublicURLVirtualHostEndpoint(t *testing.T) {
	c := New(config.S3Options{
		Bucket:   "assets",
		Endpoint: "https://s3.eu-west-1.amazonaws.com",
	})
	require.NotNil(t, c)
	assert.Equal(t, "https://assets.s3.eu-west-1.amazonaws.com/a.jpg", c.PublicURL("a.jpg"))
}

func TestPublicURLDefaultAWS(t *testing.T) {
	c := New(config.S3Options{Bucket: "assets"})
	require.NotNil(t, c)
	assert.Equal(t, "https://assets.s3.amazonaws.com/a.jpg", c.PublicURL("a.jpg"))
}

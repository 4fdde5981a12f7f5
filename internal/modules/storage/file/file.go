// Package file exposes asset uploads for listing photos, post banners,
// agent portraits and page assets. Objects live in S3-compatible storage
// under a per-namespace prefix; the API returns the public URL and never
// proxies reads.
package file

import (
	"errors"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/emeraldgate/core/internal/pkg/response"
	"github.com/emeraldgate/core/internal/pkg/s3store"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MaxUploadSize caps a single upload at 10 MiB.
const MaxUploadSize = 10 << 20

var allowedNamespaces = map[string]bool{
	"listings": true,
	"posts":    true,
	"agents":   true,
	"pages":    true,
	"avatars":  true,
}

var allowedExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
	".pdf":  "application/pdf",
}

var (
	errBadNamespace = errors.New("unknown upload namespace")
	errBadExtension = errors.New("file type not allowed")
	errTooLarge     = errors.New("file exceeds upload size limit")
)

type Handler struct {
	store *s3store.Client
}

func NewHandler(store *s3store.Client) *Handler {
	return &Handler{store: store}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	g := rg.Group("/files")
	g.POST("/:namespace", authMW, h.upload)
	g.DELETE("/*key", adminMW, h.delete)
}

type uploadResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// upload POST /files/:namespace  [auth]
// Multipart field "file". The stored key is <namespace>/<uuid>.<ext> so
// originals can never collide or be overwritten.
func (h *Handler) upload(c *gin.Context) {
	if h.store == nil {
		response.InternalError(c, errors.New("file storage is not configured"))
		return
	}

	ns := c.Param("namespace")
	fh, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file field is required")
		return
	}

	key, contentType, err := buildKey(ns, fh)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	src, err := fh.Open()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	defer src.Close()

	url, err := h.store.Upload(c.Request.Context(), key, src, contentType)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, uploadResponse{Key: key, URL: url})
}

// delete DELETE /files/*key  [admin]
func (h *Handler) delete(c *gin.Context) {
	if h.store == nil {
		response.InternalError(c, errors.New("file storage is not configured"))
		return
	}

	key := strings.TrimPrefix(c.Param("key"), "/")
	if key == "" {
		response.BadRequest(c, "key is required")
		return
	}
	if err := h.store.Delete(c.Request.Context(), key); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}

func buildKey(namespace string, fh *multipart.FileHeader) (key, contentType string, err error) {
	if !allowedNamespaces[namespace] {
		return "", "", errBadNamespace
	}
	if fh.Size > MaxUploadSize {
		return "", "", errTooLarge
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	contentType, ok := allowedExtensions[ext]
	if !ok {
		return "", "", errBadExtension
	}
	return namespace + "/" + uuid.NewString() + ext, contentType, nil
}

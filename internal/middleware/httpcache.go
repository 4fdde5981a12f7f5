package middleware

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	httpCachePrefix  = "eg:api-cache:"
	httpCacheTTL     = 15 * time.Second
	httpCacheMaxBody = 1 << 20
	cacheHitHeader   = "x-eg-cache"
)

type cachedHTTPResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type,omitempty"`
	BodyBase64  string `json:"body_base64"`
}

type cacheBodyWriter struct {
	gin.ResponseWriter
	body     []byte
	overflow bool
}

func (w *cacheBodyWriter) Write(data []byte) (int, error) {
	w.capture(data)
	return w.ResponseWriter.Write(data)
}

func (w *cacheBodyWriter) WriteString(s string) (int, error) {
	w.capture([]byte(s))
	return w.ResponseWriter.WriteString(s)
}

func (w *cacheBodyWriter) capture(data []byte) {
	if w.overflow || len(data) == 0 {
		return
	}
	if len(w.body)+len(data) > httpCacheMaxBody {
		w.overflow = true
		w.body = nil
		return
	}
	w.body = append(w.body, data...)
}

// HTTPCache returns a middleware that caches successful anonymous GET
// responses in Redis for a short window. Authenticated requests bypass the
// cache so operators always see fresh data, drafts included.
func HTTPCache(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet || IsAuthenticated(c) {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := httpCachePrefix + c.Request.URL.RequestURI()

		if raw, err := rdb.Get(ctx, key).Result(); err == nil {
			var cached cachedHTTPResponse
			if json.Unmarshal([]byte(raw), &cached) == nil {
				body, decErr := base64.StdEncoding.DecodeString(cached.BodyBase64)
				if decErr == nil {
					c.Header(cacheHitHeader, "hit")
					if cached.ContentType != "" {
						c.Header("Content-Type", cached.ContentType)
					}
					c.Status(cached.Status)
					_, _ = c.Writer.Write(body)
					c.Abort()
					return
				}
			}
		}

		writer := &cacheBodyWriter{ResponseWriter: c.Writer}
		c.Writer = writer
		c.Next()

		status := writer.Status()
		if status != http.StatusOK || writer.overflow || len(writer.body) == 0 {
			return
		}

		payload, err := json.Marshal(cachedHTTPResponse{
			Status:      status,
			ContentType: writer.Header().Get("Content-Type"),
			BodyBase64:  base64.StdEncoding.EncodeToString(writer.body),
		})
		if err != nil {
			return
		}
		rdb.Set(ctx, key, payload, httpCacheTTL)
	}
}

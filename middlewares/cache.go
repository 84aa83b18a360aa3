package middlewares

import (
	"bytes"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/viccon/sturdyc"
)

const (
	cacheCapacity = 4096
	cacheShards   = 64
	cacheEviction = 10 // percent evicted when full
)

type cachedBody struct {
	Status      int
	ContentType string
	Body        []byte
}

// ResponseCache is a short-TTL read cache keyed by the verbatim request
// path+query. It is process-wide shared state; sturdyc's sharded store
// handles the concurrent access so callers need no extra locking.
type ResponseCache struct {
	client *sturdyc.Client[cachedBody]
}

func NewResponseCache(ttl time.Duration) *ResponseCache {
	return &ResponseCache{
		client: sturdyc.New[cachedBody](cacheCapacity, cacheShards, ttl, cacheEviction),
	}
}

// Flush drops every entry. Mutations invalidate the whole cache rather
// than tracking key-to-entity dependencies; coarse but always correct.
func (rc *ResponseCache) Flush() {
	for _, key := range rc.client.ScanKeys() {
		rc.client.Delete(key)
	}
}

// Middleware short-circuits cached GETs and captures fresh 2xx bodies
// for the next hit. A failed store is logged and swallowed; it must not
// fail the request it rode in on.
func (rc *ResponseCache) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := c.Request.URL.RequestURI()
		if hit, ok := rc.client.Get(key); ok {
			c.Data(hit.Status, hit.ContentType, hit.Body)
			c.Abort()
			return
		}

		w := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = w
		c.Next()

		status := c.Writer.Status()
		if status < http.StatusOK || status >= http.StatusMultipleChoices {
			return
		}
		// Set reports whether it evicted to make room; a write itself
		// cannot fail, so nothing here can fail the request.
		if evicted := rc.client.Set(key, cachedBody{
			Status:      status,
			ContentType: c.Writer.Header().Get("Content-Type"),
			Body:        w.buf.Bytes(),
		}); evicted {
			slog.Debug("cache eviction on write", "key", key)
		}
	}
}

type captureWriter struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

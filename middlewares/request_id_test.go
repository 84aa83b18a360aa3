package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/utils"
)

func requestIDRouter() *gin.Engine {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, utils.RequestID(c))
	})
	return r
}

func TestRequestIDGenerated(t *testing.T) {
	r := requestIDRouter()
	w := get(r, "/")

	id := w.Header().Get("X-Request-Id")
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, w.Body.String())
}

func TestRequestIDHonorsValidInbound(t *testing.T) {
	r := requestIDRouter()
	inbound := uuid.New().String()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", inbound)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, inbound, w.Header().Get("X-Request-Id"))
}

func TestRequestIDReplacesGarbageInbound(t *testing.T) {
	r := requestIDRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "<script>alert(1)</script>")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	id := w.Header().Get("X-Request-Id")
	assert.NotEqual(t, "<script>alert(1)</script>", id)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}

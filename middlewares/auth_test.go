package middlewares

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/entity"
	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/utils"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func init() {
	gin.SetMode(gin.TestMode)
}

func authRouter(roles ...string) *gin.Engine {
	r := gin.New()
	r.GET("/protected", RequireAuth(testSecret, roles...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": utils.CurrentUserID(c),
			"role":    utils.CurrentRole(c),
		})
	})
	return r
}

func doGet(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	code, _ := body["error"].(string)
	return code
}

func TestRequireAuthMissingHeader(t *testing.T) {
	w := doGet(authRouter(), "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "UNAUTHORIZED", errorCode(t, w))
}

func TestRequireAuthMalformedHeader(t *testing.T) {
	for _, header := range []string{"Bearer", "Bearer ", "Basic abc", "token-without-scheme"} {
		w := doGet(authRouter(), "/protected", header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header=%q", header)
		assert.Equal(t, "UNAUTHORIZED", errorCode(t, w), "header=%q", header)
	}
}

func TestRequireAuthValidToken(t *testing.T) {
	token, err := utils.GenerateToken(42, entity.RoleUser, testSecret, time.Hour)
	require.NoError(t, err)

	w := doGet(authRouter(), "/protected", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(42), body["user_id"])
	assert.Equal(t, entity.RoleUser, body["role"])
}

func TestRequireAuthExpiredToken(t *testing.T) {
	token, err := utils.GenerateToken(1, entity.RoleUser, testSecret, -time.Minute)
	require.NoError(t, err)

	w := doGet(authRouter(), "/protected", "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "TOKEN_EXPIRED", errorCode(t, w))
}

func TestRequireAuthTamperedToken(t *testing.T) {
	token, err := utils.GenerateToken(1, entity.RoleUser, "some-other-secret-0000000000000000", time.Hour)
	require.NoError(t, err)

	w := doGet(authRouter(), "/protected", "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "TOKEN_INVALID", errorCode(t, w))
}

func TestRequireAuthRoleEnforcedAfterVerification(t *testing.T) {
	admin := authRouter(entity.RoleAdmin)

	userToken, err := utils.GenerateToken(1, entity.RoleUser, testSecret, time.Hour)
	require.NoError(t, err)
	adminToken, err := utils.GenerateToken(2, entity.RoleAdmin, testSecret, time.Hour)
	require.NoError(t, err)

	// wrong role with a valid token is 403, not 401
	w := doGet(admin, "/protected", "Bearer "+userToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "FORBIDDEN", errorCode(t, w))

	// a bad token never reaches the role check
	w = doGet(admin, "/protected", "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "TOKEN_INVALID", errorCode(t, w))

	w = doGet(admin, "/protected", "Bearer "+adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dika1005/rodstore-backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func newGuardedRouter(extraGuards ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	handlers := []gin.HandlerFunc{Authenticated(testSecret)}
	handlers = append(handlers, extraGuards...)
	handlers = append(handlers, func(c *gin.Context) {
		identity, _ := GetIdentityFromContext(c)
		c.JSON(http.StatusOK, gin.H{"userId": identity.UserID, "role": identity.Role})
	})
	r.GET("/protected", handlers...)
	return r
}

func signToken(t *testing.T, userID, role, secret string) string {
	t.Helper()
	token, err := utils.GenerateAccessToken(userID, role, secret, 5*time.Minute, "rodstore-backend")
	require.NoError(t, err)
	return token
}

func TestAuthenticated_NoToken(t *testing.T) {
	r := newGuardedRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token tidak ditemukan")
}

func TestAuthenticated_CookieToken(t *testing.T) {
	r := newGuardedRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "jwt", Value: signToken(t, "42", "user", testSecret)})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":42`)
}

func TestAuthenticated_BearerFallback(t *testing.T) {
	r := newGuardedRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "7", "admin", testSecret))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":7`)
}

func TestAuthenticated_CookieWinsOverHeader(t *testing.T) {
	r := newGuardedRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "jwt", Value: signToken(t, "1", "user", testSecret)})
	req.Header.Set("Authorization", "Bearer "+signToken(t, "2", "user", testSecret))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":1`)
}

func TestAuthenticated_InvalidToken(t *testing.T) {
	r := newGuardedRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "jwt", Value: signToken(t, "42", "user", "wrong-secret")})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token tidak valid")
}

func TestAuthenticated_ExpiredToken(t *testing.T) {
	token, err := utils.GenerateAccessToken("42", "user", testSecret, -time.Minute, "rodstore-backend")
	require.NoError(t, err)

	r := newGuardedRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "jwt", Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminOnly_RejectsNonAdmin(t *testing.T) {
	r := newGuardedRouter(AdminOnly())
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "jwt", Value: signToken(t, "42", "user", testSecret)})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Akses ditolak: hanya administrator yang diizinkan.")
}

func TestAdminOnly_AllowsAdmin(t *testing.T) {
	r := newGuardedRouter(AdminOnly())
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "jwt", Value: signToken(t, "42", "admin", testSecret)})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"admin"`)
}

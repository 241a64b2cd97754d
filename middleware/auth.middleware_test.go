package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polygen-backend/token"
)

const testKey = "01234567890123456789012345678901"

func testRouter(t *testing.T, maker *token.Maker) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()

	// Rute baca publik: tanpa guard
	r.GET("/api/products", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"products": []string{}})
	})

	admin := r.Group("/api/admin")
	admin.Use(RequireAdmin(maker))
	admin.POST("/products", func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"admin_id": c.GetString(AdminIDKey)})
	})

	return r
}

func newMaker(t *testing.T, lifetime time.Duration) *token.Maker {
	t.Helper()
	maker, err := token.NewMaker([]byte(testKey), lifetime)
	require.NoError(t, err)
	return maker
}

func TestRequireAdmin_MissingCookie(t *testing.T) {
	r := testRouter(t, newMaker(t, time.Minute))

	req := httptest.NewRequest(http.MethodPost, "/api/admin/products", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "UNAUTHENTICATED")
}

func TestRequireAdmin_ValidCookie(t *testing.T) {
	maker := newMaker(t, time.Minute)
	r := testRouter(t, maker)

	tokenString, err := maker.Issue("admin-123")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/products", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: tokenString})
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), "admin-123")
}

func TestRequireAdmin_ExpiredCookie(t *testing.T) {
	maker := newMaker(t, 50*time.Millisecond)
	r := testRouter(t, maker)

	tokenString, err := maker.Issue("admin-123")
	require.NoError(t, err)
	time.Sleep(100 * time.Millisecond)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/products", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: tokenString})
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRequireAdmin_TamperedCookie(t *testing.T) {
	maker := newMaker(t, time.Minute)
	r := testRouter(t, maker)

	otherMaker, err := token.NewMaker([]byte("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdef"), time.Minute)
	require.NoError(t, err)
	forged, err := otherMaker.Issue("admin-123")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/products", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: forged})
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestPublicRead_NeedsNoCookie(t *testing.T) {
	r := testRouter(t, newMaker(t, time.Minute))

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

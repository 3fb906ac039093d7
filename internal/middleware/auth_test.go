package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ANSH5252/LivePulse/internal/entity"
	"github.com/ANSH5252/LivePulse/internal/lib/jwt"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func newTestRouter(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/protected", handler, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetInt64(CtxUserID),
			"role":    c.GetString(CtxRole),
		})
	})
	return router
}

func mintToken(t *testing.T, userID int64, role entity.Role) string {
	t.Helper()

	token, err := jwt.NewToken(userID, role, secret, time.Hour)
	require.NoError(t, err)
	return token
}

func TestMiddleware_ValidBearerToken(t *testing.T) {
	router := newTestRouter(NewAuthMiddleware(secret).Middleware())

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, 42, entity.RoleAttendee))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id": 42, "role": "attendee"}`, w.Body.String())
}

func TestMiddleware_TokenFromQuery(t *testing.T) {
	router := newTestRouter(NewAuthMiddleware(secret).Middleware())

	req := httptest.NewRequest(http.MethodGet, "/protected?token="+mintToken(t, 42, entity.RoleAdmin), nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id": 42, "role": "admin"}`, w.Body.String())
}

func TestMiddleware_MissingToken(t *testing.T) {
	router := newTestRouter(NewAuthMiddleware(secret).Middleware())

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMiddleware_InvalidToken(t *testing.T) {
	router := newTestRouter(NewAuthMiddleware(secret).Middleware())

	for _, header := range []string{
		"Bearer not-a-token",
		"Basic dXNlcjpwYXNz",
		"Bearer",
	} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestMiddleware_WrongSecret(t *testing.T) {
	router := newTestRouter(NewAuthMiddleware("another-secret").Middleware())

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, 42, entity.RoleAttendee))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOptional_AnonymousPassesThrough(t *testing.T) {
	router := newTestRouter(NewAuthMiddleware(secret).Optional())

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id": 0, "role": ""}`, w.Body.String())
}

func TestOptional_AuthenticatedSetsPrincipal(t *testing.T) {
	router := newTestRouter(NewAuthMiddleware(secret).Optional())

	req := httptest.NewRequest(http.MethodGet, "/protected?token="+mintToken(t, 42, entity.RoleAttendee), nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id": 42, "role": "attendee"}`, w.Body.String())
}

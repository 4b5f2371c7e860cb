package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"task-tracker-api/internal/auth"
	"task-tracker-api/internal/models"
)

func newProtected(t *testing.T) (*gin.Engine, *auth.TokenManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	tokens := auth.NewTokenManager("test-secret", "test-issuer", "test-audience", time.Hour)
	r := gin.New()
	r.Use(JWTAuth(tokens))
	r.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": c.GetInt64(CtxUserID)})
	})
	return r, tokens
}

func TestJWTAuth_Success(t *testing.T) {
	r, tokens := newProtected(t)

	token, err := tokens.Generate(models.User{ID: 7, Username: "alice"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"userId":7`)
}

func TestJWTAuth_QueryParamFallback(t *testing.T) {
	r, tokens := newProtected(t)

	token, err := tokens.Generate(models.User{ID: 7, Username: "alice"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected?token="+token, nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestJWTAuth_MissingToken(t *testing.T) {
	r, _ := newProtected(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_MalformedToken(t *testing.T) {
	r, _ := newProtected(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_WrongSecret(t *testing.T) {
	r, _ := newProtected(t)

	forged := auth.NewTokenManager("other-secret", "test-issuer", "test-audience", time.Hour)
	token, err := forged.Generate(models.User{ID: 7, Username: "alice"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

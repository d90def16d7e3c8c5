package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "sustainability-portal-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTOperations(t *testing.T) {
	service := NewService("test-signing-key-for-jwt-operations", time.Hour)

	// Test token generation
	token, err := service.IssueToken("user-1", "alice@example.com", "portal_admin", "CM01")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// Test token validation
	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "portal_admin", claims.Role)
	assert.Equal(t, "CM01", claims.CMCode)
	assert.Equal(t, "user-1", claims.Subject)

	// Test invalid token
	_, err = service.ValidateToken("invalid-token")
	assert.Error(t, err)
	assert.Equal(t, apperrors.ErrInvalidToken, err)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	issuer := NewService("secret-a", time.Hour)
	verifier := NewService("secret-b", time.Hour)

	token, err := issuer.IssueToken("user-1", "alice@example.com", "viewer", "")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
	assert.Equal(t, apperrors.ErrInvalidToken, err)
}

func TestValidateTokenRejectsNonHMAC(t *testing.T) {
	service := NewService("test-secret", time.Hour)

	// A token signed with "none" must never validate, even if the
	// claims payload is well-formed.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = service.ValidateToken(tokenString)
	assert.Error(t, err)
	assert.Equal(t, apperrors.ErrInvalidToken, err)
}

func TestTokenExpiration(t *testing.T) {
	service := NewService("test-signing-key-for-expiration-test", -time.Minute)

	token, err := service.IssueToken("user-1", "alice@example.com", "viewer", "")
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
	assert.Equal(t, apperrors.ErrInvalidToken, err)
}

func TestRequireAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	service := NewService("test-middleware-secret", time.Hour)
	middleware := NewMiddleware(service)

	router := gin.New()
	router.GET("/protected", middleware.RequireAuth(), func(c *gin.Context) {
		userID, _ := GetUserID(c)
		email, _ := GetUserEmail(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "email": email})
	})

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", nil)

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Authorization header is required")
	})

	t.Run("malformed header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Token abc123")

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid authorization header format")
	})

	t.Run("invalid token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer not-a-real-token")

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid token")
	})

	t.Run("valid token sets user context", func(t *testing.T) {
		token, err := service.IssueToken("user-1", "alice@example.com", "portal_admin", "CM01")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "user-1")
		assert.Contains(t, w.Body.String(), "alice@example.com")
	})
}

func TestDefaultTTL(t *testing.T) {
	service := NewService("test-secret", 0)

	token, err := service.IssueToken("user-1", "alice@example.com", "viewer", "")
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)

	// Zero TTL falls back to 24 hours.
	remaining := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, remaining, 23*time.Hour)
	assert.LessOrEqual(t, remaining, 24*time.Hour)
}

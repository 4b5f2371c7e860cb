package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"task-tracker-api/internal/models"
)

func testManager() *TokenManager {
	return NewTokenManager("test-secret", "test-issuer", "test-audience", time.Hour)
}

func TestGenerateAndValidateToken(t *testing.T) {
	m := testManager()

	token, err := m.Generate(models.User{ID: 1, Username: "alice", Role: models.RoleUser})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Validate(token)
	require.NoError(t, err)
	require.Equal(t, int64(1), claims.UserID)
	require.Equal(t, "alice", claims.Username)
	require.Equal(t, models.RoleUser, claims.Role)
}

func TestValidateToken_Invalid(t *testing.T) {
	_, err := testManager().Validate("invalid.token")
	require.Error(t, err)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := testManager().Generate(models.User{ID: 1, Username: "alice"})
	require.NoError(t, err)

	other := NewTokenManager("other-secret", "test-issuer", "test-audience", time.Hour)
	_, err = other.Validate(token)
	require.Error(t, err)
}

func TestValidateToken_WrongIssuer(t *testing.T) {
	issued := NewTokenManager("test-secret", "someone-else", "test-audience", time.Hour)
	token, err := issued.Generate(models.User{ID: 1, Username: "alice"})
	require.NoError(t, err)

	_, err = testManager().Validate(token)
	require.Error(t, err)
}

func TestValidateToken_WrongAudience(t *testing.T) {
	issued := NewTokenManager("test-secret", "test-issuer", "other-clients", time.Hour)
	token, err := issued.Generate(models.User{ID: 1, Username: "alice"})
	require.NoError(t, err)

	_, err = testManager().Validate(token)
	require.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	issued := &TokenManager{
		secret:   []byte("test-secret"),
		issuer:   "test-issuer",
		audience: "test-audience",
		ttl:      -time.Hour,
	}
	token, err := issued.Generate(models.User{ID: 1, Username: "alice"})
	require.NoError(t, err)

	_, err = testManager().Validate(token)
	require.Error(t, err)
}

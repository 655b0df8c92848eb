package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contactnest/internal/apperrors"
	"contactnest/internal/models"
)

// Test constants
const (
	testSecret          = "test-secret-key-for-jwt-testing"
	testWrongSecret     = "wrong-secret-key-for-jwt-testing"
	testTokenDuration   = 1 * time.Hour
	testExpiredDuration = -1 * time.Hour
)

// Helper function to create test user
func createTestUser(role models.Role) *models.User {
	return &models.User{
		ID:       uuid.New(),
		Username: "testuser",
		Email:    "test@example.com",
		Role:     role,
		IsActive: true,
	}
}

func TestGenerateToken_Success(t *testing.T) {
	user := createTestUser(models.RoleUser)

	token, err := GenerateToken(user, testSecret, testTokenDuration)

	require.NoError(t, err, "GenerateToken should not return error for valid input")
	assert.NotEmpty(t, token, "Token should not be empty")
	assert.Len(t, strings.Split(token, "."), 3, "Token should be three dot-delimited segments")
}

func TestGenerateToken_DifferentRoles(t *testing.T) {
	roles := []models.Role{models.RoleUser, models.RoleAdmin}

	for _, role := range roles {
		t.Run(string(role), func(t *testing.T) {
			user := createTestUser(role)

			token, err := GenerateToken(user, testSecret, testTokenDuration)
			require.NoError(t, err, "GenerateToken should work for all roles")

			claims, err := ValidateToken(token, testSecret)
			require.NoError(t, err)
			assert.Equal(t, role, claims.Role, "Token should carry the correct role")
		})
	}
}

func TestValidateToken_Success(t *testing.T) {
	user := createTestUser(models.RoleUser)
	token, err := GenerateToken(user, testSecret, testTokenDuration)
	require.NoError(t, err, "Setup: GenerateToken should not fail")

	claims, err := ValidateToken(token, testSecret)

	require.NoError(t, err, "ValidateToken should not return error for valid token")
	require.NotNil(t, claims, "Claims should not be nil")
	assert.Equal(t, user.ID.String(), claims.Subject, "Subject should carry the user id")
	assert.Equal(t, user.Email, claims.Email, "Email should match")
	assert.Equal(t, user.Role, claims.Role, "Role should match")
	assert.True(t, claims.ExpiresAt.Time.After(time.Now()), "Token should not be expired")

	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, user.ID, id, "UserID should parse back to the original id")
}

func TestValidateToken_ExpiredToken(t *testing.T) {
	user := createTestUser(models.RoleUser)
	token, err := GenerateToken(user, testSecret, testExpiredDuration)
	require.NoError(t, err, "Setup: GenerateToken should not fail")

	claims, err := ValidateToken(token, testSecret)

	require.Error(t, err, "ValidateToken should return error for expired token")
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired, "Expired token should fail with the expired kind")
	assert.NotErrorIs(t, err, apperrors.ErrTokenInvalid, "Expired token should not report the invalid kind")
	assert.Nil(t, claims, "Claims should be nil for expired token")
}

func TestValidateToken_ZeroDuration(t *testing.T) {
	user := createTestUser(models.RoleUser)
	token, err := GenerateToken(user, testSecret, 0)
	require.NoError(t, err, "GenerateToken should handle zero duration")

	_, err = ValidateToken(token, testSecret)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired, "Token with zero TTL should be expired, not invalid")
}

func TestValidateToken_InvalidToken(t *testing.T) {
	invalidTokens := []string{
		"",                                     // Empty
		"invalid.token.here",                   // Invalid format
		"not-a-jwt-token",                      // Plain text
		"a.b",                                  // Incomplete JWT
		"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9", // Only header
	}

	for _, invalidToken := range invalidTokens {
		t.Run(invalidToken, func(t *testing.T) {
			claims, err := ValidateToken(invalidToken, testSecret)

			assert.ErrorIs(t, err, apperrors.ErrTokenInvalid, "Malformed token should fail with the invalid kind")
			assert.Nil(t, claims, "Claims should be nil for invalid token")
		})
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	user := createTestUser(models.RoleUser)
	token, err := GenerateToken(user, testSecret, testTokenDuration)
	require.NoError(t, err, "Setup: GenerateToken should not fail")

	claims, err := ValidateToken(token, testWrongSecret)

	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid, "Wrong secret should fail with the invalid kind")
	assert.Nil(t, claims, "Claims should be nil when secret is wrong")
}

func TestValidateToken_TamperedSegments(t *testing.T) {
	user := createTestUser(models.RoleUser)
	token, err := GenerateToken(user, testSecret, testTokenDuration)
	require.NoError(t, err, "Setup: GenerateToken should not fail")

	segments := strings.Split(token, ".")
	require.Len(t, segments, 3)

	names := []string{"header", "payload", "signature"}
	for i, name := range names {
		t.Run(name, func(t *testing.T) {
			tampered := make([]string, 3)
			copy(tampered, segments)

			// Flip one character in the segment
			seg := []byte(tampered[i])
			if seg[0] == 'A' {
				seg[0] = 'B'
			} else {
				seg[0] = 'A'
			}
			tampered[i] = string(seg)

			claims, err := ValidateToken(strings.Join(tampered, "."), testSecret)

			assert.ErrorIs(t, err, apperrors.ErrTokenInvalid, "Tampered %s should fail with the invalid kind", name)
			assert.Nil(t, claims, "Claims should be nil for tampered token")
		})
	}
}

func TestValidateToken_TamperedAndExpired(t *testing.T) {
	// A tampered token must be rejected as invalid even when its expiry
	// would also fail
	user := createTestUser(models.RoleUser)
	token, err := GenerateToken(user, testSecret, testExpiredDuration)
	require.NoError(t, err, "Setup: GenerateToken should not fail")

	tamperedToken := token[:len(token)-5] + "XXXXX"

	claims, err := ValidateToken(tamperedToken, testSecret)

	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid, "Tampered token should report invalid, not expired")
	assert.Nil(t, claims, "Claims should be nil for tampered token")
}

func TestValidateToken_BadSubject(t *testing.T) {
	user := createTestUser(models.RoleUser)
	token, err := GenerateToken(user, testSecret, testTokenDuration)
	require.NoError(t, err)

	claims, err := ValidateToken(token, testSecret)
	require.NoError(t, err)

	claims.Subject = "not-a-uuid"
	_, err = claims.UserID()
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid, "Unparseable subject should report the invalid kind")
}

func TestToken_RoundTrip(t *testing.T) {
	users := []*models.User{
		createTestUser(models.RoleUser),
		createTestUser(models.RoleAdmin),
		{
			ID:       uuid.New(),
			Username: "unicode_user_ışık",
			Email:    "unicode@example.com",
			Role:     models.RoleUser,
		},
	}

	for _, user := range users {
		t.Run(user.Username, func(t *testing.T) {
			token, err := GenerateToken(user, testSecret, testTokenDuration)
			require.NoError(t, err, "GenerateToken should succeed")

			claims, err := ValidateToken(token, testSecret)
			require.NoError(t, err, "ValidateToken should succeed")

			assert.Equal(t, user.ID.String(), claims.Subject, "Subject should match")
			assert.Equal(t, user.Email, claims.Email, "Email should match")
			assert.Equal(t, user.Role, claims.Role, "Role should match")
		})
	}
}

func BenchmarkGenerateToken(b *testing.B) {
	user := createTestUser(models.RoleUser)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = GenerateToken(user, testSecret, testTokenDuration)
	}
}

func BenchmarkValidateToken(b *testing.B) {
	user := createTestUser(models.RoleUser)
	token, _ := GenerateToken(user, testSecret, testTokenDuration)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ValidateToken(token, testSecret)
	}
}

package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"contactnest/internal/apperrors"
	"contactnest/internal/models"
)

// Claims is the token payload: {sub, email, role, exp}. The subject carries
// the user id as a string.
type Claims struct {
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
	jwt.RegisteredClaims
}

// UserID parses the subject claim back into the user id.
func (c *Claims) UserID() (uuid.UUID, error) {
	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return uuid.Nil, apperrors.ErrTokenInvalid
	}
	return id, nil
}

// GenerateToken issues an HS256-signed token for user, expiring expiresIn
// from now.
func GenerateToken(user *models.User, secretKey string, expiresIn time.Duration) (string, error) {
	now := time.Now()

	claims := &Claims{
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(secretKey))
}

// ValidateToken checks signature and expiry. Expired tokens fail with
// apperrors.ErrTokenExpired; everything else (bad signature, tampered or
// malformed payloads, wrong algorithm, missing expiry) fails with
// apperrors.ErrTokenInvalid, so callers can produce distinct diagnostics.
func ValidateToken(tokenString, secretKey string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, apperrors.ErrTokenInvalid
			}
			return []byte(secretKey), nil
		},
		jwt.WithExpirationRequired(),
	)

	if err != nil {
		// Signature is checked before expiry, so a tampered token is
		// rejected as invalid even when its exp would also fail.
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrTokenInvalid
	}

	return claims, nil
}

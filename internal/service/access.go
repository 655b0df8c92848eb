package service

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"contactnest/internal/apperrors"
	"contactnest/internal/models"
	"contactnest/internal/repository"
	"contactnest/internal/utils"
	"contactnest/pkg/logger"
)

// Policy is the authorization rule attached to an operation.
type Policy int

const (
	// PolicyPublic requires no credentials at all.
	PolicyPublic Policy = iota
	// PolicyAuthenticated requires any active user.
	PolicyAuthenticated
	// PolicySelfOrAdmin requires the caller to own the target resource or
	// hold the admin role.
	PolicySelfOrAdmin
	// PolicyAdminOnly requires the admin role.
	PolicyAdminOnly
)

// AccessGuard turns a bearer token into a live user and enforces per-
// operation policies. Tokens are non-revocable, so the active check here at
// resolution time is what makes deactivation take effect before expiry.
type AccessGuard struct {
	userRepo  *repository.UserRepository
	jwtSecret string
}

func NewAccessGuard(userRepo *repository.UserRepository, jwtSecret string) *AccessGuard {
	return &AccessGuard{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
	}
}

// ResolvePrincipal decodes the token and resolves its subject to a live
// user. Expired and invalid tokens keep their distinct error kinds; a
// structurally valid token whose subject is gone or deactivated fails with
// ErrAccountInactive.
func (g *AccessGuard) ResolvePrincipal(tokenString string) (*models.User, error) {
	claims, err := utils.ValidateToken(tokenString, g.jwtSecret)
	if err != nil {
		return nil, err
	}

	id, err := claims.UserID()
	if err != nil {
		return nil, err
	}

	user, err := g.userRepo.FindActiveByID(id)
	if err != nil {
		logger.Log.Error("Failed to resolve principal",
			zap.String("user_id", id.String()),
			zap.Error(err),
		)
		return nil, err
	}
	if user == nil {
		logger.Log.Warn("Token subject gone or inactive",
			zap.String("user_id", id.String()),
		)
		return nil, apperrors.ErrAccountInactive
	}

	return user, nil
}

// Check applies policy to an already resolved principal. ownerID is the id
// of the resource being operated on; it is only consulted for
// PolicySelfOrAdmin.
func (g *AccessGuard) Check(principal *models.User, policy Policy, ownerID *uuid.UUID) error {
	switch policy {
	case PolicyPublic:
		return nil
	case PolicyAuthenticated:
		if principal == nil {
			return apperrors.ErrTokenMissing
		}
		return nil
	case PolicySelfOrAdmin:
		if principal == nil {
			return apperrors.ErrTokenMissing
		}
		if principal.Role == models.RoleAdmin {
			return nil
		}
		if ownerID != nil && principal.ID == *ownerID {
			return nil
		}
		return apperrors.ErrForbidden
	case PolicyAdminOnly:
		if principal == nil {
			return apperrors.ErrTokenMissing
		}
		if principal.Role != models.RoleAdmin {
			return apperrors.ErrForbidden
		}
		return nil
	default:
		return apperrors.ErrForbidden
	}
}

// Authorize is the single request-boundary entry point: token in, resolved
// user out, policy applied. Public operations skip resolution entirely.
func (g *AccessGuard) Authorize(tokenString string, policy Policy, ownerID *uuid.UUID) (*models.User, error) {
	if policy == PolicyPublic {
		return nil, nil
	}

	principal, err := g.ResolvePrincipal(tokenString)
	if err != nil {
		return nil, err
	}

	if err := g.Check(principal, policy, ownerID); err != nil {
		return nil, err
	}

	return principal, nil
}

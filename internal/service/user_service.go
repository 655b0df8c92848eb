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

// UserService handles profile reads and admin-side user management.
type UserService struct {
	userRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) GetUser(id uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.FindActiveByID(id)
	if err != nil {
		logger.Log.Error("Failed to fetch user",
			zap.String("user_id", id.String()),
			zap.Error(err),
		)
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

// UpdateUser replaces the mutable profile fields. The password is always
// re-hashed from the supplied plaintext.
func (s *UserService) UpdateUser(id uuid.UUID, username, email, password string, role models.Role) (*models.User, error) {
	user, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		logger.Log.Error("Failed to hash password", zap.Error(err))
		return nil, err
	}

	user.Username = username
	user.Email = email
	user.PasswordHash = hashedPassword
	user.Role = role

	if err := s.userRepo.Update(user); err != nil {
		logger.Log.Error("Failed to update user",
			zap.String("user_id", id.String()),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Log.Info("User updated",
		zap.String("user_id", id.String()),
		zap.String("username", username),
	)

	return user, nil
}

// ListUsers returns all active users. An empty result is reported as
// not-found, matching the API contract.
func (s *UserService) ListUsers() ([]*models.User, error) {
	users, err := s.userRepo.ListActive()
	if err != nil {
		logger.Log.Error("Failed to list users", zap.Error(err))
		return nil, err
	}
	if len(users) == 0 {
		return nil, apperrors.ErrUserNotFound
	}
	return users, nil
}

// SearchUsers matches active users by username substring.
func (s *UserService) SearchUsers(query string) ([]*models.User, error) {
	users, err := s.userRepo.SearchActive(query)
	if err != nil {
		logger.Log.Error("Failed to search users",
			zap.String("query", query),
			zap.Error(err),
		)
		return nil, err
	}
	if len(users) == 0 {
		return nil, apperrors.ErrUserNotFound
	}
	return users, nil
}

// DeleteUser removes the user permanently (hard delete).
func (s *UserService) DeleteUser(id uuid.UUID) error {
	user, err := s.GetUser(id)
	if err != nil {
		return err
	}

	if err := s.userRepo.Delete(user.ID); err != nil {
		logger.Log.Error("Failed to delete user",
			zap.String("user_id", id.String()),
			zap.Error(err),
		)
		return err
	}

	logger.Log.Info("User deleted", zap.String("user_id", id.String()))
	return nil
}

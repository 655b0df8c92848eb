package service

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"contactnest/internal/apperrors"
	"contactnest/internal/models"
	"contactnest/internal/repository"
	"contactnest/internal/utils"
	"contactnest/pkg/logger"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// AuthService verifies credentials and issues bearer tokens.
type AuthService struct {
	userRepo      *repository.UserRepository
	jwtSecret     string
	jwtExpiration time.Duration
}

func NewAuthService(userRepo *repository.UserRepository, jwtSecret string, jwtExpiration time.Duration) *AuthService {
	return &AuthService{
		userRepo:      userRepo,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

// Register creates a new active user. Username and email must both be free;
// the match is exact and case-sensitive. Role defaults to user when callers
// pass models.RoleUser.
func (s *AuthService) Register(username, email, password string, role models.Role) (*models.User, error) {
	start := time.Now()

	logger.Log.Debug("Processing user registration",
		zap.String("username", username),
		zap.String("email", email),
	)

	if err := s.validateRegisterInput(username, email, password, role); err != nil {
		logger.Log.Warn("Registration validation failed",
			zap.String("username", username),
			zap.String("email", email),
			zap.Error(err),
		)
		return nil, err
	}

	existing, err := s.userRepo.FindByUsernameOrEmail(username, email)
	if err != nil {
		logger.Log.Error("Failed to check user existence",
			zap.String("username", username),
			zap.String("email", email),
			zap.Error(err),
		)
		return nil, err
	}
	if existing != nil {
		if existing.Email == email {
			logger.Log.Warn("Email already exists", zap.String("email", email))
			return nil, apperrors.ErrEmailAlreadyExists
		}
		logger.Log.Warn("Username already exists", zap.String("username", username))
		return nil, apperrors.ErrUsernameAlreadyExists
	}

	hashStart := time.Now()
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		logger.Log.Error("Failed to hash password", zap.Error(err))
		return nil, err
	}
	hashDuration := time.Since(hashStart)

	user := &models.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         role,
		IsActive:     true,
	}

	if err := s.userRepo.Create(user); err != nil {
		logger.Log.Error("Failed to create user in database",
			zap.String("username", username),
			zap.String("email", email),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Log.Info("User registered successfully",
		zap.String("user_id", user.ID.String()),
		zap.String("username", username),
		zap.String("role", string(user.Role)),
		zap.Duration("hash_duration", hashDuration),
		zap.Duration("total_duration", time.Since(start)),
	)

	return user, nil
}

// Login authenticates by email and password and issues a token embedding
// {sub, email, role}. A missing account, a wrong password and an inactive
// account all fail with the same undifferentiated error so callers cannot
// enumerate accounts.
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	start := time.Now()

	logger.Log.Debug("Processing user login", zap.String("email", email))

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		logger.Log.Error("Failed to get user by email",
			zap.String("email", email),
			zap.Error(err),
		)
		return nil, "", err
	}
	if user == nil {
		logger.Log.Warn("Login failed: user not found", zap.String("email", email))
		return nil, "", apperrors.ErrInvalidCredentials
	}

	verifyStart := time.Now()
	valid, err := utils.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		// Malformed stored hash: fail closed as a plain credential failure
		logger.Log.Error("Failed to verify password",
			zap.String("user_id", user.ID.String()),
			zap.Error(err),
		)
		return nil, "", apperrors.ErrInvalidCredentials
	}
	verifyDuration := time.Since(verifyStart)

	if !valid {
		logger.Log.Warn("Login failed: invalid password",
			zap.String("user_id", user.ID.String()),
		)
		return nil, "", apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		logger.Log.Warn("Login failed: inactive account",
			zap.String("user_id", user.ID.String()),
		)
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user, s.jwtSecret, s.jwtExpiration)
	if err != nil {
		logger.Log.Error("Failed to generate token",
			zap.String("user_id", user.ID.String()),
			zap.Error(err),
		)
		return nil, "", err
	}

	logger.Log.Info("User logged in successfully",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username),
		zap.Duration("password_verify_duration", verifyDuration),
		zap.Duration("total_duration", time.Since(start)),
	)

	return user, token, nil
}

func (s *AuthService) validateRegisterInput(username, email, password string, role models.Role) error {
	if len(username) < 3 {
		return errors.New("username must be at least 3 characters")
	}
	if len(username) > 50 {
		return errors.New("username must be at most 50 characters")
	}

	if !emailRegex.MatchString(email) {
		return errors.New("invalid email format")
	}
	if len(email) > 255 {
		return errors.New("email too long")
	}

	// No minimum password length; any non-empty password is accepted
	if len(password) > 128 {
		return errors.New("password too long")
	}

	if !role.Valid() {
		return errors.New("invalid role")
	}

	return nil
}

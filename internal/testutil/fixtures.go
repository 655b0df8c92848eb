package testutil

import (
	"time"

	"github.com/google/uuid"

	"contactnest/internal/models"
	"contactnest/internal/utils"
)

// CreateTestUser creates a SQLite-compatible test user with hashed password
func CreateTestUser(username, email, password string, role models.Role) (*TestUser, error) {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	return &TestUser{
		ID:           uuid.New().String(), // SQLite stores UUID as string
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         string(role),
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}, nil
}

// CreateInactiveTestUser creates a deactivated account, invisible to
// active-only lookups
func CreateInactiveTestUser(username, email, password string, role models.Role) (*TestUser, error) {
	user, err := CreateTestUser(username, email, password, role)
	if err != nil {
		return nil, err
	}
	user.IsActive = false
	return user, nil
}

// CreateTestContact creates a SQLite-compatible test contact
func CreateTestContact(name, email string, phone *string) *TestContact {
	return &TestContact{
		Name:      name,
		Email:     email,
		Phone:     phone,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// DefaultTestUser returns a default test user (regular user)
func DefaultTestUser() (*TestUser, error) {
	return CreateTestUser("testuser", "test@example.com", "Test123456", models.RoleUser)
}

// DefaultAdminUser returns a default admin user
func DefaultAdminUser() (*TestUser, error) {
	return CreateTestUser("admin", "admin@example.com", "Admin123456", models.RoleAdmin)
}

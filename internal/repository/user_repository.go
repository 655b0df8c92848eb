package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"contactnest/internal/models"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByEmail looks a user up regardless of active status; the login path
// applies its own active check so all failures collapse into one error.
func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// FindByUsernameOrEmail returns any user holding either value, active or
// not. Used for the registration conflict check.
func (r *UserRepository) FindByUsernameOrEmail(username, email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ? OR email = ?", username, email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// FindActiveByID resolves an id to a live user. Inactive accounts are
// filtered here, at the store layer.
func (r *UserRepository) FindActiveByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.Where("id = ? AND is_active = ?", id, true).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// Delete removes the row permanently. There is no soft-delete column on
// users; deactivation is the separate IsActive flag.
func (r *UserRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.User{}, "id = ?", id).Error
}

func (r *UserRepository) ListActive() ([]*models.User, error) {
	var users []*models.User
	err := r.db.Where("is_active = ?", true).Order("created_at DESC").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// SearchActive matches active users whose username contains query,
// case-insensitively on both Postgres and SQLite.
func (r *UserRepository) SearchActive(query string) ([]*models.User, error) {
	var users []*models.User
	err := r.db.
		Where("lower(username) LIKE lower(?) AND is_active = ?", "%"+query+"%", true).
		Order("created_at DESC").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

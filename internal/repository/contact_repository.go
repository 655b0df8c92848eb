package repository

import (
	"errors"

	"gorm.io/gorm"

	"contactnest/internal/models"
)

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(contact *models.Contact) error {
	return r.db.Create(contact).Error
}

func (r *ContactRepository) FindByID(id uint) (*models.Contact, error) {
	var contact models.Contact
	err := r.db.First(&contact, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &contact, nil
}

func (r *ContactRepository) List(limit, offset int) ([]*models.Contact, error) {
	var contacts []*models.Contact
	err := r.db.Limit(limit).Offset(offset).Order("id").Find(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *ContactRepository) Update(contact *models.Contact) error {
	return r.db.Save(contact).Error
}

func (r *ContactRepository) Delete(id uint) error {
	return r.db.Delete(&models.Contact{}, id).Error
}

// Search matches contacts whose name or email contains query,
// case-insensitively.
func (r *ContactRepository) Search(query string) ([]*models.Contact, error) {
	var contacts []*models.Contact
	pattern := "%" + query + "%"
	err := r.db.
		Where("lower(name) LIKE lower(?) OR lower(email) LIKE lower(?)", pattern, pattern).
		Order("id").
		Find(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

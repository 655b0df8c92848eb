package service

import (
	"go.uber.org/zap"

	"contactnest/internal/apperrors"
	"contactnest/internal/models"
	"contactnest/internal/repository"
	"contactnest/pkg/logger"
)

// ContactService handles contact CRUD. Contacts carry no owner, so no
// ownership checks happen here; the route policy (authenticated) is the only
// gate.
type ContactService struct {
	contactRepo *repository.ContactRepository
}

func NewContactService(contactRepo *repository.ContactRepository) *ContactService {
	return &ContactService{contactRepo: contactRepo}
}

func (s *ContactService) CreateContact(name, email string, phone *string) (*models.Contact, error) {
	contact := &models.Contact{
		Name:  name,
		Email: email,
		Phone: phone,
	}

	if err := s.contactRepo.Create(contact); err != nil {
		logger.Log.Error("Failed to create contact",
			zap.String("name", name),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Log.Info("Contact created", zap.Uint("contact_id", contact.ID))
	return contact, nil
}

func (s *ContactService) GetContact(id uint) (*models.Contact, error) {
	contact, err := s.contactRepo.FindByID(id)
	if err != nil {
		logger.Log.Error("Failed to fetch contact",
			zap.Uint("contact_id", id),
			zap.Error(err),
		)
		return nil, err
	}
	if contact == nil {
		return nil, apperrors.ErrContactNotFound
	}
	return contact, nil
}

// ListContacts pages through contacts. An empty page is reported as
// not-found, matching the API contract.
func (s *ContactService) ListContacts(limit, offset int) ([]*models.Contact, error) {
	contacts, err := s.contactRepo.List(limit, offset)
	if err != nil {
		logger.Log.Error("Failed to list contacts", zap.Error(err))
		return nil, err
	}
	if len(contacts) == 0 {
		return nil, apperrors.ErrContactNotFound
	}
	return contacts, nil
}

func (s *ContactService) UpdateContact(id uint, name, email string, phone *string) (*models.Contact, error) {
	contact, err := s.GetContact(id)
	if err != nil {
		return nil, err
	}

	contact.Name = name
	contact.Email = email
	contact.Phone = phone

	if err := s.contactRepo.Update(contact); err != nil {
		logger.Log.Error("Failed to update contact",
			zap.Uint("contact_id", id),
			zap.Error(err),
		)
		return nil, err
	}

	return contact, nil
}

func (s *ContactService) DeleteContact(id uint) error {
	contact, err := s.GetContact(id)
	if err != nil {
		return err
	}

	if err := s.contactRepo.Delete(contact.ID); err != nil {
		logger.Log.Error("Failed to delete contact",
			zap.Uint("contact_id", id),
			zap.Error(err),
		)
		return err
	}

	logger.Log.Info("Contact deleted", zap.Uint("contact_id", id))
	return nil
}

// SearchContacts matches contacts by name or email substring.
func (s *ContactService) SearchContacts(query string) ([]*models.Contact, error) {
	contacts, err := s.contactRepo.Search(query)
	if err != nil {
		logger.Log.Error("Failed to search contacts",
			zap.String("query", query),
			zap.Error(err),
		)
		return nil, err
	}
	if len(contacts) == 0 {
		return nil, apperrors.ErrContactNotFound
	}
	return contacts, nil
}

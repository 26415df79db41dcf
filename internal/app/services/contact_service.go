package services

import (
	"context"

	"github.com/edaguler/scholarhub/internal/app/models"
	"github.com/edaguler/scholarhub/internal/app/models/dto"
)

// messageStore is the slice of the message repository the service needs
type messageStore interface {
	Create(ctx context.Context, msg *models.ContactMessage) error
	GetAll(ctx context.Context) ([]*models.ContactMessage, error)
}

// ContactService defines the interface for contact form operations
type ContactService interface {
	Submit(ctx context.Context, req *dto.ContactRequest) (*models.ContactMessage, error)
	List(ctx context.Context) ([]*models.ContactMessage, error)
}

// contactServiceImpl implements the ContactService interface
type contactServiceImpl struct {
	messageRepo messageStore
}

// NewContactService creates a new contact service instance
func NewContactService(messageRepo messageStore) ContactService {
	return &contactServiceImpl{
		messageRepo: messageRepo,
	}
}

// Submit stores a contact form message
func (s *contactServiceImpl) Submit(ctx context.Context, req *dto.ContactRequest) (*models.ContactMessage, error) {
	msg := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, err
	}

	return msg, nil
}

// List returns every stored message, newest first
func (s *contactServiceImpl) List(ctx context.Context) ([]*models.ContactMessage, error) {
	return s.messageRepo.GetAll(ctx)
}

package services

import (
	"context"

	"github.com/edaguler/scholarhub/internal/app/models"
)

// statStore is the slice of the stat repository the service needs
type statStore interface {
	GetAll(ctx context.Context) ([]*models.SuccessStat, error)
}

// StatService defines the interface for success stat operations
type StatService interface {
	List(ctx context.Context) ([]*models.SuccessStat, error)
}

// statServiceImpl implements the StatService interface
type statServiceImpl struct {
	statRepo statStore
}

// NewStatService creates a new stat service instance
func NewStatService(statRepo statStore) StatService {
	return &statServiceImpl{
		statRepo: statRepo,
	}
}

// List returns the portal's headline numbers in display order
func (s *statServiceImpl) List(ctx context.Context) ([]*models.SuccessStat, error) {
	return s.statRepo.GetAll(ctx)
}

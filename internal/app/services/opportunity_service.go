package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/edaguler/scholarhub/internal/app/models"
	"github.com/edaguler/scholarhub/internal/app/models/dto"
	"github.com/edaguler/scholarhub/internal/config"
	"github.com/edaguler/scholarhub/internal/pkg/apperrors"
)

// deadlineLayout is the date-only form listings are submitted with
const deadlineLayout = "2006-01-02"

// opportunityStore is the slice of the opportunity repository the service needs
type opportunityStore interface {
	GetAll(ctx context.Context) ([]*models.Opportunity, error)
	GetFeatured(ctx context.Context) ([]*models.Opportunity, error)
	Search(ctx context.Context, term string) ([]*models.Opportunity, error)
	GetByTeacher(ctx context.Context, teacherID int64) ([]*models.Opportunity, error)
	GetByID(ctx context.Context, id int64) (*models.Opportunity, error)
	Create(ctx context.Context, opp *models.Opportunity) error
	Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Opportunity, error)
	HasApplications(ctx context.Context, id int64) (bool, error)
	Delete(ctx context.Context, id int64) error
	DeleteCascade(ctx context.Context, id int64) error
}

// OpportunityFilter narrows a listing query. TeacherID wins over Featured,
// which wins over Query; a blank Query falls back to the full listing.
type OpportunityFilter struct {
	Query     string
	Featured  bool
	TeacherID *int64
}

// OpportunityService defines the interface for opportunity operations
type OpportunityService interface {
	List(ctx context.Context, filter OpportunityFilter) ([]*models.Opportunity, error)
	GetByID(ctx context.Context, id int64) (*models.Opportunity, error)
	Create(ctx context.Context, req *dto.CreateOpportunityRequest) (*models.Opportunity, error)
	Update(ctx context.Context, id int64, req *dto.UpdateOpportunityRequest) (*models.Opportunity, error)
	Delete(ctx context.Context, id int64) error
}

// opportunityServiceImpl implements the OpportunityService interface
type opportunityServiceImpl struct {
	opportunityRepo opportunityStore
	deletePolicy    string
}

// NewOpportunityService creates a new opportunity service instance
func NewOpportunityService(opportunityRepo opportunityStore, cfg *config.Config) OpportunityService {
	return &opportunityServiceImpl{
		opportunityRepo: opportunityRepo,
		deletePolicy:    cfg.Opportunities.DeletePolicy,
	}
}

// List applies the filter precedence and returns the matching listings
func (s *opportunityServiceImpl) List(ctx context.Context, filter OpportunityFilter) ([]*models.Opportunity, error) {
	switch {
	case filter.TeacherID != nil:
		return s.opportunityRepo.GetByTeacher(ctx, *filter.TeacherID)
	case filter.Featured:
		return s.opportunityRepo.GetFeatured(ctx)
	default:
		term := strings.TrimSpace(filter.Query)
		if term == "" {
			return s.opportunityRepo.GetAll(ctx)
		}
		return s.opportunityRepo.Search(ctx, term)
	}
}

// GetByID retrieves a single opportunity
func (s *opportunityServiceImpl) GetByID(ctx context.Context, id int64) (*models.Opportunity, error) {
	opp, err := s.opportunityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if opp == nil {
		return nil, apperrors.ErrOpportunityNotFound
	}
	return opp, nil
}

// Create validates and stores a new listing
func (s *opportunityServiceImpl) Create(ctx context.Context, req *dto.CreateOpportunityRequest) (*models.Opportunity, error) {
	if !req.Type.Valid() {
		return nil, apperrors.ErrInvalidOpportunityType
	}

	deadline, err := time.Parse(deadlineLayout, req.Deadline)
	if err != nil {
		return nil, apperrors.NewBadRequestError("deadline must use the YYYY-MM-DD format")
	}

	opp := &models.Opportunity{
		Title:          req.Title,
		Institution:    req.Institution,
		Type:           req.Type,
		Description:    req.Description,
		Deadline:       deadline,
		Amount:         req.Amount,
		Eligibility:    req.Eligibility,
		ApplicationURL: req.ApplicationURL,
		Featured:       req.Featured,
		CreatedBy:      req.CreatedBy,
	}

	if err := s.opportunityRepo.Create(ctx, opp); err != nil {
		return nil, err
	}

	return opp, nil
}

// Update applies a partial update. Only fields present in the request are
// touched; a request with no fields is rejected.
func (s *opportunityServiceImpl) Update(ctx context.Context, id int64, req *dto.UpdateOpportunityRequest) (*models.Opportunity, error) {
	if req.Empty() {
		return nil, apperrors.NewBadRequestError("no fields to update")
	}

	fields, err := s.updateFields(req)
	if err != nil {
		return nil, err
	}

	opp, err := s.opportunityRepo.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if opp == nil {
		return nil, apperrors.ErrOpportunityNotFound
	}

	return opp, nil
}

func (s *opportunityServiceImpl) updateFields(req *dto.UpdateOpportunityRequest) (map[string]interface{}, error) {
	fields := make(map[string]interface{})

	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Institution != nil {
		fields["institution"] = *req.Institution
	}
	if req.Type != nil {
		if !req.Type.Valid() {
			return nil, apperrors.ErrInvalidOpportunityType
		}
		fields["type"] = *req.Type
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Deadline != nil {
		deadline, err := time.Parse(deadlineLayout, *req.Deadline)
		if err != nil {
			return nil, apperrors.NewBadRequestError("deadline must use the YYYY-MM-DD format")
		}
		fields["deadline"] = deadline
	}
	if req.Amount != nil {
		fields["amount"] = *req.Amount
	}
	if req.Eligibility != nil {
		fields["eligibility"] = *req.Eligibility
	}
	if req.ApplicationURL != nil {
		fields["application_url"] = *req.ApplicationURL
	}
	if req.Featured != nil {
		fields["featured"] = *req.Featured
	}

	return fields, nil
}

// Delete removes a listing. Under the restrict policy an opportunity with
// applications is refused; under the cascade policy its applications go
// with it. Deleting an absent listing succeeds, so repeating a delete is
// harmless.
func (s *opportunityServiceImpl) Delete(ctx context.Context, id int64) error {
	opp, err := s.opportunityRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if opp == nil {
		return nil
	}

	if s.deletePolicy == config.DeletePolicyCascade {
		return s.opportunityRepo.DeleteCascade(ctx, id)
	}

	hasApps, err := s.opportunityRepo.HasApplications(ctx, id)
	if err != nil {
		return fmt.Errorf("error checking applications: %w", err)
	}
	if hasApps {
		return apperrors.ErrOpportunityHasApplicants
	}

	return s.opportunityRepo.Delete(ctx, id)
}

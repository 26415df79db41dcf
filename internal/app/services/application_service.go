package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/edaguler/scholarhub/internal/app/models"
	"github.com/edaguler/scholarhub/internal/app/models/dto"
	"github.com/edaguler/scholarhub/internal/pkg/apperrors"
	"github.com/edaguler/scholarhub/internal/pkg/metrics"
)

// applicationStore is the slice of the application repository the service needs
type applicationStore interface {
	Create(ctx context.Context, app *models.Application) error
	GetByID(ctx context.Context, id int64) (*models.Application, error)
	GetByStudentID(ctx context.Context, studentID int64) ([]*models.StudentApplication, error)
	GetAll(ctx context.Context) ([]*models.ReviewApplication, error)
	UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) (*models.Application, error)
}

// opportunityReader resolves the opportunity an application points at
type opportunityReader interface {
	GetByID(ctx context.Context, id int64) (*models.Opportunity, error)
}

// enquiryCounter bumps a teacher's enquiry count when their listing
// receives an application
type enquiryCounter interface {
	IncrementEnquiries(ctx context.Context, userID int64) (*models.TeacherProfile, error)
}

// ApplicationService defines the interface for application operations
type ApplicationService interface {
	Create(ctx context.Context, req *dto.CreateApplicationRequest) (*models.Application, error)
	ListByStudent(ctx context.Context, studentID int64) ([]*models.StudentApplication, error)
	ListAll(ctx context.Context) ([]*models.ReviewApplication, error)
	UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) (*models.Application, error)
}

// applicationServiceImpl implements the ApplicationService interface
type applicationServiceImpl struct {
	applicationRepo applicationStore
	opportunityRepo opportunityReader
	teacherRepo     enquiryCounter
	logger          zerolog.Logger
}

// NewApplicationService creates a new application service instance
func NewApplicationService(
	applicationRepo applicationStore,
	opportunityRepo opportunityReader,
	teacherRepo enquiryCounter,
	logger zerolog.Logger,
) ApplicationService {
	return &applicationServiceImpl{
		applicationRepo: applicationRepo,
		opportunityRepo: opportunityRepo,
		teacherRepo:     teacherRepo,
		logger:          logger,
	}
}

// Create submits an application with status pending. When the listing was
// posted by a teacher, that teacher's enquiry counter is bumped; a failure
// there does not undo the submission.
func (s *applicationServiceImpl) Create(ctx context.Context, req *dto.CreateApplicationRequest) (*models.Application, error) {
	opp, err := s.opportunityRepo.GetByID(ctx, req.OpportunityID)
	if err != nil {
		return nil, err
	}
	if opp == nil {
		return nil, apperrors.ErrOpportunityNotFound
	}

	app := &models.Application{
		StudentID:         req.StudentID,
		OpportunityID:     req.OpportunityID,
		ApplicantName:     req.Name,
		ApplicantEmail:    req.Email,
		ApplicantPhone:    req.Phone,
		ApplicationReason: req.Reason,
	}

	if err := s.applicationRepo.Create(ctx, app); err != nil {
		return nil, err
	}

	metrics.ApplicationsSubmitted.Inc()

	if opp.CreatedBy != nil {
		if _, err := s.teacherRepo.IncrementEnquiries(ctx, *opp.CreatedBy); err != nil {
			s.logger.Warn().Err(err).
				Int64("teacherID", *opp.CreatedBy).
				Int64("applicationID", app.ID).
				Msg("Failed to bump enquiry counter")
		}
	}

	return app, nil
}

// ListByStudent returns a student's applications with listing details attached
func (s *applicationServiceImpl) ListByStudent(ctx context.Context, studentID int64) ([]*models.StudentApplication, error) {
	return s.applicationRepo.GetByStudentID(ctx, studentID)
}

// ListAll returns every application for the reviewer view
func (s *applicationServiceImpl) ListAll(ctx context.Context) ([]*models.ReviewApplication, error) {
	return s.applicationRepo.GetAll(ctx)
}

// UpdateStatus moves an application through its lifecycle. Only pending
// applications can move; accepted, rejected and withdrawn are final.
func (s *applicationServiceImpl) UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) (*models.Application, error) {
	if !status.Valid() {
		return nil, apperrors.ErrInvalidApplicationStatus
	}

	current, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, apperrors.ErrApplicationNotFound
	}

	if current.Status.Terminal() {
		return nil, apperrors.ErrApplicationStatusFinal
	}

	app, err := s.applicationRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("error updating application: %w", err)
	}
	if app == nil {
		return nil, apperrors.ErrApplicationNotFound
	}

	return app, nil
}

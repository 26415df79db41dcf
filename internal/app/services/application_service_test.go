package services_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edaguler/scholarhub/internal/app/models"
	"github.com/edaguler/scholarhub/internal/app/models/dto"
	"github.com/edaguler/scholarhub/internal/app/services"
	"github.com/edaguler/scholarhub/internal/pkg/apperrors"
)

type fakeApplicationRepo struct {
	byID    map[int64]*models.Application
	updated []models.ApplicationStatus
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{byID: make(map[int64]*models.Application)}
}

func (f *fakeApplicationRepo) Create(ctx context.Context, app *models.Application) error {
	app.ID = int64(len(f.byID) + 1)
	app.Status = models.StatusPending
	f.byID[app.ID] = app
	return nil
}

func (f *fakeApplicationRepo) GetByID(ctx context.Context, id int64) (*models.Application, error) {
	return f.byID[id], nil
}

func (f *fakeApplicationRepo) GetByStudentID(ctx context.Context, studentID int64) ([]*models.StudentApplication, error) {
	return nil, nil
}

func (f *fakeApplicationRepo) GetAll(ctx context.Context) ([]*models.ReviewApplication, error) {
	return nil, nil
}

func (f *fakeApplicationRepo) UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) (*models.Application, error) {
	app := f.byID[id]
	if app == nil {
		return nil, nil
	}
	app.Status = status
	f.updated = append(f.updated, status)
	return app, nil
}

type fakeOpportunityReader struct {
	byID map[int64]*models.Opportunity
}

func (f *fakeOpportunityReader) GetByID(ctx context.Context, id int64) (*models.Opportunity, error) {
	return f.byID[id], nil
}

type fakeEnquiryCounter struct {
	bumped []int64
}

func (f *fakeEnquiryCounter) IncrementEnquiries(ctx context.Context, userID int64) (*models.TeacherProfile, error) {
	f.bumped = append(f.bumped, userID)
	return &models.TeacherProfile{UserID: userID}, nil
}

func validApplicationRequest() *dto.CreateApplicationRequest {
	return &dto.CreateApplicationRequest{
		StudentID:     3,
		OpportunityID: 1,
		Name:          "Ada Lovelace",
		Email:         "ada@example.com",
		Phone:         "+1-555-0100",
		Reason:        "Strong interest in the program",
	}
}

func TestCreateApplicationStartsPending(t *testing.T) {
	appRepo := newFakeApplicationRepo()
	oppReader := &fakeOpportunityReader{byID: map[int64]*models.Opportunity{1: {ID: 1}}}
	counter := &fakeEnquiryCounter{}
	svc := services.NewApplicationService(appRepo, oppReader, counter, zerolog.Nop())

	app, err := svc.Create(context.Background(), validApplicationRequest())
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, app.Status)
	assert.Empty(t, counter.bumped, "listings without an owner must not bump anyone")
}

func TestCreateApplicationBumpsTeacherEnquiries(t *testing.T) {
	teacherID := int64(9)
	appRepo := newFakeApplicationRepo()
	oppReader := &fakeOpportunityReader{byID: map[int64]*models.Opportunity{1: {ID: 1, CreatedBy: &teacherID}}}
	counter := &fakeEnquiryCounter{}
	svc := services.NewApplicationService(appRepo, oppReader, counter, zerolog.Nop())

	_, err := svc.Create(context.Background(), validApplicationRequest())
	require.NoError(t, err)
	assert.Equal(t, []int64{teacherID}, counter.bumped)
}

func TestCreateApplicationMissingOpportunity(t *testing.T) {
	appRepo := newFakeApplicationRepo()
	oppReader := &fakeOpportunityReader{byID: map[int64]*models.Opportunity{}}
	svc := services.NewApplicationService(appRepo, oppReader, &fakeEnquiryCounter{}, zerolog.Nop())

	_, err := svc.Create(context.Background(), validApplicationRequest())
	assert.ErrorIs(t, err, apperrors.ErrOpportunityNotFound)
}

func TestUpdateStatusTransitions(t *testing.T) {
	appRepo := newFakeApplicationRepo()
	appRepo.byID[1] = &models.Application{ID: 1, Status: models.StatusPending}
	svc := services.NewApplicationService(appRepo, &fakeOpportunityReader{}, &fakeEnquiryCounter{}, zerolog.Nop())
	ctx := context.Background()

	app, err := svc.UpdateStatus(ctx, 1, models.StatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, app.Status)

	// Once decided, no further transitions are allowed, not even back to pending
	_, err = svc.UpdateStatus(ctx, 1, models.StatusRejected)
	assert.ErrorIs(t, err, apperrors.ErrApplicationStatusFinal)

	_, err = svc.UpdateStatus(ctx, 1, models.StatusPending)
	assert.ErrorIs(t, err, apperrors.ErrApplicationStatusFinal)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	appRepo := newFakeApplicationRepo()
	appRepo.byID[1] = &models.Application{ID: 1, Status: models.StatusPending}
	svc := services.NewApplicationService(appRepo, &fakeOpportunityReader{}, &fakeEnquiryCounter{}, zerolog.Nop())

	_, err := svc.UpdateStatus(context.Background(), 1, "approved")
	assert.ErrorIs(t, err, apperrors.ErrInvalidApplicationStatus)
}

func TestUpdateStatusMissingApplication(t *testing.T) {
	svc := services.NewApplicationService(newFakeApplicationRepo(), &fakeOpportunityReader{}, &fakeEnquiryCounter{}, zerolog.Nop())

	_, err := svc.UpdateStatus(context.Background(), 77, models.StatusAccepted)
	assert.ErrorIs(t, err, apperrors.ErrApplicationNotFound)
}

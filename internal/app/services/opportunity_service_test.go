package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edaguler/scholarhub/internal/app/models"
	"github.com/edaguler/scholarhub/internal/app/models/dto"
	"github.com/edaguler/scholarhub/internal/app/services"
	"github.com/edaguler/scholarhub/internal/config"
	"github.com/edaguler/scholarhub/internal/pkg/apperrors"
)

// fakeOpportunityRepo records which listing query ran and serves canned rows
type fakeOpportunityRepo struct {
	lastCall     string
	lastTerm     string
	lastTeacher  int64
	byID         map[int64]*models.Opportunity
	hasApps      bool
	deleted      []int64
	cascaded     []int64
	updateFields map[string]interface{}
}

func newFakeOpportunityRepo() *fakeOpportunityRepo {
	return &fakeOpportunityRepo{byID: make(map[int64]*models.Opportunity)}
}

func (f *fakeOpportunityRepo) GetAll(ctx context.Context) ([]*models.Opportunity, error) {
	f.lastCall = "all"
	return nil, nil
}

func (f *fakeOpportunityRepo) GetFeatured(ctx context.Context) ([]*models.Opportunity, error) {
	f.lastCall = "featured"
	return nil, nil
}

func (f *fakeOpportunityRepo) Search(ctx context.Context, term string) ([]*models.Opportunity, error) {
	f.lastCall = "search"
	f.lastTerm = term
	return nil, nil
}

func (f *fakeOpportunityRepo) GetByTeacher(ctx context.Context, teacherID int64) ([]*models.Opportunity, error) {
	f.lastCall = "teacher"
	f.lastTeacher = teacherID
	return nil, nil
}

func (f *fakeOpportunityRepo) GetByID(ctx context.Context, id int64) (*models.Opportunity, error) {
	return f.byID[id], nil
}

func (f *fakeOpportunityRepo) Create(ctx context.Context, opp *models.Opportunity) error {
	opp.ID = 1
	f.byID[opp.ID] = opp
	return nil
}

func (f *fakeOpportunityRepo) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Opportunity, error) {
	f.updateFields = fields
	return f.byID[id], nil
}

func (f *fakeOpportunityRepo) HasApplications(ctx context.Context, id int64) (bool, error) {
	return f.hasApps, nil
}

func (f *fakeOpportunityRepo) Delete(ctx context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	delete(f.byID, id)
	return nil
}

func (f *fakeOpportunityRepo) DeleteCascade(ctx context.Context, id int64) error {
	f.cascaded = append(f.cascaded, id)
	delete(f.byID, id)
	return nil
}

func restrictConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Opportunities.DeletePolicy = config.DeletePolicyRestrict
	return cfg
}

func cascadeConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Opportunities.DeletePolicy = config.DeletePolicyCascade
	return cfg
}

func TestListFilterPrecedence(t *testing.T) {
	repo := newFakeOpportunityRepo()
	svc := services.NewOpportunityService(repo, restrictConfig())
	ctx := context.Background()

	teacherID := int64(7)

	// teacherId wins even when the other filters are set
	_, err := svc.List(ctx, services.OpportunityFilter{Query: "math", Featured: true, TeacherID: &teacherID})
	require.NoError(t, err)
	assert.Equal(t, "teacher", repo.lastCall)
	assert.Equal(t, teacherID, repo.lastTeacher)

	// featured wins over q
	_, err = svc.List(ctx, services.OpportunityFilter{Query: "math", Featured: true})
	require.NoError(t, err)
	assert.Equal(t, "featured", repo.lastCall)

	_, err = svc.List(ctx, services.OpportunityFilter{Query: "math"})
	require.NoError(t, err)
	assert.Equal(t, "search", repo.lastCall)
	assert.Equal(t, "math", repo.lastTerm)
}

func TestListBlankSearchFallsBackToAll(t *testing.T) {
	repo := newFakeOpportunityRepo()
	svc := services.NewOpportunityService(repo, restrictConfig())

	_, err := svc.List(context.Background(), services.OpportunityFilter{Query: "   "})
	require.NoError(t, err)
	assert.Equal(t, "all", repo.lastCall)
}

func TestGetByIDNotFound(t *testing.T) {
	repo := newFakeOpportunityRepo()
	svc := services.NewOpportunityService(repo, restrictConfig())

	_, err := svc.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrOpportunityNotFound)
}

func TestCreateParsesDeadline(t *testing.T) {
	repo := newFakeOpportunityRepo()
	svc := services.NewOpportunityService(repo, restrictConfig())

	opp, err := svc.Create(context.Background(), &dto.CreateOpportunityRequest{
		Title:       "STEM Scholarship",
		Institution: "Tech University",
		Type:        models.TypeScholarship,
		Deadline:    "2026-12-01",
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC), opp.Deadline)
}

func TestCreateRejectsBadInput(t *testing.T) {
	repo := newFakeOpportunityRepo()
	svc := services.NewOpportunityService(repo, restrictConfig())
	ctx := context.Background()

	_, err := svc.Create(ctx, &dto.CreateOpportunityRequest{
		Title: "x", Institution: "y", Type: "internship", Deadline: "2026-12-01",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidOpportunityType)

	_, err = svc.Create(ctx, &dto.CreateOpportunityRequest{
		Title: "x", Institution: "y", Type: models.TypeProgram, Deadline: "01/12/2026",
	})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestUpdateEmptyRequestRejected(t *testing.T) {
	repo := newFakeOpportunityRepo()
	svc := services.NewOpportunityService(repo, restrictConfig())

	_, err := svc.Update(context.Background(), 1, &dto.UpdateOpportunityRequest{})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestUpdateBuildsFieldMap(t *testing.T) {
	repo := newFakeOpportunityRepo()
	repo.byID[1] = &models.Opportunity{ID: 1}
	svc := services.NewOpportunityService(repo, restrictConfig())

	title := "Updated title"
	featured := true
	_, err := svc.Update(context.Background(), 1, &dto.UpdateOpportunityRequest{
		Title:    &title,
		Featured: &featured,
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]interface{}{"title": title, "featured": true}, repo.updateFields)
}

func TestDeleteRestrictPolicy(t *testing.T) {
	repo := newFakeOpportunityRepo()
	repo.byID[1] = &models.Opportunity{ID: 1}
	repo.hasApps = true
	svc := services.NewOpportunityService(repo, restrictConfig())

	err := svc.Delete(context.Background(), 1)
	assert.ErrorIs(t, err, apperrors.ErrOpportunityHasApplicants)
	assert.Empty(t, repo.deleted)

	repo.hasApps = false
	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.Equal(t, []int64{1}, repo.deleted)
}

func TestDeleteCascadePolicy(t *testing.T) {
	repo := newFakeOpportunityRepo()
	repo.byID[1] = &models.Opportunity{ID: 1}
	repo.hasApps = true
	svc := services.NewOpportunityService(repo, cascadeConfig())

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.Equal(t, []int64{1}, repo.cascaded)
	assert.Empty(t, repo.deleted)
}

func TestDeleteIsIdempotent(t *testing.T) {
	repo := newFakeOpportunityRepo()
	repo.byID[1] = &models.Opportunity{ID: 1}
	svc := services.NewOpportunityService(repo, restrictConfig())
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, 1))

	// Repeating the delete, or deleting an id that never existed, succeeds
	// without touching the store again
	require.NoError(t, svc.Delete(ctx, 1))
	require.NoError(t, svc.Delete(ctx, 9))
	assert.Equal(t, []int64{1}, repo.deleted)
}

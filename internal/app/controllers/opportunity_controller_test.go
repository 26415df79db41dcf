package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edaguler/scholarhub/internal/app/controllers"
	"github.com/edaguler/scholarhub/internal/app/models"
	"github.com/edaguler/scholarhub/internal/app/models/dto"
	"github.com/edaguler/scholarhub/internal/app/services"
	"github.com/edaguler/scholarhub/internal/pkg/apperrors"
)

type fakeOpportunityService struct {
	lastFilter services.OpportunityFilter
	byID       map[int64]*models.Opportunity
}

func (f *fakeOpportunityService) List(ctx context.Context, filter services.OpportunityFilter) ([]*models.Opportunity, error) {
	f.lastFilter = filter
	return []*models.Opportunity{}, nil
}

func (f *fakeOpportunityService) GetByID(ctx context.Context, id int64) (*models.Opportunity, error) {
	if opp := f.byID[id]; opp != nil {
		return opp, nil
	}
	return nil, apperrors.ErrOpportunityNotFound
}

func (f *fakeOpportunityService) Create(ctx context.Context, req *dto.CreateOpportunityRequest) (*models.Opportunity, error) {
	return &models.Opportunity{ID: 1, Title: req.Title}, nil
}

func (f *fakeOpportunityService) Update(ctx context.Context, id int64, req *dto.UpdateOpportunityRequest) (*models.Opportunity, error) {
	return nil, apperrors.ErrOpportunityNotFound
}

func (f *fakeOpportunityService) Delete(ctx context.Context, id int64) error {
	return apperrors.ErrOpportunityHasApplicants
}

func opportunityRouter(svc *fakeOpportunityService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := controllers.NewOpportunityController(svc)
	group := router.Group("/api/v1/opportunities")
	group.GET("", controller.List)
	group.GET("/:id", controller.GetByID)
	group.DELETE("/:id", controller.Delete)
	return router
}

func TestListPassesFilters(t *testing.T) {
	svc := &fakeOpportunityService{}
	router := opportunityRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/opportunities?q=physics&featured=true&teacherId=12", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "physics", svc.lastFilter.Query)
	assert.True(t, svc.lastFilter.Featured)
	require.NotNil(t, svc.lastFilter.TeacherID)
	assert.Equal(t, int64(12), *svc.lastFilter.TeacherID)
}

func TestListRejectsBadTeacherID(t *testing.T) {
	router := opportunityRouter(&fakeOpportunityService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/opportunities?teacherId=abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetOpportunityNotFound(t *testing.T) {
	router := opportunityRouter(&fakeOpportunityService{byID: map[int64]*models.Opportunity{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/opportunities/99", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrorCodeResourceNotFound, resp.Error.Code)
}

func TestGetOpportunityBadID(t *testing.T) {
	router := opportunityRouter(&fakeOpportunityService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/opportunities/not-a-number", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteWithApplicationsConflicts(t *testing.T) {
	router := opportunityRouter(&fakeOpportunityService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/opportunities/3", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrorCodeResourceConflict, resp.Error.Code)
}

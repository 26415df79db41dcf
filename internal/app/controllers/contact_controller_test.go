package controllers_test

import (
	"bytes"
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
)

type fakeContactService struct {
	submitted []*dto.ContactRequest
}

func (f *fakeContactService) Submit(ctx context.Context, req *dto.ContactRequest) (*models.ContactMessage, error) {
	f.submitted = append(f.submitted, req)
	return &models.ContactMessage{
		ID:      1,
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}, nil
}

func (f *fakeContactService) List(ctx context.Context) ([]*models.ContactMessage, error) {
	return []*models.ContactMessage{{ID: 1, Name: "Someone"}}, nil
}

func contactRouter(svc *fakeContactService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := controllers.NewContactController(svc)
	router.POST("/api/v1/contact", controller.Submit)
	router.GET("/api/v1/contact", controller.List)
	return router
}

func TestSubmitContactMessage(t *testing.T) {
	svc := &fakeContactService{}
	router := contactRouter(svc)

	body, _ := json.Marshal(map[string]string{
		"name":    "Jordan",
		"email":   "jordan@example.com",
		"subject": "Question about deadlines",
		"message": "Is the merit scholarship still open?",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, svc.submitted, 1)

	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Error)
	assert.False(t, resp.Timestamp.IsZero())
}

func TestSubmitContactMessageValidation(t *testing.T) {
	svc := &fakeContactService{}
	router := contactRouter(svc)

	// Missing subject and message
	body, _ := json.Marshal(map[string]string{
		"name":  "Jordan",
		"email": "jordan@example.com",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, svc.submitted)

	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrorCodeValidationFailed, resp.Error.Code)
}

func TestListContactMessages(t *testing.T) {
	router := contactRouter(&fakeContactService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/contact", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Data)
}

package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edaguler/scholarhub/internal/app/models"
	"github.com/edaguler/scholarhub/internal/app/models/dto"
	"github.com/edaguler/scholarhub/internal/app/services"
	"github.com/edaguler/scholarhub/internal/pkg/apperrors"
)

type fakeStudentProfileRepo struct {
	byUser map[int64]*models.StudentProfile
}

func (f *fakeStudentProfileRepo) GetByUserID(ctx context.Context, userID int64) (*models.StudentProfile, error) {
	return f.byUser[userID], nil
}

func (f *fakeStudentProfileRepo) Update(ctx context.Context, userID int64, req *dto.UpdateStudentProfileRequest) (*models.StudentProfile, error) {
	profile := f.byUser[userID]
	if profile == nil {
		return nil, nil
	}
	if req.School != nil {
		profile.School = *req.School
	}
	if req.Grade != nil {
		profile.Grade = *req.Grade
	}
	if req.Interests != nil {
		profile.Interests = *req.Interests
	}
	if req.ScholarshipStatus != nil {
		profile.ScholarshipStatus = *req.ScholarshipStatus
	}
	return profile, nil
}

type fakeTeacherProfileRepo struct {
	byUser map[int64]*models.TeacherProfile
}

func (f *fakeTeacherProfileRepo) GetByUserID(ctx context.Context, userID int64) (*models.TeacherProfile, error) {
	return f.byUser[userID], nil
}

func (f *fakeTeacherProfileRepo) Update(ctx context.Context, userID int64, req *dto.UpdateTeacherProfileRequest) (*models.TeacherProfile, error) {
	profile := f.byUser[userID]
	if profile == nil {
		return nil, nil
	}
	if req.School != nil {
		profile.School = *req.School
	}
	if req.Subject != nil {
		profile.Subject = *req.Subject
	}
	return profile, nil
}

func TestStudentProfileNotFound(t *testing.T) {
	svc := services.NewProfileService(
		&fakeStudentProfileRepo{byUser: map[int64]*models.StudentProfile{}},
		&fakeTeacherProfileRepo{byUser: map[int64]*models.TeacherProfile{}},
	)

	_, err := svc.GetStudentProfile(context.Background(), 5)
	assert.ErrorIs(t, err, apperrors.ErrProfileNotFound)

	school := "Central High"
	_, err = svc.UpdateStudentProfile(context.Background(), 5, &dto.UpdateStudentProfileRequest{School: &school})
	assert.ErrorIs(t, err, apperrors.ErrProfileNotFound)
}

func TestUpdateStudentProfilePartial(t *testing.T) {
	studentRepo := &fakeStudentProfileRepo{byUser: map[int64]*models.StudentProfile{
		4: {UserID: 4, School: "Old School", Grade: "11"},
	}}
	svc := services.NewProfileService(studentRepo, &fakeTeacherProfileRepo{byUser: map[int64]*models.TeacherProfile{}})

	school := "New School"
	profile, err := svc.UpdateStudentProfile(context.Background(), 4, &dto.UpdateStudentProfileRequest{School: &school})
	require.NoError(t, err)
	assert.Equal(t, "New School", profile.School)
	assert.Equal(t, "11", profile.Grade, "untouched fields must survive a partial update")
}

func TestUpdateStudentProfileValidation(t *testing.T) {
	svc := services.NewProfileService(
		&fakeStudentProfileRepo{byUser: map[int64]*models.StudentProfile{4: {UserID: 4}}},
		&fakeTeacherProfileRepo{byUser: map[int64]*models.TeacherProfile{}},
	)
	ctx := context.Background()

	_, err := svc.UpdateStudentProfile(ctx, 4, &dto.UpdateStudentProfileRequest{})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	bad := models.ScholarshipStatus("granted")
	_, err = svc.UpdateStudentProfile(ctx, 4, &dto.UpdateStudentProfileRequest{ScholarshipStatus: &bad})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestUpdateTeacherProfile(t *testing.T) {
	teacherRepo := &fakeTeacherProfileRepo{byUser: map[int64]*models.TeacherProfile{
		8: {UserID: 8, StudentEnquiries: 3},
	}}
	svc := services.NewProfileService(&fakeStudentProfileRepo{byUser: map[int64]*models.StudentProfile{}}, teacherRepo)

	subject := "Physics"
	profile, err := svc.UpdateTeacherProfile(context.Background(), 8, &dto.UpdateTeacherProfileRequest{Subject: &subject})
	require.NoError(t, err)
	assert.Equal(t, "Physics", profile.Subject)
	assert.Equal(t, 3, profile.StudentEnquiries)
}

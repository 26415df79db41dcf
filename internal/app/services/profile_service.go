package services

import (
	"context"

	"github.com/edaguler/scholarhub/internal/app/models"
	"github.com/edaguler/scholarhub/internal/app/models/dto"
	"github.com/edaguler/scholarhub/internal/pkg/apperrors"
)

// studentProfileStore is the slice of the student profile repository the
// service needs
type studentProfileStore interface {
	GetByUserID(ctx context.Context, userID int64) (*models.StudentProfile, error)
	Update(ctx context.Context, userID int64, req *dto.UpdateStudentProfileRequest) (*models.StudentProfile, error)
}

// teacherProfileStore is the slice of the teacher profile repository the
// service needs
type teacherProfileStore interface {
	GetByUserID(ctx context.Context, userID int64) (*models.TeacherProfile, error)
	Update(ctx context.Context, userID int64, req *dto.UpdateTeacherProfileRequest) (*models.TeacherProfile, error)
}

// ProfileService defines the interface for profile operations
type ProfileService interface {
	GetStudentProfile(ctx context.Context, userID int64) (*models.StudentProfile, error)
	UpdateStudentProfile(ctx context.Context, userID int64, req *dto.UpdateStudentProfileRequest) (*models.StudentProfile, error)
	GetTeacherProfile(ctx context.Context, userID int64) (*models.TeacherProfile, error)
	UpdateTeacherProfile(ctx context.Context, userID int64, req *dto.UpdateTeacherProfileRequest) (*models.TeacherProfile, error)
}

// profileServiceImpl implements the ProfileService interface
type profileServiceImpl struct {
	studentRepo studentProfileStore
	teacherRepo teacherProfileStore
}

// NewProfileService creates a new profile service instance
func NewProfileService(studentRepo studentProfileStore, teacherRepo teacherProfileStore) ProfileService {
	return &profileServiceImpl{
		studentRepo: studentRepo,
		teacherRepo: teacherRepo,
	}
}

// GetStudentProfile retrieves the student profile owned by a user
func (s *profileServiceImpl) GetStudentProfile(ctx context.Context, userID int64) (*models.StudentProfile, error) {
	profile, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperrors.ErrProfileNotFound
	}
	return profile, nil
}

// UpdateStudentProfile applies a partial update to a student profile
func (s *profileServiceImpl) UpdateStudentProfile(ctx context.Context, userID int64, req *dto.UpdateStudentProfileRequest) (*models.StudentProfile, error) {
	if req.Empty() {
		return nil, apperrors.NewBadRequestError("no fields to update")
	}

	if req.ScholarshipStatus != nil && !req.ScholarshipStatus.Valid() {
		return nil, apperrors.NewBadRequestError("invalid scholarship status")
	}

	profile, err := s.studentRepo.Update(ctx, userID, req)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperrors.ErrProfileNotFound
	}
	return profile, nil
}

// GetTeacherProfile retrieves the teacher profile owned by a user
func (s *profileServiceImpl) GetTeacherProfile(ctx context.Context, userID int64) (*models.TeacherProfile, error) {
	profile, err := s.teacherRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperrors.ErrProfileNotFound
	}
	return profile, nil
}

// UpdateTeacherProfile applies a partial update to a teacher profile
func (s *profileServiceImpl) UpdateTeacherProfile(ctx context.Context, userID int64, req *dto.UpdateTeacherProfileRequest) (*models.TeacherProfile, error) {
	if req.Empty() {
		return nil, apperrors.NewBadRequestError("no fields to update")
	}

	profile, err := s.teacherRepo.Update(ctx, userID, req)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperrors.ErrProfileNotFound
	}
	return profile, nil
}

package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edaguler/scholarhub/internal/app/models"
	"github.com/edaguler/scholarhub/internal/app/models/dto"
)

// StudentProfileRepository handles database operations for student profiles
type StudentProfileRepository struct {
	db *pgxpool.Pool
}

// NewStudentProfileRepository creates a new student profile repository
func NewStudentProfileRepository(pool *pgxpool.Pool) *StudentProfileRepository {
	return &StudentProfileRepository{
		db: pool,
	}
}

func scanStudentProfile(row pgx.Row) (*models.StudentProfile, error) {
	var profile models.StudentProfile
	err := row.Scan(
		&profile.ID,
		&profile.UserID,
		&profile.School,
		&profile.Grade,
		&profile.Interests,
		&profile.ScholarshipStatus,
		&profile.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetByUserID retrieves the profile owned by a user
func (r *StudentProfileRepository) GetByUserID(ctx context.Context, userID int64) (*models.StudentProfile, error) {
	query := `
		SELECT id, user_id, school, grade, interests, scholarship_status, created_at
		FROM student_profiles
		WHERE user_id = $1
	`

	profile, err := scanStudentProfile(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving student profile: %w", err)
	}

	return profile, nil
}

// Update applies a partial update built from the provided fields only.
// A request with no recognized fields is a no-op returning nil.
func (r *StudentProfileRepository) Update(ctx context.Context, userID int64, req *dto.UpdateStudentProfileRequest) (*models.StudentProfile, error) {
	var updates []string
	var values []interface{}
	paramCount := 1

	if req.School != nil {
		updates = append(updates, fmt.Sprintf("school = $%d", paramCount))
		values = append(values, *req.School)
		paramCount++
	}
	if req.Grade != nil {
		updates = append(updates, fmt.Sprintf("grade = $%d", paramCount))
		values = append(values, *req.Grade)
		paramCount++
	}
	if req.Interests != nil {
		updates = append(updates, fmt.Sprintf("interests = $%d", paramCount))
		values = append(values, *req.Interests)
		paramCount++
	}
	if req.ScholarshipStatus != nil {
		updates = append(updates, fmt.Sprintf("scholarship_status = $%d", paramCount))
		values = append(values, *req.ScholarshipStatus)
		paramCount++
	}

	if len(updates) == 0 {
		return nil, nil
	}

	values = append(values, userID)
	query := fmt.Sprintf(`
		UPDATE student_profiles SET %s WHERE user_id = $%d
		RETURNING id, user_id, school, grade, interests, scholarship_status, created_at`,
		strings.Join(updates, ", "), paramCount)

	profile, err := scanStudentProfile(r.db.QueryRow(ctx, query, values...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error updating student profile: %w", err)
	}

	return profile, nil
}

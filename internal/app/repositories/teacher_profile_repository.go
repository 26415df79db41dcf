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

// TeacherProfileRepository handles database operations for teacher profiles
type TeacherProfileRepository struct {
	db *pgxpool.Pool
}

// NewTeacherProfileRepository creates a new teacher profile repository
func NewTeacherProfileRepository(pool *pgxpool.Pool) *TeacherProfileRepository {
	return &TeacherProfileRepository{
		db: pool,
	}
}

func scanTeacherProfile(row pgx.Row) (*models.TeacherProfile, error) {
	var profile models.TeacherProfile
	err := row.Scan(
		&profile.ID,
		&profile.UserID,
		&profile.School,
		&profile.Subject,
		&profile.StudentEnquiries,
		&profile.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetByUserID retrieves the profile owned by a user
func (r *TeacherProfileRepository) GetByUserID(ctx context.Context, userID int64) (*models.TeacherProfile, error) {
	query := `
		SELECT id, user_id, school, subject, student_enquiries, created_at
		FROM teacher_profiles
		WHERE user_id = $1
	`

	profile, err := scanTeacherProfile(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving teacher profile: %w", err)
	}

	return profile, nil
}

// Update applies a partial update built from the provided fields only.
// A request with no recognized fields is a no-op returning nil.
func (r *TeacherProfileRepository) Update(ctx context.Context, userID int64, req *dto.UpdateTeacherProfileRequest) (*models.TeacherProfile, error) {
	var updates []string
	var values []interface{}
	paramCount := 1

	if req.School != nil {
		updates = append(updates, fmt.Sprintf("school = $%d", paramCount))
		values = append(values, *req.School)
		paramCount++
	}
	if req.Subject != nil {
		updates = append(updates, fmt.Sprintf("subject = $%d", paramCount))
		values = append(values, *req.Subject)
		paramCount++
	}

	if len(updates) == 0 {
		return nil, nil
	}

	values = append(values, userID)
	query := fmt.Sprintf(`
		UPDATE teacher_profiles SET %s WHERE user_id = $%d
		RETURNING id, user_id, school, subject, student_enquiries, created_at`,
		strings.Join(updates, ", "), paramCount)

	profile, err := scanTeacherProfile(r.db.QueryRow(ctx, query, values...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error updating teacher profile: %w", err)
	}

	return profile, nil
}

// IncrementEnquiries bumps the enquiry counter in a single atomic statement
func (r *TeacherProfileRepository) IncrementEnquiries(ctx context.Context, userID int64) (*models.TeacherProfile, error) {
	query := `
		UPDATE teacher_profiles
		SET student_enquiries = student_enquiries + 1
		WHERE user_id = $1
		RETURNING id, user_id, school, subject, student_enquiries, created_at
	`

	profile, err := scanTeacherProfile(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error incrementing enquiries: %w", err)
	}

	return profile, nil
}

package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edaguler/scholarhub/internal/app/models"
	"github.com/edaguler/scholarhub/internal/pkg/apperrors"
	"github.com/edaguler/scholarhub/internal/pkg/dberrors"
)

const applicationColumns = "id, student_id, opportunity_id, status, applied_at, updated_at, applicant_name, applicant_email, applicant_phone, application_reason"

// ApplicationRepository handles database operations for student applications
type ApplicationRepository struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(pool *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{
		db: pool,
	}
}

func scanApplication(row pgx.Row) (*models.Application, error) {
	var app models.Application
	err := row.Scan(
		&app.ID,
		&app.StudentID,
		&app.OpportunityID,
		&app.Status,
		&app.AppliedAt,
		&app.UpdatedAt,
		&app.ApplicantName,
		&app.ApplicantEmail,
		&app.ApplicantPhone,
		&app.ApplicationReason,
	)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// Create inserts an application with status fixed to pending and the
// applicant details snapshotted on the row.
func (r *ApplicationRepository) Create(ctx context.Context, app *models.Application) error {
	query := fmt.Sprintf(`
		INSERT INTO student_applications (student_id, opportunity_id, status, applicant_name, applicant_email, applicant_phone, application_reason)
		VALUES ($1, $2, 'pending', $3, $4, $5, $6)
		RETURNING %s`, applicationColumns)

	created, err := scanApplication(r.db.QueryRow(ctx, query,
		app.StudentID, app.OpportunityID,
		app.ApplicantName, app.ApplicantEmail, app.ApplicantPhone, app.ApplicationReason))
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewBadRequestError("student or opportunity does not exist")
		}
		return fmt.Errorf("error creating application: %w", err)
	}

	*app = *created
	return nil
}

// GetByID retrieves an application by ID
func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) (*models.Application, error) {
	query := fmt.Sprintf(`SELECT %s FROM student_applications WHERE id = $1`, applicationColumns)

	app, err := scanApplication(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving application: %w", err)
	}

	return app, nil
}

// GetByStudentID retrieves a student's applications joined with the
// opportunity columns the dashboard renders, newest submission first.
func (r *ApplicationRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*models.StudentApplication, error) {
	query := `
		SELECT sa.id, sa.student_id, sa.opportunity_id, sa.status, sa.applied_at, sa.updated_at,
		       sa.applicant_name, sa.applicant_email, sa.applicant_phone, sa.application_reason,
		       o.title, o.institution, o.type, o.deadline, o.amount
		FROM student_applications sa
		JOIN opportunities o ON sa.opportunity_id = o.id
		WHERE sa.student_id = $1
		ORDER BY sa.applied_at DESC
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []*models.StudentApplication
	for rows.Next() {
		var app models.StudentApplication
		if err := rows.Scan(
			&app.ID,
			&app.StudentID,
			&app.OpportunityID,
			&app.Status,
			&app.AppliedAt,
			&app.UpdatedAt,
			&app.ApplicantName,
			&app.ApplicantEmail,
			&app.ApplicantPhone,
			&app.ApplicationReason,
			&app.Title,
			&app.Institution,
			&app.Type,
			&app.Deadline,
			&app.Amount,
		); err != nil {
			return nil, err
		}
		applications = append(applications, &app)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return applications, nil
}

// GetAll retrieves every application joined with opportunity and student
// columns for the reviewer listing, newest submission first.
func (r *ApplicationRepository) GetAll(ctx context.Context) ([]*models.ReviewApplication, error) {
	query := `
		SELECT sa.id, sa.student_id, sa.opportunity_id, sa.status, sa.applied_at, sa.updated_at,
		       sa.applicant_name, sa.applicant_email, sa.applicant_phone, sa.application_reason,
		       o.title, o.institution, u.name AS student_name, u.email AS student_email
		FROM student_applications sa
		JOIN opportunities o ON sa.opportunity_id = o.id
		JOIN users u ON sa.student_id = u.id
		ORDER BY sa.applied_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []*models.ReviewApplication
	for rows.Next() {
		var app models.ReviewApplication
		if err := rows.Scan(
			&app.ID,
			&app.StudentID,
			&app.OpportunityID,
			&app.Status,
			&app.AppliedAt,
			&app.UpdatedAt,
			&app.ApplicantName,
			&app.ApplicantEmail,
			&app.ApplicantPhone,
			&app.ApplicationReason,
			&app.Title,
			&app.Institution,
			&app.StudentName,
			&app.StudentEmail,
		); err != nil {
			return nil, err
		}
		applications = append(applications, &app)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return applications, nil
}

// UpdateStatus sets the status and refreshes updated_at
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) (*models.Application, error) {
	query := fmt.Sprintf(`
		UPDATE student_applications
		SET status = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
		RETURNING %s`, applicationColumns)

	app, err := scanApplication(r.db.QueryRow(ctx, query, status, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error updating application status: %w", err)
	}

	return app, nil
}

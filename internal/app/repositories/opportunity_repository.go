package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edaguler/scholarhub/internal/app/models"
	"github.com/edaguler/scholarhub/internal/db"
)

const opportunityColumns = "id, title, institution, type, description, deadline, amount, eligibility, application_url, featured, created_by, created_at"

// opportunityMutableColumns is the allow-list for partial updates; anything
// else in a field map is rejected.
var opportunityMutableColumns = map[string]bool{
	"title":           true,
	"institution":     true,
	"type":            true,
	"description":     true,
	"deadline":        true,
	"amount":          true,
	"eligibility":     true,
	"application_url": true,
	"featured":        true,
}

// OpportunityRepository handles database operations for opportunities
type OpportunityRepository struct {
	db *pgxpool.Pool
}

// NewOpportunityRepository creates a new opportunity repository
func NewOpportunityRepository(pool *pgxpool.Pool) *OpportunityRepository {
	return &OpportunityRepository{
		db: pool,
	}
}

func scanOpportunity(row pgx.Row) (*models.Opportunity, error) {
	var opp models.Opportunity
	err := row.Scan(
		&opp.ID,
		&opp.Title,
		&opp.Institution,
		&opp.Type,
		&opp.Description,
		&opp.Deadline,
		&opp.Amount,
		&opp.Eligibility,
		&opp.ApplicationURL,
		&opp.Featured,
		&opp.CreatedBy,
		&opp.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &opp, nil
}

func (r *OpportunityRepository) queryList(ctx context.Context, query string, args ...interface{}) ([]*models.Opportunity, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var opportunities []*models.Opportunity
	for rows.Next() {
		opp, err := scanOpportunity(rows)
		if err != nil {
			return nil, err
		}
		opportunities = append(opportunities, opp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return opportunities, nil
}

// GetAll retrieves every opportunity, featured rows first, newest within
// each group. This ordering is what the front page relies on.
func (r *OpportunityRepository) GetAll(ctx context.Context) ([]*models.Opportunity, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM opportunities
		ORDER BY featured DESC, created_at DESC`, opportunityColumns)

	return r.queryList(ctx, query)
}

// GetFeatured retrieves promoted opportunities, newest first
func (r *OpportunityRepository) GetFeatured(ctx context.Context) ([]*models.Opportunity, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM opportunities
		WHERE featured = true
		ORDER BY created_at DESC`, opportunityColumns)

	return r.queryList(ctx, query)
}

// Search matches the term case-insensitively against title, institution and
// description, keeping the GetAll ordering.
func (r *OpportunityRepository) Search(ctx context.Context, term string) ([]*models.Opportunity, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM opportunities
		WHERE title ILIKE $1 OR institution ILIKE $1 OR description ILIKE $1
		ORDER BY featured DESC, created_at DESC`, opportunityColumns)

	return r.queryList(ctx, query, "%"+term+"%")
}

// GetByTeacher retrieves opportunities posted by a teacher, newest first
func (r *OpportunityRepository) GetByTeacher(ctx context.Context, teacherID int64) ([]*models.Opportunity, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM opportunities
		WHERE created_by = $1
		ORDER BY created_at DESC`, opportunityColumns)

	return r.queryList(ctx, query, teacherID)
}

// GetByID retrieves an opportunity by ID
func (r *OpportunityRepository) GetByID(ctx context.Context, id int64) (*models.Opportunity, error) {
	query := fmt.Sprintf(`SELECT %s FROM opportunities WHERE id = $1`, opportunityColumns)

	opp, err := scanOpportunity(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving opportunity: %w", err)
	}

	return opp, nil
}

// Create inserts a new opportunity and fills in generated fields
func (r *OpportunityRepository) Create(ctx context.Context, opp *models.Opportunity) error {
	query := fmt.Sprintf(`
		INSERT INTO opportunities (title, institution, type, description, deadline, amount, eligibility, application_url, featured, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING %s`, opportunityColumns)

	created, err := scanOpportunity(r.db.QueryRow(ctx, query,
		opp.Title, opp.Institution, opp.Type, opp.Description, opp.Deadline,
		opp.Amount, opp.Eligibility, opp.ApplicationURL, opp.Featured, opp.CreatedBy))
	if err != nil {
		return fmt.Errorf("error creating opportunity: %w", err)
	}

	*opp = *created
	return nil
}

// Update applies a partial update from a field→value map validated against
// the mutable-column allow-list. An empty map is a no-op returning nil.
func (r *OpportunityRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Opportunity, error) {
	var updates []string
	var values []interface{}
	paramCount := 1

	for column, value := range fields {
		if !opportunityMutableColumns[column] {
			return nil, fmt.Errorf("column %q is not updatable", column)
		}
		updates = append(updates, fmt.Sprintf("%s = $%d", column, paramCount))
		values = append(values, value)
		paramCount++
	}

	if len(updates) == 0 {
		return nil, nil
	}

	values = append(values, id)
	query := fmt.Sprintf(`
		UPDATE opportunities SET %s WHERE id = $%d
		RETURNING %s`, strings.Join(updates, ", "), paramCount, opportunityColumns)

	opp, err := scanOpportunity(r.db.QueryRow(ctx, query, values...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error updating opportunity: %w", err)
	}

	return opp, nil
}

// HasApplications checks whether any application references the opportunity
func (r *OpportunityRepository) HasApplications(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM student_applications WHERE opportunity_id = $1)`,
		id).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking applications: %w", err)
	}

	return exists, nil
}

// Delete removes an opportunity by ID. Deleting an absent row is not an
// error, so the operation stays idempotent.
func (r *OpportunityRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM opportunities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting opportunity: %w", err)
	}

	return nil
}

// DeleteCascade removes an opportunity together with its applications in
// one transaction.
func (r *OpportunityRepository) DeleteCascade(ctx context.Context, id int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM student_applications WHERE opportunity_id = $1`, id); err != nil {
			return fmt.Errorf("error deleting dependent applications: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM opportunities WHERE id = $1`, id); err != nil {
			return fmt.Errorf("error deleting opportunity: %w", err)
		}
		return nil
	})
}

package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edaguler/scholarhub/internal/app/models"
)

// StatRepository handles database operations for success stats
type StatRepository struct {
	db *pgxpool.Pool
}

// NewStatRepository creates a new stat repository
func NewStatRepository(pool *pgxpool.Pool) *StatRepository {
	return &StatRepository{
		db: pool,
	}
}

// GetAll retrieves all success stats in display order (oldest first)
func (r *StatRepository) GetAll(ctx context.Context) ([]*models.SuccessStat, error) {
	query := `
		SELECT id, metric, value, description, created_at
		FROM success_stats
		ORDER BY created_at ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []*models.SuccessStat
	for rows.Next() {
		var stat models.SuccessStat
		if err := rows.Scan(
			&stat.ID,
			&stat.Metric,
			&stat.Value,
			&stat.Description,
			&stat.CreatedAt,
		); err != nil {
			return nil, err
		}
		stats = append(stats, &stat)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}

// Create inserts a success stat. Used by the seeder only; the app itself
// treats stats as read-only.
func (r *StatRepository) Create(ctx context.Context, stat *models.SuccessStat) error {
	query := `
		INSERT INTO success_stats (metric, value, description)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	return r.db.QueryRow(ctx, query, stat.Metric, stat.Value, stat.Description).
		Scan(&stat.ID, &stat.CreatedAt)
}

// Count returns the number of stat rows
func (r *StatRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM success_stats`).Scan(&count)
	return count, err
}

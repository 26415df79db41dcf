package models

import (
	"time"
)

// SuccessStat defines the model for the 'success_stats' table.
// Display-only rows rendered on the marketing pages, ordered by creation.
type SuccessStat struct {
	ID          int64     `json:"id" db:"id"`
	Metric      string    `json:"metric" db:"metric"`
	Value       string    `json:"value" db:"value"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

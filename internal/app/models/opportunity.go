package models

import (
	"time"
)

// Opportunity defines the model for the 'opportunities' table
type Opportunity struct {
	ID             int64           `json:"id" db:"id"`
	Title          string          `json:"title" db:"title"`
	Institution    string          `json:"institution" db:"institution"`
	Type           OpportunityType `json:"type" db:"type" example:"scholarship"`
	Description    string          `json:"description" db:"description"`
	Deadline       time.Time       `json:"deadline" db:"deadline"`
	Amount         *string         `json:"amount,omitempty" db:"amount"` // Optional display string, e.g. "$5,000"
	Eligibility    string          `json:"eligibility" db:"eligibility"`
	ApplicationURL string          `json:"applicationUrl" db:"application_url"`
	Featured       bool            `json:"featured" db:"featured"`
	CreatedBy      *int64          `json:"createdBy,omitempty" db:"created_by"` // Teacher user id, nil for admin-created rows
	CreatedAt      time.Time       `json:"createdAt" db:"created_at"`
}

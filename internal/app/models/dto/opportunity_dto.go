package dto

import "github.com/edaguler/scholarhub/internal/app/models"

// CreateOpportunityRequest carries every field of a new listing.
// Deadline uses the date-only form the front-end submits.
type CreateOpportunityRequest struct {
	Title          string                 `json:"title" binding:"required"`
	Institution    string                 `json:"institution" binding:"required"`
	Type           models.OpportunityType `json:"type" binding:"required"`
	Description    string                 `json:"description"`
	Deadline       string                 `json:"deadline" binding:"required,datetime=2006-01-02"`
	Amount         *string                `json:"amount,omitempty"`
	Eligibility    string                 `json:"eligibility"`
	ApplicationURL string                 `json:"applicationUrl"`
	Featured       bool                   `json:"featured"`
	CreatedBy      *int64                 `json:"createdBy,omitempty"`
}

// UpdateOpportunityRequest carries a partial update: only non-nil fields
// end up in the statement.
type UpdateOpportunityRequest struct {
	Title          *string                 `json:"title,omitempty"`
	Institution    *string                 `json:"institution,omitempty"`
	Type           *models.OpportunityType `json:"type,omitempty"`
	Description    *string                 `json:"description,omitempty"`
	Deadline       *string                 `json:"deadline,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Amount         *string                 `json:"amount,omitempty"`
	Eligibility    *string                 `json:"eligibility,omitempty"`
	ApplicationURL *string                 `json:"applicationUrl,omitempty"`
	Featured       *bool                   `json:"featured,omitempty"`
}

// Empty reports whether the update carries no recognized fields
func (r *UpdateOpportunityRequest) Empty() bool {
	return r.Title == nil && r.Institution == nil && r.Type == nil &&
		r.Description == nil && r.Deadline == nil && r.Amount == nil &&
		r.Eligibility == nil && r.ApplicationURL == nil && r.Featured == nil
}

package models

import (
	"time"
)

// Application defines the model for the 'student_applications' table.
// The four applicant fields are a snapshot taken at submission time; later
// profile edits do not rewrite history.
type Application struct {
	ID                int64             `json:"id" db:"id"`
	StudentID         int64             `json:"studentId" db:"student_id"`
	OpportunityID     int64             `json:"opportunityId" db:"opportunity_id"`
	Status            ApplicationStatus `json:"status" db:"status" example:"pending"`
	AppliedAt         time.Time         `json:"appliedAt" db:"applied_at"`
	UpdatedAt         time.Time         `json:"updatedAt" db:"updated_at"`
	ApplicantName     string            `json:"applicantName" db:"applicant_name"`
	ApplicantEmail    string            `json:"applicantEmail" db:"applicant_email"`
	ApplicantPhone    string            `json:"applicantPhone" db:"applicant_phone"`
	ApplicationReason string            `json:"applicationReason" db:"application_reason"`
}

// StudentApplication is an application joined with its opportunity, as
// shown on the student dashboard.
type StudentApplication struct {
	Application
	Title       string          `json:"title" db:"title"`
	Institution string          `json:"institution" db:"institution"`
	Type        OpportunityType `json:"type" db:"type"`
	Deadline    time.Time       `json:"deadline" db:"deadline"`
	Amount      *string         `json:"amount,omitempty" db:"amount"`
}

// ReviewApplication is an application joined with its opportunity and the
// applying student, as shown to reviewers.
type ReviewApplication struct {
	Application
	Title        string `json:"title" db:"title"`
	Institution  string `json:"institution" db:"institution"`
	StudentName  string `json:"studentName" db:"student_name"`
	StudentEmail string `json:"studentEmail" db:"student_email"`
}

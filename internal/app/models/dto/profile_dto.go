package dto

import "github.com/edaguler/scholarhub/internal/app/models"

// UpdateStudentProfileRequest carries a partial student profile update
type UpdateStudentProfileRequest struct {
	School            *string                   `json:"school,omitempty"`
	Grade             *string                   `json:"grade,omitempty"`
	Interests         *[]string                 `json:"interests,omitempty"`
	ScholarshipStatus *models.ScholarshipStatus `json:"scholarshipStatus,omitempty"`
}

// Empty reports whether the update carries no recognized fields
func (r *UpdateStudentProfileRequest) Empty() bool {
	return r.School == nil && r.Grade == nil && r.Interests == nil && r.ScholarshipStatus == nil
}

// UpdateTeacherProfileRequest carries a partial teacher profile update.
// The enquiry counter is deliberately absent: it only moves through the
// atomic increment path.
type UpdateTeacherProfileRequest struct {
	School  *string `json:"school,omitempty"`
	Subject *string `json:"subject,omitempty"`
}

// Empty reports whether the update carries no recognized fields
func (r *UpdateTeacherProfileRequest) Empty() bool {
	return r.School == nil && r.Subject == nil
}

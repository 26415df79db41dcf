package dto

import "github.com/edaguler/scholarhub/internal/app/models"

// CreateApplicationRequest captures a student's submission. The applicant
// fields are stored as a snapshot on the application row.
type CreateApplicationRequest struct {
	StudentID     int64  `json:"studentId" binding:"required,min=1"`
	OpportunityID int64  `json:"opportunityId" binding:"required,min=1"`
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone" binding:"required"`
	Reason        string `json:"reason" binding:"required"`
}

// UpdateApplicationStatusRequest carries a reviewer's decision
type UpdateApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status" binding:"required"`
}

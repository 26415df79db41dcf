package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`                                  // Unique identifier for the user
	Email     string    `json:"email" db:"email" example:"student@example.com"`          // User's email address (unique)
	Password  string    `json:"-" db:"password"`                                         // Hashed credential (excluded from JSON)
	Name      string    `json:"name" db:"name" example:"Ada Student"`                    // Display name
	Role      Role      `json:"role" db:"role" example:"student"`                        // student or teacher, immutable after creation
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`
}

// StudentProfile defines the model for the 'student_profiles' table.
// Created together with its User in one transaction.
type StudentProfile struct {
	ID                int64             `json:"id" db:"id"`
	UserID            int64             `json:"userId" db:"user_id"`
	School            string            `json:"school" db:"school"`
	Grade             string            `json:"grade" db:"grade"`
	Interests         []string          `json:"interests" db:"interests"`
	ScholarshipStatus ScholarshipStatus `json:"scholarshipStatus" db:"scholarship_status"`
	CreatedAt         time.Time         `json:"createdAt" db:"created_at"`
}

// TeacherProfile defines the model for the 'teacher_profiles' table.
// The enquiry counter only ever moves up.
type TeacherProfile struct {
	ID               int64     `json:"id" db:"id"`
	UserID           int64     `json:"userId" db:"user_id"`
	School           string    `json:"school" db:"school"`
	Subject          string    `json:"subject" db:"subject"`
	StudentEnquiries int       `json:"studentEnquiries" db:"student_enquiries"`
	CreatedAt        time.Time `json:"createdAt" db:"created_at"`
}

// Package models defines the records backing the relational schema.
package models

// Role is the user role stored on the users table
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

// Valid reports whether the role is one of the two supported variants
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleTeacher
}

// OpportunityType restricts an opportunity to the three listing kinds
type OpportunityType string

const (
	TypeScholarship OpportunityType = "scholarship"
	TypeAdmission   OpportunityType = "admission"
	TypeProgram     OpportunityType = "program"
)

// Valid reports whether the type is one of the three supported variants
func (t OpportunityType) Valid() bool {
	switch t {
	case TypeScholarship, TypeAdmission, TypeProgram:
		return true
	}
	return false
}

// ApplicationStatus is the state of a student application
type ApplicationStatus string

const (
	StatusPending   ApplicationStatus = "pending"
	StatusAccepted  ApplicationStatus = "accepted"
	StatusRejected  ApplicationStatus = "rejected"
	StatusWithdrawn ApplicationStatus = "withdrawn"
)

// Valid reports whether the status is one of the four supported variants
func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusWithdrawn:
		return true
	}
	return false
}

// Terminal reports whether the status admits no further transitions.
// Only pending applications may change state.
func (s ApplicationStatus) Terminal() bool {
	return s == StatusAccepted || s == StatusRejected || s == StatusWithdrawn
}

// ScholarshipStatus is the scholarship state tracked on a student profile
type ScholarshipStatus string

const (
	ScholarshipPending  ScholarshipStatus = "pending"
	ScholarshipAccepted ScholarshipStatus = "accepted"
	ScholarshipRejected ScholarshipStatus = "rejected"
	ScholarshipNone     ScholarshipStatus = "none"
)

// Valid reports whether the scholarship status is a supported variant
func (s ScholarshipStatus) Valid() bool {
	switch s {
	case ScholarshipPending, ScholarshipAccepted, ScholarshipRejected, ScholarshipNone:
		return true
	}
	return false
}

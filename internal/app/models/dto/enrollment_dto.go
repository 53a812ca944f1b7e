package dto

import "time"

// EnrollmentResponse is the caller-facing enrollment ledger entry.
type EnrollmentResponse struct {
	ID         int64           `json:"id"`
	Student    *UserSummary    `json:"student,omitempty"`
	Course     *CourseResponse `json:"course,omitempty"`
	EnrolledAt time.Time       `json:"enrolledAt"`
	IsActive   bool            `json:"isActive"`
}

// EnrollRequest identifies the course to enroll the caller into.
type EnrollRequest struct {
	CourseID int64 `json:"course" binding:"required,min=1"`
}

// EnrollmentListParams holds filters for the staff-facing ledger listing.
type EnrollmentListParams struct {
	StudentID *int64
	CourseID  *int64
	Page      int
	Size      int
}

package models

import "time"

// Enrollment records that a student is enrolled in a course. At most one
// row exists per (student, course) pair, enforced by a unique constraint.
type Enrollment struct {
	ID         int64     `json:"id" db:"id"`
	StudentID  int64     `json:"studentId" db:"student_id"`
	CourseID   int64     `json:"courseId" db:"course_id"`
	EnrolledAt time.Time `json:"enrolledAt" db:"enrolled_at"`
	IsActive   bool      `json:"isActive" db:"is_active"`
	Student    *User     `json:"student,omitempty"`
	Course     *Course   `json:"course,omitempty"`
}

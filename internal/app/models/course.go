package models

import "time"

// Course represents a university course. Each course belongs to exactly one
// department; deleting a department cascades to its courses.
type Course struct {
	ID           int64       `json:"id" db:"id"`
	Title        string      `json:"title" db:"title"`
	CourseCode   string      `json:"courseCode" db:"course_code"`
	DepartmentID int64       `json:"departmentId" db:"department_id"`
	Description  *string     `json:"description,omitempty" db:"description"`
	IconName     *string     `json:"iconName,omitempty" db:"icon_name"`
	ColorCode    *string     `json:"colorCode,omitempty" db:"color_code"`
	CreatedAt    time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time   `json:"updatedAt" db:"updated_at"`
	Department   *Department `json:"department,omitempty"`
}

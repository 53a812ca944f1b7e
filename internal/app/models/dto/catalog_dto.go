package dto

// CreateDepartmentRequest carries the fields for department creation.
type CreateDepartmentRequest struct {
	Name        string  `json:"name" binding:"required,max=100" example:"Technology"`
	Code        string  `json:"code" binding:"required,max=10" example:"TECH"`
	Description *string `json:"description,omitempty"`
}

// UpdateDepartmentRequest carries the fields for department update.
type UpdateDepartmentRequest struct {
	Name        string  `json:"name" binding:"required,max=100" example:"Technology"`
	Code        string  `json:"code" binding:"required,max=10" example:"TECH"`
	Description *string `json:"description,omitempty"`
}

// CreateCourseRequest carries the fields for course creation.
type CreateCourseRequest struct {
	Title        string  `json:"title" binding:"required,max=100" example:"Computer Science"`
	CourseCode   string  `json:"courseCode" binding:"required,max=20" example:"CS-301"`
	DepartmentID int64   `json:"departmentId" binding:"required,min=1" example:"1"`
	Description  *string `json:"description,omitempty"`
	IconName     *string `json:"iconName,omitempty" example:"computer"`
	ColorCode    *string `json:"colorCode,omitempty" example:"#FF5733"`
}

// UpdateCourseRequest carries the fields for course update.
type UpdateCourseRequest struct {
	Title        string  `json:"title" binding:"required,max=100"`
	CourseCode   string  `json:"courseCode" binding:"required,max=20"`
	DepartmentID int64   `json:"departmentId" binding:"required,min=1"`
	Description  *string `json:"description,omitempty"`
	IconName     *string `json:"iconName,omitempty"`
	ColorCode    *string `json:"colorCode,omitempty"`
}

// DepartmentResponse is the caller-facing department representation.
type DepartmentResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Code        string  `json:"code"`
	Description *string `json:"description,omitempty"`
	CourseCount int     `json:"courseCount"`
}

// CourseResponse is the caller-facing course representation.
type CourseResponse struct {
	ID             int64   `json:"id"`
	Title          string  `json:"title"`
	CourseCode     string  `json:"courseCode"`
	DepartmentID   int64   `json:"departmentId"`
	DepartmentName string  `json:"departmentName,omitempty"`
	DepartmentCode string  `json:"departmentCode,omitempty"`
	Description    *string `json:"description,omitempty"`
	IconName       *string `json:"iconName,omitempty"`
	ColorCode      *string `json:"colorCode,omitempty"`
	IsActive       bool    `json:"isActive"`
}

// CatalogListParams holds search/sort parameters shared by catalog listings.
// Ordering fields are validated against a whitelist in the service layer.
type CatalogListParams struct {
	Search   string
	Ordering string
	Page     int
	Size     int
}

// CourseListParams extends catalog listing with department filters.
type CourseListParams struct {
	CatalogListParams
	DepartmentID   *int64
	DepartmentCode *string
}

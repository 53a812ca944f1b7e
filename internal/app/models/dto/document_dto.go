package dto

import "time"

// CreateDocumentRequest carries the multipart form fields accompanying an
// uploaded file. The binary itself arrives as the "file" form part.
type CreateDocumentRequest struct {
	Title       string  `form:"title" binding:"required,max=255" example:"Syllabus"`
	CourseID    int64   `form:"course" binding:"required,min=1" example:"1"`
	Description *string `form:"description"`
}

// UpdateDocumentRequest carries the editable metadata of a stored document.
// The file itself and its classification are immutable after upload.
type UpdateDocumentRequest struct {
	Title       string  `json:"title" binding:"required,max=255" example:"Syllabus (revised)"`
	Description *string `json:"description"`
}

// DocumentResponse is the caller-facing document representation.
type DocumentResponse struct {
	ID           int64         `json:"id" example:"1"`
	Title        string        `json:"title" example:"Syllabus"`
	CourseID     int64         `json:"courseId" example:"1"`
	DocumentType string        `json:"documentType" example:"pdf"`
	FileSize     int64         `json:"fileSize" example:"1048576"`
	FileURL      string        `json:"fileUrl" example:"http://localhost:8080/uploads/course_documents/TECH/CS-301/syllabus.pdf"`
	Description  *string       `json:"description,omitempty"`
	UploadedBy   *UserSummary  `json:"uploadedBy,omitempty"`
	UploadedAt   time.Time     `json:"uploadedAt"`
}

// UserSummary is a compact user representation embedded in other resources.
type UserSummary struct {
	ID        int64  `json:"id" example:"1"`
	Username  string `json:"username" example:"jdoe"`
	FirstName string `json:"firstName" example:"John"`
	LastName  string `json:"lastName" example:"Doe"`
	Email     string `json:"email" example:"student@campus.edu"`
}

// DocumentListParams holds filters for document listing. CourseID is
// mandatory; unscoped document search is disallowed.
type DocumentListParams struct {
	CourseID     int64
	DocumentType *string
	Page         int
	Size         int
}

package models

import "time"

// CourseDocument represents an uploaded course material. DocumentType,
// FileSize and StoragePath are derived from the uploaded binary at write
// time and never trusted from client input.
type CourseDocument struct {
	ID           int64        `json:"id" db:"id"`
	Title        string       `json:"title" db:"title"`
	CourseID     int64        `json:"courseId" db:"course_id"`
	DocumentType DocumentType `json:"documentType" db:"document_type"`
	StoragePath  string       `json:"storagePath" db:"storage_path"`
	FileSize     int64        `json:"fileSize" db:"file_size"`
	Description  *string      `json:"description,omitempty" db:"description"`
	UploadedBy   *int64       `json:"uploadedBy,omitempty" db:"uploaded_by"`
	IsActive     bool         `json:"isActive" db:"is_active"`
	UploadedAt   time.Time    `json:"uploadedAt" db:"uploaded_at"`
	UpdatedAt    time.Time    `json:"updatedAt" db:"updated_at"`
}

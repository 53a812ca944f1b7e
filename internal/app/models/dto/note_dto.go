package dto

import "time"

// CreateNoteRequest carries the fields for note creation. EstimatedReadTime
// is derived from content when not supplied.
type CreateNoteRequest struct {
	Title             string `json:"title" binding:"required,max=255"`
	CourseID          int64  `json:"course" binding:"required,min=1"`
	Category          string `json:"category" binding:"omitempty,oneof=lecture summary exam_prep assignment reference"`
	DifficultyLevel   string `json:"difficultyLevel" binding:"omitempty,oneof=beginner intermediate advanced"`
	Content           string `json:"content" binding:"required"`
	Tags              string `json:"tags,omitempty"`
	IsFeatured        bool   `json:"isFeatured,omitempty"`
	Order             int    `json:"order,omitempty"`
	EstimatedReadTime *int   `json:"estimatedReadTime,omitempty"`
}

// UpdateNoteRequest carries the fields for note update. Read time is
// recomputed from the new content.
type UpdateNoteRequest struct {
	Title           string `json:"title" binding:"required,max=255"`
	Category        string `json:"category" binding:"omitempty,oneof=lecture summary exam_prep assignment reference"`
	DifficultyLevel string `json:"difficultyLevel" binding:"omitempty,oneof=beginner intermediate advanced"`
	Content         string `json:"content" binding:"required"`
	Tags            string `json:"tags,omitempty"`
	IsFeatured      bool   `json:"isFeatured,omitempty"`
	Order           int    `json:"order,omitempty"`
}

// NoteResponse is the caller-facing note representation.
type NoteResponse struct {
	ID                int64        `json:"id"`
	Title             string       `json:"title"`
	CourseID          int64        `json:"courseId"`
	CourseTitle       string       `json:"courseTitle,omitempty"`
	Category          string       `json:"category"`
	DifficultyLevel   string       `json:"difficultyLevel"`
	Content           string       `json:"content"`
	Tags              string       `json:"tags"`
	TagList           []string     `json:"tagList"`
	WordCount         int          `json:"wordCount"`
	IsFeatured        bool         `json:"isFeatured"`
	Order             int          `json:"order"`
	EstimatedReadTime int          `json:"estimatedReadTime"`
	CreatedBy         *UserSummary `json:"createdBy,omitempty"`
	CreatedAt         time.Time    `json:"createdAt"`
	UpdatedAt         time.Time    `json:"updatedAt"`
}

// NoteListParams holds filters for note listing.
type NoteListParams struct {
	CourseID   *int64
	Category   *string
	Difficulty *string
	Page       int
	Size       int
}

package models

import (
	"strings"
	"time"
)

// CourseNote represents a text content block attached to a course.
// EstimatedReadTime is derived from the content at write time.
type CourseNote struct {
	ID                int64           `json:"id" db:"id"`
	Title             string          `json:"title" db:"title"`
	CourseID          int64           `json:"courseId" db:"course_id"`
	Category          NoteCategory    `json:"category" db:"category"`
	DifficultyLevel   DifficultyLevel `json:"difficultyLevel" db:"difficulty_level"`
	Content           string          `json:"content" db:"content"`
	Tags              string          `json:"tags" db:"tags"`
	IsFeatured        bool            `json:"isFeatured" db:"is_featured"`
	Order             int             `json:"order" db:"display_order"`
	EstimatedReadTime int             `json:"estimatedReadTime" db:"estimated_read_time"`
	IsActive          bool            `json:"isActive" db:"is_active"`
	CreatedBy         *int64          `json:"createdBy,omitempty" db:"created_by"`
	CreatedAt         time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time       `json:"updatedAt" db:"updated_at"`
}

// TagList parses the comma-separated tags into a slice, dropping empty
// entries. Parsing is done lazily on demand; tags are stored as CSV.
func (n *CourseNote) TagList() []string {
	if strings.TrimSpace(n.Tags) == "" {
		return nil
	}
	parts := strings.Split(n.Tags, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// WordCount returns the whitespace-token count of the note content.
func (n *CourseNote) WordCount() int {
	return len(strings.Fields(n.Content))
}

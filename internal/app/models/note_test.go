package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCourseNoteTagList(t *testing.T) {
	tests := []struct {
		name string
		tags string
		want []string
	}{
		{name: "empty", tags: "", want: nil},
		{name: "whitespace only", tags: "   ", want: nil},
		{name: "single tag", tags: "exam", want: []string{"exam"}},
		{name: "multiple tags", tags: "exam,midterm,review", want: []string{"exam", "midterm", "review"}},
		{name: "spaces around tags trimmed", tags: " exam , midterm ", want: []string{"exam", "midterm"}},
		{name: "empty entries dropped", tags: "exam,,review,", want: []string{"exam", "review"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			note := &CourseNote{Tags: tt.tags}
			assert.Equal(t, tt.want, note.TagList())
		})
	}
}

func TestCourseNoteWordCount(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{name: "empty", content: "", want: 0},
		{name: "single word", content: "hello", want: 1},
		{name: "normal sentence", content: "signals are set before the junction", want: 6},
		{name: "mixed whitespace", content: "one\ttwo\nthree  four", want: 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			note := &CourseNote{Content: tt.content}
			assert.Equal(t, tt.want, note.WordCount())
		})
	}
}

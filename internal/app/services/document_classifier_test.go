package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selimk/coursehub/internal/app/models"
	"github.com/selimk/coursehub/internal/pkg/apperrors"
)

func TestNormalizeExtension(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{name: "lowercase", filename: "syllabus.pdf", want: "pdf"},
		{name: "uppercase", filename: "Syllabus.PDF", want: "pdf"},
		{name: "mixed case", filename: "notes.DocX", want: "docx"},
		{name: "multiple dots", filename: "archive.tar.gz", want: "gz"},
		{name: "no extension", filename: "README", want: ""},
		{name: "trailing dot", filename: "weird.", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeExtension(tt.filename))
		})
	}
}

func TestClassifyExtension(t *testing.T) {
	tests := []struct {
		ext  string
		want models.DocumentType
	}{
		{"pdf", models.DocumentTypePDF},
		{"doc", models.DocumentTypeDoc},
		{"docx", models.DocumentTypeDoc},
		{"xls", models.DocumentTypeExcel},
		{"xlsx", models.DocumentTypeExcel},
		{"csv", models.DocumentTypeExcel},
		{"ppt", models.DocumentTypePPT},
		{"pptx", models.DocumentTypePPT},
		{"jpg", models.DocumentTypeImage},
		{"jpeg", models.DocumentTypeImage},
		{"png", models.DocumentTypeImage},
		{"gif", models.DocumentTypeImage},
		{"txt", models.DocumentTypeOther},
		{"zip", models.DocumentTypeOther},
		{"rar", models.DocumentTypeOther},
	}
	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			got, err := ClassifyExtension(tt.ext)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyExtensionCaseInsensitive(t *testing.T) {
	got, err := ClassifyExtension("PDF")
	require.NoError(t, err)
	assert.Equal(t, models.DocumentTypePDF, got)
}

func TestClassifyExtensionRejected(t *testing.T) {
	for _, ext := range []string{"exe", "sh", "js", "html", "bat", ""} {
		t.Run("ext_"+ext, func(t *testing.T) {
			_, err := ClassifyExtension(ext)
			assert.ErrorIs(t, err, apperrors.ErrUnsupportedFileType)
		})
	}
}

func TestBuildStoragePath(t *testing.T) {
	got := BuildStoragePath("TECH", "CS-301", "Syllabus", "pdf")
	assert.Equal(t, "course_documents/TECH/CS-301/syllabus.pdf", got)
}

func TestBuildStoragePathSlugifiesTitle(t *testing.T) {
	got := BuildStoragePath("ENG", "RE-210", "Week 1: Track Geometry", "PDF")
	assert.Equal(t, "course_documents/ENG/RE-210/week-1-track-geometry.pdf", got)
}

func TestBuildStoragePathDeterministic(t *testing.T) {
	first := BuildStoragePath("BUS", "MK-101", "Marketing Basics", "docx")
	second := BuildStoragePath("BUS", "MK-101", "Marketing Basics", "docx")
	assert.Equal(t, first, second)
}

func TestBuildStoragePathDistinctAcrossCourses(t *testing.T) {
	a := BuildStoragePath("TECH", "CS-301", "Syllabus", "pdf")
	b := BuildStoragePath("TECH", "CS-302", "Syllabus", "pdf")
	assert.NotEqual(t, a, b)
}

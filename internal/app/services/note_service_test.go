package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selimk/coursehub/internal/app/models"
)

func TestEstimateReadTime(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{name: "empty content", content: "", want: 1},
		{name: "whitespace only", content: "   \n\t  ", want: 1},
		{name: "single word", content: "hello", want: 1},
		{name: "short note rounds up to a minute", content: words(40), want: 1},
		{name: "exactly one minute", content: words(200), want: 1},
		{name: "rounds half up", content: words(300), want: 2},
		{name: "rounds down below half", content: words(240), want: 1},
		{name: "two minutes", content: words(400), want: 2},
		{name: "long note", content: words(1000), want: 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EstimateReadTime(tt.content))
		})
	}
}

func TestEstimateReadTimeIgnoresExtraWhitespace(t *testing.T) {
	plain := words(400)
	spaced := strings.ReplaceAll(plain, " ", "  \n")
	assert.Equal(t, EstimateReadTime(plain), EstimateReadTime(spaced))
}

func TestCreatorSummaryWithoutCreator(t *testing.T) {
	// A note whose creator was deleted carries a nil CreatedBy; the summary
	// resolves to nothing without touching the user store.
	svc := &NoteService{}
	user, err := svc.CreatorSummary(context.Background(), &models.CourseNote{})
	require.NoError(t, err)
	assert.Nil(t, user)
}

func words(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = "word"
	}
	return strings.Join(parts, " ")
}

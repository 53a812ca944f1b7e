package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Duration
	}{
		{name: "hours", input: "1h", want: time.Hour},
		{name: "composite", input: "1h30m", want: 90 * time.Minute},
		{name: "empty falls back", input: "", want: 5 * time.Minute},
		{name: "garbage falls back", input: "soon", want: 5 * time.Minute},
		{name: "bare number falls back", input: "30", want: 5 * time.Minute},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDuration(tt.input, 5*time.Minute))
		})
	}
}

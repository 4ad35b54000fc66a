package recipex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fwojciec/recipex"
)

func TestParseISODuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  int
		ok    bool
	}{
		{"PT1H30M", 90, true},
		{"PT45M", 45, true},
		{"PT2H", 120, true},
		{"P1DT2H", 1560, true},
		{"PT90S", 2, true},
		{"PT0S", 0, false},
		{"PT0M", 0, false},
		{"PT", 0, false},
		{"P", 0, false},
		{"", 0, false},
		{"45 minutes", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			minutes, ok := recipex.ParseISODuration(tt.input)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, minutes)
		})
	}
}

func TestFormatMinutes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "90 minutes", recipex.FormatMinutes(90))
	assert.Equal(t, "1 minute", recipex.FormatMinutes(1))
}

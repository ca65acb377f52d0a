package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain ascii untouched", "Data Scientist, 2019 - 2022", "Data Scientist, 2019 - 2022"},
		{"bullet becomes asterisk", "• Led migrations", "* Led migrations"},
		{"en dash becomes hyphen", "2019 – 2022", "2019 - 2022"},
		{"em dash becomes hyphen", "2019 — 2022", "2019 - 2022"},
		{"curly quotes become straight", "“team player” isn’t enough", `"team player" isn't enough`},
		{"remaining non-ascii stripped", "résumé café", "rsum caf"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"• Built — and “shipped” — the résumé pipeline",
		"plain text stays plain",
		"mixed: – — ’ “ ” • ø",
	}

	for _, input := range inputs {
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once), "normalize must be idempotent for %q", input)
	}
}

func TestTextWindow(t *testing.T) {
	assert.Equal(t, "one two three", textWindow("one two three", 5))
	assert.Equal(t, "one two", textWindow("one two three", 2))
	assert.Equal(t, "", textWindow("", 10))
	assert.Equal(t, "one two", textWindow("  one \n two  ", 10))
}

package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectSections(t *testing.T) {
	text := strings.Join([]string{
		"Jane Doe",
		"Professional Summary",
		"A short paragraph about nothing in particular that runs well past fifty characters total.",
		"Work Experience",
		"Education",
		"Skills",
	}, "\n")

	sections := DetectSections(text)

	require.Contains(t, sections, "summary")
	assert.Equal(t, 1, sections["summary"].Line)
	assert.Equal(t, "Professional Summary", sections["summary"].Heading)

	require.Contains(t, sections, "experience")
	assert.Equal(t, 3, sections["experience"].Line)

	assert.Contains(t, sections, "education")
	assert.Contains(t, sections, "skills")
	assert.NotContains(t, sections, "projects")
}

func TestDetectSectionsFirstHintWins(t *testing.T) {
	text := "Experience\nmore text\nWork Experience\n"
	sections := DetectSections(text)

	require.Contains(t, sections, "experience")
	assert.Equal(t, 0, sections["experience"].Line)
	assert.Equal(t, "Experience", sections["experience"].Heading)
}

func TestDetectSectionsIgnoresLongAndTinyLines(t *testing.T) {
	long := "education is something this very long sentence mentions while never being a heading at all"
	text := long + "\nEd\n"
	sections := DetectSections(text)
	assert.NotContains(t, sections, "education")
}

func TestCountBullets(t *testing.T) {
	text := strings.Join([]string{
		"Experience",
		"* shipped the ingestion service",
		"- cut costs in half",
		"1. drove the migration",
		"plain line without a marker",
		"Education",
		"* this bullet belongs to education",
	}, "\n")
	sections := DetectSections(text)

	// Scan stops at the next detected section below the start line.
	assert.Equal(t, 3, CountBullets(text, sections, sections["experience"].Line, 0))
	assert.Equal(t, 1, CountBullets(text, sections, sections["education"].Line, 0))

	// Explicit end bound.
	assert.Equal(t, 2, CountBullets(text, sections, 0, 3))
}

func TestNextSectionLine(t *testing.T) {
	sections := map[string]Section{
		"summary":    {Line: 2},
		"experience": {Line: 8},
		"education":  {Line: 15},
	}

	assert.Equal(t, 8, nextSectionLine(sections, 2))
	assert.Equal(t, 15, nextSectionLine(sections, 8))
	assert.Equal(t, 0, nextSectionLine(sections, 15))
	assert.Equal(t, []int{2, 8, 15}, sortedSectionLines(sections))
}

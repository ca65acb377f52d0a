package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractYears(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []int
	}{
		{"sorted and distinct", "Graduated 2019, joined 2016, promoted 2019", []int{2016, 2019}},
		{"out of range ignored", "Born 1850, hired 2020, sci-fi 2150", []int{2020}},
		{"no years", "no digits worth keeping", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractYears(tt.input))
		})
	}
}

func TestExtractDateRanges(t *testing.T) {
	ranges := ExtractDateRanges("Data Analyst 2016 - 2019")
	require.Len(t, ranges, 1)
	assert.Equal(t, DateRange{Start: 2016, End: 2019}, ranges[0])

	ranges = ExtractDateRanges("Engineer January 2017 - March 2019")
	require.Len(t, ranges, 1)
	assert.Equal(t, DateRange{Start: 2017, End: 2019}, ranges[0])
}

func TestExtractDateRangesOverlappingFamilies(t *testing.T) {
	// "January 2018 - Present" satisfies both the year-to-present and the
	// month-year-to-present families, so the span is counted twice.
	ranges := ExtractDateRanges("Senior Engineer January 2018 - Present")
	require.Len(t, ranges, 2)

	currentYear := time.Now().Year()
	for _, r := range ranges {
		assert.Equal(t, 2018, r.Start)
		assert.Equal(t, currentYear, r.End)
	}
	assert.Equal(t, float64(2*(currentYear-2018)), YearsExperience(ranges))
}

func TestYearsExperience(t *testing.T) {
	currentYear := time.Now().Year()

	tests := []struct {
		name     string
		ranges   []DateRange
		expected float64
	}{
		{"empty", nil, 0},
		{"single range", []DateRange{{2016, 2019}}, 3},
		{"negative span ignored", []DateRange{{2020, 2018}}, 0},
		{"open end resolves to now", []DateRange{{currentYear - 4, 0}}, 4},
		{"capped at fifty", []DateRange{{1950, 2020}}, 50},
		{"sum capped at fifty", []DateRange{{1980, 2010}, {1980, 2010}}, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, YearsExperience(tt.ranges))
		})
	}
}

func TestYearsExperienceMonotonic(t *testing.T) {
	ranges := []DateRange{{2010, 2015}}
	before := YearsExperience(ranges)

	for _, extra := range []DateRange{{2016, 2019}, {2019, 2023}, {1960, 2020}} {
		ranges = append(ranges, extra)
		after := YearsExperience(ranges)
		assert.GreaterOrEqual(t, after, before)
		assert.LessOrEqual(t, after, float64(maxYearsExperience))
		before = after
	}
}

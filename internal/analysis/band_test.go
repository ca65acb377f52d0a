package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBandBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		score    int
		max      int
		expected string
	}{
		{"perfect", 30, 30, BandExcellent},
		{"93.3 percent is excellent", 28, 30, BandExcellent},
		{"90 percent is strong", 27, 30, BandStrong},
		{"80 percent is strong", 24, 30, BandStrong},
		{"76.7 percent is fair", 23, 30, BandFair},
		{"60 percent is fair", 18, 30, BandFair},
		{"56.7 percent needs attention", 17, 30, BandNeedsAttention},
		{"zero", 0, 30, BandNeedsAttention},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, band(tt.score, tt.max))
		})
	}
}

func TestOverallVerdict(t *testing.T) {
	tests := []struct {
		name     string
		score    int
		expected string
	}{
		{"85 percent is high", 102, VerdictHigh},
		{"just under high is medium", 101, VerdictMedium},
		{"65 percent is medium", 78, VerdictMedium},
		{"just under medium is low", 77, VerdictLow},
		{"zero is low", 0, VerdictLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, overallVerdict(tt.score, 120))
		})
	}
}

func TestClassifyCareerStage(t *testing.T) {
	tests := []struct {
		name       string
		years      float64
		leadership bool
		expected   CareerStage
	}{
		{"no experience", 0, false, StageStudent},
		{"under a year", 0.5, false, StageStudent},
		{"one year", 1, false, StageRecentGraduate},
		{"two years", 2, false, StageMidLevel},
		{"five years without leadership", 5, false, StageMidLevel},
		{"five years with leadership", 5, true, StageMidLevel},
		{"eight years", 8, false, StageSenior},
		{"capped tenure", 50, true, StageSenior},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyCareerStage(tt.years, tt.leadership))
		})
	}
}

func TestIsEarlyCareer(t *testing.T) {
	assert.True(t, isEarlyCareer(StageStudent))
	assert.True(t, isEarlyCareer(StageRecentGraduate))
	assert.False(t, isEarlyCareer(StageMidLevel))
	assert.False(t, isEarlyCareer(StageSenior))
}

package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func factsFor(t *testing.T, text string) *Facts {
	t.Helper()
	return NewFacts(Normalize(text), text)
}

func TestScoreEducationMissingSection(t *testing.T) {
	f := factsFor(t, "Experience\n* shipped things for a decade without ever listing a school\n")

	result := ScoreEducation(f, StageMidLevel)

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, 30, result.MaxScore)
	assert.Equal(t, []string{"No education section found"}, result.Details)
	assert.Equal(t, BandNeedsAttention, result.Band)
}

func TestScoreEducationEarlyCareerAdvice(t *testing.T) {
	f := factsFor(t, "Education\nBS Computer Science, State University, 2024\n")

	student := ScoreEducation(f, StageStudent)
	senior := ScoreEducation(f, StageSenior)

	// Same facts, different advice register: students get point-chasing
	// guidance, seniors get optional suggestions.
	assert.Contains(t, strings.Join(student.Details, " "), "Missing")
	assert.Contains(t, strings.Join(senior.Details, " "), "Optional")
	assert.Equal(t, student.Score, senior.Score)
}

func TestScoreEducationGPABonus(t *testing.T) {
	high := factsFor(t, "Education\nBS Mathematics, 2020\nGPA: 3.8\nThesis on graph sampling\n")
	low := factsFor(t, "Education\nBS Mathematics, 2020\nGPA: 2.7\nThesis on graph sampling\n")

	highResult := ScoreEducation(high, StageSenior)
	lowResult := ScoreEducation(low, StageSenior)

	assert.Equal(t, highResult.Score-3, lowResult.Score)
	assert.Contains(t, strings.Join(lowResult.Details, " "), "consider removing")
}

func TestScoreEmploymentMissingSection(t *testing.T) {
	f := factsFor(t, "Education\nBS Physics, 2018\n")

	result := ScoreEmployment(f)

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, []string{"No experience section found"}, result.Details)
	assert.Equal(t, BandNeedsAttention, result.Band)
}

func TestScoreSummaryMissingSection(t *testing.T) {
	f := factsFor(t, "Experience\n* worked on things\n")

	result := ScoreSummary(f, StageMidLevel)

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, []string{"No summary section found"}, result.Details)
	assert.Equal(t, BandNeedsAttention, result.Band)
}

// summaryFixture builds a two-section resume whose summary window is exactly
// 60 words: the heading plus a 59-word body beginning with the three given
// words.
func summaryFixture(lead string) string {
	filler := strings.TrimSpace(strings.Repeat("cadence paperwork routine binder ", 14))
	return "Summary\n" + lead + " " + filler + "\nSkills\n* python\n"
}

func TestScoreSummaryImpactDensity(t *testing.T) {
	// Three distinct impact verbs in a 60-word window: density
	// (3/60)*50 = 2.5, so the impact sub-score saturates at its cap of 6.
	withVerbs := ScoreSummary(factsFor(t, summaryFixture("optimized automated reduced")), StageSenior)
	withoutVerbs := ScoreSummary(factsFor(t, summaryFixture("stapler drawer shelf")), StageSenior)

	assert.Equal(t, 6, withVerbs.Score-withoutVerbs.Score)
	assert.NotContains(t, strings.Join(withVerbs.Details, " "), "action verbs")
	assert.Contains(t, strings.Join(withoutVerbs.Details, " "), "action verbs")
}

func TestScoreSummaryUnsupportedLeadershipClaim(t *testing.T) {
	text := "Summary\nSeasoned leader who led large organizations through change\nSkills\n* python\n"
	f := factsFor(t, text)
	require.True(t, f.HasLeadership(), "claim text itself contains leadership terms")

	// Scrub the leadership vocabulary from the facts body so the claim in
	// the summary window has nothing backing it.
	f.Text = "summary seasoned person skills python"
	result := ScoreSummary(f, StageSenior)

	assert.Contains(t, strings.Join(result.Details, " "), "Leadership claims")
}

func TestScoreCompletenessEmptyResume(t *testing.T) {
	result := ScoreCompleteness(factsFor(t, ""))

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, BandNeedsAttention, result.Band)
	joined := strings.Join(result.Details, " ")
	assert.Contains(t, joined, "Email")
	assert.Contains(t, joined, "Phone")
	assert.Contains(t, joined, "experience")
}

func TestScoreCompletenessThinBonusSection(t *testing.T) {
	text := strings.Join([]string{
		"Projects",
		"* a single project bullet",
		"Experience",
		"* real work happened here over several years of employment",
	}, "\n")

	result := ScoreCompleteness(factsFor(t, text))

	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0], "Projects")
}

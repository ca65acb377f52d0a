// Package analysis implements the resume quality engine: deterministic
// fact extraction over normalized text, four category scorers, an ATS
// formatting checklist, and role alignment against a job description.
// Everything here is pure and synchronous; absent input degrades to zero
// scores with explanatory details rather than errors.
package analysis

import "strings"

const (
	// categoryMaxScore is the ceiling for each of the four scoring
	// categories. The overall score is the sum of the four.
	categoryMaxScore = 30

	// summaryWindowWords bounds how much of the summary span the summary
	// scorer inspects.
	summaryWindowWords = 150
)

// CategoryResult is the outcome of one scoring category.
type CategoryResult struct {
	Score    int      `json:"score"`
	MaxScore int      `json:"max_score"`
	Band     string   `json:"band"`
	Details  []string `json:"details"`
	Warnings []string `json:"warnings,omitempty"`
}

// Report is the full analysis of one resume.
type Report struct {
	OverallScore  int            `json:"overall_score"`
	MaxScore      int            `json:"max_score"`
	Verdict       string         `json:"verdict"`
	CareerStage   CareerStage    `json:"career_stage"`
	Completeness  CategoryResult `json:"completeness"`
	Summary       CategoryResult `json:"summary_quality"`
	Education     CategoryResult `json:"education"`
	Employment    CategoryResult `json:"employment"`
	ATSReadiness  ATSResult      `json:"ats_readiness"`
	RoleAlignment RoleAlignment  `json:"role_alignment"`
}

// Analyze runs the whole pipeline over raw resume text: normalization,
// fact extraction, career stage classification, the four category scorers,
// the ATS checklist, and role alignment against jobDescription.
func Analyze(rawText, jobDescription string) *Report {
	normalized := Normalize(rawText)
	f := NewFacts(normalized, rawText)

	stage := ClassifyCareerStage(f.YearsExperience, f.HasLeadership())

	completeness := ScoreCompleteness(f)
	summary := ScoreSummary(f, stage)
	education := ScoreEducation(f, stage)
	employment := ScoreEmployment(f)

	overall := completeness.Score + summary.Score + education.Score + employment.Score
	maxScore := 4 * categoryMaxScore

	reqs := ExtractRequirements(jobDescription)
	alignment := ComputeRoleAlignment(reqs, f.Text, stage)

	return &Report{
		OverallScore:  overall,
		MaxScore:      maxScore,
		Verdict:       overallVerdict(overall, maxScore),
		CareerStage:   stage,
		Completeness:  completeness,
		Summary:       summary,
		Education:     education,
		Employment:    employment,
		ATSReadiness:  CheckATS(f),
		RoleAlignment: alignment,
	}
}

// FallbackKeywords suggests up to ten impact verbs the resume does not use
// yet. Used when no model-generated keyword list is available.
func FallbackKeywords(rawText string) []string {
	lower := strings.ToLower(rawText)
	var missing []string
	for _, verb := range impactVerbs {
		if !strings.Contains(lower, verb) {
			missing = append(missing, verb)
		}
		if len(missing) == 10 {
			break
		}
	}
	return missing
}

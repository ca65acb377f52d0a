package analysis

import (
	"fmt"
	"strings"
)

// summaryFallbackLines bounds the summary span when the summary heading is
// the last detected section.
const summaryFallbackLines = 10

// ScoreSummary evaluates the professional summary: coverage of the resume's
// own roles/domains/tools/metrics, stage-appropriate length, specificity,
// impact-verb density, quantified evidence, and faithfulness against the
// rest of the resume. Returns a zero result when no summary section exists.
func ScoreSummary(f *Facts, stage CareerStage) CategoryResult {
	sec, ok := f.Sections["summary"]
	if !ok {
		return CategoryResult{
			Score:    0,
			MaxScore: categoryMaxScore,
			Details:  []string{"No summary section found"},
			Band:     BandNeedsAttention,
		}
	}

	score := 0
	var details []string

	window := summaryWindow(f, sec)
	lower := strings.ToLower(window)

	// Coverage: does the summary surface what the resume already proves?
	coverage := 0
	if anyInText(lower, head(f.Truths.Roles, 3)) {
		coverage += 2
	}
	if anyInText(lower, head(f.Truths.Domains, 2)) {
		coverage += 2
	}
	if anyInText(lower, head(f.Truths.Tools, 5)) {
		coverage += 2
	}
	if len(f.Metrics) > 0 && anyInText(window, head(f.Metrics, 2)) {
		coverage += 2
	}
	score += minInt(coverage, 8)

	words := wordCount(window)
	idealLow, idealHigh := 75, 150
	if isEarlyCareer(stage) {
		idealLow, idealHigh = 50, 100
	}
	switch {
	case words >= idealLow && words <= idealHigh:
		score += 4
	case words < idealLow:
		score += 2
		details = append(details, fmt.Sprintf("Summary is too brief (%d words). Aim for %d-%d words.", words, idealLow, idealHigh))
	default:
		score++
		details = append(details, fmt.Sprintf("Summary is too long (%d words). Aim for %d-%d words.", words, idealLow, idealHigh))
	}

	specificity := len(membership(lower, domainHints)) +
		len(membership(lower, toolHints)) +
		len(membership(lower, roleTitles))
	specificity = minInt(specificity, 6)
	score += specificity
	if specificity < 3 {
		details = append(details, "Add more specific tools, domains, or role keywords")
	}

	impactCount := len(membership(lower, impactVerbs))
	impactDensity := float64(impactCount) / float64(maxInt(words, 1)) * 50
	impactScore := minInt(int(impactDensity*6), 6)
	score += impactScore
	if impactScore == 0 {
		details = append(details, "Start sentences with strong action verbs: 'Developed', 'Led', 'Architected', 'Optimized', 'Built' instead of passive phrases")
	} else if impactScore < 3 {
		details = append(details, "Use 2-3 more impact verbs in summary. Examples: 'Spearheaded', 'Drove', 'Engineered', 'Scaled', 'Delivered'")
	}

	evidenceCount := countMetricFamilies(window)
	evidenceDensity := float64(evidenceCount) / float64(maxInt(words, 1)) * 50
	evidenceScore := minInt(int(evidenceDensity*4), 4)
	score += evidenceScore
	if evidenceScore == 0 {
		details = append(details, "Add 1-2 quantifiable achievements in summary: 'Built system serving 10K+ users' or 'Reduced processing time by 40%'")
	} else if evidenceScore < 2 {
		details = append(details, "Add one more metric to strengthen summary impact (team size, project scale, or performance improvement)")
	}

	// Faithfulness: leadership or award claims in the summary must be
	// corroborated by the rest of the resume.
	penalty := 0
	if anyInText(lower, []string{"led", "managed", "leadership"}) && !f.HasLeadership() {
		penalty -= 2
		details = append(details, "Leadership claims in summary not supported by resume")
	}
	if (strings.Contains(lower, "award") || strings.Contains(lower, "recognition")) && !f.HasSection("awards") {
		penalty--
	}

	score = maxInt(0, score+penalty)

	if len(details) == 0 {
		details = []string{"Summary is well-crafted"}
	}

	return CategoryResult{
		Score:    score,
		MaxScore: categoryMaxScore,
		Details:  details,
		Band:     band(score, categoryMaxScore),
	}
}

// summaryWindow isolates the text from the summary heading to the next
// section heading (or a fixed fallback span when summary is last), limited
// to the first 150 words.
func summaryWindow(f *Facts, sec Section) string {
	lines := strings.Split(f.OriginalText, "\n")

	end := 0
	for _, line := range sortedSectionLines(f.Sections) {
		if line > sec.Line {
			end = line
			break
		}
	}
	if end == 0 {
		end = sec.Line + summaryFallbackLines
	}
	if end > len(lines) {
		end = len(lines)
	}

	span := strings.Join(lines[sec.Line:end], "\n")
	return textWindow(span, summaryWindowWords)
}

func anyInText(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

func head(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

package analysis

import (
	"math"
	"regexp"
	"strings"
)

// RoleAlignment reports how well the resume covers a job description's
// extracted requirement vocabulary.
type RoleAlignment struct {
	Score         int         `json:"score"`
	Level         CareerStage `json:"level"`
	MatchedSkills []string    `json:"matched_skills"`
	Gaps          []string    `json:"gaps"`
	TotalRequired int         `json:"total_required"`
	Details       []string    `json:"details"`
}

var (
	camelTokenRe = regexp.MustCompile(`\b[A-Za-z][A-Za-z0-9]+\b`)
	acronymRe    = regexp.MustCompile(`\b[A-Z]{2,}(?:/[A-Z]{2,})*\b`)
	yearsReqRe   = regexp.MustCompile(`\d+\+?\s*years?`)
)

// ExtractRequirements derives a requirement vocabulary from a job
// description: CamelCase tokens, ALL-CAPS acronyms not on the blacklist,
// curated technical-term hits, and a literal "experience" requirement when
// an "N+ years" pattern appears. Case-insensitive deduplication keeps the
// first occurrence; single-character tokens are dropped.
func ExtractRequirements(jobDescription string) []string {
	if strings.TrimSpace(jobDescription) == "" {
		return nil
	}
	lower := strings.ToLower(jobDescription)

	var requirements []string
	seen := map[string]bool{}
	add := func(term string) {
		key := strings.ToLower(term)
		if len(key) < 2 || seen[key] {
			return
		}
		seen[key] = true
		requirements = append(requirements, key)
	}

	for _, token := range camelTokenRe.FindAllString(jobDescription, -1) {
		if caseTransitions(token) >= 2 {
			add(token)
		}
	}

	for _, token := range acronymRe.FindAllString(jobDescription, -1) {
		if !acronymBlacklist[strings.ToLower(token)] {
			add(token)
		}
	}

	for _, term := range membership(lower, technicalTerms) {
		add(term)
	}

	if yearsReqRe.MatchString(lower) {
		add("experience")
	}

	return requirements
}

// ComputeRoleAlignment scores resume coverage of the extracted
// requirements: round(100 * matched / total). Gaps list the first eight
// unmatched requirements in extraction order, matched skills the first
// five matches. An empty requirement set yields score 0 with an
// explanatory message instead of a division error.
func ComputeRoleAlignment(requirements []string, resumeText string, stage CareerStage) RoleAlignment {
	if len(requirements) == 0 {
		return RoleAlignment{
			Score:   0,
			Level:   stage,
			Details: []string{"Could not extract requirements from the job description"},
		}
	}

	var matched, gaps []string
	for _, req := range requirements {
		if strings.Contains(resumeText, req) {
			matched = append(matched, req)
		} else {
			gaps = append(gaps, req)
		}
	}

	score := int(math.Round(float64(len(matched)) / float64(len(requirements)) * 100))

	var details []string
	switch {
	case score >= 80:
		details = append(details, "Strong alignment with the target role")
	case score >= 50:
		details = append(details, "Moderate alignment - close the top gaps to stand out")
	default:
		details = append(details, "Low alignment - tailor the resume toward the role's requirements")
	}
	if len(gaps) > 0 {
		details = append(details, "Add evidence for: "+strings.Join(head(gaps, 3), ", "))
	}

	return RoleAlignment{
		Score:         score,
		Level:         stage,
		MatchedSkills: head(matched, 5),
		Gaps:          head(gaps, 8),
		TotalRequired: len(requirements),
		Details:       details,
	}
}

// caseTransitions counts adjacent-letter case changes inside a token.
func caseTransitions(token string) int {
	transitions := 0
	prevUpper := false
	for i, r := range token {
		upper := r >= 'A' && r <= 'Z'
		if i > 0 && upper != prevUpper {
			transitions++
		}
		prevUpper = upper
	}
	return transitions
}

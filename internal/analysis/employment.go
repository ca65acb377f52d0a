package analysis

import "fmt"

// ScoreEmployment scores the experience section: base credit for presence,
// bullet depth, quantified metrics, and a tenure band from computed years of
// experience. Returns a zero result when no experience section exists.
func ScoreEmployment(f *Facts) CategoryResult {
	sec, ok := f.Sections["experience"]
	if !ok {
		return CategoryResult{
			Score:    0,
			MaxScore: categoryMaxScore,
			Details:  []string{"No experience section found"},
			Band:     BandNeedsAttention,
		}
	}

	score := 8
	var details []string

	bullets := CountBullets(f.OriginalText, f.Sections, sec.Line, 0)
	score += minInt(bullets/2, 6)
	if bullets < 6 {
		details = append(details, fmt.Sprintf("Add more bullet points (%d found, aim for 8-12)", bullets))
	}

	metrics := len(f.Metrics)
	score += minInt(metrics, 8)
	switch {
	case metrics == 0:
		details = append(details, "Add quantifiable outcomes: user counts (100+ users), time savings (reduced by 2 hours), scale (managed 5-person team), or quality improvements (improved accuracy to 95%)")
	case metrics < 3:
		details = append(details, fmt.Sprintf("Good start with %d metric(s)! Add 2-3 more: team size, project scope, timeframes, or quality/efficiency gains", metrics))
	case metrics < 5:
		details = append(details, fmt.Sprintf("Strong use of %d metrics. Consider adding 1-2 more if applicable (percentages work even without exact dollar figures)", metrics))
	}

	switch years := f.YearsExperience; {
	case years < 1:
		score += 2
	case years < 3:
		score += 4
	case years < 8:
		score += 6
	default:
		score += 8
	}

	if len(f.DateRanges) == 0 {
		details = append(details, "Add date ranges for all positions")
	}

	if len(details) == 0 {
		details = []string{"Employment section is strong"}
	}

	return CategoryResult{
		Score:    score,
		MaxScore: categoryMaxScore,
		Details:  details,
		Band:     band(score, categoryMaxScore),
	}
}

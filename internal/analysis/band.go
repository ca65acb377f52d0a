package analysis

// Qualitative bands shared by every category scorer.
const (
	BandExcellent      = "Excellent"
	BandStrong         = "Strong"
	BandFair           = "Fair"
	BandNeedsAttention = "Needs Attention"
)

// Overall verdicts use their own thresholds (85/65).
const (
	VerdictHigh   = "High Completeness"
	VerdictMedium = "Medium Completeness"
	VerdictLow    = "Low Completeness"
)

// band maps a score ratio onto a qualitative label: >=93% Excellent,
// >=80% Strong, >=60% Fair, else Needs Attention.
func band(score, maxScore int) string {
	pct := float64(score) / float64(maxScore) * 100
	switch {
	case pct >= 93:
		return BandExcellent
	case pct >= 80:
		return BandStrong
	case pct >= 60:
		return BandFair
	default:
		return BandNeedsAttention
	}
}

// overallVerdict bands the aggregate score: >=85% High, >=65% Medium, else
// Low Completeness.
func overallVerdict(score, maxScore int) string {
	pct := float64(score) / float64(maxScore) * 100
	switch {
	case pct >= 85:
		return VerdictHigh
	case pct >= 65:
		return VerdictMedium
	default:
		return VerdictLow
	}
}

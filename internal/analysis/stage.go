package analysis

// CareerStage is an experience tier derived from computed years of
// experience.
type CareerStage string

const (
	StageStudent        CareerStage = "Student"
	StageRecentGraduate CareerStage = "Recent Graduate"
	StageMidLevel       CareerStage = "Mid-Level"
	StageSenior         CareerStage = "Senior"
)

// ClassifyCareerStage maps years of experience to a tier. The leadership
// flag is accepted for the mid band but does not currently alter the label;
// both branches yield Mid-Level. Kept for parity with the scoring model.
func ClassifyCareerStage(yearsExperience float64, hasLeadership bool) CareerStage {
	switch {
	case yearsExperience < 1:
		return StageStudent
	case yearsExperience < 2:
		return StageRecentGraduate
	case yearsExperience < 8:
		if hasLeadership {
			return StageMidLevel
		}
		return StageMidLevel
	default:
		return StageSenior
	}
}

// isEarlyCareer reports whether stage gets the shorter ideal summary range
// and the student-oriented advice strings.
func isEarlyCareer(stage CareerStage) bool {
	return stage == StageStudent || stage == StageRecentGraduate
}

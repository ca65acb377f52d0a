package analysis

import (
	"regexp"
	"strconv"
	"strings"
)

var gpaRe = regexp.MustCompile(`(?i)(?:gpa|grade point average)[:\s]+(\d+\.\d+)`)

// ScoreEducation scores the education section: base credit for its presence,
// degree keyword coverage, listed years, a thesis/capstone bonus, and a
// GPA-or-honors bonus. Returns a zero result when no education section
// exists.
func ScoreEducation(f *Facts, stage CareerStage) CategoryResult {
	if !f.HasSection("education") {
		return CategoryResult{
			Score:    0,
			MaxScore: categoryMaxScore,
			Details:  []string{"No education section found"},
			Band:     BandNeedsAttention,
		}
	}

	score := 8
	var details []string

	degreeScore := minInt(len(membership(f.Text, educationKeywords))*2, 10)
	score += degreeScore
	if degreeScore == 0 {
		details = append(details, "Include your degree type: Bachelor's (BS/BA), Master's (MS/MA), or PhD")
	} else if degreeScore < 4 {
		details = append(details, "Specify full degree name (e.g., 'BS Computer Science' or 'Master of Business Administration')")
	}

	if len(f.Years) > 0 {
		score += minInt(len(f.Years), 7)
	} else {
		details = append(details, "Add graduation year(s)")
	}

	thesis := strings.Contains(f.Text, "thesis") ||
		strings.Contains(f.Text, "capstone") ||
		strings.Contains(f.Text, "dissertation")
	if thesis {
		score += 2
	} else if isEarlyCareer(stage) {
		details = append(details, "Missing 2 points: Add thesis/capstone/final project to reach 29-30/30")
	} else {
		details = append(details, "Optional: Add thesis/capstone/dissertation if applicable (+2 points)")
	}

	if m := gpaRe.FindStringSubmatch(f.Text); m != nil {
		gpa, err := strconv.ParseFloat(m[1], 64)
		switch {
		case err == nil && gpa >= 3.5:
			score += 3
		case err == nil && gpa >= 3.0:
			score++
		default:
			details = append(details, "GPA < 3.0 - consider removing unless required")
		}
	} else if anyInText(f.Text, honorsKeywords) {
		score += 3
	} else if isEarlyCareer(stage) {
		details = append(details, "Missing 3 points: Add GPA if >= 3.0 or academic honors (Dean's List, Cum Laude, etc.)")
	} else {
		details = append(details, "Optional: Add GPA (if 3.5+) or academic honors for +1 to +3 points")
	}

	if len(details) == 0 {
		details = []string{"Education section is complete"}
	}

	return CategoryResult{
		Score:    score,
		MaxScore: categoryMaxScore,
		Details:  details,
		Band:     band(score, categoryMaxScore),
	}
}

package analysis

import (
	"fmt"
	"strings"
)

// ScoreCompleteness awards points for contact identifiers, the four core
// sections and a sane word count, and warns about bonus sections that are
// present but thin (fewer than two bullets).
func ScoreCompleteness(f *Facts) CategoryResult {
	score := 0
	var details, warnings []string

	if len(f.Contacts.Emails) > 0 {
		score += 4
	} else {
		details = append(details, "Missing: Email address")
	}

	if len(f.Contacts.Phones) > 0 {
		score += 3
	} else {
		details = append(details, "Missing: Phone number")
	}

	if f.Contacts.URLs.HasAny() {
		score += 2
	} else {
		details = append(details, "Missing: LinkedIn, GitHub, or portfolio URL")
	}

	if f.HasSection("summary") {
		score += 5
	} else {
		details = append(details, "Missing: Professional summary or objective")
	}

	if f.HasSection("experience") {
		score += 6
	} else {
		details = append(details, "Missing: Work experience section")
	}

	if f.HasSection("education") {
		score += 6
	} else {
		details = append(details, "Missing: Education section")
	}

	if f.HasSection("skills") {
		score += 3
	} else {
		details = append(details, "Missing: Skills section")
	}

	words := wordCount(f.OriginalText)
	if words >= 200 && words <= 800 {
		score++
	} else if words < 200 {
		details = append(details, fmt.Sprintf("Resume is too short (%d words)", words))
	} else {
		details = append(details, fmt.Sprintf("Resume is too long (%d words)", words))
	}

	var thin []string
	for _, name := range bonusSections {
		sec, ok := f.Sections[name]
		if !ok {
			continue
		}
		if CountBullets(f.OriginalText, f.Sections, sec.Line, 0) < 2 {
			thin = append(thin, titleCase(name))
		}
	}
	if len(thin) > 0 {
		warnings = append(warnings, "Thin sections (< 2 bullets): "+strings.Join(thin, ", "))
	}

	if len(details) == 0 {
		details = []string{"Resume structure is complete"}
	}

	return CategoryResult{
		Score:    score,
		MaxScore: categoryMaxScore,
		Details:  details,
		Warnings: warnings,
		Band:     band(score, categoryMaxScore),
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

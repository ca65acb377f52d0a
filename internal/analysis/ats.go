package analysis

import (
	"fmt"
	"strings"
)

// ATSResult is the formatting checklist verdict. Signals and
// Recommendations are index-paired: each fired signal carries exactly one
// remediation.
type ATSResult struct {
	Verdict         string   `json:"verdict"`
	Signals         []string `json:"signals"`
	Recommendations []string `json:"recommendations"`
}

const (
	atsPass   = "Pass"
	atsAtRisk = "At Risk"

	// atsSignalTolerance is the most signals that can fire before the
	// verdict flips to At Risk.
	atsSignalTolerance = 2
)

var boxDrawingChars = []rune("│┤╡╢╖╕╣║╗╝╜╛┐└┴┬├─┼╞╟╚╔╩╦╠═╬╧╨╤╥╙╘╒╓╫╪┘┌█▄▌▐▀")

// CheckATS evaluates heuristic parseability signals against the ORIGINAL
// un-normalized text: non-ASCII density, decorative glyphs, suspected
// multi-column layout, tab/pipe abuse, extreme length, and missing contact
// or mandatory sections.
func CheckATS(f *Facts) ATSResult {
	var signals, recommendations []string
	original := f.OriginalText

	nonASCII, totalRunes := 0, 0
	for _, r := range original {
		totalRunes++
		if r > 127 {
			nonASCII++
		}
	}
	nonASCIIPct := float64(nonASCII) / float64(maxInt(totalRunes, 1)) * 100
	if nonASCIIPct > 5 {
		signals = append(signals, fmt.Sprintf("High non-ASCII character usage (%.1f%%)", nonASCIIPct))
		recommendations = append(recommendations, "Replace special characters with ASCII equivalents")
	}

	if strings.ContainsAny(original, string(boxDrawingChars)) {
		signals = append(signals, "Contains decorative box-drawing characters")
		recommendations = append(recommendations, "Remove decorative borders and use simple formatting")
	}

	lines := strings.Split(original, "\n")
	short := 0
	for _, line := range lines {
		if l := len(strings.TrimSpace(line)); l > 0 && l < 20 {
			short++
		}
	}
	if float64(short) > float64(len(lines))*0.3 {
		signals = append(signals, "Possible multi-column layout detected")
		recommendations = append(recommendations, "Use single-column layout for better ATS parsing")
	}

	if strings.Count(original, "\t") > 20 || strings.Count(original, "|") > 10 {
		signals = append(signals, "Excessive tabs or pipes detected")
		recommendations = append(recommendations, "Avoid using tabs or tables; use simple bullet points")
	}

	words := wordCount(original)
	if words < 200 {
		signals = append(signals, fmt.Sprintf("Resume is very short (%d words)", words))
		recommendations = append(recommendations, "Expand resume with more detail (aim for 400-700 words)")
	} else if words > 1000 {
		signals = append(signals, fmt.Sprintf("Resume is very long (%d words)", words))
		recommendations = append(recommendations, "Condense resume to 1-2 pages (400-700 words)")
	}

	if len(f.Contacts.Emails) == 0 {
		signals = append(signals, "Missing email address")
		recommendations = append(recommendations, "Add email in contact section")
	}

	if len(f.Contacts.Phones) == 0 {
		signals = append(signals, "Missing phone number")
		recommendations = append(recommendations, "Add phone number in contact section")
	}

	var missing []string
	for _, name := range []string{"experience", "education"} {
		if !f.HasSection(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		signals = append(signals, "Missing mandatory sections: "+strings.Join(missing, ", "))
		recommendations = append(recommendations, "Add "+strings.Join(missing, ", ")+" section(s)")
	}

	verdict := atsPass
	if len(signals) > atsSignalTolerance {
		verdict = atsAtRisk
	}

	if len(signals) == 0 {
		signals = []string{"No major ATS issues detected"}
		recommendations = []string{"Resume is ATS-ready"}
	}

	return ATSResult{
		Verdict:         verdict,
		Signals:         signals,
		Recommendations: recommendations,
	}
}

package analysis

import "strings"

// Truths aggregates vocabulary-membership scans over the lower-cased resume:
// which curated role titles, domains, tools and impact verbs appear anywhere
// in the text. Membership only; no positional weighting.
type Truths struct {
	Roles        []string `json:"roles"`
	Domains      []string `json:"domains"`
	Tools        []string `json:"tools"`
	Achievements []string `json:"achievements"`
}

// Facts is the immutable snapshot every scorer consumes. Build it once per
// analysis with NewFacts.
type Facts struct {
	// Text is the lower-cased normalized resume body; OriginalText keeps the
	// caller-supplied casing and characters for word counts, bullet
	// detection and the ATS non-ASCII checks.
	Text         string
	OriginalText string

	Contacts        ContactFacts
	Years           []int
	DateRanges      []DateRange
	YearsExperience float64
	Sections        map[string]Section
	Metrics         []string
	Truths          Truths
}

// NewFacts runs every extractor over the normalized text and the vocabulary
// scans over its lower-cased form. originalText is retained untouched.
func NewFacts(normalizedText, originalText string) *Facts {
	ranges := ExtractDateRanges(normalizedText)

	f := &Facts{
		Text:            strings.ToLower(normalizedText),
		OriginalText:    originalText,
		Contacts:        ExtractContacts(normalizedText),
		Years:           ExtractYears(normalizedText),
		DateRanges:      ranges,
		YearsExperience: YearsExperience(ranges),
		Sections:        DetectSections(normalizedText),
		Metrics:         ExtractMetrics(normalizedText),
	}
	f.Truths = BuildTruths(f.Text)
	return f
}

// BuildTruths scans the lower-cased text for curated vocabulary membership.
func BuildTruths(lowerText string) Truths {
	return Truths{
		Roles:        membership(lowerText, roleTitles),
		Domains:      membership(lowerText, domainHints),
		Tools:        membership(lowerText, toolHints),
		Achievements: membership(lowerText, impactVerbs),
	}
}

// HasLeadership reports whether any leadership vocabulary term appears in
// the resume text.
func (f *Facts) HasLeadership() bool {
	for _, kw := range leadershipKeywords {
		if strings.Contains(f.Text, kw) {
			return true
		}
	}
	return false
}

// HasSection reports whether the named taxonomy section was detected.
func (f *Facts) HasSection(name string) bool {
	_, ok := f.Sections[name]
	return ok
}

func membership(lowerText string, vocab []string) []string {
	var found []string
	for _, term := range vocab {
		if strings.Contains(lowerText, term) {
			found = append(found, term)
		}
	}
	return found
}

package analysis

import (
	"regexp"
	"strings"
)

// ContactFacts holds deduplicated contact identifiers found in the resume.
// Slices carry no ordering guarantee; treat them as sets.
type ContactFacts struct {
	Emails []string    `json:"emails"`
	Phones []string    `json:"phones"`
	URLs   ProfileURLs `json:"urls"`
}

// ProfileURLs categorizes profile links. An entry may be a
// "<keyword>_detected" sentinel: the platform was mentioned but no
// well-formed URL was found.
type ProfileURLs struct {
	LinkedIn  []string `json:"linkedin"`
	GitHub    []string `json:"github"`
	Portfolio []string `json:"portfolio"`
}

// HasAny reports whether any profile URL category is non-empty.
func (u ProfileURLs) HasAny() bool {
	return len(u.LinkedIn) > 0 || len(u.GitHub) > 0 || len(u.Portfolio) > 0
}

// ExtractContacts runs all contact extractors over text.
func ExtractContacts(text string) ContactFacts {
	return ContactFacts{
		Emails: ExtractEmails(text),
		Phones: ExtractPhones(text),
		URLs:   ExtractURLs(text),
	}
}

var (
	emailRe = regexp.MustCompile(`(?i)\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	phoneRes = []*regexp.Regexp{
		regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`\+?\d{1,3}[-.\s]?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
	}

	linkedinRe = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/[\w-]+`)
	githubRe   = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/[\w-]+`)
	kaggleRe   = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?kaggle\.com/[\w-]+`)
	anyURLRe   = regexp.MustCompile(`(?i)https?://(?:www\.)?[\w\-.]+\.\w{2,}(?:/[\w\-./?%&=]*)?`)
)

// portfolioKeywords populate the portfolio category as a presence sentinel
// when the platform is mentioned without a well-formed URL. First match wins.
var portfolioKeywords = []string{
	"kaggle", "portfolio", "website", "blog", "medium.com",
	"dev.to", "personal site", "homepage",
}

// ExtractEmails returns the deduplicated email addresses found in text.
func ExtractEmails(text string) []string {
	return dedupe(emailRe.FindAllString(text, -1))
}

// ExtractPhones returns the union of both phone pattern families, deduplicated.
func ExtractPhones(text string) []string {
	var phones []string
	for _, re := range phoneRes {
		phones = append(phones, re.FindAllString(text, -1)...)
	}
	return dedupe(phones)
}

// ExtractURLs categorizes profile links. LinkedIn and GitHub get dedicated
// patterns; remaining http(s) URLs land in the portfolio bucket. When a
// platform keyword appears without a matching URL, a "<keyword>_detected"
// sentinel marks presence without a retrievable link (first keyword wins).
func ExtractURLs(text string) ProfileURLs {
	lower := strings.ToLower(text)

	var u ProfileURLs
	u.LinkedIn = linkedinRe.FindAllString(text, -1)
	u.GitHub = githubRe.FindAllString(text, -1)
	u.Portfolio = kaggleRe.FindAllString(text, -1)

	if strings.Contains(lower, "linkedin") && len(u.LinkedIn) == 0 {
		u.LinkedIn = append(u.LinkedIn, "linkedin_detected")
	}
	if strings.Contains(lower, "github") && len(u.GitHub) == 0 {
		u.GitHub = append(u.GitHub, "github_detected")
	}

	if len(u.Portfolio) == 0 {
		for _, kw := range portfolioKeywords {
			if strings.Contains(lower, kw) {
				u.Portfolio = append(u.Portfolio, kw+"_detected")
				break
			}
		}
	}

	for _, url := range anyURLRe.FindAllString(text, -1) {
		urlLower := strings.ToLower(url)
		if strings.Contains(urlLower, "linkedin.com") || strings.Contains(urlLower, "github.com") {
			continue
		}
		if !contains(u.Portfolio, url) {
			u.Portfolio = append(u.Portfolio, url)
		}
	}

	return u
}

func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			out = append(out, item)
		}
	}
	return out
}

func contains(items []string, s string) bool {
	for _, item := range items {
		if item == s {
			return true
		}
	}
	return false
}

package analysis

import (
	"regexp"
	"sort"
	"strconv"
	"time"
)

// maxYearsExperience caps computed tenure regardless of input magnitude.
const maxYearsExperience = 50

// DateRange is a (start, end) year pair pulled from a range-like phrase.
// End 0 means the range was open-ended or unparseable; it resolves to the
// current calendar year when tenure is computed.
type DateRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

var (
	yearRe = regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)

	// Four independent range pattern families. They are NOT run mutually
	// exclusively: a span like "January 2020 - present" matches both the
	// year-to-present and month-year-to-present families and contributes
	// two ranges. Overlap counts as additional tenure.
	yearToYearRe     = regexp.MustCompile(`(\d{4})\s*-\s*(\d{4})`)
	yearToPresentRe  = regexp.MustCompile(`(?i)(\d{4})\s*-\s*(?:present|current|now)`)
	monthToMonthRe   = regexp.MustCompile(`(\w+\s+\d{4})\s*-\s*(\w+\s+\d{4})`)
	monthToPresentRe = regexp.MustCompile(`(?i)(\w+\s+\d{4})\s*-\s*(?:present|current|now)`)

	bareYearRe = regexp.MustCompile(`\d{4}`)
)

// ExtractYears returns the distinct 4-digit years in [1900,2099] found in
// text, sorted ascending.
func ExtractYears(text string) []int {
	var years []int
	seen := make(map[int]bool)
	for _, m := range yearRe.FindAllString(text, -1) {
		y, err := strconv.Atoi(m)
		if err != nil || seen[y] {
			continue
		}
		seen[y] = true
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// ExtractDateRanges collects (start, end) pairs from all four range pattern
// families. Open-ended ranges resolve to the current calendar year.
func ExtractDateRanges(text string) []DateRange {
	currentYear := time.Now().Year()
	var ranges []DateRange

	for _, m := range yearToYearRe.FindAllStringSubmatch(text, -1) {
		if r, ok := makeRange(m[1], m[2], currentYear); ok {
			ranges = append(ranges, r)
		}
	}
	for _, m := range yearToPresentRe.FindAllStringSubmatch(text, -1) {
		if r, ok := makeRange(m[1], "present", currentYear); ok {
			ranges = append(ranges, r)
		}
	}
	for _, m := range monthToMonthRe.FindAllStringSubmatch(text, -1) {
		if r, ok := makeRange(m[1], m[2], currentYear); ok {
			ranges = append(ranges, r)
		}
	}
	for _, m := range monthToPresentRe.FindAllStringSubmatch(text, -1) {
		if r, ok := makeRange(m[1], "present", currentYear); ok {
			ranges = append(ranges, r)
		}
	}

	return ranges
}

func makeRange(start, end string, currentYear int) (DateRange, bool) {
	startYear := pickYear(start)
	if startYear == 0 {
		return DateRange{}, false
	}

	endYear := 0
	switch end {
	case "present":
		endYear = currentYear
	default:
		endYear = pickYear(end)
	}

	return DateRange{Start: startYear, End: endYear}, true
}

// pickYear parses a bare 4-digit year or pulls the first 4-digit run out of
// a "Month YYYY" token. Returns 0 when no year is present.
func pickYear(s string) int {
	if y, err := strconv.Atoi(s); err == nil {
		return y
	}
	if m := bareYearRe.FindString(s); m != "" {
		y, _ := strconv.Atoi(m)
		return y
	}
	return 0
}

// YearsExperience sums max(0, end-start) over ranges, capped at 50.
// Overlapping ranges are not merged; overlap counts as additional tenure.
// Unresolved ends fall back to the current calendar year.
func YearsExperience(ranges []DateRange) float64 {
	if len(ranges) == 0 {
		return 0
	}

	currentYear := time.Now().Year()
	total := 0.0
	for _, r := range ranges {
		end := r.End
		if end == 0 {
			end = currentYear
		}
		if years := end - r.Start; years > 0 {
			total += float64(years)
		}
	}

	if total > maxYearsExperience {
		return maxYearsExperience
	}
	return total
}

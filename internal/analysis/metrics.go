package analysis

import "regexp"

// metricPatterns are the seven quantified-achievement families: percentage,
// multiplier, currency shorthand, magnitude+unit, relative-change phrase,
// duration, and before/after range. Matches are collected per family and are
// deliberately not deduplicated; repeated metrics count repeatedly toward
// density scores.
var metricPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\d+%`),
	regexp.MustCompile(`(?i)\d+x`),
	regexp.MustCompile(`(?i)\$\d+[kmb]?`),
	regexp.MustCompile(`(?i)\d+[kmb]?\+?\s*(?:users|customers|transactions|records|rows|gb|tb|queries|requests)`),
	regexp.MustCompile(`(?i)(?:reduced|increased|improved|decreased)\s+by\s+\d+`),
	regexp.MustCompile(`(?i)\d+\s*(?:seconds|minutes|hours|days|weeks|months)`),
	regexp.MustCompile(`(?i)from\s+\d+.*to\s+\d+`),
}

// ExtractMetrics returns every metric-pattern match in text, in pattern
// family order.
func ExtractMetrics(text string) []string {
	var metrics []string
	for _, re := range metricPatterns {
		metrics = append(metrics, re.FindAllString(text, -1)...)
	}
	return metrics
}

// countMetricFamilies reports how many of the seven pattern families match
// text at least once. The Summary evidence sub-score uses this, not the
// total match count.
func countMetricFamilies(text string) int {
	count := 0
	for _, re := range metricPatterns {
		if re.MatchString(text) {
			count++
		}
	}
	return count
}

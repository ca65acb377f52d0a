package analysis

import (
	"regexp"
	"sort"
	"strings"
)

// Section marks the first line whose text matched one of a section's hint
// phrases.
type Section struct {
	Line    int    `json:"line"`
	Heading string `json:"heading"`
}

// bulletScanCap bounds how many lines below a heading are scanned for
// bullets when no downstream section exists.
const bulletScanCap = 60

var (
	bulletGlyphRe = regexp.MustCompile(`^\s*[*\-•◦▪▫■□●○]\s+`)
	numberedRe    = regexp.MustCompile(`^\s*\d+\.\s+`)
)

// DetectSections scans lines top to bottom for each taxonomy section.
// A candidate heading line is 3..49 characters after trimming and contains
// one of the section's hint phrases; the earliest such line wins and
// scanning stops for that section.
func DetectSections(text string) map[string]Section {
	lines := strings.Split(text, "\n")
	sections := make(map[string]Section)

	for _, entry := range sectionTaxonomy {
		for i, line := range lines {
			trimmed := strings.ToLower(strings.TrimSpace(line))
			if len(trimmed) < 3 || len(trimmed) >= 50 {
				continue
			}

			matched := false
			for _, hint := range entry.Hints {
				if strings.Contains(trimmed, hint) {
					matched = true
					break
				}
			}
			if matched {
				sections[entry.Name] = Section{Line: i, Heading: strings.TrimSpace(line)}
				break
			}
		}
	}

	return sections
}

// CountBullets counts lines in [start, end) beginning with a bullet glyph or
// a numbered-list marker. When end <= 0 the scan runs to the next detected
// section below start, or to bulletScanCap lines if none exists.
func CountBullets(text string, sections map[string]Section, start, end int) int {
	lines := strings.Split(text, "\n")

	if end <= 0 {
		end = nextSectionLine(sections, start)
		if end <= 0 {
			end = start + bulletScanCap
		}
	}
	if end > len(lines) {
		end = len(lines)
	}

	count := 0
	for i := start; i < end; i++ {
		if bulletGlyphRe.MatchString(lines[i]) || numberedRe.MatchString(lines[i]) {
			count++
		}
	}
	return count
}

// nextSectionLine returns the smallest detected section line strictly
// greater than line, or 0 when none exists.
func nextSectionLine(sections map[string]Section, line int) int {
	next := 0
	for _, s := range sections {
		if s.Line > line && (next == 0 || s.Line < next) {
			next = s.Line
		}
	}
	return next
}

// sortedSectionLines returns all detected heading lines ascending.
func sortedSectionLines(sections map[string]Section) []int {
	lines := make([]int, 0, len(sections))
	for _, s := range sections {
		lines = append(lines, s.Line)
	}
	sort.Ints(lines)
	return lines
}

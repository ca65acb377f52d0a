package analysis

import "strings"

// punctReplacer maps common Unicode punctuation onto ASCII equivalents so the
// downstream regex extractors see a single canonical form.
var punctReplacer = strings.NewReplacer(
	"•", "*", // bullet
	"–", "-", // en dash
	"—", "-", // em dash
	"’", "'", // right single quote
	"“", `"`, // left double quote
	"”", `"`, // right double quote
)

// Normalize canonicalizes Unicode punctuation to ASCII and strips any
// remaining non-ASCII code points. The stripping is lossy; callers that need
// the original text (the ATS checker does) must retain it themselves.
// Normalize is idempotent.
func Normalize(text string) string {
	text = punctReplacer.Replace(text)

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r < 128 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// textWindow truncates text to its first maxWords whitespace-delimited words.
func textWindow(text string, maxWords int) string {
	words := strings.Fields(text)
	if len(words) > maxWords {
		words = words[:maxWords]
	}
	return strings.Join(words, " ")
}

func wordCount(text string) int {
	return len(strings.Fields(text))
}

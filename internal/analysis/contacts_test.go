package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractContacts(t *testing.T) {
	text := "Email: a@b.com Phone: 555-123-4567 Find me at linkedin.com/in/jdoe"
	facts := ExtractContacts(text)

	require.Len(t, facts.Emails, 1)
	assert.Equal(t, "a@b.com", facts.Emails[0])

	require.Len(t, facts.Phones, 1)
	assert.Equal(t, "555-123-4567", facts.Phones[0])

	assert.NotEmpty(t, facts.URLs.LinkedIn)
	assert.Equal(t, "linkedin.com/in/jdoe", facts.URLs.LinkedIn[0])
}

func TestExtractEmailsDeduplicates(t *testing.T) {
	emails := ExtractEmails("a@b.com wrote to a@b.com and c@d.org")
	assert.Equal(t, []string{"a@b.com", "c@d.org"}, emails)
}

func TestExtractURLsSentinels(t *testing.T) {
	u := ExtractURLs("Active on GitHub, LinkedIn and Kaggle but no links listed")

	assert.Equal(t, []string{"github_detected"}, u.GitHub)
	assert.Equal(t, []string{"linkedin_detected"}, u.LinkedIn)
	// First portfolio keyword wins; "kaggle" outranks the rest.
	assert.Equal(t, []string{"kaggle_detected"}, u.Portfolio)
	assert.True(t, u.HasAny())
}

func TestExtractURLsGenericPortfolio(t *testing.T) {
	u := ExtractURLs("Projects at https://janedoe.dev/work and https://github.com/janedoe")

	assert.Contains(t, u.Portfolio, "https://janedoe.dev/work")
	assert.NotContains(t, u.Portfolio, "https://github.com/janedoe")
	assert.NotEmpty(t, u.GitHub)
}

func TestExtractURLsEmpty(t *testing.T) {
	u := ExtractURLs("no links here")
	assert.False(t, u.HasAny())
}

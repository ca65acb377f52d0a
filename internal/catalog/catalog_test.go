package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupExactMatch(t *testing.T) {
	jd := Lookup("Software Engineer")
	assert.Contains(t, jd, "3+ years of experience in software development")

	// Case and surrounding whitespace are ignored.
	assert.Equal(t, jd, Lookup("  software engineer  "))
	assert.Equal(t, jd, Lookup("SOFTWARE ENGINEER"))
}

func TestLookupSubstringMatch(t *testing.T) {
	// Role name containing a catalog key.
	assert.Contains(t, Lookup("Senior Backend Developer"), "backend development experience")

	// Role name contained in a catalog key.
	assert.Contains(t, Lookup("full stack"), "full stack web development experience")
}

func TestLookupGenericFallback(t *testing.T) {
	jd := Lookup("Underwater Basket Weaver")
	assert.Contains(t, jd, "Generic Tech Role Requirements")
}

func TestEveryRoleOptionResolves(t *testing.T) {
	for _, role := range RoleOptions {
		jd := Lookup(role)
		assert.NotContains(t, jd, "Generic Tech Role Requirements",
			"role option %q should resolve to a concrete description", role)
		assert.Contains(t, jd, "Requirements:")
		assert.Contains(t, jd, "Responsibilities:")
	}
}

func TestDescriptionsCarryYearsPatterns(t *testing.T) {
	// Every concrete description should state an experience requirement the
	// alignment engine can pick up.
	for role, jd := range jobDescriptions {
		assert.Contains(t, strings.ToLower(jd), "years", "role %q", role)
	}
}

package core

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var stripPolicy = bluemonday.StrictPolicy()

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// CleanText is CleanString for free text coming from public forms: any markup is stripped.
func CleanText(s string) string {
	return strings.TrimSpace(stripPolicy.Sanitize(s))
}

// CleanStrings cleans every item of ss and drops the empty ones.
func CleanStrings(ss []string) []string {
	cleaned := make([]string, 0, len(ss))
	for _, s := range ss {
		if s = CleanText(s); s != "" {
			cleaned = append(cleaned, s)
		}
	}
	return cleaned
}

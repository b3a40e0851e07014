package subtitle

import (
	"strings"
)

// DetectDialect inspects raw subtitle content and selects a parsing
// strategy. WEBVTT-prefixed content is VTT; content carrying ASS
// section headers with a Format line is ASS/SSA; anything else falls
// back to SRT. Always returns a value, never fails.
func DetectDialect(content string) Dialect {
	trimmed := strings.TrimPrefix(strings.TrimSpace(content), "\ufeff")

	if strings.HasPrefix(trimmed, "WEBVTT") {
		return DialectVTT
	}

	if looksLikeASS(trimmed) {
		return DialectASS
	}

	return DialectSRT
}

func looksLikeASS(content string) bool {
	hasSection := false
	hasFormat := false

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.ToLower(strings.TrimSpace(line))
		switch {
		case trimmed == "[script info]" || trimmed == "[events]":
			hasSection = true
		case strings.HasPrefix(trimmed, "format:"):
			hasFormat = true
		}
		if hasSection && hasFormat {
			return true
		}
	}

	return false
}

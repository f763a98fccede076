package common

import (
	"strings"
	"unicode/utf8"
)

// IsValidContent checks message content: non-empty after trimming and at
// most maxLength runes.
func IsValidContent(content string, maxLength int) bool {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return false
	}
	return utf8.RuneCountInString(trimmed) <= maxLength
}

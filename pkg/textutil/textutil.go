package textutil

import "strings"

// Truncate shortens text to at most maxLength characters, cutting on a word
// boundary when one falls within the last 20 characters of the limit.
func Truncate(text string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = 160
	}
	if len(text) <= maxLength {
		return text
	}

	truncated := text[:maxLength]
	lastSpace := strings.LastIndex(truncated, " ")
	if lastSpace > maxLength-20 {
		return truncated[:lastSpace] + "..."
	}
	return truncated + "..."
}

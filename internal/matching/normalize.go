package matching

import "strings"

// NormalizeText trims the text and collapses every run of whitespace
// (spaces, tabs, newlines) into a single space.
func NormalizeText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

package model

import (
	"regexp"
	"strings"
)

var whitespacePattern = regexp.MustCompile(`\s+`)

// LabelFor returns the default label for a field type: the capitalised type
// name ("email" becomes "Email").
func LabelFor(t FieldType) string {
	return titleCase(string(t))
}

// NormalizeLabel trims a user supplied label and collapses runs of
// whitespace into single spaces. Other characters are kept as typed. An empty
// result means the caller should fall back to LabelFor.
func NormalizeLabel(label string) string {
	return whitespacePattern.ReplaceAllString(strings.TrimSpace(label), " ")
}

func titleCase(word string) string {
	if word == "" {
		return ""
	}
	lower := strings.ToLower(word)
	return strings.ToUpper(lower[:1]) + lower[1:]
}

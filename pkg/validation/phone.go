package validation

import "strings"

// PhoneFilterMessage is the transient error shown after non-digits were
// stripped from phone input.
const PhoneFilterMessage = "Enter number not character"

// PhoneInput is the outcome of filtering a raw phone keystroke.
type PhoneInput struct {
	Value    string
	Stripped bool
}

// FilterPhone keeps only ASCII digits. Filtering is idempotent.
func FilterPhone(raw string) PhoneInput {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	value := b.String()
	return PhoneInput{Value: value, Stripped: value != raw}
}

// Message returns the transient error for the keystroke, or "".
func (p PhoneInput) Message() string {
	if p.Stripped {
		return PhoneFilterMessage
	}
	return ""
}

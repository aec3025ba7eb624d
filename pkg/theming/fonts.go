package theming

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// FontFamily is one of the font tokens a theme may reference.
type FontFamily string

const (
	FontSans  FontFamily = "font-sans"
	FontSerif FontFamily = "font-serif"
	FontMono  FontFamily = "font-mono"
)

// FontFamilies lists the tokens offered by the typography picker.
func FontFamilies() []FontFamily {
	return []FontFamily{FontSans, FontSerif, FontMono}
}

// ParseFontFamily reports whether raw is one of FontFamilies.
func ParseFontFamily(raw string) (FontFamily, bool) {
	for _, family := range FontFamilies() {
		if string(family) == raw {
			return family, true
		}
	}
	return "", false
}

// DisplayName returns the picker label for a token.
func (f FontFamily) DisplayName() string {
	switch f {
	case FontSans:
		return "Sans"
	case FontSerif:
		return "Serif"
	default:
		return "Mono"
	}
}

// CSSFamily maps a font token onto a generic CSS font family. Anything that
// is neither sans nor serif renders as monospace.
func CSSFamily(token string) string {
	switch FontFamily(token) {
	case FontSans:
		return "sans-serif"
	case FontSerif:
		return "serif"
	default:
		return "monospace"
	}
}

// SetFontFamily applies family to both the input and the label sections, the
// way the typography picker keeps them in sync.
func SetFontFamily(theme model.ThemeConfig, family FontFamily) model.ThemeConfig {
	next := Merge(theme, SectionInput, KeyFontFamily, string(family))
	return Merge(next, SectionLabel, KeyFontFamily, string(family))
}

type sizeRange struct {
	min, max int
}

var fontSizeRanges = map[Section]sizeRange{
	SectionInput: {min: 10, max: 24},
	SectionLabel: {min: 10, max: 20},
}

// ClampFontSize turns raw picker input ("18", "18px", "40") into a px size
// within the section's allowed range. Unparseable input falls back to the
// range minimum.
func ClampFontSize(section Section, raw string) string {
	bounds, ok := fontSizeRanges[section]
	if !ok {
		bounds = fontSizeRanges[SectionInput]
	}
	trimmed := strings.TrimSuffix(strings.TrimSpace(raw), "px")
	size, err := strconv.Atoi(strings.TrimSpace(trimmed))
	if err != nil {
		size = bounds.min
	}
	if size < bounds.min {
		size = bounds.min
	}
	if size > bounds.max {
		size = bounds.max
	}
	return strconv.Itoa(size) + "px"
}

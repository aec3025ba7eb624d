package theming

import "github.com/goliatone/go-formbuilder/pkg/model"

// Section names a top-level branch of the theme.
type Section string

// Key names a leaf inside a section.
type Key string

const (
	SectionInput  Section = "input"
	SectionLabel  Section = "label"
	SectionButton Section = "button"
)

const (
	KeyBorderColor     Key = "borderColor"
	KeyColor           Key = "color"
	KeyFontSize        Key = "fontSize"
	KeyFontFamily      Key = "fontFamily"
	KeyBackgroundColor Key = "backgroundColor"
)

// Default returns the theme new documents start with.
func Default() model.ThemeConfig {
	return model.ThemeConfig{
		Input: model.StyleSpec{
			BorderColor: "#D1D5DB",
			FontSize:    "16px",
			FontFamily:  string(FontSans),
		},
		Label: model.StyleSpec{
			Color:      "#4B5563",
			FontSize:   "14px",
			FontFamily: string(FontSans),
		},
		Button: model.ButtonStyle{
			BackgroundColor: "#3B82F6",
			Color:           "#FFFFFF",
		},
	}
}

type leaf struct {
	section Section
	key     Key
}

// leaves is the closed set of (section, key) pairs a theme holds.
var leaves = []leaf{
	{SectionInput, KeyBorderColor},
	{SectionInput, KeyFontSize},
	{SectionInput, KeyFontFamily},
	{SectionLabel, KeyColor},
	{SectionLabel, KeyFontSize},
	{SectionLabel, KeyFontFamily},
	{SectionButton, KeyBackgroundColor},
	{SectionButton, KeyColor},
}

// Known reports whether (section, key) addresses a theme leaf.
func Known(section Section, key Key) bool {
	for _, l := range leaves {
		if l.section == section && l.key == key {
			return true
		}
	}
	return false
}

// ParsePath splits a "section.key" path into its parts and reports whether it
// addresses a known leaf.
func ParsePath(path string) (Section, Key, bool) {
	for _, l := range leaves {
		if string(l.section)+"."+string(l.key) == path {
			return l.section, l.key, true
		}
	}
	return "", "", false
}

// Merge returns a copy of theme with exactly the leaf (section, key) replaced
// by value. Every other leaf is carried over unchanged. Unknown pairs return
// the theme as is.
func Merge(theme model.ThemeConfig, section Section, key Key, value string) model.ThemeConfig {
	next := theme
	switch section {
	case SectionInput:
		switch key {
		case KeyBorderColor:
			next.Input.BorderColor = value
		case KeyFontSize:
			next.Input.FontSize = value
		case KeyFontFamily:
			next.Input.FontFamily = value
		}
	case SectionLabel:
		switch key {
		case KeyColor:
			next.Label.Color = value
		case KeyFontSize:
			next.Label.FontSize = value
		case KeyFontFamily:
			next.Label.FontFamily = value
		}
	case SectionButton:
		switch key {
		case KeyBackgroundColor:
			next.Button.BackgroundColor = value
		case KeyColor:
			next.Button.Color = value
		}
	}
	return next
}

// Value reads a single leaf. The boolean is false for unknown pairs.
func Value(theme model.ThemeConfig, section Section, key Key) (string, bool) {
	if !Known(section, key) {
		return "", false
	}
	switch section {
	case SectionInput:
		switch key {
		case KeyBorderColor:
			return theme.Input.BorderColor, true
		case KeyFontSize:
			return theme.Input.FontSize, true
		default:
			return theme.Input.FontFamily, true
		}
	case SectionLabel:
		switch key {
		case KeyColor:
			return theme.Label.Color, true
		case KeyFontSize:
			return theme.Label.FontSize, true
		default:
			return theme.Label.FontFamily, true
		}
	default:
		if key == KeyBackgroundColor {
			return theme.Button.BackgroundColor, true
		}
		return theme.Button.Color, true
	}
}

// Leaves flattens the theme into "section.key" paths.
func Leaves(theme model.ThemeConfig) map[string]string {
	out := make(map[string]string, len(leaves))
	for _, l := range leaves {
		value, _ := Value(theme, l.section, l.key)
		out[string(l.section)+"."+string(l.key)] = value
	}
	return out
}

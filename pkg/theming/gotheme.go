package theming

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// CSSVarPrefix prefixes every CSS custom property derived from a theme.
const CSSVarPrefix = "--fb-"

// RendererConfig converts a form theme into the go-theme renderer
// configuration consumed by the renderers. Tokens are keyed by "section.key";
// CSS variables use kebab-case names such as --fb-input-border-color.
func RendererConfig(cfg model.ThemeConfig, name, variant string) *theme.RendererConfig {
	tokens := Leaves(cfg)
	vars := make(map[string]string, len(tokens))
	for path, value := range tokens {
		vars[CSSVarName(path)] = value
	}
	return &theme.RendererConfig{
		Theme:   name,
		Variant: variant,
		Tokens:  tokens,
		CSSVars: vars,
	}
}

// CSSVarName turns a "section.key" path into a CSS custom property name.
func CSSVarName(path string) string {
	var b strings.Builder
	b.WriteString(CSSVarPrefix)
	for i, r := range path {
		switch {
		case r == '.':
			b.WriteByte('-')
		case r >= 'A' && r <= 'Z':
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ErrSelectorMissing is returned by ApplyPreset when no selector is supplied.
var ErrSelectorMissing = errors.New("theming: theme selector is required")

// ApplyPreset resolves a go-theme selection and merges the manifest tokens
// that name known theme leaves ("input.borderColor", "button.color", ...)
// into cfg. Variant tokens override base tokens. Tokens that do not address a
// leaf are ignored, so a shared design-system manifest can be reused as is.
func ApplyPreset(cfg model.ThemeConfig, selector theme.ThemeSelector, name, variant string) (model.ThemeConfig, error) {
	if selector == nil {
		return cfg, ErrSelectorMissing
	}
	selection, err := selector.Select(name, variant)
	if err != nil {
		return cfg, fmt.Errorf("theming: select theme %q: %w", name, err)
	}
	if selection == nil || selection.Manifest == nil {
		return cfg, nil
	}

	next := mergeTokens(cfg, selection.Manifest.Tokens)
	if selection.Variant != "" {
		if v, ok := selection.Manifest.Variants[selection.Variant]; ok {
			next = mergeTokens(next, v.Tokens)
		}
	}
	return next, nil
}

func mergeTokens(cfg model.ThemeConfig, tokens map[string]string) model.ThemeConfig {
	if len(tokens) == 0 {
		return cfg
	}
	paths := make([]string, 0, len(tokens))
	for path := range tokens {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		section, key, ok := ParsePath(path)
		if !ok {
			continue
		}
		cfg = Merge(cfg, section, key, tokens[path])
	}
	return cfg
}

package widgets

import (
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// Built-in widget identifiers exposed by the registry.
const (
	WidgetInput  = "input"
	WidgetSelect = "select"
)

// Matcher decides whether a widget should handle the supplied field.
type Matcher func(field model.Field) bool

type rule struct {
	name     string
	priority int
	match    Matcher
	order    int
}

// Registry selects the widget a renderer uses for each field. Higher priority
// wins; ties fall back to registration order. Fields no matcher claims fall
// back to the type's default hint.
type Registry struct {
	mu    sync.RWMutex
	rules []rule
}

// NewRegistry constructs a registry with the built-in matchers registered.
func NewRegistry() *Registry {
	reg := &Registry{}
	reg.registerBuiltins()
	return reg
}

// NewEmptyRegistry returns a registry without built-ins.
func NewEmptyRegistry() *Registry {
	return &Registry{}
}

// Register adds a matcher with the provided name and priority. Higher
// priority values take precedence.
func (r *Registry) Register(name string, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		name:     trimmed,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// Resolve returns the widget for a field. The boolean is false only when the
// field type has no default widget either.
func (r *Registry) Resolve(field model.Field) (string, bool) {
	if r != nil {
		r.mu.RLock()
		rules := append([]rule(nil), r.rules...)
		r.mu.RUnlock()

		sort.SliceStable(rules, func(i, j int) bool {
			if rules[i].priority == rules[j].priority {
				return rules[i].order < rules[j].order
			}
			return rules[i].priority > rules[j].priority
		})
		for _, entry := range rules {
			if entry.match(field) {
				return entry.name, true
			}
		}
	}
	if widget := model.HintsFor(field.Type).Widget; widget != "" {
		return widget, true
	}
	return "", false
}

// ResolveAll maps every field id of doc to its widget.
func (r *Registry) ResolveAll(doc model.FormDocument) map[string]string {
	out := make(map[string]string, len(doc.Fields))
	for _, field := range doc.Fields {
		if widget, ok := r.Resolve(field); ok {
			out[field.ID] = widget
		}
	}
	return out
}

func (r *Registry) registerBuiltins() {
	r.Register(WidgetSelect, 70, func(field model.Field) bool {
		return field.Type == model.FieldTypeSelect
	})
}

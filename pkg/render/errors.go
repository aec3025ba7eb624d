package render

import (
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/validation"
)

// ErrorMapping splits validation feedback into field-level messages keyed by
// field id and form-level messages.
type ErrorMapping struct {
	Fields map[string][]string
	Form   []string
}

// Inline returns the first message of every field, the shape RenderOptions
// expects.
func (m ErrorMapping) Inline() map[string]string {
	if len(m.Fields) == 0 {
		return nil
	}
	out := make(map[string]string, len(m.Fields))
	for id, messages := range m.Fields {
		if len(messages) > 0 {
			out[id] = messages[0]
		}
	}
	return out
}

// FormError joins form-level messages into a single line.
func (m ErrorMapping) FormError() string {
	return strings.Join(m.Form, " ")
}

// Apply copies the mapping into opts, merging with any errors already set.
func (m ErrorMapping) Apply(opts RenderOptions) RenderOptions {
	inline := m.Inline()
	if len(inline) > 0 {
		merged := make(map[string]string, len(opts.Errors)+len(inline))
		for id, msg := range opts.Errors {
			merged[id] = msg
		}
		for id, msg := range inline {
			if _, exists := merged[id]; !exists {
				merged[id] = msg
			}
		}
		opts.Errors = merged
	}
	if form := MergeFormErrors(splitFormError(opts.FormError), m.Form...); len(form) > 0 {
		opts.FormError = strings.Join(form, " ")
	}
	return opts
}

func splitFormError(msg string) []string {
	if strings.TrimSpace(msg) == "" {
		return nil
	}
	return []string{msg}
}

// MapResult turns a validation result into an error mapping. A result that
// blocks submission also carries the aggregate form message.
func MapResult(result validation.Result) ErrorMapping {
	mapping := ErrorMapping{}
	for _, issue := range result.Issues() {
		if mapping.Fields == nil {
			mapping.Fields = make(map[string][]string)
		}
		mapping.Fields[issue.Field] = append(mapping.Fields[issue.Field], issue.Message)
	}
	if !result.CanSubmit {
		mapping.Form = []string{validation.SubmitBlockedMessage}
	}
	return mapping
}

// MergeFormErrors concatenates and normalises multiple form-level error
// slices, trimming whitespace and removing duplicates while preserving order.
func MergeFormErrors(existing []string, extras ...string) []string {
	combined := make([]string, 0, len(existing)+len(extras))
	combined = append(combined, existing...)
	combined = append(combined, extras...)
	return normalizeMessages(combined)
}

// MapErrorPayload normalises an external error payload keyed by field paths
// (plain ids, JSON pointers such as "/body/email", or dotted paths) onto the
// document's field ids. Unknown paths are treated as form-level errors so
// messages are not lost.
func MapErrorPayload(doc model.FormDocument, payload map[string][]string) ErrorMapping {
	mapping := ErrorMapping{
		Fields: make(map[string][]string),
	}
	if len(payload) == 0 {
		mapping.Fields = nil
		return mapping
	}

	ids := make(map[string]struct{}, len(doc.Fields))
	for _, field := range doc.Fields {
		ids[field.ID] = struct{}{}
	}

	for rawPath, messages := range payload {
		normalized := normalizeMessages(messages)
		if len(normalized) == 0 {
			continue
		}
		id, ok := mapErrorPath(rawPath, ids)
		if !ok {
			mapping.Form = append(mapping.Form, normalized...)
			continue
		}
		mapping.Fields[id] = append(mapping.Fields[id], normalized...)
	}

	if len(mapping.Fields) == 0 {
		mapping.Fields = nil
	}
	mapping.Form = normalizeMessages(mapping.Form)
	return mapping
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))

	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

func mapErrorPath(raw string, ids map[string]struct{}) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if isFormLevelKey(trimmed) {
		return "", false
	}
	if _, ok := ids[trimmed]; ok {
		return trimmed, true
	}
	for _, segment := range dropWrapperSegments(parsePathSegments(trimmed)) {
		if _, ok := ids[segment]; ok {
			return segment, true
		}
	}
	return "", false
}

func parsePathSegments(path string) []string {
	clean := strings.TrimSpace(path)
	for strings.HasPrefix(clean, "#") || strings.HasPrefix(clean, "/") || strings.HasPrefix(clean, ".") || strings.HasPrefix(clean, "$") {
		clean = strings.TrimLeft(clean, "#/.$")
	}
	replacer := strings.NewReplacer("[", ".", "]", "")
	clean = replacer.Replace(clean)

	parts := strings.FieldsFunc(clean, func(r rune) bool {
		return r == '.' || r == '/'
	})
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		segment := strings.TrimSpace(part)
		if segment == "" {
			continue
		}
		segment = strings.ReplaceAll(segment, "~1", "/")
		segment = strings.ReplaceAll(segment, "~0", "~")
		out = append(out, segment)
	}
	return out
}

func dropWrapperSegments(segments []string) []string {
	wrappers := map[string]struct{}{
		"body":       {},
		"request":    {},
		"payload":    {},
		"data":       {},
		"values":     {},
		"fields":     {},
		"properties": {},
	}

	out := segments
	for len(out) > 0 {
		if _, ok := wrappers[strings.ToLower(out[0])]; ok {
			out = out[1:]
			continue
		}
		break
	}
	return out
}

func isFormLevelKey(key string) bool {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "", ".", "/", "#", "$", "form", "base", "__all__", "non_field_errors", "non-field-errors":
		return true
	default:
		return false
	}
}

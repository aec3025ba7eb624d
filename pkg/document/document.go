package document

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/reorder"
	"github.com/goliatone/go-formbuilder/pkg/theming"
)

// DefaultName names forms created without one.
const DefaultName = "Form"

const maxIDAttempts = 8

// New returns an empty document with the default theme.
func New(name string) model.FormDocument {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultName
	}
	return model.FormDocument{
		Name:   name,
		Fields: []model.Field{},
		Theme:  theming.Default(),
	}
}

// AddField appends a required field of type t. A blank label falls back to
// the type's default label. The new id never collides with an existing one.
func AddField(doc model.FormDocument, t model.FieldType, label string, opts ...FieldOption) model.FormDocument {
	cfg := addConfig{generate: NewUUID}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	label = model.NormalizeLabel(label)
	if label == "" {
		label = model.LabelFor(t)
	}
	options := cfg.options
	if !cfg.hasOpts {
		options = model.DefaultOptions(t)
	}

	next := doc.Clone()
	next.Fields = append(next.Fields, model.Field{
		ID:       uniqueID(doc.Fields, cfg),
		Type:     t,
		Label:    label,
		Required: true,
		Options:  options,
	})
	return next
}

func uniqueID(fields []model.Field, cfg addConfig) string {
	taken := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		taken[field.ID] = struct{}{}
	}
	free := func(id string) bool {
		if id == "" {
			return false
		}
		_, exists := taken[id]
		return !exists
	}

	if free(cfg.id) {
		return cfg.id
	}
	var candidate string
	for i := 0; i < maxIDAttempts; i++ {
		candidate = cfg.generate()
		if free(candidate) {
			return candidate
		}
	}
	if candidate == "" {
		candidate = "field"
	}
	for n := 2; ; n++ {
		if id := candidate + "-" + strconv.Itoa(n); free(id) {
			return id
		}
	}
}

// DeleteField removes the field with id. Missing ids return an equal copy.
func DeleteField(doc model.FormDocument, id string) model.FormDocument {
	next := doc.Clone()
	idx := reorder.Index(next.Fields, id)
	if idx < 0 {
		return next
	}
	next.Fields = append(next.Fields[:idx], next.Fields[idx+1:]...)
	return next
}

// ReorderFields moves sourceID onto the slot held by destID. An empty destID
// means the drag ended outside any field.
func ReorderFields(doc model.FormDocument, sourceID, destID string) model.FormDocument {
	return Move(doc, sourceID, reorder.Over(destID))
}

// Move is ReorderFields with an explicit drop target.
func Move(doc model.FormDocument, sourceID string, target reorder.Target) model.FormDocument {
	next := doc
	next.Fields = reorder.Fields(doc.Fields, sourceID, target)
	return next
}

// UpdateTheme replaces a single theme leaf.
func UpdateTheme(doc model.FormDocument, section theming.Section, key theming.Key, value string) model.FormDocument {
	next := doc.Clone()
	next.Theme = theming.Merge(doc.Theme, section, key, value)
	return next
}

// SetFontFamily applies family to the input and label sections together.
func SetFontFamily(doc model.FormDocument, family theming.FontFamily) model.FormDocument {
	next := doc.Clone()
	next.Theme = theming.SetFontFamily(doc.Theme, family)
	return next
}

// Rename sets the form name. Blank names fall back to DefaultName.
func Rename(doc model.FormDocument, name string) model.FormDocument {
	next := doc.Clone()
	next.Name = strings.TrimSpace(name)
	if next.Name == "" {
		next.Name = DefaultName
	}
	return next
}

// SetOptions replaces the choices of the field with id.
func SetOptions(doc model.FormDocument, id string, options []string) model.FormDocument {
	next := doc.Clone()
	idx := reorder.Index(next.Fields, id)
	if idx < 0 {
		return next
	}
	next.Fields[idx].Options = append([]string{}, options...)
	return next
}

// Field looks up a field by id.
func Field(doc model.FormDocument, id string) (model.Field, bool) {
	idx := reorder.Index(doc.Fields, id)
	if idx < 0 {
		return model.Field{}, false
	}
	return doc.Fields[idx].Clone(), true
}

// IDs lists field ids in display order.
func IDs(doc model.FormDocument) []string {
	out := make([]string, 0, len(doc.Fields))
	for _, field := range doc.Fields {
		out = append(out, field.ID)
	}
	return out
}

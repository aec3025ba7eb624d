package validation

import "github.com/goliatone/go-formbuilder/pkg/model"

// Entry binds a field id to its rule.
type Entry struct {
	FieldID string          `json:"fieldId"`
	Type    model.FieldType `json:"type"`
	Rule    Rule            `json:"rule"`
}

// Schema is the derived contract for a whole form, in field order.
type Schema struct {
	entries []Entry
	index   map[string]int
}

// Derive builds the schema for fields. It depends on nothing but the ids and
// types of the fields, in order.
func Derive(fields []model.Field) Schema {
	s := Schema{
		entries: make([]Entry, 0, len(fields)),
		index:   make(map[string]int, len(fields)),
	}
	for _, field := range fields {
		if _, dup := s.index[field.ID]; dup {
			continue
		}
		s.index[field.ID] = len(s.entries)
		s.entries = append(s.entries, Entry{
			FieldID: field.ID,
			Type:    field.Type,
			Rule:    RuleFor(field.Type),
		})
	}
	return s
}

// Rule returns the rule bound to id.
func (s Schema) Rule(id string) (Rule, bool) {
	idx, ok := s.index[id]
	if !ok {
		return Rule{}, false
	}
	return s.entries[idx].Rule, true
}

func (s Schema) Len() int {
	return len(s.entries)
}

// FieldIDs lists the ids covered by the schema in field order.
func (s Schema) FieldIDs() []string {
	out := make([]string, 0, len(s.entries))
	for _, entry := range s.entries {
		out = append(out, entry.FieldID)
	}
	return out
}

// Entries returns a copy of the ordered entries.
func (s Schema) Entries() []Entry {
	return append([]Entry(nil), s.entries...)
}

// Equal reports whether both schemas bind the same rules to the same ids in
// the same order.
func (s Schema) Equal(other Schema) bool {
	if len(s.entries) != len(other.entries) {
		return false
	}
	for i, entry := range s.entries {
		o := other.entries[i]
		if entry.FieldID != o.FieldID || entry.Type != o.Type || !entry.Rule.equal(o.Rule) {
			return false
		}
	}
	return true
}

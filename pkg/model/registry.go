package model

import internalmodel "github.com/goliatone/go-formbuilder/internal/model"

// FieldTypes lists the closed enumeration in declaration order.
func FieldTypes() []FieldType {
	return internalmodel.FieldTypes()
}

// ParseFieldType resolves a raw type tag.
func ParseFieldType(raw string) (FieldType, bool) {
	return internalmodel.ParseFieldType(raw)
}

// LabelFor returns the default label for t.
func LabelFor(t FieldType) string {
	return internalmodel.LabelFor(t)
}

// NormalizeLabel trims and collapses a user supplied label.
func NormalizeLabel(label string) string {
	return internalmodel.NormalizeLabel(label)
}

// DefaultOptions returns the initial choices for t.
func DefaultOptions(t FieldType) []string {
	return internalmodel.DefaultOptions(t)
}

// HintsFor returns default presentation hints for t.
func HintsFor(t FieldType) Hints {
	return internalmodel.HintsFor(t)
}

// QuickAddTypes lists the builder's one-click palette.
func QuickAddTypes() []QuickAdd {
	return internalmodel.QuickAddTypes()
}

// ValidateDocument checks id presence, uniqueness and type membership.
func ValidateDocument(doc FormDocument) error {
	return internalmodel.ValidateDocument(doc)
}

// CloneFields deep-copies a field slice.
func CloneFields(fields []Field) []Field {
	return internalmodel.CloneFields(fields)
}

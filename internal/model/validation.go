package model

import (
	"errors"
	"fmt"
)

var (
	errFieldIDMissing   = errors.New("model: field id is required")
	errFieldTypeUnknown = errors.New("model: unknown field type")
	errFieldIDDuplicate = errors.New("model: duplicate field id")
)

// ValidateDocument checks the structural invariants of a document built
// outside the document operations (decoded JSON, hand-written fixtures):
// every field has an id, ids are unique and types belong to the enumeration.
// Documents produced by the document package always pass.
func ValidateDocument(doc FormDocument) error {
	seen := make(map[string]struct{}, len(doc.Fields))
	for idx, field := range doc.Fields {
		if field.ID == "" {
			return fmt.Errorf("fields[%d]: %w", idx, errFieldIDMissing)
		}
		if !field.Type.Valid() {
			return fmt.Errorf("fields[%d] %q: %w", idx, field.Type, errFieldTypeUnknown)
		}
		if _, exists := seen[field.ID]; exists {
			return fmt.Errorf("fields[%d] %q: %w", idx, field.ID, errFieldIDDuplicate)
		}
		seen[field.ID] = struct{}{}
	}
	return nil
}

package document

import (
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/reorder"
	"github.com/goliatone/go-formbuilder/pkg/theming"
)

// Edit is a single user action against a document.
type Edit interface {
	Apply(model.FormDocument) model.FormDocument
}

// StructuralEdit is implemented by edits that may change the field list.
type StructuralEdit interface {
	Edit
	Structural() bool
}

// Apply folds edits over doc in order.
func Apply(doc model.FormDocument, edits ...Edit) model.FormDocument {
	for _, edit := range edits {
		if edit == nil {
			continue
		}
		doc = edit.Apply(doc)
	}
	return doc
}

// Structural reports whether edit can change the field list.
func Structural(edit Edit) bool {
	s, ok := edit.(StructuralEdit)
	return ok && s.Structural()
}

type AddFieldEdit struct {
	Type    model.FieldType
	Label   string
	Options []FieldOption
}

func (e AddFieldEdit) Apply(doc model.FormDocument) model.FormDocument {
	return AddField(doc, e.Type, e.Label, e.Options...)
}

func (AddFieldEdit) Structural() bool { return true }

type DeleteFieldEdit struct {
	ID string
}

func (e DeleteFieldEdit) Apply(doc model.FormDocument) model.FormDocument {
	return DeleteField(doc, e.ID)
}

func (DeleteFieldEdit) Structural() bool { return true }

// ReorderEdit is a completed drag gesture.
type ReorderEdit struct {
	SourceID string
	Target   reorder.Target
}

func (e ReorderEdit) Apply(doc model.FormDocument) model.FormDocument {
	return Move(doc, e.SourceID, e.Target)
}

func (ReorderEdit) Structural() bool { return true }

// OptionsEdit changes select choices. It counts as structural because the
// options travel with the field list.
type OptionsEdit struct {
	ID      string
	Options []string
}

func (e OptionsEdit) Apply(doc model.FormDocument) model.FormDocument {
	return SetOptions(doc, e.ID, e.Options)
}

func (OptionsEdit) Structural() bool { return true }

type ThemeEdit struct {
	Section theming.Section
	Key     theming.Key
	Value   string
}

func (e ThemeEdit) Apply(doc model.FormDocument) model.FormDocument {
	return UpdateTheme(doc, e.Section, e.Key, e.Value)
}

type FontFamilyEdit struct {
	Family theming.FontFamily
}

func (e FontFamilyEdit) Apply(doc model.FormDocument) model.FormDocument {
	return SetFontFamily(doc, e.Family)
}

type RenameEdit struct {
	Name string
}

func (e RenameEdit) Apply(doc model.FormDocument) model.FormDocument {
	return Rename(doc, e.Name)
}

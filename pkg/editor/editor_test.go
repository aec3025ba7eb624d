package editor_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/internal/log"
	"github.com/goliatone/go-formbuilder/pkg/document"
	"github.com/goliatone/go-formbuilder/pkg/editor"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/preview"
	"github.com/goliatone/go-formbuilder/pkg/theming"
	"github.com/goliatone/go-formbuilder/pkg/validation"
)

func counter() document.IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("f%d", n)
	}
}

func newEditor(opts ...editor.Option) *editor.Editor {
	base := []editor.Option{editor.WithLogger(log.Nop()), editor.WithIDGenerator(counter())}
	return editor.New(append(base, opts...)...)
}

func TestNewEditorStartsEmpty(t *testing.T) {
	e := newEditor(editor.WithName("Signup"))
	doc := e.Document()
	if doc.Name != "Signup" || len(doc.Fields) != 0 {
		t.Fatalf("unexpected initial document: %+v", doc)
	}
	if e.Schema().Len() != 0 {
		t.Fatalf("expected empty schema")
	}
}

func TestSchemaFollowsStructuralEdits(t *testing.T) {
	e := newEditor()
	e.AddField(model.FieldTypeText, "")
	e.AddField(model.FieldTypeEmail, "")
	e.AddField(model.FieldTypePhone, "")

	if diff := cmp.Diff([]string{"f1", "f2", "f3"}, e.Schema().FieldIDs()); diff != "" {
		t.Fatalf("schema ids mismatch (-want +got):\n%s", diff)
	}

	e.Reorder("f3", "f1")
	if diff := cmp.Diff([]string{"f3", "f1", "f2"}, e.Schema().FieldIDs()); diff != "" {
		t.Fatalf("schema ids mismatch after reorder (-want +got):\n%s", diff)
	}

	e.DeleteField("f1")
	if !e.Schema().Equal(validation.Derive(e.Document().Fields)) {
		t.Fatalf("schema out of date after delete")
	}
	if _, ok := e.Schema().Rule("f1"); ok {
		t.Fatalf("deleted field still has a rule")
	}
}

func TestListenersSeeFreshSchema(t *testing.T) {
	e := newEditor()
	var seen [][]string
	unsubscribe := e.Subscribe(func(doc model.FormDocument, schema validation.Schema) {
		if !schema.Equal(validation.Derive(doc.Fields)) {
			t.Errorf("listener saw stale schema")
		}
		seen = append(seen, schema.FieldIDs())
	})

	e.AddField(model.FieldTypeDate, "")
	e.UpdateTheme(theming.SectionInput, theming.KeyBorderColor, "#000000")
	unsubscribe()
	e.AddField(model.FieldTypeText, "")

	want := [][]string{{"f1"}, {"f1"}}
	if diff := cmp.Diff(want, seen); diff != "" {
		t.Fatalf("notifications mismatch (-want +got):\n%s", diff)
	}
}

func TestThemeEditKeepsFields(t *testing.T) {
	e := newEditor()
	before := e.AddField(model.FieldTypeSelect, "Size", document.WithOptions("S", "M"))
	after := e.UpdateTheme(theming.SectionLabel, theming.KeyFontSize, "18px")
	if diff := cmp.Diff(before.Fields, after.Fields); diff != "" {
		t.Fatalf("fields changed (-want +got):\n%s", diff)
	}
	if after.Theme.Label.FontSize != "18px" {
		t.Fatalf("theme not updated")
	}
}

func TestResetStartsNewForm(t *testing.T) {
	e := newEditor(editor.WithName("Survey"))
	e.AddField(model.FieldTypeText, "")
	e.UpdateTheme(theming.SectionButton, theming.KeyColor, "#000000")

	doc := e.Reset()
	if len(doc.Fields) != 0 || e.Schema().Len() != 0 {
		t.Fatalf("reset kept fields")
	}
	if diff := cmp.Diff(theming.Default(), doc.Theme); diff != "" {
		t.Fatalf("reset kept theme (-want +got):\n%s", diff)
	}
	if doc.Name != "Survey" {
		t.Fatalf("expected configured name, got %q", doc.Name)
	}
}

func TestLoadReplacesDocument(t *testing.T) {
	e := newEditor()
	e.AddField(model.FieldTypeText, "")

	var seen int
	e.Subscribe(func(doc model.FormDocument, schema validation.Schema) {
		seen = schema.Len()
	})

	seed := document.AddField(document.New("Seed"), model.FieldTypeEmail, "", document.WithID("email"))
	seed = document.AddField(seed, model.FieldTypePhone, "", document.WithID("phone"))
	got := e.Load(seed)
	if diff := cmp.Diff(seed, got); diff != "" {
		t.Fatalf("loaded document mismatch (-want +got):\n%s", diff)
	}
	if seen != 2 || e.Schema().Len() != 2 {
		t.Fatalf("schema not re-derived: listener saw %d, editor has %d", seen, e.Schema().Len())
	}

	seed.Fields[0].Label = "changed"
	if e.Document().Fields[0].Label == "changed" {
		t.Fatalf("editor shares fields with the loaded document")
	}
}

func TestWithDocument(t *testing.T) {
	seed := document.AddField(document.New("Seed"), model.FieldTypeEmail, "", document.WithID("email"))
	e := newEditor(editor.WithDocument(seed))
	if diff := cmp.Diff(seed, e.Document()); diff != "" {
		t.Fatalf("document mismatch (-want +got):\n%s", diff)
	}
	result := e.Validate(map[string]string{"email": "nope"})
	if result.CanSubmit || result.Errors["email"] != validation.MessageInvalidEmail {
		t.Fatalf("unexpected result: %+v", result.Errors)
	}
}

func TestPreviewUsesCurrentDocument(t *testing.T) {
	e := newEditor()
	e.AddField(model.FieldTypeText, "Name")

	var got map[string]string
	session := e.Preview(preview.WithSubmitHandler(func(values map[string]string) { got = values }))
	session.Input("f1", "Ada")
	if _, err := session.Submit(); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if diff := cmp.Diff(map[string]string{"f1": "Ada"}, got); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestDispatchPointerAddUsesEditorIDs(t *testing.T) {
	e := newEditor()
	e.Dispatch(document.AddFieldEdit{Type: model.FieldTypeText})
	doc := e.Dispatch(&document.AddFieldEdit{Type: model.FieldTypeEmail})
	if diff := cmp.Diff([]string{"f1", "f2"}, document.IDs(doc)); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
	if e.Schema().Len() != 2 {
		t.Fatalf("schema not re-derived for pointer edit")
	}

	var nilEdit *document.AddFieldEdit
	if got := e.Dispatch(nilEdit); len(got.Fields) != 2 {
		t.Fatalf("nil edit changed the document: %+v", got.Fields)
	}
}

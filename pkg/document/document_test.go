package document_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/document"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/reorder"
	"github.com/goliatone/go-formbuilder/pkg/testsupport"
	"github.com/goliatone/go-formbuilder/pkg/theming"
)

func sequence(ids ...string) document.IDGenerator {
	next := 0
	return func() string {
		id := ids[next%len(ids)]
		next++
		return id
	}
}

func TestNewDocument(t *testing.T) {
	doc := document.New("  ")
	if doc.Name != document.DefaultName {
		t.Fatalf("expected default name, got %q", doc.Name)
	}
	if len(doc.Fields) != 0 {
		t.Fatalf("expected no fields, got %d", len(doc.Fields))
	}
	if diff := cmp.Diff(theming.Default(), doc.Theme); diff != "" {
		t.Fatalf("theme mismatch (-want +got):\n%s", diff)
	}
}

func TestAddFieldDefaults(t *testing.T) {
	doc := document.AddField(document.New("Signup"), model.FieldTypeEmail, "", document.WithID("email"))
	want := []model.Field{{
		ID:       "email",
		Type:     model.FieldTypeEmail,
		Label:    "Email",
		Required: true,
		Options:  []string{},
	}}
	if diff := cmp.Diff(want, doc.Fields); diff != "" {
		t.Fatalf("field mismatch (-want +got):\n%s", diff)
	}
}

func TestAddFieldTrimsLabelAndKeepsOptions(t *testing.T) {
	doc := document.AddField(document.New(""), model.FieldTypeSelect, "  Size  ",
		document.WithID("size"), document.WithOptions("S", "M", "L"))
	field, ok := document.Field(doc, "size")
	if !ok {
		t.Fatalf("field not found")
	}
	if field.Label != "Size" {
		t.Fatalf("expected trimmed label, got %q", field.Label)
	}
	if diff := cmp.Diff([]string{"S", "M", "L"}, field.Options); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestAddFieldKeepsPunctuationInLabels(t *testing.T) {
	cases := map[string]string{
		"E-mail":            "E-mail",
		"first_name":        "first_name",
		"  T-shirt   size ": "T-shirt size",
	}
	for in, want := range cases {
		doc := document.AddField(document.New(""), model.FieldTypeText, in, document.WithID("f"))
		if got := doc.Fields[0].Label; got != want {
			t.Fatalf("AddField label %q stored as %q, want %q", in, got, want)
		}
	}
}

func TestAddFieldUsesUUIDByDefault(t *testing.T) {
	doc := document.AddField(document.New(""), model.FieldTypeText, "")
	if len(doc.Fields[0].ID) != 36 {
		t.Fatalf("expected uuid id, got %q", doc.Fields[0].ID)
	}
}

func TestAddFieldAvoidsCollisions(t *testing.T) {
	doc := document.New("")
	doc = document.AddField(doc, model.FieldTypeText, "", document.WithID("a"))
	doc = document.AddField(doc, model.FieldTypeText, "", document.WithID("a"), document.WithIDGenerator(sequence("a", "b")))
	doc = document.AddField(doc, model.FieldTypeText, "", document.WithIDGenerator(sequence("a")))

	if diff := cmp.Diff([]string{"a", "b", "a-2"}, document.IDs(doc)); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
}

func TestIDsStayUniqueUnderAddAndDelete(t *testing.T) {
	doc := document.New("")
	gen := sequence("f1", "f2", "f3", "f1", "f4", "f2", "f5")
	for i := 0; i < 12; i++ {
		doc = document.AddField(doc, model.FieldTypeText, "", document.WithIDGenerator(gen))
		if i%3 == 2 {
			doc = document.DeleteField(doc, doc.Fields[0].ID)
		}
		seen := map[string]bool{}
		for _, id := range document.IDs(doc) {
			if seen[id] {
				t.Fatalf("step %d: duplicate id %q in %v", i, id, document.IDs(doc))
			}
			seen[id] = true
		}
	}
}

func TestDeleteFieldKeepsSurvivorsUnchanged(t *testing.T) {
	doc := document.New("")
	for _, id := range []string{"A", "B", "C"} {
		doc = document.AddField(doc, model.FieldTypeText, id, document.WithID(id))
	}
	next := document.DeleteField(doc, "B")
	if diff := cmp.Diff([]model.Field{doc.Fields[0], doc.Fields[2]}, next.Fields); diff != "" {
		t.Fatalf("survivors changed (-want +got):\n%s", diff)
	}
	if len(doc.Fields) != 3 {
		t.Fatalf("input document mutated")
	}
}

func TestDeleteMissingFieldReturnsEqualDocument(t *testing.T) {
	doc := document.AddField(document.New("x"), model.FieldTypePhone, "", document.WithID("p"))
	got := document.DeleteField(doc, "missing")
	if diff := cmp.Diff(doc, got); diff != "" {
		t.Fatalf("document changed (-want +got):\n%s", diff)
	}
	if got.Fields[0].Options == nil {
		t.Fatalf("empty options turned into nil")
	}
}

func TestReorderFields(t *testing.T) {
	doc := document.New("")
	for _, id := range []string{"A", "B", "C"} {
		doc = document.AddField(doc, model.FieldTypeText, id, document.WithID(id))
	}

	cases := []struct {
		source, dest string
		want         []string
	}{
		{"C", "A", []string{"C", "A", "B"}},
		{"A", "C", []string{"B", "C", "A"}},
		{"A", "", []string{"A", "B", "C"}},
		{"A", "A", []string{"A", "B", "C"}},
		{"Z", "A", []string{"A", "B", "C"}},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%s->%s", tc.source, tc.dest), func(t *testing.T) {
			got := document.ReorderFields(doc, tc.source, tc.dest)
			if diff := cmp.Diff(tc.want, document.IDs(got)); diff != "" {
				t.Fatalf("order mismatch (-want +got):\n%s", diff)
			}
		})
	}
	if diff := cmp.Diff([]string{"A", "B", "C"}, document.IDs(doc)); diff != "" {
		t.Fatalf("input mutated (-want +got):\n%s", diff)
	}
}

func TestUpdateThemeLeavesFieldsAlone(t *testing.T) {
	doc := document.AddField(document.New(""), model.FieldTypeDate, "", document.WithID("d"))
	next := document.UpdateTheme(doc, theming.SectionButton, theming.KeyBackgroundColor, "#000000")
	if next.Theme.Button.BackgroundColor != "#000000" {
		t.Fatalf("theme not updated: %+v", next.Theme.Button)
	}
	if next.Theme.Button.Color != doc.Theme.Button.Color {
		t.Fatalf("sibling leaf changed")
	}
	if doc.Theme.Button.BackgroundColor != theming.Default().Button.BackgroundColor {
		t.Fatalf("input theme mutated")
	}
	if diff := cmp.Diff(doc.Fields, next.Fields); diff != "" {
		t.Fatalf("fields changed (-want +got):\n%s", diff)
	}
}

func TestSetOptionsDoesNotShareSlices(t *testing.T) {
	doc := document.AddField(document.New(""), model.FieldTypeSelect, "", document.WithID("s"), document.WithOptions("a"))
	options := []string{"x", "y"}
	next := document.SetOptions(doc, "s", options)
	options[0] = "mutated"

	field, _ := document.Field(next, "s")
	if diff := cmp.Diff([]string{"x", "y"}, field.Options); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
	original, _ := document.Field(doc, "s")
	if diff := cmp.Diff([]string{"a"}, original.Options); diff != "" {
		t.Fatalf("input options mutated (-want +got):\n%s", diff)
	}
}

func TestApplyEdits(t *testing.T) {
	doc := document.Apply(document.New(""),
		document.RenameEdit{Name: "Event"},
		document.AddFieldEdit{Type: model.FieldTypeText, Options: []document.FieldOption{document.WithID("A")}},
		document.AddFieldEdit{Type: model.FieldTypeEmail, Options: []document.FieldOption{document.WithID("B")}},
		document.AddFieldEdit{Type: model.FieldTypeDate, Options: []document.FieldOption{document.WithID("C")}},
		document.ReorderEdit{SourceID: "C", Target: reorder.Over("A")},
		document.DeleteFieldEdit{ID: "B"},
		document.FontFamilyEdit{Family: theming.FontMono},
		document.ThemeEdit{Section: theming.SectionLabel, Key: theming.KeyColor, Value: "#111111"},
		nil,
	)

	if doc.Name != "Event" {
		t.Fatalf("expected renamed document, got %q", doc.Name)
	}
	if diff := cmp.Diff([]string{"C", "A"}, document.IDs(doc)); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
	if doc.Theme.Input.FontFamily != "font-mono" || doc.Theme.Label.FontFamily != "font-mono" {
		t.Fatalf("font family not applied: %+v", doc.Theme)
	}
	if doc.Theme.Label.Color != "#111111" {
		t.Fatalf("label colour not applied")
	}
}

func TestStructural(t *testing.T) {
	if !document.Structural(document.DeleteFieldEdit{ID: "x"}) {
		t.Fatalf("delete should be structural")
	}
	if document.Structural(document.ThemeEdit{}) {
		t.Fatalf("theme edit should not be structural")
	}
}

func TestDecodedFixtureMatchesBuiltDocument(t *testing.T) {
	loaded := testsupport.LoadDocument(t, "testdata/contact.json")
	if diff := testsupport.CompareDocuments(testsupport.ContactDocument(), loaded); diff != "" {
		t.Fatalf("fixture mismatch (-want +got):\n%s", diff)
	}

	next := document.AddField(loaded, model.FieldTypeText, "Notes", document.WithID("name"))
	if err := model.ValidateDocument(next); err != nil {
		t.Fatalf("collision produced an invalid document: %v", err)
	}
}

func TestDecodedFixtureRejectsDuplicateIDs(t *testing.T) {
	if _, err := testsupport.LoadDocumentFromPath("testdata/duplicate_ids.json"); err == nil {
		t.Fatalf("expected duplicate ids to be rejected")
	}
}

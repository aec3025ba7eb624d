package openapi_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/openapi"
	"github.com/goliatone/go-formbuilder/pkg/testsupport"
	"github.com/goliatone/go-formbuilder/pkg/validation"
)

func TestExportContactDocument(t *testing.T) {
	schema := openapi.Export(testsupport.ContactDocument())

	if schema.Title != "Contact" {
		t.Fatalf("unexpected title %q", schema.Title)
	}
	want := []string{"name", "email", "phone", "birthday"}
	if diff := cmp.Diff(want, schema.Required); diff != "" {
		t.Fatalf("required mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, schema.Extensions[openapi.ExtensionOrder]); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}

	phone := schema.Properties["phone"].Value
	if phone.MinLength != validation.PhoneMinDigits {
		t.Fatalf("expected phone minLength %d, got %d", validation.PhoneMinDigits, phone.MinLength)
	}
	if phone.MaxLength == nil || *phone.MaxLength != validation.PhoneMaxDigits {
		t.Fatalf("expected phone maxLength %d, got %v", validation.PhoneMaxDigits, phone.MaxLength)
	}
	if phone.Pattern != validation.PhonePattern {
		t.Fatalf("unexpected phone pattern %q", phone.Pattern)
	}

	email := schema.Properties["email"].Value
	if email.Format != validation.FormatEmail || email.Pattern != validation.EmailPattern {
		t.Fatalf("unexpected email constraints: format=%q pattern=%q", email.Format, email.Pattern)
	}
	if email.Title != "Email" {
		t.Fatalf("unexpected email title %q", email.Title)
	}

	name := schema.Properties["name"].Value
	if name.MinLength != 1 || name.Pattern != openapi.NonBlankPattern || name.Format != "" {
		t.Fatalf("text field should only be non-blank: %+v", name)
	}
	if got := name.Extensions[openapi.ExtensionType]; got != "text" {
		t.Fatalf("unexpected type extension %v", got)
	}
}

func TestExportSelectEnum(t *testing.T) {
	schema := openapi.Export(testsupport.SelectDocument("S", "M"))
	if diff := cmp.Diff([]any{"S", "M"}, schema.Properties["size"].Value.Enum); diff != "" {
		t.Fatalf("enum mismatch (-want +got):\n%s", diff)
	}

	empty := openapi.Export(testsupport.SelectDocument())
	if empty.Properties["size"].Value.Enum != nil {
		t.Fatalf("expected no enum without options")
	}
}

func TestExportEmptyDocument(t *testing.T) {
	schema := openapi.Export(model.FormDocument{Name: "Empty"})
	if len(schema.Properties) != 0 || len(schema.Required) != 0 {
		t.Fatalf("expected empty object schema, got %+v", schema)
	}
}

func TestValidateValues(t *testing.T) {
	schema := openapi.Export(testsupport.ContactDocument())

	if err := openapi.ValidateValues(schema, testsupport.ValidContactValues()); err != nil {
		t.Fatalf("valid values rejected: %v", err)
	}

	short := testsupport.ValidContactValues()
	short["phone"] = "555"
	if err := openapi.ValidateValues(schema, short); err == nil {
		t.Fatalf("expected short phone to be rejected")
	}

	missing := testsupport.ValidContactValues()
	delete(missing, "name")
	if err := openapi.ValidateValues(schema, missing); err == nil {
		t.Fatalf("expected missing field to be rejected")
	}

	blank := testsupport.ValidContactValues()
	blank["name"] = ""
	if err := openapi.ValidateValues(schema, blank); err == nil {
		t.Fatalf("expected blank field to be rejected")
	}

	spaces := testsupport.ValidContactValues()
	spaces["name"] = "   "
	if err := openapi.ValidateValues(schema, spaces); err == nil {
		t.Fatalf("expected whitespace-only field to be rejected")
	}
}

func TestDocumentIsValidOpenAPI(t *testing.T) {
	spec := openapi.Document(testsupport.ContactDocument(), "")
	if err := openapi.ValidateDocument(context.Background(), spec); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if spec.Components.Schemas["Contact"] == nil {
		t.Fatalf("expected Contact component, got %v", spec.Components.Schemas)
	}
	if spec.Paths.Value("/submit") == nil {
		t.Fatalf("expected /submit path")
	}

	data, err := json.Marshal(spec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded["openapi"] != "3.0.3" {
		t.Fatalf("unexpected openapi version %v", decoded["openapi"])
	}
}

func TestComponentName(t *testing.T) {
	cases := map[string]string{
		"Contact":          "Contact",
		"event sign-up":    "EventSignUp",
		"  ":               "Form",
		"2024 survey form": "2024SurveyForm",
	}
	for in, want := range cases {
		if got := openapi.ComponentName(in); got != want {
			t.Fatalf("ComponentName(%q) = %q, want %q", in, got, want)
		}
	}
}

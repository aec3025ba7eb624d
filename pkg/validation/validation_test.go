package validation_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/validation"
)

func field(id string, t model.FieldType) model.Field {
	return model.Field{ID: id, Type: t, Label: id, Required: true}
}

func TestCheckByType(t *testing.T) {
	cases := []struct {
		name  string
		typ   model.FieldType
		value string
		want  string
	}{
		{"email ok", model.FieldTypeEmail, "a@b.com", ""},
		{"email invalid", model.FieldTypeEmail, "a@b", validation.MessageInvalidEmail},
		{"email blank", model.FieldTypeEmail, "   ", validation.MessageRequired},
		{"phone short", model.FieldTypePhone, "12345", validation.MessagePhoneMin},
		{"phone ten", model.FieldTypePhone, "1234567890", ""},
		{"phone fifteen", model.FieldTypePhone, "123456789012345", ""},
		{"phone sixteen", model.FieldTypePhone, "1234567890123456", validation.MessagePhoneMax},
		{"phone letters", model.FieldTypePhone, "12345abcde", validation.MessagePhoneDigits},
		{"phone empty", model.FieldTypePhone, "", validation.MessageRequired},
		{"date ok", model.FieldTypeDate, "2024-01-31", ""},
		{"date month 13", model.FieldTypeDate, "2024-13-01", ""},
		{"date slashes", model.FieldTypeDate, "2024/01/31", validation.MessageInvalidDate},
		{"date empty", model.FieldTypeDate, "", validation.MessageRequired},
		{"text ok", model.FieldTypeText, "x", ""},
		{"text blank", model.FieldTypeText, " \t", validation.MessageRequired},
		{"number any string", model.FieldTypeNumber, "abc", ""},
		{"select blank", model.FieldTypeSelect, "", validation.MessageRequired},
		{"custom ok", model.FieldTypeCustom, "value", ""},
		{"address ok", model.FieldTypeAddress, "1 Main St", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			msg, ok := validation.RuleFor(tc.typ).Check(tc.value)
			if msg != tc.want {
				t.Fatalf("Check(%q) = %q, want %q", tc.value, msg, tc.want)
			}
			if ok != (tc.want == "") {
				t.Fatalf("Check(%q) ok = %v", tc.value, ok)
			}
		})
	}
}

func TestRuleForIsTotal(t *testing.T) {
	for _, typ := range model.FieldTypes() {
		rule := validation.RuleFor(typ)
		if rule.Kind == "" || len(rule.Constraints) == 0 {
			t.Fatalf("type %s has no rule", typ)
		}
		if _, ok := rule.Constraint(model.ValidationRuleRequired); !ok {
			t.Fatalf("type %s does not require a value", typ)
		}
		for _, c := range rule.Constraints {
			if c.Params["message"] == "" {
				t.Fatalf("type %s constraint %s has no message", typ, c.Kind)
			}
		}
	}
}

func TestDeriveFollowsFieldOrder(t *testing.T) {
	schema := validation.Derive([]model.Field{
		field("b", model.FieldTypeEmail),
		field("a", model.FieldTypePhone),
	})
	if diff := cmp.Diff([]string{"b", "a"}, schema.FieldIDs()); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
	rule, ok := schema.Rule("a")
	if !ok || rule.Kind != validation.RulePhone {
		t.Fatalf("unexpected rule for a: %+v", rule)
	}
	if _, ok := schema.Rule("missing"); ok {
		t.Fatalf("unexpected rule for missing id")
	}
}

func TestDeriveEmpty(t *testing.T) {
	schema := validation.Derive(nil)
	if schema.Len() != 0 {
		t.Fatalf("expected empty schema")
	}
	result := validation.Validate(schema, nil)
	if !result.CanSubmit || len(result.Errors) != 0 {
		t.Fatalf("empty schema should accept: %+v", result)
	}
}

func TestDeriveIsPure(t *testing.T) {
	fields := []model.Field{
		field("a", model.FieldTypeText),
		field("b", model.FieldTypeDate),
	}
	first := validation.Derive(fields)

	relabelled := model.CloneFields(fields)
	relabelled[0].Label = "Something else"
	relabelled[1].Options = []string{"ignored"}
	if !first.Equal(validation.Derive(relabelled)) {
		t.Fatalf("schema should depend only on ids and types")
	}
	if !first.Equal(validation.Derive(fields)) {
		t.Fatalf("schema not deterministic")
	}

	reordered := []model.Field{fields[1], fields[0]}
	if first.Equal(validation.Derive(reordered)) {
		t.Fatalf("order change should produce a different schema")
	}
	retyped := model.CloneFields(fields)
	retyped[0].Type = model.FieldTypeEmail
	if first.Equal(validation.Derive(retyped)) {
		t.Fatalf("type change should produce a different schema")
	}
}

func TestValidateScenario(t *testing.T) {
	schema := validation.Derive([]model.Field{
		field("email", model.FieldTypeEmail),
		field("phone", model.FieldTypePhone),
		field("date", model.FieldTypeDate),
		field("name", model.FieldTypeText),
	})

	result := validation.Validate(schema, map[string]string{
		"email": "a@b",
		"phone": "12345",
		"date":  "2024-13-01",
		"extra": "ignored",
	})
	want := map[string]string{
		"email": validation.MessageInvalidEmail,
		"phone": validation.MessagePhoneMin,
		"name":  validation.MessageRequired,
	}
	if diff := cmp.Diff(want, result.Errors); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
	if result.CanSubmit {
		t.Fatalf("expected submission to be blocked")
	}
	wantIssues := []validation.Issue{
		{Field: "email", Message: validation.MessageInvalidEmail},
		{Field: "phone", Message: validation.MessagePhoneMin},
		{Field: "name", Message: validation.MessageRequired},
	}
	if diff := cmp.Diff(wantIssues, result.Issues()); diff != "" {
		t.Fatalf("issues mismatch (-want +got):\n%s", diff)
	}

	ok := validation.Validate(schema, map[string]string{
		"email": "a@b.com",
		"phone": "1234567890",
		"date":  "2024-01-01",
		"name":  "Ada",
	})
	if !ok.CanSubmit || len(ok.Errors) != 0 {
		t.Fatalf("expected clean result, got %+v", ok.Errors)
	}
}

func TestFilterPhone(t *testing.T) {
	cases := []struct {
		raw  string
		want validation.PhoneInput
	}{
		{"12a3", validation.PhoneInput{Value: "123", Stripped: true}},
		{"123", validation.PhoneInput{Value: "123"}},
		{"", validation.PhoneInput{}},
		{"+1 (555) 010-9999", validation.PhoneInput{Value: "15550109999", Stripped: true}},
		{"١٢٣", validation.PhoneInput{Value: "", Stripped: true}},
	}
	for _, tc := range cases {
		got := validation.FilterPhone(tc.raw)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Fatalf("FilterPhone(%q) mismatch (-want +got):\n%s", tc.raw, diff)
		}
	}
	if validation.FilterPhone("12a3").Message() != validation.PhoneFilterMessage {
		t.Fatalf("expected filter message")
	}
	if validation.FilterPhone("123").Message() != "" {
		t.Fatalf("expected no filter message")
	}
}

func TestFilterPhoneIsIdempotent(t *testing.T) {
	inputs := []string{"12a3", "abc", "555-0100", strings.Repeat("9x", 20)}
	for _, raw := range inputs {
		once := validation.FilterPhone(raw)
		twice := validation.FilterPhone(once.Value)
		if twice.Value != once.Value || twice.Stripped {
			t.Fatalf("filter not idempotent for %q: %+v then %+v", raw, once, twice)
		}
	}
}

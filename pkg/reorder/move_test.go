package reorder_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/reorder"
)

func TestMove(t *testing.T) {
	cases := []struct {
		name     string
		from, to int
		want     []string
	}{
		{name: "forward", from: 0, to: 2, want: []string{"b", "c", "a", "d"}},
		{name: "backward", from: 3, to: 1, want: []string{"a", "d", "b", "c"}},
		{name: "adjacent", from: 1, to: 2, want: []string{"a", "c", "b", "d"}},
		{name: "same index", from: 2, to: 2, want: []string{"a", "b", "c", "d"}},
		{name: "out of range", from: 0, to: 9, want: []string{"a", "b", "c", "d"}},
		{name: "negative", from: -1, to: 0, want: []string{"a", "b", "c", "d"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := []string{"a", "b", "c", "d"}
			got := reorder.Move(input, tc.from, tc.to)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("move mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff([]string{"a", "b", "c", "d"}, input); diff != "" {
				t.Fatalf("input mutated (-want +got):\n%s", diff)
			}
		})
	}
}

func fieldsABC() []model.Field {
	return []model.Field{
		{ID: "A", Type: model.FieldTypeText, Label: "A", Required: true},
		{ID: "B", Type: model.FieldTypeEmail, Label: "B", Required: true},
		{ID: "C", Type: model.FieldTypePhone, Label: "C", Required: true},
	}
}

func ids(fields []model.Field) []string {
	out := make([]string, 0, len(fields))
	for _, field := range fields {
		out = append(out, field.ID)
	}
	return out
}

func TestFieldsMovesLastToFirst(t *testing.T) {
	got := reorder.Fields(fieldsABC(), "C", reorder.Over("A"))
	if diff := cmp.Diff([]string{"C", "A", "B"}, ids(got)); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestFieldsNoOpCases(t *testing.T) {
	cases := map[string]struct {
		source string
		target reorder.Target
	}{
		"same id":        {source: "B", target: reorder.Over("B")},
		"missing source": {source: "Z", target: reorder.Over("A")},
		"missing target": {source: "A", target: reorder.Over("Z")},
		"no target":      {source: "A", target: reorder.None},
		"empty target":   {source: "A", target: reorder.Over("")},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			input := fieldsABC()
			got := reorder.Fields(input, tc.source, tc.target)
			if diff := cmp.Diff(input, got); diff != "" {
				t.Fatalf("expected unchanged order (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFieldsAdjacentSwapIsSelfInverse(t *testing.T) {
	original := fieldsABC()
	pairs := [][2]string{{"A", "B"}, {"B", "C"}, {"B", "A"}, {"C", "B"}}
	for _, pair := range pairs {
		once := reorder.Fields(original, pair[0], reorder.Over(pair[1]))
		twice := reorder.Fields(once, pair[1], reorder.Over(pair[0]))
		if diff := cmp.Diff(ids(original), ids(twice)); diff != "" {
			t.Fatalf("swap %v not restored (-want +got):\n%s", pair, diff)
		}
	}
}

func TestFieldsPreservesIdentityAndCount(t *testing.T) {
	input := fieldsABC()
	got := reorder.Fields(input, "A", reorder.Over("C"))
	if len(got) != len(input) {
		t.Fatalf("expected %d fields, got %d", len(input), len(got))
	}
	seen := make(map[string]model.Field, len(got))
	for _, field := range got {
		if _, dup := seen[field.ID]; dup {
			t.Fatalf("duplicate id %q after reorder", field.ID)
		}
		seen[field.ID] = field
	}
	for _, field := range input {
		if diff := cmp.Diff(field, seen[field.ID]); diff != "" {
			t.Fatalf("field %q changed (-want +got):\n%s", field.ID, diff)
		}
	}
	if diff := cmp.Diff([]string{"A", "B", "C"}, ids(input)); diff != "" {
		t.Fatalf("input order mutated (-want +got):\n%s", diff)
	}
}

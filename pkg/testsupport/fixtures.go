// Package testsupport holds fixtures shared by the package tests.
package testsupport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/goliatone/go-formbuilder/pkg/document"
	"github.com/goliatone/go-formbuilder/pkg/model"
)

// Sequence returns an id generator cycling through ids.
func Sequence(ids ...string) document.IDGenerator {
	next := 0
	return func() string {
		if len(ids) == 0 {
			return ""
		}
		id := ids[next%len(ids)]
		next++
		return id
	}
}

// ContactDocument is a small form covering the validated field types.
func ContactDocument() model.FormDocument {
	doc := document.New("Contact")
	doc = document.AddField(doc, model.FieldTypeText, "Name", document.WithID("name"))
	doc = document.AddField(doc, model.FieldTypeEmail, "", document.WithID("email"))
	doc = document.AddField(doc, model.FieldTypePhone, "", document.WithID("phone"))
	doc = document.AddField(doc, model.FieldTypeDate, "Birthday", document.WithID("birthday"))
	return doc
}

// SelectDocument holds a single select field with the given options.
func SelectDocument(options ...string) model.FormDocument {
	doc := document.New("Choice")
	return document.AddField(doc, model.FieldTypeSelect, "Size", document.WithID("size"), document.WithOptions(options...))
}

// ValidContactValues satisfy every rule of ContactDocument.
func ValidContactValues() map[string]string {
	return map[string]string{
		"name":     "Ada Lovelace",
		"email":    "ada@example.com",
		"phone":    "5551234567",
		"birthday": "1815-12-10",
	}
}

// LoadDocument reads a JSON document fixture and checks its structural
// invariants. Testing helpers fail the test on error to keep callers concise.
func LoadDocument(t *testing.T, path string) model.FormDocument {
	t.Helper()

	doc, err := LoadDocumentFromPath(path)
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	return doc
}

// LoadDocumentFromPath returns a document without requiring testing.T.
func LoadDocumentFromPath(path string) (model.FormDocument, error) {
	if path == "" {
		return model.FormDocument{}, errors.New("testsupport: document path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return model.FormDocument{}, fmt.Errorf("testsupport: read document: %w", err)
	}
	var doc model.FormDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return model.FormDocument{}, fmt.Errorf("testsupport: unmarshal document: %w", err)
	}
	if err := model.ValidateDocument(doc); err != nil {
		return model.FormDocument{}, fmt.Errorf("testsupport: invalid document: %w", err)
	}
	return doc, nil
}

// CompareDocuments returns a diff string if the documents differ. Nil and
// empty option slices compare equal.
func CompareDocuments(want, got model.FormDocument) string {
	return cmp.Diff(want, got, cmpopts.EquateEmpty())
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}

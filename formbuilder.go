// Package formbuilder is the one-import entry point: it re-exports the
// document types and wraps the orchestrator for callers that only want
// rendered output or a derived schema.
package formbuilder

import (
	"context"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formbuilder/pkg/blueprint"
	"github.com/goliatone/go-formbuilder/pkg/document"
	"github.com/goliatone/go-formbuilder/pkg/editor"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/openapi"
	"github.com/goliatone/go-formbuilder/pkg/orchestrator"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/validation"
)

// FormDocument is the edited form.
type FormDocument = model.FormDocument

// Field is a single form input.
type Field = model.Field

// FieldType is the closed set of field types.
type FieldType = model.FieldType

// RenderOptions describes per-request overrides that renderers can use to
// prefill values or surface validation errors.
type RenderOptions = render.RenderOptions

// NewDocument starts an empty form.
func NewDocument(name string) FormDocument {
	return document.New(name)
}

// NewEditor exposes the editor constructor from the top-level module.
func NewEditor(options ...editor.Option) *editor.Editor {
	return editor.New(options...)
}

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Blueprints loads the embedded starter forms.
func Blueprints() (*blueprint.Store, error) {
	return blueprint.Default()
}

// Validate checks values against the rules derived from doc.
func Validate(doc FormDocument, values map[string]string) validation.Result {
	return validation.Validate(validation.Derive(doc.Fields), values)
}

// Schema exports the validation contract of doc as an OpenAPI schema.
func Schema(doc FormDocument) *openapi3.Schema {
	return openapi.Export(doc)
}

// GenerateHTML renders doc with the named renderer ("html" when empty).
func GenerateHTML(ctx context.Context, doc FormDocument, rendererName string, opts RenderOptions, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Document:      &doc,
		Renderer:      rendererName,
		RenderOptions: opts,
	})
}

// GenerateBlueprintHTML renders a named starter form.
func GenerateBlueprintHTML(ctx context.Context, name string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{Blueprint: name})
}

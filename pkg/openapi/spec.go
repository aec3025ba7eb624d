package openapi

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// DefaultVersion is the info version of generated documents.
const DefaultVersion = "1.0.0"

var nonWord = regexp.MustCompile(`[^A-Za-z0-9]+`)

// ComponentName turns a form name into a schema component key.
func ComponentName(name string) string {
	var b strings.Builder
	for _, part := range nonWord.Split(name, -1) {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	if b.Len() == 0 {
		return "Form"
	}
	return b.String()
}

// Document wraps the exported schema in a minimal OpenAPI document with the
// schema registered under components and a POST submission path.
func Document(doc model.FormDocument, path string) *openapi3.T {
	name := ComponentName(doc.Name)
	if path == "" {
		path = "/submit"
	}

	exported := Export(doc)
	body := openapi3.NewRequestBody().
		WithRequired(true).
		WithJSONSchemaRef(openapi3.NewSchemaRef("#/components/schemas/"+name, exported))
	responses := openapi3.NewResponses(
		openapi3.WithStatus(204, &openapi3.ResponseRef{Value: openapi3.NewResponse().WithDescription("submitted")}),
		openapi3.WithStatus(422, &openapi3.ResponseRef{Value: openapi3.NewResponse().WithDescription("validation failed")}),
	)

	spec := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:   doc.Name,
			Version: DefaultVersion,
		},
		Paths: openapi3.NewPaths(openapi3.WithPath(path, &openapi3.PathItem{
			Post: &openapi3.Operation{
				OperationID: "submit" + name,
				RequestBody: &openapi3.RequestBodyRef{Value: body},
				Responses:   responses,
			},
		})),
		Components: &openapi3.Components{
			Schemas: openapi3.Schemas{
				name: openapi3.NewSchemaRef("", exported),
			},
		},
	}
	return spec
}

// ValidateDocument runs kin-openapi's structural checks over a generated
// document. String formats are not checked since "email" has no built-in
// validator.
func ValidateDocument(ctx context.Context, spec *openapi3.T) error {
	if spec == nil {
		return fmt.Errorf("openapi: document is nil")
	}
	if err := spec.Validate(ctx, openapi3.DisableExamplesValidation(), openapi3.DisableSchemaFormatValidation()); err != nil {
		return fmt.Errorf("openapi: validate: %w", err)
	}
	return nil
}

// ValidateValues checks submitted values against an exported schema.
func ValidateValues(schema *openapi3.Schema, values map[string]string) error {
	if schema == nil {
		return fmt.Errorf("openapi: schema is nil")
	}
	payload := make(map[string]any, len(values))
	for key, value := range values {
		payload[key] = value
	}
	if err := schema.VisitJSON(payload); err != nil {
		return fmt.Errorf("openapi: values rejected: %w", err)
	}
	return nil
}

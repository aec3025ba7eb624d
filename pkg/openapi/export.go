package openapi

import (
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/validation"
)

const (
	// ExtensionOrder lists property names in field order.
	ExtensionOrder = "x-formbuilder-order"
	// ExtensionType carries the field type of a property.
	ExtensionType = "x-formbuilder-type"
	// NonBlankPattern rejects whitespace-only values on properties without
	// a stricter pattern.
	NonBlankPattern = `\S`
)

// Export converts doc into an object schema keyed by field id. Every field is
// required and non-blank; the derived rule adds length, pattern and format
// constraints. Select options become an enum.
func Export(doc model.FormDocument) *openapi3.Schema {
	schema := openapi3.NewObjectSchema()
	schema.Title = doc.Name
	schema.Properties = openapi3.Schemas{}

	derived := validation.Derive(doc.Fields)
	order := make([]string, 0, derived.Len())
	for _, field := range doc.Fields {
		rule, ok := derived.Rule(field.ID)
		if !ok || schema.Properties[field.ID] != nil {
			continue
		}
		schema.Properties[field.ID] = openapi3.NewSchemaRef("", property(field, rule))
		schema.Required = append(schema.Required, field.ID)
		order = append(order, field.ID)
	}
	schema.Extensions = map[string]any{ExtensionOrder: order}
	return schema
}

func property(field model.Field, rule validation.Rule) *openapi3.Schema {
	prop := openapi3.NewStringSchema().WithMinLength(1)
	prop.Title = field.Label
	prop.Extensions = map[string]any{ExtensionType: string(field.Type)}

	for _, c := range rule.Constraints {
		switch c.Kind {
		case model.ValidationRuleMinLength:
			if n, err := strconv.ParseInt(c.Params["value"], 10, 64); err == nil && n > 0 {
				prop.WithMinLength(n)
			}
		case model.ValidationRuleMaxLength:
			if n, err := strconv.ParseInt(c.Params["value"], 10, 64); err == nil {
				prop.WithMaxLength(n)
			}
		case model.ValidationRulePattern:
			prop.WithPattern(c.Params["pattern"])
		case model.ValidationRuleFormat:
			prop.WithFormat(c.Params["format"])
			if pattern := c.Params["pattern"]; pattern != "" {
				prop.WithPattern(pattern)
			}
		}
		if msg := c.Params["message"]; msg != "" && c.Kind != model.ValidationRuleRequired {
			prop.Description = appendLine(prop.Description, msg)
		}
	}

	if prop.Pattern == "" {
		prop.WithPattern(NonBlankPattern)
	}

	if field.Type == model.FieldTypeSelect && len(field.Options) > 0 {
		values := make([]any, 0, len(field.Options))
		for _, option := range field.Options {
			values = append(values, option)
		}
		prop.WithEnum(values...)
	}
	return prop
}

func appendLine(text, line string) string {
	if text == "" {
		return line
	}
	if strings.Contains(text, line) {
		return text
	}
	return text + "\n" + line
}

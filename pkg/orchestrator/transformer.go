package orchestrator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/document"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/theming"
)

// Transformer mutates a document before theme resolution and rendering.
type Transformer interface {
	Transform(ctx context.Context, doc *model.FormDocument) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, doc *model.FormDocument) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, doc *model.FormDocument) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, doc)
}

// JSONPresetTransformer applies declarative overrides loaded from a JSON file.
// Patches go through the document operations, so ids and required flags are
// untouched:
//
//	{
//	  "name": "Newsletter",
//	  "theme": {"button.backgroundColor": "#111827"},
//	  "fields": {
//	    "topic": {"label": "Subject", "options": ["Sales", "Support"]}
//	  }
//	}
type JSONPresetTransformer struct {
	document jsonTransformDocument
}

type jsonTransformDocument struct {
	Name   string                    `json:"name"`
	Theme  map[string]string         `json:"theme"`
	Fields map[string]jsonFieldPatch `json:"fields"`
}

type jsonFieldPatch struct {
	Label   string   `json:"label"`
	Options []string `json:"options"`
}

// NewJSONPresetTransformer constructs a transformer from raw JSON bytes.
func NewJSONPresetTransformer(data []byte) (*JSONPresetTransformer, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("json preset transformer: document is empty")
	}
	var doc jsonTransformDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("json preset transformer: parse document: %w", err)
	}
	for path, value := range doc.Theme {
		_, key, ok := theming.ParsePath(path)
		if !ok {
			return nil, fmt.Errorf("json preset transformer: unknown theme path %q", path)
		}
		if key == theming.KeyFontFamily {
			if _, ok := theming.ParseFontFamily(strings.TrimSpace(value)); !ok {
				return nil, fmt.Errorf("json preset transformer: unknown font family %q at %s", value, path)
			}
		}
	}
	return &JSONPresetTransformer{document: doc}, nil
}

// NewJSONPresetTransformerFromFS loads a JSON transformer document from the
// provided filesystem path.
func NewJSONPresetTransformerFromFS(fsys fs.FS, path string) (*JSONPresetTransformer, error) {
	if fsys == nil {
		return nil, errors.New("json preset transformer: filesystem is nil")
	}
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("json preset transformer: path is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("json preset transformer: read %s: %w", path, err)
	}
	return NewJSONPresetTransformer(data)
}

// Transform applies the declarative patches onto doc.
func (t *JSONPresetTransformer) Transform(ctx context.Context, doc *model.FormDocument) error {
	if doc == nil {
		return errors.New("json preset transformer: document is nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	next := *doc
	if name := strings.TrimSpace(t.document.Name); name != "" {
		next = document.Rename(next, name)
	}
	for _, path := range sortedKeys(t.document.Theme) {
		section, key, _ := theming.ParsePath(path)
		next = document.UpdateTheme(next, section, key, t.document.Theme[path])
	}

	ids := make([]string, 0, len(t.document.Fields))
	for id := range t.document.Fields {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if _, ok := document.Field(next, id); !ok {
			return fmt.Errorf("json preset transformer: field %q not found", id)
		}
		next = applyFieldPatch(next, id, t.document.Fields[id])
	}

	*doc = next
	return nil
}

func applyFieldPatch(doc model.FormDocument, id string, patch jsonFieldPatch) model.FormDocument {
	if label := model.NormalizeLabel(patch.Label); label != "" {
		fields := model.CloneFields(doc.Fields)
		for idx := range fields {
			if fields[idx].ID == id {
				fields[idx].Label = label
			}
		}
		doc.Fields = fields
	}
	if patch.Options != nil {
		doc = document.SetOptions(doc, id, patch.Options)
	}
	return doc
}

func sortedKeys(values map[string]string) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

package blueprint

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formbuilder/pkg/document"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/theming"
)

var (
	// ErrUnknownFieldType is returned for a field whose type is not in the
	// field type registry.
	ErrUnknownFieldType = errors.New("blueprint: unknown field type")
	// ErrUnknownThemePath is returned for a theme entry that does not name a
	// theme leaf.
	ErrUnknownThemePath = errors.New("blueprint: unknown theme path")
	// ErrUnknownFontFamily is returned for a font family that is not one of
	// the theme font tokens.
	ErrUnknownFontFamily = errors.New("blueprint: unknown font family")
	// ErrDuplicateKey is returned when two files declare the same form key.
	ErrDuplicateKey = errors.New("blueprint: duplicate form key")
)

// LoadFS walks fsys and parses every JSON/YAML blueprint file. When fsys is
// nil or holds no blueprint files the returned store is empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{blueprints: make(map[string]Blueprint)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isBlueprintFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("blueprint: read %s: %w", path, err)
		}
		file, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		keys := make([]string, 0, len(file.Forms))
		for key := range file.Forms {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, rawKey := range keys {
			key := strings.TrimSpace(rawKey)
			if key == "" {
				return fmt.Errorf("blueprint: file %s defines an empty form key", path)
			}
			if existing, exists := store.blueprints[key]; exists {
				return fmt.Errorf("%w: %q (files %s and %s)", ErrDuplicateKey, key, existing.Source, path)
			}
			doc, err := build(file.Forms[rawKey], key, path)
			if err != nil {
				return err
			}
			store.blueprints[key] = Blueprint{Key: key, Source: path, Document: doc}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// Default loads the embedded blueprint set.
func Default() (*Store, error) {
	return LoadFS(EmbeddedFS())
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var file documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("blueprint: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &file); err == nil {
		return file, nil
	}
	if err := yaml.Unmarshal(data, &file); err == nil {
		return file, nil
	}
	return documentFile{}, fmt.Errorf("blueprint: parse %s: invalid JSON or YAML", source)
}

func build(raw formFile, key, source string) (model.FormDocument, error) {
	name := raw.Name
	if strings.TrimSpace(name) == "" {
		name = key
	}
	doc := document.New(name)

	paths := make([]string, 0, len(raw.Theme))
	for path := range raw.Theme {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	for _, path := range paths {
		section, leaf, ok := theming.ParsePath(strings.TrimSpace(path))
		if !ok {
			return model.FormDocument{}, fmt.Errorf("%w: %q (form %q, file %s)", ErrUnknownThemePath, path, key, source)
		}
		value := strings.TrimSpace(raw.Theme[path])
		switch leaf {
		case theming.KeyFontSize:
			value = theming.ClampFontSize(section, value)
		case theming.KeyFontFamily:
			if _, ok := theming.ParseFontFamily(value); !ok {
				return model.FormDocument{}, fmt.Errorf("%w: %q at %s (form %q, file %s)", ErrUnknownFontFamily, value, path, key, source)
			}
		}
		doc = document.UpdateTheme(doc, section, leaf, value)
	}
	if token := strings.TrimSpace(raw.FontFamily); token != "" {
		family, ok := theming.ParseFontFamily(token)
		if !ok {
			return model.FormDocument{}, fmt.Errorf("%w: %q (form %q, file %s)", ErrUnknownFontFamily, token, key, source)
		}
		doc = document.SetFontFamily(doc, family)
	}

	for idx, f := range raw.Fields {
		t, ok := model.ParseFieldType(strings.TrimSpace(f.Type))
		if !ok {
			return model.FormDocument{}, fmt.Errorf("%w: %q (form %q field %d, file %s)", ErrUnknownFieldType, f.Type, key, idx, source)
		}
		id := fieldID(f, t)
		opts := []document.FieldOption{
			document.WithID(id),
			document.WithIDGenerator(func() string { return id }),
		}
		if f.Options != nil {
			opts = append(opts, document.WithOptions(f.Options...))
		}
		doc = document.AddField(doc, t, f.Label, opts...)
	}
	return doc, nil
}

// fieldID prefers an explicit id, then a slug of the label, then the type
// tag. Collisions get a numeric suffix from document.AddField.
func fieldID(f fieldFile, t model.FieldType) string {
	if id := strings.TrimSpace(f.ID); id != "" {
		return id
	}
	if slug := slugify(f.Label); slug != "" {
		return slug
	}
	return string(t)
}

func slugify(label string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(label)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func isBlueprintFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

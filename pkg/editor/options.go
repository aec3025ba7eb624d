package editor

import (
	"github.com/goliatone/go-formbuilder/internal/log"
	"github.com/goliatone/go-formbuilder/pkg/document"
	"github.com/goliatone/go-formbuilder/pkg/model"
)

// Option configures an Editor.
type Option func(*Editor)

// WithName sets the name of the initial form.
func WithName(name string) Option {
	return func(e *Editor) {
		e.name = name
	}
}

// WithIDGenerator overrides the id source used by AddField.
func WithIDGenerator(gen document.IDGenerator) Option {
	return func(e *Editor) {
		if gen != nil {
			e.ids = gen
		}
	}
}

// WithLogger overrides the editor logger.
func WithLogger(logger log.Logger) Option {
	return func(e *Editor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithDocument starts the editor from an existing document, such as a
// blueprint.
func WithDocument(doc model.FormDocument) Option {
	return func(e *Editor) {
		clone := doc.Clone()
		e.initial = &clone
	}
}

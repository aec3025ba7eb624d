// Package editor is the host loop around a form document. Each dispatched
// edit runs to completion (document update, schema re-derivation, listener
// notification) before the next one starts.
package editor

import (
	"sort"
	"sync"

	"github.com/goliatone/go-formbuilder/internal/log"
	"github.com/goliatone/go-formbuilder/pkg/document"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/preview"
	"github.com/goliatone/go-formbuilder/pkg/reorder"
	"github.com/goliatone/go-formbuilder/pkg/theming"
	"github.com/goliatone/go-formbuilder/pkg/validation"
)

// Listener is notified after every dispatched edit.
type Listener func(doc model.FormDocument, schema validation.Schema)

// Editor owns the current document and its derived schema.
type Editor struct {
	mu       sync.Mutex
	doc      model.FormDocument
	schema   validation.Schema
	name     string
	ids      document.IDGenerator
	initial  *model.FormDocument
	logger   log.Logger
	nextSub  int
	watchers map[int]Listener
}

// New creates an editor holding a new form.
func New(opts ...Option) *Editor {
	e := &Editor{
		ids:      document.NewUUID,
		logger:   log.Default(),
		watchers: map[int]Listener{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	if e.initial != nil {
		e.doc = *e.initial
		e.initial = nil
	} else {
		e.doc = document.New(e.name)
	}
	e.schema = validation.Derive(e.doc.Fields)
	return e
}

// Dispatch applies edit and returns the next document. The schema is
// re-derived before listeners run whenever the edit can touch the fields.
func (e *Editor) Dispatch(edit document.Edit) model.FormDocument {
	if edit == nil {
		return e.Document()
	}

	e.mu.Lock()
	switch add := edit.(type) {
	case document.AddFieldEdit:
		edit = e.withIDs(add)
	case *document.AddFieldEdit:
		if add == nil {
			e.mu.Unlock()
			return e.Document()
		}
		edit = e.withIDs(*add)
	}
	next := edit.Apply(e.doc)
	e.doc = next
	if document.Structural(edit) {
		e.schema = validation.Derive(next.Fields)
	}
	schema := e.schema
	listeners := e.listeners()
	e.mu.Unlock()

	e.logger.Debugf("editor: applied %T, %d field(s)", edit, len(next.Fields))
	for _, fn := range listeners {
		fn(next.Clone(), schema)
	}
	return next.Clone()
}

// withIDs puts the editor generator first so explicit options still win.
func (e *Editor) withIDs(add document.AddFieldEdit) document.AddFieldEdit {
	add.Options = append([]document.FieldOption{document.WithIDGenerator(e.ids)}, add.Options...)
	return add
}

func (e *Editor) listeners() []Listener {
	keys := make([]int, 0, len(e.watchers))
	for k := range e.watchers {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	out := make([]Listener, 0, len(keys))
	for _, k := range keys {
		out = append(out, e.watchers[k])
	}
	return out
}

// AddField appends a field of type t.
func (e *Editor) AddField(t model.FieldType, label string, opts ...document.FieldOption) model.FormDocument {
	return e.Dispatch(document.AddFieldEdit{Type: t, Label: label, Options: opts})
}

// DeleteField removes the field with id.
func (e *Editor) DeleteField(id string) model.FormDocument {
	return e.Dispatch(document.DeleteFieldEdit{ID: id})
}

// Reorder moves sourceID onto destID's slot. An empty destID is a drop
// outside the list.
func (e *Editor) Reorder(sourceID, destID string) model.FormDocument {
	return e.Dispatch(document.ReorderEdit{SourceID: sourceID, Target: reorder.Over(destID)})
}

// UpdateTheme replaces one theme leaf.
func (e *Editor) UpdateTheme(section theming.Section, key theming.Key, value string) model.FormDocument {
	return e.Dispatch(document.ThemeEdit{Section: section, Key: key, Value: value})
}

// Subscribe registers fn and returns a func that removes it.
func (e *Editor) Subscribe(fn Listener) func() {
	if fn == nil {
		return func() {}
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	id := e.nextSub
	e.nextSub++
	e.watchers[id] = fn
	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		delete(e.watchers, id)
	}
}

// Reset discards the current document and starts a new form. Listeners are
// notified with the empty document.
func (e *Editor) Reset() model.FormDocument {
	next := e.replace(document.New(e.name))
	e.logger.Infof("editor: started new form %q", next.Name)
	return next
}

// Load replaces the current document with a copy of doc, such as a
// blueprint, and notifies listeners.
func (e *Editor) Load(doc model.FormDocument) model.FormDocument {
	next := e.replace(doc.Clone())
	e.logger.Infof("editor: loaded form %q with %d field(s)", next.Name, len(next.Fields))
	return next
}

func (e *Editor) replace(doc model.FormDocument) model.FormDocument {
	e.mu.Lock()
	e.doc = doc
	e.schema = validation.Derive(e.doc.Fields)
	next, schema := e.doc.Clone(), e.schema
	listeners := e.listeners()
	e.mu.Unlock()

	for _, fn := range listeners {
		fn(next.Clone(), schema)
	}
	return next
}

// Document returns a copy of the current document.
func (e *Editor) Document() model.FormDocument {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.doc.Clone()
}

// Schema returns the schema derived from the current fields.
func (e *Editor) Schema() validation.Schema {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.schema
}

// Validate evaluates values against the current schema.
func (e *Editor) Validate(values map[string]string) validation.Result {
	return validation.Validate(e.Schema(), values)
}

// Preview starts a submission session over the current document.
func (e *Editor) Preview(opts ...preview.Option) *preview.Session {
	opts = append([]preview.Option{preview.WithLogger(e.logger)}, opts...)
	return preview.NewSession(e.Document(), opts...)
}

package preview

import (
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/goliatone/go-formbuilder/internal/log"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/validation"
)

// Session holds the entry state of one preview of a document.
type Session struct {
	mu sync.Mutex

	fields    map[string]model.Field
	schema    validation.Schema
	values    map[string]string
	transient map[string]string
	touched   map[string]bool

	attempted bool
	submitted bool
	formError string

	onSubmit SubmitHandler
	logger   log.Logger
}

// NewSession starts an empty session for doc. Every field starts with an
// empty value.
func NewSession(doc model.FormDocument, opts ...Option) *Session {
	s := &Session{
		values:    map[string]string{},
		transient: map[string]string{},
		touched:   map[string]bool{},
		logger:    log.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	s.sync(doc)
	return s
}

// Input records a keystroke for field id and returns the stored value. Phone
// input is filtered to digits first; when characters were stripped the field
// carries a transient error until the next clean keystroke. Unknown ids are
// ignored.
func (s *Session) Input(id, raw string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	field, ok := s.fields[id]
	if !ok {
		return ""
	}

	value := raw
	if field.Type == model.FieldTypePhone {
		filtered := validation.FilterPhone(raw)
		value = filtered.Value
		if msg := filtered.Message(); msg != "" {
			s.transient[id] = msg
		} else {
			delete(s.transient, id)
		}
	}
	if limit := model.HintsFor(field.Type).MaxLength; limit > 0 && utf8.RuneCountInString(value) > limit {
		value = string([]rune(value)[:limit])
	}

	s.values[id] = value
	s.touched[id] = true
	return value
}

// Value returns the stored value for id.
func (s *Session) Value(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[id]
}

// Values returns a copy of all stored values keyed by field id.
func (s *Session) Values() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyValues(s.values)
}

// Errors returns the inline errors currently visible: touched fields before
// the first submit attempt, every field after it. Transient filter errors
// take precedence over rule errors.
func (s *Session) Errors() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visibleErrors()
}

// FieldError returns the visible error of a single field.
func (s *Session) FieldError(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visibleErrors()[id]
}

func (s *Session) visibleErrors() map[string]string {
	out := map[string]string{}
	result := validation.Validate(s.schema, s.values)
	for _, id := range s.schema.FieldIDs() {
		if msg, ok := s.transient[id]; ok {
			out[id] = msg
			continue
		}
		if !s.attempted && !s.touched[id] {
			continue
		}
		if msg, ok := result.Errors[id]; ok {
			out[id] = msg
		}
	}
	return out
}

// Sync re-targets the session at an edited document. Values and errors of
// removed fields are dropped; new fields start empty.
func (s *Session) Sync(doc model.FormDocument) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sync(doc)
}

func (s *Session) sync(doc model.FormDocument) {
	s.schema = validation.Derive(doc.Fields)
	s.fields = make(map[string]model.Field, len(doc.Fields))
	for _, field := range doc.Fields {
		s.fields[field.ID] = field
		if _, ok := s.values[field.ID]; !ok {
			s.values[field.ID] = ""
		}
	}
	for id := range s.values {
		if _, ok := s.fields[id]; !ok {
			delete(s.values, id)
			delete(s.transient, id)
			delete(s.touched, id)
		}
	}
}

// Submit validates every field against the stored values. Pending filter
// errors are cleared since the stored value is already filtered. On failure
// it records the aggregate form error and returns ErrSubmissionBlocked
// without calling the handler. On success the handler runs once with a copy
// of the values.
func (s *Session) Submit() (map[string]string, error) {
	s.mu.Lock()
	if s.submitted {
		s.mu.Unlock()
		return nil, ErrAlreadySubmitted
	}
	s.attempted = true
	s.transient = map[string]string{}

	result := validation.Validate(s.schema, s.values)
	if !result.CanSubmit {
		s.formError = validation.SubmitBlockedMessage
		failing := len(result.Errors)
		s.mu.Unlock()
		s.logger.Debugf("preview: submit blocked, %d field(s) failing", failing)
		return nil, fmt.Errorf("%w: %s", ErrSubmissionBlocked, validation.SubmitBlockedMessage)
	}

	s.formError = ""
	s.submitted = true
	values := copyValues(s.values)
	handler := s.onSubmit
	s.mu.Unlock()

	s.logger.Infof("preview: form submitted with %d field(s)", len(values))
	if handler != nil {
		handler(copyValues(values))
	}
	return values, nil
}

// Submitted reports whether a submit went through.
func (s *Session) Submitted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitted
}

// FormError returns the aggregate message of the last blocked submit.
func (s *Session) FormError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.formError
}

// Schema returns the schema the session validates against.
func (s *Session) Schema() validation.Schema {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.schema
}

func copyValues(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

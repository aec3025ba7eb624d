package blueprint

import (
	"sort"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// Blueprint is a named starter document.
type Blueprint struct {
	Key      string
	Source   string
	Document model.FormDocument
}

// Store indexes loaded blueprints by key.
type Store struct {
	blueprints map[string]Blueprint
}

// Get returns a copy of the blueprint document stored under key.
func (s *Store) Get(key string) (model.FormDocument, bool) {
	bp, ok := s.Blueprint(key)
	if !ok {
		return model.FormDocument{}, false
	}
	return bp.Document, true
}

// Blueprint returns the full entry for key, including its source file.
func (s *Store) Blueprint(key string) (Blueprint, bool) {
	if s == nil {
		return Blueprint{}, false
	}
	bp, ok := s.blueprints[key]
	if !ok {
		return Blueprint{}, false
	}
	bp.Document.Fields = model.CloneFields(bp.Document.Fields)
	return bp, true
}

// Names lists the blueprint keys in sorted order.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.blueprints))
	for key := range s.blueprints {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

// Empty reports whether the store holds any blueprints.
func (s *Store) Empty() bool {
	return s == nil || len(s.blueprints) == 0
}

type documentFile struct {
	Forms map[string]formFile `json:"forms" yaml:"forms"`
}

type formFile struct {
	Name       string            `json:"name" yaml:"name"`
	FontFamily string            `json:"fontFamily" yaml:"fontFamily"`
	Theme      map[string]string `json:"theme" yaml:"theme"`
	Fields     []fieldFile       `json:"fields" yaml:"fields"`
}

type fieldFile struct {
	ID      string   `json:"id" yaml:"id"`
	Type    string   `json:"type" yaml:"type"`
	Label   string   `json:"label" yaml:"label"`
	Options []string `json:"options" yaml:"options"`
}

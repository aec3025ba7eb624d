// Package studio is the interactive form builder loop. Every menu action is
// turned into an editor edit, so the schema always tracks the document.
package studio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-formbuilder/internal/log"
	"github.com/goliatone/go-formbuilder/pkg/blueprint"
	"github.com/goliatone/go-formbuilder/pkg/document"
	"github.com/goliatone/go-formbuilder/pkg/editor"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/openapi"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/renderers/tui"
	"github.com/goliatone/go-formbuilder/pkg/theming"
)

// Menu actions in display order.
const (
	ActionAddField      = "Add field"
	ActionAddCustom     = "Add custom field"
	ActionAddSelect     = "Add select field"
	ActionDeleteField   = "Delete field"
	ActionMoveField     = "Move field"
	ActionEditTheme     = "Edit theme"
	ActionFontFamily    = "Font family"
	ActionRename        = "Rename form"
	ActionLoadBlueprint = "Load blueprint"
	ActionShowSchema    = "Show schema"
	ActionPreview       = "Preview"
	ActionNewForm       = "New form"
	ActionQuit          = "Quit"
)

// SuccessMessage is printed after a preview submit goes through.
const SuccessMessage = "Form Submitted Successfully!"

// Studio drives an editor from a prompt driver.
type Studio struct {
	editor     *editor.Editor
	driver     tui.PromptDriver
	blueprints *blueprint.Store
	logger     log.Logger
	preview    []tui.Option
}

// Option configures a Studio.
type Option func(*Studio)

// WithEditor sets the editor the studio drives.
func WithEditor(e *editor.Editor) Option {
	return func(s *Studio) {
		if e != nil {
			s.editor = e
		}
	}
}

// WithBlueprints enables the blueprint picker.
func WithBlueprints(store *blueprint.Store) Option {
	return func(s *Studio) {
		s.blueprints = store
	}
}

// WithLogger overrides the studio logger.
func WithLogger(logger log.Logger) Option {
	return func(s *Studio) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithPreviewOptions forwards options to the terminal preview renderer.
func WithPreviewOptions(opts ...tui.Option) Option {
	return func(s *Studio) {
		s.preview = append(s.preview, opts...)
	}
}

// New builds a studio around driver.
func New(driver tui.PromptDriver, opts ...Option) (*Studio, error) {
	if driver == nil {
		return nil, errors.New("studio: prompt driver is required")
	}
	s := &Studio{driver: driver, logger: log.Default()}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.editor == nil {
		s.editor = editor.New(editor.WithLogger(s.logger))
	}
	return s, nil
}

// Editor exposes the driven editor.
func (s *Studio) Editor() *editor.Editor {
	return s.editor
}

// Actions lists the menu entries available for the current document.
func (s *Studio) Actions() []string {
	actions := []string{ActionAddField, ActionAddCustom, ActionAddSelect}
	if len(s.editor.Document().Fields) > 0 {
		actions = append(actions, ActionDeleteField)
	}
	if len(s.editor.Document().Fields) > 1 {
		actions = append(actions, ActionMoveField)
	}
	actions = append(actions, ActionEditTheme, ActionFontFamily, ActionRename)
	if !s.blueprints.Empty() {
		actions = append(actions, ActionLoadBlueprint)
	}
	return append(actions, ActionShowSchema, ActionPreview, ActionNewForm, ActionQuit)
}

// Run shows the menu until the user quits or aborts.
func (s *Studio) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		actions := s.Actions()
		idx, err := s.driver.Select(ctx, tui.SelectConfig{
			Message: s.summary(),
			Options: actions,
		})
		if err != nil {
			return quitOnAbort(err)
		}
		if idx < 0 || idx >= len(actions) {
			continue
		}
		action := actions[idx]
		if action == ActionQuit {
			return nil
		}
		if err := s.Do(ctx, action); err != nil {
			if errors.Is(err, tui.ErrAborted) {
				return nil
			}
			s.logger.Warnf("studio: %s: %v", action, err)
			if err := s.driver.Info(ctx, "Error: "+err.Error()); err != nil {
				return err
			}
		}
	}
}

func quitOnAbort(err error) error {
	if errors.Is(err, tui.ErrAborted) {
		return nil
	}
	return err
}

// Do runs a single menu action.
func (s *Studio) Do(ctx context.Context, action string) error {
	switch action {
	case ActionAddField:
		return s.addQuick(ctx)
	case ActionAddCustom:
		return s.addCustom(ctx)
	case ActionAddSelect:
		return s.addSelect(ctx)
	case ActionDeleteField:
		return s.deleteField(ctx)
	case ActionMoveField:
		return s.moveField(ctx)
	case ActionEditTheme:
		return s.editTheme(ctx)
	case ActionFontFamily:
		return s.fontFamily(ctx)
	case ActionRename:
		return s.rename(ctx)
	case ActionLoadBlueprint:
		return s.loadBlueprint(ctx)
	case ActionShowSchema:
		return s.showSchema(ctx)
	case ActionPreview:
		return s.runPreview(ctx)
	case ActionNewForm:
		return s.newForm(ctx)
	case ActionQuit:
		return nil
	default:
		return fmt.Errorf("studio: unknown action %q", action)
	}
}

func (s *Studio) summary() string {
	doc := s.editor.Document()
	return fmt.Sprintf("%s (%d field(s))", doc.Name, len(doc.Fields))
}

func (s *Studio) addQuick(ctx context.Context) error {
	palette := model.QuickAddTypes()
	labels := make([]string, 0, len(palette))
	for _, entry := range palette {
		labels = append(labels, entry.Label)
	}
	idx, err := s.driver.Select(ctx, tui.SelectConfig{Message: "Field", Options: labels})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(palette) {
		return nil
	}
	s.editor.AddField(palette[idx].Type, palette[idx].Label)
	return nil
}

func (s *Studio) addCustom(ctx context.Context) error {
	types := model.FieldTypes()
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, string(t))
	}
	idx, err := s.driver.Select(ctx, tui.SelectConfig{Message: "Field type", Options: names})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(types) {
		return nil
	}
	label, err := s.driver.Input(ctx, tui.InputConfig{
		Message: "Label",
		Help:    "Leave empty for " + model.LabelFor(types[idx]),
	})
	if err != nil {
		return err
	}
	s.editor.AddField(types[idx], label)
	return nil
}

func (s *Studio) addSelect(ctx context.Context) error {
	label, err := s.driver.Input(ctx, tui.InputConfig{Message: "Label"})
	if err != nil {
		return err
	}
	raw, err := s.driver.Input(ctx, tui.InputConfig{
		Message: "Options",
		Help:    "Comma separated, e.g. Small, Medium, Large",
	})
	if err != nil {
		return err
	}
	s.editor.AddField(model.FieldTypeSelect, label, document.WithOptions(splitOptions(raw)...))
	return nil
}

func splitOptions(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if option := strings.TrimSpace(part); option != "" {
			out = append(out, option)
		}
	}
	return out
}

func (s *Studio) pickField(ctx context.Context, message string) (model.Field, bool, error) {
	fields := s.editor.Document().Fields
	if len(fields) == 0 {
		return model.Field{}, false, nil
	}
	labels := make([]string, 0, len(fields))
	for _, field := range fields {
		labels = append(labels, fmt.Sprintf("%s (%s)", field.Label, field.Type))
	}
	idx, err := s.driver.Select(ctx, tui.SelectConfig{Message: message, Options: labels})
	if err != nil {
		return model.Field{}, false, err
	}
	if idx < 0 || idx >= len(fields) {
		return model.Field{}, false, nil
	}
	return fields[idx], true, nil
}

func (s *Studio) deleteField(ctx context.Context) error {
	field, ok, err := s.pickField(ctx, "Delete")
	if err != nil || !ok {
		return err
	}
	s.editor.DeleteField(field.ID)
	return nil
}

func (s *Studio) moveField(ctx context.Context) error {
	source, ok, err := s.pickField(ctx, "Move")
	if err != nil || !ok {
		return err
	}
	target, ok, err := s.pickField(ctx, "Drop onto")
	if err != nil || !ok {
		return err
	}
	s.editor.Reorder(source.ID, target.ID)
	return nil
}

func (s *Studio) editTheme(ctx context.Context) error {
	leaves := theming.Leaves(s.editor.Document().Theme)
	paths := make([]string, 0, len(leaves))
	for path := range leaves {
		if strings.HasSuffix(path, "."+string(theming.KeyFontFamily)) {
			continue
		}
		paths = append(paths, path)
	}
	sort.Strings(paths)

	idx, err := s.driver.Select(ctx, tui.SelectConfig{Message: "Theme setting", Options: paths})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(paths) {
		return nil
	}
	path := paths[idx]
	section, key, _ := theming.ParsePath(path)

	value, err := s.driver.Input(ctx, tui.InputConfig{Message: path, Default: leaves[path]})
	if err != nil {
		return err
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	if key == theming.KeyFontSize {
		value = theming.ClampFontSize(section, value)
	}
	s.editor.UpdateTheme(section, key, value)
	return nil
}

func (s *Studio) fontFamily(ctx context.Context) error {
	families := theming.FontFamilies()
	names := make([]string, 0, len(families))
	current := 0
	active := s.editor.Document().Theme.Input.FontFamily
	for i, family := range families {
		names = append(names, family.DisplayName())
		if string(family) == active {
			current = i
		}
	}
	idx, err := s.driver.Select(ctx, tui.SelectConfig{Message: "Font family", Options: names, DefaultIndex: current})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(families) {
		return nil
	}
	s.editor.Dispatch(document.FontFamilyEdit{Family: families[idx]})
	return nil
}

func (s *Studio) rename(ctx context.Context) error {
	name, err := s.driver.Input(ctx, tui.InputConfig{Message: "Form name", Default: s.editor.Document().Name})
	if err != nil {
		return err
	}
	s.editor.Dispatch(document.RenameEdit{Name: name})
	return nil
}

func (s *Studio) loadBlueprint(ctx context.Context) error {
	names := s.blueprints.Names()
	if len(names) == 0 {
		return nil
	}
	idx, err := s.driver.Select(ctx, tui.SelectConfig{Message: "Blueprint", Options: names})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(names) {
		return nil
	}
	doc, ok := s.blueprints.Get(names[idx])
	if !ok {
		return fmt.Errorf("studio: blueprint %q not found", names[idx])
	}
	s.editor.Load(doc)
	return nil
}

func (s *Studio) showSchema(ctx context.Context) error {
	data, err := json.MarshalIndent(openapi.Export(s.editor.Document()), "", "  ")
	if err != nil {
		return fmt.Errorf("studio: encode schema: %w", err)
	}
	return s.driver.Info(ctx, string(data))
}

func (s *Studio) runPreview(ctx context.Context) error {
	doc := s.editor.Document()
	if len(doc.Fields) == 0 {
		return s.driver.Info(ctx, "Add a field to preview the form.")
	}

	opts := append([]tui.Option{tui.WithPromptDriver(s.driver)}, s.preview...)
	renderer, err := tui.New(opts...)
	if err != nil {
		return fmt.Errorf("studio: preview renderer: %w", err)
	}
	out, err := renderer.Render(ctx, doc, render.RenderOptions{})
	if err != nil {
		return err
	}
	if err := s.driver.Info(ctx, SuccessMessage); err != nil {
		return err
	}
	if err := s.driver.Info(ctx, string(out)); err != nil {
		return err
	}

	again, err := s.driver.Confirm(ctx, tui.ConfirmConfig{Message: "Create Your Own?"})
	if err != nil {
		return err
	}
	if again {
		s.editor.Reset()
	}
	return nil
}

func (s *Studio) newForm(ctx context.Context) error {
	ok, err := s.driver.Confirm(ctx, tui.ConfirmConfig{Message: "Discard the current form?"})
	if err != nil || !ok {
		return err
	}
	s.editor.Reset()
	return nil
}

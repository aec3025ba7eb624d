// Package tui previews a form in the terminal: every field is prompted in
// order, answers go through the same preview session the HTML preview uses,
// and the accepted values are serialized on submit.
package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/preview"
	"github.com/goliatone/go-formbuilder/pkg/render"
)

// Name is the registry name of the renderer.
const Name = "tui"

// Renderer implements render.Renderer for terminal-driven sessions.
type Renderer struct {
	driver            PromptDriver
	outputFormat      OutputFormat
	submitTransformer SubmitTransformer
	onSubmit          preview.SubmitHandler
	maxAttempts       int
	theme             Theme
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		outputFormat: OutputFormatJSON,
		theme:        Theme{ErrorPrefix: "✗ "},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.driver == nil {
		r.driver = NewSurveyDriver(nil)
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return Name
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatPrettyText:
		return "text/plain"
	default:
		return "application/json"
	}
}

// Render prompts every field, re-prompting while the field carries an inline
// error, then submits through a preview session. RenderOptions.Values
// pre-fill the prompts.
func (r *Renderer) Render(ctx context.Context, doc model.FormDocument, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}

	session := preview.NewSession(doc, preview.WithSubmitHandler(r.onSubmit))
	for id, value := range opts.Values {
		session.Input(id, value)
	}

	if err := r.info(ctx, r.theme.InfoPrefix+doc.Name); err != nil {
		return nil, err
	}
	var values map[string]string
	pending := doc.Fields
	for {
		for _, field := range pending {
			if err := r.promptField(ctx, field, session); err != nil {
				return nil, err
			}
		}

		accepted, err := session.Submit()
		if err != nil {
			if !errors.Is(err, preview.ErrSubmissionBlocked) {
				return nil, err
			}
			if err := r.info(ctx, r.theme.ErrorPrefix+session.FormError()); err != nil {
				return nil, err
			}
			pending = failing(doc.Fields, session.Errors())
			continue
		}
		values = accepted
		break
	}

	if r.submitTransformer != nil {
		var err error
		values, err = r.submitTransformer(values)
		if err != nil {
			return nil, fmt.Errorf("tui: submit transformer: %w", err)
		}
	}
	return r.serialize(values)
}

func failing(fields []model.Field, errs map[string]string) []model.Field {
	var out []model.Field
	for _, field := range fields {
		if _, ok := errs[field.ID]; ok {
			out = append(out, field)
		}
	}
	return out
}

func (r *Renderer) promptField(ctx context.Context, field model.Field, session *preview.Session) error {
	for attempt := 1; ; attempt++ {
		var err error
		if field.Type == model.FieldTypeSelect {
			err = r.promptSelect(ctx, field, session)
		} else {
			err = r.promptInput(ctx, field, session)
		}
		if err != nil {
			return err
		}

		msg := session.FieldError(field.ID)
		if msg == "" {
			return nil
		}
		if err := r.info(ctx, r.theme.ErrorPrefix+msg); err != nil {
			return err
		}
		if r.maxAttempts > 0 && attempt >= r.maxAttempts {
			return fmt.Errorf("%w: %s", ErrTooManyAttempts, field.ID)
		}
	}
}

func (r *Renderer) promptInput(ctx context.Context, field model.Field, session *preview.Session) error {
	hints := model.HintsFor(field.Type)
	answer, err := r.driver.Input(ctx, InputConfig{
		Message: displayLabel(field),
		Default: session.Value(field.ID),
		Help:    hints.Placeholder,
	})
	if err != nil {
		return err
	}
	session.Input(field.ID, answer)
	return nil
}

func (r *Renderer) promptSelect(ctx context.Context, field model.Field, session *preview.Session) error {
	if len(field.Options) == 0 {
		return fmt.Errorf("%w: %s", ErrNoOptions, field.ID)
	}
	idx, err := r.driver.Select(ctx, SelectConfig{
		Message:      displayLabel(field),
		Options:      field.Options,
		DefaultIndex: indexOf(field.Options, session.Value(field.ID)),
		Help:         model.HintsFor(field.Type).Placeholder,
	})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(field.Options) {
		session.Input(field.ID, "")
		return nil
	}
	session.Input(field.ID, field.Options[idx])
	return nil
}

func (r *Renderer) info(ctx context.Context, msg string) error {
	if strings.TrimSpace(msg) == "" {
		return nil
	}
	return r.driver.Info(ctx, msg)
}

func (r *Renderer) serialize(values map[string]string) ([]byte, error) {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return []byte(flattenForm(values)), nil
	case OutputFormatPrettyText:
		return []byte(prettyPrint(values)), nil
	default:
		return json.Marshal(values)
	}
}

func displayLabel(field model.Field) string {
	label := field.Label
	if label == "" {
		label = model.LabelFor(field.Type)
	}
	return label + " *"
}

func flattenForm(values map[string]string) string {
	flattened := url.Values{}
	for key, value := range values {
		flattened.Set(key, value)
	}
	return flattened.Encode()
}

func prettyPrint(values map[string]string) string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		fmt.Fprintf(&b, "%s=%s\n", key, values[key])
	}
	return b.String()
}

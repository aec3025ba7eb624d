package gotemplate

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/flosch/pongo2/v6"
	gotemplatepkg "github.com/goliatone/go-template"

	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/render/template"
	"github.com/goliatone/go-formbuilder/pkg/theming"
)

// DefaultExtension is appended to template names without one.
const DefaultExtension = ".tmpl"

var (
	// ErrNoTemplateSource is returned by New when neither a directory nor an
	// fs.FS was configured.
	ErrNoTemplateSource = errors.New("gotemplate: need to provide either base dir or fs.FS")
	// ErrNilEngine guards calls on a zero Engine.
	ErrNilEngine = errors.New("gotemplate: engine is nil")
)

// Option configures the engine before construction.
type Option func(*config)

type config struct {
	dir        string
	files      fs.FS
	ext        string
	goTemplate []gotemplatepkg.Option
}

// WithBaseDir loads templates from a directory on disk.
func WithBaseDir(dir string) Option {
	return func(cfg *config) {
		cfg.dir = strings.TrimSpace(dir)
	}
}

// WithFS loads templates from files. Combined with WithBaseDir the directory
// is searched first.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.files = files
	}
}

// WithExtension overrides DefaultExtension. A missing leading dot is added.
func WithExtension(ext string) Option {
	return func(cfg *config) {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			return
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		cfg.ext = ext
	}
}

// WithGoTemplateOptions forwards options to the underlying go-template
// engine. They run after the source and extension options above, so they
// may override them.
func WithGoTemplateOptions(opts ...gotemplatepkg.Option) Option {
	return func(cfg *config) {
		cfg.goTemplate = append(cfg.goTemplate, opts...)
	}
}

// Engine adapts a go-template engine to template.TemplateRenderer and
// registers the form filters (cssfamily, sanitize) on it.
type Engine struct {
	engine *gotemplatepkg.Engine
}

var _ template.TemplateRenderer = (*Engine)(nil)

// New builds an Engine. At least one template source is required.
func New(options ...Option) (*Engine, error) {
	cfg := config{ext: DefaultExtension}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.dir == "" && cfg.files == nil {
		return nil, ErrNoTemplateSource
	}

	opts := []gotemplatepkg.Option{
		gotemplatepkg.WithExtension(cfg.ext),
		gotemplatepkg.WithTemplateFunc(formFilters()),
	}
	if cfg.dir != "" {
		opts = append(opts, gotemplatepkg.WithBaseDir(cfg.dir))
	}
	if cfg.files != nil {
		opts = append(opts, gotemplatepkg.WithFS(cfg.files))
	}
	opts = append(opts, cfg.goTemplate...)

	engine, err := gotemplatepkg.NewRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("gotemplate: load engine: %w", err)
	}
	return &Engine{engine: engine}, nil
}

// Render treats name as inline template source when it contains template
// delimiters and as a template path otherwise.
func (e *Engine) Render(name string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.engine == nil {
		return "", ErrNilEngine
	}
	return e.engine.Render(name, data, out...)
}

// RenderTemplate executes the template at name, appending the configured
// extension when missing. Parsed templates are cached per path.
func (e *Engine) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.engine == nil {
		return "", ErrNilEngine
	}
	result, err := e.engine.RenderTemplate(name, data, out...)
	if err != nil {
		return "", fmt.Errorf("gotemplate: %w", err)
	}
	return result, nil
}

// RenderString parses and executes templateContent without caching it.
func (e *Engine) RenderString(templateContent string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.engine == nil {
		return "", ErrNilEngine
	}
	result, err := e.engine.RenderString(templateContent, data, out...)
	if err != nil {
		return "", fmt.Errorf("gotemplate: %w", err)
	}
	return result, nil
}

// RegisterFilter adds a pongo2 filter. Filters are process wide, so a name
// that already exists is rejected.
func (e *Engine) RegisterFilter(name string, fn func(input any, param any) (any, error)) error {
	if e == nil || e.engine == nil {
		return ErrNilEngine
	}
	name = strings.TrimSpace(name)
	if name == "" || fn == nil {
		return errors.New("gotemplate: filter name and function required")
	}
	if err := e.engine.RegisterFilter(name, fn); err != nil {
		return fmt.Errorf("gotemplate: %w", err)
	}
	return nil
}

// GlobalContext merges data into the values every template can read.
func (e *Engine) GlobalContext(data any) error {
	if e == nil || e.engine == nil {
		return ErrNilEngine
	}
	if data == nil {
		return nil
	}
	if err := e.engine.GlobalContext(data); err != nil {
		return fmt.Errorf("gotemplate: %w", err)
	}
	return nil
}

// RegisterPostHook runs hook on every rendered output, in registration order.
func (e *Engine) RegisterPostHook(hook gotemplatepkg.PostHook) {
	if e == nil || e.engine == nil || hook == nil {
		return
	}
	e.engine.RegisterPostHook(hook)
}

func formFilters() map[string]any {
	return map[string]any{
		// theme font token -> CSS generic family
		"cssfamily": pongo2.FilterFunction(func(in, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
			return pongo2.AsValue(theming.CSSFamily(in.String())), nil
		}),
		// marked safe so sanitizer entities are not escaped twice
		"sanitize": pongo2.FilterFunction(func(in, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
			return pongo2.AsSafeValue(render.SanitizeLabel(in.String())), nil
		}),
	}
}

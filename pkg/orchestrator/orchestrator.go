package orchestrator

import (
	"context"
	"errors"
	"fmt"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formbuilder/internal/log"
	"github.com/goliatone/go-formbuilder/pkg/blueprint"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/renderers/html"
	"github.com/goliatone/go-formbuilder/pkg/theming"
)

const defaultRendererName = html.Name

// ErrBlueprintNotFound is returned when a request names an unknown blueprint.
var ErrBlueprintNotFound = errors.New("orchestrator: blueprint not found")

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithBlueprints supplies the store used to resolve Request.Blueprint.
func WithBlueprints(store *blueprint.Store) Option {
	return func(o *Orchestrator) {
		o.blueprints = store
	}
}

// WithThemeSelector configures the go-theme selector used for requests that
// name a theme preset.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithTransformer registers a Transformer that can patch documents before
// theme resolution.
func WithTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		o.transformer = t
	}
}

// WithLogger overrides the orchestrator logger.
func WithLogger(logger log.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Orchestrator coordinates the pipeline from a form document to rendered
// output. It defaults to the HTML renderer and the embedded blueprints.
type Orchestrator struct {
	registry        *render.Registry
	defaultRenderer string
	blueprints      *blueprint.Store
	themeSelector   theme.ThemeSelector
	transformer     Transformer
	logger          log.Logger
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
		logger:          log.Default(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes what to render.
type Request struct {
	// Document is rendered as is when set.
	Document *model.FormDocument

	// Blueprint names a starter document; used when Document is nil.
	Blueprint string

	// Renderer names the renderer to use. If empty, the orchestrator falls back
	// to the configured default renderer.
	Renderer string

	// ThemeName and ThemeVariant select a go-theme preset merged over the
	// document theme.
	ThemeName    string
	ThemeVariant string

	// RenderOptions carries values, errors and submission state.
	RenderOptions render.RenderOptions
}

// Resolve returns the document a request targets after transformation and
// theme resolution.
func (o *Orchestrator) Resolve(ctx context.Context, req Request) (model.FormDocument, error) {
	if ctx == nil {
		return model.FormDocument{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return model.FormDocument{}, err
	}
	if err := o.initialiseErr; err != nil {
		return model.FormDocument{}, err
	}

	doc, err := o.resolveDocument(req)
	if err != nil {
		return model.FormDocument{}, err
	}
	if o.transformer != nil {
		if err := o.transformer.Transform(ctx, &doc); err != nil {
			return model.FormDocument{}, fmt.Errorf("orchestrator: transform document: %w", err)
		}
	}
	if req.ThemeName != "" {
		next, err := theming.ApplyPreset(doc.Theme, o.themeSelector, req.ThemeName, req.ThemeVariant)
		if err != nil {
			return model.FormDocument{}, fmt.Errorf("orchestrator: resolve theme: %w", err)
		}
		doc.Theme = next
	}
	return doc, nil
}

// Generate resolves the document and renders it, returning the rendered
// bytes (HTML for the default renderer).
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	doc, err := o.Resolve(ctx, req)
	if err != nil {
		return nil, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	opts := req.RenderOptions
	if opts.Theme == nil && req.ThemeName != "" {
		opts.Theme = theming.RendererConfig(doc.Theme, req.ThemeName, req.ThemeVariant)
	}

	output, err := renderer.Render(ctx, doc, opts)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	o.logger.Debugf("orchestrator: rendered %q with %s (%d bytes)", doc.Name, renderer.Name(), len(output))
	return output, nil
}

// Blueprints exposes the configured blueprint store.
func (o *Orchestrator) Blueprints() *blueprint.Store {
	return o.blueprints
}

// Registry exposes the renderer registry.
func (o *Orchestrator) Registry() *render.Registry {
	return o.registry
}

func (o *Orchestrator) resolveDocument(req Request) (model.FormDocument, error) {
	if req.Document != nil {
		doc := *req.Document
		doc.Fields = model.CloneFields(doc.Fields)
		return doc, nil
	}
	if req.Blueprint == "" {
		return model.FormDocument{}, errors.New("orchestrator: document or blueprint is required")
	}
	doc, ok := o.blueprints.Get(req.Blueprint)
	if !ok {
		return model.FormDocument{}, fmt.Errorf("%w: %q", ErrBlueprintNotFound, req.Blueprint)
	}
	return doc, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	renderer, err := o.registry.Get("")
	if err != nil {
		return nil, fmt.Errorf("orchestrator: no renderers registered: %w", err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.registry == nil {
		o.registry = render.NewRegistry()
		renderer, err := html.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			o.registry.MustRegister(renderer)
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
	if o.blueprints == nil {
		store, err := blueprint.Default()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: load blueprints: %w", err)
			return
		}
		o.blueprints = store
	}
}

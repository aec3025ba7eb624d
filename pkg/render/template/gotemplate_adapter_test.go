package template_test

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/flosch/pongo2/v6"
	gotemplatepkg "github.com/goliatone/go-template"

	"github.com/goliatone/go-formbuilder/pkg/render/template/gotemplate"
	"github.com/goliatone/go-formbuilder/pkg/testsupport"
)

var templatesFS = fstest.MapFS{
	"hello.tmpl":      {Data: []byte(`Hello {{ name }}!`)},
	"use-global.tmpl": {Data: []byte(`env={{ settings.env }}`)},
	"use-filter.tmpl": {Data: []byte(`{{ name|shout }}`)},
	"label.tmpl":      {Data: []byte(`<label style="font-family: {{ family|cssfamily }}">{{ label|sanitize }}</label>`)},
}

func TestGoTemplateEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("hello", map[string]any{"name": "Ada"}, w)
	})

	if want := "Hello Ada!"; result != want || written != want {
		t.Fatalf("render template mismatch\nwant: %q\n got: %q / %q", want, result, written)
	}
}

func TestGoTemplateEngine_GlobalContext(t *testing.T) {
	engine := newEngine(t)
	if err := engine.GlobalContext(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}); err != nil {
		t.Fatalf("global context: %v", err)
	}

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("use-global", nil, w)
	})

	if want := "env=staging"; result != want || written != want {
		t.Fatalf("render template mismatch\nwant: %q\n got: %q / %q", want, result, written)
	}
}

func TestGoTemplateEngine_RegisterFilter(t *testing.T) {
	engine := newEngine(t)
	err := engine.RegisterFilter("shout", func(input any, _ any) (any, error) {
		if input == nil {
			return "", nil
		}
		return fmt.Sprintf("%s!", strings.ToUpper(fmt.Sprint(input))), nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}

	result, _ := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("use-filter", map[string]any{"name": "Ada"}, w)
	})
	if want := "ADA!"; result != want {
		t.Fatalf("render template mismatch\nwant: %q\n got: %q", want, result)
	}
}

func TestGoTemplateEngine_DomainFilters(t *testing.T) {
	engine := newEngine(t)

	result, err := engine.RenderTemplate("label", map[string]any{
		"family": "font-serif",
		"label":  "<b>Email</b>",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `<label style="font-family: serif">Email</label>`
	if result != want {
		t.Fatalf("render template mismatch\nwant: %q\n got: %q", want, result)
	}
}

func TestGoTemplateEngine_RenderString(t *testing.T) {
	engine := newEngine(t)
	result, err := engine.Render(`{{ value|trim }}`, map[string]any{"value": "  padded  "})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if result != "padded" {
		t.Fatalf("expected trimmed value, got %q", result)
	}
}

func TestGoTemplateEngine_RequiresSource(t *testing.T) {
	if _, err := gotemplate.New(); !errors.Is(err, gotemplate.ErrNoTemplateSource) {
		t.Fatalf("expected ErrNoTemplateSource, got %v", err)
	}
	var engine *gotemplate.Engine
	if _, err := engine.RenderTemplate("hello", nil); !errors.Is(err, gotemplate.ErrNilEngine) {
		t.Fatalf("expected ErrNilEngine, got %v", err)
	}
}

func TestGoTemplateEngine_CachesParsedTemplates(t *testing.T) {
	files := fstest.MapFS{"page.tmpl": {Data: []byte(`v1`)}}
	engine, err := gotemplate.New(gotemplate.WithFS(files), gotemplate.WithExtension("tmpl"))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	if got, _ := engine.RenderTemplate("page", nil); got != "v1" {
		t.Fatalf("expected v1, got %q", got)
	}
	files["page.tmpl"] = &fstest.MapFile{Data: []byte(`v2`)}
	if got, _ := engine.RenderTemplate("page.tmpl", nil); got != "v1" {
		t.Fatalf("expected cached template, got %q", got)
	}
}

func TestGoTemplateEngine_ForwardsGoTemplateOptions(t *testing.T) {
	files := fstest.MapFS{"brand.tmpl": {Data: []byte(`{{ brand|initial }}-{{ tier }}`)}}
	engine, err := gotemplate.New(
		gotemplate.WithFS(files),
		gotemplate.WithGoTemplateOptions(
			gotemplatepkg.WithGlobalData(map[string]any{"brand": "acme", "tier": "pro"}),
			gotemplatepkg.WithTemplateFunc(map[string]any{
				"initial": pongo2.FilterFunction(func(in, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
					return pongo2.AsValue(strings.ToUpper(in.String()[:1])), nil
				}),
			}),
		),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	result, err := engine.RenderTemplate("brand", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if want := "A-pro"; result != want {
		t.Fatalf("render template mismatch\nwant: %q\n got: %q", want, result)
	}
}

func TestGoTemplateEngine_PostHookRewritesOutput(t *testing.T) {
	engine := newEngine(t)
	engine.RegisterPostHook(func(ctx *gotemplatepkg.HookContext) (string, error) {
		return "<!-- form -->" + ctx.Output, nil
	})

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("hello", map[string]any{"name": "Ada"}, w)
	})
	if want := "<!-- form -->Hello Ada!"; result != want || written != want {
		t.Fatalf("render template mismatch\nwant: %q\n got: %q / %q", want, result, written)
	}
}

func newEngine(t *testing.T) *gotemplate.Engine {
	t.Helper()

	engine, err := gotemplate.New(gotemplate.WithFS(templatesFS))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

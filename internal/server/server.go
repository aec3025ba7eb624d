// Package server exposes blueprints over HTTP: an HTML preview per blueprint
// plus its document and derived schema as JSON. The server keeps no state.
package server

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/sirupsen/logrus"

	"github.com/goliatone/go-formbuilder/internal/log"
	"github.com/goliatone/go-formbuilder/pkg/openapi"
	"github.com/goliatone/go-formbuilder/pkg/orchestrator"
	formrender "github.com/goliatone/go-formbuilder/pkg/render"
	rendertemplate "github.com/goliatone/go-formbuilder/pkg/render/template"
	"github.com/goliatone/go-formbuilder/pkg/render/template/gotemplate"
	"github.com/goliatone/go-formbuilder/pkg/renderers/html"
)

//go:embed templates/*.tmpl
var pageTemplates embed.FS

const stylesheetPath = "/assets/" + html.StylesheetName

// Option configures a Server.
type Option func(*Server)

// WithOrchestrator sets the pipeline used to resolve and render blueprints.
func WithOrchestrator(o *orchestrator.Orchestrator) Option {
	return func(s *Server) {
		if o != nil {
			s.orch = o
		}
	}
}

// WithLogger overrides the request logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Server holds the HTTP handlers.
type Server struct {
	orch   *orchestrator.Orchestrator
	logger logrus.FieldLogger
	pages  rendertemplate.TemplateRenderer
}

// New builds a server. Without an orchestrator the embedded blueprints are
// served.
func New(opts ...Option) (*Server, error) {
	s := &Server{logger: log.Default()}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.orch == nil {
		s.orch = orchestrator.New()
	}

	sub, err := fs.Sub(pageTemplates, "templates")
	if err != nil {
		return nil, err
	}
	pages, err := gotemplate.New(gotemplate.WithFS(sub), gotemplate.WithExtension(".tmpl"))
	if err != nil {
		return nil, err
	}
	s.pages = pages
	return s, nil
}

// Handler wires the routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, requestLogger(s.logger), middleware.Recoverer)

	r.Get("/healthz", s.health)
	r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.FS(html.AssetsFS()))))
	r.Route("/blueprints", func(r chi.Router) {
		r.Get("/", s.listBlueprints)
		r.Get("/{name}", s.previewBlueprint)
		r.Post("/{name}/preview", s.previewWithFeedback)
		r.Get("/{name}/document", s.blueprintDocument)
		r.Get("/{name}/schema", s.blueprintSchema)
		r.Get("/{name}/openapi", s.blueprintOpenAPI)
	})
	return r
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, status int, err error) {
	entry := s.logger.WithField("request_id", middleware.GetReqID(r.Context()))
	if status >= http.StatusInternalServerError {
		entry.Errorf("server: %s %s: %v", r.Method, r.URL.Path, err)
	} else {
		entry.Debugf("server: %s %s: %v", r.Method, r.URL.Path, err)
	}
	render.Status(r, status)
	render.JSON(w, r, errorResponse{Error: err.Error()})
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"status": "ok"})
}

type blueprintList struct {
	Blueprints []string `json:"blueprints"`
}

func (s *Server) listBlueprints(w http.ResponseWriter, r *http.Request) {
	names := s.orch.Blueprints().Names()
	if names == nil {
		names = []string{}
	}
	render.JSON(w, r, blueprintList{Blueprints: names})
}

func (s *Server) previewBlueprint(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	query := r.URL.Query()
	req := orchestrator.Request{
		Blueprint:    name,
		Renderer:     html.Name,
		ThemeName:    query.Get("theme"),
		ThemeVariant: query.Get("variant"),
	}

	doc, err := s.orch.Resolve(r.Context(), req)
	if err != nil {
		s.fail(w, r, statusFor(err), err)
		return
	}
	form, err := s.orch.Generate(r.Context(), req)
	if err != nil {
		s.fail(w, r, statusFor(err), err)
		return
	}

	if query.Get("fragment") != "" {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(form)
		return
	}

	page, err := s.pages.RenderTemplate("page", map[string]any{
		"title":      doc.Name,
		"form":       string(form),
		"stylesheet": stylesheetPath,
	})
	if err != nil {
		s.fail(w, r, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(page))
}

// feedbackRequest carries values to prefill and an external error payload
// keyed by field id, JSON pointer or dotted path.
type feedbackRequest struct {
	Values map[string]string   `json:"values"`
	Errors map[string][]string `json:"errors"`
}

// previewWithFeedback renders the form fragment with the posted values and
// errors mapped onto the blueprint fields. Nothing is stored.
func (s *Server) previewWithFeedback(w http.ResponseWriter, r *http.Request) {
	var body feedbackRequest
	if err := render.DecodeJSON(r.Body, &body); err != nil {
		s.fail(w, r, http.StatusBadRequest, fmt.Errorf("server: decode feedback: %w", err))
		return
	}

	query := r.URL.Query()
	req := orchestrator.Request{
		Blueprint:    chi.URLParam(r, "name"),
		Renderer:     html.Name,
		ThemeName:    query.Get("theme"),
		ThemeVariant: query.Get("variant"),
	}
	doc, err := s.orch.Resolve(r.Context(), req)
	if err != nil {
		s.fail(w, r, statusFor(err), err)
		return
	}

	req.RenderOptions = formrender.MapErrorPayload(doc, body.Errors).Apply(formrender.RenderOptions{Values: body.Values})
	form, err := s.orch.Generate(r.Context(), req)
	if err != nil {
		s.fail(w, r, statusFor(err), err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(form)
}

func (s *Server) blueprintDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := s.orch.Resolve(r.Context(), orchestrator.Request{Blueprint: chi.URLParam(r, "name")})
	if err != nil {
		s.fail(w, r, statusFor(err), err)
		return
	}
	render.JSON(w, r, doc)
}

func (s *Server) blueprintSchema(w http.ResponseWriter, r *http.Request) {
	doc, err := s.orch.Resolve(r.Context(), orchestrator.Request{Blueprint: chi.URLParam(r, "name")})
	if err != nil {
		s.fail(w, r, statusFor(err), err)
		return
	}
	render.JSON(w, r, openapi.Export(doc))
}

func (s *Server) blueprintOpenAPI(w http.ResponseWriter, r *http.Request) {
	doc, err := s.orch.Resolve(r.Context(), orchestrator.Request{Blueprint: chi.URLParam(r, "name")})
	if err != nil {
		s.fail(w, r, statusFor(err), err)
		return
	}
	spec := openapi.Document(doc, "/blueprints/"+chi.URLParam(r, "name"))
	if err := openapi.ValidateDocument(r.Context(), spec); err != nil {
		s.fail(w, r, http.StatusInternalServerError, err)
		return
	}
	render.JSON(w, r, spec)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, orchestrator.ErrBlueprintNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

package render

import (
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formbuilder/pkg/preview"
)

// RenderOptions describe per-request data that renderers can use to customise
// their output without touching the document.
type RenderOptions struct {
	// Values pre-populates controls keyed by field id.
	Values map[string]string
	// Errors holds the inline message of each failing field.
	Errors map[string]string
	// FormError is the aggregate message shown above the submit button.
	FormError string
	// Submitted switches renderers to the success screen.
	Submitted bool
	// Theme carries the resolved go-theme configuration. Renderers derive it
	// from the document theme when nil.
	Theme *theme.RendererConfig
	// Action is the form submission target; empty omits the attribute.
	Action string
}

// OptionsFromSession snapshots a preview session into render options.
func OptionsFromSession(session *preview.Session) RenderOptions {
	if session == nil {
		return RenderOptions{}
	}
	return RenderOptions{
		Values:    session.Values(),
		Errors:    session.Errors(),
		FormError: session.FormError(),
		Submitted: session.Submitted(),
	}
}

package render

import (
	"context"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// Renderer converts a form document into a byte representation (HTML, a
// terminal session transcript, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, doc model.FormDocument, options RenderOptions) ([]byte, error)
}

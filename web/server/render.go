package server

import (
	"context"
	"io"
	"net/http"

	"github.com/Kostaaa1/irembo/web/views/layout"
	"github.com/a-h/templ"
	"github.com/gin-gonic/gin/render"
	g "maragu.dev/gomponents"
)

// TemplRender lets handlers pass a templ.Component to c.HTML.
type TemplRender struct {
	Data templ.Component
}

func (t TemplRender) Render(w http.ResponseWriter) error {
	t.WriteContentType(w)
	if t.Data == nil {
		return nil
	}
	return t.Data.Render(context.Background(), w)
}

func (t TemplRender) WriteContentType(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
}

// Instance renders nothing when data is not a templ.Component.
func (t *TemplRender) Instance(_ string, data any) render.Render {
	component, _ := data.(templ.Component)
	return &TemplRender{Data: component}
}

// Component adapts a gomponents node to templ.
func Component(node g.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return node.Render(w)
	})
}

// WithBase wraps body in the root document layout.
func WithBase(body g.Node) templ.Component {
	return Component(layout.RootLayout(layout.Default, body))
}

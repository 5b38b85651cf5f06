// Package components holds the reusable pieces of the landing page markup.
package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// Templ adapts a gomponents node to a templ component so it can be served
// with templ.Handler or rendered with Component.Render.
func Templ(n g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return n.Render(w)
	})
}

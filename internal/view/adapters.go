// Package view holds the glue between handlers and the component packages:
// the adapter that places gomponents pages inside the templ layout, and the
// request DTOs forms bind to.
package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"maragu.dev/gomponents"
)

// GomponentToTemplAdapter wraps a gomponents.Node to satisfy templ.Component,
// so gomponents pages can be placed inside the templ layout.
type GomponentToTemplAdapter struct {
	Node gomponents.Node
}

// Render implements templ.Component. A nil node renders nothing.
func (a *GomponentToTemplAdapter) Render(_ context.Context, w io.Writer) error {
	if a.Node == nil {
		return nil
	}
	return a.Node.Render(w)
}

// AdaptGomponentToTempl converts a gomponents.Node into a templ.Component.
func AdaptGomponentToTempl(node gomponents.Node) templ.Component {
	return &GomponentToTemplAdapter{Node: node}
}

package pages

import (
	"github.com/agrogen/agrogen/web/src/templates/components"
	"maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// ViewRootID identifies the element carrying a mounted view's id.
const ViewRootID = "view-root"

// viewRoot wraps a mounted view. It opens the view's stream and carries the
// id the page unload beacon reports.
func viewRoot(viewID, class string, children ...gomponents.Node) gomponents.Node {
	return html.Div(
		html.ID(ViewRootID),
		html.Class(class),
		html.DataAttr("view-id", viewID),
		gomponents.Attr("ws-connect", components.ViewURL(viewID, "stream")),
		gomponents.Group(children),
		components.NavSignal(),
	)
}

// staticRoot wraps a mounted view that never receives pushed changes.
func staticRoot(viewID, class string, children ...gomponents.Node) gomponents.Node {
	return html.Div(
		html.ID(ViewRootID),
		html.Class(class),
		html.DataAttr("view-id", viewID),
		gomponents.Group(children),
	)
}

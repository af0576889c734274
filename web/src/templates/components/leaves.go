package components

import (
	"fmt"

	"github.com/agrogen/agrogen/internal/focus"
	"github.com/agrogen/agrogen/internal/leaves"
	"maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	"maragu.dev/gomponents/html"
)

// Element ids targeted by out-of-band swaps.
const (
	LeafFieldID      = "leaf-field"
	FocusLeafID      = "focus-leaf"
	SuccessOverlayID = "success-overlay"
	NavSignalID      = "nav-signal"
)

// LeafField renders the falling leaf particles. With oob set the fragment
// replaces the live field when pushed over the stream.
func LeafField(ls []leaves.Leaf, oob bool) gomponents.Node {
	return html.Div(
		html.ID(LeafFieldID),
		html.Class("absolute inset-0 pointer-events-none"),
		gomponents.If(oob, hx.SwapOOB("true")),
		gomponents.Map(ls, func(l leaves.Leaf) gomponents.Node {
			return html.Div(
				html.Class("absolute pointer-events-none"),
				html.Style(fmt.Sprintf(
					"left: %.2f%%; top: %.2f%%; opacity: %.2f; transform: rotate(%.1fdeg); transition: transform 0.5s ease-out",
					l.X, l.Y, l.Opacity, l.Rotation,
				)),
				Icon("leaf", int(l.Size), "text-green-600"),
			)
		}),
	)
}

// ScatteredLeaves renders the CSS-animated background of the standalone
// screens.
func ScatteredLeaves(ds []leaves.Decoration) gomponents.Node {
	return html.Div(
		html.Class("absolute inset-0 overflow-hidden"),
		gomponents.Map(ds, func(d leaves.Decoration) gomponents.Node {
			return html.Div(
				html.Class("text-green-200 absolute animate-float"),
				html.Style(fmt.Sprintf(
					"top: %.2f%%; left: %.2f%%; opacity: %.1f; transform: rotate(%.1fdeg); animation-duration: %.2fs",
					d.Top, d.Left, d.Opacity, d.Rotation, d.Duration.Seconds(),
				)),
				Icon("leaf", int(d.Size), ""),
			)
		}),
	)
}

// FocusLeaf renders the header leaf that leans toward the focused field.
func FocusLeaf(d focus.Decoration) gomponents.Node {
	class := "text-green-200 transition-all duration-500"
	if d.Pulsing {
		class += " animate-pulse"
	}
	return html.Div(
		html.ID(FocusLeafID),
		html.Class("absolute bottom-2 transition-all duration-500 ease-in-out"),
		html.Style("transform: "+d.Transform()),
		Icon("leaf", 32, class),
	)
}

// PlantBanner is the green card header holding the focus leaf and three
// fixed accent leaves.
func PlantBanner(d focus.Decoration) gomponents.Node {
	return html.Div(
		html.Class("relative h-28 bg-gradient-to-r from-green-600 to-green-700 flex justify-center overflow-hidden"),
		FocusLeaf(d),
		html.Div(html.Class("absolute top-4 left-4 transform rotate-45"), Icon("leaf", 16, "text-green-300 opacity-60")),
		html.Div(html.Class("absolute top-6 right-8 transform -rotate-15"), Icon("leaf", 14, "text-green-300 opacity-50")),
		html.Div(html.Class("absolute bottom-6 left-1/4 transform rotate-30"), Icon("leaf", 12, "text-green-300 opacity-40")),
	)
}

// Backdrop renders the soft background blobs shared by the animated screens.
func Backdrop() gomponents.Node {
	return gomponents.Group{
		html.Div(html.Class("absolute top-0 left-0 w-32 h-32 bg-green-200 rounded-full opacity-30 -translate-x-1/2 -translate-y-1/2")),
		html.Div(html.Class("absolute bottom-0 right-0 w-40 h-40 bg-amber-200 rounded-full opacity-30 translate-x-1/2 translate-y-1/2")),
		html.Div(html.Class("absolute top-1/4 right-1/5 w-20 h-20 bg-green-300 rounded-full opacity-20")),
	}
}

// Brand renders the logo, name and tagline.
func Brand() gomponents.Node {
	return html.Div(
		html.Class("flex flex-col items-center mb-8"),
		html.Div(
			html.Class("flex items-center justify-center w-16 h-16 bg-green-600 rounded-full mb-4 shadow-lg transform hover:rotate-12 transition-transform duration-300"),
			Icon("sprout", 32, "text-white"),
		),
		html.H1(html.Class("text-3xl font-bold text-green-800 animate-pulse"), gomponents.Text("AgroGen")),
		html.P(html.Class("text-green-700 text-center mt-2"), gomponents.Text("Guiding farmers toward sustainable growth")),
	)
}

package components

import (
	"maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	"maragu.dev/gomponents/html"
)

// Spinner is the in-button loading indicator.
func Spinner() gomponents.Node {
	return html.Div(
		html.Class("flex items-center"),
		gomponents.El("svg",
			gomponents.Attr("class", "animate-spin -ml-1 mr-3 h-5 w-5 text-white"),
			gomponents.Attr("xmlns", "http://www.w3.org/2000/svg"),
			gomponents.Attr("fill", "none"),
			gomponents.Attr("viewBox", "0 0 24 24"),
			gomponents.El("circle",
				gomponents.Attr("class", "opacity-25"),
				gomponents.Attr("cx", "12"), gomponents.Attr("cy", "12"), gomponents.Attr("r", "10"),
				gomponents.Attr("stroke", "currentColor"), gomponents.Attr("stroke-width", "4"),
			),
			gomponents.El("path",
				gomponents.Attr("class", "opacity-75"),
				gomponents.Attr("fill", "currentColor"),
				gomponents.Attr("d", "M4 12a8 8 0 018-8V0C5.373 0 0 5.373 0 12h4zm2 5.291A7.962 7.962 0 014 12H0c0 3.042 1.135 5.824 3 7.938l3-2.647z"),
			),
		),
		html.Span(gomponents.Text("Processing...")),
	)
}

// SubmitButton renders the primary action, swapping its label for the
// spinner while loading.
func SubmitButton(label string, loading bool) gomponents.Node {
	class := "w-full flex items-center justify-center py-3 px-4 border border-transparent rounded-lg shadow-sm text-white bg-green-600 hover:bg-green-700 focus:outline-none focus:ring-2 focus:ring-offset-2 focus:ring-green-500 transition-all duration-300 transform hover:scale-[1.02] group"
	if loading {
		class += " opacity-70 cursor-not-allowed"
	}
	return html.Button(
		html.Type("submit"),
		html.Class(class),
		gomponents.If(loading, html.Disabled()),
		gomponents.If(loading, Spinner()),
		gomponents.If(!loading, gomponents.Group{
			html.Span(html.Class("mr-2"), gomponents.Text(label)),
			Icon("arrow-right", 18, "transition-transform group-hover:translate-x-1"),
		}),
	)
}

// SuccessOverlay is shown once a submission succeeds. When visible is false
// an empty placeholder keeps the id available for later swaps.
func SuccessOverlay(visible, oob bool) gomponents.Node {
	if !visible {
		return html.Div(html.ID(SuccessOverlayID), gomponents.If(oob, hx.SwapOOB("true")))
	}
	return html.Div(
		html.ID(SuccessOverlayID),
		gomponents.If(oob, hx.SwapOOB("true")),
		html.Class("absolute inset-0 flex items-center justify-center z-20"),
		html.Div(
			html.Class("bg-white rounded-2xl shadow-xl p-8 flex flex-col items-center animate-bounce-in"),
			html.Div(
				html.Class("w-16 h-16 bg-green-100 rounded-full flex items-center justify-center mb-4"),
				Icon("sprout", 32, "text-green-600"),
			),
			html.H2(html.Class("text-2xl font-bold text-green-800 mb-2"), gomponents.Text("Success!")),
			html.P(html.Class("text-green-600 mb-4"), gomponents.Text("Redirecting you to AgroGen...")),
			html.Div(
				html.Class("w-full bg-gray-200 rounded-full h-2 mb-2"),
				html.Div(html.Class("bg-green-600 h-2 rounded-full animate-progress")),
			),
		),
	)
}

// FailureNotice renders a submission error beneath the form.
func FailureNotice(msg string) gomponents.Node {
	if msg == "" {
		return nil
	}
	return html.P(
		html.Class("mt-4 text-sm text-red-600 text-center"),
		gomponents.Attr("role", "alert"),
		gomponents.Text(msg),
	)
}

// Navigate asks htmx to load dest into the page and push it to history.
// It is delivered over the stream once a redirect timer fires.
func Navigate(dest string) gomponents.Node {
	return html.Div(
		html.ID(NavSignalID),
		hx.SwapOOB("true"),
		hx.Get(dest),
		hx.Trigger("load"),
		hx.Target("#page"),
		hx.Select("#page"),
		hx.Swap("outerHTML"),
		gomponents.Attr("hx-push-url", "true"),
	)
}

// NavSignal is the empty placeholder a Navigate fragment replaces.
func NavSignal() gomponents.Node {
	return html.Div(html.ID(NavSignalID))
}

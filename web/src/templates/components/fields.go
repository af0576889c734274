package components

import (
	"maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	"maragu.dev/gomponents/html"
)

// PasswordGroupID is the swap target for the visibility toggle.
const PasswordGroupID = "password-group"

// Field describes one labelled input on an animated form.
type Field struct {
	ViewID      string
	Name        string
	Label       string
	Type        string
	Icon        string
	Value       string
	Placeholder string
	// Tracked fields report focus changes so the header leaf can follow them.
	Tracked bool
}

// Input renders an input that mirrors its value to the view as the user
// types.
func (f Field) Input(extra ...gomponents.Node) gomponents.Node {
	return html.Input(
		html.ID(f.Name),
		html.Name(f.Name),
		html.Type(f.Type),
		html.Value(f.Value),
		html.Placeholder(f.Placeholder),
		html.Required(),
		html.Class("w-full py-3 px-3 text-gray-700 focus:outline-none bg-transparent"),
		hx.Post(ViewURL(f.ViewID, "input")),
		hx.Trigger("input changed delay:150ms"),
		hx.Swap("none"),
		gomponents.Attr("hx-vals", Vals("field", f.Name)),
		gomponents.Group(extra),
	)
}

// focusTracking posts focus and blur of the input itself and swaps the
// header leaf with the answer. Focus on the visibility toggle does not count.
func (f Field) focusTracking(inner gomponents.Node) gomponents.Node {
	if !f.Tracked {
		return inner
	}
	return html.Div(
		hx.Post(ViewURL(f.ViewID, "focus")),
		hx.Trigger("focus from:#"+f.Name),
		hx.Target("#"+FocusLeafID),
		hx.Swap("outerHTML"),
		gomponents.Attr("hx-vals", Vals("field", f.Name)),
		html.Div(
			hx.Post(ViewURL(f.ViewID, "blur")),
			hx.Trigger("blur from:#"+f.Name),
			hx.Target("#"+FocusLeafID),
			hx.Swap("outerHTML"),
			inner,
		),
	)
}

func (f Field) frame(content ...gomponents.Node) gomponents.Node {
	return html.Div(
		html.Class("relative"),
		html.Label(
			html.For(f.Name),
			html.Class("block text-sm font-medium text-green-700 mb-1"),
			gomponents.Text(f.Label),
		),
		f.focusTracking(html.Div(
			html.Class("group flex items-center border-2 border-gray-300 rounded-lg overflow-hidden transition-all focus-within:border-green-500 focus-within:bg-green-50"),
			html.Span(
				html.Class("pl-3 text-gray-400 group-focus-within:text-green-500"),
				Icon(f.Icon, 18, ""),
			),
			gomponents.Group(content),
		)),
	)
}

// TextField renders a labelled text-like input.
func TextField(f Field) gomponents.Node {
	return f.frame(f.Input())
}

// PasswordField renders the password input with its visibility toggle.
// The whole group is swapped when visibility flips.
func PasswordField(f Field, show bool) gomponents.Node {
	f.Name = "password"
	f.Icon = "lock"
	if show {
		f.Type = "text"
	} else {
		f.Type = "password"
	}
	eye := "eye"
	if show {
		eye = "eye-off"
	}
	return html.Div(
		html.ID(PasswordGroupID),
		f.frame(
			f.Input(),
			html.Button(
				html.Type("button"),
				html.Class("pr-3 focus:outline-none"),
				gomponents.Attr("aria-label", "Toggle password visibility"),
				hx.Post(ViewURL(f.ViewID, "password-visibility")),
				hx.Target("#"+PasswordGroupID),
				hx.Swap("outerHTML"),
				Icon(eye, 18, "text-gray-400"),
			),
		),
	)
}

// RememberMe renders the remember-me checkbox.
func RememberMe(viewID string, checked bool) gomponents.Node {
	return html.Div(
		html.Class("flex items-center"),
		html.Input(
			html.ID("remember-me"),
			html.Name("remember_me"),
			html.Type("checkbox"),
			gomponents.If(checked, html.Checked()),
			html.Class("h-4 w-4 text-green-600 focus:ring-green-500 border-gray-300 rounded"),
			hx.Post(ViewURL(viewID, "remember")),
			hx.Trigger("change"),
			hx.Swap("none"),
		),
		html.Label(
			html.For("remember-me"),
			html.Class("ml-2 block text-sm text-gray-700"),
			gomponents.Text("Remember me"),
		),
	)
}

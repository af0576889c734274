package pages

import (
	"github.com/agrogen/agrogen/internal/views"
	"github.com/agrogen/agrogen/web/src/templates/components"
	"maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	"maragu.dev/gomponents/html"
)

// RecoveryCardID is the swap target for the reset request form.
const RecoveryCardID = "recovery-card"

// Recovery renders the forgot-password screen.
func Recovery(s views.RecoveryState) gomponents.Node {
	return viewRoot(s.ID,
		"min-h-screen bg-gradient-to-b from-green-50 to-amber-50 flex flex-col items-center justify-center p-4 overflow-hidden relative",
		components.LeafField(s.Leaves, false),
		components.Backdrop(),
		html.Div(
			html.Class("w-full max-w-md relative z-10"),
			components.Brand(),
			RecoveryCard(s),
		),
	)
}

// RecoveryCard renders either the email form or the confirmation panel.
func RecoveryCard(s views.RecoveryState) gomponents.Node {
	intro := "Enter your email address and we'll send you a link to reset your password."
	if s.Submitted {
		intro = "Check your email for a password reset link."
	}

	var body gomponents.Node
	if s.Submitted {
		body = html.Div(
			html.Class("text-center p-6 bg-green-50 rounded-lg"),
			html.Div(
				html.Class("inline-flex items-center justify-center w-16 h-16 bg-green-100 rounded-full mb-4"),
				components.Icon("mail", 32, "text-green-500"),
			),
			html.H3(html.Class("text-lg font-medium text-gray-800 mb-2"), gomponents.Text("Check Your Email")),
			html.P(
				html.Class("text-gray-600 mb-4"),
				gomponents.Text("We've sent a password reset link to "),
				html.Strong(gomponents.Text(s.Email)),
			),
			html.Button(
				html.Type("button"),
				html.Class("text-green-500 hover:text-green-600 font-medium"),
				hx.Post(components.ViewURL(s.ID, "reset")),
				hx.Target("#"+RecoveryCardID),
				hx.Swap("outerHTML"),
				gomponents.Text("Try another email"),
			),
		)
	} else {
		body = html.Form(
			html.Class("space-y-5"),
			hx.Post(components.ViewURL(s.ID, "submit")),
			hx.Target("#"+RecoveryCardID),
			hx.Swap("outerHTML"),
			gomponents.Attr("hx-vals", components.Vals("form", "reset")),
			components.TextField(components.Field{
				ViewID: s.ID, Name: "email", Label: "Email Address", Type: "email", Icon: "mail",
				Value: s.Email, Placeholder: "farmer@agrogen.com", Tracked: true,
			}),
			components.SubmitButton("Reset Password", false),
		)
	}

	return html.Div(
		html.ID(RecoveryCardID),
		html.Class("bg-white rounded-2xl shadow-xl overflow-hidden transition-all duration-500 transform hover:scale-[1.01]"),
		components.PlantBanner(s.Icon),
		html.Div(
			html.Class("p-8"),
			html.H2(html.Class("text-2xl font-semibold text-green-800 mb-6"), gomponents.Text("Forgot Password")),
			html.P(html.Class("text-gray-600 mb-6"), gomponents.Text(intro)),
			body,
			html.Div(
				html.Class("text-center mt-6"),
				html.A(
					html.Href(views.RouteLogin),
					html.Class("inline-flex items-center text-green-600 hover:text-green-700 transition-colors"),
					components.Icon("arrow-left", 16, "mr-1"),
					gomponents.Text("Back to login"),
				),
			),
		),
	)
}

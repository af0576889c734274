package pages

import (
	"maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// Dashboard is the placeholder landing page reached after a successful
// login or signup.
func Dashboard() gomponents.Node {
	return html.Div(
		html.Class("min-h-screen flex items-center justify-center"),
		html.H1(html.Class("text-3xl font-bold text-green-700"), gomponents.Text("Welcome to AgroGen Dashboard!")),
	)
}

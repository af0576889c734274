package pages

import (
	"github.com/agrogen/agrogen/internal/views"
	"github.com/agrogen/agrogen/web/src/templates/components"
	"maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	"maragu.dev/gomponents/html"
)

const standaloneClass = "min-h-screen flex flex-col items-center justify-center p-4 relative overflow-hidden"

func standaloneBrand() gomponents.Node {
	return html.Div(
		html.Class("text-center mb-6 relative z-10"),
		html.Div(html.Class("bg-green-500 rounded-full p-4 inline-flex mb-4"), components.Icon("leaf", 32, "text-white")),
		html.H1(html.Class("text-2xl font-bold text-green-700"), gomponents.Text("AgroGen")),
		html.P(html.Class("text-green-600 mt-1"), gomponents.Text("Guiding farmers toward sustainable growth")),
	)
}

func standaloneCard(title string, form gomponents.Node) gomponents.Node {
	return html.Div(
		html.Class("bg-white rounded-lg shadow-xl w-full max-w-md p-8 relative z-10"),
		html.Div(html.Class("absolute inset-0 bg-green-500 rounded-t-lg h-24")),
		html.Div(
			html.Class("relative pt-8"),
			html.H2(html.Class("text-2xl font-bold text-gray-800 mb-6"), gomponents.Text(title)),
			form,
		),
	)
}

// standaloneForm posts the whole form; the view only logs it, so nothing
// is swapped back.
func standaloneForm(viewID, form string, children ...gomponents.Node) gomponents.Node {
	return html.Form(
		html.Class("space-y-5"),
		hx.Post(components.ViewURL(viewID, "submit")),
		hx.Swap("none"),
		gomponents.Attr("hx-vals", components.Vals("form", form)),
		gomponents.Group(children),
	)
}

func footerLink(prompt, label, href string) gomponents.Node {
	return html.Div(
		html.Class("text-center mt-6"),
		html.P(
			html.Class("text-gray-600"),
			gomponents.Text(prompt+" "),
			html.A(html.Href(href), html.Class("text-green-500 hover:text-green-600 transition-colors"), gomponents.Text(label)),
		),
	)
}

// Login renders the standalone login screen.
func Login(s views.LoginState) gomponents.Node {
	return staticRoot(s.ID, standaloneClass,
		components.ScatteredLeaves(s.Decorations),
		standaloneBrand(),
		standaloneCard("Welcome Back", standaloneForm(s.ID, "login",
			components.TextField(components.Field{
				ViewID: s.ID, Name: "name", Label: "Name", Type: "text", Icon: "user",
				Value: s.Name, Placeholder: "Your name",
			}),
			LoginPassword(s),
			html.Div(
				html.Class("flex items-center justify-between mb-6"),
				components.RememberMe(s.ID, s.RememberMe),
				html.A(
					html.Href(views.RouteRecovery),
					html.Class("text-sm text-green-500 hover:text-green-600 transition-colors"),
					gomponents.Text("Forgot password?"),
				),
			),
			components.SubmitButton("Login", false),
			footerLink("Don't have an account?", "Sign up now", views.RouteSignup),
		)),
	)
}

// Signup renders the standalone signup screen.
func Signup(s views.SignupState) gomponents.Node {
	return staticRoot(s.ID, standaloneClass,
		components.ScatteredLeaves(s.Decorations),
		standaloneBrand(),
		standaloneCard("Create Account", standaloneForm(s.ID, "signup",
			components.TextField(components.Field{
				ViewID: s.ID, Name: "name", Label: "Full Name", Type: "text", Icon: "user",
				Value: s.Name, Placeholder: "Your name",
			}),
			components.TextField(components.Field{
				ViewID: s.ID, Name: "email", Label: "Email Address", Type: "email", Icon: "mail",
				Value: s.Email, Placeholder: "farmer@agrogen.com",
			}),
			components.TextField(components.Field{
				ViewID: s.ID, Name: "phone", Label: "Phone Number", Type: "tel", Icon: "phone",
				Value: s.Phone, Placeholder: "+1 (555) 123-4567",
			}),
			SignupPassword(s),
			components.SubmitButton("Sign Up", false),
			footerLink("Already have an account?", "Log in", views.RouteLogin),
		)),
	)
}

// LoginPassword renders the standalone login password group.
func LoginPassword(s views.LoginState) gomponents.Node {
	return components.PasswordField(components.Field{
		ViewID: s.ID, Label: "Password", Value: s.Password, Placeholder: "Your secure password",
	}, s.ShowPassword)
}

// SignupPassword renders the standalone signup password group.
func SignupPassword(s views.SignupState) gomponents.Node {
	return components.PasswordField(components.Field{
		ViewID: s.ID, Label: "Password", Value: s.Password, Placeholder: "Choose a password",
	}, s.ShowPassword)
}

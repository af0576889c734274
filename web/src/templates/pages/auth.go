package pages

import (
	"github.com/agrogen/agrogen/internal/views"
	"github.com/agrogen/agrogen/web/src/templates/components"
	"maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	"maragu.dev/gomponents/html"
)

// AuthCardID is the swap target for panel switches and submissions.
const AuthCardID = "auth-card"

// Auth renders the combined, animated login/signup screen.
func Auth(s views.AuthState) gomponents.Node {
	return viewRoot(s.ID,
		"min-h-screen bg-gradient-to-b from-green-50 to-amber-50 flex flex-col items-center justify-center p-4 overflow-hidden relative",
		components.LeafField(s.Leaves, false),
		components.Backdrop(),
		html.Div(
			html.Class("w-full max-w-md relative z-10"),
			components.Brand(),
			AuthCard(s, false),
			components.SuccessOverlay(s.Status.Succeeded, false),
		),
	)
}

// AuthStatus is pushed over the stream when the submission status changes.
func AuthStatus(s views.AuthState) gomponents.Node {
	return gomponents.Group{
		AuthCard(s, true),
		components.SuccessOverlay(s.Status.Succeeded, true),
	}
}

// AuthCard renders the card holding the plant banner and the active panel.
func AuthCard(s views.AuthState, oob bool) gomponents.Node {
	class := "bg-white rounded-2xl shadow-xl overflow-hidden transition-all duration-500 transform"
	if s.Status.Succeeded {
		class += " scale-105 opacity-0"
	} else {
		class += " hover:scale-[1.01]"
	}

	var panel gomponents.Node
	if s.ShowSignUp {
		panel = signUpPanel(s)
	} else {
		panel = loginPanel(s)
	}

	return html.Div(
		html.ID(AuthCardID),
		gomponents.If(oob, hx.SwapOOB("true")),
		html.Class(class),
		components.PlantBanner(s.Icon),
		html.Div(html.Class("p-8"), panel),
	)
}

func panelSwitch(viewID, panel string, content ...gomponents.Node) gomponents.Node {
	return html.Button(
		html.Type("button"),
		hx.Post(components.ViewURL(viewID, "panel")),
		hx.Target("#"+AuthCardID),
		hx.Swap("outerHTML"),
		gomponents.Attr("hx-vals", components.Vals("panel", panel)),
		gomponents.Group(content),
	)
}

func authForm(s views.AuthState, form string, fields ...gomponents.Node) gomponents.Node {
	return html.Form(
		html.Class("space-y-5"),
		hx.Post(components.ViewURL(s.ID, "submit")),
		hx.Target("#"+AuthCardID),
		hx.Swap("outerHTML"),
		gomponents.Attr("hx-vals", components.Vals("form", form)),
		gomponents.Group(fields),
		components.FailureNotice(s.Status.Failure),
	)
}

func loginPanel(s views.AuthState) gomponents.Node {
	return gomponents.Group{
		html.H2(html.Class("text-2xl font-semibold text-green-800 mb-6"), gomponents.Text("Welcome Back")),
		authForm(s, "login",
			components.TextField(components.Field{
				ViewID: s.ID, Name: "email", Label: "Email Address", Type: "email", Icon: "mail",
				Value: s.Email, Placeholder: "farmer@agrogen.com", Tracked: true,
			}),
			AuthPassword(s),
			html.Div(
				html.Class("flex items-center justify-between"),
				components.RememberMe(s.ID, s.RememberMe),
				html.Div(
					html.Class("text-sm"),
					html.A(
						html.Href(views.RouteRecovery),
						html.Class("font-medium text-green-600 hover:text-green-500"),
						gomponents.Text("Forgot password?"),
					),
				),
			),
			components.SubmitButton("Login", s.Status.Loading),
			html.Div(
				html.Class("text-center mt-4"),
				html.P(
					html.Class("text-sm text-gray-600"),
					gomponents.Text("Don't have an account? "),
					panelSwitch(s.ID, "signup",
						html.Class("font-medium text-green-600 hover:text-green-500"),
						gomponents.Text("Sign up now"),
					),
				),
			),
		),
	}
}

func signUpPanel(s views.AuthState) gomponents.Node {
	return gomponents.Group{
		html.Div(
			html.Class("flex items-center mb-6"),
			panelSwitch(s.ID, "login",
				html.Class("mr-2 text-green-600 hover:text-green-800 transition-colors"),
				gomponents.Attr("aria-label", "Back to login"),
				components.Icon("chevron-left", 20, ""),
			),
			html.H2(html.Class("text-2xl font-semibold text-green-800"), gomponents.Text("Create Account")),
		),
		authForm(s, "signup",
			components.TextField(components.Field{
				ViewID: s.ID, Name: "name", Label: "Full Name", Type: "text", Icon: "user",
				Value: s.Name, Placeholder: "John Farmer", Tracked: true,
			}),
			components.TextField(components.Field{
				ViewID: s.ID, Name: "phone", Label: "Phone Number", Type: "tel", Icon: "phone",
				Value: s.Phone, Placeholder: "+1 (555) 123-4567", Tracked: true,
			}),
			components.SubmitButton("Sign Up", s.Status.Loading),
			html.Div(
				html.Class("text-center mt-4"),
				html.P(
					html.Class("text-sm text-gray-600"),
					gomponents.Text("Already have an account? "),
					panelSwitch(s.ID, "login",
						html.Class("font-medium text-green-600 hover:text-green-500"),
						gomponents.Text("Login here"),
					),
				),
			),
		),
	}
}

// AuthPassword renders the login panel's password group.
func AuthPassword(s views.AuthState) gomponents.Node {
	return components.PasswordField(components.Field{
		ViewID: s.ID, Label: "Password", Value: s.Password,
		Placeholder: "Your secure password", Tracked: true,
	}, s.ShowPassword)
}

// Package auth contains the request DTOs bound from the animated forms.
// Only presence is validated, mirroring the inputs' HTML required attribute.
package auth

// SubmitRequest selects which form on a view is being submitted.
type SubmitRequest struct {
	Form string `form:"form" validate:"required,oneof=login signup reset"`
}

// FieldRequest names the field an input, focus or blur event refers to.
type FieldRequest struct {
	Field string `form:"field" validate:"required"`
}

// PanelRequest switches the combined screen between its panels.
type PanelRequest struct {
	Panel string `form:"panel" validate:"required,oneof=login signup"`
}

// LoginRequest is the login panel of the combined screen.
type LoginRequest struct {
	Email    string `form:"email" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// SignUpRequest is the signup panel of the combined screen.
type SignUpRequest struct {
	Name  string `form:"name" validate:"required"`
	Phone string `form:"phone" validate:"required"`
}

// StandaloneLoginRequest is the standalone login form.
type StandaloneLoginRequest struct {
	Name     string `form:"name" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// StandaloneSignupRequest is the standalone signup form.
type StandaloneSignupRequest struct {
	Name     string `form:"name" validate:"required"`
	Email    string `form:"email" validate:"required"`
	Phone    string `form:"phone" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// ResetRequest is the forgot-password form.
type ResetRequest struct {
	Email string `form:"email" validate:"required"`
}

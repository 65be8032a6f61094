package controllers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rentdesk/portal/internal/backend"
	"github.com/rentdesk/portal/internal/dtos"
	"github.com/rentdesk/portal/internal/session"
	"github.com/rentdesk/portal/internal/utils"
	"github.com/rentdesk/portal/internal/validate"
	"github.com/rentdesk/portal/internal/views"
)

type AuthController struct {
	api   *backend.Client
	views *views.Renderer
}

func NewAuthController(api *backend.Client, v *views.Renderer) *AuthController {
	return &AuthController{api: api, views: v}
}

// loginFormData re-renders the form with the submitted email retained; the
// password is never echoed back.
type loginFormData struct {
	Email string
}

func (c *AuthController) ShowLogin(w http.ResponseWriter, r *http.Request) {
	render(c.views, w, "login", Page{Title: "Login", Flash: PopFlash(w, r), Data: loginFormData{}})
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		render(c.views, w, "login", Page{Title: "Login", Error: "Invalid form submission", Data: loginFormData{}})
		return
	}

	form := dtos.LoginForm{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}
	if err := formValidate.Struct(form); err != nil {
		render(c.views, w, "login", Page{
			Title: "Login",
			Error: "Please enter a valid email and password",
			Data:  loginFormData{Email: form.Email},
		})
		return
	}

	user, err := c.api.Login(r.Context(), form.Email, form.Password)
	if err != nil {
		// The backend's error message is surfaced verbatim; the form keeps
		// its values.
		msg := "Login failed. Please try again."
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			msg = apiErr.Message
		}
		render(c.views, w, "login", Page{
			Title: "Login",
			Error: msg,
			Data:  loginFormData{Email: form.Email},
		})
		return
	}

	session.Write(w, &session.Session{
		UserID:   user.UserID,
		Role:     user.Role,
		Username: user.Username,
	})

	switch user.Role {
	case session.RoleAdmin:
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
	case session.RoleTenant:
		http.Redirect(w, r, "/tenant", http.StatusSeeOther)
	default:
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	}
}

func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	session.Clear(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// ShowRegister renders the registration form. Submission is intentionally
// not wired to any route; see DESIGN.md.
func (c *AuthController) ShowRegister(w http.ResponseWriter, r *http.Request) {
	render(c.views, w, "register", Page{Title: "Register"})
}

// ShowForgotPassword renders the forgot-password form. Submission is
// intentionally not wired to any route; see DESIGN.md.
func (c *AuthController) ShowForgotPassword(w http.ResponseWriter, r *http.Request) {
	render(c.views, w, "forgot_password", Page{Title: "Forgot Password"})
}

type resetFormData struct {
	Token string
}

// ShowResetPassword verifies the token once, on mount. An invalid token
// renders the invalid-token page and the form is never shown.
func (c *AuthController) ShowResetPassword(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]
	if err := c.api.VerifyResetToken(r.Context(), token); err != nil {
		utils.Logger.WithError(err).Debug("reset token failed verification")
		render(c.views, w, "reset_invalid", Page{Title: "Reset Password"})
		return
	}
	render(c.views, w, "reset_password", Page{Title: "Reset Password", Data: resetFormData{Token: token}})
}

// ResetPassword enforces the local password policy before any network call.
func (c *AuthController) ResetPassword(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]
	if err := r.ParseForm(); err != nil {
		render(c.views, w, "reset_password", Page{Title: "Reset Password", Error: "Invalid form submission", Data: resetFormData{Token: token}})
		return
	}

	form := dtos.ResetPasswordForm{
		NewPassword:     r.FormValue("new_password"),
		ConfirmPassword: r.FormValue("confirm_password"),
	}
	if err := formValidate.Struct(form); err != nil {
		render(c.views, w, "reset_password", Page{Title: "Reset Password", Error: "Both password fields are required", Data: resetFormData{Token: token}})
		return
	}
	if err := validate.CheckNewPassword(form.NewPassword, form.ConfirmPassword); err != nil {
		render(c.views, w, "reset_password", Page{Title: "Reset Password", Error: err.Error(), Data: resetFormData{Token: token}})
		return
	}

	if err := c.api.ResetPassword(r.Context(), token, form.NewPassword); err != nil {
		msg := "Failed to reset password. Please try again."
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			msg = apiErr.Message
		}
		render(c.views, w, "reset_password", Page{Title: "Reset Password", Error: msg, Data: resetFormData{Token: token}})
		return
	}

	SetFlash(w, "success", "Your password has been reset. Please log in.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (c *AuthController) Unauthorized(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusForbidden)
	render(c.views, w, "unauthorized", Page{Title: "Unauthorized", Session: session.FromRequest(r)})
}

// Dashboard is the fallback landing page for sessions whose role is neither
// admin nor tenant.
func (c *AuthController) Dashboard(w http.ResponseWriter, r *http.Request) {
	render(c.views, w, "dashboard", Page{Title: "Dashboard", Session: session.FromRequest(r)})
}

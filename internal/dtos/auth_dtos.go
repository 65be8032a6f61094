package dtos

// ----------------------
// Auth forms
// ----------------------

type LoginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type ResetPasswordForm struct {
	NewPassword     string `validate:"required"`
	ConfirmPassword string `validate:"required"`
}

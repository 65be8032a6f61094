package backend

import (
	"context"
	"fmt"
)

// LoginUser is the `user` object the backend returns on a successful login.
type LoginUser struct {
	UserID   int64  `json:"user_id"`
	Role     string `json:"role"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	User LoginUser `json:"user"`
}

// Login posts credentials and returns the authenticated user. Callers own
// the session cookie write; this client performs no side effects.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginUser, error) {
	var resp loginResponse
	if err := c.do(ctx, "POST", "/login", nil, loginRequest{Email: email, Password: password}, &resp, nil); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// VerifyResetToken checks a password-reset token once, on reset-page mount.
func (c *Client) VerifyResetToken(ctx context.Context, token string) error {
	endpoint := fmt.Sprintf("/verify-reset-token/%s", token)
	return c.do(ctx, "GET", endpoint, nil, nil, nil, nil)
}

type resetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

// ResetPassword submits the new password for a verified token. Local policy
// checks happen before this is ever called.
func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) error {
	return c.do(ctx, "POST", "/reset-password", nil, resetPasswordRequest{Token: token, NewPassword: newPassword}, nil, nil)
}

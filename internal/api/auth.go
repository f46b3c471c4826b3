package api

import (
	"context"
	"net/http"
)

// AuthAPI covers the login endpoints.
type AuthAPI struct{ c *Client }

// SendOTP requests a one-time password for an existing account.
func (a AuthAPI) SendOTP(ctx context.Context, email string) Response[OTPPayload] {
	return do[OTPPayload](a.c, ctx, http.MethodPost, "/auth/send-otp", nil, map[string]string{"email": email})
}

// VerifyOTP exchanges the one-time password for a session token.
func (a AuthAPI) VerifyOTP(ctx context.Context, email, otp string) Response[AuthPayload] {
	return do[AuthPayload](a.c, ctx, http.MethodPost, "/auth/verify-otp", nil, map[string]string{
		"email": email,
		"otp":   otp,
	})
}

// GoogleSignIn exchanges verified Google identity claims for a session token.
func (a AuthAPI) GoogleSignIn(ctx context.Context, creds GoogleCredentials) Response[AuthPayload] {
	return do[AuthPayload](a.c, ctx, http.MethodPost, "/auth/google", nil, creds)
}

// Logout drops the local session token. The backend keeps no server-side
// session to revoke.
func (a AuthAPI) Logout() error {
	return a.c.sessions.Clear()
}

// SignupAPI covers account creation.
type SignupAPI struct{ c *Client }

// GenerateOTP requests a one-time password for a new account.
func (s SignupAPI) GenerateOTP(ctx context.Context, email string) Response[OTPPayload] {
	return do[OTPPayload](s.c, ctx, http.MethodPost, "/signup/generate-otp", nil, map[string]string{"email": email})
}

// CreateAccount finishes signup with the received OTP.
func (s SignupAPI) CreateAccount(ctx context.Context, name, email, otp string) Response[AuthPayload] {
	return do[AuthPayload](s.c, ctx, http.MethodPost, "/signup/verify-otp", nil, map[string]string{
		"name":  name,
		"email": email,
		"otp":   otp,
	})
}

// UsersAPI covers profile and settings.
type UsersAPI struct{ c *Client }

// Profile fetches the signed-in user and their settings.
func (u UsersAPI) Profile(ctx context.Context) Response[ProfilePayload] {
	return do[ProfilePayload](u.c, ctx, http.MethodGet, "/users/profile", nil, nil)
}

// UserPatch updates profile fields; zero fields are left untouched.
type UserPatch struct {
	Name       string `json:"name,omitempty"`
	Phone      string `json:"phone,omitempty"`
	ProfileImg string `json:"profile_img,omitempty"`
}

// Update patches the user document.
func (u UsersAPI) Update(ctx context.Context, patch UserPatch) Response[User] {
	return do[User](u.c, ctx, http.MethodPut, "/users", nil, patch)
}

// SettingsPatch updates settings fields; zero fields are left untouched.
type SettingsPatch struct {
	Currency string `json:"currency,omitempty"`
	Language string `json:"language,omitempty"`
}

// UpdateSettings patches the per-user settings.
func (u UsersAPI) UpdateSettings(ctx context.Context, patch SettingsPatch) Response[Settings] {
	return do[Settings](u.c, ctx, http.MethodPut, "/settings", nil, patch)
}

// UpdateQuickAdd replaces the quick-add shortcut list. Sent separately from
// SettingsPatch so clearing the last shortcut still serializes.
func (u UsersAPI) UpdateQuickAdd(ctx context.Context, subcategoryIDs []string) Response[Settings] {
	if subcategoryIDs == nil {
		subcategoryIDs = []string{}
	}
	return do[Settings](u.c, ctx, http.MethodPut, "/settings", nil, map[string][]string{"quick_add": subcategoryIDs})
}

// Package auth runs the sign-in flows: email OTP, signup and Google. It sits
// between the HTTP handlers and the gateway, verifying inputs locally before
// any network call and persisting the session token on success.
package auth

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/idtoken"

	"github.com/jayPrakash10/expense-front/internal/api"
	"github.com/jayPrakash10/expense-front/internal/core"
	applog "github.com/jayPrakash10/expense-front/internal/log"
	"github.com/jayPrakash10/expense-front/internal/storage"
)

var ErrSignInFailed = errors.New("sign in failed")

// tokenVerifier matches idtoken.Validate so tests can stub verification.
type tokenVerifier func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// Service owns the authentication flows.
type Service struct {
	client   *api.Client
	sessions *storage.SessionStore
	audience string
	verify   tokenVerifier
	logger   *applog.Logger
}

func NewService(client *api.Client, sessions *storage.SessionStore, googleClientID string, logger *applog.Logger) *Service {
	return &Service{
		client:   client,
		sessions: sessions,
		audience: googleClientID,
		verify:   idtoken.Validate,
		logger:   logger.WithComponent(applog.ComponentAuth),
	}
}

// RequestOTP validates the address locally, then asks the backend to mail a
// one-time password to an existing account.
func (s *Service) RequestOTP(ctx context.Context, email string) error {
	if err := core.ValidateEmail(email); err != nil {
		return err
	}
	resp := s.client.Auth.SendOTP(ctx, email)
	if !resp.OK() {
		return fmt.Errorf("%w: %s", ErrSignInFailed, resp.Err.Message)
	}
	return nil
}

// VerifyOTP exchanges the one-time password for a token and stores it.
func (s *Service) VerifyOTP(ctx context.Context, email, otp string) (api.User, error) {
	resp := s.client.Auth.VerifyOTP(ctx, email, otp)
	if !resp.OK() {
		return api.User{}, fmt.Errorf("%w: %s", ErrSignInFailed, resp.Err.Message)
	}
	if err := s.sessions.Save(resp.Data.Token); err != nil {
		return api.User{}, err
	}
	s.logger.Info("Signed in", "email", email)
	return resp.Data.User, nil
}

// RequestSignupOTP starts account creation for a new address.
func (s *Service) RequestSignupOTP(ctx context.Context, email string) error {
	if err := core.ValidateEmail(email); err != nil {
		return err
	}
	resp := s.client.Signup.GenerateOTP(ctx, email)
	if !resp.OK() {
		return fmt.Errorf("%w: %s", ErrSignInFailed, resp.Err.Message)
	}
	return nil
}

// CompleteSignup finishes signup with the received OTP and stores the token.
func (s *Service) CompleteSignup(ctx context.Context, name, email, otp string) (api.User, error) {
	resp := s.client.Signup.CreateAccount(ctx, name, email, otp)
	if !resp.OK() {
		return api.User{}, fmt.Errorf("%w: %s", ErrSignInFailed, resp.Err.Message)
	}
	if err := s.sessions.Save(resp.Data.Token); err != nil {
		return api.User{}, err
	}
	s.logger.Info("Account created", "email", email)
	return resp.Data.User, nil
}

// SignInWithGoogle verifies the raw Google ID token against the configured
// client ID, then exchanges the extracted identity for a backend session.
func (s *Service) SignInWithGoogle(ctx context.Context, rawToken string) (api.User, error) {
	payload, err := s.verify(ctx, rawToken, s.audience)
	if err != nil {
		s.logger.Warn("Google token rejected", applog.FieldError, err.Error())
		return api.User{}, fmt.Errorf("%w: invalid google token", ErrSignInFailed)
	}

	creds := api.GoogleCredentials{
		Email:      claimString(payload, "email"),
		Name:       claimString(payload, "name"),
		ProfileImg: claimString(payload, "picture"),
	}
	if creds.Email == "" {
		return api.User{}, fmt.Errorf("%w: token carries no email", ErrSignInFailed)
	}

	resp := s.client.Auth.GoogleSignIn(ctx, creds)
	if !resp.OK() {
		return api.User{}, fmt.Errorf("%w: %s", ErrSignInFailed, resp.Err.Message)
	}
	if err := s.sessions.Save(resp.Data.Token); err != nil {
		return api.User{}, err
	}
	s.logger.Info("Signed in with google", "email", creds.Email)
	return resp.Data.User, nil
}

// SignOut drops the stored token.
func (s *Service) SignOut() error {
	return s.client.Auth.Logout()
}

// SignedIn reports whether a token is held.
func (s *Service) SignedIn() bool {
	return s.sessions.Token() != ""
}

func claimString(p *idtoken.Payload, key string) string {
	if v, ok := p.Claims[key].(string); ok {
		return v
	}
	return ""
}

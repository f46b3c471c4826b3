package http

import (
	"net/http"

	applog "github.com/jayPrakash10/expense-front/internal/log"
	"github.com/jayPrakash10/expense-front/internal/store"
)

func (s *Server) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	if s.auth.SignedIn() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	s.render(w, "login.html", nil)
}

func (s *Server) handleSendOTP(w http.ResponseWriter, r *http.Request) {
	if b := parseFormOrFail(r); b != nil {
		b.Write(w)
		return
	}
	email := sanitizeInput(r.Form.Get("email"))

	if err := s.auth.RequestOTP(r.Context(), email); err != nil {
		UnprocessableEntityError(err.Error()).DrainNotifications(s.notifier).Write(w)
		return
	}
	s.renderTo(NewHTMXResponse(), w, "otp_step.html", map[string]string{"Email": email, "Action": "/auth/verify"})
}

func (s *Server) handleVerifyOTP(w http.ResponseWriter, r *http.Request) {
	if b := parseFormOrFail(r); b != nil {
		b.Write(w)
		return
	}
	email := sanitizeInput(r.Form.Get("email"))
	otp := sanitizeInput(r.Form.Get("otp"))

	user, err := s.auth.VerifyOTP(r.Context(), email, otp)
	if err != nil {
		UnprocessableEntityError("Invalid code, try again").DrainNotifications(s.notifier).Write(w)
		return
	}
	s.afterSignIn(r, user.Name)
	NewHTMXResponse().Redirect("/").Write(w)
}

func (s *Server) handleSignupOTP(w http.ResponseWriter, r *http.Request) {
	if b := parseFormOrFail(r); b != nil {
		b.Write(w)
		return
	}
	email := sanitizeInput(r.Form.Get("email"))

	if err := s.auth.RequestSignupOTP(r.Context(), email); err != nil {
		UnprocessableEntityError(err.Error()).DrainNotifications(s.notifier).Write(w)
		return
	}
	s.renderTo(NewHTMXResponse(), w, "otp_step.html", map[string]string{"Email": email, "Action": "/auth/signup"})
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	if b := parseFormOrFail(r); b != nil {
		b.Write(w)
		return
	}
	name := sanitizeInput(r.Form.Get("name"))
	email := sanitizeInput(r.Form.Get("email"))
	otp := sanitizeInput(r.Form.Get("otp"))

	user, err := s.auth.CompleteSignup(r.Context(), name, email, otp)
	if err != nil {
		UnprocessableEntityError("Could not create the account").DrainNotifications(s.notifier).Write(w)
		return
	}
	s.afterSignIn(r, user.Name)
	NewHTMXResponse().Redirect("/").Write(w)
}

// handleGoogleSignIn receives the credential posted by Google's sign-in
// button and exchanges it for a backend session.
func (s *Server) handleGoogleSignIn(w http.ResponseWriter, r *http.Request) {
	if b := parseFormOrFail(r); b != nil {
		b.Write(w)
		return
	}
	credential := r.Form.Get("credential")

	user, err := s.auth.SignInWithGoogle(r.Context(), credential)
	if err != nil {
		UnprocessableEntityError("Google sign in failed").DrainNotifications(s.notifier).Write(w)
		return
	}
	s.afterSignIn(r, user.Name)
	NewHTMXResponse().Redirect("/").Write(w)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.auth.SignOut(); err != nil {
		s.logger.Error("Sign out failed", applog.FieldError, err.Error())
	}
	s.store.Dispatch(store.ClearSession{})
	NewHTMXResponse().Redirect("/login").Write(w)
}

// afterSignIn warms the store so the first dashboard render has data.
func (s *Server) afterSignIn(r *http.Request, name string) {
	if err := s.profile.Load(r.Context()); err != nil {
		s.logger.Warn("Profile load after sign in failed", applog.FieldError, err.Error())
	}
	if err := s.categories.Refresh(r.Context()); err != nil {
		s.logger.Warn("Category load after sign in failed", applog.FieldError, err.Error())
	}
	s.logger.Info("Session started", "name", name)
}

func parseFormOrFail(r *http.Request) *HTMXResponse {
	if err := r.ParseForm(); err != nil {
		return BadRequestError("Invalid request format")
	}
	return nil
}

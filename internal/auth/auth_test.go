package auth

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"google.golang.org/api/idtoken"

	"github.com/jayPrakash10/expense-front/internal/api"
	"github.com/jayPrakash10/expense-front/internal/core"
	applog "github.com/jayPrakash10/expense-front/internal/log"
	"github.com/jayPrakash10/expense-front/internal/notify"
	"github.com/jayPrakash10/expense-front/internal/storage"
)

func newTestService(t *testing.T, handler http.Handler) (*Service, *storage.SessionStore) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := applog.New(applog.Config{Level: slog.LevelError})
	sessions, err := storage.NewSessionStore(filepath.Join(t.TempDir(), "session"))
	if err != nil {
		t.Fatal(err)
	}
	client := api.NewClient(srv.URL, 5*time.Second, sessions, notify.NewCenter(logger), logger)
	return NewService(client, sessions, "client-id.apps.googleusercontent.com", logger), sessions
}

func authHandler(t *testing.T, token string) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"token": token,
				"user":  map[string]string{"_id": "u1", "name": "Asha", "email": "asha@example.com"},
			},
		})
	})
}

func TestRequestOTPRejectsBadEmail(t *testing.T) {
	svc, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("backend should not be called")
	}))

	if err := svc.RequestOTP(context.Background(), "not-an-email"); !errors.Is(err, core.ErrInvalidEmail) {
		t.Fatalf("err = %v, want ErrInvalidEmail", err)
	}
}

func TestVerifyOTPStoresToken(t *testing.T) {
	svc, sessions := newTestService(t, authHandler(t, "tok-otp"))

	user, err := svc.VerifyOTP(context.Background(), "asha@example.com", "123456")
	if err != nil {
		t.Fatal(err)
	}
	if user.Name != "Asha" {
		t.Fatalf("user = %+v", user)
	}
	if sessions.Token() != "tok-otp" {
		t.Fatalf("token = %q", sessions.Token())
	}
	if !svc.SignedIn() {
		t.Fatal("expected signed in")
	}
}

func TestVerifyOTPFailureLeavesSessionEmpty(t *testing.T) {
	svc, sessions := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Invalid OTP"})
	}))

	_, err := svc.VerifyOTP(context.Background(), "asha@example.com", "000000")
	if !errors.Is(err, ErrSignInFailed) {
		t.Fatalf("err = %v, want ErrSignInFailed", err)
	}
	if sessions.Token() != "" {
		t.Fatalf("token = %q, want empty", sessions.Token())
	}
}

func TestSignInWithGoogle(t *testing.T) {
	var gotCreds api.GoogleCredentials
	svc, sessions := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotCreds); err != nil {
			t.Fatal(err)
		}
		authHandler(t, "tok-google").ServeHTTP(w, r)
	}))
	svc.verify = func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
		if audience != "client-id.apps.googleusercontent.com" {
			t.Fatalf("audience = %q", audience)
		}
		return &idtoken.Payload{Claims: map[string]any{
			"email":   "asha@example.com",
			"name":    "Asha",
			"picture": "https://img.example/asha.png",
		}}, nil
	}

	user, err := svc.SignInWithGoogle(context.Background(), "raw-id-token")
	if err != nil {
		t.Fatal(err)
	}
	if user.ID != "u1" {
		t.Fatalf("user = %+v", user)
	}
	if gotCreds.Email != "asha@example.com" || gotCreds.ProfileImg == "" {
		t.Fatalf("credentials sent = %+v", gotCreds)
	}
	if sessions.Token() != "tok-google" {
		t.Fatalf("token = %q", sessions.Token())
	}
}

func TestSignInWithGoogleRejectsBadToken(t *testing.T) {
	svc, sessions := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("backend should not be called")
	}))
	svc.verify = func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
		return nil, errors.New("expired")
	}

	if _, err := svc.SignInWithGoogle(context.Background(), "bad"); !errors.Is(err, ErrSignInFailed) {
		t.Fatalf("err = %v, want ErrSignInFailed", err)
	}
	if sessions.Token() != "" {
		t.Fatal("token should stay empty")
	}
}

func TestSignOutClearsToken(t *testing.T) {
	svc, sessions := newTestService(t, authHandler(t, "tok"))

	if _, err := svc.VerifyOTP(context.Background(), "asha@example.com", "123456"); err != nil {
		t.Fatal(err)
	}
	if err := svc.SignOut(); err != nil {
		t.Fatal(err)
	}
	if sessions.Token() != "" || svc.SignedIn() {
		t.Fatal("expected signed out")
	}
}

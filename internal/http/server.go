// Package http is the presentation layer: an htmx server rendering the
// dashboard, analytics and settings screens from the store, and translating
// form posts into service calls.
package http

import (
	"context"
	"html/template"
	"io/fs"
	"net/http"
	"sync"

	"github.com/jayPrakash10/expense-front/internal/auth"
	applog "github.com/jayPrakash10/expense-front/internal/log"
	"github.com/jayPrakash10/expense-front/internal/notify"
	"github.com/jayPrakash10/expense-front/internal/services"
	"github.com/jayPrakash10/expense-front/internal/store"
	appweb "github.com/jayPrakash10/expense-front/web"
)

// Deps carries everything the handlers need.
type Deps struct {
	Store      *store.Store
	Auth       *auth.Service
	Analytics  *services.AnalyticsService
	Form       *services.ExpenseFormService
	Categories *services.CategoryService
	Profile    *services.ProfileService
	Notifier   *notify.Center
	Logger     *applog.Logger
}

type Server struct {
	http.Server
	templates *template.Template
	limiter   *rateLimiter
	logger    *applog.Logger

	store      *store.Store
	auth       *auth.Service
	analytics  *services.AnalyticsService
	form       *services.ExpenseFormService
	categories *services.CategoryService
	profile    *services.ProfileService
	notifier   *notify.Center

	shutdownOnce sync.Once
}

// NewServer configures routes and templates, returning a ready-to-run server.
func NewServer(addr string, deps Deps) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:    addr,
			Handler: mux,
		},
		limiter:    newRateLimiter(),
		logger:     deps.Logger.WithComponent(applog.ComponentHTTP),
		store:      deps.Store,
		auth:       deps.Auth,
		analytics:  deps.Analytics,
		form:       deps.Form,
		categories: deps.Categories,
		profile:    deps.Profile,
		notifier:   deps.Notifier,
	}

	t, err := template.ParseFS(appweb.TemplatesFS, "templates/*.html")
	if err != nil {
		s.logger.Warn("Failed parsing templates", applog.FieldError, err.Error())
	}
	s.templates = t

	if sub, err := fs.Sub(appweb.StaticFS, "static"); err == nil {
		static := http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
		mux.Handle("GET /static/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "public, max-age=3600, immutable")
			static.ServeHTTP(w, r)
		}))
	} else {
		s.logger.Warn("Failed to mount embedded static FS", applog.FieldError, err.Error())
	}

	mux.HandleFunc("GET /healthz", handleHealth)
	mux.HandleFunc("GET /readyz", handleReady)

	mux.HandleFunc("GET /{$}", s.secure(s.requireSession(s.handleDashboard)))
	mux.HandleFunc("GET /history", s.secure(s.requireSession(s.handleHistory)))
	mux.HandleFunc("GET /settings", s.secure(s.requireSession(s.handleSettings)))

	mux.HandleFunc("GET /login", s.secure(s.handleLoginPage))
	mux.HandleFunc("POST /auth/otp", s.secure(s.handleSendOTP))
	mux.HandleFunc("POST /auth/verify", s.secure(s.handleVerifyOTP))
	mux.HandleFunc("POST /auth/signup-otp", s.secure(s.handleSignupOTP))
	mux.HandleFunc("POST /auth/signup", s.secure(s.handleSignup))
	mux.HandleFunc("POST /auth/google", s.secure(s.handleGoogleSignIn))
	mux.HandleFunc("POST /auth/logout", s.secure(s.handleLogout))

	mux.HandleFunc("GET /ui/overview", s.secure(s.requireSession(s.handleOverviewPartial)))
	mux.HandleFunc("GET /ui/recents", s.secure(s.requireSession(s.handleRecentsPartial)))
	mux.HandleFunc("GET /ui/analytics/month", s.secure(s.requireSession(s.handleMonthAnalytics)))
	mux.HandleFunc("GET /ui/analytics/year", s.secure(s.requireSession(s.handleYearAnalytics)))
	mux.HandleFunc("GET /ui/history", s.secure(s.requireSession(s.handleHistoryPartial)))

	mux.HandleFunc("POST /ui/expense/quick-add", s.secure(s.requireSession(s.handleQuickAdd)))
	mux.HandleFunc("POST /ui/expense/{target}/open", s.secure(s.requireSession(s.handleDialogOpen)))
	mux.HandleFunc("POST /ui/expense/{target}/close", s.secure(s.requireSession(s.handleDialogClose)))
	mux.HandleFunc("POST /ui/expense/{target}/field", s.secure(s.requireSession(s.handleDialogField)))
	mux.HandleFunc("POST /ui/expense/{target}/amount-key", s.secure(s.requireSession(s.handleAmountKey)))
	mux.HandleFunc("POST /expenses/{target}/submit", s.secure(s.requireSession(s.handleExpenseSubmit)))
	mux.HandleFunc("DELETE /expenses/{id}", s.secure(s.requireSession(s.handleExpenseDelete)))

	mux.HandleFunc("POST /settings/currency", s.secure(s.requireSession(s.handleCurrencyChange)))
	mux.HandleFunc("POST /settings/profile", s.secure(s.requireSession(s.handleProfileUpdate)))
	mux.HandleFunc("POST /settings/quick-add", s.secure(s.requireSession(s.handleQuickAddToggle)))
	mux.HandleFunc("POST /categories", s.secure(s.requireSession(s.handleCategoryCreate)))
	mux.HandleFunc("PUT /categories/{id}/name", s.secure(s.requireSession(s.handleCategoryRename)))
	mux.HandleFunc("PUT /categories/{id}/color", s.secure(s.requireSession(s.handleCategoryColor)))
	mux.HandleFunc("DELETE /categories/{id}", s.secure(s.requireSession(s.handleCategoryDelete)))
	mux.HandleFunc("POST /categories/{id}/subcategories", s.secure(s.requireSession(s.handleSubcategoryCreate)))
	mux.HandleFunc("PUT /subcategories/{id}", s.secure(s.requireSession(s.handleSubcategoryUpdate)))
	mux.HandleFunc("DELETE /subcategories/{id}", s.secure(s.requireSession(s.handleSubcategoryDelete)))

	return s
}

// Shutdown stops the rate limiter's cleanup goroutine and drains the HTTP
// server.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	s.shutdownOnce.Do(func() {
		s.limiter.stop()
		s.categories.Stop()
		err = s.Server.Shutdown(ctx)
	})
	return err
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// requireSession redirects signed-out browsers to the login screen. For htmx
// requests it uses HX-Redirect so the whole page swaps.
func (s *Server) requireSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.auth.SignedIn() {
			if r.Header.Get("HX-Request") == "true" {
				w.Header().Set("HX-Redirect", "/login")
				w.WriteHeader(http.StatusOK)
				return
			}
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next(w, r)
	}
}

package http

import (
	"bytes"
	"net/http"
	"strconv"
	"strings"
	"time"

	applog "github.com/jayPrakash10/expense-front/internal/log"
	"github.com/jayPrakash10/expense-front/internal/store"
)

// render executes a template straight to the response.
func (s *Server) render(w http.ResponseWriter, name string, data any) {
	if s.templates == nil {
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		s.logger.Error("Template execution failed", "template", name, applog.FieldError, err.Error())
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// renderTo executes a template into a prepared response so HX-Trigger
// headers and the rendered partial go out together.
func (s *Server) renderTo(b *HTMXResponse, w http.ResponseWriter, name string, data any) {
	if s.templates == nil {
		InternalServerError("templates not loaded").Write(w)
		return
	}
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		s.logger.Error("Template execution failed", "template", name, applog.FieldError, err.Error())
		InternalServerError("rendering failed").Write(w)
		return
	}
	b.BodyHTML(buf.String()).Write(w)
}

// parseYearMonth extracts year and month from query parameters, defaulting
// to the current date. Out-of-range months are corrected to now.
func parseYearMonth(r *http.Request) (year, month int) {
	now := time.Now()
	year = now.Year()
	month = int(now.Month())

	if v := strings.TrimSpace(r.URL.Query().Get("year")); v != "" {
		if y, err := strconv.Atoi(v); err == nil {
			year = y
		}
	}
	if v := strings.TrimSpace(r.URL.Query().Get("month")); v != "" {
		if m, err := strconv.Atoi(v); err == nil {
			month = m
		}
	}
	if month < 1 || month > 12 {
		month = int(now.Month())
	}
	return year, month
}

// parseTarget maps the {target} path segment to a form draft.
func parseTarget(r *http.Request) (store.FormTarget, bool) {
	switch r.PathValue("target") {
	case "add":
		return store.AddForm, true
	case "update":
		return store.UpdateForm, true
	}
	return store.AddForm, false
}

// formatAmount renders an amount with the user's currency symbol.
func formatAmount(symbol string, v float64) string {
	return symbol + strconv.FormatFloat(v, 'f', 2, 64)
}

// barWidth scales an amount to a rounded percentage of the series maximum,
// keeping tiny nonzero bars visible.
func barWidth(amount, max float64) int {
	if max <= 0 || amount <= 0 {
		return 0
	}
	width := int(amount/max*100 + 0.5)
	if width < 2 {
		width = 2
	}
	if width > 100 {
		width = 100
	}
	return width
}

// sanitizeInput trims whitespace and strips control characters.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}

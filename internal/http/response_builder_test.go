package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	applog "github.com/jayPrakash10/expense-front/internal/log"
	"github.com/jayPrakash10/expense-front/internal/notify"
)

func decodeTrigger(t *testing.T, rec *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()
	header := rec.Header().Get("HX-Trigger")
	if header == "" {
		t.Fatal("HX-Trigger header missing")
	}
	var triggers map[string]json.RawMessage
	if err := json.Unmarshal([]byte(header), &triggers); err != nil {
		t.Fatalf("HX-Trigger is not JSON: %v", err)
	}
	return triggers
}

func TestTriggersMarshalledIntoHeader(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHTMXResponse().
		TriggerExpenseCreated(2024, 3).
		TriggerCategoriesChanged().
		Write(rec)

	triggers := decodeTrigger(t, rec)
	var created struct {
		Year  int `json:"year"`
		Month int `json:"month"`
	}
	if err := json.Unmarshal(triggers["expense:created"], &created); err != nil {
		t.Fatal(err)
	}
	if created.Year != 2024 || created.Month != 3 {
		t.Fatalf("expense:created = %+v", created)
	}
	if _, ok := triggers["categories:changed"]; !ok {
		t.Fatal("categories:changed missing")
	}
}

func TestDrainNotificationsBuildsToastTrigger(t *testing.T) {
	logger := applog.New(applog.Config{Level: slog.LevelError})
	center := notify.NewCenter(logger)
	center.Success("Expense added")
	center.Error("Request failed")

	rec := httptest.NewRecorder()
	NewHTMXResponse().DrainNotifications(center).Write(rec)

	triggers := decodeTrigger(t, rec)
	var toasts []struct {
		Type     string `json:"type"`
		Message  string `json:"message"`
		Duration int    `json:"duration"`
	}
	if err := json.Unmarshal(triggers["show-notification"], &toasts); err != nil {
		t.Fatal(err)
	}
	if len(toasts) != 2 {
		t.Fatalf("toasts = %d", len(toasts))
	}
	if toasts[0].Type != "success" || toasts[0].Message != "Expense added" {
		t.Fatalf("first toast = %+v", toasts[0])
	}
	if toasts[0].Duration <= 0 {
		t.Fatalf("duration = %d", toasts[0].Duration)
	}

	// A second drain finds the center empty and adds no trigger.
	rec2 := httptest.NewRecorder()
	NewHTMXResponse().DrainNotifications(center).Write(rec2)
	if rec2.Header().Get("HX-Trigger") != "" {
		t.Fatal("trigger present after center drained")
	}
}

func TestErrorResponseEscapesMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	BadRequestError(`<script>alert("x")</script>`).Write(rec)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if strings.Contains(body, "<script>") {
		t.Fatalf("body not escaped: %s", body)
	}
	if !strings.Contains(body, "&lt;script&gt;") {
		t.Fatalf("body = %s", body)
	}
}

func TestRedirectSetsHeaderOnly(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHTMXResponse().Redirect("/login").Write(rec)

	if rec.Header().Get("HX-Redirect") != "/login" {
		t.Fatalf("HX-Redirect = %q", rec.Header().Get("HX-Redirect"))
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}

package http

import (
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/jayPrakash10/expense-front/internal/notify"
)

// HTMXResponse builds responses carrying HX-Trigger headers. Triggers drive
// the client-side refreshes: toast notifications and partial reloads.
type HTMXResponse struct {
	triggers map[string]any
	status   int
	body     []byte
	headers  map[string]string
}

func NewHTMXResponse() *HTMXResponse {
	return &HTMXResponse{
		triggers: make(map[string]any),
		status:   http.StatusOK,
		headers:  make(map[string]string),
	}
}

func (b *HTMXResponse) Status(code int) *HTMXResponse {
	b.status = code
	return b
}

func (b *HTMXResponse) Trigger(name string, data any) *HTMXResponse {
	b.triggers[name] = data
	return b
}

// TriggerExpenseCreated fires expense:created so the overview, recents and
// analytics partials reload.
func (b *HTMXResponse) TriggerExpenseCreated(year, month int) *HTMXResponse {
	return b.Trigger("expense:created", map[string]int{"year": year, "month": month})
}

func (b *HTMXResponse) TriggerExpenseUpdated(year, month int) *HTMXResponse {
	return b.Trigger("expense:updated", map[string]int{"year": year, "month": month})
}

func (b *HTMXResponse) TriggerExpenseDeleted() *HTMXResponse {
	return b.Trigger("expense:deleted", struct{}{})
}

func (b *HTMXResponse) TriggerCategoriesChanged() *HTMXResponse {
	return b.Trigger("categories:changed", struct{}{})
}

func (b *HTMXResponse) TriggerSettingsChanged() *HTMXResponse {
	return b.Trigger("settings:changed", struct{}{})
}

// DrainNotifications converts the pending notification-center entries into
// show-notification triggers.
func (b *HTMXResponse) DrainNotifications(center *notify.Center) *HTMXResponse {
	pending := center.Drain()
	if len(pending) == 0 {
		return b
	}
	toasts := make([]map[string]any, len(pending))
	for i, n := range pending {
		toasts[i] = map[string]any{
			"id":       n.ID,
			"type":     string(n.Kind),
			"message":  n.Message,
			"duration": int(n.Duration.Milliseconds()),
		}
	}
	return b.Trigger("show-notification", toasts)
}

func (b *HTMXResponse) Redirect(url string) *HTMXResponse {
	b.headers["HX-Redirect"] = url
	return b
}

func (b *HTMXResponse) Header(name, value string) *HTMXResponse {
	b.headers[name] = value
	return b
}

func (b *HTMXResponse) BodyHTML(html string) *HTMXResponse {
	b.headers["Content-Type"] = "text/html; charset=utf-8"
	b.body = []byte(html)
	return b
}

// Write sends the built response.
func (b *HTMXResponse) Write(w http.ResponseWriter) {
	for name, value := range b.headers {
		w.Header().Set(name, value)
	}
	if len(b.triggers) > 0 {
		if payload, err := json.Marshal(b.triggers); err == nil {
			w.Header().Set("HX-Trigger", string(payload))
		}
	}
	w.WriteHeader(b.status)
	if len(b.body) > 0 {
		_, _ = w.Write(b.body)
	}
}

// ErrorResponse renders an inline error block. The message is HTML-escaped.
func ErrorResponse(statusCode int, message string) *HTMXResponse {
	return NewHTMXResponse().
		Status(statusCode).
		BodyHTML(`<div class="error">` + template.HTMLEscapeString(message) + `</div>`)
}

func BadRequestError(message string) *HTMXResponse {
	return ErrorResponse(http.StatusBadRequest, message)
}

func UnprocessableEntityError(message string) *HTMXResponse {
	return ErrorResponse(http.StatusUnprocessableEntity, message)
}

func InternalServerError(message string) *HTMXResponse {
	return ErrorResponse(http.StatusInternalServerError, message)
}

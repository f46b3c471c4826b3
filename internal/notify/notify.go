// Package notify is the transient notification center. Gateway failures and
// form submissions surface here and are drained by the HTTP layer into toast
// triggers; nothing is persisted.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"

	applog "github.com/jayPrakash10/expense-front/internal/log"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

// Display durations mirror the toast timings of the UI.
const (
	successDuration = 3 * time.Second
	errorDuration   = 5 * time.Second
	infoDuration    = 4 * time.Second
)

// Notification is one transient toast.
type Notification struct {
	ID       string
	Kind     Kind
	Message  string
	Duration time.Duration
	At       time.Time
}

// Notifier is the write side handed to the gateway and services.
type Notifier interface {
	Success(msg string)
	Error(msg string)
	Info(msg string)
}

// Center collects pending notifications until the presentation layer drains
// them. Every notification is also logged.
type Center struct {
	mu      sync.Mutex
	pending []Notification
	logger  *applog.Logger
	now     func() time.Time
}

func NewCenter(logger *applog.Logger) *Center {
	return &Center{
		logger: logger.WithComponent(applog.ComponentNotify),
		now:    time.Now,
	}
}

func (c *Center) Success(msg string) { c.push(KindSuccess, msg, successDuration) }
func (c *Center) Error(msg string)   { c.push(KindError, msg, errorDuration) }
func (c *Center) Info(msg string)    { c.push(KindInfo, msg, infoDuration) }

func (c *Center) push(kind Kind, msg string, d time.Duration) {
	n := Notification{
		ID:       uuid.NewString(),
		Kind:     kind,
		Message:  msg,
		Duration: d,
		At:       c.now(),
	}

	c.mu.Lock()
	c.pending = append(c.pending, n)
	c.mu.Unlock()

	if kind == KindError {
		c.logger.Warn("Notification", "kind", string(kind), "message", msg)
		return
	}
	c.logger.Info("Notification", "kind", string(kind), "message", msg)
}

// Drain returns and clears the pending notifications in arrival order.
func (c *Center) Drain() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.pending
	c.pending = nil
	return out
}

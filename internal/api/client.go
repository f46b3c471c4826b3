// Package api is the gateway to the remote REST backend. Every call returns
// a tagged Response: success data or an error message, never a raised error.
// Failures are logged, pushed to the notifier as transient toasts, and left
// for the caller to branch on.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	applog "github.com/jayPrakash10/expense-front/internal/log"
	"github.com/jayPrakash10/expense-front/internal/notify"
	"github.com/jayPrakash10/expense-front/internal/storage"
)

const fallbackErrorMessage = "Request failed"

// Client performs authenticated calls against the backend. Endpoint groups
// hang off it the way the screens address them.
type Client struct {
	baseURL  string
	http     *http.Client
	sessions *storage.SessionStore
	notifier notify.Notifier
	logger   *applog.Logger

	Auth       AuthAPI
	Signup     SignupAPI
	Users      UsersAPI
	Categories CategoriesAPI
	Expenses   ExpensesAPI
}

// NewClient builds a gateway over baseURL. The session store supplies the
// bearer token when one is held; the notifier receives every failure.
func NewClient(baseURL string, timeout time.Duration, sessions *storage.SessionStore, notifier notify.Notifier, logger *applog.Logger) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: timeout},
		sessions: sessions,
		notifier: notifier,
		logger:   logger.WithComponent(applog.ComponentGateway),
	}
	c.Auth = AuthAPI{c}
	c.Signup = SignupAPI{c}
	c.Users = UsersAPI{c}
	c.Categories = CategoriesAPI{c}
	c.Expenses = ExpensesAPI{c}
	return c
}

// do executes one JSON round trip. It is the single place where transport
// errors, non-2xx statuses and decode failures become the uniform error arm.
func do[T any](c *Client, ctx context.Context, method, path string, query url.Values, body any) Response[T] {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			c.logger.Error("Encode request body failed", applog.FieldEndpoint, path, applog.FieldError, err.Error())
			return fail[T](c, fallbackErrorMessage)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		c.logger.Error("Build request failed", applog.FieldEndpoint, path, applog.FieldError, err.Error())
		return fail[T](c, fallbackErrorMessage)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token := c.sessions.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("Request failed", applog.FieldMethod, method, applog.FieldEndpoint, path, applog.FieldError, err.Error())
		return fail[T](c, fallbackErrorMessage)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("Read response failed", applog.FieldEndpoint, path, applog.FieldError, err.Error())
		return fail[T](c, fallbackErrorMessage)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg := fallbackErrorMessage
		var e struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(raw, &e) == nil && e.Message != "" {
			msg = e.Message
		}
		c.logger.Warn("Backend rejected request",
			applog.FieldMethod, method,
			applog.FieldEndpoint, path,
			applog.FieldStatus, resp.StatusCode,
			"message", msg)
		return fail[T](c, msg)
	}

	var env envelope[T]
	if err := json.Unmarshal(raw, &env); err != nil {
		c.logger.Error("Decode response failed", applog.FieldEndpoint, path, applog.FieldError, err.Error())
		return fail[T](c, fallbackErrorMessage)
	}
	return Response[T]{Data: env.Data, Meta: env.Meta}
}

func fail[T any](c *Client, msg string) Response[T] {
	if c.notifier != nil {
		c.notifier.Error(msg)
	}
	return Response[T]{Err: &APIError{Message: msg}}
}

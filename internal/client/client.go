// Package client talks to a running lifeos-server.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"

	"github.com/at-ishikawa/lifeos/internal/config"
	"github.com/at-ishikawa/lifeos/internal/model"
	"github.com/at-ishikawa/lifeos/internal/statistics"
	"github.com/at-ishikawa/lifeos/internal/store"
)

type Client struct {
	httpClient       *resty.Client
	maxRetryAttempts uint
	retryDelay       time.Duration
}

func NewClient(cfg config.ClientConfig) *Client {
	client := resty.New()
	client.SetBaseURL(strings.TrimRight(cfg.ServerURL, "/"))
	client.SetTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second)
	client.SetHeader("Accept", "application/json")

	return &Client{
		httpClient:       client,
		maxRetryAttempts: cfg.RetryAttempts,
		retryDelay:       200 * time.Millisecond,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

// APIError is a non-2xx answer of the server.
type APIError struct {
	StatusCode int
	Type       string
	Message    string
	Details    []string
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("response error %d: %s", e.StatusCode, e.Message)
	if len(e.Details) > 0 {
		msg += " (" + strings.Join(e.Details, ", ") + ")"
	}
	return msg
}

// Unwrap lets callers match store sentinels with errors.Is.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusNotFound:
		return store.ErrNotFound
	case http.StatusConflict:
		return store.ErrAlreadyExists
	}
	return nil
}

func (e *APIError) retryable() bool {
	return e.StatusCode >= http.StatusInternalServerError || e.StatusCode == http.StatusTooManyRequests
}

func newAPIError(response *resty.Response) *APIError {
	apiErr := &APIError{StatusCode: response.StatusCode(), Message: http.StatusText(response.StatusCode())}
	var body struct {
		Error struct {
			Message string   `json:"message"`
			Type    string   `json:"type"`
			Details []string `json:"details"`
		} `json:"error"`
	}
	if err := json.Unmarshal([]byte(response.String()), &body); err == nil && body.Error.Message != "" {
		apiErr.Message = body.Error.Message
		apiErr.Type = body.Error.Type
		apiErr.Details = body.Error.Details
	}
	return apiErr
}

// query sends a read, retrying network failures, 5xx and 429 answers.
func query[T any](ctx context.Context, client *Client, send func(req *resty.Request) (*resty.Response, error)) (T, error) {
	return call[T](ctx, client, client.maxRetryAttempts, send)
}

// command sends a write exactly once, even when the answer is lost.
func command[T any](ctx context.Context, client *Client, send func(req *resty.Request) (*resty.Response, error)) (T, error) {
	return call[T](ctx, client, 1, send)
}

func call[T any](ctx context.Context, client *Client, attempts uint, send func(req *resty.Request) (*resty.Response, error)) (T, error) {
	var result T
	if attempts == 0 {
		attempts = 1
	}
	err := retry.Do(
		func() error {
			response, err := send(client.httpClient.R().SetContext(ctx).SetResult(new(T)))
			if err != nil {
				return fmt.Errorf("httpClient.Execute > %w", err)
			}
			if response.IsError() {
				apiErr := newAPIError(response)
				if !apiErr.retryable() {
					return retry.Unrecoverable(apiErr)
				}
				return apiErr
			}
			body, ok := response.Result().(*T)
			if !ok || body == nil {
				return retry.Unrecoverable(fmt.Errorf("unexpected response body: %s", response.String()))
			}
			result = *body
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(client.retryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}

// State fetches the whole state.
func (client *Client) State(ctx context.Context) (store.State, error) {
	return query[store.State](ctx, client, func(req *resty.Request) (*resty.Response, error) {
		return req.Get("/api/state")
	})
}

// Dashboard fetches the dashboard summary of day, or of the server's today when day is zero.
func (client *Client) Dashboard(ctx context.Context, day model.Date) (statistics.DashboardSummary, error) {
	return query[statistics.DashboardSummary](ctx, client, func(req *resty.Request) (*resty.Response, error) {
		if !day.IsZero() {
			req.SetQueryParam("date", day.String())
		}
		return req.Get("/api/dashboard")
	})
}

// HabitOverview fetches every habit with its streak.
func (client *Client) HabitOverview(ctx context.Context, day model.Date) ([]statistics.HabitStatus, error) {
	return query[[]statistics.HabitStatus](ctx, client, func(req *resty.Request) (*resty.Response, error) {
		if !day.IsZero() {
			req.SetQueryParam("date", day.String())
		}
		return req.Get("/api/habits/overview")
	})
}

// Dispatch sends an action and returns the state after it.
func (client *Client) Dispatch(ctx context.Context, action store.Action) (store.State, error) {
	body, err := store.EncodeAction(action)
	if err != nil {
		return store.State{}, fmt.Errorf("store.EncodeAction() > %w", err)
	}
	return command[store.State](ctx, client, func(req *resty.Request) (*resty.Response, error) {
		return req.
			SetHeader("Content-Type", "application/json").
			SetBody(body).
			Post("/api/actions")
	})
}

// ToggleHabit flips the completion of habitID on day.
func (client *Client) ToggleHabit(ctx context.Context, habitID string, day model.Date) (model.Habit, error) {
	return command[model.Habit](ctx, client, func(req *resty.Request) (*resty.Response, error) {
		if !day.IsZero() {
			req.SetQueryParam("date", day.String())
		}
		return req.SetPathParam("id", habitID).Post("/api/habits/{id}/toggle")
	})
}

type savedSnapshot struct {
	TakenAt time.Time `json:"takenAt"`
}

// SaveSnapshot asks the server to persist its state now.
func (client *Client) SaveSnapshot(ctx context.Context) (time.Time, error) {
	saved, err := command[savedSnapshot](ctx, client, func(req *resty.Request) (*resty.Response, error) {
		return req.Post("/api/snapshots")
	})
	if err != nil {
		return time.Time{}, err
	}
	return saved.TakenAt, nil
}

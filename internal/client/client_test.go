package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/lifeos/internal/config"
	"github.com/at-ishikawa/lifeos/internal/model"
	"github.com/at-ishikawa/lifeos/internal/server"
	"github.com/at-ishikawa/lifeos/internal/snapshot"
	"github.com/at-ishikawa/lifeos/internal/store"
	"github.com/at-ishikawa/lifeos/internal/testutil"
	"github.com/at-ishikawa/lifeos/internal/validation"
)

func newTestClient(t *testing.T, url string, attempts uint) *Client {
	t.Helper()
	client := NewClient(config.ClientConfig{ServerURL: url, TimeoutSeconds: 5, RetryAttempts: attempts})
	client.retryDelay = time.Millisecond
	t.Cleanup(func() { _ = client.Close() })
	return client
}

// newLifeOSServer runs the real HTTP handlers over a seeded store.
func newLifeOSServer(t *testing.T) (*httptest.Server, *store.Store, *snapshot.YAMLRepository) {
	t.Helper()
	handler, st, repo := newLifeOSHandler(t)
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, st, repo
}

func newLifeOSHandler(t *testing.T) (http.Handler, *store.Store, *snapshot.YAMLRepository) {
	t.Helper()
	v, err := validation.New()
	require.NoError(t, err)
	st := store.New(testutil.SeededState(t),
		store.WithClock(func() time.Time { return testutil.Now }),
		store.WithValidator(v),
		store.WithIntegrityCheck(),
	)
	repo := snapshot.NewYAMLRepository(t.TempDir())
	s := server.New(st, v,
		server.WithClock(func() time.Time { return testutil.Now }),
		server.WithLocation(time.UTC),
		server.WithSnapshots(repo),
	)
	return s.Handler(), st, repo
}

func TestClient_AgainstServer(t *testing.T) {
	srv, st, repo := newLifeOSServer(t)
	client := newTestClient(t, srv.URL, 1)
	ctx := context.Background()

	t.Run("state", func(t *testing.T) {
		got, err := client.State(ctx)
		require.NoError(t, err)
		assert.Equal(t, st.State().Sizes(), got.Sizes())
	})

	t.Run("dashboard", func(t *testing.T) {
		got, err := client.Dashboard(ctx, model.Date{})
		require.NoError(t, err)
		assert.Equal(t, "2024-03-13", got.Date.String())

		got, err = client.Dashboard(ctx, model.MustParseDate("2024-03-01"))
		require.NoError(t, err)
		assert.Equal(t, "2024-03-01", got.Date.String())
	})

	t.Run("habit overview", func(t *testing.T) {
		got, err := client.HabitOverview(ctx, model.Date{})
		require.NoError(t, err)
		assert.Len(t, got, len(st.State().Habits))
	})

	t.Run("dispatch", func(t *testing.T) {
		task := model.Task{
			ID: "remote-1", Title: "Call the bank", Priority: model.TaskPriorityMedium,
			Category: model.TaskCategoryFinance, DueDate: model.MustParseDate("2024-03-15"), Status: model.TaskStatusTodo,
		}
		got, err := client.Dispatch(ctx, store.AddTask{Task: task})
		require.NoError(t, err)
		assert.Equal(t, "remote-1", got.Tasks[len(got.Tasks)-1].ID)

		_, err = client.Dispatch(ctx, store.AddTask{Task: task})
		require.Error(t, err)
		assert.ErrorIs(t, err, store.ErrAlreadyExists)

		_, err = client.Dispatch(ctx, store.DeleteBook{ID: "missing"})
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("invalid payload carries details", func(t *testing.T) {
		_, err := client.Dispatch(ctx, store.AddHabit{Habit: model.Habit{ID: "h-x", Category: model.HabitCategoryOther}})
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
		assert.Contains(t, apiErr.Details, "name is a required field")
	})

	t.Run("toggle habit", func(t *testing.T) {
		habitID := st.State().Habits[0].ID
		got, err := client.ToggleHabit(ctx, habitID, model.MustParseDate("2024-01-01"))
		require.NoError(t, err)
		assert.Equal(t, habitID, got.ID)
		last := got.Completions[len(got.Completions)-1]
		assert.Equal(t, "2024-01-01", last.Date.String())
		assert.True(t, last.Completed)
	})

	t.Run("save snapshot", func(t *testing.T) {
		takenAt, err := client.SaveSnapshot(ctx)
		require.NoError(t, err)
		assert.True(t, testutil.Now.Equal(takenAt))

		latest, err := repo.Latest(ctx)
		require.NoError(t, err)
		require.NotNil(t, latest)
	})
}

func TestClient_Retry(t *testing.T) {
	tests := []struct {
		name      string
		attempts  uint
		failures  int32
		status    int
		wantCalls int32
		wantErr   bool
	}{
		{name: "recovers after a server error", attempts: 3, failures: 2, status: http.StatusServiceUnavailable, wantCalls: 3},
		{name: "gives up after the last attempt", attempts: 2, failures: 5, status: http.StatusInternalServerError, wantCalls: 2, wantErr: true},
		{name: "retries rate limiting", attempts: 2, failures: 1, status: http.StatusTooManyRequests, wantCalls: 2},
		{name: "does not retry client errors", attempts: 3, failures: 5, status: http.StatusUnprocessableEntity, wantCalls: 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				n := calls.Add(1)
				w.Header().Set("Content-Type", "application/json")
				if n <= tt.failures {
					w.WriteHeader(tt.status)
					_, _ = w.Write([]byte(`{"error":{"message":"try again","type":"unavailable"}}`))
					return
				}
				_, _ = w.Write([]byte(`{"tasks":[{"id":"t1","title":"X","priority":"low","category":"work","dueDate":"2024-03-13","status":"todo"}]}`))
			}))
			defer srv.Close()

			client := newTestClient(t, srv.URL, tt.attempts)
			got, err := client.State(context.Background())
			assert.Equal(t, tt.wantCalls, calls.Load())
			if tt.wantErr {
				var apiErr *APIError
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, tt.status, apiErr.StatusCode)
				assert.Equal(t, "try again", apiErr.Message)
				return
			}
			require.NoError(t, err)
			require.Len(t, got.Tasks, 1)
			assert.Equal(t, "t1", got.Tasks[0].ID)
		})
	}
}

func TestClient_WritesAreSentOnce(t *testing.T) {
	day := model.MustParseDate("2024-02-12")
	tests := []struct {
		name  string
		write func(ctx context.Context, client *Client, st *store.Store) error
		check func(t *testing.T, st *store.Store, repo *snapshot.YAMLRepository)
	}{
		{
			name: "toggle habit",
			write: func(ctx context.Context, client *Client, st *store.Store) error {
				_, err := client.ToggleHabit(ctx, st.State().Habits[0].ID, day)
				return err
			},
			check: func(t *testing.T, st *store.Store, _ *snapshot.YAMLRepository) {
				completion, ok := st.State().Habits[0].CompletionOn(day)
				require.True(t, ok)
				assert.True(t, completion.Completed)
			},
		},
		{
			name: "dispatch delete",
			write: func(ctx context.Context, client *Client, st *store.Store) error {
				_, err := client.Dispatch(ctx, store.DeleteTask{ID: st.State().Tasks[0].ID})
				return err
			},
			check: func(t *testing.T, st *store.Store, _ *snapshot.YAMLRepository) {
				assert.Len(t, st.State().Tasks, len(testutil.SeededState(t).Tasks)-1)
			},
		},
		{
			name: "save snapshot",
			write: func(ctx context.Context, client *Client, _ *store.Store) error {
				_, err := client.SaveSnapshot(ctx)
				return err
			},
			check: func(t *testing.T, _ *store.Store, repo *snapshot.YAMLRepository) {
				latest, err := repo.Latest(context.Background())
				require.NoError(t, err)
				assert.NotNil(t, latest)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, st, repo := newLifeOSHandler(t)
			var calls atomic.Int32
			// The server applies the request, then the answer is replaced by a gateway error.
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				handler.ServeHTTP(httptest.NewRecorder(), r)
				w.WriteHeader(http.StatusBadGateway)
			}))
			defer srv.Close()

			err := tt.write(context.Background(), newTestClient(t, srv.URL, 3), st)
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
			assert.Equal(t, int32(1), calls.Load())
			tt.check(t, st, repo)
		})
	}
}

func TestClient_CanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newTestClient(t, srv.URL, 3).State(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled), err.Error())
}

func TestAPIError(t *testing.T) {
	err := &APIError{StatusCode: 422, Message: "validation failed", Details: []string{"name is a required field"}}
	assert.Equal(t, "response error 422: validation failed (name is a required field)", err.Error())
	assert.NoError(t, err.Unwrap())
	assert.ErrorIs(t, &APIError{StatusCode: 404}, store.ErrNotFound)
	assert.ErrorIs(t, &APIError{StatusCode: 409}, store.ErrAlreadyExists)
}

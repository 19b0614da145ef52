package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/at-ishikawa/lifeos/internal/model"
	"github.com/at-ishikawa/lifeos/internal/snapshot"
	"github.com/at-ishikawa/lifeos/internal/statistics"
	"github.com/at-ishikawa/lifeos/internal/store"
	"github.com/at-ishikawa/lifeos/internal/testutil"
	"github.com/at-ishikawa/lifeos/internal/validation"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestServer(t *testing.T, initial store.State, opts ...Option) (*Server, *store.Store) {
	t.Helper()
	v, err := validation.New()
	require.NoError(t, err)
	st := store.New(initial,
		store.WithClock(func() time.Time { return testutil.Now }),
		store.WithValidator(v),
		store.WithIntegrityCheck(),
	)
	opts = append([]Option{
		WithClock(func() time.Time { return testutil.Now }),
		WithLocation(time.UTC),
		WithIDs(testutil.SequentialIDs("new")),
	}, opts...)
	return New(st, v, opts...), st
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t, store.Empty())
	rec := do(t, s.Handler(), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHandleAction(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantStatus  int
		wantType    string
		wantDetails []string
		check       func(t *testing.T, state store.State)
	}{
		{
			name:       "add task",
			body:       `{"type":"ADD_TASK","payload":{"id":"t9","title":"Write report","priority":"high","category":"work","dueDate":"2024-03-14","status":"todo"}}`,
			wantStatus: http.StatusOK,
			check: func(t *testing.T, state store.State) {
				require.NotEmpty(t, state.Tasks)
				assert.Equal(t, "t9", state.Tasks[len(state.Tasks)-1].ID)
			},
		},
		{
			name:       "broken json",
			body:       `{"type":`,
			wantStatus: http.StatusBadRequest,
			wantType:   "bad_request",
		},
		{
			name:       "unknown action type",
			body:       `{"type":"RESET","payload":{}}`,
			wantStatus: http.StatusBadRequest,
			wantType:   "bad_request",
		},
		{
			name:       "missing payload",
			body:       `{"type":"DELETE_TASK"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "delete unknown id",
			body:       `{"type":"DELETE_BOOK","payload":"missing"}`,
			wantStatus: http.StatusNotFound,
			wantType:   "not_found",
		},
		{
			name:       "duplicate id",
			body:       `{"type":"ADD_SUBJECT","payload":{"id":"s1","name":"Biology","level":"beginner","priority":"low"}}`,
			wantStatus: http.StatusConflict,
			wantType:   "conflict",
		},
		{
			name:       "quote of a missing book",
			body:       `{"type":"ADD_QUOTE","payload":{"id":"q9","bookId":"missing","text":"Hello"}}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantType:   "invalid",
		},
		{
			name:        "invalid entity",
			body:        `{"type":"ADD_TASK","payload":{"id":"t9","priority":"high","category":"work","dueDate":"2024-03-14","status":"todo"}}`,
			wantStatus:  http.StatusUnprocessableEntity,
			wantType:    "invalid",
			wantDetails: []string{"title is a required field"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			initial := store.Empty()
			initial.Subjects = []model.Subject{{ID: "s1", Name: "Physics", Level: model.StudyLevelBeginner, Priority: model.StudyPriorityHigh}}
			s, st := newTestServer(t, initial)

			rec := do(t, s.Handler(), http.MethodPost, "/api/actions", tt.body)
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantStatus != http.StatusOK {
				got := decode[errorResponse](t, rec)
				if tt.wantType != "" {
					assert.Equal(t, tt.wantType, got.Error.Type)
				}
				if tt.wantDetails != nil {
					assert.Equal(t, tt.wantDetails, got.Error.Details)
				}
				if diff := cmp.Diff(initial, st.State()); diff != "" {
					t.Errorf("state changed on a rejected action (-want +got):\n%s", diff)
				}
				return
			}
			tt.check(t, decode[store.State](t, rec))
		})
	}
}

func TestCreateEndpoints(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		body        string
		wantStatus  int
		wantDetails []string
		check       func(t *testing.T, rec *httptest.ResponseRecorder, state store.State)
	}{
		{
			name:       "task",
			path:       "/api/tasks",
			body:       `{"title":"Buy milk","priority":"low","category":"personal","dueDate":"2024-03-13","status":"done"}`,
			wantStatus: http.StatusCreated,
			check: func(t *testing.T, rec *httptest.ResponseRecorder, state store.State) {
				got := decode[model.Task](t, rec)
				assert.Equal(t, "new-1", got.ID)
				require.NotNil(t, got.CompletedAt, "done tasks are stamped")
				assert.True(t, testutil.Now.Equal(*got.CompletedAt))
				assert.Len(t, state.Tasks, 1)
			},
		},
		{
			name:        "task without title",
			path:        "/api/tasks",
			body:        `{"priority":"low","category":"personal","dueDate":"2024-03-13","status":"todo"}`,
			wantStatus:  http.StatusUnprocessableEntity,
			wantDetails: []string{"title must be at least 1 character in length"},
		},
		{
			name:       "habit starts without completions",
			path:       "/api/habits",
			body:       `{"name":"Stretch","category":"health"}`,
			wantStatus: http.StatusCreated,
			check: func(t *testing.T, rec *httptest.ResponseRecorder, state store.State) {
				got := decode[model.Habit](t, rec)
				assert.Empty(t, got.Completions)
				assert.Len(t, state.Habits, 1)
			},
		},
		{
			name:       "transaction",
			path:       "/api/transactions",
			body:       `{"type":"expense","amount":12.5,"category":"food","date":"2024-03-10"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:        "income with an expense category",
			path:        "/api/transactions",
			body:        `{"type":"income","amount":12.5,"category":"food","date":"2024-03-10"}`,
			wantStatus:  http.StatusUnprocessableEntity,
			wantDetails: []string{"category must match the transaction type"},
		},
		{
			name:       "study session",
			path:       "/api/study-sessions",
			body:       `{"subject":"Physics","duration":45,"date":"2024-03-12"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "workout",
			path:       "/api/workouts",
			body:       `{"type":"yoga","duration":30,"date":"2024-03-12"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "book defaults to want-to-read",
			path:       "/api/books",
			body:       `{"title":"Dune","author":"Frank Herbert","category":"Fiction","coverImage":"https://example.com/dune.png"}`,
			wantStatus: http.StatusCreated,
			check: func(t *testing.T, rec *httptest.ResponseRecorder, state store.State) {
				assert.Equal(t, model.BookStatusWantToRead, decode[model.Book](t, rec).Status)
			},
		},
		{
			name:       "quote of an unknown book",
			path:       "/api/quotes",
			body:       `{"bookId":"missing","text":"Fear is the mind-killer."}`,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "subject",
			path:       "/api/subjects",
			body:       `{"name":"Biology","level":"beginner","priority":"medium"}`,
			wantStatus: http.StatusCreated,
			check: func(t *testing.T, rec *httptest.ResponseRecorder, state store.State) {
				assert.Equal(t, "Biology", decode[model.Subject](t, rec).Name)
			},
		},
		{
			name:       "lesson of an unknown subject",
			path:       "/api/lessons",
			body:       `{"subjectId":"missing","title":"Cells","level":"beginner"}`,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "broken body",
			path:       "/api/workouts",
			body:       `[`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, st := newTestServer(t, store.Empty())
			rec := do(t, s.Handler(), http.MethodPost, tt.path, tt.body)
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantDetails != nil {
				assert.Equal(t, tt.wantDetails, decode[errorResponse](t, rec).Error.Details)
			}
			if tt.check != nil {
				tt.check(t, rec, st.State())
			}
		})
	}
}

func TestSetExam(t *testing.T) {
	s, st := newTestServer(t, store.Empty())
	h := s.Handler()

	rec := do(t, h, http.MethodPut, "/api/exam", `{"name":"Finals","date":"2024-06-13"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	first := decode[model.Exam](t, rec)

	rec = do(t, h, http.MethodPut, "/api/exam", `{"name":"Finals (moved)","date":"2024-06-20"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	second := decode[model.Exam](t, rec)

	assert.Equal(t, first.ID, second.ID)
	require.Len(t, st.State().Exams, 1)
	assert.Equal(t, "Finals (moved)", st.State().Exams[0].Name)

	rec = do(t, h, http.MethodPut, "/api/exam", `{"name":"","date":"2024-06-20"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestToggleHabit(t *testing.T) {
	initial := store.Empty()
	initial.Habits = []model.Habit{{ID: "h1", Name: "Stretch", Category: model.HabitCategoryHealth, Completions: []model.HabitCompletion{}}}
	s, _ := newTestServer(t, initial)
	h := s.Handler()

	rec := do(t, h, http.MethodPost, "/api/habits/h1/toggle?date=2024-03-12", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	got := decode[model.Habit](t, rec)
	require.Len(t, got.Completions, 1)
	assert.Equal(t, "2024-03-12", got.Completions[0].Date.String())
	assert.True(t, got.Completions[0].Completed)

	rec = do(t, h, http.MethodPost, "/api/habits/h1/toggle", "")
	require.Equal(t, http.StatusOK, rec.Code)
	got = decode[model.Habit](t, rec)
	require.Len(t, got.Completions, 2)
	assert.Equal(t, "2024-03-13", got.Completions[1].Date.String(), "defaults to the server's today")

	rec = do(t, h, http.MethodPost, "/api/habits/h1/toggle?date=2024-03-12", "")
	got = decode[model.Habit](t, rec)
	assert.False(t, got.Completions[0].Completed)

	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodPost, "/api/habits/missing/toggle", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPost, "/api/habits/h1/toggle?date=13/03/2024", "").Code)
}

func TestViews(t *testing.T) {
	state := testutil.SeededState(t)
	s, _ := newTestServer(t, state)
	h := s.Handler()

	t.Run("dashboard", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/api/dashboard", "")
		require.Equal(t, http.StatusOK, rec.Code)
		want := statistics.Dashboard(state, testutil.Now)
		if diff := cmp.Diff(want, decode[statistics.DashboardSummary](t, rec), cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("dashboard mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("dashboard for another day", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/api/dashboard?date=2024-03-10", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "2024-03-10", decode[statistics.DashboardSummary](t, rec).Date.String())
	})

	t.Run("habit overview", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/api/habits/overview", "")
		require.Equal(t, http.StatusOK, rec.Code)
		got := decode[[]statistics.HabitStatus](t, rec)
		require.Len(t, got, len(state.Habits))
		assert.Equal(t, []int{2, 3, 0, 3}, []int{got[0].Streak, got[1].Streak, got[2].Streak, got[3].Streak})
	})

	t.Run("task buckets", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/api/tasks/buckets", "")
		require.Equal(t, http.StatusOK, rec.Code)
		want := statistics.BucketTasks(state.Tasks, model.DateOf(testutil.Now))
		got := decode[statistics.TaskBuckets](t, rec)
		assert.Len(t, got.Today, len(want.Today))
		assert.Len(t, got.Tomorrow, len(want.Tomorrow))
		assert.Len(t, got.Week, len(want.Week))
	})

	t.Run("upcoming tasks with limit", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/api/tasks/upcoming?limit=2", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.LessOrEqual(t, len(decode[[]model.Task](t, rec)), 2)
		assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/api/tasks/upcoming?limit=0", "").Code)
	})

	t.Run("finance summary", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/api/finance/summary?month=2024-03", "")
		require.Equal(t, http.StatusOK, rec.Code)
		got := decode[financeSummary](t, rec)
		assert.Equal(t, "2024-03", got.Month)
		assert.Equal(t, statistics.MonthlyBalance(state.Transactions, model.DateOf(testutil.Now)), got.Balance)
		assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/api/finance/summary?month=March", "").Code)
	})

	t.Run("finance categories", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/api/finance/categories", "")
		require.Equal(t, http.StatusOK, rec.Code)
		got := decode[[]statistics.CategoryTotal](t, rec)
		for i := 1; i < len(got); i++ {
			assert.GreaterOrEqual(t, got[i-1].Amount, got[i].Amount)
		}
	})

	t.Run("fitness summary", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/api/fitness/summary", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, statistics.WorkoutSummary(state.Workouts, model.DateOf(testutil.Now)), decode[statistics.FitnessSummary](t, rec))
	})

	t.Run("study progress", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/api/study/progress", "")
		require.Equal(t, http.StatusOK, rec.Code)
		got := decode[studyProgress](t, rec)
		assert.Len(t, got.Subjects, len(state.Subjects))
	})

	t.Run("study today", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/api/study/today", "")
		require.Equal(t, http.StatusOK, rec.Code)
		want := statistics.TodaysLessons(state.StudyPlan, state.Lessons, state.Subjects, model.DateOf(testutil.Now))
		assert.Len(t, decode[[]statistics.TodayLesson](t, rec), len(want))
	})

	t.Run("exam countdown", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/api/study/exam", "")
		require.Equal(t, http.StatusOK, rec.Code)
		got := decode[examView](t, rec)
		assert.Equal(t, "2024-06-13", got.Exam.Date.String())
		assert.Equal(t, statistics.Countdown{Days: 91, Hours: 13, Minutes: 30}, got.Countdown)
	})

	t.Run("book counts", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/api/books/counts", "")
		require.Equal(t, http.StatusOK, rec.Code)
		got := decode[map[model.BookStatus]int](t, rec)
		assert.Equal(t, statistics.BookCounts(state.Books), got)
	})

	t.Run("book search", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/api/books?status=completed", "")
		require.Equal(t, http.StatusOK, rec.Code)
		for _, b := range decode[[]model.Book](t, rec) {
			assert.Equal(t, model.BookStatusCompleted, b.Status)
		}
		assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/api/books?status=lost", "").Code)
	})

	t.Run("quote search", func(t *testing.T) {
		bookID := state.Quotes[0].BookID
		rec := do(t, h, http.MethodGet, "/api/quotes?book="+bookID, "")
		require.Equal(t, http.StatusOK, rec.Code)
		got := decode[[]model.Quote](t, rec)
		require.NotEmpty(t, got)
		for _, q := range got {
			assert.Equal(t, bookID, q.BookID)
		}
	})

	t.Run("bad date", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/api/dashboard?date=yesterday", "").Code)
	})
}

func TestExam_NotSet(t *testing.T) {
	s, _ := newTestServer(t, store.Empty())
	rec := do(t, s.Handler(), http.MethodGet, "/api/study/exam", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStudyPlanEndpoints(t *testing.T) {
	initial := store.Empty()
	initial.Subjects = []model.Subject{{ID: "s1", Name: "Physics", Level: model.StudyLevelBeginner, Priority: model.StudyPriorityHigh}}
	initial.Lessons = []model.Lesson{{ID: "l1", SubjectID: "s1", Title: "Optics", Level: model.StudyLevelBeginner}}
	s, st := newTestServer(t, initial)
	h := s.Handler()

	rec := do(t, h, http.MethodPost, "/api/study-plan", `{"day":1,"subjectId":"s1","duration":2,"lessons":[{"lessonId":"l1","state":"learn","notes":""}]}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	placed := decode[model.StudyPlanEntry](t, rec)
	assert.Equal(t, "new-1", placed.ID)

	rec = do(t, h, http.MethodPost, "/api/study-plan", `{"day":1,"subjectId":"missing","duration":2}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, "unknown subject")

	rec = do(t, h, http.MethodPut, "/api/study-plan/new-1", `{"day":3,"duration":1.5,"lessons":[]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	moved := decode[model.StudyPlanEntry](t, rec)
	assert.Equal(t, 3, moved.Day)
	assert.Equal(t, "s1", moved.SubjectID)
	assert.Empty(t, moved.Lessons)

	rec = do(t, h, http.MethodGet, "/api/study-plan", "")
	require.Equal(t, http.StatusOK, rec.Code)
	week := decode[[]studyPlanDay](t, rec)
	require.Len(t, week, 7)
	assert.Len(t, week[3].Entries, 1)
	assert.Equal(t, 1.5, week[3].Hours)
	assert.Empty(t, week[1].Entries)

	assert.Equal(t, http.StatusUnprocessableEntity, do(t, h, http.MethodPut, "/api/study-plan/new-1", `{"day":9,"duration":1}`).Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodPut, "/api/study-plan/missing", `{"day":2,"duration":1}`).Code)

	assert.Equal(t, http.StatusNoContent, do(t, h, http.MethodDelete, "/api/study-plan/new-1", "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodDelete, "/api/study-plan/new-1", "").Code)
	assert.Empty(t, st.State().StudyPlan)
}

func TestStudyPlanEndpoints_ConcurrentEdits(t *testing.T) {
	const n = 50
	initial := store.Empty()
	initial.Subjects = []model.Subject{{ID: "s1", Name: "Physics", Level: model.StudyLevelBeginner, Priority: model.StudyPriorityHigh}}
	for i := 0; i < n; i++ {
		initial.StudyPlan = append(initial.StudyPlan, model.StudyPlanEntry{
			ID: fmt.Sprintf("old-%d", i), Day: i % 7, SubjectID: "s1", Duration: 1, Lessons: []model.ScheduledLesson{},
		})
	}
	s, st := newTestServer(t, initial)
	h := s.Handler()

	codes := make(chan int, 2*n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			codes <- do(t, h, http.MethodPost, "/api/study-plan", `{"day":2,"subjectId":"s1","duration":1}`).Code
		}()
		go func(id string) {
			defer wg.Done()
			codes <- do(t, h, http.MethodDelete, "/api/study-plan/"+id, "").Code
		}(fmt.Sprintf("old-%d", i))
	}
	wg.Wait()
	close(codes)

	counts := map[int]int{}
	for code := range codes {
		counts[code]++
	}
	assert.Equal(t, map[int]int{http.StatusCreated: n, http.StatusNoContent: n}, counts)

	plan := st.State().StudyPlan
	require.Len(t, plan, n)
	for _, e := range plan {
		assert.True(t, strings.HasPrefix(e.ID, "new-"), e.ID)
	}
}

func TestSaveSnapshot(t *testing.T) {
	repo := snapshot.NewYAMLRepository(t.TempDir())
	s, _ := newTestServer(t, testutil.SeededState(t), WithSnapshots(repo))

	rec := do(t, s.Handler(), http.MethodPost, "/api/snapshots", "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	latest, err := repo.Latest(context.Background())
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.True(t, testutil.Now.Equal(latest.TakenAt))

	withoutRepo, _ := newTestServer(t, store.Empty())
	assert.Equal(t, http.StatusNotFound, do(t, withoutRepo.Handler(), http.MethodPost, "/api/snapshots", "").Code)
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	v, err := validation.New()
	require.NoError(t, err)
	st := store.New(store.Empty(), store.WithValidator(v), store.WithMetrics(store.NewMetrics(reg)))
	s := New(st, v, WithMetrics(reg), WithIDs(testutil.SequentialIDs("new")))
	h := s.Handler()

	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/api/habits", `{"name":"Stretch","category":"health"}`).Code)

	rec := do(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `lifeos_store_actions_dispatched_total{type="ADD_HABIT"} 1`)

	withoutMetrics, _ := newTestServer(t, store.Empty())
	assert.Equal(t, http.StatusNotFound, do(t, withoutMetrics.Handler(), http.MethodGet, "/metrics", "").Code)
}

func TestCORS(t *testing.T) {
	s, _ := newTestServer(t, store.Empty(), WithAllowedOrigins([]string{"http://localhost:3000"}))
	h := s.Handler()

	req := httptest.NewRequest(http.MethodOptions, "/api/tasks", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestServer_OverHTTP(t *testing.T) {
	s, _ := newTestServer(t, testutil.SeededState(t))
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL + "/api/state")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	var got store.State
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, testutil.SeededState(t).Sizes(), got.Sizes())
}

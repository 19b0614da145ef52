package server

import (
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/at-ishikawa/lifeos/internal/model"
	"github.com/at-ishikawa/lifeos/internal/store"
	"github.com/at-ishikawa/lifeos/internal/validation"
)

// handleAction dispatches a raw action envelope and returns the new state.
func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read body: "+err.Error(), nil)
		return
	}
	action, err := store.DecodeAction(body)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	state, err := s.store.Dispatch(r.Context(), action)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// resource describes a collection that form endpoints add to.
type resource[In any, E any] struct {
	convert func(In, string, time.Time) E
	add     func(E) store.Action
	list    func(store.State) []E
	id      func(E) string
}

// create returns a handler that validates an input form, mints an id and
// dispatches the resulting add action. It answers with the entity as stored.
func (res resource[In, E]) create(s *Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in In
		if !decodeBody(w, r, &in) {
			return
		}
		if err := s.validator.Struct(in); err != nil {
			writeStoreError(w, err)
			return
		}
		id := s.newID()
		entity := res.convert(in, id, s.now())
		state, err := s.store.Dispatch(r.Context(), res.add(entity))
		if err != nil {
			writeStoreError(w, err)
			return
		}
		for _, stored := range res.list(state) {
			if res.id(stored) == id {
				entity = stored
				break
			}
		}
		writeJSON(w, http.StatusCreated, entity)
	}
}

func withoutTime[In any, E any](convert func(In, string) E) func(In, string, time.Time) E {
	return func(in In, id string, _ time.Time) E {
		return convert(in, id)
	}
}

// handleSetExam replaces the exam, keeping the id of the current one.
func (s *Server) handleSetExam(w http.ResponseWriter, r *http.Request) {
	var in validation.ExamInput
	if !decodeBody(w, r, &in) {
		return
	}
	if err := s.validator.Struct(in); err != nil {
		writeStoreError(w, err)
		return
	}
	var exam model.Exam
	if _, err := s.store.Update(r.Context(), func(current store.State) (store.Action, error) {
		id := s.newID()
		if active, ok := current.Exam(); ok {
			id = active.ID
		}
		exam = in.ToExam(id)
		return store.SetExam{Exam: exam}, nil
	}); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, exam)
}

func (s *Server) handleToggleHabit(w http.ResponseWriter, r *http.Request) {
	day, ok := s.referenceDay(w, r)
	if !ok {
		return
	}
	action := store.ToggleHabitCompletion{HabitID: chi.URLParam(r, "id"), Date: day}
	state, err := s.store.Dispatch(r.Context(), action)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	for _, h := range state.Habits {
		if h.ID == action.HabitID {
			writeJSON(w, http.StatusOK, h)
			return
		}
	}
	writeError(w, http.StatusNotFound, "habit "+action.HabitID+" not found", nil)
}

// referenceTime is the instant derived views are computed for: the date query
// parameter at noon, or the server clock, in the server's time zone.
func (s *Server) referenceTime(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return s.now().In(s.loc), true
	}
	day, err := model.ParseDate(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "date must be yyyy-MM-dd", nil)
		return time.Time{}, false
	}
	return time.Date(day.Year(), day.Month(), day.Day(), 12, 0, 0, 0, s.loc), true
}

func (s *Server) referenceDay(w http.ResponseWriter, r *http.Request) (model.Date, bool) {
	now, ok := s.referenceTime(w, r)
	if !ok {
		return model.Date{}, false
	}
	return model.DateOf(now), true
}

package server

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/at-ishikawa/lifeos/internal/model"
	"github.com/at-ishikawa/lifeos/internal/store"
	"github.com/at-ishikawa/lifeos/internal/studyplan"
	"github.com/at-ishikawa/lifeos/internal/validation"
)

type studyPlanDay struct {
	Day     int                    `json:"day"`
	Hours   float64                `json:"hours"`
	Entries []model.StudyPlanEntry `json:"entries"`
}

func (s *Server) handleStudyPlan(w http.ResponseWriter, r *http.Request) {
	plan := s.store.State().StudyPlan
	week := studyplan.Week(plan)
	days := make([]studyPlanDay, 0, studyplan.Days)
	for day, entries := range week {
		days = append(days, studyPlanDay{Day: day, Hours: studyplan.HoursOnDay(plan, day), Entries: entries})
	}
	writeJSON(w, http.StatusOK, days)
}

func (s *Server) handlePlaceEntry(w http.ResponseWriter, r *http.Request) {
	var in validation.StudyPlanEntryInput
	if !decodeBody(w, r, &in) {
		return
	}
	if err := s.validator.Struct(in); err != nil {
		writeStoreError(w, err)
		return
	}
	entry := in.ToEntry(s.newID())
	if _, err := s.updatePlan(r, func(plan []model.StudyPlanEntry) ([]model.StudyPlanEntry, error) {
		return studyplan.Place(plan, entry)
	}); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

func (s *Server) handleMoveEntry(w http.ResponseWriter, r *http.Request) {
	var in validation.StudyPlanMoveInput
	if !decodeBody(w, r, &in) {
		return
	}
	if err := s.validator.Struct(in); err != nil {
		writeStoreError(w, err)
		return
	}
	id := chi.URLParam(r, "id")
	plan, err := s.updatePlan(r, func(plan []model.StudyPlanEntry) ([]model.StudyPlanEntry, error) {
		return studyplan.Move(plan, id, in.Day, in.Duration, in.Lessons)
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	for _, e := range plan {
		if e.ID == id {
			writeJSON(w, http.StatusOK, e)
			return
		}
	}
	writeStoreError(w, fmt.Errorf("entry %q: %w", id, studyplan.ErrEntryNotFound))
}

func (s *Server) handleRemoveEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := s.updatePlan(r, func(plan []model.StudyPlanEntry) ([]model.StudyPlanEntry, error) {
		return studyplan.Remove(plan, id)
	}); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// updatePlan applies edit to the plan the store holds at commit time and returns the stored plan.
func (s *Server) updatePlan(r *http.Request, edit func([]model.StudyPlanEntry) ([]model.StudyPlanEntry, error)) ([]model.StudyPlanEntry, error) {
	next, err := s.store.Update(r.Context(), func(current store.State) (store.Action, error) {
		plan, err := edit(current.StudyPlan)
		if err != nil {
			return nil, err
		}
		return store.UpdateStudyPlan{Entries: plan}, nil
	})
	if err != nil {
		return nil, err
	}
	return next.StudyPlan, nil
}

package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/at-ishikawa/lifeos/internal/model"
)

// Validator checks an entity carried by an action.
type Validator interface {
	Entity(entity interface{}) error
}

// Store is the single mutable cell holding the current State.
// Every change goes through Dispatch, Update or Replace.
type Store struct {
	mu        sync.RWMutex
	state     State
	now       func() time.Time
	validator Validator
	integrity bool
	metrics   *Metrics
	listeners []func(State)
}

type Option func(*Store)

// WithClock sets the time used to stamp completedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func WithValidator(v Validator) Option {
	return func(s *Store) {
		s.validator = v
	}
}

// WithIntegrityCheck rejects actions whose payload points at a missing book, subject or lesson.
func WithIntegrityCheck() Option {
	return func(s *Store) {
		s.integrity = true
	}
}

func WithMetrics(m *Metrics) Option {
	return func(s *Store) {
		s.metrics = m
	}
}

func New(initial State, opts ...Option) *Store {
	s := &Store{
		state: initial.Normalize().Clone(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.metrics.observeState(s.state)
	return s
}

// State returns a copy of the current state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Subscribe registers fn to be called with the new state after every successful change.
func (s *Store) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Dispatch validates action, reduces it and swaps in the resulting state.
func (s *Store) Dispatch(ctx context.Context, action Action) (State, error) {
	if action == nil {
		return State{}, fmt.Errorf("nil action: %w", ErrUnknownAction)
	}
	if err := ctx.Err(); err != nil {
		return State{}, err
	}
	if err := s.validate(action); err != nil {
		return State{}, err
	}

	s.mu.Lock()
	return s.commit(action)
}

// Update builds an action from the current state and applies it while holding the lock,
// so no other change lands between reading the state and reducing.
// build receives a copy and must not block.
func (s *Store) Update(ctx context.Context, build func(current State) (Action, error)) (State, error) {
	if err := ctx.Err(); err != nil {
		return State{}, err
	}

	s.mu.Lock()
	action, err := build(s.state.Clone())
	if err != nil {
		s.mu.Unlock()
		return State{}, err
	}
	if action == nil {
		s.mu.Unlock()
		return State{}, fmt.Errorf("nil action: %w", ErrUnknownAction)
	}
	if err := s.validate(action); err != nil {
		s.mu.Unlock()
		return State{}, err
	}
	return s.commit(action)
}

func (s *Store) validate(action Action) error {
	if s.validator == nil {
		return nil
	}
	actionType := action.Type()
	for _, entity := range payloadEntities(action) {
		if err := s.validator.Entity(entity); err != nil {
			s.reject(actionType, "invalid_payload", err)
			return fmt.Errorf("validator.Entity(%s) > %w", actionType, err)
		}
	}
	return nil
}

// commit reduces action against the current state. s.mu must be held; commit releases it.
func (s *Store) commit(action Action) (State, error) {
	actionType := action.Type()
	if s.integrity {
		if err := checkReferences(s.state, action); err != nil {
			s.mu.Unlock()
			s.reject(actionType, "invalid_reference", err)
			return State{}, err
		}
	}
	next, err := Reduce(s.state, action, s.now())
	if err != nil {
		s.mu.Unlock()
		s.reject(actionType, rejectionReason(err), err)
		return State{}, err
	}
	s.state = next
	listeners := append([]func(State){}, s.listeners...)
	s.mu.Unlock()

	slog.Debug("dispatched action", "type", actionType)
	s.metrics.observeDispatch(actionType, next)
	for _, fn := range listeners {
		fn(next.Clone())
	}
	return next.Clone(), nil
}

// Replace swaps the whole state, e.g. when a snapshot is imported.
func (s *Store) Replace(state State) {
	next := state.Normalize().Clone()
	s.mu.Lock()
	s.state = next
	listeners := append([]func(State){}, s.listeners...)
	s.mu.Unlock()

	slog.Info("replaced state", "sizes", next.Sizes())
	s.metrics.observeState(next)
	for _, fn := range listeners {
		fn(next.Clone())
	}
}

func (s *Store) reject(actionType ActionType, reason string, err error) {
	slog.Warn("rejected action", "type", actionType, "reason", reason, "error", err)
	s.metrics.observeRejection(actionType, reason)
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrAlreadyExists):
		return "already_exists"
	case errors.Is(err, ErrUnknownAction):
		return "unknown_action"
	default:
		return "other"
	}
}

// payloadEntities lists the entities an action carries for validation.
func payloadEntities(action Action) []interface{} {
	switch a := action.(type) {
	case AddTask:
		return []interface{}{a.Task}
	case UpdateTask:
		return []interface{}{a.Task}
	case AddHabit:
		return []interface{}{a.Habit}
	case UpdateHabit:
		return []interface{}{a.Habit}
	case AddTransaction:
		return []interface{}{a.Transaction}
	case UpdateTransaction:
		return []interface{}{a.Transaction}
	case AddStudySession:
		return []interface{}{a.StudySession}
	case UpdateStudySession:
		return []interface{}{a.StudySession}
	case AddWorkout:
		return []interface{}{a.Workout}
	case UpdateWorkout:
		return []interface{}{a.Workout}
	case AddBook:
		return []interface{}{a.Book}
	case UpdateBook:
		return []interface{}{a.Book}
	case AddQuote:
		return []interface{}{a.Quote}
	case UpdateQuote:
		return []interface{}{a.Quote}
	case AddSubject:
		return []interface{}{a.Subject}
	case UpdateSubject:
		return []interface{}{a.Subject}
	case AddLesson:
		return []interface{}{a.Lesson}
	case UpdateLesson:
		return []interface{}{a.Lesson}
	case SetExam:
		return []interface{}{a.Exam}
	case UpdateStudyPlan:
		entities := make([]interface{}, 0, len(a.Entries))
		for _, e := range a.Entries {
			entities = append(entities, e)
		}
		return entities
	}
	return nil
}

func checkReferences(state State, action Action) error {
	switch a := action.(type) {
	case AddQuote:
		return checkBook(state, a.Quote)
	case UpdateQuote:
		return checkBook(state, a.Quote)
	case AddLesson:
		return checkSubject(state, a.Lesson.SubjectID)
	case UpdateLesson:
		return checkSubject(state, a.Lesson.SubjectID)
	case UpdateStudyPlan:
		for _, e := range a.Entries {
			if err := checkSubject(state, e.SubjectID); err != nil {
				return err
			}
			for _, sl := range e.Lessons {
				if !state.hasLesson(sl.LessonID) {
					return fmt.Errorf("lesson %q: %w", sl.LessonID, ErrInvalidReference)
				}
			}
		}
	}
	return nil
}

func checkBook(state State, q model.Quote) error {
	if !state.hasBook(q.BookID) {
		return fmt.Errorf("book %q: %w", q.BookID, ErrInvalidReference)
	}
	return nil
}

func checkSubject(state State, id string) error {
	if !state.hasSubject(id) {
		return fmt.Errorf("subject %q: %w", id, ErrInvalidReference)
	}
	return nil
}

package store

import (
	"fmt"
	"slices"
	"time"

	"github.com/at-ishikawa/lifeos/internal/model"
)

// Reduce applies action to state and returns the next state.
// The input state is never modified. On error the input state is returned as is.
func Reduce(state State, action Action, now time.Time) (State, error) {
	next, err := reduce(state, action, now)
	if err != nil {
		return state, err
	}
	return next, nil
}

func reduce(s State, action Action, now time.Time) (State, error) {
	var err error
	switch a := action.(type) {
	case AddTask:
		s.Tasks, err = appendEntity(s.Tasks, normalizeTask(a.Task, now), taskID, "task")
	case UpdateTask:
		s.Tasks, err = replaceEntity(s.Tasks, normalizeTask(a.Task, now), taskID, "task")
	case DeleteTask:
		s.Tasks, err = removeEntity(s.Tasks, a.ID, taskID, "task")

	case AddHabit:
		s.Habits, err = appendEntity(s.Habits, ownHabit(a.Habit), habitID, "habit")
	case UpdateHabit:
		s.Habits, err = replaceEntity(s.Habits, ownHabit(a.Habit), habitID, "habit")
	case DeleteHabit:
		s.Habits, err = removeEntity(s.Habits, a.ID, habitID, "habit")
	case ToggleHabitCompletion:
		i := slices.IndexFunc(s.Habits, func(h model.Habit) bool { return h.ID == a.HabitID })
		if i < 0 {
			return s, fmt.Errorf("habit %q: %w", a.HabitID, ErrNotFound)
		}
		s.Habits = replaceAt(s.Habits, i, s.Habits[i].ToggleCompletion(a.Date))

	case AddTransaction:
		s.Transactions, err = prependEntity(s.Transactions, a.Transaction, transactionID, "transaction")
	case UpdateTransaction:
		s.Transactions, err = replaceEntity(s.Transactions, a.Transaction, transactionID, "transaction")
	case DeleteTransaction:
		s.Transactions, err = removeEntity(s.Transactions, a.ID, transactionID, "transaction")

	case AddStudySession:
		s.StudySessions, err = prependEntity(s.StudySessions, a.StudySession, studySessionID, "study session")
	case UpdateStudySession:
		s.StudySessions, err = replaceEntity(s.StudySessions, a.StudySession, studySessionID, "study session")
	case DeleteStudySession:
		s.StudySessions, err = removeEntity(s.StudySessions, a.ID, studySessionID, "study session")

	case AddWorkout:
		s.Workouts, err = prependEntity(s.Workouts, a.Workout, workoutID, "workout")
	case UpdateWorkout:
		s.Workouts, err = replaceEntity(s.Workouts, a.Workout, workoutID, "workout")
	case DeleteWorkout:
		s.Workouts, err = removeEntity(s.Workouts, a.ID, workoutID, "workout")

	case AddBook:
		s.Books, err = prependEntity(s.Books, normalizeBook(a.Book, now), bookID, "book")
	case UpdateBook:
		s.Books, err = replaceEntity(s.Books, normalizeBook(a.Book, now), bookID, "book")
	case DeleteBook:
		s.Books, err = removeEntity(s.Books, a.ID, bookID, "book")
		if err == nil {
			s.Quotes = removeWhere(s.Quotes, func(q model.Quote) bool { return q.BookID == a.ID })
		}

	case AddQuote:
		s.Quotes, err = prependEntity(s.Quotes, a.Quote, quoteID, "quote")
	case UpdateQuote:
		s.Quotes, err = replaceEntity(s.Quotes, a.Quote, quoteID, "quote")
	case DeleteQuote:
		s.Quotes, err = removeEntity(s.Quotes, a.ID, quoteID, "quote")

	case AddSubject:
		s.Subjects, err = appendEntity(s.Subjects, a.Subject, subjectID, "subject")
	case UpdateSubject:
		s.Subjects, err = replaceEntity(s.Subjects, a.Subject, subjectID, "subject")
	case DeleteSubject:
		s.Subjects, err = removeEntity(s.Subjects, a.ID, subjectID, "subject")
		if err == nil {
			s.Lessons = removeWhere(s.Lessons, func(l model.Lesson) bool { return l.SubjectID == a.ID })
			s.StudyPlan = removeWhere(s.StudyPlan, func(e model.StudyPlanEntry) bool { return e.SubjectID == a.ID })
		}

	case AddLesson:
		s.Lessons, err = appendEntity(s.Lessons, a.Lesson, lessonID, "lesson")
	case UpdateLesson:
		s.Lessons, err = replaceEntity(s.Lessons, a.Lesson, lessonID, "lesson")
	case DeleteLesson:
		s.Lessons, err = removeEntity(s.Lessons, a.ID, lessonID, "lesson")
		if err == nil {
			s.StudyPlan = detachLesson(s.StudyPlan, a.ID)
		}

	case SetExam:
		s.Exams = []model.Exam{a.Exam}
	case UpdateStudyPlan:
		s.StudyPlan = State{StudyPlan: a.Entries}.Clone().StudyPlan

	default:
		return s, fmt.Errorf("%T: %w", action, ErrUnknownAction)
	}
	return s, err
}

// ownHabit detaches the completions from the caller's backing array.
func ownHabit(h model.Habit) model.Habit {
	h.Completions = cloneSlice(h.Completions)
	return h
}

// normalizeTask stamps completedAt when a task is done and clears it otherwise.
func normalizeTask(t model.Task, now time.Time) model.Task {
	t.CompletedAt = normalizeCompletedAt(t.IsDone(), t.CompletedAt, now)
	return t
}

// normalizeBook stamps completedAt when a book is completed and clears it otherwise.
func normalizeBook(b model.Book, now time.Time) model.Book {
	b.CompletedAt = normalizeCompletedAt(b.Status == model.BookStatusCompleted, b.CompletedAt, now)
	return b
}

func normalizeCompletedAt(completed bool, completedAt *time.Time, now time.Time) *time.Time {
	if !completed {
		return nil
	}
	stamp := now
	if completedAt != nil {
		stamp = *completedAt
	}
	return &stamp
}

func detachLesson(plan []model.StudyPlanEntry, lessonID string) []model.StudyPlanEntry {
	next := make([]model.StudyPlanEntry, 0, len(plan))
	for _, e := range plan {
		e.Lessons = removeWhere(e.Lessons, func(sl model.ScheduledLesson) bool { return sl.LessonID == lessonID })
		next = append(next, e)
	}
	return next
}

func taskID(t model.Task) string                 { return t.ID }
func habitID(h model.Habit) string               { return h.ID }
func transactionID(t model.Transaction) string   { return t.ID }
func studySessionID(s model.StudySession) string { return s.ID }
func workoutID(w model.Workout) string           { return w.ID }
func bookID(b model.Book) string                 { return b.ID }
func quoteID(q model.Quote) string               { return q.ID }
func subjectID(s model.Subject) string           { return s.ID }
func lessonID(l model.Lesson) string             { return l.ID }

func appendEntity[T any](items []T, item T, idOf func(T) string, kind string) ([]T, error) {
	id := idOf(item)
	if slices.ContainsFunc(items, func(existing T) bool { return idOf(existing) == id }) {
		return items, fmt.Errorf("%s %q: %w", kind, id, ErrAlreadyExists)
	}
	next := make([]T, 0, len(items)+1)
	next = append(next, items...)
	return append(next, item), nil
}

func prependEntity[T any](items []T, item T, idOf func(T) string, kind string) ([]T, error) {
	id := idOf(item)
	if slices.ContainsFunc(items, func(existing T) bool { return idOf(existing) == id }) {
		return items, fmt.Errorf("%s %q: %w", kind, id, ErrAlreadyExists)
	}
	next := make([]T, 0, len(items)+1)
	next = append(next, item)
	return append(next, items...), nil
}

func replaceEntity[T any](items []T, item T, idOf func(T) string, kind string) ([]T, error) {
	id := idOf(item)
	i := slices.IndexFunc(items, func(existing T) bool { return idOf(existing) == id })
	if i < 0 {
		return items, fmt.Errorf("%s %q: %w", kind, id, ErrNotFound)
	}
	return replaceAt(items, i, item), nil
}

func removeEntity[T any](items []T, id string, idOf func(T) string, kind string) ([]T, error) {
	if !slices.ContainsFunc(items, func(existing T) bool { return idOf(existing) == id }) {
		return items, fmt.Errorf("%s %q: %w", kind, id, ErrNotFound)
	}
	return removeWhere(items, func(existing T) bool { return idOf(existing) == id }), nil
}

func replaceAt[T any](items []T, i int, item T) []T {
	next := slices.Clone(items)
	next[i] = item
	return next
}

// removeWhere returns a new slice without the items drop matches.
func removeWhere[T any](items []T, drop func(T) bool) []T {
	next := make([]T, 0, len(items))
	for _, item := range items {
		if !drop(item) {
			next = append(next, item)
		}
	}
	return next
}

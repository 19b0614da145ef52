package server

import (
	"github.com/go-chi/chi/v5"

	"github.com/at-ishikawa/lifeos/internal/model"
	"github.com/at-ishikawa/lifeos/internal/store"
	"github.com/at-ishikawa/lifeos/internal/validation"
)

// mountForms registers the form-style creation endpoints.
func (s *Server) mountForms(r chi.Router) {
	r.Post("/tasks", resource[validation.TaskInput, model.Task]{
		convert: validation.TaskInput.ToTask,
		add:     func(t model.Task) store.Action { return store.AddTask{Task: t} },
		list:    func(st store.State) []model.Task { return st.Tasks },
		id:      func(t model.Task) string { return t.ID },
	}.create(s))

	r.Post("/habits", resource[validation.HabitInput, model.Habit]{
		convert: validation.HabitInput.ToHabit,
		add:     func(h model.Habit) store.Action { return store.AddHabit{Habit: h} },
		list:    func(st store.State) []model.Habit { return st.Habits },
		id:      func(h model.Habit) string { return h.ID },
	}.create(s))

	r.Post("/transactions", resource[validation.TransactionInput, model.Transaction]{
		convert: validation.TransactionInput.ToTransaction,
		add:     func(t model.Transaction) store.Action { return store.AddTransaction{Transaction: t} },
		list:    func(st store.State) []model.Transaction { return st.Transactions },
		id:      func(t model.Transaction) string { return t.ID },
	}.create(s))

	r.Post("/study-sessions", resource[validation.StudySessionInput, model.StudySession]{
		convert: validation.StudySessionInput.ToStudySession,
		add:     func(ss model.StudySession) store.Action { return store.AddStudySession{StudySession: ss} },
		list:    func(st store.State) []model.StudySession { return st.StudySessions },
		id:      func(ss model.StudySession) string { return ss.ID },
	}.create(s))

	r.Post("/workouts", resource[validation.WorkoutInput, model.Workout]{
		convert: validation.WorkoutInput.ToWorkout,
		add:     func(w model.Workout) store.Action { return store.AddWorkout{Workout: w} },
		list:    func(st store.State) []model.Workout { return st.Workouts },
		id:      func(w model.Workout) string { return w.ID },
	}.create(s))

	r.Post("/books", resource[validation.BookInput, model.Book]{
		convert: validation.BookInput.ToBook,
		add:     func(b model.Book) store.Action { return store.AddBook{Book: b} },
		list:    func(st store.State) []model.Book { return st.Books },
		id:      func(b model.Book) string { return b.ID },
	}.create(s))

	r.Post("/quotes", resource[validation.QuoteInput, model.Quote]{
		convert: validation.QuoteInput.ToQuote,
		add:     func(q model.Quote) store.Action { return store.AddQuote{Quote: q} },
		list:    func(st store.State) []model.Quote { return st.Quotes },
		id:      func(q model.Quote) string { return q.ID },
	}.create(s))

	r.Post("/subjects", resource[validation.SubjectInput, model.Subject]{
		convert: withoutTime(validation.SubjectInput.ToSubject),
		add:     func(sub model.Subject) store.Action { return store.AddSubject{Subject: sub} },
		list:    func(st store.State) []model.Subject { return st.Subjects },
		id:      func(sub model.Subject) string { return sub.ID },
	}.create(s))

	r.Post("/lessons", resource[validation.LessonInput, model.Lesson]{
		convert: withoutTime(validation.LessonInput.ToLesson),
		add:     func(l model.Lesson) store.Action { return store.AddLesson{Lesson: l} },
		list:    func(st store.State) []model.Lesson { return st.Lessons },
		id:      func(l model.Lesson) string { return l.ID },
	}.create(s))
}

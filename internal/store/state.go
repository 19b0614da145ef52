// Package store holds the LifeOS state and the reducer that is the only way to change it.
package store

import (
	"slices"

	"github.com/at-ishikawa/lifeos/internal/model"
)

// State is one immutable value of every collection.
type State struct {
	Tasks         []model.Task           `json:"tasks" yaml:"tasks"`
	Habits        []model.Habit          `json:"habits" yaml:"habits"`
	Transactions  []model.Transaction    `json:"transactions" yaml:"transactions"`
	StudySessions []model.StudySession   `json:"studySessions" yaml:"study_sessions"`
	Workouts      []model.Workout        `json:"workouts" yaml:"workouts"`
	Books         []model.Book           `json:"books" yaml:"books"`
	Quotes        []model.Quote          `json:"quotes" yaml:"quotes"`
	Subjects      []model.Subject        `json:"subjects" yaml:"subjects"`
	Lessons       []model.Lesson         `json:"lessons" yaml:"lessons"`
	Exams         []model.Exam           `json:"exams" yaml:"exams"`
	StudyPlan     []model.StudyPlanEntry `json:"studyPlan" yaml:"study_plan"`
}

// Empty returns a state whose collections are empty but not nil.
func Empty() State {
	return State{
		Tasks:         []model.Task{},
		Habits:        []model.Habit{},
		Transactions:  []model.Transaction{},
		StudySessions: []model.StudySession{},
		Workouts:      []model.Workout{},
		Books:         []model.Book{},
		Quotes:        []model.Quote{},
		Subjects:      []model.Subject{},
		Lessons:       []model.Lesson{},
		Exams:         []model.Exam{},
		StudyPlan:     []model.StudyPlanEntry{},
	}
}

// Exam returns the active exam, which is the first one.
func (s State) Exam() (model.Exam, bool) {
	if len(s.Exams) == 0 {
		return model.Exam{}, false
	}
	return s.Exams[0], true
}

// Clone copies every collection including nested completions and scheduled lessons,
// so the caller can't reach the store's backing arrays.
func (s State) Clone() State {
	clone := State{
		Tasks:         cloneSlice(s.Tasks),
		Habits:        cloneSlice(s.Habits),
		Transactions:  cloneSlice(s.Transactions),
		StudySessions: cloneSlice(s.StudySessions),
		Workouts:      cloneSlice(s.Workouts),
		Books:         cloneSlice(s.Books),
		Quotes:        cloneSlice(s.Quotes),
		Subjects:      cloneSlice(s.Subjects),
		Lessons:       cloneSlice(s.Lessons),
		Exams:         cloneSlice(s.Exams),
		StudyPlan:     cloneSlice(s.StudyPlan),
	}
	for i := range clone.Habits {
		clone.Habits[i].Completions = cloneSlice(clone.Habits[i].Completions)
	}
	for i := range clone.StudyPlan {
		clone.StudyPlan[i].Lessons = cloneSlice(clone.StudyPlan[i].Lessons)
	}
	return clone
}

// Normalize replaces nil collections with empty ones, e.g. after decoding a snapshot.
func (s State) Normalize() State {
	empty := Empty()
	if s.Tasks == nil {
		s.Tasks = empty.Tasks
	}
	if s.Habits == nil {
		s.Habits = empty.Habits
	}
	if s.Transactions == nil {
		s.Transactions = empty.Transactions
	}
	if s.StudySessions == nil {
		s.StudySessions = empty.StudySessions
	}
	if s.Workouts == nil {
		s.Workouts = empty.Workouts
	}
	if s.Books == nil {
		s.Books = empty.Books
	}
	if s.Quotes == nil {
		s.Quotes = empty.Quotes
	}
	if s.Subjects == nil {
		s.Subjects = empty.Subjects
	}
	if s.Lessons == nil {
		s.Lessons = empty.Lessons
	}
	if s.Exams == nil {
		s.Exams = empty.Exams
	}
	if s.StudyPlan == nil {
		s.StudyPlan = empty.StudyPlan
	}
	return s
}

func cloneSlice[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return slices.Clone(items)
}

// Sizes reports the length of each collection by its JSON name.
func (s State) Sizes() map[string]int {
	return map[string]int{
		"tasks":         len(s.Tasks),
		"habits":        len(s.Habits),
		"transactions":  len(s.Transactions),
		"studySessions": len(s.StudySessions),
		"workouts":      len(s.Workouts),
		"books":         len(s.Books),
		"quotes":        len(s.Quotes),
		"subjects":      len(s.Subjects),
		"lessons":       len(s.Lessons),
		"exams":         len(s.Exams),
		"studyPlan":     len(s.StudyPlan),
	}
}

func (s State) hasBook(id string) bool {
	return slices.ContainsFunc(s.Books, func(b model.Book) bool { return b.ID == id })
}

func (s State) hasSubject(id string) bool {
	return slices.ContainsFunc(s.Subjects, func(sub model.Subject) bool { return sub.ID == id })
}

func (s State) hasLesson(id string) bool {
	return slices.ContainsFunc(s.Lessons, func(l model.Lesson) bool { return l.ID == id })
}

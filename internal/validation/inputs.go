package validation

import (
	"time"

	"github.com/at-ishikawa/lifeos/internal/model"
)

// Form inputs mirror what a user submits. They become entities once an
// identifier and a creation time are attached.

type TaskInput struct {
	Title       string             `json:"title" validate:"min=1"`
	Description string             `json:"description"`
	Priority    model.TaskPriority `json:"priority" validate:"oneof=low medium high"`
	Category    model.TaskCategory `json:"category" validate:"oneof=study work personal health finance"`
	DueDate     model.Date         `json:"dueDate" validate:"required"`
	Status      model.TaskStatus   `json:"status" validate:"oneof=todo inProgress done"`
}

func (in TaskInput) ToTask(id string, now time.Time) model.Task {
	return model.Task{
		ID:          id,
		Title:       in.Title,
		Description: in.Description,
		Priority:    in.Priority,
		Category:    in.Category,
		DueDate:     in.DueDate,
		Status:      in.Status,
		CreatedAt:   now,
	}
}

type HabitInput struct {
	Name     string              `json:"name" validate:"min=1"`
	Category model.HabitCategory `json:"category" validate:"oneof=health productivity learning mindfulness other"`
}

func (in HabitInput) ToHabit(id string, now time.Time) model.Habit {
	return model.Habit{
		ID:          id,
		Name:        in.Name,
		Category:    in.Category,
		CreatedAt:   now,
		Completions: []model.HabitCompletion{},
	}
}

type TransactionInput struct {
	Type     model.TransactionType     `json:"type" validate:"oneof=income expense"`
	Amount   float64                   `json:"amount" validate:"gt=0"`
	Category model.TransactionCategory `json:"category" validate:"min=1,txcategory"`
	Date     model.Date                `json:"date" validate:"required"`
	Note     string                    `json:"note"`
}

func (in TransactionInput) ToTransaction(id string, now time.Time) model.Transaction {
	return model.Transaction{
		ID:        id,
		Type:      in.Type,
		Amount:    in.Amount,
		Category:  in.Category,
		Date:      in.Date,
		Note:      in.Note,
		CreatedAt: now,
	}
}

type StudySessionInput struct {
	Subject  string     `json:"subject" validate:"min=1"`
	Duration int        `json:"duration" validate:"gt=0"`
	Date     model.Date `json:"date" validate:"required"`
	Notes    string     `json:"notes"`
}

func (in StudySessionInput) ToStudySession(id string, now time.Time) model.StudySession {
	return model.StudySession{
		ID:        id,
		Subject:   in.Subject,
		Duration:  in.Duration,
		Date:      in.Date,
		Notes:     in.Notes,
		CreatedAt: now,
	}
}

type WorkoutInput struct {
	Type     model.WorkoutType `json:"type" validate:"oneof=cardio strength sports yoga other"`
	Duration int               `json:"duration" validate:"gt=0"`
	Date     model.Date        `json:"date" validate:"required"`
	Notes    string            `json:"notes"`
}

func (in WorkoutInput) ToWorkout(id string, now time.Time) model.Workout {
	return model.Workout{
		ID:        id,
		Type:      in.Type,
		Duration:  in.Duration,
		Date:      in.Date,
		Notes:     in.Notes,
		CreatedAt: now,
	}
}

type BookInput struct {
	Title      string           `json:"title" validate:"min=1"`
	Author     string           `json:"author" validate:"min=1"`
	Category   string           `json:"category" validate:"min=1"`
	CoverImage string           `json:"coverImage" validate:"min=1"`
	Status     model.BookStatus `json:"status" validate:"omitempty,oneof=want-to-read currently-reading completed"`
}

// ToBook defaults the status to want-to-read.
func (in BookInput) ToBook(id string, now time.Time) model.Book {
	status := in.Status
	if status == "" {
		status = model.BookStatusWantToRead
	}
	return model.Book{
		ID:         id,
		Title:      in.Title,
		Author:     in.Author,
		Category:   in.Category,
		CoverImage: in.CoverImage,
		Status:     status,
		CreatedAt:  now,
	}
}

type QuoteInput struct {
	BookID string `json:"bookId" validate:"min=1"`
	Text   string `json:"text" validate:"min=1"`
	Notes  string `json:"notes"`
}

func (in QuoteInput) ToQuote(id string, now time.Time) model.Quote {
	return model.Quote{
		ID:        id,
		BookID:    in.BookID,
		Text:      in.Text,
		Notes:     in.Notes,
		CreatedAt: now,
	}
}

type ExamInput struct {
	Name string     `json:"name" validate:"min=1"`
	Date model.Date `json:"date" validate:"required"`
}

func (in ExamInput) ToExam(id string) model.Exam {
	return model.Exam{ID: id, Name: in.Name, Date: in.Date}
}

type SubjectInput struct {
	Name     string              `json:"name" validate:"min=2"`
	Level    model.StudyLevel    `json:"level" validate:"oneof=beginner intermediate advanced expert"`
	Priority model.StudyPriority `json:"priority" validate:"oneof=low medium high"`
}

func (in SubjectInput) ToSubject(id string) model.Subject {
	return model.Subject{ID: id, Name: in.Name, Level: in.Level, Priority: in.Priority}
}

type LessonInput struct {
	SubjectID string           `json:"subjectId" validate:"min=1"`
	Title     string           `json:"title" validate:"min=2"`
	Level     model.StudyLevel `json:"level" validate:"oneof=beginner intermediate advanced expert"`
}

func (in LessonInput) ToLesson(id string) model.Lesson {
	return model.Lesson{ID: id, SubjectID: in.SubjectID, Title: in.Title, Level: in.Level}
}

// StudyPlanEntryInput places or reconfigures a block on the weekly grid.
type StudyPlanEntryInput struct {
	Day       int                     `json:"day" validate:"min=0,max=6"`
	SubjectID string                  `json:"subjectId" validate:"min=1"`
	Duration  float64                 `json:"duration" validate:"gt=0"`
	Lessons   []model.ScheduledLesson `json:"lessons" validate:"dive"`
}

func (in StudyPlanEntryInput) ToEntry(id string) model.StudyPlanEntry {
	lessons := in.Lessons
	if lessons == nil {
		lessons = []model.ScheduledLesson{}
	}
	return model.StudyPlanEntry{
		ID:        id,
		Day:       in.Day,
		SubjectID: in.SubjectID,
		Duration:  in.Duration,
		Lessons:   lessons,
	}
}

// StudyPlanMoveInput moves an existing block to another day or reconfigures it.
type StudyPlanMoveInput struct {
	Day      int                     `json:"day" validate:"min=0,max=6"`
	Duration float64                 `json:"duration" validate:"gt=0"`
	Lessons  []model.ScheduledLesson `json:"lessons" validate:"dive"`
}

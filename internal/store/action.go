package store

import "github.com/at-ishikawa/lifeos/internal/model"

// ActionType is the wire tag of an action.
type ActionType string

const (
	ActionAddTask               ActionType = "ADD_TASK"
	ActionUpdateTask            ActionType = "UPDATE_TASK"
	ActionDeleteTask            ActionType = "DELETE_TASK"
	ActionAddHabit              ActionType = "ADD_HABIT"
	ActionUpdateHabit           ActionType = "UPDATE_HABIT"
	ActionDeleteHabit           ActionType = "DELETE_HABIT"
	ActionToggleHabitCompletion ActionType = "TOGGLE_HABIT_COMPLETION"
	ActionAddTransaction        ActionType = "ADD_TRANSACTION"
	ActionUpdateTransaction     ActionType = "UPDATE_TRANSACTION"
	ActionDeleteTransaction     ActionType = "DELETE_TRANSACTION"
	ActionAddStudySession       ActionType = "ADD_STUDY_SESSION"
	ActionUpdateStudySession    ActionType = "UPDATE_STUDY_SESSION"
	ActionDeleteStudySession    ActionType = "DELETE_STUDY_SESSION"
	ActionAddWorkout            ActionType = "ADD_WORKOUT"
	ActionUpdateWorkout         ActionType = "UPDATE_WORKOUT"
	ActionDeleteWorkout         ActionType = "DELETE_WORKOUT"
	ActionAddBook               ActionType = "ADD_BOOK"
	ActionUpdateBook            ActionType = "UPDATE_BOOK"
	ActionDeleteBook            ActionType = "DELETE_BOOK"
	ActionAddQuote              ActionType = "ADD_QUOTE"
	ActionUpdateQuote           ActionType = "UPDATE_QUOTE"
	ActionDeleteQuote           ActionType = "DELETE_QUOTE"
	ActionAddSubject            ActionType = "ADD_SUBJECT"
	ActionUpdateSubject         ActionType = "UPDATE_SUBJECT"
	ActionDeleteSubject         ActionType = "DELETE_SUBJECT"
	ActionAddLesson             ActionType = "ADD_LESSON"
	ActionUpdateLesson          ActionType = "UPDATE_LESSON"
	ActionDeleteLesson          ActionType = "DELETE_LESSON"
	ActionSetExam               ActionType = "SET_EXAM"
	ActionUpdateStudyPlan       ActionType = "UPDATE_STUDY_PLAN"
)

// Action is one of the variants declared in this file.
// The unexported method keeps the set closed to this package.
type Action interface {
	Type() ActionType
	payload() interface{}
}

type AddTask struct{ Task model.Task }
type UpdateTask struct{ Task model.Task }
type DeleteTask struct{ ID string }

type AddHabit struct{ Habit model.Habit }
type UpdateHabit struct{ Habit model.Habit }
type DeleteHabit struct{ ID string }

// ToggleHabitCompletion flips the habit's record for Date, adding a completed one if missing.
type ToggleHabitCompletion struct {
	HabitID string     `json:"habitId"`
	Date    model.Date `json:"date"`
}

type AddTransaction struct{ Transaction model.Transaction }
type UpdateTransaction struct{ Transaction model.Transaction }
type DeleteTransaction struct{ ID string }

type AddStudySession struct{ StudySession model.StudySession }
type UpdateStudySession struct{ StudySession model.StudySession }
type DeleteStudySession struct{ ID string }

type AddWorkout struct{ Workout model.Workout }
type UpdateWorkout struct{ Workout model.Workout }
type DeleteWorkout struct{ ID string }

type AddBook struct{ Book model.Book }
type UpdateBook struct{ Book model.Book }
type DeleteBook struct{ ID string }

type AddQuote struct{ Quote model.Quote }
type UpdateQuote struct{ Quote model.Quote }
type DeleteQuote struct{ ID string }

type AddSubject struct{ Subject model.Subject }
type UpdateSubject struct{ Subject model.Subject }
type DeleteSubject struct{ ID string }

type AddLesson struct{ Lesson model.Lesson }
type UpdateLesson struct{ Lesson model.Lesson }
type DeleteLesson struct{ ID string }

// SetExam replaces every exam with this one.
type SetExam struct{ Exam model.Exam }

// UpdateStudyPlan replaces the whole weekly plan.
type UpdateStudyPlan struct{ Entries []model.StudyPlanEntry }

func (AddTask) Type() ActionType               { return ActionAddTask }
func (UpdateTask) Type() ActionType            { return ActionUpdateTask }
func (DeleteTask) Type() ActionType            { return ActionDeleteTask }
func (AddHabit) Type() ActionType              { return ActionAddHabit }
func (UpdateHabit) Type() ActionType           { return ActionUpdateHabit }
func (DeleteHabit) Type() ActionType           { return ActionDeleteHabit }
func (ToggleHabitCompletion) Type() ActionType { return ActionToggleHabitCompletion }
func (AddTransaction) Type() ActionType        { return ActionAddTransaction }
func (UpdateTransaction) Type() ActionType     { return ActionUpdateTransaction }
func (DeleteTransaction) Type() ActionType     { return ActionDeleteTransaction }
func (AddStudySession) Type() ActionType       { return ActionAddStudySession }
func (UpdateStudySession) Type() ActionType    { return ActionUpdateStudySession }
func (DeleteStudySession) Type() ActionType    { return ActionDeleteStudySession }
func (AddWorkout) Type() ActionType            { return ActionAddWorkout }
func (UpdateWorkout) Type() ActionType         { return ActionUpdateWorkout }
func (DeleteWorkout) Type() ActionType         { return ActionDeleteWorkout }
func (AddBook) Type() ActionType               { return ActionAddBook }
func (UpdateBook) Type() ActionType            { return ActionUpdateBook }
func (DeleteBook) Type() ActionType            { return ActionDeleteBook }
func (AddQuote) Type() ActionType              { return ActionAddQuote }
func (UpdateQuote) Type() ActionType           { return ActionUpdateQuote }
func (DeleteQuote) Type() ActionType           { return ActionDeleteQuote }
func (AddSubject) Type() ActionType            { return ActionAddSubject }
func (UpdateSubject) Type() ActionType         { return ActionUpdateSubject }
func (DeleteSubject) Type() ActionType         { return ActionDeleteSubject }
func (AddLesson) Type() ActionType             { return ActionAddLesson }
func (UpdateLesson) Type() ActionType          { return ActionUpdateLesson }
func (DeleteLesson) Type() ActionType          { return ActionDeleteLesson }
func (SetExam) Type() ActionType               { return ActionSetExam }
func (UpdateStudyPlan) Type() ActionType       { return ActionUpdateStudyPlan }

func (a AddTask) payload() interface{}               { return a.Task }
func (a UpdateTask) payload() interface{}            { return a.Task }
func (a DeleteTask) payload() interface{}            { return a.ID }
func (a AddHabit) payload() interface{}              { return a.Habit }
func (a UpdateHabit) payload() interface{}           { return a.Habit }
func (a DeleteHabit) payload() interface{}           { return a.ID }
func (a ToggleHabitCompletion) payload() interface{} { return a }
func (a AddTransaction) payload() interface{}        { return a.Transaction }
func (a UpdateTransaction) payload() interface{}     { return a.Transaction }
func (a DeleteTransaction) payload() interface{}     { return a.ID }
func (a AddStudySession) payload() interface{}       { return a.StudySession }
func (a UpdateStudySession) payload() interface{}    { return a.StudySession }
func (a DeleteStudySession) payload() interface{}    { return a.ID }
func (a AddWorkout) payload() interface{}            { return a.Workout }
func (a UpdateWorkout) payload() interface{}         { return a.Workout }
func (a DeleteWorkout) payload() interface{}         { return a.ID }
func (a AddBook) payload() interface{}               { return a.Book }
func (a UpdateBook) payload() interface{}            { return a.Book }
func (a DeleteBook) payload() interface{}            { return a.ID }
func (a AddQuote) payload() interface{}              { return a.Quote }
func (a UpdateQuote) payload() interface{}           { return a.Quote }
func (a DeleteQuote) payload() interface{}           { return a.ID }
func (a AddSubject) payload() interface{}            { return a.Subject }
func (a UpdateSubject) payload() interface{}         { return a.Subject }
func (a DeleteSubject) payload() interface{}         { return a.ID }
func (a AddLesson) payload() interface{}             { return a.Lesson }
func (a UpdateLesson) payload() interface{}          { return a.Lesson }
func (a DeleteLesson) payload() interface{}          { return a.ID }
func (a SetExam) payload() interface{}               { return a.Exam }
func (a UpdateStudyPlan) payload() interface{}       { return a.Entries }

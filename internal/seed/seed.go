// Package seed generates the sample data a fresh LifeOS starts with.
package seed

import (
	"time"

	"github.com/google/uuid"

	"github.com/at-ishikawa/lifeos/internal/model"
	"github.com/at-ishikawa/lifeos/internal/store"
)

// IDFunc mints entity identifiers.
type IDFunc func() string

// Generate builds the sample state with every date relative to now.
// A nil newID uses random UUIDs.
func Generate(now time.Time, newID IDFunc) store.State {
	if newID == nil {
		newID = uuid.NewString
	}
	g := generator{now: now, today: model.DateOf(now), newID: newID}

	s := store.Empty()
	s.Tasks = g.tasks()
	s.Habits = g.habits()
	s.Transactions = g.transactions()
	s.StudySessions = g.studySessions()
	s.Workouts = g.workouts()
	s.Books, s.Quotes = g.library()
	s.Subjects, s.Lessons, s.Exams, s.StudyPlan = g.study()
	return s
}

type generator struct {
	now   time.Time
	today model.Date
	newID IDFunc
}

// day returns today shifted by offset days.
func (g generator) day(offset int) model.Date {
	return g.today.AddDays(offset)
}

// midnight returns the start of the day offset days from today in now's location.
func (g generator) midnight(offset int) time.Time {
	d := g.day(offset)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, g.now.Location())
}

func (g generator) tasks() []model.Task {
	completedAt := g.midnight(-1)
	return []model.Task{
		{
			ID: g.newID(), Title: "Complete LifeOS project",
			Description: "Finish the LifeOS MVP, focusing on the dashboard and task manager.",
			Priority:    model.TaskPriorityHigh, Category: model.TaskCategoryWork,
			DueDate: g.day(3), Status: model.TaskStatusInProgress, CreatedAt: g.midnight(-2),
		},
		{
			ID: g.newID(), Title: "Weekly grocery shopping",
			Priority: model.TaskPriorityMedium, Category: model.TaskCategoryPersonal,
			DueDate: g.day(1), Status: model.TaskStatusTodo, CreatedAt: g.midnight(-1),
		},
		{
			ID: g.newID(), Title: `Read a chapter of "Clean Code"`,
			Priority: model.TaskPriorityLow, Category: model.TaskCategoryStudy,
			DueDate: g.day(0), Status: model.TaskStatusTodo, CreatedAt: g.midnight(-3),
		},
		{
			ID: g.newID(), Title: "Pay electricity bill", Description: "Due by the end of the week.",
			Priority: model.TaskPriorityHigh, Category: model.TaskCategoryFinance,
			DueDate: g.day(5), Status: model.TaskStatusTodo, CreatedAt: g.midnight(0),
		},
		{
			ID: g.newID(), Title: "Morning run",
			Priority: model.TaskPriorityMedium, Category: model.TaskCategoryHealth,
			DueDate: g.day(-1), Status: model.TaskStatusDone, CreatedAt: g.midnight(-1), CompletedAt: &completedAt,
		},
		{
			ID: g.newID(), Title: "Prepare presentation for Monday",
			Priority: model.TaskPriorityHigh, Category: model.TaskCategoryWork,
			DueDate: g.day(4), Status: model.TaskStatusTodo, CreatedAt: g.midnight(0),
		},
		{
			ID: g.newID(), Title: "Plan weekend trip",
			Priority: model.TaskPriorityLow, Category: model.TaskCategoryPersonal,
			DueDate: g.day(10), Status: model.TaskStatusInProgress, CreatedAt: g.midnight(-5),
		},
	}
}

func (g generator) completions(offsets map[int]bool, order ...int) []model.HabitCompletion {
	completions := make([]model.HabitCompletion, 0, len(order))
	for _, offset := range order {
		completions = append(completions, model.HabitCompletion{Date: g.day(-offset), Completed: offsets[offset]})
	}
	return completions
}

func (g generator) habits() []model.Habit {
	return []model.Habit{
		{
			ID: g.newID(), Name: "Morning workout", Category: model.HabitCategoryHealth, CreatedAt: g.midnight(-30),
			Completions: g.completions(map[int]bool{1: true, 2: true, 3: false, 4: true, 5: true, 6: true, 7: false}, 1, 2, 3, 4, 5, 6, 7),
		},
		{
			ID: g.newID(), Name: "Read 20 pages", Category: model.HabitCategoryLearning, CreatedAt: g.midnight(-60),
			Completions: g.completions(map[int]bool{1: true, 2: true, 3: true}, 1, 2, 3),
		},
		{
			ID: g.newID(), Name: "Meditate for 10 minutes", Category: model.HabitCategoryMindfulness, CreatedAt: g.midnight(-10),
			Completions: []model.HabitCompletion{},
		},
		{
			ID: g.newID(), Name: "Drink 8 glasses of water", Category: model.HabitCategoryHealth, CreatedAt: g.midnight(-5),
			Completions: g.completions(map[int]bool{0: true, 1: true, 2: true}, 0, 1, 2),
		},
	}
}

func (g generator) transactions() []model.Transaction {
	tx := func(typ model.TransactionType, amount float64, category model.TransactionCategory, offset int, note string) model.Transaction {
		return model.Transaction{
			ID: g.newID(), Type: typ, Amount: amount, Category: category,
			Date: g.day(-offset), Note: note, CreatedAt: g.now,
		}
	}
	return []model.Transaction{
		tx(model.TransactionTypeIncome, 2500, model.IncomeCategorySalary, 15, "Monthly salary"),
		tx(model.TransactionTypeExpense, 55.40, model.ExpenseCategoryFood, 4, "Groceries"),
		tx(model.TransactionTypeExpense, 12.00, model.ExpenseCategoryTransport, 3, "Subway pass"),
		tx(model.TransactionTypeExpense, 40.00, model.ExpenseCategoryEntertainment, 2, "Movie tickets"),
		tx(model.TransactionTypeExpense, 80.00, model.ExpenseCategoryShopping, 2, "New shoes"),
		tx(model.TransactionTypeIncome, 300, model.IncomeCategoryFreelance, 1, "Web design gig"),
		tx(model.TransactionTypeExpense, 25.50, model.ExpenseCategoryFood, 1, "Lunch with friends"),
		tx(model.TransactionTypeExpense, 150.00, model.ExpenseCategoryBills, 0, "Internet bill"),
	}
}

func (g generator) studySessions() []model.StudySession {
	session := func(subject string, minutes, offset int, notes string) model.StudySession {
		return model.StudySession{ID: g.newID(), Subject: subject, Duration: minutes, Date: g.day(-offset), Notes: notes, CreatedAt: g.now}
	}
	return []model.StudySession{
		session("React Hooks", 50, 3, "Studied useState and useEffect."),
		session("Tailwind CSS", 90, 2, "Practiced responsive design grids."),
		session("Next.js App Router", 60, 1, "Learning about server components."),
		session("TypeScript", 45, 1, "Generics and advanced types."),
		session("React Hooks", 25, 0, "Pomodoro session on useReducer."),
	}
}

func (g generator) workouts() []model.Workout {
	workout := func(typ model.WorkoutType, minutes, offset int, notes string) model.Workout {
		return model.Workout{ID: g.newID(), Type: typ, Duration: minutes, Date: g.day(-offset), Notes: notes, CreatedAt: g.now}
	}
	return []model.Workout{
		workout(model.WorkoutTypeStrength, 45, 4, "Upper body day: Bench press, rows, shoulder press."),
		workout(model.WorkoutTypeCardio, 30, 2, "5k run on the treadmill."),
		workout(model.WorkoutTypeYoga, 60, 1, "Vinyasa flow session."),
	}
}

func (g generator) library() ([]model.Book, []model.Quote) {
	book1, book2 := g.newID(), g.newID()
	books := []model.Book{
		{
			ID: book1, Title: "The Subtle Art of Not Giving a F*ck", Author: "Mark Manson", Category: "Self-Help",
			CoverImage: "https://picsum.photos/seed/book1/300/400", Status: model.BookStatusCompleted, CreatedAt: g.now,
		},
		{
			ID: book2, Title: "Atomic Habits", Author: "James Clear", Category: "Productivity",
			CoverImage: "https://picsum.photos/seed/book2/300/400", Status: model.BookStatusCurrentlyReading, CreatedAt: g.now,
		},
		{
			ID: g.newID(), Title: "Sapiens: A Brief History of Humankind", Author: "Yuval Noah Harari", Category: "History",
			CoverImage: "https://picsum.photos/seed/book3/300/400", Status: model.BookStatusWantToRead, CreatedAt: g.now,
		},
	}
	quotes := []model.Quote{
		{
			ID: g.newID(), BookID: book1,
			Text:  "The desire for more positive experience is itself a negative experience. And, paradoxically, the acceptance of one's negative experience is itself a positive experience.",
			Notes: "This is a core concept of the book. Very impactful.", CreatedAt: g.now,
		},
		{
			ID: g.newID(), BookID: book2,
			Text:  "You do not rise to the level of your goals. You fall to the level of your systems.",
			Notes: "Focus on systems, not just goals.", CreatedAt: g.now,
		},
		{
			ID: g.newID(), BookID: book2,
			Text:      "Every action you take is a vote for the type of person you wish to become.",
			CreatedAt: g.now,
		},
	}
	return books, quotes
}

func (g generator) study() ([]model.Subject, []model.Lesson, []model.Exam, []model.StudyPlanEntry) {
	physics, math, chemistry := g.newID(), g.newID(), g.newID()
	subjects := []model.Subject{
		{ID: physics, Name: "Physics", Level: model.StudyLevelIntermediate, Priority: model.StudyPriorityHigh},
		{ID: math, Name: "Mathematics", Level: model.StudyLevelAdvanced, Priority: model.StudyPriorityHigh},
		{ID: chemistry, Name: "Chemistry", Level: model.StudyLevelBeginner, Priority: model.StudyPriorityMedium},
	}

	newtons, differential, integral := g.newID(), g.newID(), g.newID()
	lessons := []model.Lesson{
		{ID: newtons, SubjectID: physics, Title: "Newton's Laws of Motion", Level: model.StudyLevelBeginner, IsCompleted: true},
		{ID: g.newID(), SubjectID: physics, Title: "Thermodynamics", Level: model.StudyLevelIntermediate},
		{ID: g.newID(), SubjectID: physics, Title: "Quantum Mechanics", Level: model.StudyLevelAdvanced},
		{ID: differential, SubjectID: math, Title: "Differential Calculus", Level: model.StudyLevelIntermediate, IsCompleted: true},
		{ID: integral, SubjectID: math, Title: "Integral Calculus", Level: model.StudyLevelIntermediate, IsCompleted: true},
		{ID: g.newID(), SubjectID: math, Title: "Linear Algebra", Level: model.StudyLevelAdvanced},
	}

	exams := []model.Exam{{ID: g.newID(), Name: "Finals", Date: g.today.AddMonths(3)}}

	plan := []model.StudyPlanEntry{
		{ID: g.newID(), Day: 1, SubjectID: math, Duration: 2, Lessons: []model.ScheduledLesson{
			{LessonID: differential, State: model.LessonStateExercise, Notes: "Practice chain rule problems."},
			{LessonID: integral, State: model.LessonStateLearn, Notes: "Review fundamental theorem."},
		}},
		{ID: g.newID(), Day: 2, SubjectID: physics, Duration: 3, Lessons: []model.ScheduledLesson{
			{LessonID: newtons, State: model.LessonStateLearn, Notes: "Focus on the three laws and their real-world applications."},
		}},
		{ID: g.newID(), Day: 3, SubjectID: math, Duration: 2, Lessons: []model.ScheduledLesson{}},
		{ID: g.newID(), Day: 4, SubjectID: physics, Duration: 2, Lessons: []model.ScheduledLesson{}},
		{ID: g.newID(), Day: 5, SubjectID: chemistry, Duration: 2, Lessons: []model.ScheduledLesson{}},
	}
	return subjects, lessons, exams, plan
}

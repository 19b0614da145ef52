package statistics

import (
	"time"

	"github.com/at-ishikawa/lifeos/internal/model"
	"github.com/at-ishikawa/lifeos/internal/store"
)

const upcomingTaskLimit = 5

type HabitRatio struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// DashboardSummary is everything the dashboard shows for one reference time.
type DashboardSummary struct {
	Date             model.Date    `json:"date"`
	Tasks            TaskRatio     `json:"tasks"`
	Habits           HabitRatio    `json:"habits"`
	Finance          Balance       `json:"finance"`
	StudyHours       float64       `json:"studyHours"`
	WorkoutsThisWeek int           `json:"workoutsThisWeek"`
	UpcomingTasks    []model.Task  `json:"upcomingTasks"`
	HabitOverview    []HabitStatus `json:"habitOverview"`
}

// Dashboard computes the summary cards for now. Days are taken in now's location.
func Dashboard(state store.State, now time.Time) DashboardSummary {
	today := model.DateOf(now)
	return DashboardSummary{
		Date:  today,
		Tasks: DailyTaskRatio(state.Tasks, today, now.Location()),
		Habits: HabitRatio{
			Completed: HabitsCompletedToday(state.Habits, today),
			Total:     len(state.Habits),
		},
		Finance:          MonthlyBalance(state.Transactions, today),
		StudyHours:       WeeklyStudyHours(state.StudySessions, today),
		WorkoutsThisWeek: WorkoutSummary(state.Workouts, today).WorkoutsThisWeek,
		UpcomingTasks:    UpcomingTasks(state.Tasks, today, upcomingTaskLimit),
		HabitOverview:    HabitOverview(state.Habits, today),
	}
}

package statistics

import (
	"sort"

	"github.com/at-ishikawa/lifeos/internal/model"
)

// Streak counts consecutive completed days ending today, or yesterday when today has no completion.
// It returns 0 when the latest completion is older than yesterday.
// Completed records for the same day are not merged, so a duplicate ends the walk.
func Streak(completions []model.HabitCompletion, today model.Date) int {
	days := make([]model.Date, 0, len(completions))
	for _, c := range completions {
		if c.Completed {
			days = append(days, c.Date)
		}
	}
	if len(days) == 0 {
		return 0
	}
	sort.SliceStable(days, func(i, j int) bool { return days[i].After(days[j]) })

	yesterday := today.AddDays(-1)
	anchor := today
	if !containsDay(days, today) {
		anchor = yesterday
	}
	if !days[0].Equal(anchor) && !days[0].Equal(yesterday) {
		return 0
	}

	streak := 0
	for _, d := range days {
		if !d.Equal(anchor) {
			break
		}
		streak++
		anchor = anchor.AddDays(-1)
	}
	return streak
}

func containsDay(days []model.Date, day model.Date) bool {
	for _, d := range days {
		if d.Equal(day) {
			return true
		}
	}
	return false
}

// CompletedOn reports whether any completed record falls on day.
func CompletedOn(completions []model.HabitCompletion, day model.Date) bool {
	for _, c := range completions {
		if c.Completed && c.Date.Equal(day) {
			return true
		}
	}
	return false
}

// HabitsCompletedToday counts habits with a completed record for today.
func HabitsCompletedToday(habits []model.Habit, today model.Date) int {
	count := 0
	for _, h := range habits {
		if CompletedOn(h.Completions, today) {
			count++
		}
	}
	return count
}

// HabitStatus is one habit with its streak and recent history
type HabitStatus struct {
	Habit          model.Habit `json:"habit"`
	Streak         int         `json:"streak"`
	CompletedToday bool        `json:"completedToday"`
	LastSevenDays  []DayMark   `json:"lastSevenDays"` // oldest first, ending today
}

type DayMark struct {
	Date      model.Date `json:"date"`
	Completed bool       `json:"completed"`
}

// HabitOverview computes the status of every habit in input order.
func HabitOverview(habits []model.Habit, today model.Date) []HabitStatus {
	statuses := make([]HabitStatus, 0, len(habits))
	for _, h := range habits {
		marks := make([]DayMark, 0, 7)
		for i := 6; i >= 0; i-- {
			day := today.AddDays(-i)
			marks = append(marks, DayMark{Date: day, Completed: CompletedOn(h.Completions, day)})
		}
		statuses = append(statuses, HabitStatus{
			Habit:          h,
			Streak:         Streak(h.Completions, today),
			CompletedToday: CompletedOn(h.Completions, today),
			LastSevenDays:  marks,
		})
	}
	return statuses
}

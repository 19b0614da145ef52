package model

import "time"

type HabitCategory string

const (
	HabitCategoryHealth       HabitCategory = "health"
	HabitCategoryProductivity HabitCategory = "productivity"
	HabitCategoryLearning     HabitCategory = "learning"
	HabitCategoryMindfulness  HabitCategory = "mindfulness"
	HabitCategoryOther        HabitCategory = "other"
)

// HabitCompletion records whether a habit was done on a day.
type HabitCompletion struct {
	Date      Date `json:"date" yaml:"date" validate:"required"`
	Completed bool `json:"completed" yaml:"completed"`
}

type Habit struct {
	ID          string            `json:"id" yaml:"id" validate:"required"`
	Name        string            `json:"name" yaml:"name" validate:"required"`
	Category    HabitCategory     `json:"category" yaml:"category" validate:"oneof=health productivity learning mindfulness other"`
	CreatedAt   time.Time         `json:"createdAt" yaml:"created_at"`
	Completions []HabitCompletion `json:"completions" yaml:"completions" validate:"unique_days,dive"`
}

// CompletionOn returns the first record for day.
func (h Habit) CompletionOn(day Date) (HabitCompletion, bool) {
	for _, c := range h.Completions {
		if c.Date.Equal(day) {
			return c, true
		}
	}
	return HabitCompletion{}, false
}

// ToggleCompletion flips the record for day, or appends a completed record
// when the day has none. The receiver is left untouched.
func (h Habit) ToggleCompletion(day Date) Habit {
	completions := make([]HabitCompletion, 0, len(h.Completions)+1)
	toggled := false
	for _, c := range h.Completions {
		if !toggled && c.Date.Equal(day) {
			c.Completed = !c.Completed
			toggled = true
		}
		completions = append(completions, c)
	}
	if !toggled {
		completions = append(completions, HabitCompletion{Date: day, Completed: true})
	}
	h.Completions = completions
	return h
}

// HasDuplicateDays reports whether two completion records share a day.
func (h Habit) HasDuplicateDays() bool {
	return HasDuplicateDays(h.Completions)
}

func HasDuplicateDays(completions []HabitCompletion) bool {
	seen := make(map[string]struct{}, len(completions))
	for _, c := range completions {
		key := c.Date.String()
		if _, ok := seen[key]; ok {
			return true
		}
		seen[key] = struct{}{}
	}
	return false
}

// Package studyplan edits the weekly study grid. Days are indexed from Sunday (0) to Saturday (6).
// Functions return new slices; the caller dispatches them with store.UpdateStudyPlan.
package studyplan

import (
	"errors"
	"fmt"

	"github.com/at-ishikawa/lifeos/internal/model"
)

var (
	ErrEntryNotFound = errors.New("study plan entry not found")
	ErrInvalidDay    = errors.New("day must be between 0 and 6")
)

// Days is the number of columns in the grid.
const Days = 7

func validateDay(day int) error {
	if day < 0 || day >= Days {
		return fmt.Errorf("day %d: %w", day, ErrInvalidDay)
	}
	return nil
}

// Place appends a new block. Blocks on the same day may add up to more hours than the day has.
func Place(plan []model.StudyPlanEntry, entry model.StudyPlanEntry) ([]model.StudyPlanEntry, error) {
	if err := validateDay(entry.Day); err != nil {
		return plan, err
	}
	if entry.Lessons == nil {
		entry.Lessons = []model.ScheduledLesson{}
	}
	next := make([]model.StudyPlanEntry, 0, len(plan)+1)
	next = append(next, plan...)
	return append(next, entry), nil
}

// Move replaces the day, duration and lessons of the block with id. Its id and subject stay.
func Move(plan []model.StudyPlanEntry, id string, day int, duration float64, lessons []model.ScheduledLesson) ([]model.StudyPlanEntry, error) {
	if err := validateDay(day); err != nil {
		return plan, err
	}
	i := indexOf(plan, id)
	if i < 0 {
		return plan, fmt.Errorf("%q: %w", id, ErrEntryNotFound)
	}
	if lessons == nil {
		lessons = []model.ScheduledLesson{}
	}

	next := make([]model.StudyPlanEntry, len(plan))
	copy(next, plan)
	next[i].Day = day
	next[i].Duration = duration
	next[i].Lessons = append([]model.ScheduledLesson{}, lessons...)
	return next, nil
}

func Remove(plan []model.StudyPlanEntry, id string) ([]model.StudyPlanEntry, error) {
	i := indexOf(plan, id)
	if i < 0 {
		return plan, fmt.Errorf("%q: %w", id, ErrEntryNotFound)
	}
	next := make([]model.StudyPlanEntry, 0, len(plan)-1)
	next = append(next, plan[:i]...)
	return append(next, plan[i+1:]...), nil
}

// ForDay returns the blocks on day in plan order.
func ForDay(plan []model.StudyPlanEntry, day int) []model.StudyPlanEntry {
	entries := make([]model.StudyPlanEntry, 0)
	for _, e := range plan {
		if e.Day == day {
			entries = append(entries, e)
		}
	}
	return entries
}

// HoursOnDay sums the block durations on day.
func HoursOnDay(plan []model.StudyPlanEntry, day int) float64 {
	var hours float64
	for _, e := range ForDay(plan, day) {
		hours += e.Duration
	}
	return hours
}

// Week returns the blocks of every day, Sunday first.
func Week(plan []model.StudyPlanEntry) [Days][]model.StudyPlanEntry {
	var week [Days][]model.StudyPlanEntry
	for day := 0; day < Days; day++ {
		week[day] = ForDay(plan, day)
	}
	return week
}

func indexOf(plan []model.StudyPlanEntry, id string) int {
	for i, e := range plan {
		if e.ID == id {
			return i
		}
	}
	return -1
}

package statistics

import (
	"sort"
	"time"

	"github.com/at-ishikawa/lifeos/internal/model"
)

// TaskRatio holds the two counts shown as "completed / due" for a day.
// They are independent: a task finished today may be due on another day.
type TaskRatio struct {
	Completed int `json:"completed"` // done tasks whose completedAt is today
	Due       int `json:"due"`       // tasks whose due date is today
}

// DailyTaskRatio counts today's completions and today's due tasks.
// completedAt is converted to loc before comparing days.
func DailyTaskRatio(tasks []model.Task, today model.Date, loc *time.Location) TaskRatio {
	var ratio TaskRatio
	for _, t := range tasks {
		if t.IsDone() && t.CompletedAt != nil && DayOf(*t.CompletedAt, loc).Equal(today) {
			ratio.Completed++
		}
		if t.DueDate.Equal(today) {
			ratio.Due++
		}
	}
	return ratio
}

// TaskBuckets groups tasks by due date for the task board.
type TaskBuckets struct {
	Today    []model.Task `json:"today"`
	Tomorrow []model.Task `json:"tomorrow"`
	Week     []model.Task `json:"week"` // due within the Monday to Sunday week of today
}

// BucketTasks sorts tasks by due date and splits them into buckets. A task can be in Today and Week.
func BucketTasks(tasks []model.Task, today model.Date) TaskBuckets {
	sorted := sortByDueDate(tasks)
	week := WeekRange(today)
	tomorrow := today.AddDays(1)

	buckets := TaskBuckets{
		Today:    []model.Task{},
		Tomorrow: []model.Task{},
		Week:     []model.Task{},
	}
	for _, t := range sorted {
		if t.DueDate.Equal(today) {
			buckets.Today = append(buckets.Today, t)
		}
		if t.DueDate.Equal(tomorrow) {
			buckets.Tomorrow = append(buckets.Tomorrow, t)
		}
		if week.Contains(t.DueDate) {
			buckets.Week = append(buckets.Week, t)
		}
	}
	return buckets
}

// UpcomingTasks returns tasks that are not done and due today or later, earliest first, at most limit.
func UpcomingTasks(tasks []model.Task, today model.Date, limit int) []model.Task {
	upcoming := make([]model.Task, 0)
	for _, t := range sortByDueDate(tasks) {
		if t.IsDone() || t.DueDate.Before(today) {
			continue
		}
		upcoming = append(upcoming, t)
		if limit > 0 && len(upcoming) == limit {
			break
		}
	}
	return upcoming
}

func sortByDueDate(tasks []model.Task) []model.Task {
	sorted := make([]model.Task, len(tasks))
	copy(sorted, tasks)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].DueDate.Before(sorted[j].DueDate) })
	return sorted
}

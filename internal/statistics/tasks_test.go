package statistics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/at-ishikawa/lifeos/internal/model"
)

func TestDailyTaskRatio(t *testing.T) {
	completedToday := time.Date(2024, time.March, 13, 8, 0, 0, 0, time.UTC)
	completedYesterday := time.Date(2024, time.March, 12, 8, 0, 0, 0, time.UTC)
	tasks := []model.Task{
		{ID: "due today, open", DueDate: today, Status: model.TaskStatusTodo},
		{ID: "due today, done today", DueDate: today, Status: model.TaskStatusDone, CompletedAt: &completedToday},
		{ID: "due tomorrow, done today", DueDate: today.AddDays(1), Status: model.TaskStatusDone, CompletedAt: &completedToday},
		{ID: "done yesterday", DueDate: today.AddDays(-1), Status: model.TaskStatusDone, CompletedAt: &completedYesterday},
		{ID: "completedAt without done", DueDate: today.AddDays(-3), Status: model.TaskStatusInProgress, CompletedAt: &completedToday},
	}

	assert.Equal(t, TaskRatio{Completed: 2, Due: 2}, DailyTaskRatio(tasks, today, time.UTC))
}

func TestBucketTasks(t *testing.T) {
	tasks := []model.Task{
		{ID: "next week", DueDate: today.AddDays(7)},
		{ID: "tomorrow", DueDate: today.AddDays(1)},
		{ID: "today", DueDate: today},
		{ID: "monday", DueDate: today.AddDays(-2)},
		{ID: "sunday", DueDate: today.AddDays(4)},
	}

	got := BucketTasks(tasks, today)

	ids := func(tasks []model.Task) []string {
		result := make([]string, 0, len(tasks))
		for _, t := range tasks {
			result = append(result, t.ID)
		}
		return result
	}
	assert.Equal(t, []string{"today"}, ids(got.Today))
	assert.Equal(t, []string{"tomorrow"}, ids(got.Tomorrow))
	assert.Equal(t, []string{"monday", "today", "tomorrow", "sunday"}, ids(got.Week))
	assert.Equal(t, "next week", tasks[0].ID, "input order is kept")
}

func TestUpcomingTasks(t *testing.T) {
	var tasks []model.Task
	for i := 6; i >= -1; i-- {
		tasks = append(tasks, model.Task{ID: model.NewDate(2024, time.March, 13+i).String(), DueDate: today.AddDays(i), Status: model.TaskStatusTodo})
	}
	tasks = append(tasks, model.Task{ID: "done", DueDate: today, Status: model.TaskStatusDone})

	got := UpcomingTasks(tasks, today, 5)

	var ids []string
	for _, task := range got {
		ids = append(ids, task.ID)
	}
	assert.Equal(t, []string{"2024-03-13", "2024-03-14", "2024-03-15", "2024-03-16", "2024-03-17"}, ids)
	assert.Len(t, UpcomingTasks(tasks, today, 0), 7)
}

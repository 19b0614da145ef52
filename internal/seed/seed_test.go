package seed

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/lifeos/internal/model"
	"github.com/at-ishikawa/lifeos/internal/statistics"
	"github.com/at-ishikawa/lifeos/internal/validation"
)

func sequentialIDs() IDFunc {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%03d", n)
	}
}

func TestGenerate(t *testing.T) {
	now := time.Date(2024, time.March, 13, 9, 0, 0, 0, time.UTC)
	today := model.DateOf(now)

	state := Generate(now, sequentialIDs())

	assert.Len(t, state.Tasks, 7)
	assert.Len(t, state.Habits, 4)
	assert.Len(t, state.Transactions, 8)
	assert.Len(t, state.StudySessions, 5)
	assert.Len(t, state.Workouts, 3)
	assert.Len(t, state.Books, 3)
	assert.Len(t, state.Quotes, 3)
	assert.Len(t, state.Subjects, 3)
	assert.Len(t, state.Lessons, 6)
	assert.Len(t, state.StudyPlan, 5)
	require.Len(t, state.Exams, 1)
	assert.Equal(t, model.MustParseDate("2024-06-13"), state.Exams[0].Date)

	assert.Empty(t, state.Integrity(), "every reference resolves")

	streaks := make([]int, 0, len(state.Habits))
	for _, h := range state.Habits {
		streaks = append(streaks, statistics.Streak(h.Completions, today))
	}
	assert.Equal(t, []int{2, 3, 0, 3}, streaks)

	progress := statistics.SubjectProgress(state.Lessons, state.Subjects[1].ID)
	assert.Equal(t, statistics.Progress{Completed: 2, Total: 3, Percent: 66.67}, progress)
}

func TestGenerate_UniqueIDs(t *testing.T) {
	state := Generate(time.Now(), nil)

	seen := map[string]bool{}
	add := func(id string) {
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	for _, v := range state.Tasks {
		add(v.ID)
	}
	for _, v := range state.Books {
		add(v.ID)
	}
	for _, v := range state.Lessons {
		add(v.ID)
	}
	for _, v := range state.StudyPlan {
		add(v.ID)
	}
}

func TestGenerate_PassesValidation(t *testing.T) {
	v, err := validation.New()
	require.NoError(t, err)

	state := Generate(time.Date(2024, time.March, 13, 9, 0, 0, 0, time.UTC), sequentialIDs())

	for _, task := range state.Tasks {
		assert.NoError(t, v.Entity(task))
	}
	for _, habit := range state.Habits {
		assert.NoError(t, v.Entity(habit))
	}
	for _, tx := range state.Transactions {
		assert.NoError(t, v.Entity(tx))
	}
	for _, lesson := range state.Lessons {
		assert.NoError(t, v.Entity(lesson))
	}
	for _, entry := range state.StudyPlan {
		assert.NoError(t, v.Entity(entry))
	}
}

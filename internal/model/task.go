// Package model defines the LifeOS entities.
// Entities are plain values; they carry no behavior beyond small lookups.
package model

import "time"

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

type TaskCategory string

const (
	TaskCategoryStudy    TaskCategory = "study"
	TaskCategoryWork     TaskCategory = "work"
	TaskCategoryPersonal TaskCategory = "personal"
	TaskCategoryHealth   TaskCategory = "health"
	TaskCategoryFinance  TaskCategory = "finance"
)

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "inProgress"
	TaskStatusDone       TaskStatus = "done"
)

// Task is a to-do item with a due day.
// CompletedAt is set while Status is done and nil otherwise.
type Task struct {
	ID          string       `json:"id" yaml:"id" validate:"required"`
	Title       string       `json:"title" yaml:"title" validate:"required"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Priority    TaskPriority `json:"priority" yaml:"priority" validate:"oneof=low medium high"`
	Category    TaskCategory `json:"category" yaml:"category" validate:"oneof=study work personal health finance"`
	DueDate     Date         `json:"dueDate" yaml:"due_date" validate:"required"`
	Status      TaskStatus   `json:"status" yaml:"status" validate:"oneof=todo inProgress done"`
	CreatedAt   time.Time    `json:"createdAt" yaml:"created_at"`
	CompletedAt *time.Time   `json:"completedAt" yaml:"completed_at"`
}

func (t Task) IsDone() bool { return t.Status == TaskStatusDone }

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

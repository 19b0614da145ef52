package model

import "time"

// StudySession is a logged block of study time in minutes.
type StudySession struct {
	ID        string    `json:"id" yaml:"id" validate:"required"`
	Subject   string    `json:"subject" yaml:"subject" validate:"required"`
	Duration  int       `json:"duration" yaml:"duration" validate:"gt=0"`
	Date      Date      `json:"date" yaml:"date" validate:"required"`
	Notes     string    `json:"notes,omitempty" yaml:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt" yaml:"created_at"`
}

type WorkoutType string

const (
	WorkoutTypeCardio   WorkoutType = "cardio"
	WorkoutTypeStrength WorkoutType = "strength"
	WorkoutTypeSports   WorkoutType = "sports"
	WorkoutTypeYoga     WorkoutType = "yoga"
	WorkoutTypeOther    WorkoutType = "other"
)

// Workout duration is in minutes.
type Workout struct {
	ID        string      `json:"id" yaml:"id" validate:"required"`
	Type      WorkoutType `json:"type" yaml:"type" validate:"oneof=cardio strength sports yoga other"`
	Duration  int         `json:"duration" yaml:"duration" validate:"gt=0"`
	Date      Date        `json:"date" yaml:"date" validate:"required"`
	Notes     string      `json:"notes,omitempty" yaml:"notes,omitempty"`
	CreatedAt time.Time   `json:"createdAt" yaml:"created_at"`
}

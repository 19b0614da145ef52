package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/at-ishikawa/lifeos/internal/model"
)

// ErrMalformedAction is returned when an envelope can't be decoded.
var ErrMalformedAction = errors.New("malformed action")

type envelope struct {
	Type    ActionType      `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// EncodeAction writes action as {"type": ..., "payload": ...}.
func EncodeAction(action Action) ([]byte, error) {
	payload, err := json.Marshal(action.payload())
	if err != nil {
		return nil, fmt.Errorf("json.Marshal(%s) > %w", action.Type(), err)
	}
	data, err := json.Marshal(envelope{Type: action.Type(), Payload: payload})
	if err != nil {
		return nil, fmt.Errorf("json.Marshal() > %w", err)
	}
	return data, nil
}

// DecodeAction reads an action envelope.
// Unknown types return ErrUnknownAction, broken payloads ErrMalformedAction.
func DecodeAction(data []byte) (Action, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedAction, err)
	}
	decode, ok := decoders[env.Type]
	if !ok {
		return nil, fmt.Errorf("%q: %w", env.Type, ErrUnknownAction)
	}
	if len(env.Payload) == 0 || string(env.Payload) == "null" {
		return nil, fmt.Errorf("%w: %s has no payload", ErrMalformedAction, env.Type)
	}
	action, err := decode(env.Payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedAction, env.Type, err)
	}
	return action, nil
}

func decodeAs[T any](wrap func(T) Action) func(json.RawMessage) (Action, error) {
	return func(raw json.RawMessage) (Action, error) {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return wrap(v), nil
	}
}

var decoders = map[ActionType]func(json.RawMessage) (Action, error){
	ActionAddTask:    decodeAs(func(v model.Task) Action { return AddTask{Task: v} }),
	ActionUpdateTask: decodeAs(func(v model.Task) Action { return UpdateTask{Task: v} }),
	ActionDeleteTask: decodeAs(func(id string) Action { return DeleteTask{ID: id} }),

	ActionAddHabit:              decodeAs(func(v model.Habit) Action { return AddHabit{Habit: v} }),
	ActionUpdateHabit:           decodeAs(func(v model.Habit) Action { return UpdateHabit{Habit: v} }),
	ActionDeleteHabit:           decodeAs(func(id string) Action { return DeleteHabit{ID: id} }),
	ActionToggleHabitCompletion: decodeAs(func(v ToggleHabitCompletion) Action { return v }),

	ActionAddTransaction:    decodeAs(func(v model.Transaction) Action { return AddTransaction{Transaction: v} }),
	ActionUpdateTransaction: decodeAs(func(v model.Transaction) Action { return UpdateTransaction{Transaction: v} }),
	ActionDeleteTransaction: decodeAs(func(id string) Action { return DeleteTransaction{ID: id} }),

	ActionAddStudySession:    decodeAs(func(v model.StudySession) Action { return AddStudySession{StudySession: v} }),
	ActionUpdateStudySession: decodeAs(func(v model.StudySession) Action { return UpdateStudySession{StudySession: v} }),
	ActionDeleteStudySession: decodeAs(func(id string) Action { return DeleteStudySession{ID: id} }),

	ActionAddWorkout:    decodeAs(func(v model.Workout) Action { return AddWorkout{Workout: v} }),
	ActionUpdateWorkout: decodeAs(func(v model.Workout) Action { return UpdateWorkout{Workout: v} }),
	ActionDeleteWorkout: decodeAs(func(id string) Action { return DeleteWorkout{ID: id} }),

	ActionAddBook:    decodeAs(func(v model.Book) Action { return AddBook{Book: v} }),
	ActionUpdateBook: decodeAs(func(v model.Book) Action { return UpdateBook{Book: v} }),
	ActionDeleteBook: decodeAs(func(id string) Action { return DeleteBook{ID: id} }),

	ActionAddQuote:    decodeAs(func(v model.Quote) Action { return AddQuote{Quote: v} }),
	ActionUpdateQuote: decodeAs(func(v model.Quote) Action { return UpdateQuote{Quote: v} }),
	ActionDeleteQuote: decodeAs(func(id string) Action { return DeleteQuote{ID: id} }),

	ActionAddSubject:    decodeAs(func(v model.Subject) Action { return AddSubject{Subject: v} }),
	ActionUpdateSubject: decodeAs(func(v model.Subject) Action { return UpdateSubject{Subject: v} }),
	ActionDeleteSubject: decodeAs(func(id string) Action { return DeleteSubject{ID: id} }),

	ActionAddLesson:    decodeAs(func(v model.Lesson) Action { return AddLesson{Lesson: v} }),
	ActionUpdateLesson: decodeAs(func(v model.Lesson) Action { return UpdateLesson{Lesson: v} }),
	ActionDeleteLesson: decodeAs(func(id string) Action { return DeleteLesson{ID: id} }),

	ActionSetExam:         decodeAs(func(v model.Exam) Action { return SetExam{Exam: v} }),
	ActionUpdateStudyPlan: decodeAs(func(v []model.StudyPlanEntry) Action { return UpdateStudyPlan{Entries: v} }),
}

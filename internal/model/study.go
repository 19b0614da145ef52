package model

type StudyLevel string

const (
	StudyLevelBeginner     StudyLevel = "beginner"
	StudyLevelIntermediate StudyLevel = "intermediate"
	StudyLevelAdvanced     StudyLevel = "advanced"
	StudyLevelExpert       StudyLevel = "expert"
)

// StudyLevels is ordered from beginner to expert.
var StudyLevels = []StudyLevel{StudyLevelBeginner, StudyLevelIntermediate, StudyLevelAdvanced, StudyLevelExpert}

type StudyPriority string

const (
	StudyPriorityLow    StudyPriority = "low"
	StudyPriorityMedium StudyPriority = "medium"
	StudyPriorityHigh   StudyPriority = "high"
)

type LessonState string

const (
	LessonStateLearn    LessonState = "learn"
	LessonStateExercise LessonState = "exercise"
)

type Subject struct {
	ID       string        `json:"id" yaml:"id" validate:"required"`
	Name     string        `json:"name" yaml:"name" validate:"min=2"`
	Level    StudyLevel    `json:"level" yaml:"level" validate:"oneof=beginner intermediate advanced expert"`
	Priority StudyPriority `json:"priority" yaml:"priority" validate:"oneof=low medium high"`
}

type Lesson struct {
	ID          string     `json:"id" yaml:"id" validate:"required"`
	SubjectID   string     `json:"subjectId" yaml:"subject_id" validate:"required"`
	Title       string     `json:"title" yaml:"title" validate:"min=2"`
	Level       StudyLevel `json:"level" yaml:"level" validate:"oneof=beginner intermediate advanced expert"`
	IsCompleted bool       `json:"isCompleted" yaml:"is_completed"`
}

// Exam is the target date shown by the countdown.
type Exam struct {
	ID   string `json:"id" yaml:"id" validate:"required"`
	Name string `json:"name" yaml:"name" validate:"required"`
	Date Date   `json:"date" yaml:"date" validate:"required"`
}

// ScheduledLesson configures one lesson inside a study block.
type ScheduledLesson struct {
	LessonID string      `json:"lessonId" yaml:"lesson_id" validate:"required"`
	State    LessonState `json:"state" yaml:"state" validate:"oneof=learn exercise"`
	Notes    string      `json:"notes" yaml:"notes"`
}

// StudyPlanEntry is a study block: hours for a subject on a weekday (Sunday = 0).
type StudyPlanEntry struct {
	ID        string            `json:"id" yaml:"id" validate:"required"`
	Day       int               `json:"day" yaml:"day" validate:"min=0,max=6"`
	SubjectID string            `json:"subjectId" yaml:"subject_id" validate:"required"`
	Duration  float64           `json:"duration" yaml:"duration" validate:"gt=0"`
	Lessons   []ScheduledLesson `json:"lessons" yaml:"lessons" validate:"dive"`
}

func (l StudyLevel) Valid() bool {
	for _, level := range StudyLevels {
		if l == level {
			return true
		}
	}
	return false
}

func (s LessonState) Valid() bool {
	return s == LessonStateLearn || s == LessonStateExercise
}

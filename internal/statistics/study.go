package statistics

import (
	"math"
	"time"

	"github.com/at-ishikawa/lifeos/internal/model"
)

const unknownSubject = "Unknown Subject"

type Progress struct {
	Completed int     `json:"completed"`
	Total     int     `json:"total"`
	Percent   float64 `json:"percent"` // rounded to two decimals, 0 without lessons
}

// SubjectProgress reports how many lessons of a subject are completed.
func SubjectProgress(lessons []model.Lesson, subjectID string) Progress {
	var p Progress
	for _, l := range lessons {
		if l.SubjectID != subjectID {
			continue
		}
		p.Total++
		if l.IsCompleted {
			p.Completed++
		}
	}
	if p.Total > 0 {
		p.Percent = math.Round(float64(p.Completed)/float64(p.Total)*10000) / 100
	}
	return p
}

type SubjectProgressRow struct {
	Subject  model.Subject `json:"subject"`
	Progress Progress      `json:"progress"`
	ByLevel  []LevelCount  `json:"byLevel"`
}

// AllSubjectProgress computes progress for each subject in input order.
func AllSubjectProgress(subjects []model.Subject, lessons []model.Lesson) []SubjectProgressRow {
	rows := make([]SubjectProgressRow, 0, len(subjects))
	for _, s := range subjects {
		rows = append(rows, SubjectProgressRow{
			Subject:  s,
			Progress: SubjectProgress(lessons, s.ID),
			ByLevel:  CompletedLessonsByLevel(lessons, s.ID),
		})
	}
	return rows
}

type LevelCount struct {
	Level model.StudyLevel `json:"level"`
	Count int              `json:"count"`
}

// CompletedLessonsByLevel counts completed lessons per level from beginner to expert.
// Levels without a completed lesson are left out.
func CompletedLessonsByLevel(lessons []model.Lesson, subjectID string) []LevelCount {
	counts := make([]LevelCount, 0, len(model.StudyLevels))
	for _, level := range model.StudyLevels {
		n := 0
		for _, l := range lessons {
			if l.SubjectID == subjectID && l.Level == level && l.IsCompleted {
				n++
			}
		}
		if n > 0 {
			counts = append(counts, LevelCount{Level: level, Count: n})
		}
	}
	return counts
}

// TodayLesson is a lesson scheduled on the plan for today.
type TodayLesson struct {
	Lesson       model.Lesson      `json:"lesson"`
	SubjectName  string            `json:"subjectName"`
	SessionState model.LessonState `json:"sessionState"`
	SessionNotes string            `json:"sessionNotes"`
}

// TodaysLessons lists the scheduled lessons of the plan entries on today's weekday.
// References to missing lessons are skipped.
func TodaysLessons(plan []model.StudyPlanEntry, lessons []model.Lesson, subjects []model.Subject, today model.Date) []TodayLesson {
	day := int(today.Weekday())
	result := make([]TodayLesson, 0)
	for _, entry := range plan {
		if entry.Day != day {
			continue
		}
		for _, scheduled := range entry.Lessons {
			lesson, ok := findLesson(lessons, scheduled.LessonID)
			if !ok {
				continue
			}
			result = append(result, TodayLesson{
				Lesson:       lesson,
				SubjectName:  subjectName(subjects, lesson.SubjectID),
				SessionState: scheduled.State,
				SessionNotes: scheduled.Notes,
			})
		}
	}
	return result
}

func findLesson(lessons []model.Lesson, id string) (model.Lesson, bool) {
	for _, l := range lessons {
		if l.ID == id {
			return l, true
		}
	}
	return model.Lesson{}, false
}

func subjectName(subjects []model.Subject, id string) string {
	for _, s := range subjects {
		if s.ID == id {
			return s.Name
		}
	}
	return unknownSubject
}

type Countdown struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

// ExamCountdown is the time left until midnight of the exam day in now's location.
// It is zero when the exam has no date or has started.
func ExamCountdown(exam model.Exam, now time.Time) Countdown {
	if exam.Date.IsZero() {
		return Countdown{}
	}
	target := time.Date(exam.Date.Year(), exam.Date.Month(), exam.Date.Day(), 0, 0, 0, 0, now.Location())
	if !target.After(now) {
		return Countdown{}
	}
	left := target.Sub(now)
	totalMinutes := int(left / time.Minute)
	return Countdown{
		Days:    totalMinutes / (24 * 60),
		Hours:   (totalMinutes / 60) % 24,
		Minutes: totalMinutes % 60,
	}
}

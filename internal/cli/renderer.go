// Package cli prints the derived views of the store to a terminal.
package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/at-ishikawa/lifeos/internal/model"
	"github.com/at-ishikawa/lifeos/internal/statistics"
	"github.com/at-ishikawa/lifeos/internal/store"
	"github.com/at-ishikawa/lifeos/internal/studyplan"
)

type Renderer struct {
	out    io.Writer
	err    error
	bold   *color.Color
	faint  *color.Color
	green  *color.Color
	red    *color.Color
	yellow *color.Color
	cyan   *color.Color
}

// NewRenderer colors its output when out is a terminal, following fatih/color.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{
		out:    out,
		bold:   color.New(color.Bold),
		faint:  color.New(color.Faint),
		green:  color.New(color.FgGreen),
		red:    color.New(color.FgRed),
		yellow: color.New(color.FgYellow),
		cyan:   color.New(color.FgCyan, color.Bold),
	}
}

// SetColor forces colored output on or off.
func (r *Renderer) SetColor(enabled bool) *Renderer {
	for _, c := range []*color.Color{r.bold, r.faint, r.green, r.red, r.yellow, r.cyan} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// printf remembers the first write error so render functions can check once.
func (r *Renderer) printf(format string, args ...interface{}) {
	if r.err != nil {
		return
	}
	if _, err := fmt.Fprintf(r.out, format, args...); err != nil {
		r.err = fmt.Errorf("failed to write to stdout: %w", err)
	}
}

func (r *Renderer) flush() error {
	err := r.err
	r.err = nil
	return err
}

func (r *Renderer) heading(title string) {
	r.printf("%s\n", r.cyan.Sprint(title))
}

func (r *Renderer) Dashboard(summary statistics.DashboardSummary) error {
	r.heading("Dashboard " + summary.Date.String())
	r.printf("%s %d/%d completed today\n", r.bold.Sprint("Tasks  "), summary.Tasks.Completed, summary.Tasks.Due)
	r.printf("%s %d/%d completed today\n", r.bold.Sprint("Habits "), summary.Habits.Completed, summary.Habits.Total)
	r.printf("%s income %.2f  expenses %.2f  balance %s\n", r.bold.Sprint("Finance"),
		summary.Finance.Income, summary.Finance.Expenses, r.signed(summary.Finance.Balance))
	r.printf("%s %s this week\n", r.bold.Sprint("Study  "), formatHours(summary.StudyHours))
	r.printf("%s %d workouts this week\n", r.bold.Sprint("Fitness"), summary.WorkoutsThisWeek)

	r.printf("\n")
	r.heading("Upcoming tasks")
	if len(summary.UpcomingTasks) == 0 {
		r.printf("  %s\n", r.faint.Sprint("nothing due"))
	}
	for _, task := range summary.UpcomingTasks {
		r.printf("  %s  %s %s\n", task.DueDate, r.priority(task.Priority), task.Title)
	}

	r.printf("\n")
	r.habitLines(summary.HabitOverview)
	return r.flush()
}

func (r *Renderer) Habits(overview []statistics.HabitStatus) error {
	r.habitLines(overview)
	return r.flush()
}

func (r *Renderer) habitLines(overview []statistics.HabitStatus) {
	r.heading("Habits")
	if len(overview) == 0 {
		r.printf("  %s\n", r.faint.Sprint("no habits yet"))
	}
	for _, status := range overview {
		check := r.faint.Sprint("-")
		if status.CompletedToday {
			check = r.green.Sprint("✓")
		}
		r.printf("  %s %s %s  %s  streak %d\n",
			check, status.Habit.Name, r.faint.Sprintf("(%s)", status.Habit.Category),
			r.marks(status.LastSevenDays), status.Streak)
	}
}

func (r *Renderer) marks(days []statistics.DayMark) string {
	var b strings.Builder
	for _, d := range days {
		if d.Completed {
			b.WriteString(r.green.Sprint("■"))
		} else {
			b.WriteString(r.faint.Sprint("□"))
		}
	}
	return b.String()
}

func (r *Renderer) priority(p model.TaskPriority) string {
	label := fmt.Sprintf("[%s]", p)
	switch p {
	case model.TaskPriorityHigh:
		return r.red.Sprint(label)
	case model.TaskPriorityMedium:
		return r.yellow.Sprint(label)
	}
	return r.faint.Sprint(label)
}

func (r *Renderer) signed(amount float64) string {
	if amount < 0 {
		return r.red.Sprintf("%.2f", amount)
	}
	return r.green.Sprintf("%.2f", amount)
}

// StudyView groups what the study command prints.
type StudyView struct {
	Subjects  []statistics.SubjectProgressRow
	Today     []statistics.TodayLesson
	Exam      *model.Exam
	Countdown statistics.Countdown
	Plan      []model.StudyPlanEntry
	WeekHours float64
}

// NewStudyView derives the study view of state for now.
func NewStudyView(state store.State, now time.Time) StudyView {
	today := model.DateOf(now)
	view := StudyView{
		Subjects:  statistics.AllSubjectProgress(state.Subjects, state.Lessons),
		Today:     statistics.TodaysLessons(state.StudyPlan, state.Lessons, state.Subjects, today),
		Plan:      state.StudyPlan,
		WeekHours: statistics.WeeklyStudyHours(state.StudySessions, today),
	}
	if exam, ok := state.Exam(); ok {
		view.Exam = &exam
		view.Countdown = statistics.ExamCountdown(exam, now)
	}
	return view
}

func (r *Renderer) Study(view StudyView) error {
	r.heading("Subjects")
	names := make(map[string]string, len(view.Subjects))
	for _, row := range view.Subjects {
		names[row.Subject.ID] = row.Subject.Name
		r.printf("  %-14s %s %3d/%-3d %6.2f%%\n", row.Subject.Name, progressBar(row.Progress.Percent, 20),
			row.Progress.Completed, row.Progress.Total, row.Progress.Percent)
	}
	r.printf("  %s %s studied this week\n", r.faint.Sprint("total"), formatHours(view.WeekHours))

	r.printf("\n")
	r.heading("Today's lessons")
	if len(view.Today) == 0 {
		r.printf("  %s\n", r.faint.Sprint("no lessons planned"))
	}
	for _, lesson := range view.Today {
		done := " "
		if lesson.Lesson.IsCompleted {
			done = r.green.Sprint("✓")
		}
		r.printf("  %s %s %s %s\n", done, r.bold.Sprint(lesson.Lesson.Title),
			r.faint.Sprintf("(%s, %s)", lesson.SubjectName, lesson.SessionState), lesson.SessionNotes)
	}

	r.printf("\n")
	r.heading("Week")
	week := studyplan.Week(view.Plan)
	for day, entries := range week {
		r.printf("  %s %5s", time.Weekday(day).String()[:3], formatHours(studyplan.HoursOnDay(view.Plan, day)))
		for _, e := range entries {
			name := names[e.SubjectID]
			if name == "" {
				name = e.SubjectID
			}
			r.printf("  %s %s", name, r.faint.Sprint(formatHours(e.Duration)))
		}
		r.printf("\n")
	}

	if view.Exam != nil {
		r.printf("\n")
		r.heading("Exam")
		r.printf("  %s on %s: %s\n", view.Exam.Name, view.Exam.Date,
			r.yellow.Sprintf("%dd %dh %dm left", view.Countdown.Days, view.Countdown.Hours, view.Countdown.Minutes))
	}
	return r.flush()
}

// Integrity prints dangling references, or a single OK line when there are none.
func (r *Renderer) Integrity(dangling []store.DanglingReference) error {
	if len(dangling) == 0 {
		r.printf("%s no dangling references\n", r.green.Sprint("[OK]"))
		return r.flush()
	}
	for _, ref := range dangling {
		r.printf("%s %s\n", r.red.Sprint("[ERROR]"), ref)
	}
	return r.flush()
}

func progressBar(percent float64, width int) string {
	filled := int(percent / 100 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}

func formatHours(h float64) string {
	return strings.TrimSuffix(strings.TrimSuffix(fmt.Sprintf("%.2f", h), "0"), ".0") + "h"
}

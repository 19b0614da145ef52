// Package report renders the weekly markdown report and converts it to PDF.
package report

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/at-ishikawa/lifeos/internal/assets"
	"github.com/at-ishikawa/lifeos/internal/model"
	"github.com/at-ishikawa/lifeos/internal/statistics"
	"github.com/at-ishikawa/lifeos/internal/store"
	"github.com/at-ishikawa/lifeos/internal/studyplan"
)

// Weekly is the data behind one weekly report.
type Weekly struct {
	GeneratedAt time.Time
	Week        statistics.Range
	Month       string
	Summary     statistics.DashboardSummary
	Buckets     statistics.TaskBuckets
	Categories  []statistics.CategoryTotal
	Fitness     statistics.FitnessSummary
	Subjects    []statistics.SubjectProgressRow
	Plan        []PlannedDay
	Exam        *ExamLine
	Books       []BookCount
}

type PlannedDay struct {
	Name  string
	Hours float64
}

type ExamLine struct {
	Name      string
	Date      model.Date
	Countdown statistics.Countdown
}

type BookCount struct {
	Status model.BookStatus
	Count  int
}

var bookStatuses = []model.BookStatus{
	model.BookStatusWantToRead,
	model.BookStatusCurrentlyReading,
	model.BookStatusCompleted,
}

// Build computes a report for the week containing now. Days are taken in now's location.
func Build(state store.State, now time.Time) Weekly {
	today := model.DateOf(now)
	summary := statistics.Dashboard(state, now)

	report := Weekly{
		GeneratedAt: now,
		Week:        statistics.WeekRange(today),
		Month:       fmt.Sprintf("%04d-%02d", today.Year(), int(today.Month())),
		Summary:     summary,
		Buckets:     statistics.BucketTasks(state.Tasks, today),
		Categories:  statistics.ExpensesByCategory(statistics.MonthlyTransactions(state.Transactions, today)),
		Fitness:     statistics.WorkoutSummary(state.Workouts, today),
		Subjects:    statistics.AllSubjectProgress(state.Subjects, state.Lessons),
	}

	for day := 0; day < studyplan.Days; day++ {
		report.Plan = append(report.Plan, PlannedDay{
			Name:  time.Weekday(day).String()[:3],
			Hours: studyplan.HoursOnDay(state.StudyPlan, day),
		})
	}

	if exam, ok := state.Exam(); ok {
		report.Exam = &ExamLine{
			Name:      exam.Name,
			Date:      exam.Date,
			Countdown: statistics.ExamCountdown(exam, now),
		}
	}

	counts := statistics.BookCounts(state.Books)
	for _, status := range bookStatuses {
		report.Books = append(report.Books, BookCount{Status: status, Count: counts[status]})
	}
	return report
}

// FileName is the markdown file name of the report, keyed by the first day of its week.
func (w Weekly) FileName() string {
	return "weekly-report-" + w.Week.Start.String() + ".md"
}

var templateFuncs = template.FuncMap{
	"hours": func(h float64) string {
		return strings.TrimSuffix(strings.TrimSuffix(fmt.Sprintf("%.2f", h), "0"), ".0") + "h"
	},
	"money": func(amount float64) string {
		return fmt.Sprintf("%.2f", amount)
	},
	"marks": func(days []statistics.DayMark) string {
		var b strings.Builder
		for _, d := range days {
			if d.Completed {
				b.WriteString("x")
			} else {
				b.WriteString(".")
			}
		}
		return b.String()
	},
}

type Writer struct {
	tmpl      *template.Template
	directory string
}

// NewWriter writes reports into directory using the template at templatePath,
// or the embedded one when templatePath is empty.
func NewWriter(directory string, templatePath string) (*Writer, error) {
	tmpl, err := assets.ParseWeeklyReportTemplate(templatePath, templateFuncs)
	if err != nil {
		return nil, fmt.Errorf("assets.ParseWeeklyReportTemplate() > %w", err)
	}
	return &Writer{tmpl: tmpl, directory: directory}, nil
}

func (w *Writer) Render(out io.Writer, report Weekly) error {
	if err := w.tmpl.Execute(out, report); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}

// Write renders report into the output directory and returns the markdown path.
func (w *Writer) Write(report Weekly) (string, error) {
	var buf bytes.Buffer
	if err := w.Render(&buf, report); err != nil {
		return "", err
	}
	if err := os.MkdirAll(w.directory, 0755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", w.directory, err)
	}
	path := filepath.Join(w.directory, report.FileName())
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("os.WriteFile(%s) > %w", path, err)
	}
	return path, nil
}

// Reports lists the markdown reports in the output directory, oldest first.
func (w *Writer) Reports() ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(w.directory, "weekly-report-*.md"))
	if err != nil {
		return nil, fmt.Errorf("filepath.Glob() > %w", err)
	}
	sort.Strings(paths)
	return paths, nil
}

package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/at-ishikawa/lifeos/internal/model"
	"github.com/at-ishikawa/lifeos/internal/statistics"
)

const defaultUpcomingLimit = 5

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	now, ok := s.referenceTime(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, statistics.Dashboard(s.store.State(), now))
}

func (s *Server) handleHabitOverview(w http.ResponseWriter, r *http.Request) {
	today, ok := s.referenceDay(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, statistics.HabitOverview(s.store.State().Habits, today))
}

func (s *Server) handleTaskBuckets(w http.ResponseWriter, r *http.Request) {
	today, ok := s.referenceDay(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, statistics.BucketTasks(s.store.State().Tasks, today))
}

func (s *Server) handleUpcomingTasks(w http.ResponseWriter, r *http.Request) {
	today, ok := s.referenceDay(w, r)
	if !ok {
		return
	}
	limit := defaultUpcomingLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer", nil)
			return
		}
		limit = n
	}
	writeJSON(w, http.StatusOK, statistics.UpcomingTasks(s.store.State().Tasks, today, limit))
}

type financeSummary struct {
	Month        string              `json:"month"`
	Balance      statistics.Balance  `json:"balance"`
	Transactions []model.Transaction `json:"transactions"`
}

func (s *Server) handleFinanceSummary(w http.ResponseWriter, r *http.Request) {
	month, ok := s.referenceMonth(w, r)
	if !ok {
		return
	}
	transactions := s.store.State().Transactions
	writeJSON(w, http.StatusOK, financeSummary{
		Month:        month.Time().Format("2006-01"),
		Balance:      statistics.MonthlyBalance(transactions, month),
		Transactions: statistics.MonthlyTransactions(transactions, month),
	})
}

func (s *Server) handleFinanceCategories(w http.ResponseWriter, r *http.Request) {
	month, ok := s.referenceMonth(w, r)
	if !ok {
		return
	}
	monthly := statistics.MonthlyTransactions(s.store.State().Transactions, month)
	writeJSON(w, http.StatusOK, statistics.ExpensesByCategory(monthly))
}

// referenceMonth reads the month query parameter (yyyy-MM), defaulting to the current month.
func (s *Server) referenceMonth(w http.ResponseWriter, r *http.Request) (model.Date, bool) {
	raw := r.URL.Query().Get("month")
	if raw == "" {
		return s.referenceDay(w, r)
	}
	t, err := time.Parse("2006-01", raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "month must be yyyy-MM", nil)
		return model.Date{}, false
	}
	return model.NewDate(t.Year(), t.Month(), 1), true
}

func (s *Server) handleFitnessSummary(w http.ResponseWriter, r *http.Request) {
	today, ok := s.referenceDay(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, statistics.WorkoutSummary(s.store.State().Workouts, today))
}

type studyProgress struct {
	Subjects     []statistics.SubjectProgressRow `json:"subjects"`
	WeekHours    float64                         `json:"weekHours"`
	PlannedHours float64                         `json:"plannedHours"`
}

func (s *Server) handleStudyProgress(w http.ResponseWriter, r *http.Request) {
	today, ok := s.referenceDay(w, r)
	if !ok {
		return
	}
	state := s.store.State()
	var planned float64
	for _, e := range state.StudyPlan {
		planned += e.Duration
	}
	writeJSON(w, http.StatusOK, studyProgress{
		Subjects:     statistics.AllSubjectProgress(state.Subjects, state.Lessons),
		WeekHours:    statistics.WeeklyStudyHours(state.StudySessions, today),
		PlannedHours: planned,
	})
}

func (s *Server) handleStudyToday(w http.ResponseWriter, r *http.Request) {
	today, ok := s.referenceDay(w, r)
	if !ok {
		return
	}
	state := s.store.State()
	writeJSON(w, http.StatusOK, statistics.TodaysLessons(state.StudyPlan, state.Lessons, state.Subjects, today))
}

type examView struct {
	Exam      model.Exam           `json:"exam"`
	Countdown statistics.Countdown `json:"countdown"`
}

func (s *Server) handleExam(w http.ResponseWriter, r *http.Request) {
	now, ok := s.referenceTime(w, r)
	if !ok {
		return
	}
	exam, found := s.store.State().Exam()
	if !found {
		writeError(w, http.StatusNotFound, "no exam is set", nil)
		return
	}
	writeJSON(w, http.StatusOK, examView{Exam: exam, Countdown: statistics.ExamCountdown(exam, now)})
}

func (s *Server) handleBookCounts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statistics.BookCounts(s.store.State().Books))
}

func (s *Server) handleBooks(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	status := model.BookStatus(q.Get("status"))
	if status != "" && !status.Valid() {
		writeError(w, http.StatusBadRequest, "unknown book status "+string(status), nil)
		return
	}
	writeJSON(w, http.StatusOK, statistics.SearchBooks(s.store.State().Books, status, q.Get("q")))
}

func (s *Server) handleQuotes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	writeJSON(w, http.StatusOK, statistics.SearchQuotes(s.store.State().Quotes, q.Get("book"), q.Get("q")))
}

package statistics

import "github.com/at-ishikawa/lifeos/internal/model"

// WeeklyStudyHours sums session minutes in the Monday to Sunday week of ref, in hours.
func WeeklyStudyHours(sessions []model.StudySession, ref model.Date) float64 {
	week := WeekRange(ref)
	minutes := 0
	for _, s := range sessions {
		if week.Contains(s.Date) {
			minutes += s.Duration
		}
	}
	return float64(minutes) / 60
}

type FitnessSummary struct {
	WorkoutsThisWeek  int `json:"workoutsThisWeek"`
	WorkoutsThisMonth int `json:"workoutsThisMonth"`
	MinutesThisMonth  int `json:"minutesThisMonth"`
}

// WorkoutSummary counts workouts in the week and month of ref.
func WorkoutSummary(workouts []model.Workout, ref model.Date) FitnessSummary {
	week := WeekRange(ref)
	month := MonthRange(ref)

	var s FitnessSummary
	for _, w := range workouts {
		if week.Contains(w.Date) {
			s.WorkoutsThisWeek++
		}
		if month.Contains(w.Date) {
			s.WorkoutsThisMonth++
			s.MinutesThisMonth += w.Duration
		}
	}
	return s
}

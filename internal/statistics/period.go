// Package statistics derives read-only summaries from the store's collections.
// Every function takes the reference day or time explicitly.
package statistics

import (
	"time"

	"github.com/at-ishikawa/lifeos/internal/model"
)

// Range is an inclusive span of calendar days.
type Range struct {
	Start model.Date `json:"start"`
	End   model.Date `json:"end"`
}

func (r Range) Contains(d model.Date) bool {
	return d.Between(r.Start, r.End)
}

// WeekRange returns the Monday to Sunday week containing ref.
func WeekRange(ref model.Date) Range {
	offset := (int(ref.Weekday()) + 6) % 7
	start := ref.AddDays(-offset)
	return Range{Start: start, End: start.AddDays(6)}
}

// MonthRange returns the calendar month containing ref.
func MonthRange(ref model.Date) Range {
	start := model.NewDate(ref.Year(), ref.Month(), 1)
	return Range{Start: start, End: start.AddMonths(1).AddDays(-1)}
}

// DayOf returns the calendar day of t in loc.
func DayOf(t time.Time, loc *time.Location) model.Date {
	if loc == nil {
		return model.DateOf(t)
	}
	return model.DateOf(t.In(loc))
}

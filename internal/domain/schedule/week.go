package schedule

import (
	"sort"

	"github.com/luminasalon/salon-manager/internal/models"
)

var WeekdayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// Week holds one slice of schedule rows per weekday, Sunday first.
type Week [7][]models.WorkSchedule

// GroupByWeekday partitions a flat list of interval rows by weekday, each
// group sorted by start time ascending. Rows with an out-of-range weekday
// are dropped.
func GroupByWeekday(rows []models.WorkSchedule) Week {
	var week Week
	for _, r := range rows {
		if r.Weekday < 0 || r.Weekday > 6 {
			continue
		}
		week[r.Weekday] = append(week[r.Weekday], r)
	}
	for d := range week {
		sort.Slice(week[d], func(i, j int) bool {
			return week[d][i].StartTime < week[d][j].StartTime
		})
	}
	return week
}

// Overlaps reports whether two HH:MM intervals on the same weekday intersect.
// Lexical comparison is exact for zero-padded HH:MM strings.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && aEnd > bStart
}

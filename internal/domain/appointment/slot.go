package appointment

import (
	"time"

	"github.com/luminasalon/salon-manager/internal/httperr"
)

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DeriveSlot combines a YYYY-MM-DD date and an HH:MM time into a start
// instant in loc and adds the duration to obtain the end. Both are persisted
// as submitted, never recomputed later.
func DeriveSlot(date, hm string, durationMinutes int, loc *time.Location) (start, end time.Time, err error) {
	start, err = time.ParseInLocation("2006-01-02 15:04", date+" "+hm, loc)
	if err != nil {
		return time.Time{}, time.Time{}, httperr.ErrBusiness("invalid_date_or_time")
	}
	end = start.Add(time.Duration(durationMinutes) * time.Minute)
	return start, end, nil
}

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) intersect.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// Package dateutil anchors all calendar arithmetic to the Asia/Shanghai
// timezone. Days are addressed as YYYYMMDD integers so they can be
// compared and indexed in the database.
package dateutil

import "time"

var location *time.Location

func init() {
	loc, err := time.LoadLocation("Asia/Shanghai")
	if err != nil {
		// tzdata may be absent in minimal containers; CST has no DST.
		loc = time.FixedZone("CST", 8*60*60)
	}
	location = loc
}

// Location is the timezone every day boundary is computed in.
func Location() *time.Location {
	return location
}

// DateInt renders t's calendar date as a YYYYMMDD integer.
func DateInt(t time.Time) int {
	t = t.In(location)
	return t.Year()*10000 + int(t.Month())*100 + t.Day()
}

// DayOf is the inverse of DateInt: midnight of the given day.
func DayOf(dateInt int) time.Time {
	year := dateInt / 10000
	month := time.Month(dateInt / 100 % 100)
	day := dateInt % 100
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// PrevDay steps one calendar day back, handling month and year
// boundaries.
func PrevDay(dateInt int) int {
	return DateInt(DayOf(dateInt).AddDate(0, 0, -1))
}

// DayStart is midnight of t's calendar day.
func DayStart(t time.Time) time.Time {
	t = t.In(location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, location)
}

// DayBounds returns the half-open [start, end) interval of t's day.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := DayStart(t)
	return start, start.AddDate(0, 0, 1)
}

// MorningWindow is the half-open [00:00, 06:00) slice of t's day.
func MorningWindow(t time.Time) (time.Time, time.Time) {
	start := DayStart(t)
	return start, start.Add(6 * time.Hour)
}

package planner

import "time"

// DateLayout is the calendar-date key used for grouped schedules.
const DateLayout = "2006-01-02"

// DayStart returns the start of the day containing now in tz, converted to UTC.
func DayStart(now time.Time, tz *time.Location) time.Time {
	userNow := now.In(tz)
	dayStart := time.Date(userNow.Year(), userNow.Month(), userNow.Day(), 0, 0, 0, 0, tz)
	return dayStart.UTC()
}

// NextDayStart returns the start of the day after the one containing now in tz, converted to UTC.
func NextDayStart(now time.Time, tz *time.Location) time.Time {
	return AddDays(DayStart(now, tz), 1, tz)
}

// AddDays moves a day start n calendar days in tz.
// AddDate handles DST correctly, Add(24h) does not.
func AddDays(dayStart time.Time, n int, tz *time.Location) time.Time {
	d := dayStart.In(tz).AddDate(0, 0, n)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, tz).UTC()
}

// DaysBetween counts whole calendar days from a to b in tz, ignoring time of day.
// The result is negative when b is on an earlier day.
func DaysBetween(a, b time.Time, tz *time.Location) int {
	ay, am, ad := a.In(tz).Date()
	by, bm, bd := b.In(tz).Date()
	from := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	to := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}

// DateKey formats t as a local calendar date in tz.
func DateKey(t time.Time, tz *time.Location) string {
	return t.In(tz).Format(DateLayout)
}

// ParseTimezone parses a timezone string, returning UTC as fallback.
func ParseTimezone(tz string) *time.Location {
	if tz == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}

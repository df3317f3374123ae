// Package timeline holds the pure life-in-weeks computations: week
// arithmetic, per-week aggregation, category filtering, the zoomable grid
// and the life statistics. Nothing here performs I/O.
package timeline

import "time"

const day = 24 * time.Hour

// Date truncates t to its civil date. The Y/M/D are taken in t's own
// location and re-anchored at UTC midnight so that day arithmetic is never
// skewed by DST transitions.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole civil days from start to end.
func DaysBetween(start, end time.Time) int {
	return int(Date(end).Sub(Date(start)) / day)
}

// WeeksBetween returns floor(days(start, end) / 7). The floor also applies
// to negative spans, so a date one day before start yields -1.
func WeeksBetween(start, end time.Time) int {
	return floorDiv(DaysBetween(start, end), 7)
}

// Window is the half-open date range [Start, End) of a single life week.
type Window struct {
	Start time.Time
	End   time.Time
}

// WeekWindow returns the window of the given week index counted from birthdate.
func WeekWindow(birthdate time.Time, week int) Window {
	start := Date(birthdate).AddDate(0, 0, 7*week)
	return Window{Start: start, End: start.AddDate(0, 0, 7)}
}

// Contains reports whether the civil date of d falls inside the window.
func (w Window) Contains(d time.Time) bool {
	d = Date(d)
	return !d.Before(w.Start) && d.Before(w.End)
}

// AgeYears returns the number of completed calendar years between birthdate and today.
func AgeYears(birthdate, today time.Time) int {
	b, t := Date(birthdate), Date(today)
	years := t.Year() - b.Year()
	if t.Month() < b.Month() || (t.Month() == b.Month() && t.Day() < b.Day()) {
		years--
	}
	return years
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

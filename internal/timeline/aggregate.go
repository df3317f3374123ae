package timeline

import "time"

// EventsInWeek returns the events whose date lies in the given week window,
// keeping their input order.
func EventsInWeek(events []Event, birthdate time.Time, week int) []Event {
	w := WeekWindow(birthdate, week)
	var out []Event
	for _, e := range events {
		if w.Contains(e.Date) {
			out = append(out, e)
		}
	}
	return out
}

// AttachmentCount sums the attachments of all given events.
func AttachmentCount(events []Event) int {
	n := 0
	for _, e := range events {
		n += len(e.Attachments)
	}
	return n
}

// IndexByWeek buckets events by week index in one pass. Each bucket keeps the
// input order, so IndexByWeek(es, b)[w] equals EventsInWeek(es, b, w).
func IndexByWeek(events []Event, birthdate time.Time) map[int][]Event {
	idx := make(map[int][]Event)
	for _, e := range events {
		w := WeeksBetween(birthdate, e.Date)
		idx[w] = append(idx[w], e)
	}
	return idx
}

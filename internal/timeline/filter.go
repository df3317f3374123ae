package timeline

// FilterByCategory keeps the events whose category is in active. An empty
// active set means no filter. The result is always a fresh slice.
func FilterByCategory(events []Event, active []Category) []Event {
	out := make([]Event, 0, len(events))
	if len(active) == 0 {
		return append(out, events...)
	}

	set := make(map[Category]struct{}, len(active))
	for _, c := range active {
		set[c] = struct{}{}
	}
	for _, e := range events {
		if _, ok := set[e.Category]; ok {
			out = append(out, e)
		}
	}
	return out
}

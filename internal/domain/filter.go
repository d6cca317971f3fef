package domain

import (
	"slices"
	"strings"
)

// FilterAndSort orders events by date, most recent first, then keeps the
// ones whose title contains search (case-insensitive). An empty search keeps
// everything. The input slice is not modified.
func FilterAndSort(events []Event, search string) []Event {
	sorted := slices.Clone(events)
	slices.SortStableFunc(sorted, func(a, b Event) int {
		return strings.Compare(b.Date, a.Date)
	})

	if search == "" {
		return sorted
	}

	needle := strings.ToLower(search)
	out := make([]Event, 0, len(sorted))
	for _, e := range sorted {
		if strings.Contains(strings.ToLower(e.Title), needle) {
			out = append(out, e)
		}
	}
	return out
}

package layout

import "strconv"

// ComputeNumbers assigns sequential display numbers to every real seat.  A
// single counter runs across both decks in enumeration order; slots marked as
// empty space and entrance/table gaps are skipped without incrementing it, so
// the resulting sequence is dense and gapless over the remaining seats.
// There is no persisted seat number: the mapping is derived from geometry
// alone and recomputing it is idempotent.
func ComputeNumbers(cfg DeckConfig, empty EmptySpaces) map[string]string {
	numbers := make(map[string]string)
	n := 0
	for _, id := range EnumerateSeats(cfg, empty) {
		n++
		numbers[id] = strconv.Itoa(n)
	}
	return numbers
}

// Labels resolves the final display label for every seat in the geometry: a
// manual override when one is set (numeric or free text both supersede the
// computed number), otherwise the sequential number.  Overrides for seats
// that no longer exist in the geometry are ignored.
func Labels(cfg DeckConfig, empty EmptySpaces, overrides Overrides) map[string]string {
	labels := ComputeNumbers(cfg, empty)
	for id, v := range overrides {
		if v == "" {
			continue
		}
		if _, exists := labels[id]; exists {
			labels[id] = v
		}
	}
	return labels
}

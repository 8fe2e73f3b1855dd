package registry

import "vaxreg/internal/clock"

// Allocate picks the batch that fulfils a dose request from the given
// name group: not frozen, doses remaining, not expired as of today.
// Among eligible batches the earliest expiry wins, ties broken by the
// lexicographically smallest id. Returns nil when nothing qualifies.
//
// The scan is recomputed on every call; there is deliberately no cached
// priority structure to go stale.
func Allocate(group []*Batch, today clock.Date) *Batch {
	var best *Batch
	for _, b := range group {
		if !allocatable(b, today) {
			continue
		}
		if best == nil || compareBatches(b, best) < 0 {
			best = b
		}
	}
	return best
}

func allocatable(b *Batch, today clock.Date) bool {
	return !b.Frozen && b.DosesUsed < b.Doses && !b.ValidUntil.Before(today)
}

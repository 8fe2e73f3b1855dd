// Package registry implements the in-memory vaccination registry: the
// batch, user and inoculation stores, the allocation policy, and the
// command operations that compose them. One Registry instance is built
// at startup and mutated in place; there is no hidden package state.
package registry

import "vaxreg/internal/clock"

// Batch is a registered vaccine lot. The id hash table owns Batch
// values; name groups and the insertion-order listing refer to batches
// by id only.
type Batch struct {
	ID         string
	Vaccine    string
	ValidUntil clock.Date
	Doses      int
	DosesUsed  int
	Frozen     bool
}

// Available returns the doses still administrable from this batch.
// Frozen batches report zero because retiring a used batch collapses
// Doses down to DosesUsed.
func (b *Batch) Available() int {
	return b.Doses - b.DosesUsed
}

// Inoculation records one administered dose. Records are immutable once
// created and owned by the Ledger; the user's sequence and the global
// sequence hold the record id.
type Inoculation struct {
	ID      string
	User    string
	BatchID string
	Date    clock.Date
}

// User holds one person's inoculation history as an ordered sequence of
// ledger record ids. The order is administration order and is
// externally observable through listing, so removals must preserve it.
type User struct {
	Name    string
	records []string
}

// Records returns the user's record ids in administration order. The
// returned slice is a copy.
func (u *User) Records() []string {
	out := make([]string, len(u.records))
	copy(out, u.records)
	return out
}

func (u *User) add(recordID string) {
	u.records = append(u.records, recordID)
}

// remove deletes recordID keeping the relative order of the remaining
// entries. Swap-with-last would corrupt the listing order.
func (u *User) remove(recordID string) {
	for i, id := range u.records {
		if id == recordID {
			u.records = append(u.records[:i], u.records[i+1:]...)
			return
		}
	}
}

// Len returns the number of recorded inoculations.
func (u *User) Len() int {
	return len(u.records)
}

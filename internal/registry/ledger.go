package registry

import (
	"slices"

	"github.com/google/uuid"

	"vaxreg/internal/clock"
)

// Ledger is the sole owner of inoculation records. The global sequence
// is kept newest-first and reported oldest-first; user histories refer
// to records by the generated id.
type Ledger struct {
	recent  []string // record ids, newest first
	records map[string]*Inoculation
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{records: make(map[string]*Inoculation)}
}

// Append records one administered dose and returns the new record.
func (l *Ledger) Append(user, batchID string, date clock.Date) *Inoculation {
	rec := &Inoculation{
		ID:      uuid.NewString(),
		User:    user,
		BatchID: batchID,
		Date:    date,
	}
	l.records[rec.ID] = rec
	l.recent = slices.Insert(l.recent, 0, rec.ID)
	return rec
}

// Get returns the record with the given id.
func (l *Ledger) Get(id string) (*Inoculation, bool) {
	rec, ok := l.records[id]
	return rec, ok
}

// Remove deletes a record from both the owning table and the global
// sequence.
func (l *Ledger) Remove(id string) {
	if _, ok := l.records[id]; !ok {
		return
	}
	delete(l.records, id)
	if i := slices.Index(l.recent, id); i >= 0 {
		l.recent = slices.Delete(l.recent, i, i+1)
	}
}

// Oldest returns every record oldest-administered-first.
func (l *Ledger) Oldest() []*Inoculation {
	out := make([]*Inoculation, 0, len(l.recent))
	for i := len(l.recent) - 1; i >= 0; i-- {
		out = append(out, l.records[l.recent[i]])
	}
	return out
}

// Len returns the number of records.
func (l *Ledger) Len() int {
	return len(l.records)
}

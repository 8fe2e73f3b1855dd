package registry

import "vaxreg/internal/clock"

// Registry composes the stores and implements the command operations.
// It is single-threaded by design: each operation validates fully,
// then mutates, then reports.
type Registry struct {
	clk     *clock.Clock
	batches *BatchStore
	users   *UserStore
	ledger  *Ledger
}

// New creates an empty registry sharing the given clock. tableSize and
// maxBatches come from configuration; they are fixed for the lifetime
// of the registry.
func New(clk *clock.Clock, tableSize, maxBatches int) *Registry {
	return &Registry{
		clk:     clk,
		batches: NewBatchStore(tableSize, maxBatches),
		users:   NewUserStore(tableSize),
		ledger:  NewLedger(),
	}
}

// RegisterBatch registers a new vaccine batch and returns its id.
func (r *Registry) RegisterBatch(id, vaccine string, validUntil clock.Date, doses int) (string, error) {
	if err := r.batches.Register(id, vaccine, validUntil, doses, r.clk.Today()); err != nil {
		return "", err
	}
	return id, nil
}

// Administer applies one dose of the named vaccine to the user and
// returns the id of the batch consumed. A user can receive each vaccine
// at most once per simulated day; allocation follows Allocate. Nothing
// is mutated on any failure path.
func (r *Registry) Administer(user, vaccine string) (string, error) {
	today := r.clk.Today()
	group := r.batches.Group(vaccine)

	if r.vaccinatedToday(user, group, today) {
		return "", ErrAlreadyVaccinated
	}
	b := Allocate(group, today)
	if b == nil {
		return "", ErrNoStock
	}

	rec := r.ledger.Append(user, b.ID, today)
	r.users.Ensure(user).add(rec.ID)
	b.DosesUsed++
	return b.ID, nil
}

// vaccinatedToday reports whether the user already has an inoculation
// dated today for this vaccine. The guard is keyed on the vaccine name
// via group membership of the recorded batch; a batch with recorded
// doses always freezes rather than purges, so it cannot leave its
// group while records referencing it exist.
func (r *Registry) vaccinatedToday(user string, group []*Batch, today clock.Date) bool {
	u, ok := r.users.Find(user)
	if !ok {
		return false
	}
	for _, recID := range u.Records() {
		rec, ok := r.ledger.Get(recID)
		if !ok || !rec.Date.Equal(today) {
			continue
		}
		for _, b := range group {
			if b.ID == rec.BatchID {
				return true
			}
		}
	}
	return false
}

// RetireBatch withdraws a batch and returns the doses used so far.
func (r *Registry) RetireBatch(id string) (int, error) {
	used, _, err := r.batches.Retire(id)
	return used, err
}

// RevokeFilter selects inoculations to delete: a mandatory user plus
// optional date and batch filters.
type RevokeFilter struct {
	User    string
	Date    *clock.Date
	BatchID string
}

// Revoke deletes every inoculation matching the filter from both the
// ledger and the user's sequence, preserving the order of the user's
// remaining entries, and returns the count removed. Filters validate in
// a fixed order (user, batch, date) and nothing is removed unless all
// of them pass; zero matches after valid filters is a legitimate
// result.
func (r *Registry) Revoke(f RevokeFilter) (int, error) {
	u, ok := r.users.Find(f.User)
	if !ok || u.Len() == 0 {
		return 0, NoSuchUser(f.User)
	}
	if f.BatchID != "" {
		if _, ok := r.batches.Find(f.BatchID); !ok {
			return 0, NoSuchBatch(f.BatchID)
		}
	}
	if f.Date != nil {
		if !f.Date.Valid() || f.Date.After(r.clk.Today()) {
			return 0, ErrInvalidDate
		}
	}

	removed := 0
	for _, recID := range u.Records() {
		rec, ok := r.ledger.Get(recID)
		if !ok || !matches(rec, f) {
			continue
		}
		r.ledger.Remove(recID)
		u.remove(recID)
		removed++
	}
	return removed, nil
}

func matches(rec *Inoculation, f RevokeFilter) bool {
	if rec.User != f.User {
		return false
	}
	if f.Date != nil && !rec.Date.Equal(*f.Date) {
		return false
	}
	if f.BatchID != "" && rec.BatchID != f.BatchID {
		return false
	}
	return true
}

// Batches returns a sorted snapshot of every live batch: expiry date
// ascending, then id. Frozen batches are included with zero
// availability.
func (r *Registry) Batches() []Batch {
	live := r.batches.All()
	sortBatches(live)
	out := make([]Batch, len(live))
	for i, b := range live {
		out[i] = *b
	}
	return out
}

// BatchesByName returns the snapshot of one vaccine's batches, sorted
// by the same comparator as Batches. An absent or emptied group is
// reported as no-such-vaccine.
func (r *Registry) BatchesByName(vaccine string) ([]Batch, error) {
	group := r.batches.Group(vaccine)
	if len(group) == 0 {
		return nil, NoSuchVaccine(vaccine)
	}
	sorted := make([]*Batch, len(group))
	copy(sorted, group)
	sortBatches(sorted)
	out := make([]Batch, len(sorted))
	for i, b := range sorted {
		out[i] = *b
	}
	return out, nil
}

// FindBatch returns a snapshot of the batch with the given id.
func (r *Registry) FindBatch(id string) (Batch, bool) {
	b, ok := r.batches.Find(id)
	if !ok {
		return Batch{}, false
	}
	return *b, true
}

// Inoculations returns every record oldest-administered-first.
func (r *Registry) Inoculations() []Inoculation {
	recs := r.ledger.Oldest()
	out := make([]Inoculation, len(recs))
	for i, rec := range recs {
		out[i] = *rec
	}
	return out
}

// InoculationsFor returns one user's records in administration order.
// A user that was never administered to, or whose history was fully
// revoked, is reported as no-such-user.
func (r *Registry) InoculationsFor(user string) ([]Inoculation, error) {
	u, ok := r.users.Find(user)
	if !ok || u.Len() == 0 {
		return nil, NoSuchUser(user)
	}
	out := make([]Inoculation, 0, u.Len())
	for _, recID := range u.Records() {
		if rec, ok := r.ledger.Get(recID); ok {
			out = append(out, *rec)
		}
	}
	return out, nil
}

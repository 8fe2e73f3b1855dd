package registry

import (
	"slices"

	"vaxreg/internal/clock"
	"vaxreg/internal/hashindex"
)

// BatchStore owns every batch. The primary index is by batch id; name
// groups and the insertion-order listing are secondary structures
// holding ids only, so purging a batch can never leave a dangling
// reference.
type BatchStore struct {
	byID   *hashindex.Index[*Batch]
	groups *hashindex.Index[[]string]
	order  []string // batch ids, most recently registered first

	// registered counts every successful registration and is never
	// decremented, so the cap bounds lifetime registrations, not the
	// live population.
	registered int
	max        int
}

// NewBatchStore creates a store with the given hash table size and
// registration cap.
func NewBatchStore(tableSize, maxBatches int) *BatchStore {
	return &BatchStore{
		byID:   hashindex.New[*Batch](tableSize),
		groups: hashindex.New[[]string](tableSize),
		max:    maxBatches,
	}
}

// Register validates and inserts a new batch. The checks run in a fixed
// order (id format, name format, expiry date, quantity, duplicate id,
// capacity) and nothing is inserted unless all of them pass.
func (s *BatchStore) Register(id, vaccine string, validUntil clock.Date, doses int, today clock.Date) error {
	if !ValidBatchID(id) {
		return ErrInvalidBatch
	}
	if !ValidVaccineName(vaccine) {
		return ErrInvalidName
	}
	if !validUntil.Valid() || validUntil.Before(today) {
		return ErrInvalidDate
	}
	if doses <= 0 {
		return ErrInvalidQuantity
	}
	if _, ok := s.byID.Get(id); ok {
		return ErrDuplicateBatch
	}
	if s.registered >= s.max {
		return ErrTooManyBatches
	}

	b := &Batch{ID: id, Vaccine: vaccine, ValidUntil: validUntil, Doses: doses}
	s.byID.Put(id, b)

	group, _ := s.groups.Get(vaccine)
	s.groups.Put(vaccine, append(group, id))

	s.order = slices.Insert(s.order, 0, id)
	s.registered++
	return nil
}

// Find returns the batch with the given id.
func (s *BatchStore) Find(id string) (*Batch, bool) {
	return s.byID.Get(id)
}

// Group returns the live batches registered under a vaccine name, in
// group order.
func (s *BatchStore) Group(vaccine string) []*Batch {
	ids, _ := s.groups.Get(vaccine)
	out := make([]*Batch, 0, len(ids))
	for _, id := range ids {
		if b, ok := s.byID.Get(id); ok {
			out = append(out, b)
		}
	}
	return out
}

// All returns every live batch in listing order.
func (s *BatchStore) All() []*Batch {
	out := make([]*Batch, 0, len(s.order))
	for _, id := range s.order {
		if b, ok := s.byID.Get(id); ok {
			out = append(out, b)
		}
	}
	return out
}

// Retire withdraws a batch from future allocation and returns the doses
// used at call time. An unused batch is purged from every structure; a
// used batch is frozen in place with its capacity collapsed to the used
// count, so it stays listed with zero availability forever.
func (s *BatchStore) Retire(id string) (used int, purged bool, err error) {
	b, ok := s.byID.Get(id)
	if !ok {
		return 0, false, NoSuchBatch(id)
	}
	used = b.DosesUsed
	if used > 0 {
		b.Frozen = true
		b.Doses = b.DosesUsed
		return used, false, nil
	}

	s.byID.Delete(id)
	s.removeFromGroup(b.Vaccine, id)
	if i := slices.Index(s.order, id); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
	return 0, true, nil
}

// removeFromGroup drops id from its name group. Group order carries no
// external meaning, so swap-with-last is fine here.
func (s *BatchStore) removeFromGroup(vaccine, id string) {
	ids, ok := s.groups.Get(vaccine)
	if !ok {
		return
	}
	for i, gid := range ids {
		if gid == id {
			ids[i] = ids[len(ids)-1]
			s.groups.Put(vaccine, ids[:len(ids)-1])
			return
		}
	}
}

// Len returns the number of live batches.
func (s *BatchStore) Len() int {
	return s.byID.Len()
}

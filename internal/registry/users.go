package registry

import "vaxreg/internal/hashindex"

// UserStore holds per-user inoculation histories. Users are created
// lazily on first administration and never deleted, even when revoking
// empties their history.
type UserStore struct {
	byName *hashindex.Index[*User]
}

// NewUserStore creates a store with the given hash table size.
func NewUserStore(tableSize int) *UserStore {
	return &UserStore{byName: hashindex.New[*User](tableSize)}
}

// Find returns the user with the given name.
func (s *UserStore) Find(name string) (*User, bool) {
	return s.byName.Get(name)
}

// Ensure returns the user with the given name, creating it if absent.
func (s *UserStore) Ensure(name string) *User {
	if u, ok := s.byName.Get(name); ok {
		return u
	}
	u := &User{Name: name}
	s.byName.Put(name, u)
	return u
}

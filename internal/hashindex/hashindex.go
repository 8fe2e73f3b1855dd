// Package hashindex implements the string-keyed lookup structure shared
// by every keyed collection in the registry: a fixed-size table with
// chained collision resolution and no dynamic resizing. The table size
// is a startup configuration value, not a growth parameter.
package hashindex

// Index is a chained hash table from string keys to values of type V.
type Index[V any] struct {
	buckets []*entry[V]
	size    int
}

type entry[V any] struct {
	key   string
	value V
	next  *entry[V]
}

// New creates an index with the given fixed bucket count. Sizes below 1
// are clamped to 1.
func New[V any](buckets int) *Index[V] {
	if buckets < 1 {
		buckets = 1
	}
	return &Index[V]{buckets: make([]*entry[V], buckets)}
}

// hash is djb2: seed 5381, h = h*33 + byte, wrapping unsigned.
func (ix *Index[V]) hash(key string) int {
	h := uint32(5381)
	for i := 0; i < len(key); i++ {
		h = h*33 + uint32(key[i])
	}
	return int(h % uint32(len(ix.buckets)))
}

// Get returns the value stored under key.
func (ix *Index[V]) Get(key string) (V, bool) {
	for e := ix.buckets[ix.hash(key)]; e != nil; e = e.next {
		if e.key == key {
			return e.value, true
		}
	}
	var zero V
	return zero, false
}

// Put stores value under key, replacing any existing entry.
func (ix *Index[V]) Put(key string, value V) {
	b := ix.hash(key)
	for e := ix.buckets[b]; e != nil; e = e.next {
		if e.key == key {
			e.value = value
			return
		}
	}
	ix.buckets[b] = &entry[V]{key: key, value: value, next: ix.buckets[b]}
	ix.size++
}

// Delete removes the entry under key and reports whether it existed.
func (ix *Index[V]) Delete(key string) bool {
	b := ix.hash(key)
	var prev *entry[V]
	for e := ix.buckets[b]; e != nil; e = e.next {
		if e.key == key {
			if prev == nil {
				ix.buckets[b] = e.next
			} else {
				prev.next = e.next
			}
			ix.size--
			return true
		}
		prev = e
	}
	return false
}

// Len returns the number of stored entries.
func (ix *Index[V]) Len() int {
	return ix.size
}

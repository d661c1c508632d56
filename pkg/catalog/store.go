package catalog

import (
	"sync/atomic"
)

// Store holds the live catalog snapshot. Request handlers read the snapshot
// without locking; a refresh builds a fully populated replacement and swaps
// it in atomically (never mutates in place).
type Store struct {
	snapshot atomic.Pointer[Snapshot]
}

func NewStore() *Store {
	s := &Store{}
	s.snapshot.Store(&Snapshot{})
	return s
}

// Snapshot returns the current immutable catalog view. Callers must not
// mutate the returned value.
func (s *Store) Snapshot() *Snapshot {
	return s.snapshot.Load()
}

// Swap installs a replacement snapshot.
func (s *Store) Swap(snap *Snapshot) {
	if snap == nil {
		snap = &Snapshot{}
	}
	s.snapshot.Store(snap)
}

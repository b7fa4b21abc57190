package txledger

import (
	"iter"
	"maps"
	"slices"
)

// Snapshot is the final, read-only state of every client account.
type Snapshot struct {
	accounts map[ClientID]Account
}

// newSnapshot takes ownership of the accounts.
func newSnapshot(acc accounts) *Snapshot {
	s := &Snapshot{accounts: make(map[ClientID]Account, len(acc))}
	for id, a := range acc {
		s.accounts[id] = *a
	}
	return s
}

// NewSnapshot creates a snapshot from a set of accounts. It is meant for
// tests and tools that need a Snapshot without running a Processor.
func NewSnapshot(accounts map[ClientID]Account) *Snapshot {
	return &Snapshot{accounts: maps.Clone(accounts)}
}

// Len returns the number of accounts.
func (s *Snapshot) Len() int { return len(s.accounts) }

// Account returns the client's account, and whether it exists.
func (s *Snapshot) Account(id ClientID) (Account, bool) {
	a, ok := s.accounts[id]
	return a, ok
}

// Clients returns an iterator over client ids in ascending order.
func (s *Snapshot) Clients() iter.Seq[ClientID] {
	return slices.Values(slices.Sorted(maps.Keys(s.accounts)))
}

// All returns an iterator over accounts in ascending client order.
func (s *Snapshot) All() iter.Seq2[ClientID, Account] {
	return func(yield func(ClientID, Account) bool) {
		for id := range s.Clients() {
			if !yield(id, s.accounts[id]) {
				return
			}
		}
	}
}

// Sum returns an account holding the sum of all the accounts funds. It is
// locked if any account is.
func (s *Snapshot) Sum() Account {
	var sum Account
	for _, a := range s.accounts {
		sum.Available = sum.Available.Add(a.Available)
		sum.Held = sum.Held.Add(a.Held)
		sum.Locked = sum.Locked || a.Locked
	}
	return sum
}

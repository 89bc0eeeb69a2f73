// Package session holds the client state for the lifetime of one run.
// Nothing here survives a restart.
package session

import (
	"sync"

	"github.com/Calphius18/service-provider/internal/catalog"
)

// Store holds the fetched provider collection and the bookings confirmed in
// this session. Mutations are serialized: bubbletea commands run on their
// own goroutines, so "replace providers" and "append booking" must not
// interleave.
type Store struct {
	mu        sync.RWMutex
	providers []catalog.Provider
	bookings  []catalog.Booking
}

func New() *Store {
	return &Store{}
}

// SetProviders replaces the provider collection wholesale. Called after a
// successful fetch; a failed fetch leaves the previous collection in place
// simply by never calling this.
func (s *Store) SetProviders(providers []catalog.Provider) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.providers = make([]catalog.Provider, len(providers))
	copy(s.providers, providers)
}

// MergeProvider upserts a single provider fetched by id, so a detail view
// reached directly still populates the shared collection.
func (s *Store) MergeProvider(p catalog.Provider) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.providers {
		if existing.ID == p.ID {
			s.providers[i] = p
			return
		}
	}
	s.providers = append(s.providers, p)
}

// Providers returns a copy of the current provider snapshot.
func (s *Store) Providers() []catalog.Provider {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]catalog.Provider, len(s.providers))
	copy(out, s.providers)
	return out
}

// ProviderByID looks up a provider in the current snapshot.
func (s *Store) ProviderByID(id int64) (catalog.Provider, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.providers {
		if p.ID == id {
			return p, true
		}
	}
	return catalog.Provider{}, false
}

// AddBooking appends a server-confirmed booking. The store performs no
// deduplication; callers invoke this once per successful confirmation.
func (s *Store) AddBooking(b catalog.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings = append(s.bookings, b)
}

// Bookings returns a copy of this session's bookings in confirmation order.
func (s *Store) Bookings() []catalog.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]catalog.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

package catalog

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// ErrNotFound indicates the requested medicine id is absent from the store.
var ErrNotFound = errors.New("catalog: medicine not found")

// ErrDuplicateID indicates a create collided with an existing medicine id.
var ErrDuplicateID = errors.New("catalog: duplicate medicine id")

// Store owns the authoritative medicine collection for one session.
// Iteration order is insertion order; updates keep their position.
type Store struct {
	mu    sync.Mutex
	items []Medicine
}

// NewStore builds a store pre-populated with the provided records.
func NewStore(seed []Medicine) *Store {
	items := make([]Medicine, 0, len(seed))
	for _, m := range seed {
		items = append(items, m.Clone())
	}
	return &Store{items: items}
}

// Create appends a medicine. A blank id is assigned; a colliding id fails
// with ErrDuplicateID and leaves the store untouched.
func (s *Store) Create(m Medicine) (Medicine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m.ID = strings.TrimSpace(m.ID)
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if s.indexOf(m.ID) >= 0 {
		return Medicine{}, ErrDuplicateID
	}
	stored := m.Clone()
	s.items = append(s.items, stored)
	return stored.Clone(), nil
}

// Update replaces the stored record in place, preserving its position in
// iteration order. The id is immutable and taken from the argument, not the
// record.
func (s *Store) Update(id string, m Medicine) (Medicine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return Medicine{}, ErrNotFound
	}
	m.ID = id
	s.items[idx] = m.Clone()
	return s.items[idx].Clone(), nil
}

// Delete removes the medicine. Existing cart lines referencing it are left
// alone; they keep the data snapshotted at add time.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return ErrNotFound
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	return nil
}

// Get returns the medicine with the given id.
func (s *Store) Get(id string) (Medicine, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return Medicine{}, false
	}
	return s.items[idx].Clone(), true
}

// List returns a snapshot of all medicines in store order.
func (s *Store) List() []Medicine {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Medicine, 0, len(s.items))
	for _, m := range s.items {
		out = append(out, m.Clone())
	}
	return out
}

// Len reports the number of active records.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *Store) indexOf(id string) int {
	for i, m := range s.items {
		if m.ID == id {
			return i
		}
	}
	return -1
}

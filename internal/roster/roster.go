// Package roster owns the list of people available for seat assignment.
// People carry a generated id, a required name and optional birth date and
// notes; seat occupancy lives in the ledger, never here.
package roster

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrEmptyName is returned when a person is added without a usable name.
var ErrEmptyName = errors.New("person name must not be empty")

// Person is one roster entry.  Identity is the ID, independent of any seat.
type Person struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	Notes     string     `json:"notes,omitempty"`
}

// Store holds the roster in insertion order.
type Store struct {
	people []Person
}

// NewStore returns an empty roster.
func NewStore() *Store { return &Store{} }

// FromPeople rebuilds a roster from deserialized entries, keeping order.
func FromPeople(people []Person) *Store {
	s := &Store{people: make([]Person, len(people))}
	copy(s.people, people)
	return s
}

// Add appends a person with a fresh id.  The name is trimmed and must be
// non-empty; birth date and notes are optional.
func (s *Store) Add(name string, birthDate *time.Time, notes string) (Person, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Person{}, ErrEmptyName
	}
	p := Person{
		ID:        uuid.NewString(),
		Name:      name,
		BirthDate: birthDate,
		Notes:     strings.TrimSpace(notes),
	}
	s.people = append(s.people, p)
	return p, nil
}

// Remove deletes a person by id and reports whether an entry was removed.
// Cascading the ledger unassign is the caller's job (the plan wires it).
func (s *Store) Remove(id string) bool {
	for i, p := range s.people {
		if p.ID == id {
			s.people = append(s.people[:i], s.people[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns a person by id.
func (s *Store) Get(id string) (Person, bool) {
	for _, p := range s.people {
		if p.ID == id {
			return p, true
		}
	}
	return Person{}, false
}

// People returns a copy of the roster in its current order.
func (s *Store) People() []Person {
	out := make([]Person, len(s.people))
	copy(out, s.people)
	return out
}

// Len returns the roster size.
func (s *Store) Len() int { return len(s.people) }

// SortByBirthDate orders the roster oldest first.  The sort is stable and
// people without a birth date keep their relative order at the end, matching
// the ordering rule used by automatic assignment.
func (s *Store) SortByBirthDate() {
	sort.SliceStable(s.people, func(i, j int) bool {
		a, b := s.people[i].BirthDate, s.people[j].BirthDate
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.Before(*b)
		}
	})
}

// Package plan aggregates the full configuration state of one bus layout:
// deck geometry, empty spaces, manual seat-number overrides, reserved
// guide/driver seats, the roster and the assignment ledger.  It is the single
// source of truth; numbering and the rendered view are always derived from it
// through the pure functions in the layout package.
package plan

import (
	"errors"
	"time"

	"github.com/adamovic6666/bus-layout-builder/internal/layout"
	"github.com/adamovic6666/bus-layout-builder/internal/ledger"
	"github.com/adamovic6666/bus-layout-builder/internal/roster"
)

// ErrUnknownSeat is returned when an operation names a SeatID that does not
// exist in the current geometry.
var ErrUnknownSeat = errors.New("seat does not exist in current geometry")

// ErrUnknownPerson is returned when an operation names a person that is not
// on the roster.
var ErrUnknownPerson = errors.New("person is not on the roster")

// Plan is the in-memory configuration state of one bus layout.
type Plan struct {
	Deck        layout.DeckConfig
	EmptySpaces layout.EmptySpaces
	Overrides   layout.Overrides
	GuideSeats  map[string]bool
	DriverSeats map[string]bool
	Roster      *roster.Store
	Ledger      *ledger.Ledger
}

// New returns a plan with the default single-deck geometry and no people.
func New() *Plan {
	return &Plan{
		Deck:        layout.DefaultConfig(),
		EmptySpaces: layout.EmptySpaces{},
		Overrides:   layout.Overrides{},
		GuideSeats:  map[string]bool{},
		DriverSeats: map[string]bool{},
		Roster:      roster.NewStore(),
		Ledger:      ledger.New(),
	}
}

// Assignable reports whether a seat may receive a person: it must exist in
// the geometry, not be marked as empty space and not be reserved for the
// tour guide or the driver.  Reserved seats are blocked unconditionally,
// including as move/swap targets.
func (p *Plan) Assignable(seatID string) bool {
	if !layout.SeatExists(p.Deck, seatID) {
		return false
	}
	if p.EmptySpaces[seatID] {
		return false
	}
	if p.GuideSeats[seatID] || p.DriverSeats[seatID] {
		return false
	}
	return true
}

// Labels returns the final display label per existing, non-empty seat.
func (p *Plan) Labels() map[string]string {
	return layout.Labels(p.Deck, p.EmptySpaces, p.Overrides)
}

// SetDeckConfig validates and installs a new geometry, then prunes every
// piece of per-seat state that points at a seat the new geometry no longer
// has: empty-space marks, overrides, special-seat marks and ledger entries.
func (p *Plan) SetDeckConfig(cfg layout.DeckConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	p.Deck = cfg
	for id := range p.EmptySpaces {
		if !layout.SeatExists(cfg, id) {
			delete(p.EmptySpaces, id)
		}
	}
	for id := range p.Overrides {
		if !layout.SeatExists(cfg, id) {
			delete(p.Overrides, id)
		}
	}
	for id := range p.GuideSeats {
		if !layout.SeatExists(cfg, id) {
			delete(p.GuideSeats, id)
		}
	}
	for id := range p.DriverSeats {
		if !layout.SeatExists(cfg, id) {
			delete(p.DriverSeats, id)
		}
	}
	p.Ledger.RetainSeats(func(id string) bool { return layout.SeatExists(cfg, id) })
	return nil
}

// MarkEmpty flags a seat as empty space.  Any occupant is unassigned, since
// an empty slot cannot hold a person.
func (p *Plan) MarkEmpty(seatID string) error {
	if !layout.SeatExists(p.Deck, seatID) {
		return ErrUnknownSeat
	}
	p.EmptySpaces[seatID] = true
	p.Ledger.Unassign(seatID)
	return nil
}

// UnmarkEmpty restores a seat.  Numbering recomputes from geometry alone, so
// the prior scheme comes back deterministically.
func (p *Plan) UnmarkEmpty(seatID string) {
	delete(p.EmptySpaces, seatID)
}

// SetOverride records a manual display label for a seat; an empty value
// clears the override instead.
func (p *Plan) SetOverride(seatID, label string) error {
	if !layout.SeatExists(p.Deck, seatID) {
		return ErrUnknownSeat
	}
	if label == "" {
		delete(p.Overrides, seatID)
		return nil
	}
	p.Overrides[seatID] = label
	return nil
}

// SetGuideSeat toggles the tour-guide mark on a seat.  Marking a seat
// reserved evicts its occupant.
func (p *Plan) SetGuideSeat(seatID string, reserved bool) error {
	return p.setSpecial(p.GuideSeats, seatID, reserved)
}

// SetDriverSeat toggles the driver mark on a seat.
func (p *Plan) SetDriverSeat(seatID string, reserved bool) error {
	return p.setSpecial(p.DriverSeats, seatID, reserved)
}

func (p *Plan) setSpecial(set map[string]bool, seatID string, reserved bool) error {
	if !layout.SeatExists(p.Deck, seatID) {
		return ErrUnknownSeat
	}
	if reserved {
		set[seatID] = true
		p.Ledger.Unassign(seatID)
	} else {
		delete(set, seatID)
	}
	return nil
}

// Assign seats a roster person on seatID (click or drop on a free seat).
func (p *Plan) Assign(seatID, personID string) error {
	if _, ok := p.Roster.Get(personID); !ok {
		return ErrUnknownPerson
	}
	return p.Ledger.Assign(seatID, personID, p.Assignable)
}

// MoveOrSwap relocates a seated person via drag and drop; an occupied target
// swaps occupants.
func (p *Plan) MoveOrSwap(fromSeatID, toSeatID, personID string) error {
	return p.Ledger.MoveOrSwap(fromSeatID, toSeatID, personID, p.Assignable)
}

// Unassign frees a seat; idempotent.
func (p *Plan) Unassign(seatID string) {
	p.Ledger.Unassign(seatID)
}

// AutoAssign seats every unassigned roster person oldest first onto the free
// assignable seats in numbering order.  Returns the count assigned.
func (p *Plan) AutoAssign() int {
	var seats []string
	for _, id := range layout.EnumerateSeats(p.Deck, p.EmptySpaces) {
		if p.Assignable(id) {
			seats = append(seats, id)
		}
	}
	people := p.Roster.People()
	candidates := make([]ledger.Candidate, len(people))
	for i, person := range people {
		candidates[i] = ledger.Candidate{PersonID: person.ID, BirthDate: person.BirthDate}
	}
	return p.Ledger.AutoAssign(seats, candidates)
}

// AddPerson appends a roster entry.
func (p *Plan) AddPerson(name string, birthDate *time.Time, notes string) (roster.Person, error) {
	return p.Roster.Add(name, birthDate, notes)
}

// RemovePerson deletes a roster entry and cascade-unassigns their seat so no
// dangling ledger entry survives; a later person with the same name never
// inherits the freed seat.
func (p *Plan) RemovePerson(personID string) bool {
	if !p.Roster.Remove(personID) {
		return false
	}
	p.Ledger.UnassignPerson(personID)
	return true
}

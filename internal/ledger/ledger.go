// Package ledger maintains the bidirectional seat/person assignment map of a
// bus plan.  A uniqueness invariant holds after every operation: a seat holds
// at most one person and a person occupies at most one seat.  All operations are synchronous single-writer mutations; failure
// modes are validation rejections, never partial updates.
package ledger

import "errors"

// ErrInvalidTarget is returned when an assignment names a seat that cannot
// receive a person: an empty space, a reserved guide/driver seat, or a slot
// that does not exist in the current geometry.
var ErrInvalidTarget = errors.New("seat is not a valid assignment target")

// SeatCheck reports whether a seat may receive an assignment.  The plan layer
// supplies it so the ledger itself stays independent of geometry.
type SeatCheck func(seatID string) bool

// Ledger is the assignment map.  Both directions are kept in lockstep so
// occupancy lookups by seat and by person are O(1).
type Ledger struct {
	bySeat   map[string]string // seatID -> personID
	byPerson map[string]string // personID -> seatID
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{
		bySeat:   make(map[string]string),
		byPerson: make(map[string]string),
	}
}

// Occupant returns the person sitting on a seat, if any.
func (l *Ledger) Occupant(seatID string) (string, bool) {
	p, ok := l.bySeat[seatID]
	return p, ok
}

// SeatOf returns the seat a person occupies, if any.
func (l *Ledger) SeatOf(personID string) (string, bool) {
	s, ok := l.byPerson[personID]
	return s, ok
}

// Len returns the number of occupied seats.
func (l *Ledger) Len() int { return len(l.bySeat) }

// Entries returns a copy of the seat-to-person map for serialization.
func (l *Ledger) Entries() map[string]string {
	out := make(map[string]string, len(l.bySeat))
	for k, v := range l.bySeat {
		out[k] = v
	}
	return out
}

// set records the pair in both directions, displacing whatever either
// key previously pointed at.  Callers handle eviction semantics.
func (l *Ledger) set(seatID, personID string) {
	l.bySeat[seatID] = personID
	l.byPerson[personID] = seatID
}

// remove drops the entry for a seat from both directions.
func (l *Ledger) remove(seatID string) {
	if p, ok := l.bySeat[seatID]; ok {
		delete(l.bySeat, seatID)
		delete(l.byPerson, p)
	}
}

// Assign seats a person on seatID with move semantics: if the person already
// occupies another seat that entry is removed first, and a different person
// already on seatID is evicted to unassigned.  Returns ErrInvalidTarget when
// assignable rejects the seat; the ledger is unchanged on error.
func (l *Ledger) Assign(seatID, personID string, assignable SeatCheck) error {
	if assignable != nil && !assignable(seatID) {
		return ErrInvalidTarget
	}
	if prev, ok := l.byPerson[personID]; ok && prev != seatID {
		l.remove(prev)
	}
	l.remove(seatID)
	l.set(seatID, personID)
	return nil
}

// MoveOrSwap relocates a person from one seat to another.  When the target is
// occupied by someone else, the two swap: the displaced occupant lands on the
// origin seat.  The operation is atomic; on ErrInvalidTarget nothing has
// changed, and no third seat is ever touched.
func (l *Ledger) MoveOrSwap(fromSeatID, toSeatID, personID string, assignable SeatCheck) error {
	if assignable != nil && !assignable(toSeatID) {
		return ErrInvalidTarget
	}
	if fromSeatID == toSeatID {
		return nil
	}
	target, occupied := l.bySeat[toSeatID]
	l.remove(fromSeatID)
	l.remove(toSeatID)
	l.set(toSeatID, personID)
	if occupied && target != personID {
		l.set(fromSeatID, target)
	}
	return nil
}

// Unassign frees a seat.  Unassigning an already-free seat is a no-op.
func (l *Ledger) Unassign(seatID string) {
	l.remove(seatID)
}

// UnassignPerson frees whatever seat a person occupies.  Used when a person
// is removed from the roster so no dangling entry survives them.
func (l *Ledger) UnassignPerson(personID string) {
	if seat, ok := l.byPerson[personID]; ok {
		l.remove(seat)
	}
}

// RetainSeats drops every entry whose seat is not accepted by keep.  The plan
// layer calls this after a geometry change removes seats from the bus.
func (l *Ledger) RetainSeats(keep SeatCheck) {
	for seat := range l.bySeat {
		if !keep(seat) {
			l.remove(seat)
		}
	}
}

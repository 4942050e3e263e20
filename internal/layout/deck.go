// Package layout resolves bus deck geometry into ordered seat slots and
// computes sequential seat numbers over that geometry.  All functions are
// pure: given the same DeckConfig and empty-space set they return the same
// result on every call, so numbering can be recomputed after any mutation
// without drift between the numbering and rendering paths.
package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// Deck identifies one of the two seating levels of a bus.
type Deck int

const (
	DeckMain  Deck = iota // main (lower) deck
	DeckUpper             // upper deck, present only when DeckConfig.HasUpperDeck
)

// Standard row width; the main deck's last row may widen to five seats.
const standardRowWidth = 4

// DeckConfig describes the geometry of a bus.  Row numbers are 1-based.
// Entrance and table markers are keyed per deck: EntranceRows and TableRows
// apply to the main deck, UpperEntranceRows to the upper deck.  A row is at
// most one of table, entrance or normal; Validate enforces this.
//
// Fields:
//
//	Rows              number of rows on the main deck (at least 1)
//	LastRowSeatCount  seat count of the main deck's last row (4 or 5)
//	HasUpperDeck      whether the bus has an upper deck
//	UpperRows         number of rows on the upper deck (at least 1 when present)
//	EntranceRows      main-deck rows whose C/D columns are a door gap
//	TableRows         main-deck rows fully replaced by two table placeholders
//	UpperEntranceRows upper-deck rows with the same door-gap rule
type DeckConfig struct {
	Rows              int
	LastRowSeatCount  int
	HasUpperDeck      bool
	UpperRows         int
	EntranceRows      map[int]bool
	TableRows         map[int]bool
	UpperEntranceRows map[int]bool
}

// EmptySpaces marks seat slots that exist geometrically but hold no seat
// (doors, toilets, luggage).  Marked slots are excluded from numbering and
// from assignment.
type EmptySpaces map[string]bool

// Overrides maps a SeatID to a manually entered display label that supersedes
// the computed sequential number.
type Overrides map[string]string

// DefaultConfig returns the geometry a fresh plan starts with: a single deck
// of twelve rows with a four-seat last row and no special rows.
func DefaultConfig() DeckConfig {
	return DeckConfig{
		Rows:              12,
		LastRowSeatCount:  standardRowWidth,
		UpperRows:         0,
		EntranceRows:      map[int]bool{},
		TableRows:         map[int]bool{},
		UpperEntranceRows: map[int]bool{},
	}
}

// Validate checks the structural invariants of the configuration: positive
// row counts, a last-row width of 4 or 5, special-row markers within range
// and no row marked both table and entrance.
func (c DeckConfig) Validate() error {
	if c.Rows < 1 {
		return fmt.Errorf("rows must be at least 1, got %d", c.Rows)
	}
	if c.LastRowSeatCount != 4 && c.LastRowSeatCount != 5 {
		return fmt.Errorf("last row seat count must be 4 or 5, got %d", c.LastRowSeatCount)
	}
	if c.HasUpperDeck && c.UpperRows < 1 {
		return fmt.Errorf("upper deck rows must be at least 1, got %d", c.UpperRows)
	}
	for r := range c.EntranceRows {
		if r < 1 || r > c.Rows {
			return fmt.Errorf("entrance row %d outside deck (1..%d)", r, c.Rows)
		}
		if c.TableRows[r] {
			return fmt.Errorf("row %d marked both entrance and table", r)
		}
	}
	for r := range c.TableRows {
		if r < 1 || r > c.Rows {
			return fmt.Errorf("table row %d outside deck (1..%d)", r, c.Rows)
		}
	}
	for r := range c.UpperEntranceRows {
		if !c.HasUpperDeck {
			return fmt.Errorf("upper entrance row %d set without an upper deck", r)
		}
		if r < 1 || r > c.UpperRows {
			return fmt.Errorf("upper entrance row %d outside deck (1..%d)", r, c.UpperRows)
		}
	}
	return nil
}

// rowWidth returns the number of columns a row carries before entrance
// replacement.  Only the main deck's final row may deviate from four.
func (c DeckConfig) rowWidth(deck Deck, row int) int {
	if deck == DeckMain && row == c.Rows {
		return c.LastRowSeatCount
	}
	return standardRowWidth
}

// SeatID builds the stable string key for a seat slot.  Main-deck seats read
// "<row><column>" (3B); upper-deck seats carry a U prefix (U2A).
func SeatID(deck Deck, row int, col byte) string {
	if deck == DeckUpper {
		return "U" + strconv.Itoa(row) + string(col)
	}
	return strconv.Itoa(row) + string(col)
}

// ParseSeatID splits a SeatID back into deck, row and column.  The second
// return value is false when the string is not a well-formed SeatID.
func ParseSeatID(id string) (deck Deck, row int, col byte, ok bool) {
	s := strings.TrimSpace(id)
	deck = DeckMain
	if strings.HasPrefix(s, "U") {
		deck = DeckUpper
		s = s[1:]
	}
	if len(s) < 2 {
		return 0, 0, 0, false
	}
	col = s[len(s)-1]
	if col < 'A' || col > 'E' {
		return 0, 0, 0, false
	}
	row, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || row < 1 {
		return 0, 0, 0, false
	}
	return deck, row, col, true
}

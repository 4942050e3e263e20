package plan

import (
	"sort"

	"github.com/adamovic6666/bus-layout-builder/internal/layout"
	"github.com/adamovic6666/bus-layout-builder/internal/ledger"
	"github.com/adamovic6666/bus-layout-builder/internal/roster"
)

// Document is the wire/storage form of a plan.  In-memory sets become sorted
// lists and maps become JSON objects; Snapshot and FromDocument round-trip
// without loss for every SeatID key.
type Document struct {
	Rows              int               `json:"rows"`
	LastRowSeatCount  int               `json:"last_row_seat_count"`
	HasUpperDeck      bool              `json:"has_upper_deck"`
	UpperRows         int               `json:"upper_rows,omitempty"`
	EntranceRows      []int             `json:"entrance_rows,omitempty"`
	TableRows         []int             `json:"table_rows,omitempty"`
	UpperEntranceRows []int             `json:"upper_entrance_rows,omitempty"`
	EmptySpaces       []string          `json:"empty_spaces,omitempty"`
	Overrides         map[string]string `json:"seat_number_overrides,omitempty"`
	GuideSeats        []string          `json:"guide_seats,omitempty"`
	DriverSeats       []string          `json:"driver_seats,omitempty"`
	People            []roster.Person   `json:"people,omitempty"`
	Assignments       map[string]string `json:"assignments,omitempty"`
}

func sortedInts(set map[int]bool) []int {
	if len(set) == 0 {
		return nil
	}
	out := make([]int, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

func sortedStrings(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func intSet(list []int) map[int]bool {
	m := make(map[int]bool, len(list))
	for _, v := range list {
		m[v] = true
	}
	return m
}

func stringSet(list []string) map[string]bool {
	m := make(map[string]bool, len(list))
	for _, v := range list {
		m[v] = true
	}
	return m
}

// Snapshot serializes the plan into its storable document form.
func (p *Plan) Snapshot() Document {
	overrides := make(map[string]string, len(p.Overrides))
	for k, v := range p.Overrides {
		overrides[k] = v
	}
	return Document{
		Rows:              p.Deck.Rows,
		LastRowSeatCount:  p.Deck.LastRowSeatCount,
		HasUpperDeck:      p.Deck.HasUpperDeck,
		UpperRows:         p.Deck.UpperRows,
		EntranceRows:      sortedInts(p.Deck.EntranceRows),
		TableRows:         sortedInts(p.Deck.TableRows),
		UpperEntranceRows: sortedInts(p.Deck.UpperEntranceRows),
		EmptySpaces:       sortedStrings(p.EmptySpaces),
		Overrides:         overrides,
		GuideSeats:        sortedStrings(p.GuideSeats),
		DriverSeats:       sortedStrings(p.DriverSeats),
		People:            p.Roster.People(),
		Assignments:       p.Ledger.Entries(),
	}
}

// FromDocument reconstructs a plan from its serialized form.  The geometry is
// validated; assignments are replayed through the ledger so the uniqueness
// invariant holds even for hand-edited documents (later entries win).
func FromDocument(doc Document) (*Plan, error) {
	cfg := layout.DeckConfig{
		Rows:              doc.Rows,
		LastRowSeatCount:  doc.LastRowSeatCount,
		HasUpperDeck:      doc.HasUpperDeck,
		UpperRows:         doc.UpperRows,
		EntranceRows:      intSet(doc.EntranceRows),
		TableRows:         intSet(doc.TableRows),
		UpperEntranceRows: intSet(doc.UpperEntranceRows),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	overrides := make(layout.Overrides, len(doc.Overrides))
	for k, v := range doc.Overrides {
		overrides[k] = v
	}
	p := &Plan{
		Deck:        cfg,
		EmptySpaces: layout.EmptySpaces(stringSet(doc.EmptySpaces)),
		Overrides:   overrides,
		GuideSeats:  stringSet(doc.GuideSeats),
		DriverSeats: stringSet(doc.DriverSeats),
		Roster:      roster.FromPeople(doc.People),
		Ledger:      ledger.New(),
	}
	seatIDs := make([]string, 0, len(doc.Assignments))
	for seatID := range doc.Assignments {
		seatIDs = append(seatIDs, seatID)
	}
	sort.Strings(seatIDs)
	for _, seatID := range seatIDs {
		personID := doc.Assignments[seatID]
		if _, onRoster := p.Roster.Get(personID); !onRoster {
			continue
		}
		if err := p.Ledger.Assign(seatID, personID, p.Assignable); err != nil {
			continue
		}
	}
	return p, nil
}

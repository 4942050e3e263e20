package handler // handler builds the derived JSON views served to clients

import (
	"github.com/adamovic6666/bus-layout-builder/internal/layout"
	"github.com/adamovic6666/bus-layout-builder/internal/plan"
	"github.com/adamovic6666/bus-layout-builder/internal/roster"
)

// slotView is one rendered position of a row.  Kind is "seat", "empty",
// "entrance" or "table"; Label and occupant fields are set for seats only.
type slotView struct {
	Kind       string `json:"kind"`
	SeatID     string `json:"seat_id,omitempty"`
	Label      string `json:"label,omitempty"`
	PersonID   string `json:"person_id,omitempty"`
	PersonName string `json:"person_name,omitempty"`
	Guide      bool   `json:"guide,omitempty"`
	Driver     bool   `json:"driver,omitempty"`
}

// rowView is one rendered row of a deck.
type rowView struct {
	Row   int        `json:"row"`
	Slots []slotView `json:"slots"`
}

// deckView groups the rendered rows of one deck.
type deckView struct {
	Deck string    `json:"deck"` // "main" or "upper"
	Rows []rowView `json:"rows"`
}

// planView is the full derived view of a plan: the rendered decks plus the
// roster with seat references, ready for drag-and-drop clients and for the
// export collaborator's snapshot.
type planView struct {
	Decks  []deckView   `json:"decks"`
	People []personView `json:"people"`
}

type personView struct {
	roster.Person
	SeatID string `json:"seat_id,omitempty"`
}

var slotKindNames = map[layout.SlotKind]string{
	layout.SlotSeat:        "seat",
	layout.SlotEmpty:       "empty",
	layout.SlotEntranceGap: "entrance",
	layout.SlotTableGap:    "table",
}

// buildPlanView renders the current derived state of a plan.  It walks the
// same slot sequences the numbering engine walks, so labels can never drift
// from what ComputeNumbers produced.
func buildPlanView(p *plan.Plan) planView {
	labels := p.Labels()
	names := make(map[string]string, p.Roster.Len())
	for _, person := range p.Roster.People() {
		names[person.ID] = person.Name
	}

	renderDeck := func(deck layout.Deck, name string, rows int) deckView {
		dv := deckView{Deck: name, Rows: make([]rowView, 0, rows)}
		for row := 1; row <= rows; row++ {
			rv := rowView{Row: row}
			for _, s := range layout.ResolveRow(p.Deck, p.EmptySpaces, deck, row) {
				sv := slotView{Kind: slotKindNames[s.Kind], SeatID: s.SeatID}
				if s.Kind == layout.SlotSeat {
					sv.Label = labels[s.SeatID]
					sv.Guide = p.GuideSeats[s.SeatID]
					sv.Driver = p.DriverSeats[s.SeatID]
					if pid, ok := p.Ledger.Occupant(s.SeatID); ok {
						sv.PersonID = pid
						sv.PersonName = names[pid]
					}
				}
				rv.Slots = append(rv.Slots, sv)
			}
			dv.Rows = append(dv.Rows, rv)
		}
		return dv
	}

	view := planView{Decks: []deckView{renderDeck(layout.DeckMain, "main", p.Deck.Rows)}}
	if p.Deck.HasUpperDeck {
		view.Decks = append(view.Decks, renderDeck(layout.DeckUpper, "upper", p.Deck.UpperRows))
	}

	view.People = make([]personView, 0, p.Roster.Len())
	for _, person := range p.Roster.People() {
		pv := personView{Person: person}
		if seat, ok := p.Ledger.SeatOf(person.ID); ok {
			pv.SeatID = seat
		}
		view.People = append(view.People, pv)
	}
	return view
}

package handler

import (
	"testing"

	"github.com/adamovic6666/bus-layout-builder/internal/plan"
)

func buildSamplePlan(t *testing.T) *plan.Plan {
	t.Helper()
	p := plan.New()
	p.Deck.Rows = 3
	p.Deck.EntranceRows = map[int]bool{2: true}
	if err := p.MarkEmpty("1D"); err != nil {
		t.Fatalf("mark empty: %v", err)
	}
	if err := p.SetGuideSeat("1A", true); err != nil {
		t.Fatalf("guide seat: %v", err)
	}
	person, err := p.AddPerson("Ana", nil, "")
	if err != nil {
		t.Fatalf("add person: %v", err)
	}
	if err := p.Assign("1B", person.ID); err != nil {
		t.Fatalf("assign: %v", err)
	}
	return p
}

func TestBuildPlanViewRendersSlots(t *testing.T) {
	p := buildSamplePlan(t)
	view := buildPlanView(p)

	if len(view.Decks) != 1 {
		t.Fatalf("decks = %d, want 1", len(view.Decks))
	}
	rows := view.Decks[0].Rows
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}

	// Row 1: guide seat, occupied seat, plain seat, empty space.
	r1 := rows[0].Slots
	if len(r1) != 4 {
		t.Fatalf("row 1 slots = %d, want 4", len(r1))
	}
	if !r1[0].Guide || r1[0].Kind != "seat" {
		t.Fatalf("1A should render as a guide seat: %+v", r1[0])
	}
	if r1[1].PersonName != "Ana" {
		t.Fatalf("1B occupant = %q, want Ana", r1[1].PersonName)
	}
	if r1[3].Kind != "empty" || r1[3].SeatID != "1D" {
		t.Fatalf("1D should render as empty space: %+v", r1[3])
	}

	// Row 2 is an entrance row: two seats then a single door gap.
	r2 := rows[1].Slots
	if len(r2) != 3 || r2[2].Kind != "entrance" {
		t.Fatalf("entrance row rendered wrong: %+v", r2)
	}

	// Labels follow numbering: 1D is empty, so row 1 ends at 3 and 2A is 4.
	if r2[0].Label != "4" {
		t.Fatalf("2A label = %q, want \"4\"", r2[0].Label)
	}
}

func TestBuildPlanViewRosterSeatRefs(t *testing.T) {
	p := buildSamplePlan(t)
	view := buildPlanView(p)

	if len(view.People) != 1 {
		t.Fatalf("people = %d, want 1", len(view.People))
	}
	if view.People[0].SeatID != "1B" {
		t.Fatalf("seat ref = %q, want 1B", view.People[0].SeatID)
	}
}

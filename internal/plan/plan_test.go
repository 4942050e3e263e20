package plan

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"
)

func date(s string) *time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &d
}

func TestMarkEmptyShiftsNumberingAndUnassigns(t *testing.T) {
	p := New()
	p.Deck.Rows = 2
	person, _ := p.AddPerson("Ana", nil, "")
	if err := p.Assign("1C", person.ID); err != nil {
		t.Fatalf("assign: %v", err)
	}

	before := p.Labels()
	if before["1C"] != "3" || before["1D"] != "4" {
		t.Fatalf("unexpected initial numbering: %v", before)
	}

	if err := p.MarkEmpty("1C"); err != nil {
		t.Fatalf("mark empty: %v", err)
	}
	after := p.Labels()
	if _, ok := after["1C"]; ok {
		t.Fatalf("empty seat 1C still labeled")
	}
	if after["1D"] != "3" {
		t.Fatalf("1D = %q after marking 1C empty, want \"3\"", after["1D"])
	}
	if _, occupied := p.Ledger.Occupant("1C"); occupied {
		t.Fatalf("occupant survived on a seat marked empty")
	}

	p.UnmarkEmpty("1C")
	if restored := p.Labels(); !reflect.DeepEqual(restored, before) {
		t.Fatalf("unmarking did not restore numbering: %v vs %v", restored, before)
	}
}

func TestReservedSeatsBlockAssignmentAndSwapTargets(t *testing.T) {
	p := New()
	guide, _ := p.AddPerson("Guide", nil, "")
	traveler, _ := p.AddPerson("Traveler", nil, "")

	if err := p.SetGuideSeat("1A", true); err != nil {
		t.Fatalf("set guide seat: %v", err)
	}
	if err := p.Assign("1A", guide.ID); err == nil {
		t.Fatalf("assignment to a guide seat must be rejected")
	}
	if err := p.Assign("2A", traveler.ID); err != nil {
		t.Fatalf("assign: %v", err)
	}
	// Reserved seats are blocked as drop targets too.
	if err := p.MoveOrSwap("2A", "1A", traveler.ID); err == nil {
		t.Fatalf("move onto a guide seat must be rejected")
	}
	if seat, _ := p.Ledger.SeatOf(traveler.ID); seat != "2A" {
		t.Fatalf("traveler moved to %q despite rejected swap", seat)
	}
}

func TestReservingOccupiedSeatEvicts(t *testing.T) {
	p := New()
	person, _ := p.AddPerson("Ana", nil, "")
	_ = p.Assign("3B", person.ID)
	if err := p.SetDriverSeat("3B", true); err != nil {
		t.Fatalf("set driver seat: %v", err)
	}
	if _, seated := p.Ledger.SeatOf(person.ID); seated {
		t.Fatalf("occupant kept a seat reserved for the driver")
	}
}

func TestSetDeckConfigPrunesVanishedSeats(t *testing.T) {
	p := New()
	p.Deck.Rows = 6
	person, _ := p.AddPerson("Ana", nil, "")
	_ = p.Assign("6A", person.ID)
	_ = p.MarkEmpty("5B")
	_ = p.SetOverride("6D", "55")
	_ = p.SetGuideSeat("6C", true)

	cfg := p.Deck
	cfg.Rows = 4
	if err := p.SetDeckConfig(cfg); err != nil {
		t.Fatalf("set deck config: %v", err)
	}
	if _, seated := p.Ledger.SeatOf(person.ID); seated {
		t.Fatalf("assignment on removed row survived shrink")
	}
	if p.EmptySpaces["5B"] {
		t.Fatalf("empty-space mark on removed row survived shrink")
	}
	if _, ok := p.Overrides["6D"]; ok {
		t.Fatalf("override on removed row survived shrink")
	}
	if p.GuideSeats["6C"] {
		t.Fatalf("guide mark on removed row survived shrink")
	}
}

func TestRemovePersonCascadesAndNeverReoccupies(t *testing.T) {
	p := New()
	person, _ := p.AddPerson("Milan", date("1980-05-05"), "")
	_ = p.Assign("2C", person.ID)

	if !p.RemovePerson(person.ID) {
		t.Fatalf("remove returned false")
	}
	if _, occupied := p.Ledger.Occupant("2C"); occupied {
		t.Fatalf("ledger entry dangles after roster removal")
	}

	// A same-named person is a fresh identity and must not inherit the seat.
	again, _ := p.AddPerson("Milan", date("1980-05-05"), "")
	if seat, seated := p.Ledger.SeatOf(again.ID); seated {
		t.Fatalf("re-added person auto-reoccupied seat %q", seat)
	}
}

func TestAutoAssignUsesNumberingOrderAndSkipsReserved(t *testing.T) {
	p := New()
	p.Deck.Rows = 1
	_ = p.SetGuideSeat("1A", true)
	_ = p.MarkEmpty("1B")
	old, _ := p.AddPerson("old", date("1960-01-01"), "")
	young, _ := p.AddPerson("young", date("2000-01-01"), "")
	p.AddPerson("dateless", nil, "")

	if n := p.AutoAssign(); n != 2 {
		t.Fatalf("assigned %d, want 2", n)
	}
	if seat, _ := p.Ledger.SeatOf(old.ID); seat != "1C" {
		t.Fatalf("oldest got %q, want 1C (first free assignable seat)", seat)
	}
	if seat, _ := p.Ledger.SeatOf(young.ID); seat != "1D" {
		t.Fatalf("young got %q, want 1D", seat)
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	p := New()
	p.Deck.Rows = 5
	p.Deck.LastRowSeatCount = 5
	p.Deck.HasUpperDeck = true
	p.Deck.UpperRows = 3
	p.Deck.EntranceRows = map[int]bool{2: true}
	p.Deck.TableRows = map[int]bool{3: true}
	p.Deck.UpperEntranceRows = map[int]bool{1: true}
	_ = p.MarkEmpty("4A")
	_ = p.SetOverride("5E", "rear")
	_ = p.SetGuideSeat("1A", true)
	_ = p.SetDriverSeat("1B", true)
	ana, _ := p.AddPerson("Ana", date("1991-11-11"), "front, please")
	_, _ = p.AddPerson("Marko", nil, "")
	_ = p.Assign("U2B", ana.ID)

	doc := p.Snapshot()
	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Document
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	restored, err := FromDocument(back)
	if err != nil {
		t.Fatalf("from document: %v", err)
	}

	if !reflect.DeepEqual(restored.Snapshot(), doc) {
		t.Fatalf("round trip lost state:\n got %+v\nwant %+v", restored.Snapshot(), doc)
	}
	if seat, _ := restored.Ledger.SeatOf(ana.ID); seat != "U2B" {
		t.Fatalf("assignment lost in round trip, seat = %q", seat)
	}
	if !reflect.DeepEqual(restored.Labels(), p.Labels()) {
		t.Fatalf("derived labels diverge after round trip")
	}
}

func TestFromDocumentRejectsInvalidGeometry(t *testing.T) {
	doc := Document{Rows: 0, LastRowSeatCount: 4}
	if _, err := FromDocument(doc); err == nil {
		t.Fatalf("invalid geometry must be rejected")
	}
}

func TestFromDocumentDropsInvalidAssignments(t *testing.T) {
	p := New()
	p.Deck.Rows = 2
	ana, _ := p.AddPerson("Ana", nil, "")
	doc := p.Snapshot()
	doc.Assignments = map[string]string{
		"1A": ana.ID,     // valid
		"9Z": ana.ID,     // seat does not exist
		"2B": "ghost-id", // person not on roster
	}
	restored, err := FromDocument(doc)
	if err != nil {
		t.Fatalf("from document: %v", err)
	}
	if restored.Ledger.Len() != 1 {
		t.Fatalf("ledger has %d entries, want 1", restored.Ledger.Len())
	}
	if seat, _ := restored.Ledger.SeatOf(ana.ID); seat != "1A" {
		t.Fatalf("ana on %q, want 1A", seat)
	}
}

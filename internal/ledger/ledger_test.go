package ledger

import (
	"testing"
	"time"
)

// checkUnique fails the test when two seats map to the same person or the
// bidirectional indexes disagree.
func checkUnique(t *testing.T, l *Ledger) {
	t.Helper()
	seen := map[string]string{}
	for seat, person := range l.bySeat {
		if prev, ok := seen[person]; ok {
			t.Fatalf("person %s occupies both %s and %s", person, prev, seat)
		}
		seen[person] = seat
		if back, ok := l.byPerson[person]; !ok || back != seat {
			t.Fatalf("index mismatch: seat %s -> %s but person -> %s", seat, person, back)
		}
	}
	if len(l.byPerson) != len(l.bySeat) {
		t.Fatalf("index sizes diverge: %d seats vs %d persons", len(l.bySeat), len(l.byPerson))
	}
}

func TestAssignMoveSemantics(t *testing.T) {
	l := New()
	if err := l.Assign("1A", "p1", nil); err != nil {
		t.Fatalf("assign: %v", err)
	}
	// Same person to another seat: the first entry must disappear.
	if err := l.Assign("2B", "p1", nil); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if _, ok := l.Occupant("1A"); ok {
		t.Fatalf("p1 still on 1A after moving to 2B")
	}
	if p, _ := l.Occupant("2B"); p != "p1" {
		t.Fatalf("2B holds %q, want p1", p)
	}
	checkUnique(t, l)
}

func TestAssignEvictsOccupant(t *testing.T) {
	l := New()
	_ = l.Assign("1A", "p1", nil)
	_ = l.Assign("1A", "p2", nil)
	if p, _ := l.Occupant("1A"); p != "p2" {
		t.Fatalf("1A holds %q, want p2", p)
	}
	if _, seated := l.SeatOf("p1"); seated {
		t.Fatalf("evicted p1 should be unassigned")
	}
	checkUnique(t, l)
}

func TestAssignRejectsInvalidTarget(t *testing.T) {
	l := New()
	_ = l.Assign("1A", "p1", nil)
	blocked := func(seat string) bool { return seat != "1B" }
	if err := l.Assign("1B", "p2", blocked); err != ErrInvalidTarget {
		t.Fatalf("err = %v, want ErrInvalidTarget", err)
	}
	if l.Len() != 1 {
		t.Fatalf("ledger changed on rejected assign")
	}
}

func TestMoveOrSwapTrueSwap(t *testing.T) {
	l := New()
	_ = l.Assign("A", "P", nil)
	_ = l.Assign("B", "Q", nil)
	_ = l.Assign("C", "R", nil)

	if err := l.MoveOrSwap("A", "B", "P", nil); err != nil {
		t.Fatalf("moveOrSwap: %v", err)
	}
	if p, _ := l.Occupant("B"); p != "P" {
		t.Fatalf("B holds %q, want P", p)
	}
	if p, _ := l.Occupant("A"); p != "Q" {
		t.Fatalf("A holds %q, want Q (swap)", p)
	}
	if p, _ := l.Occupant("C"); p != "R" {
		t.Fatalf("third seat C was touched, holds %q", p)
	}
	checkUnique(t, l)
}

func TestMoveOrSwapToFreeSeat(t *testing.T) {
	l := New()
	_ = l.Assign("A", "P", nil)
	if err := l.MoveOrSwap("A", "B", "P", nil); err != nil {
		t.Fatalf("moveOrSwap: %v", err)
	}
	if _, ok := l.Occupant("A"); ok {
		t.Fatalf("A still occupied after move")
	}
	if p, _ := l.Occupant("B"); p != "P" {
		t.Fatalf("B holds %q, want P", p)
	}
	checkUnique(t, l)
}

func TestMoveOrSwapRejectedLeavesLedgerUnchanged(t *testing.T) {
	l := New()
	_ = l.Assign("A", "P", nil)
	_ = l.Assign("B", "Q", nil)
	blocked := func(string) bool { return false }
	if err := l.MoveOrSwap("A", "B", "P", blocked); err != ErrInvalidTarget {
		t.Fatalf("err = %v, want ErrInvalidTarget", err)
	}
	if p, _ := l.Occupant("A"); p != "P" {
		t.Fatalf("A changed on rejected swap")
	}
	if p, _ := l.Occupant("B"); p != "Q" {
		t.Fatalf("B changed on rejected swap")
	}
}

func TestUnassignIdempotent(t *testing.T) {
	l := New()
	_ = l.Assign("A", "P", nil)
	l.Unassign("A")
	l.Unassign("A") // second call must be a no-op
	if l.Len() != 0 {
		t.Fatalf("ledger not empty after unassign")
	}
	checkUnique(t, l)
}

func TestUniquenessUnderOperationSequence(t *testing.T) {
	l := New()
	ops := []func(){
		func() { _ = l.Assign("1A", "p1", nil) },
		func() { _ = l.Assign("1B", "p2", nil) },
		func() { _ = l.Assign("1B", "p1", nil) },
		func() { _ = l.MoveOrSwap("1B", "1A", "p1", nil) },
		func() { _ = l.Assign("2A", "p3", nil) },
		func() { _ = l.MoveOrSwap("2A", "1A", "p3", nil) },
		func() { l.Unassign("1B") },
		func() { _ = l.Assign("2D", "p3", nil) },
		func() { l.UnassignPerson("p1") },
	}
	for _, op := range ops {
		op()
		checkUnique(t, l)
	}
}

func date(s string) *time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &d
}

func TestAutoAssignOldestFirst(t *testing.T) {
	l := New()
	people := []Candidate{
		{PersonID: "born2000", BirthDate: date("2000-01-01")},
		{PersonID: "born1990", BirthDate: date("1990-01-01")},
		{PersonID: "unknown"},
	}
	n := l.AutoAssign([]string{"S1", "S2"}, people)
	if n != 2 {
		t.Fatalf("assigned %d, want 2", n)
	}
	if p, _ := l.Occupant("S1"); p != "born1990" {
		t.Fatalf("S1 holds %q, want born1990 (oldest first)", p)
	}
	if p, _ := l.Occupant("S2"); p != "born2000" {
		t.Fatalf("S2 holds %q, want born2000", p)
	}
	if _, seated := l.SeatOf("unknown"); seated {
		t.Fatalf("dateless person seated although seats were exhausted")
	}
	checkUnique(t, l)
}

func TestAutoAssignSkipsExistingState(t *testing.T) {
	l := New()
	_ = l.Assign("S1", "already", nil)
	people := []Candidate{
		{PersonID: "already", BirthDate: date("1980-01-01")},
		{PersonID: "new1", BirthDate: date("1995-05-05")},
	}
	n := l.AutoAssign([]string{"S1", "S2", "S3"}, people)
	if n != 1 {
		t.Fatalf("assigned %d, want 1", n)
	}
	if p, _ := l.Occupant("S1"); p != "already" {
		t.Fatalf("existing assignment on S1 was disturbed")
	}
	if p, _ := l.Occupant("S2"); p != "new1" {
		t.Fatalf("S2 holds %q, want new1", p)
	}
	checkUnique(t, l)
}

func TestAutoAssignDatelessKeepInputOrder(t *testing.T) {
	l := New()
	people := []Candidate{
		{PersonID: "x"},
		{PersonID: "dated", BirthDate: date("1970-01-01")},
		{PersonID: "y"},
	}
	n := l.AutoAssign([]string{"S1", "S2", "S3"}, people)
	if n != 3 {
		t.Fatalf("assigned %d, want 3", n)
	}
	if p, _ := l.Occupant("S1"); p != "dated" {
		t.Fatalf("S1 holds %q, want dated", p)
	}
	if p, _ := l.Occupant("S2"); p != "x" {
		t.Fatalf("S2 holds %q, want x (stable order)", p)
	}
	if p, _ := l.Occupant("S3"); p != "y" {
		t.Fatalf("S3 holds %q, want y (stable order)", p)
	}
}

func TestRetainSeats(t *testing.T) {
	l := New()
	_ = l.Assign("1A", "p1", nil)
	_ = l.Assign("U1A", "p2", nil)
	l.RetainSeats(func(seat string) bool { return seat[0] != 'U' })
	if _, ok := l.Occupant("U1A"); ok {
		t.Fatalf("upper-deck entry survived RetainSeats")
	}
	if p, _ := l.Occupant("1A"); p != "p1" {
		t.Fatalf("main-deck entry lost by RetainSeats")
	}
	checkUnique(t, l)
}

package layout

import (
	"reflect"
	"testing"
)

func baseConfig(rows int) DeckConfig {
	cfg := DefaultConfig()
	cfg.Rows = rows
	return cfg
}

func TestComputeNumbersSkipsEmptySpaces(t *testing.T) {
	cfg := baseConfig(2)
	empty := EmptySpaces{"1C": true}

	got := ComputeNumbers(cfg, empty)
	want := map[string]string{
		"1A": "1", "1B": "2", "1D": "3",
		"2A": "4", "2B": "5", "2C": "6", "2D": "7",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("numbers = %v, want %v", got, want)
	}
	if _, ok := got["1C"]; ok {
		t.Fatalf("empty seat 1C must not receive a number")
	}
}

func TestComputeNumbersDeterministic(t *testing.T) {
	cfg := baseConfig(6)
	cfg.HasUpperDeck = true
	cfg.UpperRows = 3
	cfg.EntranceRows = map[int]bool{2: true}
	cfg.TableRows = map[int]bool{4: true}
	empty := EmptySpaces{"3A": true, "U1D": true}

	first := ComputeNumbers(cfg, empty)
	second := ComputeNumbers(cfg, empty)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("recomputation changed the mapping: %v vs %v", first, second)
	}
}

func TestEntranceRowSkipsCAndD(t *testing.T) {
	cfg := baseConfig(2)
	cfg.EntranceRows = map[int]bool{1: true}

	slots := ResolveRow(cfg, nil, DeckMain, 1)
	kinds := make([]SlotKind, len(slots))
	for i, s := range slots {
		kinds[i] = s.Kind
	}
	want := []SlotKind{SlotSeat, SlotSeat, SlotEntranceGap}
	if !reflect.DeepEqual(kinds, want) {
		t.Fatalf("entrance row slots = %v, want %v", kinds, want)
	}

	nums := ComputeNumbers(cfg, nil)
	for id, n := range map[string]string{"1A": "1", "1B": "2", "2A": "3", "2B": "4", "2C": "5", "2D": "6"} {
		if nums[id] != n {
			t.Errorf("seat %s = %q, want %q", id, nums[id], n)
		}
	}
	if _, ok := nums["1C"]; ok {
		t.Errorf("1C is an entrance gap and must not be numbered")
	}
	if _, ok := nums["1D"]; ok {
		t.Errorf("1D is an entrance gap and must not be numbered")
	}
}

func TestTableRowReplacesSeating(t *testing.T) {
	cfg := baseConfig(3)
	cfg.TableRows = map[int]bool{2: true}

	slots := ResolveRow(cfg, nil, DeckMain, 2)
	if len(slots) != 2 || slots[0].Kind != SlotTableGap || slots[1].Kind != SlotTableGap {
		t.Fatalf("table row slots = %v, want two table gaps", slots)
	}

	nums := ComputeNumbers(cfg, nil)
	// Row 2 contributes nothing; row 3 continues directly after row 1.
	if nums["3A"] != "5" {
		t.Fatalf("3A = %q, want \"5\"", nums["3A"])
	}
}

func TestLastRowFiveSeats(t *testing.T) {
	cfg := baseConfig(2)
	cfg.LastRowSeatCount = 5

	slots := ResolveRow(cfg, nil, DeckMain, 2)
	if len(slots) != 5 {
		t.Fatalf("last row has %d slots, want 5", len(slots))
	}
	nums := ComputeNumbers(cfg, nil)
	if nums["2E"] != "9" {
		t.Fatalf("2E = %q, want \"9\"", nums["2E"])
	}
}

func TestUpperDeckContinuesNumbering(t *testing.T) {
	cfg := baseConfig(1)
	cfg.HasUpperDeck = true
	cfg.UpperRows = 1

	nums := ComputeNumbers(cfg, nil)
	want := map[string]string{
		"1A": "1", "1B": "2", "1C": "3", "1D": "4",
		"U1A": "5", "U1B": "6", "U1C": "7", "U1D": "8",
	}
	if !reflect.DeepEqual(nums, want) {
		t.Fatalf("numbers = %v, want %v", nums, want)
	}
}

func TestNoUpperDeckExcludesUpperSeats(t *testing.T) {
	cfg := baseConfig(2)
	nums := ComputeNumbers(cfg, nil)
	for id := range nums {
		if id[0] == 'U' {
			t.Fatalf("upper seat %s numbered on a single-deck bus", id)
		}
	}
	if SeatExists(cfg, "U1A") {
		t.Fatalf("U1A must not exist without an upper deck")
	}
}

func TestUnmarkingEmptyRestoresNumbering(t *testing.T) {
	cfg := baseConfig(3)
	before := ComputeNumbers(cfg, nil)
	marked := ComputeNumbers(cfg, EmptySpaces{"2B": true})
	if _, ok := marked["2B"]; ok {
		t.Fatalf("2B still numbered while marked empty")
	}
	if marked["2C"] != "6" {
		t.Fatalf("2C = %q after marking 2B empty, want \"6\"", marked["2C"])
	}
	after := ComputeNumbers(cfg, nil)
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("unmarking did not restore the prior numbering")
	}
}

func TestLabelsApplyOverrides(t *testing.T) {
	cfg := baseConfig(2)
	overrides := Overrides{
		"1A":  "15",       // numeric override
		"2D":  "guide",    // free-text override
		"9Z":  "ghost",    // not a seat, ignored
		"U1A": "upstairs", // no upper deck, ignored
	}
	labels := Labels(cfg, nil, overrides)
	if labels["1A"] != "15" {
		t.Errorf("1A = %q, want overridden \"15\"", labels["1A"])
	}
	if labels["2D"] != "guide" {
		t.Errorf("2D = %q, want overridden \"guide\"", labels["2D"])
	}
	if labels["1B"] != "2" {
		t.Errorf("1B = %q, want computed \"2\"", labels["1B"])
	}
	if _, ok := labels["9Z"]; ok {
		t.Errorf("override for nonexistent seat leaked into labels")
	}
}

func TestParseSeatID(t *testing.T) {
	cases := []struct {
		in   string
		deck Deck
		row  int
		col  byte
		ok   bool
	}{
		{"1A", DeckMain, 1, 'A', true},
		{"12E", DeckMain, 12, 'E', true},
		{"U3B", DeckUpper, 3, 'B', true},
		{"", 0, 0, 0, false},
		{"A", 0, 0, 0, false},
		{"1F", 0, 0, 0, false},
		{"0A", 0, 0, 0, false},
	}
	for _, tc := range cases {
		deck, row, col, ok := ParseSeatID(tc.in)
		if ok != tc.ok {
			t.Errorf("ParseSeatID(%q) ok = %v, want %v", tc.in, ok, tc.ok)
			continue
		}
		if ok && (deck != tc.deck || row != tc.row || col != tc.col) {
			t.Errorf("ParseSeatID(%q) = (%v,%d,%c), want (%v,%d,%c)", tc.in, deck, row, col, tc.deck, tc.row, tc.col)
		}
	}
}

func TestValidateRejectsConflicts(t *testing.T) {
	cfg := baseConfig(4)
	cfg.EntranceRows = map[int]bool{2: true}
	cfg.TableRows = map[int]bool{2: true}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("row marked both entrance and table must fail validation")
	}

	cfg = baseConfig(4)
	cfg.TableRows = map[int]bool{9: true}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("table row beyond deck range must fail validation")
	}

	cfg = baseConfig(4)
	cfg.LastRowSeatCount = 6
	if err := cfg.Validate(); err == nil {
		t.Fatalf("last row width 6 must fail validation")
	}
}

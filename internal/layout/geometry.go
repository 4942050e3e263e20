package layout

// SlotKind classifies one position in a resolved row.
type SlotKind int

const (
	SlotSeat        SlotKind = iota // a real seat, eligible for numbering and assignment
	SlotEmpty                       // a slot marked as empty space; keeps its SeatID but no seat
	SlotEntranceGap                 // the door gap replacing columns C and D of an entrance row
	SlotTableGap                    // one of the two table placeholders of a table row
)

// Slot is one position in a row's left-to-right sequence.  SeatID is set for
// SlotSeat and SlotEmpty; gap slots carry no identifier.
type Slot struct {
	Kind   SlotKind
	SeatID string
}

// ResolveRow enumerates the slots of one row, left to right.  The rules:
//
//   - A table row produces exactly two table placeholders and no seats.
//   - An entrance row keeps its seats except columns C and D, which collapse
//     into a single entrance gap.  The same rule feeds both numbering and
//     rendering so the two can never diverge.
//   - The main deck's last row is LastRowSeatCount wide; all other rows and
//     every upper-deck row are four wide.
//
// Rows outside the deck's range resolve to nil.
func ResolveRow(cfg DeckConfig, empty EmptySpaces, deck Deck, row int) []Slot {
	if row < 1 {
		return nil
	}
	switch deck {
	case DeckMain:
		if row > cfg.Rows {
			return nil
		}
		if cfg.TableRows[row] {
			return []Slot{{Kind: SlotTableGap}, {Kind: SlotTableGap}}
		}
	case DeckUpper:
		if !cfg.HasUpperDeck || row > cfg.UpperRows {
			return nil
		}
	default:
		return nil
	}

	entrance := false
	if deck == DeckMain {
		entrance = cfg.EntranceRows[row]
	} else {
		entrance = cfg.UpperEntranceRows[row]
	}

	width := cfg.rowWidth(deck, row)
	slots := make([]Slot, 0, width)
	for i := 0; i < width; i++ {
		col := byte('A' + i)
		if entrance && col == 'C' {
			// C and D collapse into one door gap.
			slots = append(slots, Slot{Kind: SlotEntranceGap})
			continue
		}
		if entrance && col == 'D' {
			continue
		}
		id := SeatID(deck, row, col)
		if empty[id] {
			slots = append(slots, Slot{Kind: SlotEmpty, SeatID: id})
		} else {
			slots = append(slots, Slot{Kind: SlotSeat, SeatID: id})
		}
	}
	return slots
}

// decks returns the deck iteration order: main first, then upper when present.
func (c DeckConfig) decks() []Deck {
	if c.HasUpperDeck {
		return []Deck{DeckMain, DeckUpper}
	}
	return []Deck{DeckMain}
}

// deckRows returns the row count of a deck under this configuration.
func (c DeckConfig) deckRows(deck Deck) int {
	if deck == DeckUpper {
		if !c.HasUpperDeck {
			return 0
		}
		return c.UpperRows
	}
	return c.Rows
}

// EnumerateSeats walks the whole bus in numbering order (main deck rows
// ascending, then upper deck; left to right within a row) and returns the
// SeatIDs of real, non-empty seats.  This is the seat order used by
// sequential numbering and by automatic assignment.
func EnumerateSeats(cfg DeckConfig, empty EmptySpaces) []string {
	var out []string
	for _, d := range cfg.decks() {
		for row := 1; row <= cfg.deckRows(d); row++ {
			for _, s := range ResolveRow(cfg, empty, d, row) {
				if s.Kind == SlotSeat {
					out = append(out, s.SeatID)
				}
			}
		}
	}
	return out
}

// SeatExists reports whether id names a seat slot in the current geometry,
// marked empty or not.  Gap positions and out-of-range ids do not exist.
func SeatExists(cfg DeckConfig, id string) bool {
	deck, row, col, ok := ParseSeatID(id)
	if !ok {
		return false
	}
	switch deck {
	case DeckMain:
		if row > cfg.Rows || cfg.TableRows[row] {
			return false
		}
		if cfg.EntranceRows[row] && (col == 'C' || col == 'D') {
			return false
		}
	case DeckUpper:
		if !cfg.HasUpperDeck || row > cfg.UpperRows {
			return false
		}
		if cfg.UpperEntranceRows[row] && (col == 'C' || col == 'D') {
			return false
		}
	}
	return int(col-'A') < cfg.rowWidth(deck, row)
}

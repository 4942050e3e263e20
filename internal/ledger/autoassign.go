package ledger

import (
	"sort"
	"time"
)

// Candidate is a person offered to AutoAssign.  BirthDate may be nil when the
// roster does not know it.
type Candidate struct {
	PersonID  string
	BirthDate *time.Time
}

// AutoAssign pairs unassigned people with free seats.  seats must already be
// filtered to assignable targets and arrive in the bus's natural enumeration
// order; people are sorted oldest first with a stable sort, so people without
// a birth date keep their relative input order and sort after everyone with
// one.  Existing assignments are never touched: seated people and occupied
// seats are skipped.  Returns the number of assignments made.
func (l *Ledger) AutoAssign(seats []string, people []Candidate) int {
	free := make([]string, 0, len(seats))
	for _, s := range seats {
		if _, occupied := l.bySeat[s]; !occupied {
			free = append(free, s)
		}
	}

	waiting := make([]Candidate, 0, len(people))
	for _, p := range people {
		if _, seated := l.byPerson[p.PersonID]; !seated {
			waiting = append(waiting, p)
		}
	}
	sort.SliceStable(waiting, func(i, j int) bool {
		a, b := waiting[i].BirthDate, waiting[j].BirthDate
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.Before(*b)
		}
	})

	n := 0
	for ; n < len(free) && n < len(waiting); n++ {
		l.set(free[n], waiting[n].PersonID)
	}
	return n
}

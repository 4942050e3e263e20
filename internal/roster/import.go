package roster

import (
	"strings"
	"time"
)

// Header aliases accepted when resolving columns of an imported table.  The
// comparison is case-insensitive after trimming; unrecognized columns are
// ignored entirely.
var (
	nameAliases  = []string{"name", "full name", "full_name", "fullname", "passenger", "person", "ime", "ime i prezime"}
	birthAliases = []string{"birth date", "birth_date", "birthdate", "date of birth", "dob", "born", "datum rodjenja", "datum"}
	notesAliases = []string{"notes", "note", "comment", "comments", "napomena"}
)

// Date layouts tried in order when parsing a birth-date cell.
var birthLayouts = []string{
	"2006-01-02",
	"02.01.2006",
	"2.1.2006",
	"02/01/2006",
	"01/02/2006",
	"2006/01/02",
}

func columnIndex(header []string, aliases []string) int {
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		for _, a := range aliases {
			if h == a {
				return i
			}
		}
	}
	return -1
}

func parseBirthDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range birthLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return &d
		}
	}
	return nil
}

// ImportRecords bulk-adds people from a loosely-typed table.  The header row
// must expose a name-like column through one of the recognized aliases;
// without one nothing is imported.  Rows whose name cell is empty are
// dropped silently, as are unparseable birth dates (the person is still kept,
// just without a date).  Returns the number of people added.
func (s *Store) ImportRecords(header []string, rows [][]string) int {
	nameIdx := columnIndex(header, nameAliases)
	if nameIdx < 0 {
		return 0
	}
	birthIdx := columnIndex(header, birthAliases)
	notesIdx := columnIndex(header, notesAliases)

	added := 0
	for _, row := range rows {
		if nameIdx >= len(row) {
			continue
		}
		name := strings.TrimSpace(row[nameIdx])
		if name == "" {
			continue
		}
		var birth *time.Time
		if birthIdx >= 0 && birthIdx < len(row) {
			birth = parseBirthDate(row[birthIdx])
		}
		notes := ""
		if notesIdx >= 0 && notesIdx < len(row) {
			notes = row[notesIdx]
		}
		if _, err := s.Add(name, birth, notes); err == nil {
			added++
		}
	}
	return added
}

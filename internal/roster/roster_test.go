package roster

import (
	"testing"
	"time"
)

func TestAddTrimsAndValidatesName(t *testing.T) {
	s := NewStore()
	p, err := s.Add("  Ana Petrovic  ", nil, "")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if p.Name != "Ana Petrovic" {
		t.Fatalf("name = %q, want trimmed", p.Name)
	}
	if p.ID == "" {
		t.Fatalf("person id not generated")
	}
	if _, err := s.Add("   ", nil, ""); err != ErrEmptyName {
		t.Fatalf("err = %v, want ErrEmptyName", err)
	}
	if s.Len() != 1 {
		t.Fatalf("roster size = %d, want 1", s.Len())
	}
}

func TestRemove(t *testing.T) {
	s := NewStore()
	p, _ := s.Add("Marko", nil, "")
	if !s.Remove(p.ID) {
		t.Fatalf("remove returned false for existing person")
	}
	if s.Remove(p.ID) {
		t.Fatalf("remove returned true for missing person")
	}
	if _, ok := s.Get(p.ID); ok {
		t.Fatalf("removed person still retrievable")
	}
}

func TestSortByBirthDateStable(t *testing.T) {
	d := func(s string) *time.Time {
		v, _ := time.Parse("2006-01-02", s)
		return &v
	}
	s := NewStore()
	s.Add("no-date-1", nil, "")
	s.Add("young", d("2005-06-01"), "")
	s.Add("no-date-2", nil, "")
	s.Add("old", d("1960-02-15"), "")

	s.SortByBirthDate()
	got := s.People()
	wantOrder := []string{"old", "young", "no-date-1", "no-date-2"}
	for i, name := range wantOrder {
		if got[i].Name != name {
			t.Fatalf("position %d = %q, want %q (full order %v)", i, got[i].Name, name, got)
		}
	}
}

func TestImportRecordsHeaderAliases(t *testing.T) {
	s := NewStore()
	header := []string{"Seat Pref", "Full Name", "Date of Birth", "Notes"}
	rows := [][]string{
		{"window", "Jovana", "1990-03-04", "vegetarian"},
		{"aisle", "", "1985-01-01", "dropped, no name"},
		{"", "Nikola", "04.07.1978", ""},
		{"", "Short row"},
		{"", "BadDate", "not-a-date", ""},
	}
	added := s.ImportRecords(header, rows)
	if added != 4 {
		t.Fatalf("imported %d, want 4", added)
	}
	people := s.People()
	if people[0].Name != "Jovana" || people[0].BirthDate == nil || people[0].Notes != "vegetarian" {
		t.Fatalf("first import wrong: %+v", people[0])
	}
	if people[1].Name != "Nikola" || people[1].BirthDate == nil {
		t.Fatalf("dotted date not parsed: %+v", people[1])
	}
	if people[1].BirthDate.Year() != 1978 || people[1].BirthDate.Month() != time.July {
		t.Fatalf("dotted date parsed wrong: %v", people[1].BirthDate)
	}
	if people[3].Name != "BadDate" || people[3].BirthDate != nil {
		t.Fatalf("unparseable birth date must import without a date: %+v", people[3])
	}
}

func TestImportRecordsWithoutNameColumn(t *testing.T) {
	s := NewStore()
	added := s.ImportRecords([]string{"foo", "bar"}, [][]string{{"a", "b"}})
	if added != 0 || s.Len() != 0 {
		t.Fatalf("import without a name column must add nothing")
	}
}

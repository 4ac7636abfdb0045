package prices

import (
	"strings"
	"testing"

	"github.com/jsvec/faceoff/core/model"
)

func TestParseCSVSplitDecimal(t *testing.T) {
	input := "Hráč,Cena\nMakar C.,30,9\nPastrňák D.,29,5\nMcDavid C.,33,0\n"
	list, err := ParseCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if list.Len() != 3 {
		t.Fatalf("expected 3 rows, got %d", list.Len())
	}
	if p, ok := list.Lookup("Makar C."); !ok || p != 30.9 {
		t.Errorf("Makar C. = %v %v, want 30.9", p, ok)
	}
	if p, ok := list.Lookup("McDavid C."); !ok || p != 33.0 {
		t.Errorf("McDavid C. = %v %v, want 33.0", p, ok)
	}
}

func TestParseCSVSingleCell(t *testing.T) {
	input := "player,price\nConnor McDavid,\"14,5\"\nCale Makar,12.3\n"
	list, err := ParseCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if p, ok := list.Lookup("Connor McDavid"); !ok || p != 14.5 {
		t.Errorf("McDavid = %v %v, want 14.5", p, ok)
	}
	if p, ok := list.Lookup("Cale Makar"); !ok || p != 12.3 {
		t.Errorf("Makar = %v %v, want 12.3", p, ok)
	}
}

func TestParseCSVTolerance(t *testing.T) {
	input := "\ufeffHráč,Cena\n# pricing export 2026-01\n// two formats below\nMakar C.,30,9\n\n"
	list, err := ParseCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if list.Len() != 1 {
		t.Fatalf("expected 1 row, got %d", list.Len())
	}
}

func TestParseCSVEmptyFails(t *testing.T) {
	if _, err := ParseCSV(strings.NewReader("Hráč,Cena\n")); err == nil {
		t.Fatalf("expected an error for a file with no price rows")
	}
}

func TestLookupWithDiacritics(t *testing.T) {
	input := "Pastrňák D.,29,5\n"
	list, err := ParseCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if p, ok := list.Lookup("Pastrnak D."); !ok || p != 29.5 {
		t.Errorf("diacritics-free lookup = %v %v, want 29.5", p, ok)
	}
	if p, ok := list.Lookup("pastrnak d"); !ok || p != 29.5 {
		t.Errorf("folded lookup = %v %v, want 29.5", p, ok)
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Pastrňák D.", "pastrnak d"},
		{"Connor McDavid", "connor mcdavid"},
		{"  Makar,  C.  ", "makar c"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestVariantsCoverCommonForms(t *testing.T) {
	vs := Variants("Connor McDavid")
	want := []string{"mcdavid c", "mcdavid c.", "mcdavid", "connor", "c mcdavid"}
	have := make(map[string]bool, len(vs))
	for _, v := range vs {
		have[v] = true
	}
	for _, w := range want {
		if !have[w] {
			t.Errorf("variant %q missing from %v", w, vs)
		}
	}
}

func TestApplyReportsUnresolved(t *testing.T) {
	input := "McDavid C.,33,0\nPastrňák D.,29,5\n"
	list, err := ParseCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	pool := []model.Player{
		model.NewRookie(1, "Connor McDavid", "EDM", model.Forward, model.SeasonStats{GamesPlayed: 20}),
		model.NewRookie(2, "David Pastrnak", "BOS", model.Forward, model.SeasonStats{GamesPlayed: 20}),
		model.NewRookie(3, "Total Unknown", "XXX", model.Forward, model.SeasonStats{GamesPlayed: 20}),
	}

	priced, report := Apply(pool, list)
	if report.Matched != 2 {
		t.Fatalf("matched = %d, want 2", report.Matched)
	}
	if len(report.Unresolved) != 1 || report.Unresolved[0] != "Total Unknown" {
		t.Fatalf("unresolved = %v", report.Unresolved)
	}
	if priced[0].Cost != 33.0 || priced[1].Cost != 29.5 {
		t.Errorf("costs = %v %v", priced[0].Cost, priced[1].Cost)
	}
	if priced[2].Cost != 0 {
		t.Errorf("unresolved player must keep zero cost, got %v", priced[2].Cost)
	}
	if pool[0].Cost != 0 {
		t.Errorf("input pool must not be mutated")
	}
}

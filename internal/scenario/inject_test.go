package scenario

import (
	"testing"
)

func TestInjectorApply(t *testing.T) {
	s, err := Get("clean")
	if err != nil {
		t.Fatalf("clean scenario: %v", err)
	}
	units := s.Units()

	in := NewInjector([]int{2, 4})
	got := in.Apply(units)

	if len(got) != len(units) {
		t.Fatalf("length changed: %d vs %d", len(got), len(units))
	}
	for i, u := range got {
		wantMissing := i == 1 || i == 3
		if u.Missing() != wantMissing {
			t.Errorf("position %d: Missing = %t, want %t", i+1, u.Missing(), wantMissing)
		}
	}
	// original sequence stays intact
	for i, u := range units {
		if u.Missing() {
			t.Errorf("source position %d mutated", i+1)
		}
	}
}

func TestInjectorIgnoresOutOfRange(t *testing.T) {
	s, _ := Get("clean")
	units := s.Units()
	got := NewInjector([]int{100}).Apply(units)
	for i, u := range got {
		if u.Missing() {
			t.Errorf("position %d unexpectedly absent", i+1)
		}
	}
}

func TestParseInjector(t *testing.T) {
	in, err := ParseInjector("3, 6")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	s, _ := Get("clean")
	units := s.Units()
	got := in.Apply(units)
	if !got[2].Missing() {
		t.Error("position 3 should be absent")
	}

	if _, err := ParseInjector("0"); err == nil {
		t.Error("expected error for position 0")
	}
	if _, err := ParseInjector("x"); err == nil {
		t.Error("expected error for non-numeric position")
	}
}

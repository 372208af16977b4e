package fallible

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDivide(t *testing.T) {
	if v, ok := Divide(10, 2); !ok || v != 5 {
		t.Errorf("Divide(10, 2) = %d, %t; want 5, true", v, ok)
	}
	if _, ok := Divide(10, 0); ok {
		t.Error("Divide(10, 0) should report failure")
	}
}

func TestDivideChecked(t *testing.T) {
	if _, err := DivideChecked(1, 0); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("expected ErrDivisionByZero, got %v", err)
	}
	v, err := DivideChecked(9, 3)
	if err != nil || v != 3 {
		t.Errorf("DivideChecked(9, 3) = %d, %v; want 3, nil", v, err)
	}
}

func TestMustDividePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic on zero divisor")
		}
	}()
	MustDivide(1, 0)
}

func TestParseAndDouble(t *testing.T) {
	v, err := ParseAndDouble("10")
	if err != nil || v != 10 {
		t.Errorf("ParseAndDouble(10) = %d, %v; want 10, nil", v, err)
	}
	if _, err := ParseAndDouble("not a number"); err == nil {
		t.Error("expected parse error")
	}
}

func TestMustParseAndDoublePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic on invalid input")
		}
	}()
	MustParseAndDouble("abc")
}

func TestReadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.txt")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := ReadConfigFile(path)
	if err != nil || got != "hello" {
		t.Errorf("ReadConfigFile = %q, %v; want hello, nil", got, err)
	}
	if _, err := ReadConfigFile(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestNestedValue(t *testing.T) {
	v := 42
	p1 := &v
	p2 := &p1
	got, err := NestedValue(&p2)
	if err != nil || got != 42 {
		t.Errorf("NestedValue = %d, %v; want 42, nil", got, err)
	}

	var nilInner *int
	p2 = &nilInner
	if _, err := NestedValue(&p2); !errors.Is(err, ErrNilLayer) {
		t.Errorf("expected ErrNilLayer, got %v", err)
	}
	if _, err := NestedValue(nil); !errors.Is(err, ErrNilLayer) {
		t.Errorf("expected ErrNilLayer for nil root, got %v", err)
	}
}

func TestElementAt(t *testing.T) {
	values := []int{1, 2, 3}
	if v, err := ElementAt(values, 1); err != nil || v != 2 {
		t.Errorf("ElementAt(1) = %d, %v; want 2, nil", v, err)
	}
	if _, err := ElementAt(values, 10); !errors.Is(err, ErrNoElement) {
		t.Errorf("expected ErrNoElement, got %v", err)
	}
	if _, err := ElementAt(values, -1); !errors.Is(err, ErrNoElement) {
		t.Errorf("expected ErrNoElement for negative index, got %v", err)
	}
}

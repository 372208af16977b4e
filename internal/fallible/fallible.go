// Package fallible collects small operations that can fail, each in two
// flavors: a Must variant that panics on failure and an error-returning
// variant. The demo subcommand walks through them to contrast fail-fast
// and graceful handling before running the full simulation.
package fallible

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

// ErrDivisionByZero is returned when the divisor is zero.
var ErrDivisionByZero = errors.New("division by zero")

// ErrNoElement is returned for out-of-range slice access.
var ErrNoElement = errors.New("no element at index")

// ErrNilLayer is returned when a nested pointer chain has a nil layer.
var ErrNilLayer = errors.New("nil layer in nested value")

// Divide returns a/b and false when b is zero.
func Divide(a, b int) (int, bool) {
	if b == 0 {
		return 0, false
	}
	return a / b, true
}

// DivideChecked returns a/b or ErrDivisionByZero.
func DivideChecked(a, b int) (int, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

// MustDivide returns a/b and panics when b is zero.
func MustDivide(a, b int) int {
	v, ok := Divide(a, b)
	if !ok {
		panic(ErrDivisionByZero)
	}
	return v
}

// MustParseAndDouble parses s, halves it and doubles the result. Any
// failure along the chain panics, so a bad input takes down the caller.
func MustParseAndDouble(s string) int {
	num, err := strconv.Atoi(s)
	if err != nil {
		panic(err)
	}
	doubled := MustDivide(num, 2)
	return doubled * 2
}

// ParseAndDouble is the error-returning counterpart of MustParseAndDouble.
func ParseAndDouble(s string) (int, error) {
	num, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("parse error: %w", err)
	}
	doubled, err := DivideChecked(num, 2)
	if err != nil {
		return 0, fmt.Errorf("division error: %w", err)
	}
	return doubled * 2, nil
}

// ReadConfigFile returns the file contents or an error.
func ReadConfigFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// MustReadConfigFile returns the file contents and panics if the file
// cannot be read.
func MustReadConfigFile(path string) string {
	contents, err := ReadConfigFile(path)
	if err != nil {
		panic(err)
	}
	return contents
}

// NestedValue dereferences a three-level pointer chain. A nil at any
// layer returns ErrNilLayer with the failing depth.
func NestedValue(data ***int) (int, error) {
	if data == nil {
		return 0, fmt.Errorf("%w: depth 1", ErrNilLayer)
	}
	if *data == nil {
		return 0, fmt.Errorf("%w: depth 2", ErrNilLayer)
	}
	if **data == nil {
		return 0, fmt.Errorf("%w: depth 3", ErrNilLayer)
	}
	return ***data, nil
}

// ElementAt returns values[index] or ErrNoElement when index is out of
// range.
func ElementAt(values []int, index int) (int, error) {
	if index < 0 || index >= len(values) {
		return 0, fmt.Errorf("%w: %d (len %d)", ErrNoElement, index, len(values))
	}
	return values[index], nil
}

package scenario

import (
	"fmt"
	"strconv"
	"strings"

	"failpolicy-sim/internal/workload"
)

// Injector derives degraded request sequences by knocking out requests at
// fixed 1-indexed positions. Injection is deterministic so repeated runs see
// the same faults.
type Injector struct {
	positions map[int]struct{}
}

// NewInjector creates an Injector dropping the given 1-indexed positions.
func NewInjector(positions []int) *Injector {
	set := make(map[int]struct{}, len(positions))
	for _, p := range positions {
		set[p] = struct{}{}
	}
	return &Injector{positions: set}
}

// ParseInjector parses a comma-separated list of 1-indexed positions,
// e.g. "3,6".
func ParseInjector(spec string) (*Injector, error) {
	var positions []int
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		p, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid drop position %q: %w", part, err)
		}
		if p < 1 {
			return nil, fmt.Errorf("drop position must be >= 1, got %d", p)
		}
		positions = append(positions, p)
	}
	return NewInjector(positions), nil
}

// Apply returns a copy of units with the configured positions replaced by
// absent requests. Positions beyond the sequence are ignored.
func (in *Injector) Apply(units []workload.RequestUnit) []workload.RequestUnit {
	out := make([]workload.RequestUnit, len(units))
	copy(out, units)
	for i := range out {
		if _, ok := in.positions[i+1]; ok {
			out[i] = workload.Absent()
		}
	}
	return out
}

// Request stream types consumed by the simulation runner.
package workload

import (
	"fmt"

	"github.com/google/uuid"
)

// RequestUnit is one element of a request stream: an identifier plus a
// payload that may be absent. An empty-but-present payload is still present;
// only a nil payload counts as missing.
type RequestUnit struct {
	ID      string
	Payload *string
}

// Present builds a unit carrying the given payload.
func Present(payload string) RequestUnit {
	return RequestUnit{ID: newRequestID(), Payload: &payload}
}

// Absent builds a unit with no payload.
func Absent() RequestUnit {
	return RequestUnit{ID: newRequestID()}
}

// Missing reports whether the unit carries no payload.
func (u RequestUnit) Missing() bool {
	return u.Payload == nil
}

func (u RequestUnit) String() string {
	if u.Payload == nil {
		return fmt.Sprintf("RequestUnit(%s, <absent>)", u.ID)
	}
	return fmt.Sprintf("RequestUnit(%s, %q)", u.ID, *u.Payload)
}

// FromPayloads builds a sequence from optional payloads, preserving order.
// A nil entry becomes an absent unit.
func FromPayloads(payloads []*string) []RequestUnit {
	units := make([]RequestUnit, 0, len(payloads))
	for _, p := range payloads {
		if p == nil {
			units = append(units, Absent())
			continue
		}
		units = append(units, Present(*p))
	}
	return units
}

func newRequestID() string {
	return uuid.New().String()
}

// Failure-handling policies applied to a single request processing call.
package policy

import (
	"fmt"

	"failpolicy-sim/internal/service"
	"failpolicy-sim/internal/workload"
)

// Kind tags the per-request outcome of one policy dispatch.
type Kind string

const (
	// KindProcessed marks a request processed normally.
	KindProcessed Kind = "processed"
	// KindRecoveredError marks a request that failed with an error the
	// policy recovered from locally.
	KindRecoveredError Kind = "recovered_error"
	// KindFallbackUsed marks a request served with the fallback payload.
	// The caller receives a value, but availability counts it as failed.
	KindFallbackUsed Kind = "fallback_used"
	// KindFatalAbort marks the request whose fault terminated the run.
	KindFatalAbort Kind = "fatal_abort"
)

// Outcome is the tagged result of dispatching one request unit.
type Outcome struct {
	Kind    Kind
	Payload string // set for processed and fallback_used
	Err     string // set for recovered_error and fatal_abort
}

// Succeeded reports success at the availability layer. A fallback response
// returns a value to the caller yet still counts as a failure here; that
// dual accounting represents degraded service.
func (o Outcome) Succeeded() bool {
	return o.Kind == KindProcessed
}

func (o Outcome) String() string {
	switch o.Kind {
	case KindProcessed:
		return fmt.Sprintf("processed(%q)", o.Payload)
	case KindRecoveredError:
		return fmt.Sprintf("recovered_error(%s)", o.Err)
	case KindFallbackUsed:
		return fmt.Sprintf("fallback_used(%q)", o.Payload)
	case KindFatalAbort:
		return fmt.Sprintf("fatal_abort(%s)", o.Err)
	}
	return string(o.Kind)
}

// Executor wraps the service's processing primitive with one
// failure-propagation contract. Implementations are fixed at construction
// and hold no per-run state.
type Executor interface {
	Name() string
	// Process handles a single request unit. The unsafe executor lets a
	// fatal fault escape this call as a panic; the runner's dispatch
	// boundary recovers and classifies it.
	Process(unit workload.RequestUnit) Outcome
}

// Unsafe treats a missing payload as an unrecoverable fault that ends the
// whole run.
type Unsafe struct {
	svc *service.Service
}

// NewUnsafe creates the fail-fast executor.
func NewUnsafe(svc *service.Service) *Unsafe {
	return &Unsafe{svc: svc}
}

func (p *Unsafe) Name() string { return "unsafe" }

func (p *Unsafe) Process(unit workload.RequestUnit) Outcome {
	// ProcessUnsafe panics on absent input; the panic crosses this frame
	// on purpose.
	out := p.svc.ProcessUnsafe(unit.Payload)
	return Outcome{Kind: KindProcessed, Payload: out}
}

// Safe treats a missing payload as a recoverable error value and keeps the
// run going.
type Safe struct {
	svc *service.Service
}

// NewSafe creates the graceful-degradation executor.
func NewSafe(svc *service.Service) *Safe {
	return &Safe{svc: svc}
}

func (p *Safe) Name() string { return "safe" }

func (p *Safe) Process(unit workload.RequestUnit) Outcome {
	out, err := p.svc.ProcessSafe(unit.Payload)
	if err != nil {
		return Outcome{Kind: KindRecoveredError, Err: err.Error()}
	}
	return Outcome{Kind: KindProcessed, Payload: out}
}

// Resilient substitutes a fallback payload for missing input. The request
// still succeeds at the data layer but is reported as degraded.
type Resilient struct {
	svc *service.Service
}

// NewResilient creates the fallback executor.
func NewResilient(svc *service.Service) *Resilient {
	return &Resilient{svc: svc}
}

func (p *Resilient) Name() string { return "resilient" }

func (p *Resilient) Process(unit workload.RequestUnit) Outcome {
	out := p.svc.ProcessResilient(unit.Payload)
	if unit.Missing() {
		return Outcome{Kind: KindFallbackUsed, Payload: out}
	}
	return Outcome{Kind: KindProcessed, Payload: out}
}

// Names lists the valid executor names in display order.
func Names() []string {
	return []string{"unsafe", "safe", "resilient"}
}

// New creates an executor by name.
func New(name string, svc *service.Service) (Executor, error) {
	switch name {
	case "unsafe":
		return NewUnsafe(svc), nil
	case "safe":
		return NewSafe(svc), nil
	case "resilient":
		return NewResilient(svc), nil
	}
	return nil, fmt.Errorf("unknown policy %q; valid policies: %v", name, Names())
}

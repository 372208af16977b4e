// Request processor with one processing primitive per failure-handling policy.
package service

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// DefaultFallback is substituted for a missing payload by ProcessResilient.
const DefaultFallback = "fallback response"

// ErrMissingPayload is returned by ProcessSafe when the input is absent.
var ErrMissingPayload = errors.New("no input payload provided")

// FatalError is the panic value raised by ProcessUnsafe for a missing
// payload. The runner's dispatch boundary recovers it; any other panic
// value is a programming error and is re-raised.
type FatalError struct {
	Reason string
}

func (e FatalError) Error() string {
	return "fatal service fault: " + e.Reason
}

// Service processes single requests. The nominal failure rate is
// descriptive metadata carried into reports; it never drives randomness.
type Service struct {
	failureRate float64
	fallback    string
	diag        io.Writer
}

// New creates a Service. failureRate is clamped to [0,1]. An empty fallback
// selects DefaultFallback; a nil diag selects STDERR.
func New(failureRate float64, fallback string, diag io.Writer) *Service {
	if failureRate < 0 {
		failureRate = 0
	} else if failureRate > 1 {
		failureRate = 1
	}
	if fallback == "" {
		fallback = DefaultFallback
	}
	if diag == nil {
		diag = os.Stderr
	}
	return &Service{failureRate: failureRate, fallback: fallback, diag: diag}
}

// FailureRate returns the configured nominal failure rate.
func (s *Service) FailureRate() float64 {
	return s.failureRate
}

// Fallback returns the payload substituted for missing input.
func (s *Service) Fallback() string {
	return s.fallback
}

// ProcessUnsafe requires a present payload. A missing payload raises a
// FatalError panic that escapes the call; the caller cannot continue past
// it within the same dispatch.
func (s *Service) ProcessUnsafe(in *string) string {
	if in == nil {
		panic(FatalError{Reason: ErrMissingPayload.Error()})
	}
	return process(*in)
}

// ProcessSafe returns an explicit error for a missing payload and never
// aborts the calling context.
func (s *Service) ProcessSafe(in *string) (string, error) {
	if in == nil {
		return "", ErrMissingPayload
	}
	return process(*in), nil
}

// ProcessResilient never fails: a missing payload is replaced by the
// fallback and a notice goes to the diagnostics writer, not to the normal
// output channel.
func (s *Service) ProcessResilient(in *string) string {
	if in == nil {
		fmt.Fprintln(s.diag, "request failed, using fallback")
		return s.fallback
	}
	return process(*in)
}

func process(payload string) string {
	return "processed: " + payload
}

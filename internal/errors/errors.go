package errors

import (
	"errors"
	"fmt"
)

var (
	// Registry errors
	ErrMetricNotFound  = errors.New("metric not found")
	ErrDuplicateMetric = errors.New("metric already registered")
	ErrInvalidMetric   = errors.New("invalid metric descriptor")

	// Sampling errors
	ErrSampling = errors.New("host sampling failed")
)

// SamplingError reports a failed operating system query.
type SamplingError struct {
	// Subsystem is the sampled resource: "cpu", "memory" or "disk"
	Subsystem string
	Err       error
}

func (e *SamplingError) Error() string {
	return fmt.Sprintf("sampling %s: %v", e.Subsystem, e.Err)
}

func (e *SamplingError) Unwrap() error {
	return e.Err
}

// Is reports ErrSampling for every SamplingError.
func (e *SamplingError) Is(target error) bool {
	return target == ErrSampling
}

// NewSamplingError wraps err as a failure of the given subsystem.
func NewSamplingError(subsystem string, err error) error {
	return &SamplingError{Subsystem: subsystem, Err: err}
}

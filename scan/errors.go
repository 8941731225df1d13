package scan

import "fmt"

// ResolutionError is returned when a host has no usable IPv4 address.
type ResolutionError struct {
	Host string
	Err  error
}

func (e *ResolutionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("Lookup failed for '%s'", e.Host)
	}
	return fmt.Sprintf("Lookup failed for '%s': %s", e.Host, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// InvalidConcurrencyError is returned when a scanner is configured with fewer than one worker.
type InvalidConcurrencyError struct {
	Workers int
}

func (e *InvalidConcurrencyError) Error() string {
	return fmt.Sprintf("Invalid worker count %d: at least one worker is required", e.Workers)
}

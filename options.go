package siteswap

import "fmt"

// Options configures one Analyze call.
type Options struct {
	// AllowTheoreticalPatterns permits negative values, negative
	// quantities, and zero-value crossing throws. Default false.
	AllowTheoreticalPatterns bool
	// MaximumLength bounds the inferred per-hand state range; analysis
	// raises StateRangeTooLarge before exceeding it. Default 100.
	MaximumLength int
}

// DefaultOptions returns the package's default analysis options.
func DefaultOptions() Options {
	return Options{AllowTheoreticalPatterns: false, MaximumLength: 100}
}

// Validate rejects a malformed Options value eagerly, failing fast on bad
// config rather than deep inside the pipeline.
func (o Options) Validate() error {
	if o.MaximumLength < 0 {
		return fmt.Errorf("siteswap: MaximumLength must be >= 0, got %d", o.MaximumLength)
	}
	return nil
}

func (o Options) withDefaults() Options {
	if o.MaximumLength == 0 {
		o.MaximumLength = 100
	}
	return o
}

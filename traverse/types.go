// Package traverse: tunable options and error definitions for the scanning
// algorithms.
package traverse

import "errors"

// Sentinel errors for traversal execution.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("traverse: invalid option supplied")
)

// Option configures the scanning algorithms via functional arguments.
// An invalid Option (e.g. a negative scan bound) is recorded internally and
// surfaced as ErrOptionViolation when the algorithm is invoked.
type Option func(*options)

// options holds the resolved knobs of one algorithm call.
type options struct {
	// maxScan bounds the number of forward steps a linear scan may take;
	// 0 disables the bound.
	maxScan int

	// violation carries the first invalid option, reported on invocation.
	violation error
}

// WithMaxScan bounds Distance's linear scan to at most n forward steps;
// exceeding the bound fails with cursor.ErrUnreachable. Use it when the
// backing store cannot detect its own end sentinel. n == 0 disables the
// bound; n < 0 is an ErrOptionViolation.
func WithMaxScan(n int) Option {
	return func(o *options) {
		if n < 0 {
			o.violation = ErrOptionViolation

			return
		}
		o.maxScan = n
	}
}

// resolve folds the supplied options, reporting the first violation.
func resolve(opts []Option) (options, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.violation
}

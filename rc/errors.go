package rc

import "errors"

var (
	// ErrCounterOverflow indicates a Clone would push the strong count past
	// its maximum representable value. Wrapping silently would free the
	// payload while handles still reference it, so this is fatal.
	ErrCounterOverflow = errors.New("rc: strong count overflow")

	// ErrUseAfterDrop indicates an operation on a handle that has already
	// been dropped. This is a contract violation by the caller, not a
	// recoverable condition.
	ErrUseAfterDrop = errors.New("rc: use of dropped handle")
)

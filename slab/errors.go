package slab

import "errors"

var (
	// ErrBadHandle indicates a handle that never came from this pool (zero
	// value, or an index beyond any slot ever allocated).
	ErrBadHandle = errors.New("slab: bad handle")

	// ErrStaleHandle indicates a handle whose slot has since been freed or
	// recycled for a new payload.
	ErrStaleHandle = errors.New("slab: stale handle")

	// ErrCounterOverflow indicates a Clone would push a slot's strong count
	// past its maximum representable value.
	ErrCounterOverflow = errors.New("slab: strong count overflow")
)

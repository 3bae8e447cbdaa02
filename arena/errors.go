package arena

import "errors"

var (
	// ErrNoSpace indicates that no free cell large enough was found and the
	// remaining region cannot hold the allocation.
	ErrNoSpace = errors.New("arena: no space left")

	// ErrBadRef indicates an invalid, misaligned or out-of-bounds cell
	// reference.
	ErrBadRef = errors.New("arena: bad cell reference")

	// ErrNotAllocated indicates an attempt to free a cell that is not
	// allocated - typically a double free.
	ErrNotAllocated = errors.New("arena: cell is not allocated")

	// ErrBadSize indicates a non-positive allocation size.
	ErrBadSize = errors.New("arena: alloc size must be positive")

	// ErrClosed indicates an operation on an arena whose region has been
	// released.
	ErrClosed = errors.New("arena: closed")
)

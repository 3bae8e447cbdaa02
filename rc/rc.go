package rc

import "math"

// allocation is the shared block behind one or more handles. It is owned
// collectively by every live handle referencing it, never by one handle
// alone.
type allocation[T any] struct {
	value  T
	strong uint64
	drop   func(T)
}

// Rc is a shared-ownership handle to an allocation. The zero value is not
// usable; obtain handles from New, NewWithDrop or Clone.
type Rc[T any] struct {
	a *allocation[T]
}

// New allocates storage for value with a strong count of 1 and returns the
// first handle to it.
func New[T any](value T) *Rc[T] {
	return NewWithDrop(value, nil)
}

// NewWithDrop is New with a destruction hook. The hook runs exactly once,
// from the Drop call that takes the strong count to zero, and receives the
// payload so it can release anything the payload owns.
func NewWithDrop[T any](value T, drop func(T)) *Rc[T] {
	return &Rc[T]{a: &allocation[T]{value: value, strong: 1, drop: drop}}
}

// Clone returns a new handle to the same allocation and increments the
// strong count by exactly 1. The payload is not copied, moved or touched;
// this is an O(1) reference bump, never a deep copy.
//
// Clone panics with ErrCounterOverflow if the count is already at its
// maximum representable value.
func (r *Rc[T]) Clone() *Rc[T] {
	a := r.live()
	if a.strong == math.MaxUint64 {
		panic(ErrCounterOverflow)
	}
	a.strong++
	return &Rc[T]{a: a}
}

// Get returns shared read access to the payload. The pointer stays valid
// for as long as the handle it came from is live. Callers must not mutate
// the payload through it.
func (r *Rc[T]) Get() *T {
	return &r.live().value
}

// StrongCount returns the number of live handles referencing the
// allocation. It is a pure observer for diagnostics and tests; production
// logic should not branch on the exact value.
func (r *Rc[T]) StrongCount() uint64 {
	return r.live().strong
}

// Drop relinquishes this handle and decrements the strong count. If the
// count reaches zero the payload is destroyed: the drop hook (if any) runs
// with the payload, which may cascade into dropping handles the payload
// owns, and the allocation is released.
//
// After Drop returns, this handle is dead and any further operation on it
// panics with ErrUseAfterDrop. Each handle must be dropped exactly once.
func (r *Rc[T]) Drop() {
	a := r.live()
	// Sever the handle before the count moves, so re-entrant code running
	// inside a drop hook can never reach a half-destroyed allocation
	// through it.
	r.a = nil
	a.strong--
	if a.strong > 0 {
		return
	}
	if a.drop != nil {
		a.drop(a.value)
	}
	var zero T
	a.value = zero
}

func (r *Rc[T]) live() *allocation[T] {
	if r == nil || r.a == nil {
		panic(ErrUseAfterDrop)
	}
	return r.a
}

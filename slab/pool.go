package slab

import "math"

// noSlot terminates the free list.
const noSlot = -1

// Handle addresses one slot in a Pool. The zero value is invalid; obtain
// handles from New or Clone.
type Handle struct {
	index uint32
	gen   uint32
}

// slot holds one payload and its ownership bookkeeping. A slot is live
// while strong > 0; a freed slot keeps its bumped generation and links
// into the free list through next.
type slot[T any] struct {
	value  T
	strong uint32
	gen    uint32
	next   int32
}

// Pool stores reference-counted payloads in recyclable slots.
type Pool[T any] struct {
	slots []slot[T]
	free  int32
	live  int
	drop  func(T)
}

// NewPool creates an empty pool.
func NewPool[T any]() *Pool[T] {
	return NewPoolWithDrop[T](nil)
}

// NewPoolWithDrop creates an empty pool whose payloads are destroyed by
// drop when their strong count reaches zero. The hook runs exactly once
// per payload, before the slot is recycled.
func NewPoolWithDrop[T any](drop func(T)) *Pool[T] {
	return &Pool[T]{free: noSlot, drop: drop}
}

// New stores value in a slot with a strong count of 1 and returns the
// first handle to it. Freed slots are reused before the pool grows.
func (p *Pool[T]) New(value T) Handle {
	var idx int32
	if p.free != noSlot {
		idx = p.free
		p.free = p.slots[idx].next
	} else {
		idx = int32(len(p.slots))
		// Generations start at 1 so the zero Handle can never match.
		p.slots = append(p.slots, slot[T]{gen: 1})
	}

	s := &p.slots[idx]
	s.value = value
	s.strong = 1
	s.next = noSlot
	p.live++

	return Handle{index: uint32(idx), gen: s.gen}
}

// Clone returns a new handle to the same slot and increments its strong
// count by exactly 1. The payload is not copied.
func (p *Pool[T]) Clone(h Handle) (Handle, error) {
	s, err := p.lookup(h)
	if err != nil {
		return Handle{}, err
	}
	if s.strong == math.MaxUint32 {
		return Handle{}, ErrCounterOverflow
	}
	s.strong++
	return h, nil
}

// Get returns shared read access to the payload behind h. Callers must
// not mutate the payload through the pointer, and must not hold it across
// a New call: growing the pool may move slots.
func (p *Pool[T]) Get(h Handle) (*T, error) {
	s, err := p.lookup(h)
	if err != nil {
		return nil, err
	}
	return &s.value, nil
}

// StrongCount returns the number of live handles referencing h's slot.
// Pure observer, for diagnostics and tests.
func (p *Pool[T]) StrongCount(h Handle) (uint32, error) {
	s, err := p.lookup(h)
	if err != nil {
		return 0, err
	}
	return s.strong, nil
}

// Drop relinquishes h and decrements its slot's strong count. At zero the
// drop hook (if any) runs with the payload, the slot's generation advances
// so stale handles are detectable, and the slot joins the free list.
func (p *Pool[T]) Drop(h Handle) error {
	s, err := p.lookup(h)
	if err != nil {
		return err
	}
	s.strong--
	if s.strong > 0 {
		return nil
	}

	// Retire the slot before the hook runs: a re-entrant lookup through
	// any surviving copy of this handle must already see it as stale.
	value := s.value
	var zero T
	s.value = zero
	s.gen++
	s.next = p.free
	p.free = int32(h.index)
	p.live--

	if p.drop != nil {
		p.drop(value)
	}
	return nil
}

// Live returns the number of slots currently holding a payload.
func (p *Pool[T]) Live() int {
	return p.live
}

// Cap returns the total number of slots the pool has ever grown to,
// including freed ones awaiting reuse.
func (p *Pool[T]) Cap() int {
	return len(p.slots)
}

func (p *Pool[T]) lookup(h Handle) (*slot[T], error) {
	if h.gen == 0 || int(h.index) >= len(p.slots) {
		return nil, ErrBadHandle
	}
	s := &p.slots[h.index]
	if s.gen != h.gen || s.strong == 0 {
		return nil, ErrStaleHandle
	}
	return s, nil
}

// Package slab provides a pooled, index-addressed rendition of the shared
// ownership protocol in package rc.
//
// # Overview
//
// Instead of one heap allocation per payload, a Pool[T] stores payloads in
// contiguous slots and hands out small Handle values - an index plus a
// generation. The counting rules are identical to rc: a slot is born with
// a strong count of 1, Clone bumps it, Drop decrements it, and the payload
// is destroyed exactly once when the count reaches zero. Freed slots are
// recycled through a free list.
//
// The generation stored in each Handle is what makes recycling safe: every
// time a slot is freed its generation advances, so a stale Handle from a
// previous occupant is detected and rejected with ErrStaleHandle rather
// than silently touching the wrong payload.
//
// # Usage
//
//	p := slab.NewPool[Session]()
//	h := p.New(Session{ID: 7}) // count = 1
//
//	h2, err := p.Clone(h) // count = 2, same slot
//	if err != nil {
//	    return err
//	}
//
//	s, err := p.Get(h) // shared read access
//	...
//	_ = p.Drop(h2) // count 2 -> 1
//	_ = p.Drop(h)  // count 1 -> 0, slot freed and recycled
//
// # Contract
//
// Handles are plain values; copying one does not create a new owner. Every
// Handle returned by New or Clone must be matched by exactly one Drop.
// Pointers returned by Get must not be held across a New call, since
// growing the pool may move slots. Pools are not safe for concurrent use,
// matching the single-goroutine scope of package rc.
package slab

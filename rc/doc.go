// Package rc provides a single-goroutine shared-ownership smart pointer.
//
// # Overview
//
// An Rc[T] is a handle to a heap allocation holding a payload value and a
// strong count - the number of live handles referencing that allocation.
// New creates the allocation with a count of 1. Clone hands out another
// handle and bumps the count in O(1) without touching the payload. Drop
// relinquishes a handle; when the last handle is dropped, the payload is
// destroyed exactly once (running the optional drop hook) and the
// allocation is released.
//
// The count maintained here is not atomic. Rc is safe only within a single
// goroutine (or under external synchronization); sharing handles across
// goroutines without synchronization is undefined. A lock-free
// multi-goroutine variant would need an atomic counter and is a different
// primitive, deliberately not provided by this package.
//
// # Usage
//
//	cfg := rc.New(loadConfig())
//	worker := cfg.Clone() // second owner, same allocation
//
//	fmt.Println(cfg.StrongCount()) // 2
//	process(worker.Get())          // shared read access, no copy
//
//	worker.Drop() // count 2 -> 1, payload stays alive
//	cfg.Drop()    // count 1 -> 0, payload destroyed here
//
// # Ownership Rules
//
//   - Every handle returned by New or Clone must be dropped exactly once.
//   - A dropped handle is dead: Get, Clone, StrongCount and Drop on it
//     panic with ErrUseAfterDrop. A live handle always implies a live
//     allocation, so there is no way to observe a freed payload through
//     the API.
//   - Get grants shared read access. Mutating the payload through the
//     returned pointer is a contract violation; a checked mutable cell
//     would be a separate primitive layered on top.
//   - Clone never duplicates the payload. Code that needs a deep copy
//     must do so explicitly on the value, never through this package.
//
// # Drop Hooks
//
// NewWithDrop attaches a hook that runs once, when the count reaches zero.
// Hooks commonly release resources the payload owns, including dropping
// inner Rc handles, which cascades naturally:
//
//	inner := rc.NewWithDrop(buf, freeBuf)
//	outer := rc.NewWithDrop(node{data: inner}, func(n node) {
//	    n.data.Drop()
//	})
//
// Reference cycles (a payload whose drop hook can reach the allocation
// being torn down) are unsupported: strong counts alone cannot collect
// cycles, and this package does not try to detect them.
package rc

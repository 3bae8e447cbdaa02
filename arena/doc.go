// Package arena implements a byte-cell allocator over a single anonymous
// memory mapping.
//
// # Overview
//
// An Arena carves cells out of one fixed-size region with the classic
// contract of a host allocator: Alloc hands out a block or fails, Free
// returns it. It is the memory boundary the shared-ownership packages in
// this module sit on top of - package buffer allocates its payload cells
// here, and the arena's statistics are what tests use to prove that the
// last owner of a cell frees it exactly once.
//
// # Cell Layout
//
// Every cell starts with a 4-byte little-endian size header covering the
// whole cell, header included. The sign carries the allocation state:
//
//	negative  allocated
//	positive  free
//
// Cells are 8-byte aligned. New allocations first search a segregated
// free list (size classes from 32 bytes doubling up to 8KB, plus a large
// class); a free cell with enough slack is split, the remainder going
// back on the free list. When no free cell fits, the bump pointer at the
// end of the used region grows until the arena is exhausted.
//
// # Usage
//
//	a, err := arena.New(1 << 20)
//	if err != nil {
//	    return err
//	}
//	defer a.Close()
//
//	ref, buf, err := a.Alloc(256)
//	if err != nil {
//	    return err
//	}
//	copy(buf, payload)
//	...
//	if err := a.Free(ref); err != nil {
//	    return err
//	}
//
// # Concurrency
//
// Arenas are not safe for concurrent use. Callers must synchronize access
// externally; this matches the single-goroutine scope of the ownership
// packages built on top.
package arena

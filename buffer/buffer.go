package buffer

import (
	"github.com/joshuapare/refkit/arena"
	"github.com/joshuapare/refkit/rc"
)

// cell is the shared payload behind every handle to one buffer.
type cell struct {
	a    *arena.Arena
	ref  arena.Ref
	data []byte
}

// Buffer is one owner's handle to a shared arena cell. Obtain buffers
// from Alloc or Clone; every handle must be released exactly once.
type Buffer struct {
	h *rc.Rc[cell]
}

// Alloc carves a cell with room for n bytes out of a and returns the
// first handle to it. The cell returns to the arena when the last handle
// is released.
func Alloc(a *arena.Arena, n int) (*Buffer, error) {
	ref, data, err := a.Alloc(n)
	if err != nil {
		return nil, err
	}
	c := cell{a: a, ref: ref, data: data}
	return &Buffer{h: rc.NewWithDrop(c, func(c cell) {
		// The cell was alive for as long as any handle existed, so this
		// cannot double-free.
		_ = c.a.Free(c.ref)
	})}, nil
}

// Clone returns a new handle to the same cell. The bytes are shared, not
// copied; use Copy when an independent cell is wanted.
func (b *Buffer) Clone() *Buffer {
	return &Buffer{h: b.h.Clone()}
}

// Copy allocates a fresh cell in the same arena and copies the contents
// into it. This is the O(n) deep copy, deliberately separate from the
// O(1) Clone.
func (b *Buffer) Copy() (*Buffer, error) {
	c := b.h.Get()
	nb, err := Alloc(c.a, len(c.data))
	if err != nil {
		return nil, err
	}
	copy(nb.Bytes(), c.data)
	return nb, nil
}

// Bytes returns the shared cell contents. The slice stays valid until
// this handle is released.
func (b *Buffer) Bytes() []byte {
	return b.h.Get().data
}

// Len returns the cell's payload length.
func (b *Buffer) Len() int {
	return len(b.h.Get().data)
}

// Refs returns the number of live handles to the cell. Diagnostics only.
func (b *Buffer) Refs() uint64 {
	return b.h.StrongCount()
}

// Release relinquishes this handle. The Release of the last handle frees
// the cell. Operations on a released handle panic with rc.ErrUseAfterDrop.
func (b *Buffer) Release() {
	b.h.Drop()
}

package arena

import (
	"encoding/binary"
	"fmt"

	"github.com/joshuapare/refkit/internal/mmap"
)

// Ref is a cell reference - the byte offset of the cell's header within
// the arena region.
type Ref = uint32

const (
	// cellHeaderSize is the 4-byte signed size field at the start of every
	// cell.
	cellHeaderSize = 4

	// cellAlign is the alignment of cell starts and sizes.
	cellAlign = 8

	// minCellSize is the smallest cell the arena will carve, header
	// included. Split remainders below this stay attached to their cell.
	minCellSize = 16

	// numClasses segregates the free list: 32B doubling up to 8KB, plus a
	// final class for anything larger.
	numClasses = 10
)

// Stats reports the arena's live-allocation accounting.
type Stats struct {
	LiveCells int // allocated cells not yet freed
	LiveBytes int // bytes held by live cells, headers included
	HighWater int // furthest byte the bump pointer has reached
	Capacity  int // total region size
}

// Arena allocates byte cells from one anonymous mapping. Not safe for
// concurrent use.
type Arena struct {
	data  []byte
	unmap func() error

	// end is the bump pointer: everything below it has been carved into
	// cells, everything above is untouched region.
	end int

	free [numClasses][]Ref

	liveCells int
	liveBytes int
	highWater int
}

// New maps a zeroed region of the given size and returns an arena over
// it. The size is rounded up to cell alignment.
func New(size int) (*Arena, error) {
	if size <= 0 {
		return nil, ErrBadSize
	}
	size = alignUp(size)
	data, unmap, err := mmap.Anon(size)
	if err != nil {
		return nil, fmt.Errorf("arena: map %d bytes: %w", size, err)
	}
	return &Arena{data: data, unmap: unmap}, nil
}

// Alloc carves a cell with room for n payload bytes. It returns the cell
// reference and the payload slice (zeroed). Free cells are reused before
// the region grows; a reused cell with enough slack is split.
func (a *Arena) Alloc(n int) (Ref, []byte, error) {
	if a.data == nil {
		return 0, nil, ErrClosed
	}
	if n <= 0 {
		return 0, nil, ErrBadSize
	}
	need := alignUp(n + cellHeaderSize)

	ref, ok := a.takeFree(need)
	if !ok {
		if a.end+need > len(a.data) {
			return 0, nil, ErrNoSpace
		}
		ref = Ref(a.end)
		a.end += need
		if a.end > a.highWater {
			a.highWater = a.end
		}
		a.putSize(ref, int32(need))
	}

	size := int(a.cellSize(ref))
	a.putSize(ref, -int32(size))
	a.liveCells++
	a.liveBytes += size

	payload := a.data[int(ref)+cellHeaderSize : int(ref)+size]
	clear(payload)
	return ref, payload, nil
}

// Free returns the cell at ref to the free list. Freeing a cell that is
// already free fails with ErrNotAllocated, so a double free is always
// detected rather than corrupting the list.
func (a *Arena) Free(ref Ref) error {
	if a.data == nil {
		return ErrClosed
	}
	if err := a.checkRef(ref); err != nil {
		return err
	}
	raw := a.rawSize(ref)
	if raw >= 0 {
		return ErrNotAllocated
	}
	size := int(-raw)
	if int(ref)+size > a.end {
		return ErrBadRef
	}

	a.putSize(ref, int32(size))
	a.pushFree(ref, size)
	a.liveCells--
	a.liveBytes -= size
	return nil
}

// Stats returns the current accounting snapshot.
func (a *Arena) Stats() Stats {
	return Stats{
		LiveCells: a.liveCells,
		LiveBytes: a.liveBytes,
		HighWater: a.highWater,
		Capacity:  len(a.data),
	}
}

// Close releases the region. Further Alloc/Free calls fail with
// ErrClosed. Close is idempotent.
func (a *Arena) Close() error {
	if a.data == nil {
		return nil
	}
	a.data = nil
	for i := range a.free {
		a.free[i] = nil
	}
	return a.unmap()
}

// takeFree pops the first free cell that fits, splitting off the tail
// when the slack is at least one minimum cell.
//
// TODO: coalesce adjacent free cells on Free; long-lived arenas with
// mixed sizes will fragment without it.
func (a *Arena) takeFree(need int) (Ref, bool) {
	for cls := classOf(need); cls < numClasses; cls++ {
		list := a.free[cls]
		for i, ref := range list {
			size := int(a.cellSize(ref))
			if size < need {
				continue
			}
			a.free[cls] = append(list[:i], list[i+1:]...)
			if size-need >= minCellSize {
				rest := ref + Ref(need)
				a.putSize(ref, int32(need))
				a.putSize(rest, int32(size-need))
				a.pushFree(rest, size-need)
			}
			return ref, true
		}
	}
	return 0, false
}

func (a *Arena) pushFree(ref Ref, size int) {
	cls := classOf(size)
	a.free[cls] = append(a.free[cls], ref)
}

// checkRef rejects references that cannot be a cell start.
func (a *Arena) checkRef(ref Ref) error {
	if ref%cellAlign != 0 || int(ref)+cellHeaderSize > a.end {
		return ErrBadRef
	}
	return nil
}

func (a *Arena) rawSize(ref Ref) int32 {
	return int32(binary.LittleEndian.Uint32(a.data[ref:]))
}

// cellSize returns the cell's size regardless of allocation state.
func (a *Arena) cellSize(ref Ref) int32 {
	raw := a.rawSize(ref)
	if raw < 0 {
		return -raw
	}
	return raw
}

func (a *Arena) putSize(ref Ref, size int32) {
	binary.LittleEndian.PutUint32(a.data[ref:], uint32(size))
}

func alignUp(n int) int {
	return (n + cellAlign - 1) &^ (cellAlign - 1)
}

// classOf maps a cell size to its free-list class: class c holds cells up
// to 32<<c bytes, with everything past 8KB in the last class.
func classOf(size int) int {
	limit := 32
	for cls := 0; cls < numClasses-1; cls++ {
		if size <= limit {
			return cls
		}
		limit <<= 1
	}
	return numClasses - 1
}

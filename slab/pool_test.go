package slab

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPool_NewCloneDrop walks the canonical count sequence through the
// pooled variant: 1 -> 2 -> 3 -> 2 -> 1 -> 0.
func TestPool_NewCloneDrop(t *testing.T) {
	freed := 0
	p := NewPoolWithDrop(func(int) { freed++ })

	h := p.New(5)
	n, err := p.StrongCount(h)
	require.NoError(t, err)
	require.Equal(t, uint32(1), n)

	a, err := p.Clone(h)
	require.NoError(t, err)
	b, err := p.Clone(h)
	require.NoError(t, err)

	n, _ = p.StrongCount(h)
	assert.Equal(t, uint32(3), n, "count after two clones")

	require.NoError(t, p.Drop(b))
	require.NoError(t, p.Drop(a))
	n, _ = p.StrongCount(h)
	assert.Equal(t, uint32(1), n)
	assert.Zero(t, freed, "payload must survive while owners remain")

	require.NoError(t, p.Drop(h))
	assert.Equal(t, 1, freed, "last drop destroys the payload exactly once")
	assert.Zero(t, p.Live())
}

// TestPool_GetSharesSlot tests that clones alias one slot instead of
// copying the payload.
func TestPool_GetSharesSlot(t *testing.T) {
	p := NewPool[[]byte]()
	h := p.New([]byte("shared"))

	c, err := p.Clone(h)
	require.NoError(t, err)

	v1, err := p.Get(h)
	require.NoError(t, err)
	v2, err := p.Get(c)
	require.NoError(t, err)
	assert.Same(t, v1, v2, "clone must not duplicate the payload")

	require.NoError(t, p.Drop(c))
	require.NoError(t, p.Drop(h))
}

// TestPool_StaleHandleDetected tests that a freed slot rejects its old
// handles even after recycling.
func TestPool_StaleHandleDetected(t *testing.T) {
	p := NewPool[string]()

	h := p.New("first")
	require.NoError(t, p.Drop(h))

	_, err := p.Get(h)
	assert.ErrorIs(t, err, ErrStaleHandle, "dead handle must not read a freed slot")
	assert.ErrorIs(t, p.Drop(h), ErrStaleHandle, "double drop must not decrement twice")

	// Recycle the slot for a new payload.
	h2 := p.New("second")
	assert.Equal(t, h.index, h2.index, "freed slot should be reused")
	assert.NotEqual(t, h.gen, h2.gen, "recycled slot must carry a new generation")

	_, err = p.Get(h)
	assert.ErrorIs(t, err, ErrStaleHandle, "old handle must not reach the new occupant")

	v, err := p.Get(h2)
	require.NoError(t, err)
	assert.Equal(t, "second", *v)
	require.NoError(t, p.Drop(h2))
}

// TestPool_BadHandle tests rejection of handles that never came from the
// pool.
func TestPool_BadHandle(t *testing.T) {
	p := NewPool[int]()
	p.New(1)

	_, err := p.Get(Handle{})
	assert.ErrorIs(t, err, ErrBadHandle, "zero handle")

	_, err = p.Get(Handle{index: 99, gen: 1})
	assert.ErrorIs(t, err, ErrBadHandle, "index beyond any slot")
}

// TestPool_FreeListRecycling tests that the pool reuses freed slots before
// growing.
func TestPool_FreeListRecycling(t *testing.T) {
	p := NewPool[int]()

	handles := make([]Handle, 0, 8)
	for i := 0; i < 8; i++ {
		handles = append(handles, p.New(i))
	}
	require.Equal(t, 8, p.Cap())
	require.Equal(t, 8, p.Live())

	for _, h := range handles {
		require.NoError(t, p.Drop(h))
	}
	require.Zero(t, p.Live())

	for i := 0; i < 8; i++ {
		p.New(100 + i)
	}
	assert.Equal(t, 8, p.Cap(), "freed slots must be recycled, not appended past")
	assert.Equal(t, 8, p.Live())
}

// TestPool_CountAlgebra tests that the count after any clone/drop sequence
// equals 1 + clones - drops.
func TestPool_CountAlgebra(t *testing.T) {
	p := NewPool[string]()
	h := p.New("payload")

	clones, drops := 0, 0
	steps := []int{+4, -3, +2, -1, +6, -5}
	for _, step := range steps {
		if step > 0 {
			for n := 0; n < step; n++ {
				_, err := p.Clone(h)
				require.NoError(t, err)
				clones++
			}
		} else {
			for n := 0; n < -step; n++ {
				require.NoError(t, p.Drop(h))
				drops++
			}
		}
		n, err := p.StrongCount(h)
		require.NoError(t, err)
		require.Equal(t, uint32(1+clones-drops), n,
			"count must equal 1 + clones(%d) - drops(%d)", clones, drops)
	}

	for n := 0; n < 1+clones-drops; n++ {
		require.NoError(t, p.Drop(h))
	}
	assert.Zero(t, p.Live())
}

// TestPool_CascadingDrop tests an outer pool payload owning a handle into
// another pool, released through the drop hook.
func TestPool_CascadingDrop(t *testing.T) {
	innerFreed := 0
	inner := NewPoolWithDrop(func(string) { innerFreed++ })
	ih := inner.New("inner")

	type node struct {
		data Handle
	}
	outer := NewPoolWithDrop(func(n node) {
		require.NoError(t, inner.Drop(n.data))
	})

	shared, err := inner.Clone(ih)
	require.NoError(t, err)
	oh := outer.New(node{data: shared})

	require.NoError(t, outer.Drop(oh))
	n, err := inner.StrongCount(ih)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), n, "cascade decrements the inner count")
	assert.Zero(t, innerFreed)

	require.NoError(t, inner.Drop(ih))
	assert.Equal(t, 1, innerFreed, "inner freed once its last handle goes")
}

// TestPool_CounterOverflow tests the saturation boundary: a slot at the
// maximum count must refuse to clone rather than wrap to 0.
func TestPool_CounterOverflow(t *testing.T) {
	p := NewPool[int]()
	h := p.New(7)
	p.slots[h.index].strong = math.MaxUint32

	_, err := p.Clone(h)
	assert.ErrorIs(t, err, ErrCounterOverflow)

	n, err := p.StrongCount(h)
	require.NoError(t, err)
	assert.Equal(t, uint32(math.MaxUint32), n, "a failed clone must not disturb the count")
}

// TestPool_DropHookRunsBeforeRecycle tests that by the time the hook runs,
// the handle is already stale, so re-entrant lookups cannot reach the
// half-destroyed slot.
func TestPool_DropHookRunsBeforeRecycle(t *testing.T) {
	var p *Pool[int]
	var h Handle
	ran := false
	p = NewPoolWithDrop(func(int) {
		ran = true
		_, err := p.Get(h)
		assert.ErrorIs(t, err, ErrStaleHandle, "slot must be retired before the hook runs")
	})
	h = p.New(1)

	require.NoError(t, p.Drop(h))
	assert.True(t, ran)
}

// BenchmarkPool_NewDrop measures slot churn through the free list.
func BenchmarkPool_NewDrop(b *testing.B) {
	p := NewPool[[16]byte]()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		h := p.New([16]byte{})
		_ = p.Drop(h)
	}
}

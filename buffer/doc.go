// Package buffer provides shared-ownership byte buffers backed by an
// arena.
//
// # Overview
//
// A Buffer is a view of one arena cell whose lifetime is governed by the
// counting protocol in package rc: Clone hands the same bytes to another
// owner in O(1), Release relinquishes a handle, and the Release that
// drops the last owner returns the cell to the arena - exactly once.
//
// # Usage
//
//	a, _ := arena.New(1 << 20)
//	defer a.Close()
//
//	buf, err := buffer.Alloc(a, 4096)
//	if err != nil {
//	    return err
//	}
//	copy(buf.Bytes(), frame)
//
//	tee := buf.Clone() // second owner, same cell
//	consume(tee)       // consumer calls tee.Release() when done
//
//	buf.Release() // cell is freed once both owners are gone
//
// Buffers inherit the single-goroutine scope of package rc.
package buffer

package capture

import "sync"

// Lightweight reusable plane-buffer pool to reduce heap churn from per-frame
// allocation of large pixel slices. Grabbers copy OS/driver output into a
// pooled buffer; consumers call RecyclePlane when a frame will no longer be
// read. If consumers never recycle, behavior degrades gracefully to plain
// allocation.

var planePool sync.Pool // stores []byte

// acquirePlane returns a buffer with length exactly n and capacity at least n.
func acquirePlane(n int) []byte {
	if n <= 0 {
		return nil
	}
	if v := planePool.Get(); v != nil {
		buf := v.([]byte)
		if cap(buf) >= n {
			return buf[:n]
		}
	}
	return make([]byte, n)
}

// RecyclePlane returns a plane buffer to the pool for potential reuse. The
// buffer must no longer be accessed by the caller after recycling.
func RecyclePlane(b []byte) {
	if len(b) == 0 {
		return
	}
	planePool.Put(b[:cap(b)])
}

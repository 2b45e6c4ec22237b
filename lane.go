package striped

import (
	"sync/atomic"
	"unsafe"
)

// lane is one independently updatable counter cell.
//
// The counter sits at offset 0 and the trailing padding rounds the lane up to
// LaneSize, so two lanes never share a cache line once the lane sequence
// itself starts on a cache line boundary (see makeLanes).
type lane struct {
	v atomic.Uint64
	_ [(LaneSize - unsafe.Sizeof(atomic.Uint64{})%LaneSize) % LaneSize]byte
}

// makeLanes allocates n zeroed lanes whose first lane starts on a
// CacheLineSize boundary.
//
// make([]lane, n) only guarantees 8-byte alignment of the backing array, so
// the lanes are carved out of a pointer-free byte buffer over-allocated by
// one cache line. The Go heap is non-moving, which keeps the alignment for
// the lifetime of the slice.
func makeLanes(n int) []lane {
	buf := make([]byte, n*int(LaneSize)+int(CacheLineSize)-1)
	base := unsafe.Pointer(unsafe.SliceData(buf))
	off := alignUp(uintptr(base), CacheLineSize) - uintptr(base)
	return unsafe.Slice((*lane)(unsafe.Add(base, off)), n)
}

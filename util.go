package striped

import (
	"github.com/llxisdsh/striped/internal/opt"
)

const (
	// CacheLineSize is the cache line size, in bytes, lanes are aligned to.
	CacheLineSize = opt.CacheLineSize_

	// LaneSize is the in-memory size of a single lane. It is always a
	// non-zero multiple of CacheLineSize.
	LaneSize = CacheLineSize * opt.PaddingMult_
)

const (
	intSize = 32 << (^uint(0) >> 63) // 32 or 64
	maxInt  = 1<<(intSize-1) - 1     // MaxInt32 or MaxInt64 depending on intSize.

)

// MaxLanes is the largest lane count New accepts; it keeps the lane buffer
// size representable as an int.
const MaxLanes = (maxInt - int(CacheLineSize)) / int(LaneSize)

// alignUp rounds p up to the next multiple of align, which must be a power
// of 2.
//
//go:nosplit
func alignUp(p, align uintptr) uintptr {
	return (p + align - 1) &^ (align - 1)
}

// noCopy may be added to structs which must not be copied
// after the first use.
//
// See https://golang.org/issues/8005#issuecomment-190753527
// for details.
//
// Note that it must not be embedded, due to the Lock and Unlock methods.
type noCopy struct{}

// Lock is a no-op used by -copylocks checker from `go vet`.
func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

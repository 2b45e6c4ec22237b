//go:build striped_cachelinesize_64

package opt

// CacheLineSize_ is forced to 64 bytes via the striped_cachelinesize_64 build tag.
// Use: go build -tags=striped_cachelinesize_64
const CacheLineSize_ uintptr = 64

//go:build striped_cachelinesize_256

package opt

// CacheLineSize_ is forced to 256 bytes via the striped_cachelinesize_256 build tag.
// Use: go build -tags=striped_cachelinesize_256
const CacheLineSize_ uintptr = 256

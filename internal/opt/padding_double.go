//go:build striped_double_padding

package opt

// PaddingMult_ is the number of cache lines each counter lane occupies.
// Doubled via the striped_double_padding build tag, so that the adjacent-line
// prefetcher on x86 never pulls two lanes in as a pair.
// Use: go build -tags=striped_double_padding
const PaddingMult_ = 2

//go:build !striped_double_padding

package opt

// PaddingMult_ is the number of cache lines each counter lane occupies.
const PaddingMult_ = 1

package core

// LocalID is a dense, internal identifier for a record within a single
// collection. It is strictly 32-bit so that hot-path structures (prefix-index
// bitmaps, cluster assignment arrays) stay compact.
//
// LocalIDs are positional: the i-th record of the input collection has
// LocalID(i). They are not stable across different collections.
type LocalID uint32

// MaxLocalID is the maximum possible value for a LocalID.
const MaxLocalID = ^LocalID(0)

package inventory

// Cache is the minimal capability to move item quantities. Both
// backing stores and indexes implement it.
//
// The returned count is what was actually moved (or would be, when
// simulate is true): 0 <= returned <= count. Asking for more than is
// available is not an error, the shortfall shows up in the returned
// count. simulate=true never mutates anything.
type Cache interface {
	InsertItem(key Key, count int, simulate bool) (int, error)
	ExtractItem(key Key, count int, simulate bool) (int, error)
}

// Snapshot is the ground truth of a store at one point in time. Free
// is an estimate of how much more the store could accept in total,
// used by transactions to bound insert working copies.
type Snapshot struct {
	Items map[Key]int
	Free  int
}

// Store is what an Index can wrap: a cache that can also be scanned
// for ground truth. Snapshot returns an error when the store is
// unreachable, which the index reports as "view may still be stale".
type Store interface {
	Cache
	Snapshot() (Snapshot, error)
}

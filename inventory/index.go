package inventory

import (
	"sync"

	"github.com/google/uuid"
)

// Index aggregates one or more stores behind a cached view. The view
// can drift from ground truth; ReIndex and UpdateIndex reconcile it.
// Insert/extract go through transactions, so they inherit the same
// guarantees (see Transaction).
//
// CheckBind, when set, is the pluggable validity rule for Bind. It
// runs after the built-in self-bind/empty-peer checks.
type Index struct {
	CheckBind func(Link) bool

	id      string
	mutex   sync.RWMutex
	stores  []Store
	view    *view
	version uint64
	// accurate remembers whether the last full reconciliation covered
	// every store.
	accurate bool
	cursor   int

	linksMutex sync.Mutex
	links      []Link
	linkByPeer map[string]int
}

func NewIndex(stores ...Store) *Index {
	idx := &Index{
		id:         uuid.New().String(),
		view:       newView(),
		linkByPeer: map[string]int{},
	}
	for _, store := range stores {
		idx.AddStore(store)
	}
	return idx
}

// ID is the identity other indexes use to link to this one.
func (idx *Index) ID() string {
	return idx.id
}

// AddStore attaches another backing store. The view does not cover it
// until the next reconciliation.
func (idx *Index) AddStore(store Store) {
	idx.mutex.Lock()
	defer idx.mutex.Unlock()

	idx.stores = append(idx.stores, store)
	idx.view.addStore()
	idx.accurate = false
}

// ReIndex scans every store and rebuilds the view. Expensive. Returns
// whether the view is accurate afterwards: an unreachable store keeps
// its previous contribution and makes ReIndex return false.
func (idx *Index) ReIndex() bool {
	idx.mutex.Lock()
	defer idx.mutex.Unlock()

	accurate := true
	for i, store := range idx.stores {
		snapshot, err := store.Snapshot()
		if err != nil {
			accurate = false
			continue
		}
		if idx.view.replaceContribution(i, snapshot) {
			idx.version++
		}
	}
	idx.accurate = accurate

	return accurate
}

// UpdateIndex performs one bounded reconciliation step: it re-scans a
// single store, round robin. Repeated calls converge to the same view
// as one ReIndex. Returns whether anything changed.
func (idx *Index) UpdateIndex() bool {
	idx.mutex.Lock()
	defer idx.mutex.Unlock()

	if len(idx.stores) == 0 {
		return false
	}

	i := idx.cursor
	idx.cursor = (idx.cursor + 1) % len(idx.stores)

	snapshot, err := idx.stores[i].Snapshot()
	if err != nil {
		return false
	}
	if !idx.view.replaceContribution(i, snapshot) {
		return false
	}
	idx.version++

	return true
}

// BulkTransaction opens a transaction against the current view. The
// transaction is exclusively owned by the caller.
func (idx *Index) BulkTransaction() *Transaction {
	return &Transaction{
		index: idx,
		avail: map[Key]int{},
	}
}

// InsertItem is sugar for a one-operation transaction.
func (idx *Index) InsertItem(key Key, count int, simulate bool) (int, error) {
	transaction := idx.BulkTransaction()
	n, err := transaction.InsertItem(key, count, simulate)
	if err != nil {
		return 0, err
	}
	return n, transaction.Commit()
}

// ExtractItem is sugar for a one-operation transaction.
func (idx *Index) ExtractItem(key Key, count int, simulate bool) (int, error) {
	transaction := idx.BulkTransaction()
	n, err := transaction.ExtractItem(key, count, simulate)
	if err != nil {
		return 0, err
	}
	return n, transaction.Commit()
}

// commit applies recorded operations to the stores, in order, clamping
// each one to what the stores can satisfy right now. It runs under the
// exclusive lock so commits never observe a torn view, and it repairs
// the view with the exact amounts that moved.
func (idx *Index) commit(ops []operation) {
	idx.mutex.Lock()
	defer idx.mutex.Unlock()

	for o := range ops {
		op := &ops[o]
		remaining := op.count
		for i, store := range idx.stores {
			if remaining == 0 {
				break
			}
			var n int
			if op.kind == opInsert {
				n, _ = store.InsertItem(op.key, remaining, false)
				idx.view.adjust(i, op.key, n)
			} else {
				n, _ = store.ExtractItem(op.key, remaining, false)
				idx.view.adjust(i, op.key, -n)
			}
			remaining -= n
		}
		op.applied = op.count - remaining
		if op.applied != 0 {
			idx.version++
		}
	}
}

// Quantity returns how many units of key the view believes are
// available.
func (idx *Index) Quantity(key Key) int {
	idx.mutex.RLock()
	defer idx.mutex.RUnlock()
	return idx.view.available(key)
}

// Free returns the view's estimate of remaining capacity.
func (idx *Index) Free() int {
	idx.mutex.RLock()
	defer idx.mutex.RUnlock()
	return idx.view.free
}

// Entries returns a copy of the view in key order. Mutating it does
// not affect the index.
func (idx *Index) Entries() []Entry {
	idx.mutex.RLock()
	defer idx.mutex.RUnlock()
	return idx.view.snapshot()
}

// Version increases every time the view changes, either by commit or
// by reconciliation.
func (idx *Index) Version() uint64 {
	idx.mutex.RLock()
	defer idx.mutex.RUnlock()
	return idx.version
}

// Accurate reports whether the last ReIndex covered every store.
func (idx *Index) Accurate() bool {
	idx.mutex.RLock()
	defer idx.mutex.RUnlock()
	return idx.accurate
}

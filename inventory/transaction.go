package inventory

const (
	opInsert = iota
	opExtract
)

type operation struct {
	kind    int
	key     Key
	count   int // accepted during the working phase
	applied int // actually applied at commit (clamped)
}

// Transaction batches insert/extract operations against a working copy
// of the index view. Nothing touches the real stores until Commit. A
// transaction belongs to the caller that opened it: it must not be
// shared between goroutines nor used after Commit.
//
// Commit policy is CLAMP: if the view was stale and an operation can
// no longer be satisfied in full, commit applies as much as the stores
// actually allow. The whole batch is applied under one exclusive
// critical section, so no other commit or reconciliation interleaves.
type Transaction struct {
	index  *Index
	ops    []operation
	avail  map[Key]int // working availability, seeded lazily from the view
	free   int         // working free capacity
	seeded bool        // free already seeded
	closed bool
}

func (t *Transaction) ExtractItem(key Key, count int, simulate bool) (int, error) {
	if t.closed {
		return 0, ErrTransactionClosed
	}
	if count < 0 {
		return 0, ErrNegativeCount
	}

	accepted := min(count, t.availability(key))
	if simulate {
		return accepted, nil
	}

	t.avail[key] -= accepted
	t.free += accepted
	t.ops = append(t.ops, operation{kind: opExtract, key: key, count: accepted})

	return accepted, nil
}

func (t *Transaction) InsertItem(key Key, count int, simulate bool) (int, error) {
	if t.closed {
		return 0, ErrTransactionClosed
	}
	if count < 0 {
		return 0, ErrNegativeCount
	}

	t.availability(key) // make sure the key is seeded

	accepted := min(count, t.free)
	if simulate {
		return accepted, nil
	}

	t.avail[key] += accepted
	t.free -= accepted
	t.ops = append(t.ops, operation{kind: opInsert, key: key, count: accepted})

	return accepted, nil
}

// availability seeds the working copy for key (and the free counter)
// from the index view on first touch.
func (t *Transaction) availability(key Key) int {
	if !t.seeded {
		t.free = t.index.Free()
		t.seeded = true
	}
	if _, touched := t.avail[key]; !touched {
		t.avail[key] = t.index.Quantity(key)
	}
	return t.avail[key]
}

// Commit applies every recorded operation, in order, to the real
// stores. Calling Commit a second time (or any operation afterwards)
// is a usage error, never a silent double-apply. A transaction that is
// never committed has no effect at all.
func (t *Transaction) Commit() error {
	if t.closed {
		return ErrTransactionClosed
	}
	t.closed = true

	if len(t.ops) == 0 {
		return nil
	}

	t.index.commit(t.ops)

	return nil
}

// Applied reports, per recorded operation, how many units were really
// moved at commit time. Before Commit all values are zero.
func (t *Transaction) Applied() []int {
	result := make([]int, len(t.ops))
	for i, op := range t.ops {
		result[i] = op.applied
	}
	return result
}

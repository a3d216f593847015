package inventory

import (
	"errors"
	"testing"

	. "github.com/fulldump/biff"
)

// brokenStore fails every snapshot, like a depot that went offline.
type brokenStore struct {
	Container
}

func (b *brokenStore) Snapshot() (Snapshot, error) {
	return Snapshot{}, errors.New("store unreachable")
}

func TestIndex_ReIndex(t *testing.T) {
	container := NewContainer(4, 16)
	stone := NewKey("stone", 0)
	container.InsertItem(stone, 10, false)

	index := NewIndex(container)
	AssertEqual(index.Quantity(stone), 0) // not reconciled yet

	AssertTrue(index.ReIndex())
	AssertEqual(index.Quantity(stone), 10)
	AssertTrue(index.Accurate())
}

func TestIndex_ReIndex_Idempotent(t *testing.T) {
	container := NewContainer(4, 16)
	container.InsertItem(NewKey("stone", 0), 10, false)
	index := NewIndex(container)

	AssertTrue(index.ReIndex())
	version := index.Version()
	entries := index.Entries()

	// no external mutation: same view, still accurate, version stable
	AssertTrue(index.ReIndex())
	AssertEqual(index.Version(), version)
	AssertEqualJson(index.Entries(), entries)
}

func TestIndex_UpdateIndex_Convergence(t *testing.T) {
	stone := NewKey("stone", 0)
	dirt := NewKey("dirt", 0)

	a := NewContainer(2, 16)
	b := NewContainer(2, 16)
	c := NewContainer(2, 16)
	a.InsertItem(stone, 10, false)
	b.InsertItem(stone, 5, false)
	c.InsertItem(dirt, 3, false)

	index := NewIndex(a, b, c)
	reference := NewIndex(a, b, c)
	reference.ReIndex()

	// one bounded step per call, any finite number of calls followed
	// by nothing new converges to the full reindex result
	changed := 0
	for i := 0; i < 3; i++ {
		if index.UpdateIndex() {
			changed++
		}
	}
	AssertEqual(changed, 3)
	AssertEqualJson(index.Entries(), reference.Entries())
	AssertEqual(index.Quantity(stone), 15)
	AssertEqual(index.Quantity(dirt), 3)

	// nothing changed since: further steps report false
	AssertFalse(index.UpdateIndex())
}

func TestIndex_UpdateIndex_PicksUpExternalChanges(t *testing.T) {
	container := NewContainer(2, 16)
	stone := NewKey("stone", 0)
	index := NewIndex(container)
	index.ReIndex()

	container.InsertItem(stone, 8, false)

	AssertTrue(index.UpdateIndex())
	AssertEqual(index.Quantity(stone), 8)
}

func TestIndex_ReIndex_Unreachable(t *testing.T) {
	healthy := NewContainer(2, 16)
	stone := NewKey("stone", 0)
	healthy.InsertItem(stone, 10, false)

	index := NewIndex(healthy, &brokenStore{})

	// the healthy store is still reconciled, but the view may be stale
	AssertFalse(index.ReIndex())
	AssertFalse(index.Accurate())
	AssertEqual(index.Quantity(stone), 10)
}

func TestIndex_SingleOpMatchesDirectCache(t *testing.T) {
	stone := NewKey("stone", 0)

	direct := NewContainer(4, 16)
	direct.InsertItem(stone, 10, false)

	container := NewContainer(4, 16)
	container.InsertItem(stone, 10, false)
	index := NewIndex(container)
	index.ReIndex()

	// sugar path and direct cache path agree for the same pre-state
	want, _ := direct.ExtractItem(stone, 7, false)
	got, err := index.ExtractItem(stone, 7, false)
	AssertNil(err)
	AssertEqual(got, want)

	want, _ = direct.InsertItem(stone, 100, false)
	got, err = index.InsertItem(stone, 100, false)
	AssertNil(err)
	AssertEqual(got, want)
}

func TestIndex_SingleOpSimulate(t *testing.T) {
	index, container, stone := newTestIndex(10)

	n, err := index.ExtractItem(stone, 4, true)
	AssertNil(err)
	AssertEqual(n, 4)

	snapshot, _ := container.Snapshot()
	AssertEqual(snapshot.Items[stone], 10)
	AssertEqual(index.Quantity(stone), 10)
}

func TestIndex_AddStore(t *testing.T) {
	stone := NewKey("stone", 0)
	a := NewContainer(2, 16)
	a.InsertItem(stone, 10, false)

	index := NewIndex(a)
	AssertTrue(index.ReIndex())

	b := NewContainer(2, 16)
	b.InsertItem(stone, 5, false)
	index.AddStore(b)

	AssertFalse(index.Accurate())
	AssertTrue(index.ReIndex())
	AssertEqual(index.Quantity(stone), 15)
}

func TestIndex_CommitOverflowsToSecondStore(t *testing.T) {
	stone := NewKey("stone", 0)
	a := NewContainer(1, 10)
	b := NewContainer(1, 10)

	index := NewIndex(a, b)
	index.ReIndex()

	n, err := index.InsertItem(stone, 15, false)
	AssertNil(err)
	AssertEqual(n, 15)

	sa, _ := a.Snapshot()
	sb, _ := b.Snapshot()
	AssertEqual(sa.Items[stone], 10)
	AssertEqual(sb.Items[stone], 5)
}

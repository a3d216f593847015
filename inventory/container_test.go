package inventory

import (
	"testing"

	. "github.com/fulldump/biff"
)

func TestContainer_InsertExtract(t *testing.T) {
	c := NewContainer(2, 10) // capacity 20
	stone := NewKey("stone", 0)

	n, err := c.InsertItem(stone, 15, false)
	AssertNil(err)
	AssertEqual(n, 15)

	// capacity clamps the second insert
	n, _ = c.InsertItem(stone, 15, false)
	AssertEqual(n, 5)

	n, _ = c.ExtractItem(stone, 8, false)
	AssertEqual(n, 8)

	// only 12 left
	n, _ = c.ExtractItem(stone, 100, false)
	AssertEqual(n, 12)

	n, _ = c.ExtractItem(stone, 1, false)
	AssertEqual(n, 0)
}

func TestContainer_Simulate(t *testing.T) {
	c := NewContainer(1, 10)
	stone := NewKey("stone", 0)
	c.InsertItem(stone, 4, false)

	// any sequence of simulated calls leaves ground truth untouched
	c.InsertItem(stone, 3, true)
	c.ExtractItem(stone, 2, true)
	c.ExtractItem(stone, 100, true)

	snapshot, err := c.Snapshot()
	AssertNil(err)
	AssertEqual(snapshot.Items[stone], 4)
	AssertEqual(snapshot.Free, 6)
}

func TestContainer_KeysDoNotStack(t *testing.T) {
	c := NewContainer(2, 10)
	worn := NewKey("pickaxe", 5)
	fresh := NewKey("pickaxe", 0)

	c.InsertItem(worn, 10, false)
	c.InsertItem(fresh, 10, false)

	n, _ := c.ExtractItem(worn, 20, false)
	AssertEqual(n, 10)
	n, _ = c.ExtractItem(fresh, 20, false)
	AssertEqual(n, 10)
}

func TestContainer_NegativeCount(t *testing.T) {
	c := NewContainer(1, 10)

	_, err := c.InsertItem(NewKey("stone", 0), -1, false)
	AssertEqual(err, ErrNegativeCount)
	_, err = c.ExtractItem(NewKey("stone", 0), -1, true)
	AssertEqual(err, ErrNegativeCount)
}

func TestContainer_SlotReuse(t *testing.T) {
	c := NewContainer(1, 10)
	stone := NewKey("stone", 0)
	dirt := NewKey("dirt", 0)

	c.InsertItem(stone, 10, false)
	c.ExtractItem(stone, 10, false)

	// the emptied slot is free for another key
	n, _ := c.InsertItem(dirt, 10, false)
	AssertEqual(n, 10)
}

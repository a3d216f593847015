package inventory

import "github.com/google/btree"

// Entry is one line of the cached view: a key and how many units the
// index believes are available across all its stores.
type Entry struct {
	Key       Key `json:"key"`
	Available int `json:"available"`
}

// view is the cached, possibly stale, aggregation of the stores. It
// remembers the contribution of every store separately so a single
// store can be re-scanned (UpdateIndex) without touching the others.
type view struct {
	entries       *btree.BTreeG[Entry]
	contributions []contribution
	free          int
}

type contribution struct {
	items map[Key]int
	free  int
}

func newView() *view {
	return &view{
		entries: btree.NewG(16, func(a, b Entry) bool {
			return a.Key.Less(b.Key)
		}),
	}
}

func (v *view) addStore() {
	v.contributions = append(v.contributions, contribution{items: map[Key]int{}})
}

func (v *view) available(key Key) int {
	entry, found := v.entries.Get(Entry{Key: key})
	if !found {
		return 0
	}
	return entry.Available
}

func (v *view) add(key Key, delta int) {
	if delta == 0 {
		return
	}
	entry, _ := v.entries.Get(Entry{Key: key})
	entry.Key = key
	entry.Available += delta
	if entry.Available <= 0 {
		v.entries.Delete(entry)
		return
	}
	v.entries.ReplaceOrInsert(entry)
}

// replaceContribution swaps the remembered contribution of store i for
// a fresh snapshot and folds the difference into the aggregate
// entries. Returns whether anything actually changed.
func (v *view) replaceContribution(i int, snapshot Snapshot) bool {
	old := v.contributions[i]

	changed := old.free != snapshot.Free
	for key, count := range old.items {
		v.add(key, -count)
		if snapshot.Items[key] != count {
			changed = true
		}
	}
	for key, count := range snapshot.Items {
		v.add(key, count)
		if _, existed := old.items[key]; !existed {
			changed = true
		}
	}

	v.free += snapshot.Free - old.free
	v.contributions[i] = contribution{items: snapshot.Items, free: snapshot.Free}

	return changed
}

// adjust repairs the view after a committed operation: store i moved
// `delta` units of key (positive = inserted). Keeps the view exact for
// keys touched by commits without a full rescan.
func (v *view) adjust(i int, key Key, delta int) {
	if delta == 0 {
		return
	}
	c := v.contributions[i]
	c.items[key] += delta
	if c.items[key] <= 0 {
		delete(c.items, key)
	}
	c.free -= delta
	v.contributions[i] = c
	v.free -= delta
	v.add(key, delta)
}

func (v *view) snapshot() []Entry {
	result := make([]Entry, 0, v.entries.Len())
	v.entries.Ascend(func(entry Entry) bool {
		result = append(result, entry)
		return true
	})
	return result
}

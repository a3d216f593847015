package inventory

import (
	"fmt"
	"sort"
	"strings"
)

// Key identifies a class of interchangeable items: the item type plus
// whatever auxiliary data makes two stacks non-fungible (durability,
// tags). Quantity is NOT part of the key. Keys are plain values,
// comparable and immutable once built with NewKey.
type Key struct {
	Item       string `json:"item"`
	Durability int    `json:"durability"`
	Tags       string `json:"tags"`
}

// NewKey canonicalizes tags (sorted, comma joined) so that structurally
// equal keys compare equal no matter how the caller ordered them.
func NewKey(item string, durability int, tags ...string) Key {
	if len(tags) > 1 {
		sorted := make([]string, len(tags))
		copy(sorted, tags)
		sort.Strings(sorted)
		tags = sorted
	}
	return Key{
		Item:       item,
		Durability: durability,
		Tags:       strings.Join(tags, ","),
	}
}

// Less gives keys a total order (item, durability, tags) so they can
// live in ordered structures.
func (k Key) Less(other Key) bool {
	if k.Item != other.Item {
		return k.Item < other.Item
	}
	if k.Durability != other.Durability {
		return k.Durability < other.Durability
	}
	return k.Tags < other.Tags
}

func (k Key) String() string {
	s := k.Item
	if k.Durability != 0 {
		s += fmt.Sprintf("#%d", k.Durability)
	}
	if k.Tags != "" {
		s += "[" + k.Tags + "]"
	}
	return s
}

package inventory

import "sync"

type containerSlot struct {
	key   Key
	count int
}

// Container is a slot based in-memory store: a fixed number of slots,
// each holding up to stackSize units of a single key. It is the
// reference Store implementation; anything else (a chest, a remote
// depot) just has to implement Store.
type Container struct {
	mutex     sync.Mutex
	slots     []containerSlot
	stackSize int
}

func NewContainer(slots, stackSize int) *Container {
	if slots < 0 {
		slots = 0
	}
	if stackSize < 1 {
		stackSize = 1
	}
	return &Container{
		slots:     make([]containerSlot, slots),
		stackSize: stackSize,
	}
}

func (c *Container) InsertItem(key Key, count int, simulate bool) (int, error) {
	if count < 0 {
		return 0, ErrNegativeCount
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	remaining := count

	// Top up existing stacks first, then claim empty slots.
	for i := range c.slots {
		if remaining == 0 {
			break
		}
		s := &c.slots[i]
		if s.count == 0 || s.key != key {
			continue
		}
		n := min(remaining, c.stackSize-s.count)
		if n == 0 {
			continue
		}
		if !simulate {
			s.count += n
		}
		remaining -= n
	}
	for i := range c.slots {
		if remaining == 0 {
			break
		}
		s := &c.slots[i]
		if s.count != 0 {
			continue
		}
		n := min(remaining, c.stackSize)
		if !simulate {
			s.key = key
			s.count = n
		}
		remaining -= n
	}

	return count - remaining, nil
}

func (c *Container) ExtractItem(key Key, count int, simulate bool) (int, error) {
	if count < 0 {
		return 0, ErrNegativeCount
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	remaining := count
	for i := range c.slots {
		if remaining == 0 {
			break
		}
		s := &c.slots[i]
		if s.count == 0 || s.key != key {
			continue
		}
		n := min(remaining, s.count)
		if !simulate {
			s.count -= n
			if s.count == 0 {
				s.key = Key{}
			}
		}
		remaining -= n
	}

	return count - remaining, nil
}

func (c *Container) Snapshot() (Snapshot, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	snapshot := Snapshot{
		Items: map[Key]int{},
	}
	for _, s := range c.slots {
		if s.count > 0 {
			snapshot.Items[s.key] += s.count
		}
		snapshot.Free += c.stackSize - s.count
	}

	return snapshot, nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

package watch

import (
	"testing"

	. "github.com/fulldump/biff"
)

func TestHubPublish(t *testing.T) {

	h := NewHub()

	all := h.Subscribe("")
	warehouse := h.Subscribe("warehouse")

	h.Publish(Event{Type: "insert", Index: "warehouse", Item: "stone", Count: 4})
	h.Publish(Event{Type: "extract", Index: "depot", Item: "dirt", Count: 1})

	AssertEqual(len(all.Events), 2)
	AssertEqual(len(warehouse.Events), 1)

	event := <-warehouse.Events
	AssertEqual(event.Type, "insert")
	AssertEqual(event.Count, 4)
}

func TestHubSlowSubscriber(t *testing.T) {

	h := NewHub()
	s := h.Subscribe("warehouse")

	// overflow the buffer, publishing must not block
	for i := 0; i < 1000; i++ {
		h.Publish(Event{Type: "insert", Index: "warehouse", Count: i})
	}

	AssertEqual(len(s.Events), cap(s.Events))
}

func TestHubUnsubscribe(t *testing.T) {

	h := NewHub()
	s := h.Subscribe("")

	h.Unsubscribe(s)
	h.Unsubscribe(s) // second time is a no-op

	// channel is closed and drained
	_, open := <-s.Events
	AssertFalse(open)

	h.Publish(Event{Type: "insert", Index: "warehouse"})
}

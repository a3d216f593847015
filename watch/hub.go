package watch

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Event is one observable change on an index: item flow, binding
// mutations or reconciliation passes.
type Event struct {
	Type  string `json:"type"` // insert|extract|transaction|reindex|bind|unbind
	Index string `json:"index"`
	Item  string `json:"item,omitempty"`
	Count int    `json:"count,omitempty"`
	Peer  string `json:"peer,omitempty"`
}

type Subscriber struct {
	Events chan Event
	index  string // "" subscribes to every index
}

// Hub fans events out to subscribers. Publishing never blocks: a
// subscriber that cannot keep up loses events instead of stalling item
// flow.
type Hub struct {
	mutex       sync.Mutex
	subscribers map[*Subscriber]struct{}
}

func NewHub() *Hub {
	return &Hub{
		subscribers: map[*Subscriber]struct{}{},
	}
}

func (h *Hub) Subscribe(index string) *Subscriber {
	s := &Subscriber{
		Events: make(chan Event, 64),
		index:  index,
	}

	h.mutex.Lock()
	h.subscribers[s] = struct{}{}
	h.mutex.Unlock()

	return s
}

func (h *Hub) Unsubscribe(s *Subscriber) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if _, exists := h.subscribers[s]; !exists {
		return
	}
	delete(h.subscribers, s)
	close(s.Events)
}

func (h *Hub) Publish(event Event) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for s := range h.subscribers {
		if s.index != "" && s.index != event.Index {
			continue
		}
		select {
		case s.Events <- event:
		default:
			// subscriber too slow, drop
		}
	}
}

// ServeConn pumps a subscription into a websocket until the peer goes
// away or the subscription is closed.
func (h *Hub) ServeConn(conn *websocket.Conn, index string) {
	s := h.Subscribe(index)
	defer h.Unsubscribe(s)
	defer conn.Close()

	// drain (and ignore) client frames to notice disconnects
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.Unsubscribe(s)
				return
			}
		}
	}()

	for event := range s.Events {
		if err := conn.WriteJSON(event); err != nil {
			return
		}
	}
}

package inventory

import (
	"strings"
	"sync"
	"testing"

	. "github.com/fulldump/biff"
)

func TestBind_Dedup(t *testing.T) {
	a := NewIndex()
	b := NewIndex()

	AssertEqual(a.Bind(Link{Peer: b.ID(), Tag: "east"}), Bind)
	AssertEqual(len(a.BoundLinks()), 1)

	// same peer again, different metadata: replaced, never duplicated
	AssertEqual(a.Bind(Link{Peer: b.ID(), Tag: "west"}), Replace)

	links := a.BoundLinks()
	AssertEqual(len(links), 1)
	AssertEqual(links[0].Peer, b.ID())
	AssertEqual(links[0].Tag, "west")
}

func TestBind_Self(t *testing.T) {
	a := NewIndex()

	AssertEqual(a.Bind(Link{Peer: a.ID()}), NoBind)
	AssertEqual(a.Bind(Link{}), NoBind)
	AssertEqual(len(a.BoundLinks()), 0)
}

func TestBind_CheckBind(t *testing.T) {
	a := NewIndex()
	b := NewIndex()
	a.CheckBind = func(link Link) bool {
		return !strings.HasPrefix(link.Tag, "forbidden")
	}

	AssertEqual(a.Bind(Link{Peer: b.ID(), Tag: "forbidden-zone"}), NoBind)
	AssertEqual(len(a.BoundLinks()), 0)
	AssertEqual(a.Bind(Link{Peer: b.ID(), Tag: "ok"}), Bind)
}

func TestUnbind(t *testing.T) {
	a := NewIndex()
	b := NewIndex()
	c := NewIndex()

	AssertFalse(a.Unbind(Link{Peer: b.ID()})) // never bound, not an error

	a.Bind(Link{Peer: b.ID()})
	a.Bind(Link{Peer: c.ID()})

	AssertTrue(a.Unbind(Link{Peer: b.ID()}))
	AssertFalse(a.Unbind(Link{Peer: b.ID()}))

	links := a.BoundLinks()
	AssertEqual(len(links), 1)
	AssertEqual(links[0].Peer, c.ID())
}

func TestBoundLinks_InsertionOrderAndSnapshot(t *testing.T) {
	a := NewIndex()
	b := NewIndex()
	c := NewIndex()

	a.Bind(Link{Peer: b.ID(), Tag: "1"})
	a.Bind(Link{Peer: c.ID(), Tag: "2"})

	links := a.BoundLinks()
	AssertEqual(links[0].Peer, b.ID())
	AssertEqual(links[1].Peer, c.ID())

	// mutating the snapshot does not leak into the index
	links[0].Tag = "mutated"
	AssertEqual(a.BoundLinks()[0].Tag, "1")
}

func TestBind_Symmetric(t *testing.T) {
	// binding is directional: call sites bind both directions
	a := NewIndex()
	b := NewIndex()

	AssertEqual(a.Bind(Link{Peer: b.ID()}), Bind)
	AssertEqual(len(b.BoundLinks()), 0)

	AssertEqual(b.Bind(Link{Peer: a.ID()}), Bind)
	AssertEqual(len(b.BoundLinks()), 1)
}

func TestBind_Concurrency(t *testing.T) {
	a := NewIndex()

	peers := make([]*Index, 20)
	for i := range peers {
		peers[i] = NewIndex()
	}

	wg := &sync.WaitGroup{}
	for _, peer := range peers {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			a.Bind(Link{Peer: id})
			a.Bind(Link{Peer: id, Tag: "again"})
			a.BoundLinks()
		}(peer.ID())
	}
	wg.Wait()

	AssertEqual(len(a.BoundLinks()), len(peers))
}

func TestBindingResult_String(t *testing.T) {
	AssertEqual(NoBind.String(), "NO_BIND")
	AssertEqual(Replace.String(), "REPLACE")
	AssertEqual(Bind.String(), "BIND")
}

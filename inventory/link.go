package inventory

// Link is a directed, non-owning reference to a peer index. Peer is
// the peer's ID (see Index.ID); whoever needs the index itself
// resolves the id through the registry, so a link never keeps a dead
// peer alive. Tag is free-form metadata carried by the link.
type Link struct {
	Peer string `json:"peer"`
	Tag  string `json:"tag"`
}

// BindingResult classifies a bind attempt. Conflicts are routine, so
// they are returned, never raised as errors.
type BindingResult int

const (
	// NoBind - the attempt was rejected and the link set is untouched.
	NoBind BindingResult = iota
	// Replace - a link to the same peer existed, its metadata was
	// overwritten.
	Replace
	// Bind - a genuinely new link was created.
	Bind
)

func (r BindingResult) String() string {
	switch r {
	case NoBind:
		return "NO_BIND"
	case Replace:
		return "REPLACE"
	case Bind:
		return "BIND"
	}
	return "UNKNOWN"
}

// Bind adds link to this index's outbound link set. Links are keyed by
// peer identity: binding a peer twice yields Bind then Replace, and
// the set never holds two links to the same peer. Self-binds, empty
// peers and anything rejected by CheckBind yield NoBind.
//
// Binding is directional. Callers wanting symmetry bind both sides.
func (idx *Index) Bind(link Link) BindingResult {
	if link.Peer == "" || link.Peer == idx.id {
		return NoBind
	}
	if idx.CheckBind != nil && !idx.CheckBind(link) {
		return NoBind
	}

	idx.linksMutex.Lock()
	defer idx.linksMutex.Unlock()

	if i, exists := idx.linkByPeer[link.Peer]; exists {
		idx.links[i] = link
		return Replace
	}

	idx.linkByPeer[link.Peer] = len(idx.links)
	idx.links = append(idx.links, link)

	return Bind
}

// Unbind removes the link to link.Peer. Returns whether a link was
// actually removed; false is not an error, there was just nothing to
// do.
func (idx *Index) Unbind(link Link) bool {
	idx.linksMutex.Lock()
	defer idx.linksMutex.Unlock()

	i, exists := idx.linkByPeer[link.Peer]
	if !exists {
		return false
	}

	delete(idx.linkByPeer, link.Peer)
	idx.links = append(idx.links[:i], idx.links[i+1:]...)
	for j := i; j < len(idx.links); j++ {
		idx.linkByPeer[idx.links[j].Peer] = j
	}

	return true
}

// BoundLinks returns a copy of the outbound links in insertion order.
func (idx *Index) BoundLinks() []Link {
	idx.linksMutex.Lock()
	defer idx.linksMutex.Unlock()

	result := make([]Link, len(idx.links))
	copy(result, idx.links)
	return result
}

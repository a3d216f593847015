package service

import (
	"sort"
	"sync"

	"github.com/fulldump/stockpile/inventory"
	"github.com/fulldump/stockpile/registry"
	"github.com/fulldump/stockpile/watch"
)

// Info is the index summary exposed through the API.
type Info struct {
	Name     string `json:"name"`
	ID       string `json:"id"`
	Keys     int    `json:"keys"`
	Total    int    `json:"total"`
	Free     int    `json:"free"`
	Version  uint64 `json:"version"`
	Accurate bool   `json:"accurate"`
	Links    int    `json:"links"`
	Backends int    `json:"backends"`
}

type Service struct {
	reg *registry.Registry
	hub *watch.Hub

	mutex    sync.Mutex
	backends map[string]int // containers attached per index
}

func NewService(reg *registry.Registry) *Service {
	return &Service{
		reg:      reg,
		hub:      watch.NewHub(),
		backends: map[string]int{},
	}
}

func (s *Service) CreateIndex(name string, slots, stackSize int) (*Info, error) {

	if _, exists := s.reg.GetIndex(name); exists {
		return nil, ErrorIndexAlreadyExists
	}

	index, err := s.reg.CreateIndex(name, inventory.NewContainer(slots, stackSize))
	if err != nil {
		return nil, ErrorIndexAlreadyExists
	}

	// only known peers are bindable
	index.CheckBind = func(link inventory.Link) bool {
		_, exists := s.reg.Resolve(link.Peer)
		return exists
	}

	s.mutex.Lock()
	s.backends[name] = 1
	s.mutex.Unlock()

	return s.info(name, index), nil
}

func (s *Service) GetIndex(name string) (*inventory.Index, error) {
	index, exists := s.reg.GetIndex(name)
	if !exists {
		return nil, ErrorIndexNotFound
	}
	return index, nil
}

func (s *Service) GetInfo(name string) (*Info, error) {
	index, exists := s.reg.GetIndex(name)
	if !exists {
		return nil, ErrorIndexNotFound
	}
	return s.info(name, index), nil
}

func (s *Service) ListIndexes() ([]*Info, error) {
	names := s.reg.Names()
	sort.Strings(names)

	result := []*Info{}
	for _, name := range names {
		index, exists := s.reg.GetIndex(name)
		if !exists {
			continue // dropped while listing
		}
		result = append(result, s.info(name, index))
	}

	return result, nil
}

func (s *Service) DropIndex(name string) error {
	err := s.reg.DropIndex(name)
	if err != nil {
		return ErrorIndexNotFound
	}

	s.mutex.Lock()
	delete(s.backends, name)
	s.mutex.Unlock()

	return nil
}

// AddBackend attaches one more container to an existing index. The
// view covers it after the next reconciliation.
func (s *Service) AddBackend(name string, slots, stackSize int) (*Info, error) {
	index, exists := s.reg.GetIndex(name)
	if !exists {
		return nil, ErrorIndexNotFound
	}

	index.AddStore(inventory.NewContainer(slots, stackSize))
	index.ReIndex()

	s.mutex.Lock()
	s.backends[name]++
	s.mutex.Unlock()

	return s.info(name, index), nil
}

func (s *Service) Watch() *watch.Hub {
	return s.hub
}

func (s *Service) info(name string, index *inventory.Index) *Info {
	entries := index.Entries()
	total := 0
	for _, entry := range entries {
		total += entry.Available
	}

	s.mutex.Lock()
	backends := s.backends[name]
	s.mutex.Unlock()

	return &Info{
		Name:     name,
		ID:       index.ID(),
		Keys:     len(entries),
		Total:    total,
		Free:     index.Free(),
		Version:  index.Version(),
		Accurate: index.Accurate(),
		Links:    len(index.BoundLinks()),
		Backends: backends,
	}
}

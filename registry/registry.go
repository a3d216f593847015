package registry

import (
	"fmt"
	"sync"
	"time"

	"github.com/fulldump/stockpile/inventory"
	"github.com/fulldump/stockpile/metrics"
)

const (
	StatusOpening   = "opening"
	StatusOperating = "operating"
	StatusClosing   = "closing"
)

type Config struct {
	// UpdateInterval is how often every index gets one UpdateIndex
	// step.
	UpdateInterval time.Duration
	// ReindexEvery is the number of update ticks between full
	// ReIndex passes. Zero disables periodic full passes.
	ReindexEvery int
}

// Registry owns the named indexes and drives their reconciliation: an
// UpdateIndex step per index per tick, a full ReIndex every
// ReindexEvery ticks. It also resolves link peer ids back to indexes.
type Registry struct {
	config  *Config
	status  string
	mutex   sync.Mutex
	indexes map[string]*inventory.Index
	byID    map[string]*inventory.Index
	exit    chan struct{}
}

func NewRegistry(config *Config) *Registry {
	if config.UpdateInterval <= 0 {
		config.UpdateInterval = time.Second
	}
	return &Registry{
		config:  config,
		status:  StatusOpening,
		indexes: map[string]*inventory.Index{},
		byID:    map[string]*inventory.Index{},
		exit:    make(chan struct{}),
	}
}

func (r *Registry) CreateIndex(name string, stores ...inventory.Store) (*inventory.Index, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.indexes[name]; exists {
		return nil, fmt.Errorf("index '%s' already exists", name)
	}

	index := inventory.NewIndex(stores...)
	index.ReIndex()

	r.indexes[name] = index
	r.byID[index.ID()] = index

	return index, nil
}

func (r *Registry) GetIndex(name string) (*inventory.Index, bool) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	index, exists := r.indexes[name]
	return index, exists
}

func (r *Registry) DropIndex(name string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	index, exists := r.indexes[name]
	if !exists {
		return fmt.Errorf("index '%s' not found", name)
	}

	delete(r.indexes, name)
	delete(r.byID, index.ID())

	return nil
}

// Resolve maps a link peer id to its index. Links hold ids, never the
// index itself, so a dropped peer simply resolves to nothing.
func (r *Registry) Resolve(id string) (*inventory.Index, bool) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	index, exists := r.byID[id]
	return index, exists
}

// Names returns the index names, detached from internal state.
func (r *Registry) Names() []string {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	names := make([]string, 0, len(r.indexes))
	for name := range r.indexes {
		names = append(names, name)
	}
	return names
}

func (r *Registry) GetStatus() string {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.status
}

// Open transitions the registry to operating. Separated from Start so
// callers can gate traffic on the status before the loop spins up.
func (r *Registry) Open() error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	// never resurrect a closing registry
	if r.status == StatusOpening {
		r.status = StatusOperating
	}
	return nil
}

// Start runs the reconciliation loop until Stop. It blocks, run it in
// a goroutine.
func (r *Registry) Start() error {
	r.Open()

	ticker := time.NewTicker(r.config.UpdateInterval)
	defer ticker.Stop()

	ticks := 0
	for {
		select {
		case <-r.exit:
			return nil
		case <-ticker.C:
			ticks++
			r.tick(ticks)
		}
	}
}

func (r *Registry) tick(ticks int) {
	r.mutex.Lock()
	indexes := make([]*inventory.Index, 0, len(r.indexes))
	for _, index := range r.indexes {
		indexes = append(indexes, index)
	}
	r.mutex.Unlock()

	full := r.config.ReindexEvery > 0 && ticks%r.config.ReindexEvery == 0

	for _, index := range indexes {
		if full {
			index.ReIndex()
			metrics.ReindexRuns.Inc()
			continue
		}
		index.UpdateIndex()
	}
	metrics.UpdateTicks.Inc()
}

func (r *Registry) Stop() error {
	r.mutex.Lock()
	r.status = StatusClosing
	r.mutex.Unlock()

	close(r.exit)
	return nil
}

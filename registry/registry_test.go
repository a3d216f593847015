package registry

import (
	"testing"
	"time"

	. "github.com/fulldump/biff"

	"github.com/fulldump/stockpile/inventory"
)

func TestRegistryLifecycle(t *testing.T) {

	r := NewRegistry(&Config{UpdateInterval: time.Minute})
	AssertEqual(r.GetStatus(), StatusOpening)

	AssertNil(r.Open())
	AssertEqual(r.GetStatus(), StatusOperating)

	done := make(chan error)
	go func() {
		done <- r.Start()
	}()

	AssertNil(r.Stop())
	AssertNil(<-done)
	AssertEqual(r.GetStatus(), StatusClosing)
}

func TestRegistryCreateIndex(t *testing.T) {

	r := NewRegistry(&Config{})

	index, err := r.CreateIndex("alpha", inventory.NewContainer(2, 16))
	AssertNil(err)
	AssertNotNil(index)
	AssertTrue(index.Accurate())

	_, err = r.CreateIndex("alpha")
	AssertNotNil(err)

	AssertEqualJson(r.Names(), []string{"alpha"})
}

func TestRegistryResolve(t *testing.T) {

	r := NewRegistry(&Config{})

	index, _ := r.CreateIndex("alpha")

	resolved, exists := r.Resolve(index.ID())
	AssertTrue(exists)
	AssertEqual(resolved, index)

	AssertNil(r.DropIndex("alpha"))

	_, exists = r.Resolve(index.ID())
	AssertFalse(exists)
}

func TestRegistryDropMissing(t *testing.T) {

	r := NewRegistry(&Config{})
	AssertNotNil(r.DropIndex("nope"))
}

func TestRegistryTick(t *testing.T) {

	r := NewRegistry(&Config{ReindexEvery: 3})

	container := inventory.NewContainer(2, 16)
	index, _ := r.CreateIndex("alpha", container)

	stone := inventory.NewKey("stone", 0)

	// mutate the container behind the index's back
	container.InsertItem(stone, 5, false)
	AssertEqual(index.Quantity(stone), 0)

	// one incremental step covers the single store
	r.tick(1)
	AssertEqual(index.Quantity(stone), 5)

	// a full pass every ReindexEvery ticks
	container.InsertItem(stone, 2, false)
	r.tick(3)
	AssertEqual(index.Quantity(stone), 7)
}

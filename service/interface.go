package service

import (
	"errors"

	"github.com/fulldump/stockpile/inventory"
	"github.com/fulldump/stockpile/watch"
)

var (
	ErrorIndexAlreadyExists = errors.New("index already exists")
	ErrorIndexNotFound      = errors.New("index not found")
)

type Servicer interface { // todo: review naming
	CreateIndex(name string, slots, stackSize int) (*Info, error)
	GetIndex(name string) (*inventory.Index, error)
	GetInfo(name string) (*Info, error)
	ListIndexes() ([]*Info, error)
	DropIndex(name string) error
	AddBackend(name string, slots, stackSize int) (*Info, error)
	Watch() *watch.Hub
}

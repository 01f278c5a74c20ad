package inmemdb

import (
	"sync"

	"github.com/trezcool/ratiba/core/schedule"
)

type (
	DB struct {
		entry *entryTable
	}

	entryTable struct {
		table map[string]*schedule.Entry
		mutex sync.RWMutex
	}
)

func Open() (*DB, error) {
	db := &DB{
		entry: &entryTable{table: make(map[string]*schedule.Entry)},
	}
	return db, nil
}

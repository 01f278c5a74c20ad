package inmemdb

import (
	"sort"

	"github.com/trezcool/ratiba/core/schedule"
)

type entryRepository struct {
	db *entryTable
}

var _ schedule.Repository = (*entryRepository)(nil)

func NewEntryRepository(db *DB) schedule.Repository {
	return &entryRepository{db: db.entry}
}

// query snapshots the table in a deterministic order: date then start time,
// recurring (dateless) entries last, id as the final tie-break.
func (repo *entryRepository) query() []schedule.Entry {
	entries := make([]schedule.Entry, 0, len(repo.db.table))
	for _, e := range repo.db.table {
		entries = append(entries, *e)
	}
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.HasDate() != b.HasDate() {
			return a.HasDate()
		}
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if a.StartTime != b.StartTime {
			return a.StartTime < b.StartTime
		}
		return a.ID < b.ID
	})
	return entries
}

func (repo *entryRepository) QueryAllEntries() ([]schedule.Entry, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.query(), nil
}

func (repo *entryRepository) GetEntryByID(id string) (schedule.Entry, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if e, ok := repo.db.table[id]; ok {
		return *e, nil
	}
	return schedule.Entry{}, schedule.ErrNotFound
}

func (repo *entryRepository) UpsertEntry(entry schedule.Entry) (schedule.Entry, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.table[entry.ID] = &entry
	return entry, nil
}

func (repo *entryRepository) DeleteEntriesByID(ids ...string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for _, id := range ids {
		delete(repo.db.table, id)
	}
	return nil
}

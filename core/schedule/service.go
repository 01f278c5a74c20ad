package schedule

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// errors
	ErrNotFound = errors.New("entry not found")
)

type (
	Repository interface {
		QueryAllEntries() ([]Entry, error)
		GetEntryByID(id string) (Entry, error)
		// UpsertEntry replaces the stored entry sharing the given entry's ID,
		// or creates it.
		UpsertEntry(entry Entry) (Entry, error)
		// DeleteEntriesByID ignores unknown ids.
		DeleteEntriesByID(ids ...string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ne NewEntry) (Entry, error) {
	if err := ne.Validate(); err != nil {
		return Entry{}, err
	}
	entry := ne.entry()
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	return svc.repo.UpsertEntry(entry)
}

func (svc *Service) Update(id string, ue UpdateEntry) (Entry, error) {
	orig, err := svc.repo.GetEntryByID(id)
	if err != nil {
		return Entry{}, err
	}
	if err := ue.Validate(orig); err != nil {
		return Entry{}, err
	}
	return svc.repo.UpsertEntry(ue.merge(orig))
}

func (svc *Service) QueryAll() ([]Entry, error) {
	return svc.repo.QueryAllEntries()
}

func (svc *Service) GetByID(id string) (Entry, error) {
	return svc.repo.GetEntryByID(id)
}

func (svc *Service) Delete(ids ...string) error {
	return svc.repo.DeleteEntriesByID(ids...)
}

// AvailableSlots runs the availability query over the current snapshot.
func (svc *Service) AvailableSlots(now time.Time, filter QueryFilter) ([]Entry, error) {
	entries, err := svc.repo.QueryAllEntries()
	if err != nil {
		return nil, err
	}
	return AvailableSlots(entries, now, filter), nil
}

// UpcomingSlots runs the shortlist query over the current snapshot.
func (svc *Service) UpcomingSlots(now time.Time, limit int) ([]Entry, error) {
	entries, err := svc.repo.QueryAllEntries()
	if err != nil {
		return nil, err
	}
	return UpcomingSlots(entries, now, limit), nil
}

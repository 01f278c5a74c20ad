package schedule

// RepositoryMock is a slice-backed Repository for tests. All writes go
// through the pure mutation gateway, like any production repository should.
type RepositoryMock struct {
	Entries []Entry
}

var _ Repository = (*RepositoryMock)(nil)

func (m *RepositoryMock) QueryAllEntries() ([]Entry, error) {
	return append([]Entry(nil), m.Entries...), nil
}

func (m *RepositoryMock) GetEntryByID(id string) (Entry, error) {
	for _, e := range m.Entries {
		if e.ID == id {
			return e, nil
		}
	}
	return Entry{}, ErrNotFound
}

func (m *RepositoryMock) UpsertEntry(entry Entry) (Entry, error) {
	m.Entries = Upsert(m.Entries, entry)
	return entry, nil
}

func (m *RepositoryMock) DeleteEntriesByID(ids ...string) error {
	for _, id := range ids {
		m.Entries = Remove(m.Entries, id)
	}
	return nil
}

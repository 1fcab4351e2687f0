// Package storage persists inspection reports for the pngtool service in an
// embedded pebble store, keyed by KSUID so report listings sort by creation
// time.
package storage

import (
	"errors"

	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"
)

// ErrNotFound is returned when no report exists for the requested ID.
var ErrNotFound = errors.New("storage: report not found")

// ReportStore is a durable store of serialized inspection reports.
type ReportStore struct {
	db *pebble.DB
}

// OpenReportStore opens (or creates) the report store at path.
func OpenReportStore(path string) (*ReportStore, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, err
	}
	return &ReportStore{db: db}, nil
}

// Create stores a serialized report under a fresh KSUID and returns the ID.
func (s *ReportStore) Create(data []byte) (ksuid.KSUID, error) {
	id := ksuid.New()
	if err := s.db.Set(id.Bytes(), data, pebble.Sync); err != nil {
		return ksuid.Nil, err
	}
	return id, nil
}

// Read returns the serialized report stored under id.
func (s *ReportStore) Read(id ksuid.KSUID) ([]byte, error) {
	data, closer, err := s.db.Get(id.Bytes())
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	defer closer.Close()

	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Delete removes the report stored under id. Deleting a missing report is
// not an error.
func (s *ReportStore) Delete(id ksuid.KSUID) error {
	return s.db.Delete(id.Bytes(), pebble.Sync)
}

// List returns the IDs of all stored reports in creation order.
func (s *ReportStore) List() ([]ksuid.KSUID, error) {
	iter, err := s.db.NewIter(nil)
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var ids []ksuid.KSUID
	for iter.First(); iter.Valid(); iter.Next() {
		id, err := ksuid.FromBytes(iter.Key())
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, iter.Error()
}

// Close closes the underlying store.
func (s *ReportStore) Close() error {
	return s.db.Close()
}

package fakes

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dhima/looking-glass/internal/models"
	"github.com/dhima/looking-glass/internal/storage"
	"github.com/google/uuid"
)

// FakeLogStore is an in-memory implementation of the LogStore interface.
// It counts every call so tests can assert the store was never reached.
type FakeLogStore struct {
	mu    sync.Mutex
	logs  map[string]models.LogRecord
	calls map[string]int

	// Err, when set, is returned by every operation.
	Err error
	// PingErr is returned by Ping.
	PingErr error
}

func NewFakeLogStore() *FakeLogStore {
	return &FakeLogStore{
		logs:  make(map[string]models.LogRecord),
		calls: make(map[string]int),
	}
}

// Calls returns how many times op was invoked, e.g. "CreateLog".
func (f *FakeLogStore) Calls(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

// TotalCalls returns the number of data operations invoked.
func (f *FakeLogStore) TotalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for op, n := range f.calls {
		if op != "Ping" {
			total += n
		}
	}
	return total
}

// Seed stores rec as-is, minting an id and timestamps when missing.
func (f *FakeLogStore) Seed(rec models.LogRecord) models.LogRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
		rec.UpdatedAt = rec.CreatedAt
	}
	f.logs[rec.ID] = cloneRecord(rec)
	return rec
}

func (f *FakeLogStore) CreateLog(_ context.Context, rec models.LogRecord) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["CreateLog"]++
	if f.Err != nil {
		return "", f.Err
	}
	rec.ID = uuid.NewString()
	rec.CreatedAt = time.Now().UTC()
	rec.UpdatedAt = rec.CreatedAt
	f.logs[rec.ID] = cloneRecord(rec)
	return rec.ID, nil
}

func (f *FakeLogStore) ListLogs(_ context.Context, order models.SortOrder) ([]models.LogRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["ListLogs"]++
	if f.Err != nil {
		return nil, f.Err
	}
	list := make([]models.LogRecord, 0, len(f.logs))
	for _, rec := range f.logs {
		list = append(list, cloneRecord(rec))
	}
	sort.Slice(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if order == models.SortAscending {
			a, b = b, a
		}
		if !a.LogDate.Time().Equal(b.LogDate.Time()) {
			return a.LogDate.Time().After(b.LogDate.Time())
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
	return list, nil
}

func (f *FakeLogStore) GetLog(_ context.Context, id string) (*models.LogRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["GetLog"]++
	if f.Err != nil {
		return nil, f.Err
	}
	rec, ok := f.logs[id]
	if !ok {
		return nil, storage.ErrLogNotFound
	}
	out := cloneRecord(rec)
	return &out, nil
}

func (f *FakeLogStore) GetLogByDate(_ context.Context, date models.Date) (*models.LogRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["GetLogByDate"]++
	if f.Err != nil {
		return nil, f.Err
	}
	var found *models.LogRecord
	for _, rec := range f.logs {
		if rec.LogDate != date {
			continue
		}
		if found == nil || rec.CreatedAt.Before(found.CreatedAt) {
			r := cloneRecord(rec)
			found = &r
		}
	}
	if found == nil {
		return nil, storage.ErrLogNotFound
	}
	return found, nil
}

func (f *FakeLogStore) UpdateLog(_ context.Context, id string, rec models.LogRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["UpdateLog"]++
	if f.Err != nil {
		return f.Err
	}
	current, ok := f.logs[id]
	if !ok {
		return storage.ErrLogNotFound
	}
	now := time.Now().UTC()
	if !now.After(current.UpdatedAt) {
		now = current.UpdatedAt.Add(time.Microsecond)
	}
	rec.ID = id
	rec.CreatedAt = current.CreatedAt
	rec.UpdatedAt = now
	f.logs[id] = cloneRecord(rec)
	return nil
}

func (f *FakeLogStore) DeleteLog(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["DeleteLog"]++
	if f.Err != nil {
		return f.Err
	}
	if _, ok := f.logs[id]; !ok {
		return storage.ErrLogNotFound
	}
	delete(f.logs, id)
	return nil
}

func (f *FakeLogStore) Ping(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["Ping"]++
	return f.PingErr
}

func cloneRecord(rec models.LogRecord) models.LogRecord {
	if rec.Tags != nil {
		rec.Tags = append([]string{}, rec.Tags...)
	}
	return rec
}

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/tomypizza/orderdesk/orders"
	"github.com/tomypizza/orderdesk/orders/query"
	"github.com/tomypizza/orderdesk/orders/storage"
)

// jsonFileStore implements Store using a JSON file backend. The whole
// collection is serialized and overwritten on every mutation; between two
// processes the last writer wins.
type jsonFileStore struct {
	filePath    string
	lockManager *storage.LockManager
	logger      *slog.Logger
	seed        []orders.Order

	// File system abstractions
	fs          FileSystem
	lockFactory FileLockFactory
	fileLock    FileLock // Cross-process file locking

	data *storage.StoreData

	// loaded records whether load() found a persisted snapshot. A snapshot
	// holding zero orders is still a snapshot: an empty collection someone
	// deliberately saved must stay empty across opens.
	loaded bool

	// Current view selection, owned by the store so every host sees the
	// same derived list.
	filter orders.Filter
	sort   orders.Sort

	// Pending two-step confirmations keyed by token.
	pending map[string]pendingAction

	subMu sync.Mutex
	subs  []chan Event

	// timeFunc is used to get the current time, defaults to time.Now.
	// Can be overridden for testing.
	timeFunc func() time.Time
}

// newJSONFileStore creates a new JSON file store.
func newJSONFileStore(filePath string, opts ...Option) (*jsonFileStore, error) {
	store := &jsonFileStore{
		filePath:    filePath,
		lockManager: storage.NewLockManager(),
		timeFunc:    time.Now,
		filter:      orders.FilterAll,
		sort:        orders.SortDueAsc,
		pending:     make(map[string]pendingAction),
		data: &storage.StoreData{
			Orders: []orders.Order{},
			Metadata: storage.Metadata{
				Version:   "1.0",
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			},
		},
	}

	// Apply options
	for _, opt := range opts {
		opt(store)
	}

	// Set defaults for dependencies not provided via options
	if store.fs == nil {
		store.fs = &OSFileSystem{}
	}
	if store.lockFactory == nil {
		store.lockFactory = &FlockFactory{}
	}
	if store.logger == nil {
		store.logger = slog.Default()
	}
	if store.seed == nil {
		store.seed = DemoSeed(store.timeFunc())
	}

	lockPath := filePath + ".lock"
	store.fileLock = store.lockFactory.New(lockPath)

	// Load existing data, or seed the demo collection and persist it
	// immediately so a second open sees the same records. Seeding happens
	// only when no snapshot was found at all: a persisted empty collection
	// (a confirmed clear) must survive reopening.
	if err := store.loadWithLock(); err != nil {
		return nil, fmt.Errorf("failed to load data: %w", err)
	}
	if !store.loaded && len(store.seed) > 0 {
		store.data.Orders = append(store.data.Orders, store.seed...)
		if err := store.saveWithLock(); err != nil {
			return nil, fmt.Errorf("failed to persist seed data: %w", err)
		}
		store.logger.Info("seeded demo collection", "records", len(store.seed), "path", filePath)
	}

	return store, nil
}

// Constants for file locking
const (
	lockTimeout    = 3 * time.Second
	lockMaxRetries = 3
	lockRetryDelay = 100 * time.Millisecond
)

// acquireLock attempts to acquire an exclusive file lock with retry logic.
func (s *jsonFileStore) acquireLock(ctx context.Context) error {
	for i := 0; i < lockMaxRetries; i++ {
		locked, err := s.fileLock.TryLockContext(ctx, lockRetryDelay)
		if err != nil {
			return fmt.Errorf("failed to acquire lock: %w", err)
		}
		if locked {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(lockRetryDelay):
		}
	}

	return fmt.Errorf("failed to acquire lock after %d attempts", lockMaxRetries)
}

func (s *jsonFileStore) releaseLock() error {
	return s.fileLock.Unlock()
}

// loadWithLock loads the data file while holding the file lock.
func (s *jsonFileStore) loadWithLock() error {
	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()

	if err := s.acquireLock(ctx); err != nil {
		return err
	}
	defer func() { _ = s.releaseLock() }()

	return s.load()
}

// load reads the JSON file into memory. Caller must handle locking.
func (s *jsonFileStore) load() error {
	if _, err := s.fs.Stat(s.filePath); errors.Is(err, os.ErrNotExist) {
		// File doesn't exist yet, that's OK
		return nil
	}

	data, err := s.fs.ReadFile(s.filePath)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	// Empty file is OK
	if len(data) == 0 {
		return nil
	}

	var storeData storage.StoreData
	if err := json.Unmarshal(data, &storeData); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}
	if storeData.Orders == nil {
		storeData.Orders = []orders.Order{}
	}

	s.data = &storeData
	s.loaded = true
	return nil
}

// saveWithLock saves the data while holding the file lock.
func (s *jsonFileStore) saveWithLock() error {
	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()

	if err := s.acquireLock(ctx); err != nil {
		return err
	}
	defer func() { _ = s.releaseLock() }()

	return s.save()
}

// save writes the in-memory data to the JSON file. Caller must handle
// locking.
func (s *jsonFileStore) save() error {
	s.data.Metadata.UpdatedAt = s.timeFunc()

	data, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	// Write to a temp file, then rename (atomic on most filesystems).
	tmpFile := s.filePath + ".tmp"
	if err := s.fs.WriteFile(tmpFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := s.fs.Rename(tmpFile, s.filePath); err != nil {
		_ = s.fs.Remove(tmpFile)
		return fmt.Errorf("failed to rename file: %w", err)
	}

	return nil
}

// persist saves the collection after a mutation. A failure is non-fatal:
// the in-memory collection stays mutated and remains the source of truth
// for the session; subscribers get an EventPersistFailed notification.
func (s *jsonFileStore) persist() error {
	if err := s.saveWithLock(); err != nil {
		s.logger.Warn("persist failed, keeping in-memory state", "error", err)
		s.notify(Event{Kind: EventPersistFailed, Err: err})
		return fmt.Errorf("failed to save: %w", err)
	}
	return nil
}

// nextID derives a new identifier from the creation timestamp in
// milliseconds, bumping past any collision so ids stay unique even when
// two records are created within the same millisecond.
func (s *jsonFileStore) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	for query.FindByID(s.data.Orders, id) >= 0 {
		id++
	}
	return id
}

// All implements Store.All.
func (s *jsonFileStore) All() ([]orders.Order, error) {
	result, err := s.lockManager.ExecuteWithResult(storage.ReadOperation, func() (interface{}, error) {
		out := make([]orders.Order, len(s.data.Orders))
		copy(out, s.data.Orders)
		return out, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]orders.Order), nil
}

// List implements Store.List.
func (s *jsonFileStore) List(filter orders.Filter, sortKey orders.Sort) ([]orders.Order, error) {
	result, err := s.lockManager.ExecuteWithResult(storage.ReadOperation, func() (interface{}, error) {
		return query.Apply(s.data.Orders, filter, sortKey), nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]orders.Order), nil
}

// GetByID implements Store.GetByID.
func (s *jsonFileStore) GetByID(id int64) (*orders.Order, error) {
	var result *orders.Order
	err := s.lockManager.Execute(storage.ReadOperation, func() error {
		if i := query.FindByID(s.data.Orders, id); i >= 0 {
			o := s.data.Orders[i]
			result = &o
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Add implements Store.Add.
func (s *jsonFileStore) Add(draft orders.Draft) (*orders.Order, error) {
	result, err := s.lockManager.ExecuteWithResult(storage.WriteOperation, func() (interface{}, error) {
		now := s.timeFunc()
		if err := draft.Validate(now); err != nil {
			return nil, err
		}

		priority := draft.Priority
		if priority == "" {
			priority = orders.PriorityMedium
		}

		order := orders.Order{
			ID:          s.nextID(now),
			Name:        draft.Name,
			Description: draft.Description,
			Due:         draft.Due,
			Priority:    priority,
			Status:      orders.StatusPending,
			CreatedAt:   now,
			Location:    draft.Location,
		}

		s.data.Orders = append(s.data.Orders, order)

		err := s.persist()
		return &order, err
	})
	if result == nil {
		return nil, err
	}
	order := result.(*orders.Order)
	s.notify(Event{Kind: EventAdded, ID: order.ID})
	return order, err
}

// Edit implements Store.Edit. A missing id is a no-op.
func (s *jsonFileStore) Edit(id int64, patch orders.Patch) error {
	var found bool
	err := s.lockManager.Execute(storage.WriteOperation, func() error {
		i := query.FindByID(s.data.Orders, id)
		if i < 0 {
			return nil
		}
		found = true

		o := &s.data.Orders[i]
		if patch.Name != nil {
			o.Name = *patch.Name
		}
		if patch.Description != nil {
			o.Description = *patch.Description
		}
		if patch.Due != nil {
			o.Due = *patch.Due
		}
		if patch.Priority != nil {
			if !patch.Priority.Valid() {
				return &orders.ValidationError{Field: "priority", Reason: "must be low, medium or high"}
			}
			o.Priority = *patch.Priority
		}
		if patch.Location != nil {
			o.Location = *patch.Location
		}

		return s.persist()
	})
	if found {
		s.notify(Event{Kind: EventEdited, ID: id})
	}
	return err
}

// Complete implements Store.Complete. Completing an already completed
// record leaves its completion timestamp unchanged.
func (s *jsonFileStore) Complete(id int64) error {
	var completed bool
	err := s.lockManager.Execute(storage.WriteOperation, func() error {
		i := query.FindByID(s.data.Orders, id)
		if i < 0 {
			return nil
		}

		o := &s.data.Orders[i]
		if o.Status == orders.StatusCompleted {
			return nil
		}
		now := s.timeFunc()
		o.Status = orders.StatusCompleted
		o.CompletedAt = &now
		completed = true

		return s.persist()
	})
	if completed {
		s.notify(Event{Kind: EventCompleted, ID: id})
	}
	return err
}

// deleteByID removes the record with the given id. Caller must hold the
// write lock. Deleting a non-existent id is a no-op.
func (s *jsonFileStore) deleteByID(id int64) (bool, error) {
	i := query.FindByID(s.data.Orders, id)
	if i < 0 {
		return false, nil
	}
	s.data.Orders = append(s.data.Orders[:i], s.data.Orders[i+1:]...)
	return true, s.persist()
}

// clearAll empties the collection. Caller must hold the write lock.
func (s *jsonFileStore) clearAll() error {
	s.data.Orders = []orders.Order{}
	return s.persist()
}

// SweepOverdue implements Store.SweepOverdue.
func (s *jsonFileStore) SweepOverdue(grace time.Duration) (int, error) {
	result, err := s.lockManager.ExecuteWithResult(storage.WriteOperation, func() (interface{}, error) {
		now := s.timeFunc()
		swept := 0
		for i := range s.data.Orders {
			o := &s.data.Orders[i]
			if !o.Overdue(now, grace) {
				continue
			}
			o.Status = orders.StatusCompleted
			completedAt := now
			o.CompletedAt = &completedAt
			swept++
		}
		if swept == 0 {
			return 0, nil
		}
		return swept, s.persist()
	})

	swept := 0
	if result != nil {
		swept = result.(int)
	}
	if swept > 0 {
		s.logger.Info("auto-completed overdue orders", "count", swept, "grace", grace)
		s.notify(Event{Kind: EventSwept, Count: swept})
	}
	return swept, err
}

// Close implements Store.Close.
func (s *jsonFileStore) Close() error {
	s.closeSubscribers()
	return s.lockManager.Execute(storage.WriteOperation, func() error {
		// Data is saved on each mutation; just clean up the lock file.
		lockPath := s.filePath + ".lock"
		_ = s.fs.Remove(lockPath)
		return nil
	})
}

package storage

import (
	"sync"
)

// OperationType defines whether an operation is read or write. The
// distinction lets the LockManager use read locks for concurrent reads and
// exclusive locks for writes.
type OperationType int

const (
	// ReadOperation indicates an operation that only reads data.
	ReadOperation OperationType = iota

	// WriteOperation indicates an operation that modifies data.
	WriteOperation
)

// LockManager centralizes lock management for store operations. The core is
// effectively single-writer (mutations come from one host event loop), but
// the sweeper may run on its own goroutine, so all access goes through
// here. Centralizing the strategy prevents lock/unlock/relock bugs.
type LockManager struct {
	mu *sync.RWMutex
}

// NewLockManager creates a ready-to-use lock manager.
func NewLockManager() *LockManager {
	return &LockManager{mu: &sync.RWMutex{}}
}

// Execute runs fn with the appropriate lock held. The lock is released via
// defer, so cleanup happens even if fn panics.
func (lm *LockManager) Execute(opType OperationType, fn func() error) error {
	switch opType {
	case ReadOperation:
		lm.mu.RLock()
		defer lm.mu.RUnlock()
	case WriteOperation:
		lm.mu.Lock()
		defer lm.mu.Unlock()
	}
	return fn()
}

// ExecuteWithResult is Execute for functions that also return a value. The
// caller is responsible for the type assertion on the result.
func (lm *LockManager) ExecuteWithResult(opType OperationType, fn func() (interface{}, error)) (interface{}, error) {
	switch opType {
	case ReadOperation:
		lm.mu.RLock()
		defer lm.mu.RUnlock()
	case WriteOperation:
		lm.mu.Lock()
		defer lm.mu.Unlock()
	}
	return fn()
}

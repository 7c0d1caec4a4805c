// Package store provides the order collection manager: it holds the
// in-memory list of order records, keeps the persisted JSON snapshot
// consistent with it, and exposes typed commands plus change notifications
// so any host UI (CLI, terminal, web) can drive and observe it.
package store

import (
	"time"

	"github.com/tomypizza/orderdesk/orders"
)

// Store is the public interface of the order collection manager.
//
// Mutations persist the whole collection after applying the change in
// memory. A persistence failure never rolls the change back: the in-memory
// collection remains the source of truth for the session and the failure
// is surfaced through the event stream.
type Store interface {
	// List returns the current derived view: the collection filtered and
	// sorted by the given criteria.
	List(filter orders.Filter, sort orders.Sort) ([]orders.Order, error)

	// All returns the full collection in storage order.
	All() ([]orders.Order, error)

	// GetByID returns the record with the given id, or nil.
	GetByID(id int64) (*orders.Order, error)

	// Add validates the draft, assigns an id and creation timestamp,
	// appends the record and persists. Returns the new record.
	Add(draft orders.Draft) (*orders.Order, error)

	// Edit merges the non-nil patch fields into the record with the given
	// id and persists. A missing id is a no-op.
	Edit(id int64, patch orders.Patch) error

	// Complete marks the record completed and stamps CompletedAt.
	// Idempotent: completing an already-completed record changes nothing.
	Complete(id int64) error

	// RequestDelete begins the two-step delete protocol and returns a
	// single-use confirmation token.
	RequestDelete(id int64) (string, error)

	// RequestClearAll begins the two-step clear protocol.
	RequestClearAll() (string, error)

	// Confirm executes the pending action behind the token. Deleting a
	// record that no longer exists is a no-op.
	Confirm(token string) error

	// Cancel discards the pending action behind the token.
	Cancel(token string) error

	// SweepOverdue auto-completes pending records whose due timestamp lies
	// more than grace before now. Returns the number of records swept.
	SweepOverdue(grace time.Duration) (int, error)

	// Dispatch applies a typed command, updating the store's own view
	// selection for SetFilter/SetSort commands.
	Dispatch(cmd Command) error

	// View returns the current filter/sort selection and the records they
	// select.
	View() (orders.Filter, orders.Sort, []orders.Order, error)

	// Watch registers a subscriber for change events. The channel is
	// closed when the store closes.
	Watch() <-chan Event

	// Close closes subscriber channels and removes the lock file.
	Close() error
}

// New creates a JSON-file-backed store at the given path. If the file is
// absent or empty the store seeds the demo collection and persists it
// immediately.
func New(path string, opts ...Option) (Store, error) {
	return newJSONFileStore(path, opts...)
}

// Package orders defines the core order record model shared by every host:
// the record itself, its status and priority enumerations, the draft used
// for creation and edits, and input-time validation.
package orders

import (
	"fmt"
	"time"
)

// Status is the lifecycle state of an order.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Priority is the urgency of an order. Sorting treats high > medium > low.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Rank returns the numeric weight of a priority for descending sorts.
// Unknown values rank below low so malformed data sinks to the bottom.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// Valid reports whether p is one of the known priority values.
func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// Order is a single pizza order record.
//
// ID is unique within the collection and monotonic-ish: it is derived from
// the creation timestamp in milliseconds, bumped on collision. CompletedAt
// is non-nil if and only if Status is StatusCompleted.
type Order struct {
	ID          int64      `json:"id" yaml:"id"`
	Name        string     `json:"name" yaml:"name"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	Due         time.Time  `json:"due" yaml:"due"`
	Priority    Priority   `json:"priority" yaml:"priority"`
	Status      Status     `json:"status" yaml:"status"`
	CreatedAt   time.Time  `json:"created_at" yaml:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty" yaml:"completed_at,omitempty"`
	Location    string     `json:"location,omitempty" yaml:"location,omitempty"`
}

// Completed reports whether the order has been completed.
func (o Order) Completed() bool {
	return o.Status == StatusCompleted
}

// Overdue reports whether a pending order's due time lies more than grace
// before now. Completed orders are never overdue.
func (o Order) Overdue(now time.Time, grace time.Duration) bool {
	if o.Status != StatusPending {
		return false
	}
	return now.Sub(o.Due) > grace
}

// Draft holds the user-supplied fields for a new order.
type Draft struct {
	Name        string
	Description string
	Due         time.Time
	Priority    Priority
	Location    string
}

// Patch specifies fields to change on an existing order. Nil fields are
// left untouched.
type Patch struct {
	Name        *string
	Description *string
	Due         *time.Time
	Priority    *Priority
	Location    *string
}

// ValidationError marks a single draft field as invalid so a host can
// highlight it without parsing error strings.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Validate checks the draft's required fields. The due timestamp must be
// in the future relative to now; this is enforced only at input time and
// never re-checked later.
func (d Draft) Validate(now time.Time) error {
	if d.Name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if d.Due.IsZero() {
		return &ValidationError{Field: "due", Reason: "must be set"}
	}
	if !d.Due.After(now) {
		return &ValidationError{Field: "due", Reason: "must be in the future"}
	}
	if d.Priority != "" && !d.Priority.Valid() {
		return &ValidationError{Field: "priority", Reason: "must be low, medium or high"}
	}
	return nil
}

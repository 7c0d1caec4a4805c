// Package testutil provides shared helpers for store tests: a fixture
// collection with a known shape and small assertion helpers.
package testutil

import (
	"testing"

	"github.com/tomypizza/orderdesk/orders"
)

// AssertOrderCount checks that the slice contains the expected number of
// orders.
func AssertOrderCount(t *testing.T, records []orders.Order, expected int, context ...string) {
	t.Helper()
	if len(records) != expected {
		ctx := ""
		if len(context) > 0 {
			ctx = " " + context[0]
		}
		t.Errorf("expected %d orders%s, got %d", expected, ctx, len(records))
	}
}

// AssertOrderExists verifies that an order with the given id is present.
func AssertOrderExists(t *testing.T, records []orders.Order, id int64) {
	t.Helper()
	for _, o := range records {
		if o.ID == id {
			return
		}
	}
	t.Errorf("order %d not found in results", id)
}

// AssertOrderNotExists verifies that no order with the given id is present.
func AssertOrderNotExists(t *testing.T, records []orders.Order, id int64) {
	t.Helper()
	for _, o := range records {
		if o.ID == id {
			t.Errorf("order %d should not be in results", id)
			return
		}
	}
}

// AssertStatus verifies the status of the order with the given id.
func AssertStatus(t *testing.T, records []orders.Order, id int64, want orders.Status) {
	t.Helper()
	for _, o := range records {
		if o.ID == id {
			if o.Status != want {
				t.Errorf("order %d: expected status %q, got %q", id, want, o.Status)
			}
			if want == orders.StatusCompleted && o.CompletedAt == nil {
				t.Errorf("order %d: completed order is missing its completion timestamp", id)
			}
			if want == orders.StatusPending && o.CompletedAt != nil {
				t.Errorf("order %d: pending order should not carry a completion timestamp", id)
			}
			return
		}
	}
	t.Fatalf("order %d not found", id)
}

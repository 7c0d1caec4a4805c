package testutil

import (
	"testing"
	"time"

	"github.com/tomypizza/orderdesk/orders"
	"github.com/tomypizza/orderdesk/orders/store"
)

// FixtureTime is the frozen "now" every fixture store starts from. Tests
// that need the clock to advance swap the store's time function.
var FixtureTime = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

// Fixture is a known universe of orders: two pending (one of them long
// overdue), one completed.
func Fixture() []orders.Order {
	completedAt := FixtureTime.Add(-30 * time.Minute)
	return []orders.Order{
		{
			ID:        1001,
			Name:      "Margherita",
			Due:       FixtureTime.Add(time.Hour),
			Priority:  orders.PriorityMedium,
			Status:    orders.StatusPending,
			CreatedAt: FixtureTime.Add(-2 * time.Hour),
			Location:  "12 Harbor St",
		},
		{
			ID:        1002,
			Name:      "Capricciosa",
			Due:       FixtureTime.Add(-90 * time.Minute),
			Priority:  orders.PriorityHigh,
			Status:    orders.StatusPending,
			CreatedAt: FixtureTime.Add(-3 * time.Hour),
			Location:  "Olive Square 4",
		},
		{
			ID:          1003,
			Name:        "Diavola",
			Due:         FixtureTime.Add(-time.Hour),
			Priority:    orders.PriorityLow,
			Status:      orders.StatusCompleted,
			CreatedAt:   FixtureTime.Add(-4 * time.Hour),
			CompletedAt: &completedAt,
			Location:    "Pickup at counter",
		},
	}
}

// NewFixtureStore creates an in-memory store preloaded with Fixture(),
// using the mock filesystem and lock so no real files are touched. The
// returned clock pointer controls the store's notion of now.
func NewFixtureStore(t *testing.T) (store.Store, *time.Time) {
	t.Helper()

	now := FixtureTime
	s, err := store.New("orders.json",
		store.WithFileSystem(store.NewMockFileSystem()),
		store.WithFileLockFactory(store.NewMockFileLockFactory()),
		store.WithSeed(Fixture()),
		store.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		t.Fatalf("failed to create fixture store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s, &now
}

package store_test

import (
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/tomypizza/orderdesk/orders"
	"github.com/tomypizza/orderdesk/orders/store"
	"github.com/tomypizza/orderdesk/testutil"
)

// These tests exercise the real filesystem and flock paths.

func TestRoundTripThroughRealFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.json")
	now := testutil.FixtureTime

	s1, err := store.New(path,
		store.WithSeed(testutil.Fixture()),
		store.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	added, err := s1.Add(orders.Draft{
		Name:     "Prosciutto e Funghi",
		Due:      now.Add(2 * time.Hour),
		Priority: orders.PriorityLow,
		Location: "7 Elm Rd",
	})
	if err != nil {
		t.Fatalf("failed to add: %v", err)
	}
	want, err := s1.All()
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	if err := s1.Close(); err != nil {
		t.Fatalf("failed to close: %v", err)
	}

	// A second open of the same file must see a deep-equal collection.
	s2, err := store.New(path)
	if err != nil {
		t.Fatalf("failed to reopen store: %v", err)
	}
	defer func() { _ = s2.Close() }()

	got, err := s2.All()
	if err != nil {
		t.Fatalf("failed to list after reopen: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d records after reopen, got %d", len(want), len(got))
	}
	for i := range want {
		// Compare with timestamps normalized to UTC: JSON round-trips
		// the instant, not the location.
		a, b := normalize(want[i]), normalize(got[i])
		if !reflect.DeepEqual(a, b) {
			t.Errorf("record %d differs after round-trip:\n  want %+v\n  got  %+v", i, a, b)
		}
	}
	testutil.AssertOrderExists(t, got, added.ID)
}

func normalize(o orders.Order) orders.Order {
	o.Due = o.Due.UTC()
	o.CreatedAt = o.CreatedAt.UTC()
	if o.CompletedAt != nil {
		utc := o.CompletedAt.UTC()
		o.CompletedAt = &utc
	}
	return o
}

func TestDeleteThroughConfirmationOnRealFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.json")
	s, err := store.New(path, store.WithSeed(testutil.Fixture()))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	defer func() { _ = s.Close() }()

	token, err := s.RequestDelete(1001)
	if err != nil {
		t.Fatalf("failed to request delete: %v", err)
	}
	if err := s.Confirm(token); err != nil {
		t.Fatalf("failed to confirm delete: %v", err)
	}

	records, _ := s.All()
	testutil.AssertOrderCount(t, records, len(testutil.Fixture())-1)
	testutil.AssertOrderNotExists(t, records, 1001)
}

func TestClearedCollectionSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.json")

	s1, err := store.New(path, store.WithSeed(testutil.Fixture()))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	token, err := s1.RequestClearAll()
	if err != nil {
		t.Fatalf("failed to request clear: %v", err)
	}
	if err := s1.Confirm(token); err != nil {
		t.Fatalf("failed to confirm clear: %v", err)
	}
	_ = s1.Close()

	// The persisted empty collection must not be re-seeded on reopen.
	s2, err := store.New(path)
	if err != nil {
		t.Fatalf("failed to reopen: %v", err)
	}
	defer func() { _ = s2.Close() }()

	records, _ := s2.All()
	testutil.AssertOrderCount(t, records, 0, "after clearing and reopening")
}

func TestMutationsSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.json")

	s1, err := store.New(path, store.WithSeed(testutil.Fixture()))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	if err := s1.Complete(1001); err != nil {
		t.Fatalf("failed to complete: %v", err)
	}
	_ = s1.Close()

	s2, err := store.New(path)
	if err != nil {
		t.Fatalf("failed to reopen: %v", err)
	}
	defer func() { _ = s2.Close() }()

	records, _ := s2.All()
	testutil.AssertStatus(t, records, 1001, orders.StatusCompleted)
}

package store_test

import (
	"errors"
	"testing"

	"github.com/tomypizza/orderdesk/orders/store"
	"github.com/tomypizza/orderdesk/testutil"
)

func TestDeleteRemovesExactlyOneRecord(t *testing.T) {
	s, _ := testutil.NewFixtureStore(t)

	token, err := s.RequestDelete(1002)
	if err != nil {
		t.Fatalf("failed to request delete: %v", err)
	}
	if err := s.Confirm(token); err != nil {
		t.Fatalf("failed to confirm: %v", err)
	}

	records, _ := s.All()
	testutil.AssertOrderCount(t, records, len(testutil.Fixture())-1)
	testutil.AssertOrderNotExists(t, records, 1002)
	testutil.AssertOrderExists(t, records, 1001)
	testutil.AssertOrderExists(t, records, 1003)
}

func TestDeleteNonExistentIDIsNoOp(t *testing.T) {
	s, _ := testutil.NewFixtureStore(t)

	token, _ := s.RequestDelete(9999)
	if err := s.Confirm(token); err != nil {
		t.Fatalf("deleting a missing id should be a no-op, got %v", err)
	}

	records, _ := s.All()
	testutil.AssertOrderCount(t, records, len(testutil.Fixture()))
}

func TestCancelDiscardsPendingAction(t *testing.T) {
	s, _ := testutil.NewFixtureStore(t)

	token, _ := s.RequestDelete(1001)
	if err := s.Cancel(token); err != nil {
		t.Fatalf("failed to cancel: %v", err)
	}

	// The record survives and the token is dead.
	records, _ := s.All()
	testutil.AssertOrderExists(t, records, 1001)
	if err := s.Confirm(token); !errors.Is(err, store.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken after cancel, got %v", err)
	}
}

func TestConfirmationTokenIsSingleUse(t *testing.T) {
	s, _ := testutil.NewFixtureStore(t)

	token, _ := s.RequestDelete(1001)
	if err := s.Confirm(token); err != nil {
		t.Fatalf("first confirm failed: %v", err)
	}
	if err := s.Confirm(token); !errors.Is(err, store.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken on reuse, got %v", err)
	}
}

func TestUnknownTokenRejected(t *testing.T) {
	s, _ := testutil.NewFixtureStore(t)

	if err := s.Confirm("not-a-token"); !errors.Is(err, store.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
	if err := s.Cancel("not-a-token"); !errors.Is(err, store.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestClearAllEmptiesCollection(t *testing.T) {
	s, _ := testutil.NewFixtureStore(t)

	token, err := s.RequestClearAll()
	if err != nil {
		t.Fatalf("failed to request clear: %v", err)
	}
	if err := s.Confirm(token); err != nil {
		t.Fatalf("failed to confirm clear: %v", err)
	}

	records, _ := s.All()
	testutil.AssertOrderCount(t, records, 0, "after clear")
}

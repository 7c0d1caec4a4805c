package sweep_test

import (
	"sync"
	"testing"
	"time"

	"github.com/tomypizza/orderdesk/orders"
	"github.com/tomypizza/orderdesk/orders/sweep"
	"github.com/tomypizza/orderdesk/testutil"
)

// recordingTarget counts sweep passes.
type recordingTarget struct {
	mu     sync.Mutex
	passes int
	grace  time.Duration
}

func (r *recordingTarget) SweepOverdue(grace time.Duration) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.passes++
	r.grace = grace
	return 0, nil
}

func (r *recordingTarget) snapshot() (int, time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.passes, r.grace
}

func TestSweeperRunsImmediatelyAndPeriodically(t *testing.T) {
	target := &recordingTarget{}
	s := sweep.New(target,
		sweep.WithInterval(20*time.Millisecond),
		sweep.WithGrace(45*time.Minute),
	)

	s.Start()
	defer s.Stop()

	deadline := time.Now().Add(2 * time.Second)
	for {
		passes, _ := target.snapshot()
		if passes >= 3 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("expected at least 3 passes, got %d", passes)
		}
		time.Sleep(10 * time.Millisecond)
	}

	_, grace := target.snapshot()
	if grace != 45*time.Minute {
		t.Errorf("expected the configured grace to reach the store, got %v", grace)
	}
}

func TestSweeperStopIsIdempotent(t *testing.T) {
	s := sweep.New(&recordingTarget{}, sweep.WithInterval(time.Hour))
	s.Start()
	s.Stop()
	s.Stop() // second stop must not panic

	// Restart works after a stop.
	s.Start()
	s.Stop()
}

func TestSweeperConcurrentStartStop(t *testing.T) {
	s := sweep.New(&recordingTarget{}, sweep.WithInterval(time.Millisecond))

	// Hammer Start/Stop from several goroutines; run with -race.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				s.Start()
				s.Stop()
			}
		}()
	}
	wg.Wait()
	s.Stop()
}

func TestSweeperAgainstRealStore(t *testing.T) {
	s, _ := testutil.NewFixtureStore(t)

	sw := sweep.New(s, sweep.WithInterval(time.Hour), sweep.WithGrace(60*time.Minute))
	sw.Start()
	defer sw.Stop()

	// The immediate first pass completes the 90-minutes-overdue fixture
	// order.
	deadline := time.Now().Add(2 * time.Second)
	for {
		got, err := s.GetByID(1002)
		if err != nil {
			t.Fatalf("failed to get: %v", err)
		}
		if got.Status == orders.StatusCompleted {
			if got.CompletedAt == nil {
				t.Fatal("swept order is missing its completion timestamp")
			}
			return
		}
		if time.Now().After(deadline) {
			t.Fatal("sweeper never completed the overdue order")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

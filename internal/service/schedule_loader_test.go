package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"go-appointment-board/internal/tableview"

	"github.com/sirupsen/logrus"
)

type stubSource struct {
	mu      sync.Mutex
	calls   int32
	rows    []tableview.Row
	err     error
	release chan struct{}
}

func (s *stubSource) Fetch(ctx context.Context) ([]tableview.Row, error) {
	atomic.AddInt32(&s.calls, 1)
	if s.release != nil {
		<-s.release
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rows, s.err
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func TestLoaderCachesResultIndefinitely(t *testing.T) {
	source := &stubSource{rows: []tableview.Row{{ID: "a1"}, {ID: "a2"}}}
	loader := NewScheduleLoader(testLogger(), source, nil)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		rows, err := loader.Load(ctx, ScheduleCacheKey)
		if err != nil {
			t.Fatalf("Load %d failed: %v", i, err)
		}
		if len(rows) != 2 {
			t.Fatalf("Load %d: expected 2 rows, got %d", i, len(rows))
		}
	}

	if calls := atomic.LoadInt32(&source.calls); calls != 1 {
		t.Errorf("Expected a single source fetch, got %d", calls)
	}
	if status := loader.Status(ScheduleCacheKey); status != LoadStatusReady {
		t.Errorf("Expected ready status, got %s", status)
	}
}

func TestLoaderCollapsesConcurrentLoads(t *testing.T) {
	source := &stubSource{
		rows:    []tableview.Row{{ID: "a1"}},
		release: make(chan struct{}),
	}
	loader := NewScheduleLoader(testLogger(), source, nil)

	ctx := context.Background()
	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := loader.Load(ctx, ScheduleCacheKey); err != nil {
				t.Errorf("Concurrent load failed: %v", err)
			}
		}()
	}

	close(source.release)
	wg.Wait()

	if calls := atomic.LoadInt32(&source.calls); calls != 1 {
		t.Errorf("Expected overlapping loads to collapse into one fetch, got %d", calls)
	}
}

func TestLoaderRecordsFailureAndRetries(t *testing.T) {
	source := &stubSource{err: errors.New("connection refused")}
	loader := NewScheduleLoader(testLogger(), source, nil)

	ctx := context.Background()
	if _, err := loader.Load(ctx, ScheduleCacheKey); err == nil {
		t.Fatal("Expected load failure to surface")
	}
	if status := loader.Status(ScheduleCacheKey); status != LoadStatusFailed {
		t.Fatalf("Expected failed status, got %s", status)
	}

	// The source recovers; the next explicit load retries.
	source.mu.Lock()
	source.err = nil
	source.rows = []tableview.Row{{ID: "a1"}}
	source.mu.Unlock()

	rows, err := loader.Load(ctx, ScheduleCacheKey)
	if err != nil {
		t.Fatalf("Expected retry to succeed, got %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("Expected 1 row after retry, got %d", len(rows))
	}
}

func TestLoaderInvalidateForcesRefetch(t *testing.T) {
	source := &stubSource{rows: []tableview.Row{{ID: "a1"}}}
	loader := NewScheduleLoader(testLogger(), source, nil)

	ctx := context.Background()
	if _, err := loader.Load(ctx, ScheduleCacheKey); err != nil {
		t.Fatalf("Initial load failed: %v", err)
	}

	loader.Invalidate(ctx, ScheduleCacheKey)
	if status := loader.Status(ScheduleCacheKey); status != LoadStatusIdle {
		t.Fatalf("Expected idle status after invalidation, got %s", status)
	}

	if _, err := loader.Load(ctx, ScheduleCacheKey); err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	if calls := atomic.LoadInt32(&source.calls); calls != 2 {
		t.Errorf("Expected a second fetch after invalidation, got %d", calls)
	}
}

package manager

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestConcurrentAcquiresNeverOverlap(t *testing.T) {
	m, fl, _, _ := newTestManager(t, nil)
	fl.delay = 5 * time.Millisecond
	ids := []string{baseID, customID, chatID}
	var wg sync.WaitGroup
	errs := make(chan error, 12)
	for i := 0; i < 12; i++ {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			if _, err := m.Acquire(context.Background(), id, accel); err != nil {
				errs <- err
			}
		}(ids[i%len(ids)])
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("acquire: %v", err)
	}
	fl.mu.Lock()
	defer fl.mu.Unlock()
	if fl.overlap {
		t.Fatalf("load and release overlapped")
	}
	if fl.maxLive != 1 {
		t.Fatalf("expected single residency, peak=%d", fl.maxLive)
	}
}

func TestAcquireHonorsContextWhileWaiting(t *testing.T) {
	m, _, _, _ := newTestManager(t, nil)
	started := make(chan struct{})
	block := make(chan struct{})
	go func() {
		_ = m.Do(context.Background(), baseID, accel, func(Handle) error {
			close(started)
			<-block
			return nil
		})
	}()
	<-started
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := m.Acquire(ctx, customID, accel)
	close(block)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestDoTooBusyWhenQueueFull(t *testing.T) {
	m, _, _, _ := newTestManager(t, func(c *ManagerConfig) {
		c.MaxQueueDepth = 1
		c.MaxWait = 30 * time.Millisecond
	})
	started := make(chan struct{})
	block := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- m.Do(context.Background(), baseID, accel, func(Handle) error {
			close(started)
			<-block
			return nil
		})
	}()
	<-started
	if q := m.Status().QueueLen; q != 0 {
		t.Fatalf("running generation must not count as queued, got %d", q)
	}
	err := m.Do(context.Background(), baseID, accel, func(Handle) error { return nil })
	if !IsTooBusy(err) {
		t.Fatalf("expected too busy, got %v", err)
	}
	close(block)
	if err := <-done; err != nil {
		t.Fatalf("first Do: %v", err)
	}
	if q := m.Status().QueueLen; q != 0 {
		t.Fatalf("queue slot leaked: %d", q)
	}
}

func TestStatusQueueLenCountsWaitersOnly(t *testing.T) {
	m, _, _, _ := newTestManager(t, func(c *ManagerConfig) {
		c.MaxQueueDepth = 4
		c.MaxWait = 2 * time.Second
	})
	started := make(chan struct{})
	block := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = m.Do(context.Background(), baseID, accel, func(Handle) error {
			close(started)
			<-block
			return nil
		})
	}()
	<-started
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.Do(context.Background(), baseID, accel, func(Handle) error { return nil })
		}()
	}
	deadline := time.Now().Add(2 * time.Second)
	for m.Status().QueueLen != 2 {
		if time.Now().After(deadline) {
			t.Fatalf("expected two waiters, got %d", m.Status().QueueLen)
		}
		time.Sleep(2 * time.Millisecond)
	}
	close(block)
	wg.Wait()
	if q := m.Status().QueueLen; q != 0 {
		t.Fatalf("queue not drained: %d", q)
	}
}

func TestDoSerializesGenerationAndSwap(t *testing.T) {
	m, fl, _, _ := newTestManager(t, nil)
	var mu sync.Mutex
	var order []string
	var wg sync.WaitGroup
	for _, id := range []string{baseID, customID, baseID, customID} {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			err := m.Do(context.Background(), id, accel, func(h Handle) error {
				if h.ID() != id {
					t.Errorf("handle %s served request for %s", h.ID(), id)
				}
				if fl.liveCount() != 1 {
					t.Errorf("expected one live handle during generation")
				}
				mu.Lock()
				order = append(order, id)
				mu.Unlock()
				time.Sleep(2 * time.Millisecond)
				return nil
			})
			if err != nil {
				t.Errorf("Do(%s): %v", id, err)
			}
		}(id)
	}
	wg.Wait()
	if len(order) != 4 {
		t.Fatalf("expected 4 generations, got %d", len(order))
	}
}

func TestDoUnsupportedOperation(t *testing.T) {
	m, _, _, _ := newTestManager(t, nil)
	err := m.Do(testCtx(t), baseID, accel, func(h Handle) error {
		_, err := AsChatCompleter(h)
		return err
	})
	if !IsUnsupportedOperation(err) {
		t.Fatalf("expected unsupported operation, got %v", err)
	}
}

func TestFailedSwitchSurfacesLoaderError(t *testing.T) {
	m, fl, _, _ := newTestManager(t, nil)
	if _, err := m.Acquire(testCtx(t), baseID, accel); err != nil {
		t.Fatal(err)
	}
	fl.setAvailable(errBoom)
	if op := m.Switch(customID, accel); op == "" {
		t.Fatalf("expected an operation id")
	}
	m.bg.Wait()
	st := m.Status()
	if !strings.Contains(st.LastError, "loader unavailable") {
		t.Fatalf("expected loader error in status, got %q", st.LastError)
	}
	if st.State != string(StateReady) || st.Current == nil || st.Current.ID != baseID {
		t.Fatalf("resident model must be untouched: %+v", st)
	}
	fl.setAvailable(nil)
	if _, err := m.Acquire(testCtx(t), customID, accel); err != nil {
		t.Fatal(err)
	}
	if st := m.Status(); st.LastError != "" {
		t.Fatalf("successful load should clear the error, got %q", st.LastError)
	}
}

func TestSwitchRunsInBackground(t *testing.T) {
	m, _, _, _ := newTestManager(t, nil)
	op := m.Switch(customID, accel)
	if op == "" {
		t.Fatalf("expected an operation id")
	}
	deadline := time.Now().Add(2 * time.Second)
	for !m.Ready() {
		if time.Now().After(deadline) {
			t.Fatalf("switch did not complete: %+v", m.Snapshot())
		}
		time.Sleep(5 * time.Millisecond)
	}
	if s := m.Snapshot(); s.CurrentModel.ID != customID {
		t.Fatalf("expected %s resident, got %s", customID, s.CurrentModel.ID)
	}
	if err := m.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

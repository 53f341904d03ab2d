package manager

import (
	"errors"
	"fmt"
	"testing"
)

func TestFallbackRetriesWithDefaultAttention(t *testing.T) {
	m, fl, _, pub := newTestManager(t, nil)
	fl.loadErr = func(_ string, cfg LoadConfig) error {
		if cfg.Attention == AttentionOptimized {
			return ErrUnsupportedFeature("flash_attention_2", "optimized attention kernels unavailable")
		}
		return nil
	}
	if _, err := m.Acquire(testCtx(t), baseID, accel); err != nil {
		t.Fatalf("expected fallback to succeed: %v", err)
	}
	if len(fl.configs) != 2 {
		t.Fatalf("expected 2 attempts, got %d", len(fl.configs))
	}
	first, second := fl.configs[0], fl.configs[1]
	if first.Attention != AttentionOptimized || second.Attention != AttentionDefault {
		t.Fatalf("unexpected attention sequence: %s then %s", first.Attention, second.Attention)
	}
	// Only the attention strategy is narrowed.
	second.Attention = AttentionOptimized
	if second != first {
		t.Fatalf("retry changed more than attention: %+v vs %+v", first, fl.configs[1])
	}
	s := m.Snapshot()
	if s.CurrentModel == nil || s.CurrentModel.Config.Attention != AttentionDefault {
		t.Fatalf("resident config should record the fallback: %+v", s.CurrentModel)
	}
	if pub.Count(EventLoadRetry) != 1 || m.Status().FallbacksTotal != 1 {
		t.Fatalf("expected one fallback, events=%v", pub.Names())
	}
}

func TestFallbackMatchesMessageMarkers(t *testing.T) {
	m, fl, _, _ := newTestManager(t, nil)
	fl.loadErr = func(_ string, cfg LoadConfig) error {
		if cfg.Attention == AttentionOptimized {
			return fmt.Errorf("runtime: FlashAttention2 is not supported on this GPU")
		}
		return nil
	}
	if _, err := m.Acquire(testCtx(t), chatID, accel); err != nil {
		t.Fatalf("expected fallback to succeed: %v", err)
	}
	if len(fl.configs) != 2 {
		t.Fatalf("expected 2 attempts, got %d", len(fl.configs))
	}
}

func TestFallbackIsAttemptedOnce(t *testing.T) {
	m, fl, _, _ := newTestManager(t, nil)
	fl.loadErr = func(string, LoadConfig) error {
		return ErrUnsupportedFeature("attention", "")
	}
	_, err := m.Acquire(testCtx(t), baseID, accel)
	var lf loadFailedError
	if !errors.As(err, &lf) {
		t.Fatalf("expected load failed, got %v", err)
	}
	if lf.Attempts != 2 || len(fl.configs) != 2 {
		t.Fatalf("expected exactly 2 attempts, got %d (loader saw %d)", lf.Attempts, len(fl.configs))
	}
	if !IsUnsupportedFeature(err) {
		t.Fatalf("the loader error should stay inspectable: %v", err)
	}
}

func TestNoFallbackForOtherErrors(t *testing.T) {
	m, fl, _, pub := newTestManager(t, nil)
	fl.loadErr = func(string, LoadConfig) error { return errBoom }
	_, err := m.Acquire(testCtx(t), baseID, accel)
	if !IsLoadFailed(err) || !errors.Is(err, errBoom) {
		t.Fatalf("expected wrapped load failure, got %v", err)
	}
	if len(fl.configs) != 1 || pub.Count(EventLoadRetry) != 0 {
		t.Fatalf("unexpected retry: configs=%d events=%v", len(fl.configs), pub.Names())
	}
}

func TestNoFallbackOnCPU(t *testing.T) {
	m, fl, _, _ := newTestManager(t, func(c *ManagerConfig) { c.Settings = cpu })
	fl.loadErr = func(string, LoadConfig) error {
		return ErrUnsupportedFeature("attention", "")
	}
	if _, err := m.Acquire(testCtx(t), baseID, cpu); !IsLoadFailed(err) {
		t.Fatalf("expected load failed, got %v", err)
	}
	if len(fl.configs) != 1 {
		t.Fatalf("default attention must not be retried, got %d attempts", len(fl.configs))
	}
}

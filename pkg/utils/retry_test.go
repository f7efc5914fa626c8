package utils

import (
	"errors"
	"testing"
	"time"
)

func TestRetry(t *testing.T) {
	cfg := RetryConfig{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		Multiplier:   2,
	}

	t.Run("succeeds after transient failures", func(t *testing.T) {
		attempts := 0
		err := Retry(cfg, func() error {
			attempts++
			if attempts < 3 {
				return errors.New("transient")
			}
			return nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if attempts != 3 {
			t.Errorf("expected 3 attempts, got %d", attempts)
		}
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		wantErr := errors.New("persistent")
		attempts := 0
		err := Retry(cfg, func() error {
			attempts++
			return wantErr
		})
		if !errors.Is(err, wantErr) {
			t.Fatalf("expected %v, got %v", wantErr, err)
		}
		if attempts != cfg.MaxAttempts {
			t.Errorf("expected %d attempts, got %d", cfg.MaxAttempts, attempts)
		}
	})

	t.Run("permanent error is not retried", func(t *testing.T) {
		permanent := errors.New("not found")
		attempts := 0
		err := Retry(cfg, func() error {
			attempts++
			return permanent
		}, permanent)
		if !errors.Is(err, permanent) {
			t.Fatalf("expected %v, got %v", permanent, err)
		}
		if attempts != 1 {
			t.Errorf("expected 1 attempt, got %d", attempts)
		}
	})

	t.Run("wrapped permanent error is not retried", func(t *testing.T) {
		permanent := errors.New("not found")
		attempts := 0
		err := Retry(cfg, func() error {
			attempts++
			return errors.Join(errors.New("lookup failed"), permanent)
		}, permanent)
		if !errors.Is(err, permanent) {
			t.Fatalf("expected %v, got %v", permanent, err)
		}
		if attempts != 1 {
			t.Errorf("expected 1 attempt, got %d", attempts)
		}
	})
}

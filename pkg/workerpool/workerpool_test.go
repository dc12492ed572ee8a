package workerpool

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

func TestProcessAllItems(t *testing.T) {
	var sum int32
	err := Process(context.Background(), 3, []int{1, 2, 3, 4},
		func(_ context.Context, v int) error {
			atomic.AddInt32(&sum, int32(v))
			return nil
		}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if sum != 10 {
		t.Fatalf("expected sum 10, got %d", sum)
	}
}

func TestProcessErrorCancels(t *testing.T) {
	var canceled int32
	err := Process(context.Background(), 2, []int{1, 2, 3, 4},
		func(_ context.Context, v int) error {
			if v == 2 {
				return errors.New("boom")
			}
			return nil
		},
		func() {
			atomic.AddInt32(&canceled, 1)
		})
	if err == nil || err.Error() != "boom" {
		t.Fatalf("expected boom, got %v", err)
	}
	if canceled != 1 {
		t.Fatalf("expected onCancel once, got %d", canceled)
	}
}

func TestProcessCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var processed int32
	err := Process(ctx, 2, []int{1, 2},
		func(_ context.Context, _ int) error {
			atomic.AddInt32(&processed, 1)
			return nil
		}, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestProcessZeroWorkers(t *testing.T) {
	var sum int32
	err := Process(context.Background(), 0, []int{5, 7},
		func(_ context.Context, v int) error {
			atomic.AddInt32(&sum, int32(v))
			return nil
		}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if sum != 12 {
		t.Fatalf("expected sum 12, got %d", sum)
	}
}

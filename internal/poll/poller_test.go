package poll

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestRunFetchesImmediately(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fetched := make(chan struct{}, 1)
	p := New("test", time.Hour, func(context.Context) error {
		select {
		case fetched <- struct{}{}:
		default:
		}
		return nil
	})

	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	select {
	case <-fetched:
	case <-time.After(time.Second):
		t.Fatal("expected an immediate fetch before the first tick")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("expected Run to return after cancellation")
	}
}

func TestRunKeepsPollingAfterFetchError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int64
	p := New("test", 10*time.Millisecond, func(context.Context) error {
		calls.Add(1)
		return errors.New("backend unavailable")
	})

	go p.Run(ctx)

	deadline := time.After(time.Second)
	for calls.Load() < 3 {
		select {
		case <-deadline:
			t.Fatalf("expected polling to continue after errors, got %d calls", calls.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestRunDeliversNothingAfterTeardown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var calls atomic.Int64
	p := New("test", 10*time.Millisecond, func(context.Context) error {
		calls.Add(1)
		return nil
	})

	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	time.Sleep(35 * time.Millisecond)
	cancel()
	<-done

	settled := calls.Load()
	time.Sleep(50 * time.Millisecond)
	if calls.Load() != settled {
		t.Fatalf("fetch invoked after teardown: %d -> %d", settled, calls.Load())
	}
}

func TestRunSkipsTicksWhileFetchInFlight(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var active atomic.Int64
	var overlapped atomic.Bool
	p := New("test", 10*time.Millisecond, func(context.Context) error {
		if active.Add(1) > 1 {
			overlapped.Store(true)
		}
		time.Sleep(50 * time.Millisecond)
		active.Add(-1)
		return nil
	})

	go p.Run(ctx)
	time.Sleep(200 * time.Millisecond)
	cancel()

	if overlapped.Load() {
		t.Fatal("expected serialized fetches, observed overlap")
	}
}

func TestRunAbortsInFlightFetchOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	aborted := make(chan struct{})
	p := New("test", time.Hour, func(fetchCtx context.Context) error {
		<-fetchCtx.Done()
		close(aborted)
		return fetchCtx.Err()
	})

	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-aborted:
	case <-time.After(time.Second):
		t.Fatal("expected the in-flight fetch context to be cancelled")
	}
	<-done
}

package catalog

import (
	"sync"
	"testing"
	"time"
)

func TestDebouncerSettles(t *testing.T) {
	var mu sync.Mutex
	var got []string
	d := NewDebouncer(20*time.Millisecond, func(v string) {
		mu.Lock()
		got = append(got, v)
		mu.Unlock()
	})
	defer d.Close()

	d.Set("s")
	d.Set("so")
	d.Set("sod")
	d.Set("sodium")

	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 1 || got[0] != "sodium" {
		t.Errorf("delivered = %v, want [sodium]", got)
	}
}

func TestDebouncerRestartsOnNewInput(t *testing.T) {
	var mu sync.Mutex
	var got []string
	d := NewDebouncer(50*time.Millisecond, func(v string) {
		mu.Lock()
		got = append(got, v)
		mu.Unlock()
	})
	defer d.Close()

	d.Set("first")
	time.Sleep(20 * time.Millisecond)
	// Still inside the quiet period: the pending delivery must be dropped.
	d.Set("second")
	time.Sleep(120 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 1 || got[0] != "second" {
		t.Errorf("delivered = %v, want [second]", got)
	}
}

func TestDebouncerClose(t *testing.T) {
	var mu sync.Mutex
	delivered := false
	d := NewDebouncer(20*time.Millisecond, func(v string) {
		mu.Lock()
		delivered = true
		mu.Unlock()
	})

	d.Set("pending")
	d.Close()
	time.Sleep(80 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if delivered {
		t.Error("delivery ran after Close")
	}

	// Set after Close is a no-op.
	d.Set("late")
	time.Sleep(80 * time.Millisecond)
}

func TestDebouncerCloseWaitsForInFlightDelivery(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	d := NewDebouncer(time.Millisecond, func(v string) {
		close(started)
		<-release
	})

	d.Set("slow")
	<-started

	closed := make(chan struct{})
	go func() {
		d.Close()
		close(closed)
	}()

	// Close must block until the running delivery finishes.
	select {
	case <-closed:
		t.Fatal("Close returned while a delivery was running")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	select {
	case <-closed:
	case <-time.After(time.Second):
		t.Fatal("Close did not return after the delivery finished")
	}
}

func TestDebouncerSequentialValues(t *testing.T) {
	var mu sync.Mutex
	var got []string
	d := NewDebouncer(10*time.Millisecond, func(v string) {
		mu.Lock()
		got = append(got, v)
		mu.Unlock()
	})
	defer d.Close()

	d.Set("first")
	time.Sleep(60 * time.Millisecond)
	d.Set("second")
	time.Sleep(60 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Errorf("delivered = %v, want [first second]", got)
	}
}

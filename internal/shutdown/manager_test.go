package shutdown

import (
	"reflect"
	"sync"
	"testing"
	"time"

	"desk-calculator/internal/logger"
)

type recorder struct {
	name  string
	mu    *sync.Mutex
	order *[]string
}

func (r recorder) Shutdown() {
	r.mu.Lock()
	defer r.mu.Unlock()
	*r.order = append(*r.order, r.name)
}

type blocking chan struct{}

func (b blocking) Shutdown() { <-b }

func TestShutdownReverseOrderOnce(t *testing.T) {
	m := NewManager(logger.NewNop())

	var (
		mu    sync.Mutex
		order []string
	)
	m.Register("history", recorder{name: "history", mu: &mu, order: &order})
	m.Register("controller", recorder{name: "controller", mu: &mu, order: &order})

	m.Shutdown()
	m.Shutdown()

	if want := []string{"controller", "history"}; !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}

	select {
	case <-m.Done():
	default:
		t.Error("Done should be closed after Shutdown")
	}
	if m.Context().Err() == nil {
		t.Error("context should be cancelled after Shutdown")
	}
}

func TestShutdownTimesOutSlowComponent(t *testing.T) {
	m := NewManager(logger.NewNop())
	m.SetComponentTimeout(10 * time.Millisecond)

	release := make(blocking)
	defer close(release)
	m.Register("stuck", release)

	finished := make(chan struct{})
	go func() {
		m.Shutdown()
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("Shutdown did not give up on a stuck component")
	}
}

func TestOnShutdownRunsAfterShutdown(t *testing.T) {
	m := NewManager(logger.NewNop())

	fired := make(chan struct{})
	m.OnShutdown(func() { close(fired) })

	select {
	case <-fired:
		t.Fatal("OnShutdown callback ran before Shutdown")
	case <-time.After(20 * time.Millisecond):
	}

	m.Shutdown()

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("OnShutdown callback did not run after Shutdown")
	}
}

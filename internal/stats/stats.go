// Package stats tracks simulated heartbeat outcomes per node.
//
// Each node accumulates two counters: Local, its own heartbeat results, and
// Children, the aggregated results of every node below it. Recording an
// outcome for an RT therefore also ticks the Children counter of its AP, hub
// and network, mirroring how the simulator's worker nodes report upward.
package stats

import (
	"sync"

	"nodesim/internal/address"
)

// Counter accumulates heartbeat outcomes.
type Counter struct {
	Success uint64 `json:"success"`
	Failure uint64 `json:"failure"`
}

// Record adds one outcome.
func (c *Counter) Record(ok bool) {
	if ok {
		c.Success++
	} else {
		c.Failure++
	}
}

// Total returns the number of recorded outcomes.
func (c Counter) Total() uint64 { return c.Success + c.Failure }

// SuccessRate returns the fraction of successful outcomes, or 0 when nothing
// has been recorded.
func (c Counter) SuccessRate() float64 {
	total := c.Total()
	if total == 0 {
		return 0
	}
	return float64(c.Success) / float64(total)
}

// State is one node's heartbeat statistics.
type State struct {
	Local    Counter `json:"local"`
	Children Counter `json:"children"`
}

// Tracker holds heartbeat state per address.
type Tracker struct {
	mu     sync.Mutex
	states map[address.Address]*State
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{states: make(map[address.Address]*State)}
}

func (t *Tracker) state(addr address.Address) *State {
	s, ok := t.states[addr]
	if !ok {
		s = &State{}
		t.states[addr] = s
	}
	return s
}

// Record stores one heartbeat outcome for the node at addr and propagates it
// into the Children counter of every ancestor.
func (t *Tracker) Record(addr address.Address, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.state(addr).Local.Record(ok)
	for parent, more := addr.Parent(); more; parent, more = parent.Parent() {
		t.state(parent).Children.Record(ok)
	}
}

// Snapshot returns the state for addr. With reset, the stored state is zeroed
// after the read, as the worker API's stats request does.
func (t *Tracker) Snapshot(addr address.Address, reset bool) State {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.states[addr]
	if !ok {
		return State{}
	}
	out := *s
	if reset {
		*s = State{}
	}
	return out
}

// Forget drops the state for addr, for nodes removed from the topology.
func (t *Tracker) Forget(addr address.Address) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.states, addr)
}

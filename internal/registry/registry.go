// Package registry provides the in-memory address -> node table for the
// simulated network.
//
// Every node created by the manager layer is registered here under its
// hierarchical address, giving the rest of the system a single lookup point.
// The registry holds nodes only while they are part of the topology; removing
// a node from the tree deregisters it. There is no persistence behind the
// table, state lives and dies with the process.
//
// The registry serializes its own access, so it may be read from any
// goroutine. Topology mutation itself remains single-threaded; the registry
// lock guards the table, not the nodes.
package registry

import (
	"sync"

	"nodesim/internal/address"
	"nodesim/internal/domain"
	"nodesim/internal/observability"
)

// Registry maps addresses to the entities living at them.
type Registry struct {
	mu    sync.RWMutex
	nodes map[address.Address]domain.Entity
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{nodes: make(map[address.Address]domain.Entity)}
}

// Register stores entity under addr, replacing any previous occupant.
func (r *Registry) Register(addr address.Address, entity domain.Entity) {
	r.mu.Lock()
	r.nodes[addr] = entity
	n := len(r.nodes)
	r.mu.Unlock()

	observability.SetRegisteredNodes(n)
}

// Deregister removes the entity at addr. Unknown addresses are a no-op.
func (r *Registry) Deregister(addr address.Address) {
	r.mu.Lock()
	delete(r.nodes, addr)
	n := len(r.nodes)
	r.mu.Unlock()

	observability.SetRegisteredNodes(n)
}

// Lookup returns the entity at addr, if any.
func (r *Registry) Lookup(addr address.Address) (domain.Entity, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entity, ok := r.nodes[addr]
	return entity, ok
}

// Len returns the number of registered nodes.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.nodes)
}

// Walk calls fn for every registered node, in unspecified order, until fn
// returns false. The table is not mutated during the walk.
func (r *Registry) Walk(fn func(addr address.Address, entity domain.Entity) bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for addr, entity := range r.nodes {
		if !fn(addr, entity) {
			return
		}
	}
}

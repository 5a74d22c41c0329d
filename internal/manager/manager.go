// Package manager builds and maintains the simulated network tree.
//
// The hierarchy is NMS -> Network -> Hub -> AP -> RT. The two lower levels
// are domain entities; networks and hubs are bookkeeping containers. All
// AP/RT association changes go through this package, which always follows the
// remove-then-add protocol, so the two-sided owner/member invariant holds for
// every node it manages.
//
// Children at every level live in an index map. A negative requested index
// asks for the lowest free one; an explicit index that is already taken is an
// error.
package manager

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"nodesim/internal/address"
	"nodesim/internal/config"
	"nodesim/internal/domain"
	"nodesim/internal/observability"
	"nodesim/internal/registry"
	"nodesim/internal/stats"
)

// AutoIndex requests automatic index allocation.
const AutoIndex = -1

var (
	// ErrIndexInUse is returned when an explicitly requested index is taken.
	ErrIndexInUse = errors.New("index already in use")
	// ErrNotFound is returned when no child exists at an index.
	ErrNotFound = errors.New("not found")
)

// nextIndex resolves a requested child index against the existing children:
// negative means lowest free non-negative index, anything else must be free.
func nextIndex[T any](children map[int]T, requested int) (int, error) {
	if requested < 0 {
		idx := 0
		for {
			if _, ok := children[idx]; !ok {
				return idx, nil
			}
			idx++
		}
	}
	if _, ok := children[requested]; ok {
		return 0, fmt.Errorf("index %d: %w", requested, ErrIndexInUse)
	}
	return requested, nil
}

// NMS is the top of the simulated network tree.
type NMS struct {
	cfg      *config.Config
	reg      *registry.Registry
	tracker  *stats.Tracker
	log      zerolog.Logger
	networks map[int]*Network
}

// New creates an empty NMS using the given collaborators.
func New(cfg *config.Config, reg *registry.Registry, tracker *stats.Tracker, log zerolog.Logger) *NMS {
	return &NMS{
		cfg:      cfg,
		reg:      reg,
		tracker:  tracker,
		log:      log,
		networks: make(map[int]*Network),
	}
}

// NetworkSpec describes a network to create. Zero counts fall back to the
// config defaults; an empty CSI falls back to the configured one.
type NetworkSpec struct {
	Index            int // use AutoIndex for automatic allocation
	CSI              string
	Hubs             int
	APsPerHub        int
	RTsPerAP         int
	HeartbeatSeconds int
	Base             Position
}

// AddNetwork creates a network and populates it with the requested number of
// hubs, each with its APs and RTs.
func (m *NMS) AddNetwork(spec NetworkSpec) (*Network, error) {
	idx, err := nextIndex(m.networks, spec.Index)
	if err != nil {
		return nil, fmt.Errorf("add network: %w", err)
	}

	csi := spec.CSI
	if csi == "" {
		csi = m.cfg.CSI
	}
	hubs := spec.Hubs
	if hubs == 0 {
		hubs = m.cfg.Defaults.HubsPerNetwork
	}

	net := &Network{
		Index: idx,
		CSI:   csi,
		AUID:  uuid.NewString(),
		Addr:  address.Network(idx),
		nms:   m,
		hubs:  make(map[int]*Hub),
	}
	m.networks[idx] = net
	m.log.Info().Str("addr", net.Addr.Tag()).Str("csi", csi).Msg("created network")

	for i := 0; i < hubs; i++ {
		if _, err := net.AddHub(HubSpec{
			Index:            AutoIndex,
			APs:              spec.APsPerHub,
			RTsPerAP:         spec.RTsPerAP,
			HeartbeatSeconds: spec.HeartbeatSeconds,
			Base:             spec.Base,
		}); err != nil {
			return nil, fmt.Errorf("add network: %w", err)
		}
	}

	return net, nil
}

// RemoveNetwork tears down a network and everything under it.
func (m *NMS) RemoveNetwork(index int) error {
	net, ok := m.networks[index]
	if !ok {
		return fmt.Errorf("remove network %d: %w", index, ErrNotFound)
	}

	for idx := range net.hubs {
		if err := net.RemoveHub(idx); err != nil {
			return fmt.Errorf("remove network %d: %w", index, err)
		}
	}
	m.tracker.Forget(net.Addr)
	delete(m.networks, index)
	m.log.Info().Str("addr", net.Addr.Tag()).Msg("removed network")
	return nil
}

// Network returns the network at index.
func (m *NMS) Network(index int) (*Network, error) {
	net, ok := m.networks[index]
	if !ok {
		return nil, fmt.Errorf("network %d: %w", index, ErrNotFound)
	}
	return net, nil
}

// Networks returns the live child map. Callers must not mutate it.
func (m *NMS) Networks() map[int]*Network { return m.networks }

// RecordHeartbeat stores one simulated heartbeat outcome for the node at
// addr, propagating into the ancestors' children counters.
func (m *NMS) RecordHeartbeat(addr address.Address, ok bool) {
	m.tracker.Record(addr, ok)
	observability.RecordHeartbeat(ok)
}

// Stats returns the heartbeat state for addr, optionally resetting it.
func (m *NMS) Stats(addr address.Address, reset bool) stats.State {
	return m.tracker.Snapshot(addr, reset)
}

// Graph derives the display graph over every AP in every network.
func (m *NMS) Graph() *domain.Graph {
	var aps []*domain.AP
	for _, net := range m.networks {
		for _, hub := range net.hubs {
			for _, ap := range hub.aps {
				aps = append(aps, ap.AP)
			}
		}
	}
	return domain.DeriveGraph(aps)
}

// Registry exposes the address table shared by the tree.
func (m *NMS) Registry() *registry.Registry { return m.reg }

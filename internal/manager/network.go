package manager

import (
	"fmt"

	"github.com/google/uuid"

	"nodesim/internal/address"
)

// Network groups hubs for one customer.
type Network struct {
	Index int
	CSI   string
	AUID  string
	Addr  address.Address

	nms  *NMS
	hubs map[int]*Hub
}

// HubSpec describes a hub to create. Zero counts fall back to the config
// defaults.
type HubSpec struct {
	Index            int // use AutoIndex for automatic allocation
	APs              int
	RTsPerAP         int
	HeartbeatSeconds int
	Base             Position
}

// AddHub creates a hub and populates it with APs and their RTs.
func (n *Network) AddHub(spec HubSpec) (*Hub, error) {
	idx, err := nextIndex(n.hubs, spec.Index)
	if err != nil {
		return nil, fmt.Errorf("add hub: %w", err)
	}

	aps := spec.APs
	if aps == 0 {
		aps = n.nms.cfg.Defaults.APsPerHub
	}

	hub := &Hub{
		Index: idx,
		AUID:  uuid.NewString(),
		Addr:  n.Addr.Hub(idx),
		net:   n,
		aps:   make(map[int]*APNode),
	}
	n.hubs[idx] = hub
	n.nms.log.Info().Str("addr", hub.Addr.Tag()).Int("aps", aps).Msg("created hub")

	for i := 0; i < aps; i++ {
		if _, err := hub.AddAP(APSpec{
			Index:            AutoIndex,
			RTs:              spec.RTsPerAP,
			HeartbeatSeconds: spec.HeartbeatSeconds,
			Pos:              spec.Base,
		}); err != nil {
			return nil, fmt.Errorf("add hub: %w", err)
		}
	}

	return hub, nil
}

// RemoveHub tears down the hub at index and everything under it.
func (n *Network) RemoveHub(index int) error {
	hub, ok := n.hubs[index]
	if !ok {
		return fmt.Errorf("remove hub %d: %w", index, ErrNotFound)
	}

	for idx := range hub.aps {
		if err := hub.RemoveAP(idx); err != nil {
			return fmt.Errorf("remove hub %d: %w", index, err)
		}
	}
	n.nms.tracker.Forget(hub.Addr)
	delete(n.hubs, index)
	n.nms.log.Info().Str("addr", hub.Addr.Tag()).Msg("removed hub")
	return nil
}

// Hub returns the hub at index.
func (n *Network) Hub(index int) (*Hub, error) {
	hub, ok := n.hubs[index]
	if !ok {
		return nil, fmt.Errorf("hub %d: %w", index, ErrNotFound)
	}
	return hub, nil
}

// Hubs returns the live child map. Callers must not mutate it.
func (n *Network) Hubs() map[int]*Hub { return n.hubs }

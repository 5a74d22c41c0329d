package manager

import (
	"fmt"

	"github.com/google/uuid"

	"nodesim/internal/address"
	"nodesim/internal/domain"
	"nodesim/internal/observability"
)

// Hub groups APs under a network.
type Hub struct {
	Index int
	AUID  string
	Addr  address.Address

	net *Network
	aps map[int]*APNode
}

// APNode is a domain AP placed in the tree: the entity itself plus its
// address, position and simulation parameters.
type APNode struct {
	Index            int
	AUID             string
	Addr             address.Address
	AP               *domain.AP
	Pos              Position
	HeartbeatSeconds int

	rts map[int]*RTNode
}

// RTNode is a domain RT placed in the tree.
type RTNode struct {
	Index int
	Addr  address.Address
	RT    *domain.RT
	Pos   Position
}

// APSpec describes an AP to create. A zero RT count falls back to the config
// default; zero heartbeat seconds fall back to the configured interval.
type APSpec struct {
	Index            int // use AutoIndex for automatic allocation
	RTs              int
	HeartbeatSeconds int
	Pos              Position
}

// AddAP creates an AP with generated node ids, attaches the requested number
// of RTs through the domain association manager, and registers every entity
// under its address. RTs are placed with bounded jitter around the AP's
// position.
func (h *Hub) AddAP(spec APSpec) (*APNode, error) {
	idx, err := nextIndex(h.aps, spec.Index)
	if err != nil {
		return nil, fmt.Errorf("add ap: %w", err)
	}

	rts := spec.RTs
	if rts == 0 {
		rts = h.net.nms.cfg.Defaults.RTsPerAP
	}
	heartbeat := spec.HeartbeatSeconds
	if heartbeat == 0 {
		heartbeat = h.net.nms.cfg.Defaults.HeartbeatSeconds
	}

	ap := domain.NewAP(domain.InvalidID)
	observability.RecordNodeCreated(string(domain.KindAP))

	node := &APNode{
		Index:            idx,
		AUID:             uuid.NewString(),
		Addr:             h.Addr.AP(idx),
		AP:               ap,
		Pos:              spec.Pos,
		HeartbeatSeconds: heartbeat,
		rts:              make(map[int]*RTNode),
	}
	h.net.nms.reg.Register(node.Addr, ap)

	maxDiff := h.net.nms.cfg.Placement.MaxDiffDeg
	for i := 0; i < rts; i++ {
		rt := domain.NewRT(domain.InvalidID)
		observability.RecordNodeCreated(string(domain.KindRT))

		ap.AddMember(rt)
		observability.RecordAssociation("add")

		rtNode := &RTNode{
			Index: i,
			Addr:  node.Addr.RT(i),
			RT:    rt,
			Pos:   jitter(spec.Pos, maxDiff),
		}
		node.rts[i] = rtNode
		h.net.nms.reg.Register(rtNode.Addr, rt)
	}

	h.aps[idx] = node
	h.net.nms.log.Info().Str("addr", node.Addr.Tag()).Int("rts", rts).Msg("created AP")
	return node, nil
}

// RemoveAP detaches and deregisters the AP at index and all of its RTs.
func (h *Hub) RemoveAP(index int) error {
	node, ok := h.aps[index]
	if !ok {
		return fmt.Errorf("remove ap %d: %w", index, ErrNotFound)
	}

	for _, rtNode := range node.rts {
		node.AP.RemoveMember(rtNode.RT)
		observability.RecordAssociation("remove")
		h.net.nms.reg.Deregister(rtNode.Addr)
		h.net.nms.tracker.Forget(rtNode.Addr)
	}
	h.net.nms.reg.Deregister(node.Addr)
	h.net.nms.tracker.Forget(node.Addr)
	delete(h.aps, index)

	h.net.nms.log.Info().Str("addr", node.Addr.Tag()).Msg("removed AP")
	return nil
}

// AP returns the AP node at index.
func (h *Hub) AP(index int) (*APNode, error) {
	node, ok := h.aps[index]
	if !ok {
		return nil, fmt.Errorf("ap %d: %w", index, ErrNotFound)
	}
	return node, nil
}

// APs returns the live child map. Callers must not mutate it.
func (h *Hub) APs() map[int]*APNode { return h.aps }

// RT returns the RT node at index.
func (a *APNode) RT(index int) (*RTNode, error) {
	node, ok := a.rts[index]
	if !ok {
		return nil, fmt.Errorf("rt %d: %w", index, ErrNotFound)
	}
	return node, nil
}

// RTs returns the live child map. Callers must not mutate it.
func (a *APNode) RTs() map[int]*RTNode { return a.rts }

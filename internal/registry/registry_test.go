package registry

import (
	"testing"

	"nodesim/internal/address"
	"nodesim/internal/domain"
)

func TestRegisterLookup(t *testing.T) {
	reg := New()
	addr := address.Network(0).Hub(0).AP(1)
	ap := domain.NewAP(42)

	reg.Register(addr, ap)

	got, ok := reg.Lookup(addr)
	if !ok {
		t.Fatal("expected entity at registered address")
	}
	if got != domain.Entity(ap) {
		t.Errorf("Lookup() = %v, want %v", got, ap)
	}
	if reg.Len() != 1 {
		t.Errorf("Len() = %d, want 1", reg.Len())
	}
}

func TestRegisterReplaces(t *testing.T) {
	reg := New()
	addr := address.Network(0).Hub(0).AP(1)

	reg.Register(addr, domain.NewAP(1))
	replacement := domain.NewAP(2)
	reg.Register(addr, replacement)

	got, _ := reg.Lookup(addr)
	if got != domain.Entity(replacement) {
		t.Errorf("Lookup() = %v, want the replacement %v", got, replacement)
	}
	if reg.Len() != 1 {
		t.Errorf("Len() = %d, want 1", reg.Len())
	}
}

func TestDeregister(t *testing.T) {
	reg := New()
	addr := address.Network(0).Hub(0).AP(1).RT(0)
	reg.Register(addr, domain.NewRT(7))

	reg.Deregister(addr)

	if _, ok := reg.Lookup(addr); ok {
		t.Error("expected address empty after Deregister")
	}

	// Unknown address: no-op.
	reg.Deregister(address.Network(9))
	if reg.Len() != 0 {
		t.Errorf("Len() = %d, want 0", reg.Len())
	}
}

func TestWalk(t *testing.T) {
	reg := New()
	hub := address.Network(0).Hub(0)
	for i := 0; i < 3; i++ {
		reg.Register(hub.AP(i), domain.NewAP(domain.InvalidID))
	}

	count := 0
	reg.Walk(func(addr address.Address, entity domain.Entity) bool {
		if entity.Kind() != domain.KindAP {
			t.Errorf("unexpected kind %s at %s", entity.Kind(), addr)
		}
		count++
		return true
	})
	if count != 3 {
		t.Errorf("Walk visited %d nodes, want 3", count)
	}

	// Early stop.
	count = 0
	reg.Walk(func(address.Address, domain.Entity) bool {
		count++
		return false
	})
	if count != 1 {
		t.Errorf("Walk visited %d nodes after early stop, want 1", count)
	}
}

package domain

import (
	"fmt"
	"testing"
)

func TestNewID(t *testing.T) {
	seen := make(map[int]struct{})
	for i := 0; i < 10000; i++ {
		id := NewID()
		if id < 1 || id > MaxID {
			t.Fatalf("NewID() = %d, want value in [1, %d]", id, MaxID)
		}
		seen[id] = struct{}{}
	}
	// 10k draws from a million values collide, but not down to a handful.
	if len(seen) < 9000 {
		t.Errorf("NewID() produced only %d distinct values in 10000 draws", len(seen))
	}
}

func TestNewNode(t *testing.T) {
	t.Run("explicit id is stored verbatim", func(t *testing.T) {
		tests := []int{42, 0, -5, MaxID + 1}
		for _, id := range tests {
			if got := NewNode(id).ID; got != id {
				t.Errorf("NewNode(%d).ID = %d, want %d", id, got, id)
			}
		}
	})

	t.Run("InvalidID requests a generated id", func(t *testing.T) {
		node := NewNode(InvalidID)
		if node.ID < 1 || node.ID > MaxID {
			t.Errorf("NewNode(InvalidID).ID = %d, want value in [1, %d]", node.ID, MaxID)
		}
	})
}

func TestNodeSetNodeID(t *testing.T) {
	node := NewNode(7)
	node.SetNodeID(-3)
	if node.ID != -3 {
		t.Errorf("after SetNodeID(-3), ID = %d, want -3", node.ID)
	}
	if got := node.NodeID(); got != -3 {
		t.Errorf("NodeID() = %d, want -3", got)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		entity Entity
		want   string
	}{
		{NewNode(7), "Node(7)"},
		{NewAP(3), "AP(3)"},
		{NewRT(9), "RT(9)"},
		{NewNode(-5), "Node(-5)"},
	}

	for _, tt := range tests {
		if got := tt.entity.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestStringDispatch(t *testing.T) {
	// The display hook must dispatch to the concrete kind even through a
	// generic handle.
	entities := []Entity{NewNode(1), NewAP(2), NewRT(3)}
	wants := []string{"Node(1)", "AP(2)", "RT(3)"}

	for i, e := range entities {
		if got := fmt.Sprint(e); got != wants[i] {
			t.Errorf("fmt.Sprint(%T) = %q, want %q", e, got, wants[i])
		}
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		entity Entity
		want   Kind
	}{
		{NewNode(1), KindNode},
		{NewAP(1), KindAP},
		{NewRT(1), KindRT},
	}

	for _, tt := range tests {
		if got := tt.entity.Kind(); got != tt.want {
			t.Errorf("%T.Kind() = %s, want %s", tt.entity, got, tt.want)
		}
	}
}

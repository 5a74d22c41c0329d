package domain

import "testing"

func TestAddMember(t *testing.T) {
	t.Run("updates both sides", func(t *testing.T) {
		ap := NewAP(1)
		rt := NewRT(2)

		ap.AddMember(rt)

		if !ap.HasMember(rt) {
			t.Error("expected rt in ap's member set")
		}
		if rt.Owner() != ap {
			t.Errorf("rt.Owner() = %v, want %v", rt.Owner(), ap)
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		ap := NewAP(1)
		rt := NewRT(2)

		ap.AddMember(rt)
		ap.AddMember(rt)

		if got := ap.MemberCount(); got != 1 {
			t.Errorf("MemberCount() = %d, want 1", got)
		}
		if rt.Owner() != ap {
			t.Error("expected rt.Owner() to still be ap")
		}
	})

	t.Run("zero value AP is usable", func(t *testing.T) {
		var ap AP
		rt := NewRT(2)

		ap.AddMember(rt)

		if !ap.HasMember(rt) {
			t.Error("expected rt in zero-value ap's member set")
		}
	})
}

func TestRemoveMember(t *testing.T) {
	t.Run("restores the unassociated state", func(t *testing.T) {
		ap := NewAP(1)
		rt := NewRT(2)
		ap.AddMember(rt)

		ap.RemoveMember(rt)

		if ap.HasMember(rt) {
			t.Error("expected rt removed from ap's member set")
		}
		if rt.Owner() != nil {
			t.Errorf("rt.Owner() = %v, want nil", rt.Owner())
		}
	})

	t.Run("clears the owner even for a non-member", func(t *testing.T) {
		// Removal always clears the back-reference, regardless of whose
		// member set the RT is actually in.
		owner := NewAP(1)
		other := NewAP(2)
		rt := NewRT(3)
		owner.AddMember(rt)

		other.RemoveMember(rt)

		if rt.Owner() != nil {
			t.Errorf("rt.Owner() = %v, want nil", rt.Owner())
		}
		if !owner.HasMember(rt) {
			t.Error("expected owner's member set untouched")
		}
	})

	t.Run("is a no-op on an empty AP", func(t *testing.T) {
		ap := NewAP(1)
		rt := NewRT(2)

		ap.RemoveMember(rt)

		if got := ap.MemberCount(); got != 0 {
			t.Errorf("MemberCount() = %d, want 0", got)
		}
	})
}

func TestReparent(t *testing.T) {
	a1 := NewAP(1)
	a2 := NewAP(2)
	rt := NewRT(3)

	a1.AddMember(rt)
	if rt.Owner() != a1 || !a1.HasMember(rt) {
		t.Fatal("expected rt associated with a1")
	}

	// Adding to a second AP without removing from the first transfers the
	// back-reference but leaves the old forward reference stale.
	a2.AddMember(rt)
	if rt.Owner() != a2 {
		t.Errorf("rt.Owner() = %v, want %v", rt.Owner(), a2)
	}
	if !a1.HasMember(rt) {
		t.Error("expected rt still in a1's member set")
	}
	if !a2.HasMember(rt) {
		t.Error("expected rt in a2's member set")
	}

	// Cleaning up the stale side clears the back-reference as well, even
	// though the current owner is a2.
	a1.RemoveMember(rt)
	if a1.HasMember(rt) {
		t.Error("expected rt removed from a1's member set")
	}
	if rt.Owner() != nil {
		t.Errorf("rt.Owner() = %v, want nil", rt.Owner())
	}
}

func TestReparentTwoStep(t *testing.T) {
	// The documented protocol: remove from the old owner, then add to the new
	// one. The invariant holds at both steps.
	a1 := NewAP(1)
	a2 := NewAP(2)
	rt := NewRT(3)
	a1.AddMember(rt)

	a1.RemoveMember(rt)
	a2.AddMember(rt)

	if a1.HasMember(rt) {
		t.Error("expected rt gone from a1")
	}
	if !a2.HasMember(rt) || rt.Owner() != a2 {
		t.Error("expected rt associated with a2")
	}
}

func TestMembers(t *testing.T) {
	ap := NewAP(1)
	rts := []*RT{NewRT(10), NewRT(11), NewRT(12)}
	for _, rt := range rts {
		ap.AddMember(rt)
	}

	got := ap.Members()
	if len(got) != len(rts) {
		t.Fatalf("len(Members()) = %d, want %d", len(got), len(rts))
	}
	seen := make(map[*RT]bool)
	for _, rt := range got {
		seen[rt] = true
	}
	for _, rt := range rts {
		if !seen[rt] {
			t.Errorf("Members() missing %s", rt)
		}
	}
}

package domain

import "fmt"

// AP is an Access Point: a node that owns a set of member RTs.
type AP struct {
	Node

	members map[*RT]struct{}
}

// NewAP creates an AP with no members. Passing InvalidID assigns a generated
// id.
func NewAP(id int) *AP {
	return &AP{
		Node:    Node{ID: resolveID(id)},
		members: make(map[*RT]struct{}),
	}
}

// AddMember inserts rt into this AP's member set and points rt's owner
// back-reference at this AP. Adding an existing member is a no-op.
//
// If rt currently belongs to a different AP, the back-reference is transferred
// but the old owner's member set is NOT touched, leaving a stale forward
// reference there. Re-parenting is a two-step protocol: RemoveMember on the
// old owner first, then AddMember on the new one.
func (a *AP) AddMember(rt *RT) {
	if a.members == nil {
		a.members = make(map[*RT]struct{})
	}
	a.members[rt] = struct{}{}
	rt.owner = a
}

// RemoveMember erases rt from this AP's member set (no-op if absent) and
// clears rt's owner back-reference.
//
// The back-reference is cleared unconditionally, even when rt's current owner
// is some other AP.
func (a *AP) RemoveMember(rt *RT) {
	delete(a.members, rt)
	rt.owner = nil
}

// HasMember reports whether rt is in this AP's member set.
func (a *AP) HasMember(rt *RT) bool {
	_, ok := a.members[rt]
	return ok
}

// MemberCount returns the number of member RTs.
func (a *AP) MemberCount() int { return len(a.members) }

// Members returns the member RTs in unspecified order.
func (a *AP) Members() []*RT {
	out := make([]*RT, 0, len(a.members))
	for rt := range a.members {
		out = append(out, rt)
	}
	return out
}

// Kind returns KindAP.
func (a *AP) Kind() Kind { return KindAP }

// String returns the display form "AP(<id>)".
func (a *AP) String() string {
	return fmt.Sprintf("%s(%d)", KindAP, a.ID)
}

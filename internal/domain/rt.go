package domain

import "fmt"

// RT is a Remote Terminal: a leaf node with at most one owning AP at a time.
type RT struct {
	Node

	// owner is a back-reference for reverse lookup only. It never extends the
	// AP's lifetime; cycles between an AP and its members are ordinary garbage
	// once nothing else references them.
	owner *AP
}

// NewRT creates an RT with no owner. Passing InvalidID assigns a generated id.
func NewRT(id int) *RT {
	return &RT{Node: Node{ID: resolveID(id)}}
}

// Owner returns the AP this RT currently belongs to, or nil.
func (r *RT) Owner() *AP { return r.owner }

// Kind returns KindRT.
func (r *RT) Kind() Kind { return KindRT }

// String returns the display form "RT(<id>)". It never inspects the owner.
func (r *RT) String() string {
	return fmt.Sprintf("%s(%d)", KindRT, r.ID)
}

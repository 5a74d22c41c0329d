package domain

import "fmt"

// Kind identifies the concrete node kind.
type Kind string

const (
	KindNode Kind = "Node"
	KindAP   Kind = "AP"
	KindRT   Kind = "RT"
)

// Entity is satisfied by every node kind. Callers holding a node through an
// Entity value get the concrete kind's Kind and String, not the base Node's.
type Entity interface {
	fmt.Stringer

	NodeID() int
	SetNodeID(id int)
	Kind() Kind
}

// Node is the base identity shared by every node kind.
type Node struct {
	// ID carries no uniqueness constraint; deduplication, if wanted, is the
	// caller's job.
	ID int
}

// NewNode creates a Node. Passing InvalidID assigns a generated id; any other
// value is stored as-is.
func NewNode(id int) *Node {
	return &Node{ID: resolveID(id)}
}

// NodeID returns the current identifier.
func (n *Node) NodeID() int { return n.ID }

// SetNodeID replaces the identifier. No validation.
func (n *Node) SetNodeID(id int) { n.ID = id }

// Kind returns KindNode.
func (n *Node) Kind() Kind { return KindNode }

// String returns the display form "Node(<id>)".
func (n *Node) String() string {
	return fmt.Sprintf("%s(%d)", KindNode, n.ID)
}

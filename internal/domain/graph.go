package domain

import "sort"

// Graph is the derived view of the AP/RT topology for display or export.
type Graph struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}

// GraphNode represents a node in the view.
type GraphNode struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
	Kind  Kind   `json:"kind"`
}

// GraphEdge represents one current AP->RT membership.
type GraphEdge struct {
	From int `json:"from"` // AP id
	To   int `json:"to"`   // RT id
}

// DeriveGraph converts a set of APs and their members into a Graph. It is a
// pure derivation: the topology is never mutated, and each call reflects the
// memberships at the time of the call.
//
// Nodes and edges are sorted by id so repeated derivations of the same
// topology compare equal.
func DeriveGraph(aps []*AP) *Graph {
	graph := &Graph{
		Nodes: make([]GraphNode, 0, len(aps)),
		Edges: make([]GraphEdge, 0),
	}

	for _, ap := range aps {
		graph.Nodes = append(graph.Nodes, GraphNode{
			ID:    ap.ID,
			Label: ap.String(),
			Kind:  KindAP,
		})
		for _, rt := range ap.Members() {
			graph.Nodes = append(graph.Nodes, GraphNode{
				ID:    rt.ID,
				Label: rt.String(),
				Kind:  KindRT,
			})
			graph.Edges = append(graph.Edges, GraphEdge{From: ap.ID, To: rt.ID})
		}
	}

	sort.Slice(graph.Nodes, func(i, j int) bool {
		if graph.Nodes[i].ID != graph.Nodes[j].ID {
			return graph.Nodes[i].ID < graph.Nodes[j].ID
		}
		return graph.Nodes[i].Kind < graph.Nodes[j].Kind
	})
	sort.Slice(graph.Edges, func(i, j int) bool {
		if graph.Edges[i].From != graph.Edges[j].From {
			return graph.Edges[i].From < graph.Edges[j].From
		}
		return graph.Edges[i].To < graph.Edges[j].To
	})

	return graph
}

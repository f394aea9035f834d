package state

import (
	"fmt"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
)

type NodeId int

// Link is one undirected weighted edge as it appears in a topology feed.
type Link struct {
	A    NodeId
	B    NodeId
	Cost int
}

// Graph is the mutable undirected topology shared by both route strategies.
// Access must be done only on a single goroutine.
type Graph struct {
	adj map[NodeId]map[NodeId]int
}

func NewGraph() *Graph {
	return &Graph{adj: make(map[NodeId]map[NodeId]int)}
}

func NewGraphFromLinks(links []Link) (*Graph, error) {
	g := NewGraph()
	for _, l := range links {
		if err := g.AddOrUpdateEdge(l.A, l.B, l.Cost); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func (g *Graph) touch(n NodeId) map[NodeId]int {
	if _, ok := g.adj[n]; !ok {
		g.adj[n] = make(map[NodeId]int)
	}
	return g.adj[n]
}

// AddOrUpdateEdge sets the symmetric cost between a and b, registering
// either endpoint if it has not been seen before. Re-inserting an existing
// pair overwrites the cost.
func (g *Graph) AddOrUpdateEdge(a, b NodeId, cost int) error {
	if a == b {
		return fmt.Errorf("edge (%d, %d) is a self-loop", a, b)
	}
	if cost < 1 {
		return fmt.Errorf("edge (%d, %d) has invalid cost %d, must be >= 1", a, b, cost)
	}
	g.touch(a)[b] = cost
	g.touch(b)[a] = cost
	return nil
}

// RemoveEdge deletes the edge between a and b in both directions. Removing
// an edge that is not present is a no-op; change feeds may carry stale
// removals. Both endpoints stay known even if they end up isolated.
func (g *Graph) RemoveEdge(a, b NodeId) {
	if adj, ok := g.adj[a]; ok {
		delete(adj, b)
	}
	if adj, ok := g.adj[b]; ok {
		delete(adj, a)
	}
}

// EdgeCost returns the cost of the edge between a and b, if it exists.
func (g *Graph) EdgeCost(a, b NodeId) (int, bool) {
	cost, ok := g.adj[a][b]
	return cost, ok
}

// Neighbors returns a copy of n's adjacency, mapping each neighbour to the
// edge cost. The map is empty for isolated or unknown nodes.
func (g *Graph) Neighbors(n NodeId) map[NodeId]int {
	neigh := make(map[NodeId]int, len(g.adj[n]))
	for m, cost := range g.adj[n] {
		neigh[m] = cost
	}
	return neigh
}

// Nodes returns every node that has ever appeared in an edge.
func (g *Graph) Nodes() mapset.Set[NodeId] {
	nodes := mapset.NewThreadUnsafeSet[NodeId]()
	for n := range g.adj {
		nodes.Add(n)
	}
	return nodes
}

// SortedNodes returns the known nodes in ascending identifier order.
func (g *Graph) SortedNodes() []NodeId {
	nodes := g.Nodes().ToSlice()
	slices.Sort(nodes)
	return nodes
}

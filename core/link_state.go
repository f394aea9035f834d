package core

import (
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/encodeous/routesim/state"
)

// LinkState computes routes over the full known topology, keeping the
// predecessor chain so every forwarding entry carries the complete path
// from source to destination. The next hop is simply the node after the
// source on that path.
type LinkState struct{}

func (LinkState) Name() string { return "ls" }

func (LinkState) ComputeFromSource(g *state.Graph, source state.NodeId) state.Table {
	cost := map[state.NodeId]int{source: 0}
	prev := make(map[state.NodeId]state.NodeId)

	nodes := g.SortedNodes()
	visited := mapset.NewThreadUnsafeSet[state.NodeId]()
	for {
		cur, ok := nextFrontier(nodes, visited, cost)
		if !ok {
			break
		}
		visited.Add(cur)
		for n, c := range g.Neighbors(cur) {
			if visited.Contains(n) {
				continue
			}
			if relaxed := cost[cur] + c; relaxed < costOf(cost, n) {
				cost[n] = relaxed
				prev[n] = cur
			}
		}
	}

	table := state.Table{
		source: {Dest: source, NextHop: source, Cost: 0, Path: []state.NodeId{source}},
	}
	for n, c := range cost {
		if n == source {
			continue
		}
		path := reconstructPath(prev, source, n)
		table[n] = state.ForwardingEntry{
			Dest:    n,
			NextHop: path[1],
			Cost:    c,
			Path:    path,
		}
	}
	return table
}

func reconstructPath(prev map[state.NodeId]state.NodeId, source, dest state.NodeId) []state.NodeId {
	path := []state.NodeId{dest}
	for cur := dest; cur != source; {
		cur = prev[cur]
		path = append(path, cur)
	}
	slices.Reverse(path)
	return path
}

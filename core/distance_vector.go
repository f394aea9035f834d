package core

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/encodeous/routesim/state"
)

// DistanceVector computes routes the way a distance-vector node would learn
// them from its neighbours' advertisements: only the first hop towards each
// destination is retained, inherited from whichever neighbour the winning
// cost arrived through. The selection loop itself picks the global minimum,
// so costs come out identical to a link-state computation; the first-hop
// propagation rule is the distinguishing semantic and is deliberately kept
// (a distance-vector node never knows the downstream path).
type DistanceVector struct{}

func (DistanceVector) Name() string { return "dv" }

func (DistanceVector) ComputeFromSource(g *state.Graph, source state.NodeId) state.Table {
	table := state.Table{
		source: {Dest: source, NextHop: source, Cost: 0},
	}

	cost := map[state.NodeId]int{source: 0}
	nextHop := make(map[state.NodeId]state.NodeId)
	for n, c := range g.Neighbors(source) {
		cost[n] = c
		nextHop[n] = n
	}

	nodes := g.SortedNodes()
	visited := mapset.NewThreadUnsafeSet(source)
	for {
		cur, ok := nextFrontier(nodes, visited, cost)
		if !ok {
			break // every reachable node has been settled
		}
		visited.Add(cur)
		for n, c := range g.Neighbors(cur) {
			if visited.Contains(n) {
				continue
			}
			if relaxed := cost[cur] + c; relaxed < costOf(cost, n) {
				cost[n] = relaxed
				// inherit the first hop used to reach cur, not cur itself
				nextHop[n] = nextHop[cur]
			}
		}
	}

	for n, c := range cost {
		if n == source {
			continue
		}
		table[n] = state.ForwardingEntry{Dest: n, NextHop: nextHop[n], Cost: c}
	}
	return table
}

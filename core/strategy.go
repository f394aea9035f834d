package core

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/encodeous/routesim/state"
)

// Strategy computes one source node's forwarding table over the current
// topology. Implementations must be pure functions of the graph state, so
// per-node computations within a snapshot are independent.
type Strategy interface {
	Name() string
	ComputeFromSource(g *state.Graph, source state.NodeId) state.Table
}

func StrategyByName(name string) (Strategy, error) {
	switch name {
	case "dv":
		return DistanceVector{}, nil
	case "ls":
		return LinkState{}, nil
	}
	return nil, fmt.Errorf("unknown strategy %q, must be one of %v", name, state.Strategies)
}

// nextFrontier selects the unvisited node with the minimum finite cost.
// Ties are broken by the smaller identifier; nodes is expected in ascending
// order, so the strict comparison below keeps the first candidate.
func nextFrontier(nodes []state.NodeId, visited mapset.Set[state.NodeId], cost map[state.NodeId]int) (state.NodeId, bool) {
	best := state.NodeId(0)
	bestCost := state.Inf
	found := false
	for _, n := range nodes {
		if visited.Contains(n) {
			continue
		}
		if c := costOf(cost, n); c < bestCost {
			best = n
			bestCost = c
			found = true
		}
	}
	return best, found
}

func costOf(cost map[state.NodeId]int, n state.NodeId) int {
	if c, ok := cost[n]; ok {
		return c
	}
	return state.Inf
}

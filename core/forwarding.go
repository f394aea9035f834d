package core

import (
	"github.com/encodeous/routesim/state"
)

// BuildTables recomputes every known node's forwarding table from scratch
// against the current topology. Tables are never patched incrementally; a
// full rebuild is the only way to guarantee no stale entry survives a
// multi-edge change.
func BuildTables(g *state.Graph, strat Strategy) map[state.NodeId]state.Table {
	tables := make(map[state.NodeId]state.Table)
	for _, n := range g.SortedNodes() {
		tables[n] = strat.ComputeFromSource(g, n)
	}
	return tables
}

// Deliver resolves one message against the forwarding tables. A missing
// route yields an unreachable record with the payload preserved; it is not
// an error. Under distance-vector only the immediate next hop is reported,
// since that is all the forwarding node knows; under link-state the full
// path minus the final destination is reported.
func Deliver(tables map[state.NodeId]state.Table, msg state.Message) state.DeliveryRecord {
	rec := state.DeliveryRecord{Src: msg.Src, Dst: msg.Dst, Payload: msg.Payload}

	table, ok := tables[msg.Src]
	if !ok {
		return rec
	}
	entry, ok := table[msg.Dst]
	if !ok {
		return rec
	}

	rec.Reachable = true
	rec.Cost = entry.Cost
	if entry.Path != nil {
		rec.Hops = entry.Path[:len(entry.Path)-1]
	} else {
		rec.Hops = []state.NodeId{msg.Src, entry.NextHop}
	}
	return rec
}

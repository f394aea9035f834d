package state

import (
	"fmt"
	"strconv"
	"strings"
)

// ForwardingEntry is one row of a node's forwarding table. Path is only
// populated by the link-state strategy; a distance-vector node never learns
// more than the first hop towards a destination.
type ForwardingEntry struct {
	Dest    NodeId
	NextHop NodeId
	Cost    int
	Path    []NodeId
}

// Table maps destination to the selected forwarding entry for one source
// node. Destinations with no route have no entry. Tables are rebuilt from
// scratch at every snapshot, never patched in place.
type Table map[NodeId]ForwardingEntry

// Message is one (source, destination, payload) triple, replayed unchanged
// against every topology snapshot.
type Message struct {
	Src     NodeId
	Dst     NodeId
	Payload string
}

// Change is one edge mutation from a change feed.
type Change struct {
	A    NodeId
	B    NodeId
	Cost int
}

// IsRemoval reports whether the change removes the edge rather than setting
// its cost.
func (c Change) IsRemoval() bool {
	return c.Cost == RemovalSentinel
}

// DeliveryRecord is the outcome of resolving one message against a
// forwarding table. An unreachable destination is an expected outcome, not
// an error.
type DeliveryRecord struct {
	Src       NodeId
	Dst       NodeId
	Cost      int
	Hops      []NodeId
	Reachable bool
	Payload   string
}

func (r DeliveryRecord) String() string {
	if !r.Reachable {
		return fmt.Sprintf("from %d to %d cost infinite hops unreachable message %s", r.Src, r.Dst, r.Payload)
	}
	hops := make([]string, len(r.Hops))
	for i, h := range r.Hops {
		hops[i] = strconv.Itoa(int(h))
	}
	return fmt.Sprintf("from %d to %d cost %d hops %s message %s", r.Src, r.Dst, r.Cost, strings.Join(hops, " "), r.Payload)
}

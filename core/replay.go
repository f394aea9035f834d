package core

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/encodeous/routesim/state"
)

// Replay drives the whole simulation: snapshot 0 is the initial topology,
// then every change is applied strictly one at a time, each followed by a
// full forwarding-table rebuild and a re-delivery of the original message
// list. Messages are never consumed; the same list is replayed against
// every snapshot so delivery characteristics can be compared over time.
type Replay struct {
	Log      *slog.Logger
	Graph    *state.Graph
	Messages []state.Message
	Changes  []state.Change
	Strategy Strategy
}

func (r *Replay) Run(out io.Writer) error {
	e := NewEmitter(out)

	r.Log.Info("computing initial snapshot",
		"strategy", r.Strategy.Name(),
		"nodes", r.Graph.Nodes().Cardinality(),
		"messages", len(r.Messages),
		"pending changes", len(r.Changes))
	if err := r.snapshot(e); err != nil {
		return err
	}

	for i, ch := range r.Changes {
		if ch.IsRemoval() {
			r.Graph.RemoveEdge(ch.A, ch.B)
			r.Log.Debug("removed edge", "change", i+1, "a", ch.A, "b", ch.B)
		} else {
			if err := r.Graph.AddOrUpdateEdge(ch.A, ch.B, ch.Cost); err != nil {
				return fmt.Errorf("change %d: %w", i+1, err)
			}
			r.Log.Debug("updated edge", "change", i+1, "a", ch.A, "b", ch.B, "cost", ch.Cost)
		}
		if err := r.snapshot(e); err != nil {
			return err
		}
	}

	r.Log.Info("replay complete", "snapshots", len(r.Changes)+1)
	return e.Flush()
}

func (r *Replay) snapshot(e *Emitter) error {
	tables := BuildTables(r.Graph, r.Strategy)
	if err := e.WriteTables(tables); err != nil {
		return err
	}
	for _, msg := range r.Messages {
		if err := e.WriteDelivery(Deliver(tables, msg)); err != nil {
			return err
		}
	}
	return nil
}

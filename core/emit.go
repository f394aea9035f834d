package core

import (
	"bufio"
	"fmt"
	"io"
	"slices"

	"github.com/encodeous/routesim/state"
)

// Emitter writes the output record stream: one forwarding-table block per
// node followed by one delivery line per message, the whole pair repeated
// once per topology snapshot. Everything is emitted in ascending node order
// so a run is byte-for-byte reproducible.
type Emitter struct {
	w *bufio.Writer
}

func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{w: bufio.NewWriter(w)}
}

// WriteTables emits each node's table as "dest nextHop cost" lines in
// ascending destination order, terminated by the node's own self entry and
// a blank line. The self entry doubles as the table boundary marker.
func (e *Emitter) WriteTables(tables map[state.NodeId]state.Table) error {
	sources := make([]state.NodeId, 0, len(tables))
	for n := range tables {
		sources = append(sources, n)
	}
	slices.Sort(sources)

	for _, src := range sources {
		table := tables[src]
		dests := make([]state.NodeId, 0, len(table))
		for d := range table {
			if d != src {
				dests = append(dests, d)
			}
		}
		slices.Sort(dests)

		for _, d := range dests {
			entry := table[d]
			if _, err := fmt.Fprintf(e.w, "%d %d %d\n", entry.Dest, entry.NextHop, entry.Cost); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(e.w, "%d %d 0\n\n", src, src); err != nil {
			return err
		}
	}
	return nil
}

func (e *Emitter) WriteDelivery(rec state.DeliveryRecord) error {
	_, err := fmt.Fprintln(e.w, rec.String())
	return err
}

func (e *Emitter) Flush() error {
	return e.w.Flush()
}

package core

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/encodeous/routesim/state"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// One forwarding-table block per node and one delivery line per message,
// repeated for the initial topology and once per change.
const dvReplayWant = `2 2 5
3 2 10
1 1 0

1 1 5
3 3 5
2 2 0

1 2 10
2 2 5
3 3 0

from 1 to 3 cost 10 hops 1 2 message here is a message
from 3 to 1 cost 10 hops 3 2 message hi
2 2 5
3 2 10
1 1 0

1 1 5
3 3 5
2 2 0

1 2 10
2 2 5
3 3 0

from 1 to 3 cost 10 hops 1 2 message here is a message
from 3 to 1 cost 10 hops 3 2 message hi
2 2 5
1 1 0

1 1 5
2 2 0

3 3 0

from 1 to 3 cost infinite hops unreachable message here is a message
from 3 to 1 cost infinite hops unreachable message hi
`

func dvReplay(t *testing.T) *Replay {
	t.Helper()
	// Removing 1-3 leaves the detour through 2 intact; removing 2-3 cuts
	// node 3 off entirely.
	//
	//      5       5
	//  1 ----- 2 ----- 3
	//   \             /
	//    \----20-----/
	return &Replay{
		Log: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Graph: buildGraph(t,
			state.Link{A: 1, B: 2, Cost: 5},
			state.Link{A: 2, B: 3, Cost: 5},
			state.Link{A: 1, B: 3, Cost: 20}),
		Messages: []state.Message{
			{Src: 1, Dst: 3, Payload: "here is a message"},
			{Src: 3, Dst: 1, Payload: "hi"},
		},
		Changes: []state.Change{
			{A: 1, B: 3, Cost: state.RemovalSentinel},
			{A: 2, B: 3, Cost: state.RemovalSentinel},
		},
		Strategy: DistanceVector{},
	}
}

func TestReplay_DistanceVector(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, dvReplay(t).Run(&out))

	if diff := cmp.Diff(dvReplayWant, out.String()); diff != "" {
		t.Errorf("replay output mismatch (-want +got):\n%s", diff)
	}
}

func TestReplay_Deterministic(t *testing.T) {
	var first, second bytes.Buffer
	require.NoError(t, dvReplay(t).Run(&first))
	require.NoError(t, dvReplay(t).Run(&second))

	assert.True(t, bytes.Equal(first.Bytes(), second.Bytes()))
}

func TestReplay_LinkState(t *testing.T) {
	// 1 --- 2 --- 3 --- 4, no changes: a single snapshot where the
	// delivery reports the whole path minus the destination.
	r := &Replay{
		Log: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Graph: buildGraph(t,
			state.Link{A: 1, B: 2, Cost: 1},
			state.Link{A: 2, B: 3, Cost: 1},
			state.Link{A: 3, B: 4, Cost: 1}),
		Messages: []state.Message{{Src: 1, Dst: 4, Payload: "ping"}},
		Strategy: LinkState{},
	}

	var out bytes.Buffer
	require.NoError(t, r.Run(&out))

	want := `2 2 1
3 2 2
4 2 3
1 1 0

1 1 1
3 3 1
4 3 2
2 2 0

1 2 2
2 2 1
4 4 1
3 3 0

1 3 3
2 3 2
3 3 1
4 4 0

from 1 to 4 cost 3 hops 1 2 3 message ping
`
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("replay output mismatch (-want +got):\n%s", diff)
	}
}

func TestReplay_CostUpdateChange(t *testing.T) {
	// A change with a normal cost updates the edge instead of removing it.
	r := &Replay{
		Log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		Graph:    buildGraph(t, state.Link{A: 1, B: 2, Cost: 5}),
		Changes:  []state.Change{{A: 1, B: 2, Cost: 2}},
		Strategy: DistanceVector{},
	}

	var out bytes.Buffer
	require.NoError(t, r.Run(&out))

	want := `2 2 5
1 1 0

1 1 5
2 2 0

2 2 2
1 1 0

1 1 2
2 2 0

`
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("replay output mismatch (-want +got):\n%s", diff)
	}
}

func TestReplay_RejectsInvalidChangeCost(t *testing.T) {
	r := &Replay{
		Log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		Graph:    buildGraph(t, state.Link{A: 1, B: 2, Cost: 5}),
		Changes:  []state.Change{{A: 1, B: 2, Cost: 0}},
		Strategy: DistanceVector{},
	}

	var out bytes.Buffer
	assert.ErrorContains(t, r.Run(&out), "change 1")
}

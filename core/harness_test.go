package core

import (
	"testing"

	"github.com/encodeous/routesim/state"
	"github.com/stretchr/testify/require"
)

func buildGraph(t *testing.T, links ...state.Link) *state.Graph {
	t.Helper()
	g, err := state.NewGraphFromLinks(links)
	require.NoError(t, err)
	return g
}

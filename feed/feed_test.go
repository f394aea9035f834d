package feed

import (
	"strings"
	"testing"

	"github.com/encodeous/routesim/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTopology(t *testing.T) {
	input := `1 2 5
2 3 5

1 3 20
`
	links, err := ParseTopology(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []state.Link{
		{A: 1, B: 2, Cost: 5},
		{A: 2, B: 3, Cost: 5},
		{A: 1, B: 3, Cost: 20},
	}, links)
}

func TestParseTopology_Malformed(t *testing.T) {
	_, err := ParseTopology(strings.NewReader("1 2 5\n1 2\n"))
	assert.ErrorContains(t, err, "topology line 2")

	_, err = ParseTopology(strings.NewReader("1 two 5\n"))
	assert.ErrorContains(t, err, "not an integer")
}

func TestParseChanges_KeepsSentinel(t *testing.T) {
	changes, err := ParseChanges(strings.NewReader("1 3 -999\n2 3 7\n"))
	require.NoError(t, err)
	assert.Equal(t, []state.Change{
		{A: 1, B: 3, Cost: state.RemovalSentinel},
		{A: 2, B: 3, Cost: 7},
	}, changes)
	assert.True(t, changes[0].IsRemoval())
	assert.False(t, changes[1].IsRemoval())
}

func TestParseMessages(t *testing.T) {
	input := "1 3 here is a message\n3 1 hi\n"
	msgs, err := ParseMessages(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []state.Message{
		{Src: 1, Dst: 3, Payload: "here is a message"},
		{Src: 3, Dst: 1, Payload: "hi"},
	}, msgs)
}

func TestParseMessages_PayloadKeepsInnerWhitespace(t *testing.T) {
	msgs, err := ParseMessages(strings.NewReader("1 3 spaced   out  payload\n"))
	require.NoError(t, err)
	assert.Equal(t, "spaced   out  payload", msgs[0].Payload)
}

func TestParseMessages_Malformed(t *testing.T) {
	_, err := ParseMessages(strings.NewReader("1 3\n"))
	assert.ErrorContains(t, err, "message line 1")

	_, err = ParseMessages(strings.NewReader("1 x hello\n"))
	assert.ErrorContains(t, err, "bad destination")
}

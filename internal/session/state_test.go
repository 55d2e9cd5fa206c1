package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNext_HappyPath(t *testing.T) {
	steps := []struct {
		from  State
		event Event
		to    State
	}{
		{StateLanding, EventStart, StateInput},
		{StateInput, EventSubmit, StateLoading},
		{StateLoading, EventComplete, StateResult},
		{StateResult, EventReset, StateInput},
	}
	for _, s := range steps {
		got, err := Next(s.from, s.event)
		require.NoError(t, err, "%s on %s", s.event, s.from)
		assert.Equal(t, s.to, got)
	}
}

func TestNext_Rejected(t *testing.T) {
	cases := []struct {
		from  State
		event Event
	}{
		{StateLanding, EventSubmit},
		{StateLanding, EventReset},
		{StateInput, EventComplete},
		{StateInput, EventStart},
		{StateLoading, EventSubmit},
		{StateLoading, EventReset},
		{StateResult, EventComplete},
		{State("limbo"), EventStart},
	}
	for _, c := range cases {
		got, err := Next(c.from, c.event)
		assert.ErrorIs(t, err, ErrInvalidTransition, "%s on %s", c.event, c.from)
		assert.Equal(t, c.from, got)
	}
}

func TestParseEvent(t *testing.T) {
	e, ok := ParseEvent("submit")
	assert.True(t, ok)
	assert.Equal(t, EventSubmit, e)

	_, ok = ParseEvent("SUBMIT")
	assert.False(t, ok)
	_, ok = ParseEvent("")
	assert.False(t, ok)
}

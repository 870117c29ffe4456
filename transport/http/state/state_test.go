package state_test

import (
	"testing"

	"spa/transport/http/state"

	"github.com/stretchr/testify/assert"
)

func TestState(t *testing.T) {
	s := state.New()

	assert.Equal(t, state.ServerStateStarting, s.Get())
	assert.False(t, s.Ready())

	s.Set(state.ServerStateReady)
	assert.True(t, s.Ready())
	assert.Equal(t, "ready", s.Get().String())

	s.Set(state.ServerStateInGracePeriod)
	assert.False(t, s.Ready())
	assert.Equal(t, "grace", s.Get().String())
}

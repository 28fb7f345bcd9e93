package primitives

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateConfigTransition(t *testing.T) {
	s := NewStateConfig("busy").
		Transition("get_tired", "sleeping").
		Transition("get_hungry", "hungry")

	target, ok := s.Target("get_tired")
	assert.True(t, ok)
	assert.Equal(t, "sleeping", target)

	_, ok = s.Target("study")
	assert.False(t, ok)

	s.Transition("get_tired", "normal")
	target, _ = s.Target("get_tired")
	assert.Equal(t, "normal", target)
}

func TestStateConfigTransitionOnZeroValue(t *testing.T) {
	var s StateConfig
	s.Transition("go", "there")

	target, ok := s.Target("go")
	assert.True(t, ok)
	assert.Equal(t, "there", target)
}

package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState_CanTransition(t *testing.T) {
	all := []State{StateIdle, StateSelecting, StateScanning, StateExportPrompt, StateWriting}
	allowed := map[[2]State]bool{
		{StateIdle, StateSelecting}:        true,
		{StateSelecting, StateScanning}:    true,
		{StateSelecting, StateIdle}:        true,
		{StateScanning, StateExportPrompt}: true,
		{StateExportPrompt, StateWriting}:  true,
		{StateExportPrompt, StateIdle}:     true,
		{StateWriting, StateIdle}:          true,
	}

	for _, from := range all {
		for _, to := range all {
			t.Run(from.String()+"->"+to.String(), func(t *testing.T) {
				assert.Equal(t, allowed[[2]State{from, to}], from.CanTransition(to))
			})
		}
	}
}

func TestState_UnknownHasNoTransitions(t *testing.T) {
	assert.False(t, State("paused").CanTransition(StateIdle))
}

package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLatches_OnlyMoveForward(t *testing.T) {
	var g GunState
	assert.True(t, g.Discard())
	assert.False(t, g.Discard())
	assert.Equal(t, GunDiscarded, g)

	var e ExitState
	assert.True(t, e.Spawn())
	assert.False(t, e.Spawn())
	assert.Equal(t, ExitSpawned, e)

	var w Whereabouts
	assert.False(t, w.Advance(Outside))
	assert.True(t, w.Advance(Inside))
	assert.False(t, w.Advance(Outside), "no going back")
	assert.True(t, w.Advance(BackOutside))
	assert.False(t, w.Advance(Inside))
	assert.False(t, w.Advance(BackOutside+1))
	assert.Equal(t, BackOutside, w)
}

func TestLatches_String(t *testing.T) {
	assert.Equal(t, "carried", GunCarried.String())
	assert.Equal(t, "spawned", ExitSpawned.String())
	assert.Equal(t, "back outside", BackOutside.String())
}

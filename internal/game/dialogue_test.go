package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine_Speaker(t *testing.T) {
	assert.Equal(t, Line{SpeakerPlayer, "I don't have a gun so I couldn't have done that."},
		parseLine("* I don't have a gun so I couldn't have done that."))
	assert.Equal(t, Line{SpeakerPolice, "..."}, parseLine("..."))
	assert.Equal(t, Line{SpeakerPolice, "*no space"}, parseLine("*no space"))
	assert.Equal(t, "You", SpeakerPlayer.String())
	assert.Equal(t, "Police", SpeakerPolice.String())
}

func TestDialogue_PicksSequenceByGun(t *testing.T) {
	good := NewDialogue(GunDiscarded, goodEndingLines, badEndingLines)
	assert.True(t, good.Good())
	assert.Equal(t, "GOOD ENDING", good.EndCard())

	bad := NewDialogue(GunCarried, goodEndingLines, badEndingLines)
	assert.False(t, bad.Good())
	assert.Equal(t, "BAD ENDING", bad.EndCard())
	line, ok := bad.Current()
	require.True(t, ok)
	assert.Equal(t, "...", line.Text)
}

func TestDialogue_AdvanceSaturates(t *testing.T) {
	d := NewDialogue(GunCarried, goodEndingLines, badEndingLines)
	prev := d.Index()
	for range 10 {
		d.Advance()
		assert.GreaterOrEqual(t, d.Index(), prev, "index never decreases")
		assert.LessOrEqual(t, d.Index(), d.Len())
		prev = d.Index()
	}
	assert.True(t, d.Done())
	assert.Equal(t, 3, d.Index())
	assert.False(t, d.Advance())
	_, ok := d.Current()
	assert.False(t, ok)
}

func TestDialogue_EndCardOnlyWhenDone(t *testing.T) {
	d := NewDialogue(GunDiscarded, goodEndingLines, badEndingLines)
	for i := 0; i < d.Len(); i++ {
		assert.False(t, d.Done(), "line %d", i)
		d.Advance()
	}
	assert.True(t, d.Done())
}

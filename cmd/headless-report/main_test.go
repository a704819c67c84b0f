package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/Last-Bell/internal/game"
)

func TestFirstTick(t *testing.T) {
	entries := []game.SimLogEntry{
		{Tick: 3, Category: "combat", Key: "shot"},
		{Tick: 5, Category: "combat", Key: "kill"},
		{Tick: 9, Category: "combat", Key: "kill"},
	}
	assert.Equal(t, 5, firstTick(entries, "combat", "kill"))
	assert.Equal(t, -1, firstTick(entries, "door", "unlock"))
	assert.Equal(t, 2, countKey(entries, "combat", "kill"))
}

func TestPrintAggregate_CountsWrongEndingAsFailure(t *testing.T) {
	all := []runStats{
		{discard: true, endCard: "GOOD ENDING"},
		{discard: false, endCard: "GOOD ENDING"},
		{discard: false, endCard: "BAD ENDING", err: errors.New("stuck")},
	}
	assert.Equal(t, 2, printAggregate(all))
}

func TestRunPlaythrough_ReachesExpectedEnding(t *testing.T) {
	for _, discard := range []bool{true, false} {
		rs := runPlaythrough(1, 7, discard)
		require.NoError(t, rs.err)
		assert.Equal(t, expectedCard(discard), rs.endCard)
		assert.Equal(t, 10, rs.kills)
		assert.Equal(t, 2, rs.crossings)
	}
}

func TestIndent(t *testing.T) {
	assert.Equal(t, "  a\n  b", indent("a\nb\n", "  "))
}

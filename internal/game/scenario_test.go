package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/Last-Bell/internal/audio"
)

// dumpLog prints the full event log to t.Log so it appears in `go test -v` output.
func dumpLog(t *testing.T, ts *TestSession) {
	t.Helper()
	entries := ts.Events.Entries()
	if len(entries) == 0 {
		t.Log("(no log entries)")
		return
	}
	for _, e := range entries {
		t.Log(e.String())
	}
}

// --- Scenario: Good ending ---

func TestScenario_GoodEnding(t *testing.T) {
	t.Log("=== TestScenario_GoodEnding ===")
	t.Log("--- Setup: school map, clear every room, bin the gun, leave ---")

	ts := NewTestSession(WithSeed(42))
	require.NoError(t, ts.Err())
	err := ts.AutoPlay(true)
	dumpLog(t, ts)
	t.Log(ts.Events.Summary(ts.Session))
	require.NoError(t, err)

	assert.Equal(t, 0, ts.ChildrenAlive)
	assert.Equal(t, GunDiscarded, ts.Gun)
	assert.Equal(t, BackOutside, ts.Where)
	require.NotNil(t, ts.Dialogue)
	assert.True(t, ts.Dialogue.Good())
	assert.True(t, ts.Dialogue.Done())
	assert.True(t, ts.Events.HasEntry("ending", "card", "GOOD ENDING"))
	assert.Equal(t, 10, ts.Events.CountCategory("combat", "kill"))
	assert.Equal(t, 1, ts.Sounds.Count("loop", audio.SoundSiren))
	assert.True(t, ts.Doors.Symmetric())
}

// --- Scenario: Bad ending ---

func TestScenario_BadEnding(t *testing.T) {
	t.Log("=== TestScenario_BadEnding ===")
	t.Log("--- Setup: school map, clear every room, keep the gun, leave ---")

	ts := NewTestSession(WithSeed(7))
	require.NoError(t, ts.Err())
	err := ts.AutoPlay(false)
	dumpLog(t, ts)
	require.NoError(t, err)

	assert.Equal(t, GunCarried, ts.Gun)
	require.NotNil(t, ts.Dialogue)
	assert.False(t, ts.Dialogue.Good())
	assert.True(t, ts.Events.HasEntry("ending", "card", "BAD ENDING"))

	// Once outside, further input changes nothing but the dialogue.
	pos, loaded := ts.Cam.Pos, ts.Inv.Loaded
	ts.Hold(ActionForward)
	ts.Tick(ActionAdvance)
	ts.Tick(ActionInteract)
	ts.Hold()
	assert.Equal(t, pos, ts.Cam.Pos)
	assert.Equal(t, loaded, ts.Inv.Loaded)
	assert.Equal(t, ts.Dialogue.Len(), ts.Dialogue.Index())
}

// --- Scenario: Unlock every locked door in the school ---

func TestScenario_UnlockAllDoors(t *testing.T) {
	t.Log("=== TestScenario_UnlockAllDoors ===")

	ts := NewTestSession(WithSeed(1))
	require.NoError(t, ts.Err())
	require.NoError(t, ts.UseDoor(schoolLayout.Entry))

	var locked []Cell
	for y := 0; y < ts.Map.Height(); y++ {
		for x := 0; x < ts.Map.Width(); x++ {
			if ts.Map.At(Cell{x, y}) == TileLocked {
				locked = append(locked, Cell{x, y})
			}
		}
	}
	require.NotEmpty(t, locked)

	for _, c := range locked {
		// Stand in the open cell above or left of the door and face it.
		from := c.Offset(0, -1)
		if !ts.Map.At(c.Offset(-1, 0)).Solid() {
			from = c.Offset(-1, 0)
		}
		ts.Teleport(from.Center())
		ts.Face(c.Center())
		// Park the children off the map so no shot lands on one.
		saved := make([]Vec2, len(ts.Children))
		for i := range ts.Children {
			saved[i] = ts.Children[i].Pos
			ts.Children[i].Pos = Vec2{-1e4, -1e4}
		}
		ts.Tick(ActionFire)
		for i := range ts.Children {
			ts.Children[i].Pos = saved[i]
		}
		if ts.Inv.Loaded == 0 {
			ts.Tick(ActionReload)
			ts.RunFor(reloadCooldown + frameTime)
		}
		assert.Equal(t, TileUnlocked, ts.Map.At(c), "door %v", c)
	}

	assert.Equal(t, len(locked), ts.Events.CountCategory("door", "unlock"))
	assert.Len(t, ts.DoorMarkers, 1+2*len(locked))
	assert.True(t, ts.Doors.Symmetric())
	for _, m := range ts.DoorMarkers {
		_, ok := ts.Doors.Target(ts.Map.CellOf(m.Pos))
		assert.True(t, ok, "marker %v", ts.Map.CellOf(m.Pos))
	}
}

package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/Last-Bell/internal/audio"
)

func TestFire_EmptyClip(t *testing.T) {
	ts := newYard(t, WithAmmo(0, 0), WithCamera(Cell{1, 4}.Center(), 0))

	ts.Tick(ActionFire)

	assert.Equal(t, 1, ts.Sounds.Count("play", audio.SoundEmptyShot))
	assert.Zero(t, ts.Sounds.Count("play", audio.SoundGunshot))
	assert.Equal(t, 0, ts.Inv.Loaded)
	assert.Equal(t, TagChildAlive, ts.Children[0].Tag)
	assert.False(t, ts.Weapon.Firing(ts.Clock.Now()))
}

func TestFire_KillWithLastRoundOpensExit(t *testing.T) {
	ts := newYard(t, WithAmmo(1, 0), WithCamera(Cell{1, 4}.Center(), 0))

	ts.Tick(ActionFire)

	assert.Equal(t, 0, ts.Inv.Loaded)
	assert.Equal(t, TagChildDead, ts.Children[0].Tag)
	assert.Equal(t, 1, ts.Sounds.Count("play", audio.SoundGunshot))
	assert.Equal(t, 1, ts.Sounds.Count("play", audio.SoundFlesh))
	assert.True(t, ts.Weapon.Firing(ts.Clock.Now()))
	assert.Equal(t, ExitSealed, ts.Exit, "exit opens on the next tick")

	ts.Tick()
	assert.Equal(t, ExitSpawned, ts.Exit)
	assert.Equal(t, 0, ts.ChildrenAlive)
	assert.Equal(t, "Exit the school", ts.Objective())

	ts.RunTicks(3)
	assert.Equal(t, 1, ts.Events.CountCategory("door", "exit_spawned"))
	assert.Len(t, ts.DoorMarkers, 2)
}

func TestFire_RecoilIsBrief(t *testing.T) {
	ts := newYard(t, WithCamera(Cell{2, 2}.Center(), 0))
	ts.Tick(ActionFire)
	now := ts.Clock.Now()
	assert.True(t, ts.Weapon.Firing(now))
	assert.False(t, ts.Weapon.Firing(now+recoilDuration))
}

func TestFire_HeldButtonFiresOnce(t *testing.T) {
	ts := newYard(t, WithCamera(Cell{2, 2}.Center(), 0))
	ts.Hold(ActionFire)
	ts.RunTicks(5)
	assert.Equal(t, clipSize, ts.Inv.Loaded, "held without an edge never fires")
}

func TestDiscard_LatchesAndDisablesCombat(t *testing.T) {
	trash := Cell{4, 5}.Center()
	ts := newYard(t, WithCamera(trash.Add(Vec2{0, -10}), 0))
	require.True(t, ts.TrashPrompt())

	ts.Tick(ActionInteract)

	assert.Equal(t, GunDiscarded, ts.Gun)
	assert.Equal(t, 1, ts.Sounds.Count("play", audio.SoundTrash))
	assert.False(t, ts.Weapon.Equipped)
	assert.False(t, ts.TrashPrompt())

	loaded, reserve := ts.Inv.Loaded, ts.Inv.Reserve
	ts.Tick(ActionFire)
	ts.Tick(ActionReload)
	ts.Tick(ActionInteract)
	ts.RunTicks(40)

	assert.Equal(t, loaded, ts.Inv.Loaded)
	assert.Equal(t, reserve, ts.Inv.Reserve)
	assert.Zero(t, ts.Sounds.Count("play", audio.SoundGunshot))
	assert.Zero(t, ts.Sounds.Count("play", audio.SoundEmptyShot))
	assert.Equal(t, 1, ts.Sounds.Count("play", audio.SoundTrash))
	assert.Equal(t, 1, ts.Events.CountCategory("combat", "discard"))
	assert.Empty(t, buildHUD(ts.Session).Ammo)
}

func TestDiscard_TooFarFromTrash(t *testing.T) {
	ts := newYard(t, WithCamera(Cell{7, 5}.Center(), 0))
	ts.Tick(ActionInteract)
	assert.Equal(t, GunCarried, ts.Gun)
}

func TestWander_StaysOnFloorAndDrifts(t *testing.T) {
	ts := newYard(t)
	start := ts.Children[0].Pos

	for range 200 {
		ts.Tick()
		c := ts.Children[0]
		require.False(t, ts.Map.At(ts.Map.CellOf(c.Pos)).Solid(), "child walked into a wall at %v", c.Pos)
	}
	assert.NotEqual(t, start, ts.Children[0].Pos)
}

func TestWander_SidestepsAwayFromViewLine(t *testing.T) {
	// Camera looks east along row 4; the child sits below that line, so it is
	// pushed further down (+Y) until the wall stops it.
	ts := newYard(t, WithCamera(Vec2{60, 210}, 0))
	startY := ts.Children[0].Pos.Y

	ts.RunTicks(20)
	assert.Greater(t, ts.Children[0].Pos.Y, startY)
}

func TestWander_ChildOnViewLineStillSidesteps(t *testing.T) {
	ts := newYard(t, WithCamera(Cell{1, 4}.Center(), 0))
	start := ts.Children[0].Pos
	require.Zero(t, start.Sub(ts.Cam.Pos).Cross(ts.Cam.Dir()))

	ts.Tick()

	assert.Less(t, ts.Children[0].Pos.Y, start.Y, "a child dead ahead still steps aside")
}

func TestWander_StopsWhenFarOrDead(t *testing.T) {
	ts := newYard(t)
	ts.Cam.Pos = Vec2{1e4, 1e4}
	pos := ts.Children[0].Pos
	ts.wanderChildren()
	assert.Equal(t, pos, ts.Children[0].Pos, "beyond the wander radius")

	ts.Cam.Pos = Cell{2, 4}.Center()
	ts.Children[0].Tag = TagChildDead
	ts.wanderChildren()
	assert.Equal(t, pos, ts.Children[0].Pos, "dead children stay put")
}

func TestWander_FrozenAfterDiscard(t *testing.T) {
	ts := newYard(t, WithCamera(Cell{4, 5}.Center().Add(Vec2{0, -10}), 0))
	ts.Tick(ActionInteract)
	require.Equal(t, GunDiscarded, ts.Gun)
	pos := ts.Children[0].Pos

	ts.RunTicks(20)
	assert.Equal(t, pos, ts.Children[0].Pos)
}

func TestChildSpeedsInRange(t *testing.T) {
	m, err := LoadSchool()
	require.NoError(t, err)
	s, err := NewSession(m, WithRand(11))
	require.NoError(t, err)
	require.Len(t, s.childSpeed, len(s.Children))
	for _, v := range s.childSpeed {
		assert.GreaterOrEqual(t, v, childSpeedMin)
		assert.Less(t, v, childSpeedMax)
	}
}

func TestLockHint(t *testing.T) {
	ts := newYard(t, WithCamera(Cell{4, 2}.Center(), math.Pi/2))
	hint, ok := ts.LockHint()
	require.True(t, ok)
	assert.Equal(t, "Shoot the lock (using left mouse button) to unlock the door", hint)

	ts.Gun = GunDiscarded
	hint, ok = ts.LockHint()
	require.True(t, ok)
	assert.Equal(t, "You need a gun to unlock this door", hint)

	ts.Cam.Pos = Cell{4, 1}.Center()
	_, ok = ts.LockHint()
	assert.False(t, ok, "75 units is out of hint range")
}

package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/Last-Bell/internal/audio"
)

func TestInventory_ReplenishBounds(t *testing.T) {
	cases := []struct {
		name                 string
		loaded, reserve      int
		wantMoved            int
		wantLoaded, wantLeft int
	}{
		{"full clip", 16, 50, 0, 16, 50},
		{"empty clip, deep reserve", 0, 128, 16, 16, 112},
		{"partial clip", 10, 128, 6, 16, 122},
		{"short reserve", 0, 5, 5, 5, 0},
		{"empty reserve", 3, 0, 0, 3, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			inv := Inventory{Loaded: tc.loaded, Reserve: tc.reserve}
			assert.Equal(t, tc.wantMoved, inv.Replenish())
			assert.Equal(t, tc.wantLoaded, inv.Loaded)
			assert.Equal(t, tc.wantLeft, inv.Reserve)
			assert.LessOrEqual(t, inv.Loaded, clipSize)
			assert.GreaterOrEqual(t, inv.Reserve, 0)
		})
	}
}

func TestInventory_SpendStopsAtZero(t *testing.T) {
	inv := Inventory{Loaded: 1}
	assert.True(t, inv.Spend())
	assert.False(t, inv.Spend())
	assert.Equal(t, 0, inv.Loaded)
}

func TestReloadTimer_Cycle(t *testing.T) {
	var r ReloadTimer
	assert.Equal(t, ReloadNone, r.Advance(0), "idle timer does nothing")

	require.True(t, r.Start(time.Second))
	assert.Equal(t, ReloadLower, r.Advance(time.Second))
	assert.Equal(t, ReloadUnequipping, r.State())
	assert.Equal(t, ReloadNone, r.Advance(2*time.Second), "lowered only once")

	assert.Equal(t, ReloadRaise, r.Advance(3*time.Second))
	assert.Equal(t, ReloadEquipping, r.State())
	assert.Equal(t, ReloadNone, r.Advance(3500*time.Millisecond), "raised only once")

	r.Advance(4100 * time.Millisecond)
	assert.Equal(t, ReloadIdle, r.State())
}

func TestReloadTimer_Debounce(t *testing.T) {
	var r ReloadTimer
	require.True(t, r.Start(0))
	assert.False(t, r.Start(time.Second))
	assert.False(t, r.Start(3*time.Second), "exactly the cooldown is still too soon")
	assert.True(t, r.Start(3*time.Second+time.Millisecond))
}

func TestSessionReload_RefillsAfterLoweredWindow(t *testing.T) {
	ts := newYard(t, WithAmmo(0, 20))

	ts.Tick(ActionReload)
	assert.False(t, ts.Weapon.Equipped)
	assert.Equal(t, 1, ts.Sounds.Count("play", audio.SoundReload))
	assert.Equal(t, 0, ts.Inv.Loaded)

	ts.RunFor(reloadLowered - testFrame)
	assert.Equal(t, 0, ts.Inv.Loaded, "still lowered")

	ts.RunFor(2 * testFrame)
	assert.True(t, ts.Weapon.Equipped)
	assert.Equal(t, 16, ts.Inv.Loaded)
	assert.Equal(t, 4, ts.Inv.Reserve)
	assert.Equal(t, 1, ts.Sounds.Count("play", audio.SoundReload))
}

func TestSessionReload_DebouncedPressIgnored(t *testing.T) {
	ts := newYard(t, WithAmmo(0, 40))

	ts.Tick(ActionReload)
	ts.RunFor(2500 * time.Millisecond)
	ts.Inv.Loaded = 0
	ts.Tick(ActionReload)

	assert.Equal(t, 1, ts.Events.CountCategory("reload", "start"))
	assert.Equal(t, 0, ts.Inv.Loaded)

	ts.RunFor(time.Second)
	ts.Tick(ActionReload)
	assert.Equal(t, 2, ts.Events.CountCategory("reload", "start"))
}

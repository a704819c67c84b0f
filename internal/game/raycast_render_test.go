package game

import (
	"image/color"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderer_FloorAndWall(t *testing.T) {
	m := yardMap(t)
	r := NewRenderer(64, 64)
	cam := Camera{Pos: Cell{2, 2}.Center(), Angle: 0}

	r.renderPixels(m, slices.Values([]Entity(nil)), cam, outdoorScene)

	assert.Equal(t, outdoorScene.Floor, r.pixelAt(0, 63), "bottom row is unfogged floor")
	assert.Equal(t, tileColors[TileWall], r.pixelAt(32, 32), "far wall straight ahead")
	assert.InDelta(t, 325, r.depth[32], 1e-6)
}

func TestRenderer_FogDarkensDistance(t *testing.T) {
	m := yardMap(t)
	r := NewRenderer(64, 64)
	cam := Camera{Pos: Cell{2, 2}.Center(), Angle: 0}

	r.renderPixels(m, slices.Values([]Entity(nil)), cam, indoorScene)

	wall := r.pixelAt(32, 32)
	assert.Less(t, wall.R, tileColors[TileWall].R, "325 units into a 300 fog is black")
	assert.Equal(t, uint8(0), wall.R)
}

func TestRenderer_SpriteOccludedByWall(t *testing.T) {
	m := yardMap(t)
	r := NewRenderer(64, 64)
	cam := Camera{Pos: Cell{1, 4}.Center(), Angle: 0}
	child := Entity{Pos: Cell{3, 4}.Center(), Tag: TagChildAlive, Size: Size{15, 25}}

	r.renderPixels(m, slices.Values([]Entity{child}), cam, outdoorScene)
	col := r.pixelAt(32, 50)
	assert.Equal(t, entityColor(child), col, "child drawn in front of the wall")

	hidden := Entity{Pos: Cell{8, 4}.Center(), Tag: TagChildAlive, Size: Size{15, 25}}
	r.renderPixels(m, slices.Values([]Entity{hidden}), cam, outdoorScene)
	assert.NotEqual(t, entityColor(hidden), r.pixelAt(32, 50), "behind the locked door")
}

func TestShade(t *testing.T) {
	c := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	assert.Equal(t, c, shade(c, 1))
	assert.Equal(t, color.RGBA{R: 100, G: 50, B: 25, A: 255}, shade(c, 0.5))
	assert.Equal(t, color.RGBA{A: 255}, shade(c, -1))
}

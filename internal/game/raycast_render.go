package game

import (
	"image/color"
	"iter"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	fieldOfView = math.Pi / 3
	eyeHeight   = tileSize // camera height above the floor, world units
	sideShade   = 0.75     // faces crossed on a horizontal grid line are darker
)

// tileColors is the flat colour of each wall character.
var tileColors = map[Tile]color.RGBA{
	TileWall:       {R: 200, G: 200, B: 200, A: 255},
	TileDoor:       {R: 120, G: 80, B: 40, A: 255},
	TileLocked:     {R: 120, G: 80, B: 40, A: 255},
	TileUnlocked:   {R: 90, G: 60, B: 30, A: 255},
	TileFence:      {R: 80, G: 80, B: 80, A: 255},
	TileBoardLeft:  {R: 200, G: 200, B: 200, A: 255},
	TileBoardRight: {R: 200, G: 200, B: 200, A: 255},
	TileBookshelf:  {R: 110, G: 70, B: 40, A: 255},
	TileLocker:     {R: 70, G: 100, B: 160, A: 255},
}

var (
	lockPlateColor  = color.RGBA{R: 230, G: 190, B: 40, A: 255}
	chalkboardColor = color.RGBA{R: 30, G: 70, B: 40, A: 255}
	fenceGapColor   = color.RGBA{R: 160, G: 160, B: 160, A: 255}
)

// entityColor is the billboard colour of an entity.
func entityColor(e Entity) color.RGBA {
	switch e.Tag {
	case TagChildAlive:
		return color.RGBA{R: 240, G: 190, B: 150, A: 255}
	case TagChildDead:
		return color.RGBA{R: 150, G: 10, B: 10, A: 255}
	case TagPolice:
		return color.RGBA{R: 20, G: 30, B: 90, A: 255}
	}
	switch e.Prop {
	case PropChair:
		return color.RGBA{R: 140, G: 90, B: 50, A: 255}
	case PropHoop:
		return color.RGBA{R: 230, G: 110, B: 30, A: 255}
	case PropPlant:
		return color.RGBA{R: 40, G: 150, B: 60, A: 255}
	case PropTrash:
		return color.RGBA{R: 100, G: 100, B: 110, A: 255}
	}
	return color.RGBA{R: 255, G: 0, B: 255, A: 255}
}

// Renderer draws the first-person view into a CPU pixel buffer and uploads
// it once per frame.
type Renderer struct {
	w, h   int
	pixels []byte
	depth  []float64 // perpendicular wall distance per column
	proj   float64   // projection plane distance in pixels
}

// NewRenderer returns a renderer with a w×h internal resolution.
func NewRenderer(w, h int) *Renderer {
	return &Renderer{
		w:      w,
		h:      h,
		pixels: make([]byte, w*h*4),
		depth:  make([]float64, w),
		proj:   float64(w) / 2 / math.Tan(fieldOfView/2),
	}
}

// Size returns the internal resolution.
func (r *Renderer) Size() (int, int) {
	return r.w, r.h
}

// Render draws the world seen from cam into dst, which must be w×h.
func (r *Renderer) Render(m *TileMap, ents iter.Seq[Entity], cam Camera, scene SceneConfig, dst *ebiten.Image) {
	r.renderPixels(m, ents, cam, scene)
	dst.WritePixels(r.pixels)
}

// horizon returns the screen row of the eye level for the current pitch.
func (r *Renderer) horizon(cam Camera) float64 {
	return float64(r.h)/2 + cam.VAngle*float64(r.h)
}

func (r *Renderer) renderPixels(m *TileMap, ents iter.Seq[Entity], cam Camera, scene SceneConfig) {
	horizon := r.horizon(cam)
	r.drawFloorCeiling(horizon, scene)

	dir := cam.Dir()
	plane := Vec2{-dir.Y, dir.X}.Scale(math.Tan(fieldOfView / 2))
	for x := 0; x < r.w; x++ {
		camX := 2*float64(x)/float64(r.w) - 1
		ray := dir.Add(plane.Scale(camX))
		ray = ray.Scale(1 / ray.Len())
		hit := m.castWall(cam.Pos, ray)
		perp := hit.dist * ray.Dot(dir)
		r.depth[x] = perp
		tile := m.At(hit.cell)
		if tile.Height() == 0 || perp <= 0 {
			r.depth[x] = math.Inf(1)
			continue
		}
		r.drawWallColumn(x, horizon, perp, hit, tile, scene.Fog)
	}

	r.drawSprites(ents, cam, horizon, scene.Fog)
}

// drawFloorCeiling shades each row by the distance of the floor or ceiling
// plane it shows.
func (r *Renderer) drawFloorCeiling(horizon float64, scene SceneConfig) {
	ceilingHeight := wallHeight*tileSize - eyeHeight
	for y := 0; y < r.h; y++ {
		dy := float64(y) + 0.5 - horizon
		var c color.RGBA
		var dist float64
		if dy > 0 {
			c, dist = scene.Floor, eyeHeight*r.proj/dy
		} else {
			c, dist = scene.Ceiling, ceilingHeight*r.proj/-dy
		}
		c = shade(c, scene.Fog.Brightness(dist))
		row := r.pixels[y*r.w*4 : (y+1)*r.w*4]
		for i := 0; i < len(row); i += 4 {
			row[i], row[i+1], row[i+2], row[i+3] = c.R, c.G, c.B, 255
		}
	}
}

func (r *Renderer) drawWallColumn(x int, horizon, perp float64, hit wallHit, tile Tile, fog Fog) {
	scale := r.proj / perp
	top := horizon - (tile.Height()*tileSize-eyeHeight)*scale
	bottom := horizon + eyeHeight*scale
	light := fog.Brightness(perp)
	if hit.side == 1 {
		light *= sideShade
	}
	y0 := max(0, int(top))
	y1 := min(r.h, int(bottom))
	for y := y0; y < y1; y++ {
		v := (float64(y) - top) / (bottom - top) // 0 at top, 1 at floor
		c := wallTexel(tile, hit.frac, v)
		r.setPixel(x, y, shade(c, light))
	}
}

// wallTexel gives a few wall characters a simple procedural face.
func wallTexel(tile Tile, u, v float64) color.RGBA {
	switch tile {
	case TileLocked:
		if u > 0.7 && u < 0.8 && v > 0.6 && v < 0.66 {
			return lockPlateColor
		}
		if v < 0.5 {
			return tileColors[TileWall]
		}
	case TileDoor, TileUnlocked:
		if v < 0.5 {
			return tileColors[TileWall]
		}
	case TileBoardLeft, TileBoardRight:
		lo, hi := 0.0, 0.9
		if tile == TileBoardRight {
			lo, hi = 0.1, 1.0
		}
		if u > lo && u < hi && v > 0.55 && v < 0.75 {
			return chalkboardColor
		}
	case TileFence:
		if int(u*5)%2 == 1 && v > 0.5 {
			return fenceGapColor
		}
	}
	return tileColors[tile]
}

type spriteProjection struct {
	e     Entity
	depth float64
	x     float64
}

// drawSprites draws billboards far to near, clipped per column against the
// wall depth buffer.
func (r *Renderer) drawSprites(ents iter.Seq[Entity], cam Camera, horizon float64, fog Fog) {
	dir := cam.Dir()
	right := Vec2{-dir.Y, dir.X}
	var visible []spriteProjection
	for e := range ents {
		if !e.Solid() {
			continue
		}
		rel := e.Pos.Sub(cam.Pos)
		depth := rel.Dot(dir)
		if depth < 1 {
			continue
		}
		x := float64(r.w)/2 + rel.Dot(right)*r.proj/depth
		visible = append(visible, spriteProjection{e: e, depth: depth, x: x})
	}
	sort.Slice(visible, func(i, j int) bool { return visible[i].depth > visible[j].depth })

	for _, sp := range visible {
		scale := r.proj / sp.depth
		height := sp.e.Size.H
		if sp.e.Tag == TagChildDead {
			height /= 4
		}
		w := sp.e.Size.W * scale
		bottom := horizon + eyeHeight*scale
		top := bottom - height*scale
		c := shade(entityColor(sp.e), fog.Brightness(sp.depth))

		x0 := max(0, int(sp.x-w/2))
		x1 := min(r.w, int(sp.x+w/2))
		y0 := max(0, int(top))
		y1 := min(r.h, int(bottom))
		for x := x0; x < x1; x++ {
			if sp.depth >= r.depth[x] {
				continue
			}
			for y := y0; y < y1; y++ {
				r.setPixel(x, y, c)
			}
		}
	}
}

func (r *Renderer) setPixel(x, y int, c color.RGBA) {
	i := (y*r.w + x) * 4
	r.pixels[i], r.pixels[i+1], r.pixels[i+2], r.pixels[i+3] = c.R, c.G, c.B, 255
}

// pixelAt reads back the last rendered buffer.
func (r *Renderer) pixelAt(x, y int) color.RGBA {
	i := (y*r.w + x) * 4
	return color.RGBA{R: r.pixels[i], G: r.pixels[i+1], B: r.pixels[i+2], A: r.pixels[i+3]}
}

// shade scales a colour's channels by k in [0,1].
func shade(c color.RGBA, k float64) color.RGBA {
	k = clamp01(k)
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: c.A,
	}
}

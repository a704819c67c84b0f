package game

import (
	"image/color"
	"math"
)

// Fog controls visibility falloff. A zero Radius means no fog.
type Fog struct {
	Radius float64
}

// FogNone is unlimited visibility.
var FogNone = Fog{}

// FogPoint is a light of the given radius around the camera.
func FogPoint(radius float64) Fog {
	return Fog{Radius: radius}
}

// Active reports whether the fog limits visibility.
func (f Fog) Active() bool {
	return f.Radius > 0
}

// Brightness returns the light factor in [0,1] at distance d.
func (f Fog) Brightness(d float64) float64 {
	if !f.Active() {
		return 1
	}
	return clamp01(1 - d/f.Radius)
}

// SceneConfig is the ambient look of the world. It is only ever replaced as
// a whole.
type SceneConfig struct {
	Name       string
	Floor      color.RGBA
	Ceiling    color.RGBA
	Background color.RGBA
	Fog        Fog
}

var (
	outdoorScene = SceneConfig{
		Name:       "outdoor",
		Floor:      color.RGBA{R: 0, G: 117, B: 44, A: 255},
		Ceiling:    color.RGBA{R: 0, G: 121, B: 241, A: 255},
		Background: color.RGBA{R: 0, G: 121, B: 241, A: 255},
		Fog:        FogNone,
	}
	indoorScene = SceneConfig{
		Name:       "indoor",
		Floor:      color.RGBA{R: 211, G: 176, B: 131, A: 255},
		Ceiling:    color.RGBA{R: 130, G: 130, B: 130, A: 255},
		Background: color.RGBA{A: 255},
		Fog:        FogPoint(300),
	}
)

// Layout pins the designated cells and poses of a map.
type Layout struct {
	Entry       Cell    // outside marker that leads in
	Exit        Cell    // inside cell where the exit marker appears
	Start       Vec2    // initial camera position
	StartAngle  float64 // initial heading
	ReturnAngle float64 // heading forced on arrival back outside
}

var schoolLayout = Layout{
	Entry:       Cell{31, 7},
	Exit:        Cell{31, 9},
	Start:       Vec2{31 * tileSize, 3 * tileSize},
	StartAngle:  math.Pi / 2,
	ReturnAngle: -math.Pi / 2,
}

// policeSize is the footprint of each police entity.
var policeSize = Size{30, 40}

// policeFormation is where police wait outside, in fractional tile units.
var policeFormation = []Vec2{
	{30, 5},
	{30.5, 4.5},
	{31, 4},
	{31.5, 4.5},
	{32, 5},
}

// spawnFormation places one police entity per formation slot.
func spawnFormation(slots []Vec2) []Entity {
	out := make([]Entity, 0, len(slots))
	for _, s := range slots {
		out = append(out, Entity{Pos: cellAt(s.X, s.Y), Tag: TagPolice, Size: policeSize})
	}
	return out
}

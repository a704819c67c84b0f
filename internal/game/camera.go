package game

import "math"

const (
	// maxPitch bounds the vertical look angle in radians.
	maxPitch = 0.6
	// radiansPerPixel converts mouse travel to yaw at sensitivity 1.
	radiansPerPixel = 0.01
)

// Camera is the player's eye: a position, a heading and a pitch.
type Camera struct {
	Pos    Vec2
	Angle  float64 // heading in radians; 0 is +X, π/2 is +Y (down the map)
	VAngle float64 // pitch in radians, positive looks up
}

// Dir returns the unit forward vector.
func (c Camera) Dir() Vec2 {
	return fromAngle(c.Angle)
}

// cameraController is the FPS-style movement and mouse-look driver.
type cameraController struct {
	speed       float64
	sensitivity float64
	prevX       float64
	prevY       float64
	primed      bool
}

// apply moves and rotates cam from held keys and cursor travel since the
// previous call. Rotation only follows the cursor while it is captured.
func (cc *cameraController) apply(cam *Camera, m *TileMap, in Input, captured bool) {
	var move Vec2
	fwd := cam.Dir()
	right := Vec2{-fwd.Y, fwd.X}
	if in.Held(ActionForward) {
		move = move.Add(fwd)
	}
	if in.Held(ActionBack) {
		move = move.Sub(fwd)
	}
	if in.Held(ActionStrafeRight) {
		move = move.Add(right)
	}
	if in.Held(ActionStrafeLeft) {
		move = move.Sub(right)
	}
	if l := move.Len(); l > 0 {
		cam.Pos = m.MoveWithCollision(cam.Pos, cam.Pos.Add(move.Scale(cc.speed/l)))
	}

	x, y := in.CursorPosition()
	if !cc.primed {
		cc.prevX, cc.prevY, cc.primed = x, y, true
	}
	dx, dy := x-cc.prevX, y-cc.prevY
	cc.prevX, cc.prevY = x, y
	if !captured {
		return
	}
	cam.Angle = math.Mod(cam.Angle+dx*cc.sensitivity*radiansPerPixel, 2*math.Pi)
	cam.VAngle = clamp(cam.VAngle-dy*cc.sensitivity*radiansPerPixel, -maxPitch, maxPitch)
}

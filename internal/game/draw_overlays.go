package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	viewportSize      = 800
	dialogueBoxHeight = 130
	crosshairSize     = 8
	flashlightInner   = 0.25 // fraction of the viewport fully lit
	flashlightOuter   = 0.6  // fraction beyond which the view is black
)

var (
	gunMetal   = color.RGBA{R: 40, G: 40, B: 45, A: 255}
	gunGrip    = color.RGBA{R: 70, G: 50, B: 35, A: 255}
	muzzleGlow = color.RGBA{R: 255, G: 210, B: 80, A: 230}
)

// drawFade covers the viewport in black at the given opacity.
func drawFade(screen *ebiten.Image, ox, oy, alpha float64) {
	if alpha <= 0 {
		return
	}
	vector.FillRect(screen, float32(ox), float32(oy), viewportSize, viewportSize,
		color.RGBA{A: uint8(clamp01(alpha) * 255)}, false)
}

// drawScrim darkens the whole viewport behind the end card.
func drawScrim(screen *ebiten.Image, ox, oy, alpha float64) {
	drawFade(screen, ox, oy, alpha)
}

func drawDialogueBox(screen *ebiten.Image, ox, oy float64) {
	x := float32(ox + hudMargin)
	y := float32(oy + viewportSize - dialogueBoxHeight - hudMargin)
	w := float32(viewportSize - 2*hudMargin)
	vector.FillRect(screen, x, y, w, dialogueBoxHeight, color.RGBA{R: 10, G: 10, B: 20, A: 220}, false)
	vector.StrokeRect(screen, x, y, w, dialogueBoxHeight, 2, color.RGBA{R: 200, G: 200, B: 220, A: 255}, false)
}

// newFlashlight builds the screen-space light cone drawn over foggy scenes:
// clear in the middle, fading to black toward the edges.
func newFlashlight(size int) *ebiten.Image {
	pix := make([]byte, size*size*4)
	half := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)+0.5-half, float64(y)+0.5-half) / float64(size)
			a := clamp01((d - flashlightInner) / (flashlightOuter - flashlightInner))
			pix[(y*size+x)*4+3] = uint8(a * 255)
		}
	}
	img := ebiten.NewImage(size, size)
	img.WritePixels(pix)
	return img
}

func (g *Game) drawFlashlight(screen *ebiten.Image, ox, oy float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(ox, oy)
	screen.DrawImage(g.flashlight, op)
}

func drawCrosshair(screen *ebiten.Image, ox, oy float64) {
	cx := float32(ox + viewportSize/2)
	cy := float32(oy + viewportSize/2)
	c := color.RGBA{R: 255, G: 255, B: 255, A: 200}
	vector.StrokeLine(screen, cx-crosshairSize, cy, cx+crosshairSize, cy, 2, c, false)
	vector.StrokeLine(screen, cx, cy-crosshairSize, cx, cy+crosshairSize, 2, c, false)
}

// drawWeapon draws the held pistol in the lower right, pushed down by the
// equip slide. A muzzle flash shows while recoiling.
func drawWeapon(screen *ebiten.Image, ox, oy float64, w *Weapon, firing bool) {
	const gunW, gunH = 140, 220
	x := float32(ox + viewportSize*0.62)
	y := float32(oy+viewportSize-gunH*0.8) + float32(w.Slide()*gunH)
	if firing {
		y += 12
		vector.FillCircle(screen, x+gunW*0.35, y-18, 26, muzzleGlow, false)
	}
	vector.FillRect(screen, x+gunW*0.2, y, gunW*0.3, gunH*0.45, gunMetal, false)
	vector.FillRect(screen, x+gunW*0.15, y+gunH*0.4, gunW*0.45, gunH*0.6, gunGrip, false)
}

// drawDebug shows frame rate, camera pose and recent session events.
func (g *Game) drawDebug(screen *ebiten.Image, ox, oy float64) {
	s := g.session
	lines := fmt.Sprintf("FPS %.0f  TPS %.0f\npos (%.0f,%.0f) cell %v\nangle %.2f pitch %.2f\nphase %s  %s",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		s.Cam.Pos.X, s.Cam.Pos.Y, s.Map.CellOf(s.Cam.Pos),
		s.Cam.Angle, s.Cam.VAngle, s.Phase, s.Where)
	ebitenutil.DebugPrintAt(screen, lines, int(ox)+4, int(oy)+4)
	s.Thoughts.Draw(screen, int(ox)+viewportSize-logPanelWidth, int(oy), viewportSize/2)
}

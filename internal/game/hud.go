package game

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	hudFontSize   = 22
	titleFontSize = 64
	hudMargin     = 16
)

var (
	hudTextColor   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	hudPromptColor = color.RGBA{R: 255, G: 230, B: 120, A: 255}
	hudWarnColor   = color.RGBA{R: 255, G: 90, B: 90, A: 255}
)

// fonts holds the faces the HUD draws with.
type fonts struct {
	body  *text.GoTextFace
	title *text.GoTextFace
}

func newFonts() (*fonts, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("load bold font: %w", err)
	}
	return &fonts{
		body:  &text.GoTextFace{Source: regular, Size: hudFontSize},
		title: &text.GoTextFace{Source: bold, Size: titleFontSize},
	}, nil
}

// drawText draws s with its anchor at (x, y). align picks which edge of the
// text the anchor is on.
func drawText(dst *ebiten.Image, s string, face text.Face, x, y float64, align text.Align, c color.Color) {
	op := &text.DrawOptions{}
	op.PrimaryAlign = align
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, face, op)
}

// hudLines is everything the HUD shows for one frame, derived from session
// state so it can be checked without a window.
type hudLines struct {
	Ammo      []string
	Reload    string
	Objective string
	Prompt    string
}

func buildHUD(s *Session) hudLines {
	var h hudLines
	if s.Gun == GunCarried {
		h.Ammo = []string{
			fmt.Sprintf("Loaded bullets: %d", s.Inv.Loaded),
			fmt.Sprintf("Inventory bullets: %d", s.Inv.Reserve),
		}
		if s.Inv.Loaded == 0 {
			h.Reload = "[R] to reload"
		}
	}
	if s.Scene.Fog.Active() {
		h.Objective = s.Objective()
	}
	switch {
	case s.DoorPrompt():
		h.Prompt = "[E] to enter door"
	case s.TrashPrompt():
		h.Prompt = "[E] to throw away gun and ammo"
	default:
		if hint, ok := s.LockHint(); ok {
			h.Prompt = hint
		}
	}
	return h
}

// drawHUD draws the text layer for the normal phase inside the viewport at
// (ox, oy).
func (g *Game) drawHUD(screen *ebiten.Image, ox, oy float64) {
	h := buildHUD(g.session)
	face := g.fonts.body

	y := oy + viewportSize - hudMargin - float64(len(h.Ammo))*hudFontSize*1.2
	for _, line := range h.Ammo {
		drawText(screen, line, face, ox+hudMargin, y, text.AlignStart, hudTextColor)
		y += hudFontSize * 1.2
	}
	if h.Reload != "" {
		drawText(screen, h.Reload, face, ox+viewportSize/2, oy+viewportSize/2+40, text.AlignCenter, hudWarnColor)
	}
	if h.Objective != "" {
		drawText(screen, h.Objective, face, ox+viewportSize/2, oy+hudMargin, text.AlignCenter, hudTextColor)
	}
	if h.Prompt != "" {
		drawText(screen, h.Prompt, face, ox+viewportSize/2, oy+viewportSize*0.7, text.AlignCenter, hudPromptColor)
	}
}

// drawDialogue draws the current line, or the end card once every line has
// been shown.
func (g *Game) drawDialogue(screen *ebiten.Image, ox, oy float64) {
	d := g.session.Dialogue
	if d == nil {
		return
	}
	line, ok := d.Current()
	if !ok {
		drawScrim(screen, ox, oy, 0.6)
		drawText(screen, d.EndCard(), g.fonts.title, ox+viewportSize/2, oy+viewportSize/2-titleFontSize/2, text.AlignCenter, hudTextColor)
		return
	}
	drawDialogueBox(screen, ox, oy)
	bx := ox + hudMargin*2
	by := oy + viewportSize - dialogueBoxHeight - hudMargin + 12
	drawText(screen, line.Speaker.String(), g.fonts.body, bx, by, text.AlignStart, hudPromptColor)
	drawText(screen, line.Text, g.fonts.body, bx, by+hudFontSize*1.4, text.AlignStart, hudTextColor)
	drawText(screen, "[Space] to advance dialogue", g.fonts.body,
		ox+viewportSize-hudMargin*2, by+hudFontSize*3, text.AlignEnd, color.RGBA{R: 180, G: 180, B: 180, A: 255})
}

package game

import (
	_ "embed"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/Garsondee/Last-Bell/internal/config"
)

// Title is the window title.
const Title = "Last Bell"

// renderScale is how many screen pixels each rendered world pixel covers.
const renderScale = 2

//go:embed maps/school.txt
var schoolMap string

// LoadSchool parses the embedded school map.
func LoadSchool() (*TileMap, error) {
	m, err := ParseTileMap(strings.NewReader(schoolMap))
	if err != nil {
		return nil, fmt.Errorf("load school map: %w", err)
	}
	return m, nil
}

// Game adapts a Session to ebiten's Update/Draw/Layout loop.
type Game struct {
	session    *Session
	renderer   *Renderer
	world      *ebiten.Image // last rendered world frame, frozen during transitions
	flashlight *ebiten.Image
	fonts      *fonts
	input      ebitenInput
	log        zerolog.Logger

	width, height int // outside size reported by Layout
	offX, offY    int // top-left of the viewport inside the window
	captured      bool
	showDebug     bool
	copyReport    func(string) error
}

// New builds the game for one session from the embedded map.
func New(cfg config.Config, log zerolog.Logger, snd Sounds) (*Game, error) {
	m, err := LoadSchool()
	if err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s, err := NewSession(m,
		WithSounds(snd),
		WithLogger(log),
		WithRand(seed),
		WithControls(cfg.MoveSpeed, cfg.MouseSensitivity),
	)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	f, err := newFonts()
	if err != nil {
		return nil, err
	}

	r := NewRenderer(viewportSize/renderScale, viewportSize/renderScale)
	w, h := r.Size()
	g := &Game{
		session:    s,
		renderer:   r,
		world:      ebiten.NewImage(w, h),
		flashlight: newFlashlight(viewportSize),
		fonts:      f,
		log:        log,
		width:      viewportSize,
		height:     viewportSize,
		captured:   s.Captured,
		showDebug:  cfg.ShowFPS,
		copyReport: clipboard.WriteAll,
	}
	g.applyCursorMode()
	log.Info().Int64("seed", seed).Int("children", s.ChildrenAlive).Msg("session ready")
	s.Start()
	return g, nil
}

// Update runs one tick.
func (g *Game) Update() error {
	g.input.poll()
	g.offX = (g.width - viewportSize) / 2
	g.offY = (g.height - viewportSize) / 2

	g.session.Update(&g.input)

	if g.session.Captured != g.captured {
		g.captured = g.session.Captured
		g.applyCursorMode()
	}
	if g.session.Phase == PhaseNormal {
		if g.input.JustPressed(ActionToggleDebug) {
			g.showDebug = !g.showDebug
		}
		if g.input.JustPressed(ActionCopyReport) {
			g.copyDebugReport()
		}
	}
	return nil
}

func (g *Game) applyCursorMode() {
	if g.captured {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
}

func (g *Game) copyDebugReport() {
	if err := g.copyReport(g.session.DebugReport(debugReportEvents)); err != nil {
		g.log.Warn().Err(err).Msg("copy debug report")
		return
	}
	g.log.Info().Msg("debug report copied to clipboard")
}

// Draw renders the world, then overlays. During a door transition the world
// image is only redrawn once, right after the teleport.
func (g *Game) Draw(screen *ebiten.Image) {
	s := g.session
	screen.Fill(s.Scene.Background)
	ox, oy := float64(g.offX), float64(g.offY)

	if s.Phase == PhaseNormal || s.TakeRerender() {
		g.renderer.Render(s.Map, s.Entities(), s.Cam, s.Scene, g.world)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(renderScale, renderScale)
	op.GeoM.Translate(ox, oy)
	screen.DrawImage(g.world, op)

	if s.Scene.Fog.Active() {
		g.drawFlashlight(screen, ox, oy)
	}
	if s.Phase == PhaseTransition {
		drawFade(screen, ox, oy, s.FadeAlpha())
		return
	}

	if s.Gun == GunCarried {
		drawWeapon(screen, ox, oy, &s.Weapon, s.Weapon.Firing(s.clock.Now()))
		drawCrosshair(screen, ox, oy)
	}
	g.drawHUD(screen, ox, oy)
	g.drawDialogue(screen, ox, oy)
	if g.showDebug {
		g.drawDebug(screen, ox, oy)
	}
}

// Layout keeps the logical screen at the window size; the viewport is
// centred inside it by Update.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width = max(outsideWidth, viewportSize)
	g.height = max(outsideHeight, viewportSize)
	return g.width, g.height
}

package game

import "github.com/hajimehoshi/ebiten/v2"

// Action is a logical control the session reads instead of raw keys.
type Action uint8

const (
	ActionForward Action = iota
	ActionBack
	ActionStrafeLeft
	ActionStrafeRight
	ActionFire
	ActionInteract
	ActionReload
	ActionAdvance
	ActionToggleCapture
	ActionToggleDebug
	ActionCopyReport
	actionCount // sentinel
)

// Input is one tick's sampled controls. JustPressed is edge-triggered and
// true for at most one tick per press.
type Input interface {
	Held(a Action) bool
	JustPressed(a Action) bool
	CursorPosition() (float64, float64)
}

// keyBindings maps each keyboard action to its keys. ActionFire is the left
// mouse button and has no key.
var keyBindings = [actionCount][]ebiten.Key{
	ActionForward:       {ebiten.KeyW, ebiten.KeyArrowUp},
	ActionBack:          {ebiten.KeyS, ebiten.KeyArrowDown},
	ActionStrafeLeft:    {ebiten.KeyA, ebiten.KeyArrowLeft},
	ActionStrafeRight:   {ebiten.KeyD, ebiten.KeyArrowRight},
	ActionInteract:      {ebiten.KeyE},
	ActionReload:        {ebiten.KeyR},
	ActionAdvance:       {ebiten.KeySpace},
	ActionToggleCapture: {ebiten.KeyEscape},
	ActionToggleDebug:   {ebiten.KeyF},
	ActionCopyReport:    {ebiten.KeyC},
}

// ebitenInput samples ebiten's key and mouse state once per tick and derives
// edges from the previous sample.
type ebitenInput struct {
	cur    [actionCount]bool
	prev   [actionCount]bool
	cx, cy int
}

// poll must run exactly once at the start of each Update.
func (in *ebitenInput) poll() {
	in.prev = in.cur
	for a := Action(0); a < actionCount; a++ {
		in.cur[a] = false
		for _, k := range keyBindings[a] {
			if ebiten.IsKeyPressed(k) {
				in.cur[a] = true
				break
			}
		}
	}
	in.cur[ActionFire] = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	in.cx, in.cy = ebiten.CursorPosition()
}

func (in *ebitenInput) Held(a Action) bool {
	return in.cur[a]
}

func (in *ebitenInput) JustPressed(a Action) bool {
	return in.cur[a] && !in.prev[a]
}

func (in *ebitenInput) CursorPosition() (float64, float64) {
	return float64(in.cx), float64(in.cy)
}

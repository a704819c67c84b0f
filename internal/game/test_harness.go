package game

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Garsondee/Last-Bell/internal/audio"
)

// frameTime is one tick at ebiten's default 60 TPS.
const frameTime = time.Second / 60

// ManualClock is a Clock moved only by the harness.
type ManualClock struct {
	now time.Duration
}

func (c *ManualClock) Now() time.Duration { return c.now }

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) { c.now += d }

// ScriptInput is an Input driven by the harness. Pressed actions count as
// both held and just pressed for one tick.
type ScriptInput struct {
	held    [actionCount]bool
	pressed [actionCount]bool
	cx, cy  float64
}

func (in *ScriptInput) Held(a Action) bool        { return in.held[a] || in.pressed[a] }
func (in *ScriptInput) JustPressed(a Action) bool { return in.pressed[a] }
func (in *ScriptInput) CursorPosition() (float64, float64) {
	return in.cx, in.cy
}

// SoundCall is one call the session made on its Sounds.
type SoundCall struct {
	Op    string // play, loop, stop
	Sound audio.Sound
}

// RecordingSounds keeps every audio call in order.
type RecordingSounds struct {
	Calls []SoundCall
}

func (r *RecordingSounds) Play(s audio.Sound) { r.Calls = append(r.Calls, SoundCall{"play", s}) }
func (r *RecordingSounds) Loop(s audio.Sound) { r.Calls = append(r.Calls, SoundCall{"loop", s}) }
func (r *RecordingSounds) Stop(s audio.Sound) { r.Calls = append(r.Calls, SoundCall{"stop", s}) }

// Count returns how many times op was called with s.
func (r *RecordingSounds) Count(op string, s audio.Sound) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op && c.Sound == s {
			n++
		}
	}
	return n
}

// Reset forgets recorded calls.
func (r *RecordingSounds) Reset() { r.Calls = nil }

// TestSession is a headless session harness used by tests and the headless
// report. It mirrors Game.Update with a manual clock and scripted input.
type TestSession struct {
	*Session
	Clock  *ManualClock
	Sounds *RecordingSounds
	Input  *ScriptInput

	mapText string
	opts    []SessionOption
	frame   time.Duration
	err     error
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra   simOptionKind = iota // map, seed, frame time: applied before the session exists
	simOptSession                      // pose and state tweaks: applied after
)

// SimOption is a builder function applied to a TestSession during
// construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSession)
}

// WithMapText plays a custom map instead of the school.
func WithMapText(text string) SimOption {
	return SimOption{simOptInfra, func(ts *TestSession) {
		ts.mapText = text
	}}
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSession) {
		ts.opts = append(ts.opts, WithRand(seed))
	}}
}

// WithFrameTime sets how far the clock moves per tick.
func WithFrameTime(d time.Duration) SimOption {
	return SimOption{simOptInfra, func(ts *TestSession) {
		ts.frame = d
	}}
}

// WithVerbose enables per-tick camera entries in the event log.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptSession, func(ts *TestSession) {
		ts.Events = NewSimLog(v)
	}}
}

// WithSessionOptions passes options straight to NewSession.
func WithSessionOptions(opts ...SessionOption) SimOption {
	return SimOption{simOptInfra, func(ts *TestSession) {
		ts.opts = append(ts.opts, opts...)
	}}
}

// WithCamera places the camera at pos facing angle.
func WithCamera(pos Vec2, angle float64) SimOption {
	return SimOption{simOptSession, func(ts *TestSession) {
		ts.Cam = Camera{Pos: pos, Angle: angle}
	}}
}

// WithAmmo overrides the starting inventory.
func WithAmmo(loaded, reserve int) SimOption {
	return SimOption{simOptSession, func(ts *TestSession) {
		ts.Inv = Inventory{Loaded: loaded, Reserve: reserve}
	}}
}

// NewTestSession builds a session from the given options in two ordered
// passes: infrastructure first, then adjustments to the built session. A
// build error is kept and returned by Err.
func NewTestSession(opts ...SimOption) *TestSession {
	ts := &TestSession{
		Clock:   &ManualClock{},
		Sounds:  &RecordingSounds{},
		Input:   &ScriptInput{},
		mapText: schoolMap,
		frame:   frameTime,
	}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(ts)
		}
	}
	m, err := ParseTileMap(strings.NewReader(ts.mapText))
	if err != nil {
		ts.err = err
		return ts
	}
	base := []SessionOption{WithClock(ts.Clock), WithSounds(ts.Sounds)}
	ts.Session, ts.err = NewSession(m, append(base, ts.opts...)...)
	if ts.err != nil {
		return ts
	}
	for _, o := range opts {
		if o.kind == simOptSession {
			o.fn(ts)
		}
	}
	return ts
}

// Err returns the construction error, if any.
func (ts *TestSession) Err() error {
	return ts.err
}

// Tick advances the clock one frame and runs one update with the given
// actions pressed.
func (ts *TestSession) Tick(pressed ...Action) {
	ts.Input.pressed = [actionCount]bool{}
	for _, a := range pressed {
		ts.Input.pressed[a] = true
	}
	ts.Clock.Advance(ts.frame)
	ts.Update(ts.Input)
	ts.Input.pressed = [actionCount]bool{}
	ts.Events.AddVerbose(ts.tick, ts.Clock.Now(), "move", "camera",
		fmt.Sprintf("(%.1f,%.1f) %.2f", ts.Cam.Pos.X, ts.Cam.Pos.Y, ts.Cam.Angle), 0)
}

// Hold sets which actions stay held across ticks.
func (ts *TestSession) Hold(actions ...Action) {
	ts.Input.held = [actionCount]bool{}
	for _, a := range actions {
		ts.Input.held[a] = true
	}
}

// RunTicks runs n ticks with nothing pressed.
func (ts *TestSession) RunTicks(n int) {
	for range n {
		ts.Tick()
	}
}

// RunFor runs ticks until at least d of clock time has passed.
func (ts *TestSession) RunFor(d time.Duration) {
	end := ts.Clock.Now() + d
	for ts.Clock.Now() < end {
		ts.Tick()
	}
}

// RunUntil runs ticks until predicate holds or maxTicks pass. It returns the
// tick at which the predicate was satisfied, or -1.
func (ts *TestSession) RunUntil(predicate func(*TestSession) bool, maxTicks int) int {
	for range maxTicks {
		ts.Tick()
		if predicate(ts) {
			return ts.tick
		}
	}
	return -1
}

// Teleport puts the camera at pos without moving through the world.
func (ts *TestSession) Teleport(pos Vec2) {
	ts.Cam.Pos = pos
}

// Face turns the camera toward target.
func (ts *TestSession) Face(target Vec2) {
	ts.Cam.Angle = target.Sub(ts.Cam.Pos).Angle()
	ts.Cam.VAngle = 0
}

// UseDoor stands on the marker at c, presses interact and waits for the
// crossing to finish.
func (ts *TestSession) UseDoor(c Cell) error {
	ts.Teleport(c.Center())
	ts.Tick(ActionInteract)
	if ts.Phase != PhaseTransition {
		return fmt.Errorf("door at %v did not start a transition", c)
	}
	if ts.RunUntil(func(t *TestSession) bool { return t.Phase == PhaseNormal }, 600) < 0 {
		return fmt.Errorf("door at %v never finished", c)
	}
	return nil
}

// ErrStuck is returned by AutoPlay when the script stops making progress.
var ErrStuck = errors.New("playthrough made no progress")

// vantage finds a free spot near target with a clear shot at it.
func (ts *TestSession) vantage(target Vec2) (Vec2, bool) {
	for _, r := range []float64{30, 20, 40} {
		for k := range 8 {
			p := target.Add(fromAngle(float64(k) * math.Pi / 4).Scale(r))
			if ts.Map.At(ts.Map.CellOf(p)).Solid() {
				continue
			}
			to := target.Sub(p)
			if ts.Map.castWall(p, to.Scale(1/to.Len())).dist > to.Len() {
				return p, true
			}
		}
	}
	return Vec2{}, false
}

// killNearest shoots the first living child it can line up on.
func (ts *TestSession) killNearest() error {
	if ts.Inv.Loaded == 0 {
		if ts.Inv.Reserve == 0 {
			return fmt.Errorf("out of ammo: %w", ErrStuck)
		}
		ts.Tick(ActionReload)
		ts.RunFor(reloadCooldown + frameTime)
	}
	for _, c := range ts.Children {
		if c.Tag != TagChildAlive {
			continue
		}
		p, ok := ts.vantage(c.Pos)
		if !ok {
			continue
		}
		ts.Teleport(p)
		ts.Face(c.Pos)
		ts.Tick(ActionFire)
		return nil
	}
	return fmt.Errorf("no child in reach: %w", ErrStuck)
}

// AutoPlay scripts a whole playthrough: enter, clear the school, optionally
// throw the gun away, leave and read the ending.
func (ts *TestSession) AutoPlay(discard bool) error {
	if ts.err != nil {
		return ts.err
	}
	ts.Start()
	if err := ts.UseDoor(ts.layout.Entry); err != nil {
		return err
	}
	for shots := 0; ts.ChildrenAlive > 0; shots++ {
		if shots > 4*(clipSize+startReserve) {
			return ErrStuck
		}
		if err := ts.killNearest(); err != nil {
			return err
		}
	}
	ts.Tick()
	if ts.Exit != ExitSpawned {
		return fmt.Errorf("exit not spawned: %w", ErrStuck)
	}
	if discard {
		for _, p := range ts.Props {
			if p.Prop == PropTrash {
				ts.Teleport(p.Pos.Add(Vec2{0, -interactRadius / 2}))
				ts.Tick(ActionInteract)
				break
			}
		}
	}
	if err := ts.UseDoor(ts.layout.Exit); err != nil {
		return err
	}
	if ts.Dialogue == nil {
		return fmt.Errorf("no ending after leaving: %w", ErrStuck)
	}
	for !ts.Dialogue.Done() {
		ts.Tick(ActionAdvance)
	}
	ts.Tick()
	return nil
}

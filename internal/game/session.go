package game

import (
	"errors"
	"fmt"
	"iter"
	"math/rand"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/Garsondee/Last-Bell/internal/audio"
	"github.com/Garsondee/Last-Bell/internal/logging"
)

// ErrBadLayout means the map does not match the layout it is played with.
var ErrBadLayout = errors.New("map does not fit layout")

// Sounds is the audio surface the session drives.
type Sounds interface {
	Play(s audio.Sound)
	Loop(s audio.Sound)
	Stop(s audio.Sound)
}

type nopSounds struct{}

func (nopSounds) Play(audio.Sound) {}
func (nopSounds) Loop(audio.Sound) {}
func (nopSounds) Stop(audio.Sound) {}

// Session is all mutable state of one playthrough. Nothing outside it holds
// game state.
type Session struct {
	Map   *TileMap
	Cam   Camera
	Scene SceneConfig

	Children    []Entity
	Props       []Entity
	DoorMarkers []Entity
	Police      []Entity
	Doors       *DoorRegistry

	Inv    Inventory
	Reload ReloadTimer
	Weapon Weapon

	Gun   GunState
	Exit  ExitState
	Where Whereabouts

	Phase      Phase
	Transition Transition
	Dialogue   *Dialogue

	// ChildrenAlive is recounted at the start of every tick.
	ChildrenAlive int
	// Captured is true while the cursor drives the camera. Sessions start
	// captured.
	Captured bool

	Events   *SimLog
	Thoughts *ThoughtLog

	layout     Layout
	formation  []Vec2
	goodLines  []string
	badLines   []string
	childSpeed []float64
	controller cameraController
	clock      Clock
	sounds     Sounds
	rng        *rand.Rand
	log        zerolog.Logger
	tick       int
	rerender   bool
}

// SessionOption customises a session before it starts.
type SessionOption func(*Session)

// WithClock replaces the wall clock.
func WithClock(c Clock) SessionOption {
	return func(s *Session) { s.clock = c }
}

// WithSounds routes audio cues to snd.
func WithSounds(snd Sounds) SessionOption {
	return func(s *Session) { s.sounds = snd }
}

// WithLogger attaches a logger for session events.
func WithLogger(l zerolog.Logger) SessionOption {
	return func(s *Session) { s.log = l }
}

// WithRand seeds child speeds and wander jitter.
func WithRand(seed int64) SessionOption {
	return func(s *Session) {
		s.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- gameplay jitter, not security
	}
}

// WithControls sets movement speed and mouse sensitivity.
func WithControls(speed, sensitivity float64) SessionOption {
	return func(s *Session) {
		s.controller.speed = speed
		s.controller.sensitivity = sensitivity
	}
}

// WithLayout plays the map with a different set of designated cells.
func WithLayout(l Layout) SessionOption {
	return func(s *Session) { s.layout = l }
}

// WithFormation replaces the police formation table.
func WithFormation(slots []Vec2) SessionOption {
	return func(s *Session) { s.formation = slots }
}

// WithDialogue replaces the ending line tables.
func WithDialogue(good, bad []string) SessionOption {
	return func(s *Session) {
		s.goodLines = good
		s.badLines = bad
	}
}

// NewSession populates a session from a parsed map. The entry door is linked
// to the inside arrival cell up front so every marker always has a target.
func NewSession(m *TileMap, opts ...SessionOption) (*Session, error) {
	s := &Session{
		Map:        m,
		Scene:      outdoorScene,
		Captured:   true,
		Doors:      NewDoorRegistry(),
		Inv:        newInventory(),
		Weapon:     newWeapon(),
		Events:     NewSimLog(false),
		Thoughts:   NewThoughtLog(),
		layout:     schoolLayout,
		formation:  policeFormation,
		goodLines:  goodEndingLines,
		badLines:   badEndingLines,
		controller: cameraController{speed: 2, sensitivity: 0.5},
		clock:      newWallClock(),
		sounds:     nopSounds{},
		rng:        rand.New(rand.NewSource(1)), // #nosec G404 -- default seed
		log:        zerolog.Nop(),
	}
	for _, o := range opts {
		o(s)
	}

	s.Children = m.FilterEntities(childSpawns...)
	s.Props = m.FilterEntities(propSpawns...)
	s.DoorMarkers = m.FilterEntities(doorSpawns...)
	if err := s.checkLayout(); err != nil {
		return nil, err
	}
	s.Doors.Link(s.layout.Entry, s.layout.Exit)

	s.childSpeed = make([]float64, len(s.Children))
	for i := range s.childSpeed {
		s.childSpeed[i] = childSpeedMin + s.rng.Float64()*(childSpeedMax-childSpeedMin)
	}
	s.ChildrenAlive = countTag(s.Children, TagChildAlive)
	s.Cam = Camera{Pos: s.layout.Start, Angle: s.layout.StartAngle}
	return s, nil
}

func (s *Session) checkLayout() error {
	if len(s.DoorMarkers) != 1 || s.Map.CellOf(s.DoorMarkers[0].Pos) != s.layout.Entry {
		return fmt.Errorf("entry door must be the only marker, at %v: %w", s.layout.Entry, ErrBadLayout)
	}
	if s.Map.At(s.layout.Exit).Solid() {
		return fmt.Errorf("exit cell %v is not floor: %w", s.layout.Exit, ErrBadLayout)
	}
	if s.Map.At(s.Map.CellOf(s.layout.Start)).Solid() {
		return fmt.Errorf("start position is inside a wall: %w", ErrBadLayout)
	}
	return nil
}

// Start plays the opening cue.
func (s *Session) Start() {
	s.sounds.Play(audio.SoundEquip)
	s.record("session", "start", fmt.Sprintf("children=%d", s.ChildrenAlive), float64(s.ChildrenAlive))
}

// Update runs one tick of game logic.
func (s *Session) Update(in Input) {
	s.tick++
	if in.JustPressed(ActionToggleCapture) {
		s.Captured = !s.Captured
	}
	s.ChildrenAlive = countTag(s.Children, TagChildAlive)

	if s.Phase == PhaseTransition {
		s.tickTransition()
		return
	}

	if s.Where != BackOutside {
		s.controller.apply(&s.Cam, s.Map, in, s.Captured)
	}
	s.spawnExitIfCleared()

	if s.Where != BackOutside && in.JustPressed(ActionInteract) {
		if m, ok := nearestMarker(s.DoorMarkers, s.Cam.Pos); ok {
			s.beginTransition(m)
			if s.Phase == PhaseTransition {
				return
			}
		}
	}

	if s.Gun == GunCarried {
		if in.JustPressed(ActionFire) {
			s.fire()
		}
		s.wanderChildren()
		if in.JustPressed(ActionInteract) && s.nearTrash() {
			s.discard()
		}
	}
	if s.Gun == GunCarried {
		s.reload(in.JustPressed(ActionReload))
	}
	s.Weapon.Animate()

	if s.Dialogue != nil && in.JustPressed(ActionAdvance) && s.Dialogue.Advance() {
		s.record("ending", "advance", strconv.Itoa(s.Dialogue.Index()), float64(s.Dialogue.Index()))
		if s.Dialogue.Done() {
			s.record("ending", "card", s.Dialogue.EndCard(), 0)
		}
	}
}

// Entities yields everything the renderer draws.
func (s *Session) Entities() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for _, group := range [][]Entity{s.Children, s.Props, s.Police} {
			for _, e := range group {
				if !yield(e) {
					return
				}
			}
		}
	}
}

// DoorPrompt reports whether a door is within reach.
func (s *Session) DoorPrompt() bool {
	if s.Phase != PhaseNormal || s.Where == BackOutside {
		return false
	}
	_, ok := nearestMarker(s.DoorMarkers, s.Cam.Pos)
	return ok
}

// TrashPrompt reports whether the gun can be thrown away here.
func (s *Session) TrashPrompt() bool {
	return s.Gun == GunCarried && s.nearTrash()
}

// Objective is the counter shown while exploring inside.
func (s *Session) Objective() string {
	if s.ChildrenAlive == 0 {
		return "Exit the school"
	}
	return fmt.Sprintf("%d left", s.ChildrenAlive)
}

// Tick returns the number of updates run so far.
func (s *Session) Tick() int {
	return s.tick
}

// record notes a session event in the event log, the on-screen log and the
// structured logger.
func (s *Session) record(category, key, value string, num float64) {
	s.Events.Add(s.tick, s.clock.Now(), category, key, value, num)
	s.Thoughts.Add(s.tick, category, key+" "+value)
	s.log.Debug().
		Fields(logging.Fields("tick", s.tick, "category", category, "value", value)).
		Msg(key)
}

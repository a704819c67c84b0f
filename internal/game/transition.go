package game

import (
	"fmt"
	"time"

	"github.com/Garsondee/Last-Bell/internal/audio"
)

const (
	transitionDuration = 1400 * time.Millisecond
	transitionMidpoint = 700 * time.Millisecond
)

// Phase says whether the session is in free play or crossing a door.
type Phase uint8

const (
	PhaseNormal Phase = iota
	PhaseTransition
)

func (p Phase) String() string {
	if p == PhaseTransition {
		return "transition"
	}
	return "normal"
}

// Transition is an in-flight door crossing. Swapped flips exactly once, the
// first tick after the midpoint.
type Transition struct {
	Start   time.Duration
	Source  Cell
	Target  Cell
	Swapped bool
}

// Elapsed returns the time since the crossing began.
func (t Transition) Elapsed(now time.Duration) time.Duration {
	return now - t.Start
}

// fadeAlpha is the black overlay opacity: 0 to 1 over the first half, then
// back to 0.
func fadeAlpha(elapsed, total time.Duration) float64 {
	if total <= 0 {
		return 0
	}
	half := float64(total) / 2
	e := float64(elapsed)
	if e <= half {
		return clamp01(e / half)
	}
	return clamp01((float64(total) - e) / half)
}

// FadeAlpha returns the overlay opacity for the current crossing, or 0 when
// none is in flight.
func (s *Session) FadeAlpha() float64 {
	if s.Phase != PhaseTransition {
		return 0
	}
	return fadeAlpha(s.Transition.Elapsed(s.clock.Now()), transitionDuration)
}

// beginTransition starts crossing the door marker at pos.
func (s *Session) beginTransition(marker Entity) {
	src := s.Map.CellOf(marker.Pos)
	dst, ok := s.Doors.Target(src)
	if !s.assertf(ok, "door marker at %v has no registry entry", src) {
		return
	}
	s.sounds.Play(audio.SoundDoor)
	s.Phase = PhaseTransition
	s.Transition = Transition{Start: s.clock.Now(), Source: src, Target: dst}
	s.record("transition", "start", fmt.Sprintf("%v -> %v", src, dst), 0)
}

// tickTransition advances an in-flight crossing by one frame. The swap check
// runs before the end check so a late first tick still swaps once.
func (s *Session) tickTransition() {
	t := &s.Transition
	elapsed := t.Elapsed(s.clock.Now())
	if !t.Swapped && elapsed > transitionMidpoint {
		t.Swapped = true
		s.swapScene(t.Source, t.Target)
		s.rerender = true
	}
	if elapsed > transitionDuration {
		s.Phase = PhaseNormal
		s.rerender = false
		s.record("transition", "end", fmt.Sprintf("%v", t.Target), elapsed.Seconds())
	}
}

// swapScene teleports the camera and, for the two designated doors, swaps
// the scene preset and the ambient audio.
func (s *Session) swapScene(src, dst Cell) {
	s.Cam.Pos = dst.Center()
	switch src {
	case s.layout.Entry:
		s.Scene = indoorScene
		if s.Where.Advance(Inside) {
			s.Police = spawnFormation(s.formation)
		}
		s.sounds.Loop(audio.SoundAmbience)
	case s.layout.Exit:
		s.Scene = outdoorScene
		s.sounds.Stop(audio.SoundAmbience)
		s.sounds.Loop(audio.SoundSiren)
		s.Cam.Angle = s.layout.ReturnAngle
		s.Cam.VAngle = 0
		if s.Where.Advance(BackOutside) {
			s.Dialogue = NewDialogue(s.Gun, s.goodLines, s.badLines)
			s.record("ending", "arrive", s.Gun.String(), 0)
		}
	}
	s.record("transition", "swap", s.Scene.Name, 0)
}

// TakeRerender reports, once, that the frozen world image must be redrawn
// after a teleport.
func (s *Session) TakeRerender() bool {
	r := s.rerender
	s.rerender = false
	return r
}

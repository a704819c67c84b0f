package game

import (
	"fmt"

	"github.com/Garsondee/Last-Bell/internal/audio"
)

// --- Combat constants ---

const (
	interactRadius = 25.0  // reach for doors and the trash can
	lockShotRange  = 100.0 // a locked door only breaks when shot from closer than this
	lockHintRange  = 40.0  // distance at which the lock hint appears
	wanderRadius   = 300.0 // children further away stand still
	wanderSpread   = 3.0   // lateral jitter range, either side
	childSpeedMin  = 0.2
	childSpeedMax  = 1.5
)

// liveChildren filters ray hits to children still standing.
var liveChildren = NewTagSet(TagChildAlive)

// fire handles one trigger pull.
func (s *Session) fire() {
	if !s.Inv.Spend() {
		s.sounds.Play(audio.SoundEmptyShot)
		s.record("combat", "dry_fire", "", 0)
		return
	}
	now := s.clock.Now()
	s.sounds.Play(audio.SoundGunshot)
	s.Weapon.Recoil(now)
	s.record("combat", "shot", fmt.Sprintf("loaded=%d", s.Inv.Loaded), float64(s.Inv.Loaded))

	hit := s.Map.CastRay(s.Children, liveChildren, s.Cam)
	switch hit.Kind {
	case HitEntity:
		s.Children[hit.Index].Tag = TagChildDead
		s.sounds.Play(audio.SoundFlesh)
		s.record("combat", "kill", fmt.Sprintf("child %d at %.0f", hit.Index, hit.Distance), hit.Distance)
	case HitWall:
		if s.Map.At(hit.Cell) != TileLocked || hit.Distance >= lockShotRange {
			return
		}
		s.sounds.Play(audio.SoundLock)
		s.unlockDoor(hit.Cell)
	}
}

// wanderChildren sidesteps every nearby living child away from the middle
// of the player's view.
func (s *Session) wanderChildren() {
	dir := s.Cam.Dir()
	for i := range s.Children {
		c := &s.Children[i]
		if c.Tag != TagChildAlive {
			continue
		}
		rel := c.Pos.Sub(s.Cam.Pos)
		if rel.Len() > wanderRadius {
			continue
		}
		side := -sign(rel.Cross(dir))
		jitter := s.rng.Float64()*2*wanderSpread - wanderSpread
		step := dir.Rotate(Vec2{jitter, side}).Scale(s.childSpeed[i])
		c.Pos = s.Map.MoveWithCollision(c.Pos, c.Pos.Add(step))
	}
}

// nearTrash reports whether the camera can reach a trash can.
func (s *Session) nearTrash() bool {
	for _, p := range s.Props {
		if p.Prop == PropTrash && s.Cam.Pos.Dist(p.Pos) < interactRadius {
			return true
		}
	}
	return false
}

// discard throws the gun away for good.
func (s *Session) discard() {
	if !s.Gun.Discard() {
		return
	}
	s.Weapon.Lower()
	s.sounds.Play(audio.SoundTrash)
	s.record("combat", "discard", fmt.Sprintf("loaded=%d reserve=%d", s.Inv.Loaded, s.Inv.Reserve), 0)
}

// reload starts a reload cycle on request and advances any cycle in flight.
func (s *Session) reload(requested bool) {
	now := s.clock.Now()
	if requested && s.Reload.Start(now) {
		s.record("reload", "start", "", 0)
	}
	switch s.Reload.Advance(now) {
	case ReloadLower:
		s.Weapon.Lower()
		s.sounds.Play(audio.SoundReload)
	case ReloadRaise:
		s.Weapon.Raise()
		n := s.Inv.Replenish()
		s.record("reload", "refill", fmt.Sprintf("+%d loaded=%d reserve=%d", n, s.Inv.Loaded, s.Inv.Reserve), float64(n))
	}
}

// LockHint returns the prompt for a locked door close ahead, if any.
func (s *Session) LockHint() (string, bool) {
	hit := s.Map.CastRay(nil, 0, s.Cam)
	if s.Map.At(hit.Cell) != TileLocked || hit.Distance >= lockHintRange {
		return "", false
	}
	if s.Gun == GunDiscarded {
		return "You need a gun to unlock this door", true
	}
	return "Shoot the lock (using left mouse button) to unlock the door", true
}

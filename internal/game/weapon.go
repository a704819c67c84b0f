package game

import "time"

const (
	recoilDuration  = 100 * time.Millisecond // firing sprite shown after a shot
	weaponSlideRate = 0.08                   // fraction of the slide covered per tick
)

// Weapon is the on-screen view model. It holds presentation state only;
// ammunition lives in Inventory.
type Weapon struct {
	Equipped    bool
	recoilUntil time.Duration
	slide       float64 // 0 = raised, 1 = fully lowered off screen
}

func newWeapon() Weapon {
	return Weapon{Equipped: true}
}

// Recoil swaps to the firing sprite briefly.
func (w *Weapon) Recoil(now time.Duration) {
	w.recoilUntil = now + recoilDuration
}

// Firing reports whether the firing sprite should be shown at now.
func (w *Weapon) Firing(now time.Duration) bool {
	return now < w.recoilUntil
}

func (w *Weapon) Lower() { w.Equipped = false }
func (w *Weapon) Raise() { w.Equipped = true }

// Animate moves the slide one tick toward its target.
func (w *Weapon) Animate() {
	target := 0.0
	if !w.Equipped {
		target = 1
	}
	switch {
	case w.slide < target:
		w.slide = min(target, w.slide+weaponSlideRate)
	case w.slide > target:
		w.slide = max(target, w.slide-weaponSlideRate)
	}
}

// Slide returns how far the weapon is lowered, in [0,1].
func (w *Weapon) Slide() float64 {
	return w.slide
}

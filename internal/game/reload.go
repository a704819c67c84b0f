package game

import "time"

const (
	clipSize       = 16
	startReserve   = 128
	reloadCooldown = 3 * time.Second // minimum gap between reload starts
	reloadLowered  = 2 * time.Second // weapon stays lowered this long
)

// Inventory is the ammunition the player carries.
// Invariant: 0 <= Loaded <= clipSize and Reserve >= 0.
type Inventory struct {
	Loaded  int
	Reserve int
}

func newInventory() Inventory {
	return Inventory{Loaded: clipSize, Reserve: startReserve}
}

// Spend removes one loaded round. It reports false on an empty clip.
func (inv *Inventory) Spend() bool {
	if inv.Loaded <= 0 {
		return false
	}
	inv.Loaded--
	return true
}

// Replenish moves as many reserve rounds into the clip as fit and returns
// how many moved.
func (inv *Inventory) Replenish() int {
	n := min(clipSize-inv.Loaded, inv.Reserve)
	if n <= 0 {
		return 0
	}
	inv.Loaded += n
	inv.Reserve -= n
	return n
}

// ReloadState is the phase of a reload cycle.
type ReloadState uint8

const (
	ReloadIdle        ReloadState = iota
	ReloadUnequipping             // weapon lowered, [0s, 2s)
	ReloadEquipping               // weapon raised and refilled, [2s, 3s)
)

func (r ReloadState) String() string {
	switch r {
	case ReloadUnequipping:
		return "unequipping"
	case ReloadEquipping:
		return "equipping"
	default:
		return "idle"
	}
}

// ReloadEvent is what a reload tick asks the caller to do.
type ReloadEvent uint8

const (
	ReloadNone ReloadEvent = iota
	ReloadLower
	ReloadRaise
)

// ReloadTimer sequences one reload from its start timestamp. Starts are
// debounced by wall time, not by state.
type ReloadTimer struct {
	state   ReloadState
	began   time.Duration
	started bool
	lowered bool
}

// State returns the current phase.
func (r *ReloadTimer) State() ReloadState {
	return r.state
}

// Start begins a reload at now unless the previous one began within the
// cooldown. It reports whether a reload started.
func (r *ReloadTimer) Start(now time.Duration) bool {
	if r.started && now-r.began <= reloadCooldown {
		return false
	}
	r.began = now
	r.started = true
	r.lowered = false
	r.state = ReloadUnequipping
	return true
}

// Advance steps the cycle to now. ReloadLower is returned once at the start
// of a cycle and ReloadRaise once after the lowered window.
func (r *ReloadTimer) Advance(now time.Duration) ReloadEvent {
	elapsed := now - r.began
	switch r.state {
	case ReloadUnequipping:
		if elapsed < reloadLowered {
			if !r.lowered {
				r.lowered = true
				return ReloadLower
			}
			return ReloadNone
		}
		r.state = ReloadEquipping
		if r.lowered {
			r.lowered = false
			return ReloadRaise
		}
		return ReloadNone
	case ReloadEquipping:
		if elapsed >= reloadCooldown {
			r.state = ReloadIdle
		}
	}
	return ReloadNone
}

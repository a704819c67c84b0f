package game

// The session's one-way flags. Each is an ordered enum whose only mutator
// moves it forward, so a backward transition cannot be written.

// GunState tracks whether the player still carries the weapon.
type GunState uint8

const (
	GunCarried GunState = iota
	GunDiscarded
)

// Discard latches GunDiscarded. It reports false if already discarded.
func (g *GunState) Discard() bool {
	if *g == GunDiscarded {
		return false
	}
	*g = GunDiscarded
	return true
}

func (g GunState) String() string {
	if g == GunDiscarded {
		return "discarded"
	}
	return "carried"
}

// ExitState tracks whether the exit door has appeared.
type ExitState uint8

const (
	ExitSealed ExitState = iota
	ExitSpawned
)

// Spawn latches ExitSpawned. It reports false if already spawned.
func (e *ExitState) Spawn() bool {
	if *e == ExitSpawned {
		return false
	}
	*e = ExitSpawned
	return true
}

func (e ExitState) String() string {
	if e == ExitSpawned {
		return "spawned"
	}
	return "sealed"
}

// Whereabouts is the player's progress through the building.
type Whereabouts uint8

const (
	Outside Whereabouts = iota
	Inside
	BackOutside
)

// Advance moves to next if next is later than the current stage.
func (w *Whereabouts) Advance(next Whereabouts) bool {
	if next <= *w || next > BackOutside {
		return false
	}
	*w = next
	return true
}

func (w Whereabouts) String() string {
	switch w {
	case Inside:
		return "inside"
	case BackOutside:
		return "back outside"
	default:
		return "outside"
	}
}

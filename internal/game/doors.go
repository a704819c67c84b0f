package game

import (
	"fmt"
	"sort"
)

// DoorRegistry pairs traversal cells. Link is the only insertion and always
// writes both directions, so the mapping stays symmetric.
type DoorRegistry struct {
	links map[Cell]Cell
}

// NewDoorRegistry returns an empty registry.
func NewDoorRegistry() *DoorRegistry {
	return &DoorRegistry{links: make(map[Cell]Cell)}
}

// Link pairs a and b. It reports whether anything new was inserted; linking
// an existing pair again is a no-op.
func (r *DoorRegistry) Link(a, b Cell) bool {
	if cur, ok := r.links[a]; ok && cur == b {
		if back, ok := r.links[b]; ok && back == a {
			return false
		}
	}
	r.links[a] = b
	r.links[b] = a
	return true
}

// Target returns the cell paired with c.
func (r *DoorRegistry) Target(c Cell) (Cell, bool) {
	t, ok := r.links[c]
	return t, ok
}

// Len returns the number of directed entries.
func (r *DoorRegistry) Len() int {
	return len(r.links)
}

// Symmetric reports whether every entry has its mirror.
func (r *DoorRegistry) Symmetric() bool {
	for a, b := range r.links {
		if back, ok := r.links[b]; !ok || back != a {
			return false
		}
	}
	return true
}

// Pairs lists each link once, ordered for stable output.
func (r *DoorRegistry) Pairs() [][2]Cell {
	var out [][2]Cell
	for a, b := range r.links {
		if a.Y < b.Y || (a.Y == b.Y && a.X < b.X) {
			out = append(out, [2]Cell{a, b})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0].Y != out[j][0].Y {
			return out[i][0].Y < out[j][0].Y
		}
		return out[i][0].X < out[j][0].X
	})
	return out
}

// unlockDoor opens the locked wall at cell. The wall's orientation is read
// from the cell to its left: floor there means the wall runs north-south and
// is crossed left to right; otherwise it is crossed top to bottom. Two new
// markers are spawned and linked to each other.
func (s *Session) unlockDoor(cell Cell) {
	var a, b Cell
	if !s.Map.At(cell.Offset(-1, 0)).Solid() {
		a, b = cell.Offset(-1, 0), cell.Offset(1, 0)
	} else {
		a, b = cell.Offset(0, -1), cell.Offset(0, 1)
	}
	s.DoorMarkers = append(s.DoorMarkers, newDoorMarker(a), newDoorMarker(b))
	s.Doors.Link(a, b)
	s.Map.Set(cell, TileUnlocked)
	s.record("door", "unlock", fmt.Sprintf("%v <-> %v", a, b), 0)
}

// spawnExitIfCleared opens the way out once no child is left alive. It runs
// at most once per session.
func (s *Session) spawnExitIfCleared() {
	if s.ChildrenAlive > 0 || !s.Exit.Spawn() {
		return
	}
	s.DoorMarkers = append(s.DoorMarkers, newDoorMarker(s.layout.Exit))
	s.Doors.Link(s.layout.Exit, s.layout.Entry)
	s.record("door", "exit_spawned", fmt.Sprintf("%v", s.layout.Exit), 0)
}

// nearestMarker returns the first door marker within reach of pos.
func nearestMarker(markers []Entity, pos Vec2) (Entity, bool) {
	for _, m := range markers {
		if pos.Dist(m.Pos) < interactRadius {
			return m, true
		}
	}
	return Entity{}, false
}

package game

import "math"

// maxRayDistance bounds every cast; the grid is always walled well inside it.
const maxRayDistance = 100 * tileSize

// HitKind says what a ray stopped on.
type HitKind uint8

const (
	HitWall HitKind = iota
	HitEntity
)

// Intersection is the nearest hit along a ray.
type Intersection struct {
	Kind     HitKind
	Index    int     // entity index, for HitEntity
	Cell     Cell    // wall cell, for HitWall
	Distance float64 // world units from the ray origin
}

// wallHit is a DDA result in the form the renderer needs.
type wallHit struct {
	cell Cell
	dist float64 // euclidean distance along a unit direction
	side int     // 0 = crossed a vertical grid line, 1 = horizontal
	frac float64 // where along the wall face the ray landed, [0,1)
}

// castWall walks the grid from origin along the unit vector dir until it
// enters a solid tile. Cells outside the grid are solid, so the walk always
// terminates.
func (m *TileMap) castWall(origin, dir Vec2) wallHit {
	px, py := origin.X/tileSize, origin.Y/tileSize
	cell := Cell{int(math.Floor(px)), int(math.Floor(py))}

	deltaX, deltaY := math.Inf(1), math.Inf(1)
	if dir.X != 0 {
		deltaX = math.Abs(1 / dir.X)
	}
	if dir.Y != 0 {
		deltaY = math.Abs(1 / dir.Y)
	}

	stepX, stepY := 1, 1
	sideX := (float64(cell.X) + 1 - px) * deltaX
	if dir.X < 0 {
		stepX = -1
		sideX = (px - float64(cell.X)) * deltaX
	}
	sideY := (float64(cell.Y) + 1 - py) * deltaY
	if dir.Y < 0 {
		stepY = -1
		sideY = (py - float64(cell.Y)) * deltaY
	}

	side := 0
	limit := maxRayDistance / tileSize
	for {
		if sideX < sideY {
			sideX += deltaX
			cell.X += stepX
			side = 0
		} else {
			sideY += deltaY
			cell.Y += stepY
			side = 1
		}
		if m.At(cell).Solid() {
			break
		}
		if math.Min(sideX, sideY) > limit {
			break
		}
	}

	d := sideX - deltaX
	if side == 1 {
		d = sideY - deltaY
	}
	var along float64
	if side == 0 {
		along = py + d*dir.Y
	} else {
		along = px + d*dir.X
	}
	return wallHit{cell: cell, dist: d * tileSize, side: side, frac: along - math.Floor(along)}
}

// CastRay finds the nearest hit along the camera's forward axis. Only
// entities whose tag is in filter are considered; an empty filter tests walls
// only. An entity counts when the ray crosses its square footprint before the
// wall hit.
func (m *TileMap) CastRay(ents []Entity, filter TagSet, cam Camera) Intersection {
	dir := cam.Dir()
	wall := m.castWall(cam.Pos, dir)
	best := Intersection{Kind: HitWall, Cell: wall.cell, Distance: wall.dist}
	if filter == 0 {
		return best
	}

	end := cam.Pos.Add(dir.Scale(wall.dist))
	for i, e := range ents {
		if !filter.Has(e.Tag) || !e.Solid() {
			continue
		}
		half := e.Size.W / 2
		t, ok := rayAABBHitT(cam.Pos.X, cam.Pos.Y, end.X, end.Y,
			e.Pos.X-half, e.Pos.Y-half, e.Pos.X+half, e.Pos.Y+half)
		if !ok {
			continue
		}
		if d := t * wall.dist; d < best.Distance {
			best = Intersection{Kind: HitEntity, Index: i, Distance: d}
		}
	}
	return best
}

// rayAABBHitT returns the first segment parameter t in [0,1] where the line
// from (ox,oy)->(ex,ey) enters the AABB. The bool is false when no hit exists.
func rayAABBHitT(ox, oy, ex, ey, minX, minY, maxX, maxY float64) (float64, bool) {
	dx := ex - ox
	dy := ey - oy

	tMin := 0.0
	tMax := 1.0

	// Check X slab
	if math.Abs(dx) < 1e-12 {
		if ox < minX || ox > maxX {
			return 0, false
		}
	} else {
		invD := 1.0 / dx
		t1 := (minX - ox) * invD
		t2 := (maxX - ox) * invD
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}

	// Check Y slab
	if math.Abs(dy) < 1e-12 {
		if oy < minY || oy > maxY {
			return 0, false
		}
	} else {
		invD := 1.0 / dy
		t1 := (minY - oy) * invD
		t2 := (maxY - oy) * invD
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}

	if tMax < 0 || tMin > 1 {
		return 0, false
	}
	return tMin, true
}

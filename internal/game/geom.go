package game

import "math"

// tileSize is the world-space edge length of one grid cell.
const tileSize = 50.0

// Vec2 is a world-space point or direction.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }
func (v Vec2) Len() float64         { return math.Hypot(v.X, v.Y) }
func (v Vec2) Dist(o Vec2) float64  { return v.Sub(o).Len() }
func (v Vec2) Dot(o Vec2) float64   { return v.X*o.X + v.Y*o.Y }
func (v Vec2) Cross(o Vec2) float64 { return v.X*o.Y - v.Y*o.X }
func fromAngle(angle float64) Vec2  { return Vec2{math.Cos(angle), math.Sin(angle)} }
func (v Vec2) Angle() float64       { return math.Atan2(v.Y, v.X) }
func (v Vec2) Equal(o Vec2, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps && math.Abs(v.Y-o.Y) <= eps
}

// Rotate treats v as a rotation (complex multiplication) and applies it to o.
// With a unit v, o's X lies along v and o's Y along v's left-hand normal.
func (v Vec2) Rotate(o Vec2) Vec2 {
	return Vec2{v.X*o.X - v.Y*o.Y, v.Y*o.X + v.X*o.Y}
}

// Cell is an integer (column,row) coordinate into the tile grid.
type Cell struct {
	X, Y int
}

// Center returns the world-space centre of the cell.
func (c Cell) Center() Vec2 {
	return Vec2{float64(c.X)*tileSize + tileSize/2, float64(c.Y)*tileSize + tileSize/2}
}

// Offset returns the cell dx columns and dy rows away.
func (c Cell) Offset(dx, dy int) Cell {
	return Cell{c.X + dx, c.Y + dy}
}

// cellAt converts tile-unit coordinates into the world-space centre of that
// fractional cell.
func cellAt(tx, ty float64) Vec2 {
	return Vec2{tx*tileSize + tileSize/2, ty*tileSize + tileSize/2}
}

// sign returns 1 for x >= 0 and -1 otherwise.
func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

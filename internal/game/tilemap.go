package game

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
)

// Tile is one grid character. Walls are solid; everything else is floor.
type Tile byte

const (
	TileVoid       Tile = 0 // outside the grid; solid
	TileFloor      Tile = '.'
	TileWall       Tile = '0'
	TileDoor       Tile = '1'
	TileLocked     Tile = 'L'
	TileUnlocked   Tile = 'l'
	TileFence      Tile = '#'
	TileBoardLeft  Tile = '^'
	TileBoardRight Tile = 'v'
	TileBookshelf  Tile = 'b'
	TileLocker     Tile = 'o'
)

// wallHeight is the height multiplier, in tiles, for every wall character.
const wallHeight = 2.0

var (
	// ErrEmptyMap is returned for a map with no rows.
	ErrEmptyMap = errors.New("map has no rows")
	// ErrRaggedMap is returned when rows differ in width.
	ErrRaggedMap = errors.New("map rows differ in width")
	// ErrUnknownTile is returned for a character that is neither tile nor spawn.
	ErrUnknownTile = errors.New("unknown map character")
)

// Solid reports whether the tile blocks movement and rays.
func (t Tile) Solid() bool {
	switch t {
	case TileFloor:
		return false
	default:
		return true
	}
}

// Height returns the tile height in tiles; floor is 0.
func (t Tile) Height() float64 {
	if !t.Solid() || t == TileVoid {
		return 0
	}
	return wallHeight
}

func knownTile(ch byte) bool {
	switch Tile(ch) {
	case TileFloor, TileWall, TileDoor, TileLocked, TileUnlocked, TileFence,
		TileBoardLeft, TileBoardRight, TileBookshelf, TileLocker:
		return true
	}
	return false
}

// TileMap is the tile grid plus the spawn characters found while parsing.
// Spawn cells become floor.
type TileMap struct {
	w, h   int
	tiles  []Tile
	spawns map[byte][]Cell
}

// ParseTileMap reads a plain-text grid: one row per line, one character per
// cell. Blank trailing lines are ignored.
func ParseTileMap(r io.Reader) (*TileMap, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read map: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyMap
	}

	m := &TileMap{
		w:      len(rows[0]),
		h:      len(rows),
		spawns: make(map[byte][]Cell),
	}
	m.tiles = make([]Tile, m.w*m.h)
	for y, row := range rows {
		if len(row) != m.w {
			return nil, fmt.Errorf("row %d has width %d, want %d: %w", y, len(row), m.w, ErrRaggedMap)
		}
		for x := 0; x < m.w; x++ {
			ch := row[x]
			switch {
			case knownTile(ch):
				m.tiles[y*m.w+x] = Tile(ch)
			case spawnChar(ch):
				m.tiles[y*m.w+x] = TileFloor
				m.spawns[ch] = append(m.spawns[ch], Cell{x, y})
			default:
				return nil, fmt.Errorf("%q at (%d,%d): %w", ch, x, y, ErrUnknownTile)
			}
		}
	}
	return m, nil
}

// Width returns the number of columns.
func (m *TileMap) Width() int { return m.w }

// Height returns the number of rows.
func (m *TileMap) Height() int { return m.h }

func (m *TileMap) inBounds(c Cell) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < m.w && c.Y < m.h
}

// At returns the tile at c. Cells outside the grid read as TileVoid.
func (m *TileMap) At(c Cell) Tile {
	if !m.inBounds(c) {
		return TileVoid
	}
	return m.tiles[c.Y*m.w+c.X]
}

// Set replaces the tile at c. Writes outside the grid are ignored.
func (m *TileMap) Set(c Cell, t Tile) {
	if !m.inBounds(c) {
		return
	}
	m.tiles[c.Y*m.w+c.X] = t
}

// CellOf returns the cell containing world position p.
func (m *TileMap) CellOf(p Vec2) Cell {
	return Cell{int(math.Floor(p.X / tileSize)), int(math.Floor(p.Y / tileSize))}
}

// MoveWithCollision moves from toward to, one axis at a time, refusing the
// component of the move that would end inside a solid tile. This lets bodies
// slide along walls.
func (m *TileMap) MoveWithCollision(from, to Vec2) Vec2 {
	out := from
	if !m.At(m.CellOf(Vec2{to.X, from.Y})).Solid() {
		out.X = to.X
	}
	if !m.At(m.CellOf(Vec2{out.X, to.Y})).Solid() {
		out.Y = to.Y
	}
	return out
}

// FilterEntities builds entities for every cell that held one of the spawn
// characters, in row-major order per table entry.
func (m *TileMap) FilterEntities(spawns ...Spawn) []Entity {
	var out []Entity
	for _, sp := range spawns {
		for _, c := range m.spawns[sp.Char] {
			out = append(out, Entity{Pos: c.Center(), Tag: sp.Tag, Prop: sp.Prop, Size: sp.Size})
		}
	}
	return out
}

// String renders the grid back to text, without spawn characters.
func (m *TileMap) String() string {
	var b strings.Builder
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			b.WriteByte(byte(m.tiles[y*m.w+x]))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

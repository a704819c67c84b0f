package game

// Tag is the closed category of a point entity. It governs how the entity is
// drawn and which interactions apply to it.
type Tag uint8

const (
	TagChildAlive Tag = iota
	TagChildDead
	TagProp
	TagDoorMarker
	TagPolice
	tagCount // sentinel
)

var tagNames = [tagCount]string{
	TagChildAlive: "child",
	TagChildDead:  "dead child",
	TagProp:       "prop",
	TagDoorMarker: "door",
	TagPolice:     "police",
}

func (t Tag) String() string {
	if t >= tagCount {
		return "unknown"
	}
	return tagNames[t]
}

// PropKind distinguishes props, which share TagProp.
type PropKind uint8

const (
	PropNone PropKind = iota
	PropChair
	PropHoop
	PropPlant
	PropTrash
)

// TagSet is a bitmask of tags used to filter ray hits.
type TagSet uint8

// NewTagSet builds a set from the given tags.
func NewTagSet(tags ...Tag) TagSet {
	var s TagSet
	for _, t := range tags {
		s |= 1 << t
	}
	return s
}

// Has reports whether t is in the set.
func (s TagSet) Has(t Tag) bool {
	return s&(1<<t) != 0
}

// Size is an entity's billboard footprint in world units.
type Size struct {
	W, H float64
}

// Entity is a point object living on the grid.
type Entity struct {
	Pos  Vec2
	Tag  Tag
	Prop PropKind
	Size Size
}

// Solid reports whether the entity has a footprint a ray can hit.
func (e Entity) Solid() bool {
	return e.Size.W > 0 && e.Size.H > 0
}

// Spawn describes how a map character becomes an entity.
type Spawn struct {
	Char byte
	Tag  Tag
	Prop PropKind
	Size Size
}

// Spawn tables for the characters a map may contain besides tiles.
var (
	childSpawns = []Spawn{
		{Char: 'c', Tag: TagChildAlive, Size: Size{15, 25}},
		{Char: 'd', Tag: TagChildDead, Size: Size{15, 25}},
	}
	propSpawns = []Spawn{
		{Char: '_', Tag: TagProp, Prop: PropChair, Size: Size{24, 24}},
		{Char: 'H', Tag: TagProp, Prop: PropHoop, Size: Size{50, 100}},
		{Char: 'p', Tag: TagProp, Prop: PropPlant, Size: Size{20, 50}},
		{Char: 'T', Tag: TagProp, Prop: PropTrash, Size: Size{20, 20}},
	}
	doorSpawns = []Spawn{
		{Char: 'e', Tag: TagDoorMarker},
	}
)

func spawnChar(ch byte) bool {
	for _, table := range [][]Spawn{childSpawns, propSpawns, doorSpawns} {
		for _, sp := range table {
			if sp.Char == ch {
				return true
			}
		}
	}
	return false
}

// newDoorMarker returns a zero-footprint traversal point at the cell centre.
func newDoorMarker(c Cell) Entity {
	return Entity{Pos: c.Center(), Tag: TagDoorMarker}
}

// countTag returns how many entities carry tag t.
func countTag(ents []Entity, t Tag) int {
	n := 0
	for _, e := range ents {
		if e.Tag == t {
			n++
		}
	}
	return n
}

package game

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// testMap is a two-room yard: outside (rows 1-2) with the entry door, a wall
// with a locked door at (4,3) crossed top to bottom, and an inside room (rows
// 4-5) holding one child, a trash can, a chair and a locked door at (7,4)
// crossed left to right.
const testMap = `
0000000000
0....e...0
0........0
0000L00000
0..c...L.0
0...T..._0
0000000000
`

var testLayout = Layout{
	Entry:       Cell{5, 1},
	Exit:        Cell{5, 5},
	Start:       Cell{2, 2}.Center(),
	StartAngle:  0,
	ReturnAngle: -math.Pi / 2,
}

const testFrame = 100 * time.Millisecond

// newYard builds a harness on testMap with 100ms ticks.
func newYard(t *testing.T, opts ...SimOption) *TestSession {
	t.Helper()
	base := []SimOption{
		WithMapText(testMap),
		WithSessionOptions(WithLayout(testLayout)),
		WithFrameTime(testFrame),
		WithSeed(3),
	}
	ts := NewTestSession(append(base, opts...)...)
	require.NoError(t, ts.Err())
	return ts
}

// killAll marks every child dead without firing.
func killAll(ts *TestSession) {
	for i := range ts.Children {
		ts.Children[i].Tag = TagChildDead
	}
}

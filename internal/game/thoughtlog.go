package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	logPanelWidth = 300
	logMaxEntries = 40
	logLineHeight = 14
)

// ThoughtEntry is a single line in the on-screen event log.
type ThoughtEntry struct {
	Tick     int
	Category string
	Message  string
}

// ThoughtLog is a ring buffer of recent session events rendered in the debug
// panel.
type ThoughtLog struct {
	entries []ThoughtEntry
	head    int
	count   int
}

// NewThoughtLog creates a log with a fixed capacity.
func NewThoughtLog() *ThoughtLog {
	return &ThoughtLog{
		entries: make([]ThoughtEntry, logMaxEntries),
	}
}

// Add appends an entry, overwriting the oldest once full.
func (tl *ThoughtLog) Add(tick int, category, msg string) {
	tl.entries[tl.head] = ThoughtEntry{
		Tick:     tick,
		Category: category,
		Message:  msg,
	}
	tl.head = (tl.head + 1) % logMaxEntries
	if tl.count < logMaxEntries {
		tl.count++
	}
}

// Recent returns entries in chronological order (oldest first).
func (tl *ThoughtLog) Recent() []ThoughtEntry {
	result := make([]ThoughtEntry, tl.count)
	for i := 0; i < tl.count; i++ {
		idx := (tl.head - tl.count + i + logMaxEntries) % logMaxEntries
		result[i] = tl.entries[idx]
	}
	return result
}

var categoryColors = map[string]color.RGBA{
	"combat":     {R: 210, G: 70, B: 70, A: 255},
	"door":       {R: 210, G: 170, B: 60, A: 255},
	"transition": {R: 70, G: 110, B: 210, A: 255},
	"reload":     {R: 90, G: 190, B: 90, A: 255},
	"ending":     {R: 200, G: 200, B: 200, A: 255},
}

// Draw renders the log as a panel at (x, y) with height h, newest at the
// bottom.
func (tl *ThoughtLog) Draw(screen *ebiten.Image, x, y, h int) {
	vector.FillRect(screen, float32(x), float32(y), logPanelWidth, float32(h), color.RGBA{R: 10, G: 12, B: 10, A: 200}, false)
	vector.StrokeLine(screen, float32(x), float32(y), float32(x), float32(y+h), 1, color.RGBA{R: 50, G: 70, B: 50, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "EVENTS", x+8, y+2)

	entries := tl.Recent()
	maxVisible := (h - 20) / logLineHeight
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}
	row := y + 18
	for _, e := range entries {
		dot, ok := categoryColors[e.Category]
		if !ok {
			dot = color.RGBA{R: 120, G: 120, B: 120, A: 255}
		}
		vector.FillRect(screen, float32(x+5), float32(row+5), 3, 5, dot, false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%4d %s", e.Tick, e.Message), x+12, row)
		row += logLineHeight
	}
}

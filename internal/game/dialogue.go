package game

import "strings"

// playerLineMarker prefixes lines spoken by the player.
const playerLineMarker = "* "

var (
	goodEndingLines = []string{
		"You weren't the one that just shot this school up right?",
		"* I don't have a gun so I couldn't have done that.",
		"Ok, move along then.",
	}
	badEndingLines = []string{
		"...",
		"I guess it's pretty clear who the shooter was.",
		"* I should've thrown the gun away before leaving.",
	}
)

// Speaker attributes a dialogue line.
type Speaker uint8

const (
	SpeakerPolice Speaker = iota
	SpeakerPlayer
)

func (s Speaker) String() string {
	if s == SpeakerPlayer {
		return "You"
	}
	return "Police"
}

// Line is one attributed, display-ready dialogue line.
type Line struct {
	Speaker Speaker
	Text    string
}

// parseLine derives the speaker from the marker prefix and strips it.
func parseLine(raw string) Line {
	if text, ok := strings.CutPrefix(raw, playerLineMarker); ok {
		return Line{Speaker: SpeakerPlayer, Text: text}
	}
	return Line{Speaker: SpeakerPolice, Text: raw}
}

// Dialogue walks a fixed line sequence. The index only grows, one step per
// advance, and saturates at the sequence length.
type Dialogue struct {
	lines []string
	index int
	good  bool
}

// NewDialogue picks the good sequence when the gun was discarded.
func NewDialogue(gun GunState, good, bad []string) *Dialogue {
	if gun == GunDiscarded {
		return &Dialogue{lines: good, good: true}
	}
	return &Dialogue{lines: bad}
}

// Advance moves to the next line. It reports false once finished.
func (d *Dialogue) Advance() bool {
	if d.Done() {
		return false
	}
	d.index++
	return true
}

// Index returns the current position.
func (d *Dialogue) Index() int { return d.index }

// Len returns the sequence length.
func (d *Dialogue) Len() int { return len(d.lines) }

// Done reports whether every line has been shown.
func (d *Dialogue) Done() bool {
	return d.index >= len(d.lines)
}

// Current returns the line being shown, or false once done.
func (d *Dialogue) Current() (Line, bool) {
	if d.Done() {
		return Line{}, false
	}
	return parseLine(d.lines[d.index]), true
}

// Good reports whether this is the good ending.
func (d *Dialogue) Good() bool { return d.good }

// EndCard is the title shown after the last line.
func (d *Dialogue) EndCard() string {
	if d.good {
		return "GOOD ENDING"
	}
	return "BAD ENDING"
}

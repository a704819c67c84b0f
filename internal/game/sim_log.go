package game

import (
	"fmt"
	"strings"
	"time"
)

// SimLogEntry is one recorded session event.
type SimLogEntry struct {
	Tick     int
	At       time.Duration // session clock when recorded
	Category string        // session, door, transition, combat, reload, ending
	Key      string        // specific event name within the category
	Value    string        // human-readable detail
	NumVal   float64       // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=0042 1.25s] combat    kill             child 3 at 87
func (e SimLogEntry) String() string {
	return fmt.Sprintf("[T=%04d %5.2fs] %-10s %-16s %s",
		e.Tick, e.At.Seconds(), e.Category, e.Key, e.Value)
}

// SimLog collects structured session events. Unlike ThoughtLog (UI
// ring-buffer), SimLog is unbounded and machine-readable.
type SimLog struct {
	entries []SimLogEntry
	verbose bool
}

// NewSimLog creates a SimLog. If verbose is true, per-tick entries passed to
// AddVerbose are kept as well.
func NewSimLog(verbose bool) *SimLog {
	return &SimLog{verbose: verbose}
}

// Add records a new entry.
func (sl *SimLog) Add(tick int, at time.Duration, category, key, value string, numVal float64) {
	sl.entries = append(sl.entries, SimLogEntry{
		Tick:     tick,
		At:       at,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (sl *SimLog) AddVerbose(tick int, at time.Duration, category, key, value string, numVal float64) {
	if !sl.verbose {
		return
	}
	sl.Add(tick, at, category, key, value, numVal)
}

// Entries returns all recorded entries.
func (sl *SimLog) Entries() []SimLogEntry {
	return sl.entries
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (sl *SimLog) Filter(category, key string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterTickRange returns entries within [fromTick, toTick] inclusive.
func (sl *SimLog) FilterTickRange(fromTick, toTick int) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if e.Tick >= fromTick && e.Tick <= toTick {
			out = append(out, e)
		}
	}
	return out
}

// CountCategory returns how many entries match the given category and key.
func (sl *SimLog) CountCategory(category, key string) int {
	return len(sl.Filter(category, key))
}

// LastOf returns the most recent entry matching category+key, or false if none.
func (sl *SimLog) LastOf(category, key string) (SimLogEntry, bool) {
	entries := sl.Filter(category, key)
	if len(entries) == 0 {
		return SimLogEntry{}, false
	}
	return entries[len(entries)-1], true
}

// HasEntry returns true if at least one entry matches category, key, and value substring.
func (sl *SimLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range sl.Filter(category, key) {
		if valueSubstr == "" || strings.Contains(e.Value, valueSubstr) {
			return true
		}
	}
	return false
}

// Format returns the full log as a single string for t.Log output.
func (sl *SimLog) Format() string {
	return formatEntries(sl.entries)
}

// FormatRange returns a log string filtered to a tick range.
func (sl *SimLog) FormatRange(fromTick, toTick int) string {
	return formatEntries(sl.FilterTickRange(fromTick, toTick))
}

func formatEntries(entries []SimLogEntry) string {
	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Summary returns a short human-readable summary of the session state.
func (sl *SimLog) Summary(s *Session) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- Summary at T=%04d ---\n", s.Tick())
	fmt.Fprintf(&sb, "Children: alive=%d dead=%d\n",
		countTag(s.Children, TagChildAlive), countTag(s.Children, TagChildDead))
	fmt.Fprintf(&sb, "Ammo: loaded=%d reserve=%d shots=%d dry=%d\n",
		s.Inv.Loaded, s.Inv.Reserve, sl.CountCategory("combat", "shot"), sl.CountCategory("combat", "dry_fire"))
	fmt.Fprintf(&sb, "Gun: %s  Exit: %s  Whereabouts: %s\n", s.Gun, s.Exit, s.Where)
	fmt.Fprintf(&sb, "Doors: %d links, %d markers\n", len(s.Doors.Pairs()), len(s.DoorMarkers))
	if s.Dialogue == nil {
		sb.WriteString("Ending: not reached\n")
	} else {
		fmt.Fprintf(&sb, "Ending: line %d/%d", s.Dialogue.Index(), s.Dialogue.Len())
		if s.Dialogue.Done() {
			fmt.Fprintf(&sb, "  %s", s.Dialogue.EndCard())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

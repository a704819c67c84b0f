package game

import (
	"fmt"
	"strings"
)

// debugReportEvents is how many trailing events the clipboard report keeps.
const debugReportEvents = 40

// DebugReport is a plain-text dump of the session for bug reports: pose,
// latches, ammo, door links, the map as it stands, and recent events.
func (s *Session) DebugReport(lastEvents int) string {
	if lastEvents <= 0 {
		lastEvents = debugReportEvents
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- %s debug report ---\n", Title)
	fmt.Fprintf(&b, "tick=%d time=%.2fs phase=%s scene=%s\n",
		s.tick, s.clock.Now().Seconds(), s.Phase, s.Scene.Name)
	fmt.Fprintf(&b, "camera pos=(%.1f,%.1f) cell=%v angle=%.3f pitch=%.3f captured=%v\n\n",
		s.Cam.Pos.X, s.Cam.Pos.Y, s.Map.CellOf(s.Cam.Pos), s.Cam.Angle, s.Cam.VAngle, s.Captured)

	b.WriteString("== state ==\n")
	fmt.Fprintf(&b, "gun=%s exit=%s whereabouts=%s\n", s.Gun, s.Exit, s.Where)
	fmt.Fprintf(&b, "loaded=%d reserve=%d reload=%s\n", s.Inv.Loaded, s.Inv.Reserve, s.Reload.State())
	fmt.Fprintf(&b, "children alive=%d dead=%d police=%d\n",
		countTag(s.Children, TagChildAlive), countTag(s.Children, TagChildDead), len(s.Police))
	if s.Dialogue != nil {
		fmt.Fprintf(&b, "dialogue=%d/%d done=%v\n", s.Dialogue.Index(), s.Dialogue.Len(), s.Dialogue.Done())
	}
	b.WriteByte('\n')

	b.WriteString("== doors ==\n")
	for _, p := range s.Doors.Pairs() {
		fmt.Fprintf(&b, "  %v <-> %v\n", p[0], p[1])
	}
	for _, m := range s.DoorMarkers {
		c := s.Map.CellOf(m.Pos)
		if _, ok := s.Doors.Target(c); !ok {
			fmt.Fprintf(&b, "  UNLINKED marker %v\n", c)
		}
	}
	b.WriteByte('\n')

	b.WriteString("== map ==\n")
	b.WriteString(s.Map.String())
	b.WriteByte('\n')

	entries := s.Events.Entries()
	if len(entries) > lastEvents {
		entries = entries[len(entries)-lastEvents:]
	}
	fmt.Fprintf(&b, "== last %d events ==\n", len(entries))
	b.WriteString(formatEntries(entries))
	return b.String()
}

package game

import "fmt"

// assertf checks a logic invariant. Debug builds panic on violation; release
// builds log at error level and let the caller skip the action.
func (s *Session) assertf(ok bool, format string, args ...any) bool {
	if ok {
		return true
	}
	msg := fmt.Sprintf(format, args...)
	if debugAsserts {
		panic(msg)
	}
	s.log.Error().Str("invariant", msg).Msg("invariant violated")
	return false
}

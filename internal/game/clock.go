package game

import "time"

// Clock reports elapsed wall time since the session began.
type Clock interface {
	Now() time.Duration
}

type wallClock struct {
	start time.Time
}

func newWallClock() *wallClock {
	return &wallClock{start: time.Now()}
}

func (c *wallClock) Now() time.Duration {
	return time.Since(c.start)
}

// Package engine implements the snake simulation and rule engine: the snake
// entity, occupancy-aware food spawning, the per-mode rule state machines
// (classic, timed, challenge) and the session orchestrator that ties them
// together one tick at a time. It contains pure logic with no rendering or
// input dependencies.
package engine

import "time"

// Clock supplies the current time to the timed mode. Injecting it keeps tick
// processing deterministic and replayable in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads the real wall clock.
var SystemClock Clock = systemClock{}

// ClockFunc adapts a plain function to the Clock interface.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time { return f() }

package clock

import (
	"time"
)

// Clock is a monotonic millisecond counter that wraps at 32 bits, plus a blocking sleep.
// All timing decisions in the firmware go through it.
type Clock interface {
	// Now returns milliseconds since start. The value wraps around after ~49.7 days.
	Now() uint32
	// Sleep blocks the caller for d.
	Sleep(d time.Duration)
}

// Since returns the number of milliseconds from past to now. The subtraction is unsigned, so the result is correct
// across a single wraparound of the counter.
func Since(now, past uint32) uint32 {
	return now - past
}

// Millis converts d to a millisecond count suitable for comparing against Since.
func Millis(d time.Duration) uint32 {
	return uint32(d / time.Millisecond)
}

// Elapsed reports whether more than d has passed between past and now.
func Elapsed(now, past uint32, d time.Duration) bool {
	return Since(now, past) > Millis(d)
}

// System is the Clock backed by the runtime's monotonic time.
type System struct {
	start time.Time
}

func NewSystem() *System {
	return &System{start: time.Now()}
}

func (s *System) Now() uint32 {
	// truncation to 32 bits is the wraparound
	return uint32(time.Since(s.start).Milliseconds())
}

func (s *System) Sleep(d time.Duration) {
	time.Sleep(d)
}

package deskeyes

import (
	"time"

	"github.com/ajanata/textbuf"

	"github.com/deskeyes/deskeyes/internal/clock"
)

type Driver interface {
	// EarlyInit configures the input hardware (touch pad, noise source). The display has already been set up and
	// is showing the boot log when this is called.
	EarlyInit() error

	// LateInit performs any late initialization (e.g. connecting to wifi to set the clock). The failure of anything in
	// LateInit should not cause the failure of the entire process. Boot messages may be freely logged.
	LateInit(buffer *textbuf.Buffer)

	// Touched reports whether the touch pad is asserted right now. It is polled once per main loop iteration and
	// should not debounce; the caller does.
	Touched() bool

	// LocalTime returns the wall clock time, or false if it is not known.
	LocalTime() (time.Time, bool)

	// Price returns the formatted ticker price, or one of the ticker error strings. It may block while the price is
	// fetched.
	Price() string
}

type Blinker interface {
	Low()
	High()
}

// Mode is what the display is showing.
type Mode uint8

const (
	ModeIdle Mode = iota
	ModeClock
	ModeTicker
	ModeCredits
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeClock:
		return "clock"
	case ModeTicker:
		return "ticker"
	case ModeCredits:
		return "credits"
	default:
		return "INVALID"
	}
}

// nextInfo returns the info mode that follows m in the touch cycle.
func (m Mode) nextInfo() Mode {
	switch m {
	case ModeClock:
		return ModeTicker
	case ModeTicker:
		return ModeCredits
	default:
		return ModeClock
	}
}

// Debounce accepts a touch only if more than Interval has passed since the last accepted one.
type Debounce struct {
	LastAccepted uint32
	Interval     time.Duration
}

// Accept reports whether a touch at now is accepted, and records it if so. Rejected touches change nothing.
func (d *Debounce) Accept(now uint32) bool {
	if !clock.Elapsed(now, d.LastAccepted, d.Interval) {
		return false
	}
	d.LastAccepted = now
	return true
}

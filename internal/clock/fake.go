package clock

import (
	"time"
)

// Fake is a manually driven Clock. Sleep advances the counter instead of blocking, which makes blocking render loops
// run instantly and deterministically.
type Fake struct {
	ms     uint32
	slept  time.Duration
	sleeps int
}

func NewFake(start uint32) *Fake {
	return &Fake{ms: start}
}

func (f *Fake) Now() uint32 { return f.ms }

func (f *Fake) Sleep(d time.Duration) {
	f.ms += Millis(d)
	f.slept += d
	f.sleeps++
}

// Set moves the counter to ms.
func (f *Fake) Set(ms uint32) { f.ms = ms }

// Advance moves the counter forward by d without counting as a sleep.
func (f *Fake) Advance(d time.Duration) { f.ms += Millis(d) }

// Slept returns the total duration passed to Sleep.
func (f *Fake) Slept() time.Duration { return f.slept }

// Sleeps returns how many times Sleep was called.
func (f *Fake) Sleeps() int { return f.sleeps }

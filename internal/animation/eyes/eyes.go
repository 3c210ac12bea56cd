// Package eyes is the idle animation: a pair of block eyes that blink on a fixed cycle and glance around at random.
package eyes

import (
	"time"

	"tinygo.org/x/drivers"

	"github.com/deskeyes/deskeyes/internal/animation"
	"github.com/deskeyes/deskeyes/internal/clock"
	"github.com/deskeyes/deskeyes/internal/rng"
)

const (
	EyeY      = 18
	EyeWidth  = 25
	EyeHeight = 40
	lidHeight = 4

	// Smoothing is the fraction of the remaining distance to the target covered every frame.
	Smoothing = 0.1

	BlinkDelay    = 4000 * time.Millisecond
	BlinkDuration = 400 * time.Millisecond

	gazeMin = 2000 // ms
	gazeMax = 5000 // ms
)

type Phase uint8

const (
	PhaseOpen Phase = iota
	PhaseClosed
)

func (p Phase) String() string {
	switch p {
	case PhaseOpen:
		return "open"
	case PhaseClosed:
		return "closed"
	default:
		return "INVALID"
	}
}

// gaze is one of the discrete places the eyes look at, as left and right eye x positions.
type gaze struct {
	left, right float64
}

var gazes = [3]gaze{
	{40, 70}, // centre
	{30, 60}, // left
	{50, 80}, // right
}

// State is everything the animation remembers between frames.
type State struct {
	LeftX, RightX             float64
	TargetLeftX, TargetRightX float64
	Phase                     Phase
	LastBlink                 uint32
	LastGaze                  uint32
}

type Anim struct {
	State
	rand rng.Source
}

func New(r rng.Source) *Anim {
	return &Anim{
		State: State{
			LeftX:        40,
			RightX:       80,
			TargetLeftX:  40,
			TargetRightX: 80,
		},
		rand: r,
	}
}

// Activate leaves the eyes where they were; the idle animation resumes rather than restarts.
func (a *Anim) Activate(disp drivers.Displayer, _ uint32) {
	animation.Clear(disp)
}

// DrawFrame advances the eyes by one frame and draws them. The eyes never finish.
func (a *Anim) DrawFrame(disp drivers.Displayer, now uint32) bool {
	a.Step(now)
	a.draw(disp)
	return true
}

// Step advances blink, gaze and smoothing to now without drawing.
func (a *Anim) Step(now uint32) {
	switch a.Phase {
	case PhaseOpen:
		if clock.Elapsed(now, a.LastBlink, BlinkDelay) {
			a.Phase = PhaseClosed
			a.LastBlink = now
		}
	case PhaseClosed:
		if clock.Elapsed(now, a.LastBlink, BlinkDuration) {
			a.Phase = PhaseOpen
			a.LastBlink = now
		}
	}

	if a.Phase == PhaseOpen {
		wait := uint32(rng.Between(a.rand, gazeMin, gazeMax))
		if clock.Since(now, a.LastGaze) > wait {
			g := gazes[a.rand.Intn(len(gazes))]
			a.TargetLeftX, a.TargetRightX = g.left, g.right
			a.LastGaze = now
		}
	}

	a.LeftX += (a.TargetLeftX - a.LeftX) * Smoothing
	a.RightX += (a.TargetRightX - a.RightX) * Smoothing
}

func (a *Anim) draw(disp drivers.Displayer) {
	animation.Clear(disp)
	if a.Phase == PhaseOpen {
		animation.FillRect(disp, int16(a.LeftX), EyeY, EyeWidth, EyeHeight)
		animation.FillRect(disp, int16(a.RightX), EyeY, EyeWidth, EyeHeight)
		return
	}
	y := int16(EyeY + EyeHeight/2 - lidHeight/2)
	animation.FillRect(disp, int16(a.LeftX), y, EyeWidth, lidHeight)
	animation.FillRect(disp, int16(a.RightX), y, EyeWidth, lidHeight)
}

// Package effect interrupts the idle animation every so often with a full-screen effect.
package effect

import (
	"errors"
	"time"

	"tinygo.org/x/drivers"

	"github.com/deskeyes/deskeyes/internal/animation"
	"github.com/deskeyes/deskeyes/internal/animation/fill"
	"github.com/deskeyes/deskeyes/internal/animation/flicker"
	"github.com/deskeyes/deskeyes/internal/animation/rain"
	"github.com/deskeyes/deskeyes/internal/clock"
	"github.com/deskeyes/deskeyes/internal/rng"
)

const DefaultInterval = 120 * time.Second

// choices is the size of the draw made at every trigger. Draws past the last effect do nothing, so on average half
// of the triggers leave the idle animation alone.
const choices = 6

type Kind uint8

const (
	KindFill Kind = iota
	KindFlicker
	KindRain
	// KindNone is a trigger that chose not to run anything.
	KindNone
)

func (k Kind) String() string {
	switch k {
	case KindFill:
		return "fill"
	case KindFlicker:
		return "flicker"
	case KindRain:
		return "rain"
	case KindNone:
		return "none"
	default:
		return "INVALID"
	}
}

// Kinds lists every runnable effect.
var Kinds = [...]Kind{KindFill, KindFlicker, KindRain}

// Schedule gates triggers. At most one effect runs at a time.
type Schedule struct {
	LastTrigger uint32
	Interval    time.Duration
	Running     bool
}

// Due reports whether a trigger may fire at now.
func (s *Schedule) Due(now uint32) bool {
	return !s.Running && clock.Since(now, s.LastTrigger) >= clock.Millis(s.Interval)
}

type effect struct {
	anim animation.Animation
	// pace is the pause after every frame
	pace time.Duration
	// hold is the pause after the last frame before the screen is cleared
	hold time.Duration
}

type Engine struct {
	Schedule

	disp    drivers.Displayer
	clk     clock.Clock
	rand    rng.Source
	effects [len(Kinds)]effect
}

func New(disp drivers.Displayer, clk clock.Clock, r rng.Source, interval time.Duration) *Engine {
	return &Engine{
		Schedule: Schedule{Interval: interval},
		disp:     disp,
		clk:      clk,
		rand:     r,
		effects: [len(Kinds)]effect{
			KindFill:    {anim: fill.New(r), pace: 50 * time.Millisecond, hold: 500 * time.Millisecond},
			KindFlicker: {anim: flicker.New(r), pace: 100 * time.Millisecond},
			KindRain:    {anim: rain.New(r), pace: 80 * time.Millisecond},
		},
	}
}

// MaybeTrigger checks the schedule and, when it is due, draws which effect to run and runs it to completion before
// returning. triggered reports whether the schedule was due; kind is KindNone when the draw chose to do nothing.
func (e *Engine) MaybeTrigger(now uint32) (kind Kind, triggered bool, err error) {
	if !e.Due(now) {
		return KindNone, false, nil
	}
	e.LastTrigger = now

	choice := e.rand.Intn(choices)
	if choice >= len(Kinds) {
		return KindNone, true, nil
	}
	kind = Kinds[choice]
	return kind, true, e.Run(kind, now)
}

// Run plays one effect to completion, blocking the caller, then clears the screen. There is no way to abort it.
func (e *Engine) Run(kind Kind, now uint32) error {
	if kind >= KindNone {
		return errors.New("unknown effect " + kind.String())
	}
	if e.Running {
		return errors.New("effect already running")
	}
	e.Running = true
	defer func() { e.Running = false }()

	fx := &e.effects[kind]
	fx.anim.Activate(e.disp, now)
	for fx.anim.DrawFrame(e.disp, e.clk.Now()) {
		if err := e.disp.Display(); err != nil {
			return errors.New(kind.String() + ": " + err.Error())
		}
		e.clk.Sleep(fx.pace)
	}
	if fx.hold > 0 {
		e.clk.Sleep(fx.hold)
	}

	animation.Clear(e.disp)
	if err := e.disp.Display(); err != nil {
		return errors.New(kind.String() + ": " + err.Error())
	}
	return nil
}

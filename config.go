package deskeyes

import (
	"errors"
	"time"

	"github.com/deskeyes/deskeyes/internal/effect"
)

// Config holds every tunable of the firmware. Start from DefaultConfig.
type Config struct {
	// Logger receives boot and state change messages. Nil logs with println.
	Logger Logger
	// Debug enables debug lines on the println logger.
	Debug bool

	// Flip turns the picture upside down for panels mounted the other way round.
	Flip bool

	// Debounce is the minimum time between two accepted touches.
	Debounce time.Duration
	// TouchSettle is the pause after an accepted touch.
	TouchSettle time.Duration

	// ModeDuration is how long an info screen stays up before returning to the eyes.
	ModeDuration time.Duration

	// FramePace is the pause after every idle animation frame.
	FramePace time.Duration
	// ClockPace, TickerPace and CreditsPace are the pauses after every render of the respective info screen.
	ClockPace   time.Duration
	TickerPace  time.Duration
	CreditsPace time.Duration

	// EffectInterval is the minimum time between two effect triggers.
	EffectInterval time.Duration

	TickerLabel string
	Credits     string
}

func DefaultConfig() Config {
	return Config{
		Debounce:       400 * time.Millisecond,
		TouchSettle:    50 * time.Millisecond,
		ModeDuration:   20 * time.Second,
		FramePace:      20 * time.Millisecond,
		ClockPace:      time.Second,
		TickerPace:     5 * time.Second,
		CreditsPace:    time.Second,
		EffectInterval: effect.DefaultInterval,
		TickerLabel:    "BTC Price:",
		Credits:        "Made by LennyE",
	}
}

func (c Config) validate() error {
	switch {
	case c.Debounce <= 0:
		return errors.New("debounce must be positive")
	case c.ModeDuration <= 0:
		return errors.New("mode duration must be positive")
	case c.FramePace <= 0 || c.ClockPace <= 0 || c.TickerPace <= 0 || c.CreditsPace <= 0:
		return errors.New("frame pacing must be positive")
	case c.EffectInterval <= 0:
		return errors.New("effect interval must be positive")
	case c.TouchSettle < 0:
		return errors.New("touch settle must not be negative")
	case c.Credits == "":
		return errors.New("credits must not be empty")
	}
	return nil
}

// pace returns the pause after a frame in mode m.
func (c Config) pace(m Mode) time.Duration {
	switch m {
	case ModeClock:
		return c.ClockPace
	case ModeTicker:
		return c.TickerPace
	case ModeCredits:
		return c.CreditsPace
	default:
		return c.FramePace
	}
}

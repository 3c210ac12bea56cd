package deskeyes

import (
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().validate(); err != nil {
		t.Fatal(err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := map[string]func(*Config){
		"debounce":        func(c *Config) { c.Debounce = 0 },
		"mode duration":   func(c *Config) { c.ModeDuration = -time.Second },
		"frame pace":      func(c *Config) { c.FramePace = 0 },
		"ticker pace":     func(c *Config) { c.TickerPace = 0 },
		"effect interval": func(c *Config) { c.EffectInterval = 0 },
		"touch settle":    func(c *Config) { c.TouchSettle = -time.Millisecond },
		"credits":         func(c *Config) { c.Credits = "" },
	}
	for name, mutate := range tests {
		c := DefaultConfig()
		mutate(&c)
		if err := c.validate(); err == nil {
			t.Errorf("%s: invalid config accepted", name)
		}
	}
}

func TestConfigZeroSettleAllowed(t *testing.T) {
	c := DefaultConfig()
	c.TouchSettle = 0
	if err := c.validate(); err != nil {
		t.Errorf("zero touch settle rejected: %v", err)
	}
}

func TestNextInfo(t *testing.T) {
	m := ModeIdle.nextInfo()
	for _, want := range []Mode{ModeClock, ModeTicker, ModeCredits, ModeClock} {
		if m != want {
			t.Fatalf("got %v, want %v", m, want)
		}
		m = m.nextInfo()
	}
}

//go:build rp2040

package main

import (
	"machine"
	"strconv"
	"time"

	"github.com/ajanata/textbuf"

	"github.com/deskeyes/deskeyes/internal/clock"
	"github.com/deskeyes/deskeyes/internal/ticker"
)

// Build-time settings, e.g.
// -ldflags="-X main.clockEpoch=$(date +%s) -X main.utcOffset=3600 -X main.flip=false"
var (
	clockEpoch string
	utcOffset  string
	flip       string
)

// board is the driver for a Pico with a capacitive touch pad module on a digital pin. It has no network, so the
// wall clock is the build time plus uptime and the ticker has no price source.
type board struct {
	touch machine.Pin
	clk   clock.Clock
	epoch time.Time
	zone  *time.Location
}

func newBoard(touch machine.Pin, clk clock.Clock) *board {
	return &board{
		touch: touch,
		clk:   clk,
	}
}

func (b *board) EarlyInit() error {
	b.touch.Configure(machine.PinConfig{Mode: machine.PinInputPulldown})
	return nil
}

func (b *board) LateInit(buf *textbuf.Buffer) {
	_ = buf.Println("No network")

	sec, err := strconv.ParseInt(clockEpoch, 10, 64)
	if err != nil || sec <= 0 {
		_ = buf.Println("Time unknown")
		return
	}
	off, err := strconv.Atoi(utcOffset)
	if err != nil {
		off = 0
	}
	b.zone = time.FixedZone("local", off)
	// the epoch is stamped at build time, so count uptime from here
	b.epoch = time.Unix(sec, 0).Add(-time.Duration(b.clk.Now()) * time.Millisecond)
	_ = buf.Println("Clock from build")
}

func (b *board) Touched() bool {
	return b.touch.Get()
}

func (b *board) LocalTime() (time.Time, bool) {
	if b.epoch.IsZero() {
		return time.Time{}, false
	}
	return b.epoch.Add(time.Duration(b.clk.Now()) * time.Millisecond).In(b.zone), true
}

func (b *board) Price() string {
	return ticker.HTTPError
}

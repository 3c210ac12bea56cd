package deskeyes

import (
	"github.com/deskeyes/deskeyes/internal/animation"
	"github.com/deskeyes/deskeyes/internal/media"
	"github.com/deskeyes/deskeyes/internal/text"
)

const (
	timeFormat = "15:04:05"
	timeError  = "Time error"
)

// drawInfo draws one info screen into the display buffer.
func (g *Deskeyes) drawInfo(m Mode) {
	animation.Clear(g.display)
	switch m {
	case ModeClock:
		g.drawClock()
	case ModeTicker:
		g.drawTicker()
	case ModeCredits:
		g.drawCredits()
	}
}

func (g *Deskeyes) drawClock() {
	s := timeError
	if t, ok := g.driver.LocalTime(); ok {
		s = t.Format(timeFormat)
	}
	text.Centered(g.display, text.Large, text.Middle(g.display, text.Large), s)
}

// drawTicker shows whatever the driver returns, error strings included.
func (g *Deskeyes) drawTicker() {
	text.Draw(g.display, text.Medium, 0, 0, g.cfg.TickerLabel)
	text.Centered(g.display, text.Large, text.Middle(g.display, text.Large), g.driver.Price())
}

func (g *Deskeyes) drawCredits() {
	w, _ := g.display.Size()
	iw, _ := media.TypeIcon.Size()
	animation.DrawImage(g.display, (w-iw)/2, 4, g.icon)
	text.Centered(g.display, text.Medium, text.Middle(g.display, text.Medium), g.cfg.Credits)
}

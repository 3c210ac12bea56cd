package main

import (
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/deskeyes/deskeyes/internal/framebuf"
)

// panel shows a framebuf.Buffer in the terminal, two pixel rows per character cell.
type panel struct {
	screen tcell.Screen
	fb     *framebuf.Buffer
	on     tcell.Color
	off    tcell.Color
}

func newPanel(w, h int16) (*panel, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()

	p := &panel{
		screen: screen,
		fb:     framebuf.New(w, h),
		on:     tcell.NewRGBColor(0x80, 0xd0, 0xff),
		off:    tcell.ColorBlack,
	}
	p.fb.OnDisplay = p.show
	return p, nil
}

func (p *panel) show(fb *framebuf.Buffer) error {
	w, h := fb.Size()
	for y := int16(0); y < h; y += 2 {
		for x := int16(0); x < w; x++ {
			st := tcell.StyleDefault.Foreground(p.color(fb.Lit(x, y))).Background(p.color(fb.Lit(x, y+1)))
			p.screen.SetContent(int(x), int(y/2), '▀', nil, st)
		}
	}
	p.screen.Show()
	return nil
}

func (p *panel) color(lit bool) tcell.Color {
	if lit {
		return p.on
	}
	return p.off
}

func (p *panel) close() {
	p.screen.Fini()
}

// pollEvents turns key presses into touches until Esc, which ends the process.
func (p *panel) pollEvents(d *simDriver, c *clicker) {
	for {
		switch ev := p.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				p.close()
				os.Exit(0)
			}
			if ev.Key() == tcell.KeyRune && ev.Rune() == ' ' {
				d.touch(time.Now())
				c.click()
			}
		case *tcell.EventResize:
			p.screen.Sync()
		case nil:
			return
		}
	}
}

const sampleRate = beep.SampleRate(44100)

// clicker makes a short tone so touches can be heard as well as seen.
type clicker struct{}

func newClicker() (*clicker, error) {
	err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond))
	if err != nil {
		return nil, err
	}
	return &clicker{}, nil
}

func (c *clicker) click() {
	if c == nil {
		return
	}
	sine, err := generators.SineTone(sampleRate, 880)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(50*time.Millisecond), sine))
}

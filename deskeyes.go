package deskeyes

import (
	"errors"
	"strconv"
	"time"

	"github.com/ajanata/textbuf"
	"tinygo.org/x/drivers"

	"github.com/deskeyes/deskeyes/internal/animation/eyes"
	"github.com/deskeyes/deskeyes/internal/clock"
	"github.com/deskeyes/deskeyes/internal/effect"
	"github.com/deskeyes/deskeyes/internal/media"
	"github.com/deskeyes/deskeyes/internal/mirror"
	"github.com/deskeyes/deskeyes/internal/rng"
)

type Deskeyes struct {
	cfg     Config
	log     Logger
	display drivers.Displayer
	status  Blinker
	driver  Driver
	clock   clock.Clock
	rand    rng.Source

	console *textbuf.Buffer
	eyes    *eyes.Anim
	effects *effect.Engine
	icon    *media.Bitmap

	mode          Mode
	nextInfo      Mode
	modeEnteredAt uint32
	touch         Debounce

	init  bool
	start uint32

	// halt is called with the message of an unrecoverable error. It does not return on a board.
	halt func(msg string)
}

// New sets up the firmware around a display, a status LED (may be nil), the board driver, a clock and a random source
// already seeded from something noisy.
func New(cfg Config, display drivers.Displayer, status Blinker, driver Driver, clk clock.Clock, r rng.Source) (*Deskeyes, error) {
	if display == nil {
		return nil, errors.New("must provide display")
	}
	if driver == nil {
		return nil, errors.New("must provide driver")
	}
	if clk == nil {
		return nil, errors.New("must provide clock")
	}
	if r == nil {
		return nil, errors.New("must provide random source")
	}
	if err := cfg.validate(); err != nil {
		return nil, errors.New("config: " + err.Error())
	}

	log := cfg.Logger
	if log == nil {
		log = newPrintlnLogger(clk, cfg.Debug)
	}
	if cfg.Flip {
		display = mirror.New(display, mirror.AxisBoth)
	}

	g := &Deskeyes{
		cfg:      cfg,
		log:      log,
		display:  display,
		status:   status,
		driver:   driver,
		clock:    clk,
		rand:     r,
		eyes:     eyes.New(r),
		effects:  effect.New(display, clk, r, cfg.EffectInterval),
		mode:     ModeIdle,
		nextInfo: ModeClock,
		touch:    Debounce{Interval: cfg.Debounce},
		start:    clk.Now(),
	}
	g.halt = g.panic
	return g, nil
}

func (g *Deskeyes) Init() error {
	if g.init {
		return errors.New("already initialized")
	}
	g.log.Info("starting init")
	g.blink()

	var err error
	g.console, err = textbuf.New(g.display, textbuf.FontSize6x8)
	if err != nil {
		return errors.New("init console: " + err.Error())
	}

	w, h := g.console.Size()
	if w < 16 || h < 4 {
		return errors.New("unusably small display")
	}

	err = g.console.SetLineInverse(0, "DESKEYES BOOTING")
	if err != nil {
		return errors.New("boot msg: " + err.Error())
	}
	// we already validated it has at least 4 lines
	_ = g.console.SetY(1)
	// we already know it was possible to print text so don't bother checking every time
	_ = g.console.Print("Initialize devices")

	err = g.driver.EarlyInit()
	if err != nil {
		_ = g.console.PrintlnInverse(err.Error())
		return errors.New("early init: " + err.Error())
	}
	_ = g.console.Println(".")

	g.icon, err = media.LoadImage(media.TypeIcon, "heart")
	if err != nil {
		_ = g.console.PrintlnInverse("icon: " + err.Error())
		return errors.New("load icon: " + err.Error())
	}

	g.driver.LateInit(g.console)

	_ = g.console.Println("Ready")

	elapsed := time.Duration(clock.Since(g.clock.Now(), g.start)) * time.Millisecond
	g.eyes.Activate(g.display, g.clock.Now())
	g.blink()
	g.init = true
	g.log.Info("init complete in " + elapsed.String())
	return nil
}

// Run does not return. It runs the main loop as fast as the pacing of each mode allows.
func (g *Deskeyes) Run() {
	for {
		err := g.RunTick()
		if err != nil {
			g.halt(err.Error())
			return
		}
	}
}

// RunTick runs a single iteration of the main loop: poll the touch pad, draw one frame of the current mode, then give
// the effect engine its chance. Info screens and effects block for their whole duration.
func (g *Deskeyes) RunTick() error {
	if !g.init {
		return errors.New("not initialized")
	}

	g.statusOff()
	now := g.clock.Now()

	if g.driver.Touched() && g.touch.Accept(now) {
		g.touched(now)
	}

	err := g.dispatch(now)
	if err != nil {
		return err
	}

	kind, triggered, err := g.effects.MaybeTrigger(g.clock.Now())
	if err != nil {
		return errors.New("effect: " + err.Error())
	}
	if triggered {
		if kind == effect.KindNone {
			g.log.Debug("effect skipped")
		} else {
			g.log.Info("effect " + kind.String() + " finished")
		}
	}

	g.statusOn()
	return nil
}

// Mode returns the current display mode.
func (g *Deskeyes) Mode() Mode { return g.mode }

// touched handles an accepted touch. Only the eyes react to a touch; info screens swallow it.
func (g *Deskeyes) touched(now uint32) {
	if g.mode == ModeIdle {
		g.changeMode(g.nextInfo, now)
		g.nextInfo = g.nextInfo.nextInfo()
	}
	g.clock.Sleep(g.cfg.TouchSettle)
}

func (g *Deskeyes) dispatch(now uint32) error {
	m := g.mode
	switch m {
	case ModeIdle:
		g.eyes.DrawFrame(g.display, now)
	case ModeClock, ModeTicker, ModeCredits:
		g.drawInfo(m)
	default:
		return errors.New("invalid mode " + strconv.Itoa(int(m)))
	}

	err := g.display.Display()
	if err != nil {
		return errors.New("display " + m.String() + ": " + err.Error())
	}

	if m != ModeIdle && clock.Since(now, g.modeEnteredAt) >= clock.Millis(g.cfg.ModeDuration) {
		g.changeMode(ModeIdle, now)
	}
	g.clock.Sleep(g.cfg.pace(m))
	return nil
}

func (g *Deskeyes) changeMode(m Mode, now uint32) {
	g.log.Info("mode changed to " + m.String())
	g.mode = m
	g.modeEnteredAt = now
	if m == ModeIdle {
		g.eyes.Activate(g.display, now)
	}
}

// unfortunately you can't recover runtime panics in tinygo, so this is just going to be used for things we detect
// that are fatal. println cannot format an error, so callers pass the message.
func (g *Deskeyes) panic(msg string) {
	g.log.Info("fatal: " + msg)
	for {
		println(msg)
		g.blink()
	}
}

func (g *Deskeyes) blink() {
	g.statusOn()
	g.clock.Sleep(100 * time.Millisecond)
	g.statusOff()
	g.clock.Sleep(100 * time.Millisecond)
}

func (g *Deskeyes) statusOn() {
	if g.status != nil {
		g.status.High()
	}
}

func (g *Deskeyes) statusOff() {
	if g.status != nil {
		g.status.Low()
	}
}

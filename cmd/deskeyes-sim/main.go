// deskeyes-sim runs the firmware on the host, drawing the panel in the terminal. Space is the touch pad.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"

	"github.com/deskeyes/deskeyes"
	"github.com/deskeyes/deskeyes/internal/clock"
	"github.com/deskeyes/deskeyes/internal/ticker/httpfeed"
)

func main() {
	if err := run(); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	return buildCLI().ParseAndRun(context.Background(), os.Args[1:])
}

func buildCLI() *ffcli.Command {
	def := deskeyes.DefaultConfig()

	fs := flag.NewFlagSet("deskeyes-sim", flag.ExitOnError)
	flip := fs.Bool("flip", false, "Draw the picture upside down")
	priceURL := fs.String("price-url", httpfeed.DefaultURL, "URL of the JSON price feed")
	logFile := fs.String("log", "", "Write log messages to this file")
	debug := fs.Bool("debug", false, "Include debug messages in the log")
	quiet := fs.Bool("quiet", false, "Do not click on touch")
	effectInterval := fs.Duration("effect-interval", def.EffectInterval, "Minimum time between effects")
	modeDuration := fs.Duration("mode-duration", def.ModeDuration, "How long an info screen stays up")
	credits := fs.String("credits", def.Credits, "Text on the credits screen")

	return &ffcli.Command{
		ShortUsage: "deskeyes-sim [flags]",
		ShortHelp:  "Run the desk display in the terminal",
		LongHelp:   "Controls:\n  Space   Touch\n  Esc     Quit",
		FlagSet:    fs,
		Options:    []ff.Option{ff.WithEnvVarPrefix("DESKEYES")},
		Exec: func(_ context.Context, _ []string) error {
			log, err := newFileLogger(*logFile, *debug)
			if err != nil {
				return err
			}

			cfg := deskeyes.DefaultConfig()
			cfg.Logger = log
			cfg.Flip = *flip
			cfg.EffectInterval = *effectInterval
			cfg.ModeDuration = *modeDuration
			cfg.Credits = *credits

			return execSim(cfg, httpfeed.New(*priceURL), !*quiet)
		},
	}
}

func execSim(cfg deskeyes.Config, feed *httpfeed.Feed, sound bool) error {
	p, err := newPanel(128, 64)
	if err != nil {
		return err
	}

	var c *clicker
	if sound {
		c, err = newClicker()
		if err != nil {
			// no audio device is not worth stopping for
			cfg.Logger.Info("audio: " + err.Error())
			c = nil
		}
	}

	d := newSimDriver(feed)
	go p.pollEvents(d, c)

	g, err := deskeyes.New(cfg, p.fb, nil, d, clock.NewSystem(), rand.New(rand.NewSource(time.Now().UnixNano())))
	if err != nil {
		p.close()
		return err
	}
	err = g.Init()
	if err != nil {
		p.close()
		return err
	}

	for {
		err = g.RunTick()
		if err != nil {
			p.close()
			return err
		}
	}
}

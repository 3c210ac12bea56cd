package deskeyes

import (
	"fmt"
	"strconv"

	"github.com/deskeyes/deskeyes/internal/clock"
)

type Logger interface {
	Debug(msg string)
	Debugf(format string, v ...any)
	Info(msg string)
	Infof(format string, v ...any)
}

// printlnLogger writes to whatever println is hooked up to (the serial console on a board). Every line is stamped
// with the millisecond clock, since a board rarely knows the wall time. Debug lines are dropped unless enabled.
type printlnLogger struct {
	clk   clock.Clock
	debug bool
	out   func(string)
}

func newPrintlnLogger(clk clock.Clock, debug bool) *printlnLogger {
	return &printlnLogger{
		clk:   clk,
		debug: debug,
		out:   func(s string) { println(s) },
	}
}

func (l *printlnLogger) write(level, msg string) {
	l.out(strconv.FormatUint(uint64(l.clk.Now()), 10) + " " + level + " " + msg)
}

func (l *printlnLogger) Debug(msg string) {
	if l.debug {
		l.write("DBG", msg)
	}
}

func (l *printlnLogger) Debugf(format string, v ...any) {
	if l.debug {
		l.write("DBG", fmt.Sprintf(format, v...))
	}
}

func (l *printlnLogger) Info(msg string) {
	l.write("INF", msg)
}

func (l *printlnLogger) Infof(format string, v ...any) {
	l.write("INF", fmt.Sprintf(format, v...))
}

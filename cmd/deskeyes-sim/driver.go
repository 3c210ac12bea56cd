package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync/atomic"
	"time"

	"github.com/ajanata/textbuf"

	"github.com/deskeyes/deskeyes/internal/ticker/httpfeed"
)

// touchHold is how long a key press keeps the touch pad asserted. A capacitive pad stays high for as long as a
// finger rests on it, so a press should outlast a few loop iterations.
const touchHold = 150 * time.Millisecond

type simDriver struct {
	feed *httpfeed.Feed
	// nanoseconds since the epoch until which the pad reads as touched
	until atomic.Int64
}

func newSimDriver(feed *httpfeed.Feed) *simDriver {
	return &simDriver{feed: feed}
}

func (d *simDriver) EarlyInit() error {
	return nil
}

func (d *simDriver) LateInit(buf *textbuf.Buffer) {
	_ = buf.Println("Host clock")
	_ = buf.Println("Feed " + d.feed.URL)
	// leave the boot log up long enough to read
	time.Sleep(time.Second)
}

func (d *simDriver) touch(now time.Time) {
	d.until.Store(now.Add(touchHold).UnixNano())
}

func (d *simDriver) Touched() bool {
	return time.Now().UnixNano() < d.until.Load()
}

func (d *simDriver) LocalTime() (time.Time, bool) {
	return time.Now(), true
}

func (d *simDriver) Price() string {
	return d.feed.Price()
}

// fileLogger writes to a file since the terminal belongs to the panel.
type fileLogger struct {
	l     *log.Logger
	debug bool
}

func newFileLogger(path string, debug bool) (*fileLogger, error) {
	var w io.Writer = io.Discard
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		w = f
	}
	return &fileLogger{l: log.New(w, "deskeyes ", log.LstdFlags|log.Lmicroseconds), debug: debug}, nil
}

func (f *fileLogger) Debug(msg string) {
	if f.debug {
		f.l.Println("DEBUG " + msg)
	}
}

func (f *fileLogger) Debugf(format string, v ...any) {
	if f.debug {
		f.l.Println("DEBUG " + fmt.Sprintf(format, v...))
	}
}

func (f *fileLogger) Info(msg string) {
	f.l.Println("INFO " + msg)
}

func (f *fileLogger) Infof(format string, v ...any) {
	f.l.Println("INFO " + fmt.Sprintf(format, v...))
}

// Package httpfeed fetches the ticker price over HTTP. It needs a network stack, so only host builds use it.
package httpfeed

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/deskeyes/deskeyes/internal/ticker"
)

const (
	DefaultURL     = "https://api.coingecko.com/api/v3/simple/price?ids=bitcoin&vs_currencies=usd"
	DefaultTimeout = 4 * time.Second

	maxBody = 64 << 10
)

type Feed struct {
	URL     string
	Key     string
	Timeout time.Duration
	Client  *http.Client
}

func New(url string) *Feed {
	return &Feed{
		URL:     url,
		Key:     ticker.DefaultKey,
		Timeout: DefaultTimeout,
		Client:  http.DefaultClient,
	}
}

// Price fetches and formats the current price. Failures come back as ticker.HTTPError or ticker.ParseError; there
// are no retries.
func (f *Feed) Price() string {
	ctx, cancel := context.WithTimeout(context.Background(), f.Timeout)
	defer cancel()

	body, err := f.fetch(ctx)
	if err != nil {
		return ticker.HTTPError
	}
	return ticker.Price(body, f.Key)
}

func (f *Feed) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &statusError{code: resp.StatusCode}
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxBody))
}

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return "unexpected status " + http.StatusText(e.code)
}

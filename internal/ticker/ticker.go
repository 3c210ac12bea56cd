// Package ticker turns a price feed response into the string shown on the ticker screen. It scans for the field
// instead of decoding the whole document so it stays small enough for a microcontroller.
package ticker

import (
	"errors"
	"strconv"
)

// Strings shown in place of a price when it could not be fetched or read.
const (
	ParseError = "Parse error"
	HTTPError  = "HTTP error"
)

// DefaultKey is the field read from a CoinGecko simple price response: {"bitcoin":{"usd":67890.12}}.
const DefaultKey = "usd"

var ErrNoField = errors.New("field not found")

// Parse returns the number stored in the first "key": field of body.
func Parse(body []byte, key string) (float64, error) {
	needle := `"` + key + `"`
	i := index(body, needle)
	if i < 0 {
		return 0, ErrNoField
	}
	i += len(needle)
	i = skipSpace(body, i)
	if i >= len(body) || body[i] != ':' {
		return 0, errors.New("no value for " + key)
	}
	i = skipSpace(body, i+1)

	// some feeds quote their numbers
	quoted := i < len(body) && body[i] == '"'
	if quoted {
		i++
	}
	j := i
	for j < len(body) && isNumber(body[j]) {
		j++
	}
	if j == i {
		return 0, errors.New("value of " + key + " is not a number")
	}
	v, err := strconv.ParseFloat(string(body[i:j]), 64)
	if err != nil {
		return 0, errors.New("value of " + key + ": " + err.Error())
	}
	return v, nil
}

// Format renders a price rounded to whole units with a trailing dollar sign.
func Format(price float64) string {
	return strconv.FormatInt(int64(price+0.5), 10) + "$"
}

// Price parses body and formats the result, or returns ParseError.
func Price(body []byte, key string) string {
	v, err := Parse(body, key)
	if err != nil {
		return ParseError
	}
	return Format(v)
}

func index(b []byte, s string) int {
	for i := 0; i+len(s) <= len(b); i++ {
		if string(b[i:i+len(s)]) == s {
			return i
		}
	}
	return -1
}

func skipSpace(b []byte, i int) int {
	for i < len(b) && (b[i] == ' ' || b[i] == '\t' || b[i] == '\n' || b[i] == '\r') {
		i++
	}
	return i
}

func isNumber(c byte) bool {
	return (c >= '0' && c <= '9') || c == '.' || c == '-' || c == '+' || c == 'e' || c == 'E'
}

package ticker

import (
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		body string
		key  string
		want float64
		ok   bool
	}{
		{"coingecko", `{"bitcoin":{"usd":67890.12}}`, "usd", 67890.12, true},
		{"spaces", `{ "usd" :  111111 }`, "usd", 111111, true},
		{"quoted", `{"price":"42.5"}`, "price", 42.5, true},
		{"first match", `{"a":{"usd":1},"b":{"usd":2}}`, "usd", 1, true},
		{"missing", `{"eur":1}`, "usd", 0, false},
		{"no colon", `{"usd"}`, "usd", 0, false},
		{"not a number", `{"usd":null}`, "usd", 0, false},
		{"garbage number", `{"usd":1-2}`, "usd", 0, false},
		{"empty", ``, "usd", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.body), tt.key)
			if (err == nil) != tt.ok {
				t.Fatalf("Parse error = %v, want ok=%v", err, tt.ok)
			}
			if tt.ok && got != tt.want {
				t.Errorf("Parse = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := map[float64]string{
		111111:   "111111$",
		67890.12: "67890$",
		67890.5:  "67891$",
		0:        "0$",
	}
	for in, want := range tests {
		if got := Format(in); got != want {
			t.Errorf("Format(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestPrice(t *testing.T) {
	if got := Price([]byte(`{"bitcoin":{"usd":30000}}`), DefaultKey); got != "30000$" {
		t.Errorf("Price = %q", got)
	}
	if got := Price([]byte(`<html>rate limited</html>`), DefaultKey); got != ParseError {
		t.Errorf("Price on junk = %q, want %q", got, ParseError)
	}
}

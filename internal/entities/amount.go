package entities

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount keeps a money value exactly as the client sent it: a JSON number,
// a currency formatted string such as "रु 1,200", or anything else.
type Amount json.RawMessage

var nonNumeric = regexp.MustCompile(`[^0-9.\-]+`)

func NewAmount(v float64) Amount {
	return Amount(strconv.FormatFloat(v, 'f', -1, 64))
}

func (a Amount) MarshalJSON() ([]byte, error) {
	if len(a) == 0 {
		return []byte("null"), nil
	}
	return a, nil
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	*a = append((*a)[0:0], data...)
	return nil
}

// String returns the value without JSON quoting.
func (a Amount) String() string {
	raw := bytes.TrimSpace(a)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	return string(raw)
}

// Number reads the amount strictly: a JSON number or a string holding only
// a number. Everything else is zero.
func (a Amount) Number() decimal.Decimal {
	s := strings.TrimSpace(a.String())
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Loose drops every character that cannot be part of a number before
// parsing, so formatted prices still yield their value.
func (a Amount) Loose() decimal.Decimal {
	s := nonNumeric.ReplaceAllString(a.String(), "")
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

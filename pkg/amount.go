package pkg

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

var errInvalidAmount = errors.New("amount must be a number, a string or null")

// Amount is a value typed in by the clients (kilos, reps, body measurements):
// a JSON number, a JSON string or nothing. The JSON kind is kept, so a stored
// document is written back the way it was received.
type Amount struct {
	text   string
	number bool
}

func Number(v float64) Amount {
	return Amount{
		text:   strconv.FormatFloat(v, 'f', -1, 64),
		number: true,
	}
}

func Text(s string) Amount {
	return Amount{text: s}
}

func (a Amount) IsNumber() bool {
	return a.number
}

// String returns the literal as received.
func (a Amount) String() string {
	return a.text
}

// Float parses the leading numeric part of the value, the way the web client
// does it with parseFloat. Values without one are 0.
func (a Amount) Float() float64 {
	return parseFloatPrefix(a.text)
}

// IsBlank reports whether the value counts as empty: an empty string or the number 0.
func (a Amount) IsBlank() bool {
	if a.number {
		return a.Float() == 0
	}
	return a.text == ""
}

// OrEmpty returns an empty text amount for blank values, the value itself otherwise.
func (a Amount) OrEmpty() Amount {
	if a.IsBlank() {
		return Text("")
	}
	return a
}

// Display renders the value for tabular output: numbers in their shortest
// decimal form, texts verbatim, blank values as empty string.
func (a Amount) Display() string {
	if a.IsBlank() {
		return ""
	}
	if a.number {
		return strconv.FormatFloat(a.Float(), 'f', -1, 64)
	}
	return a.text
}

func (a Amount) MarshalJSON() ([]byte, error) {
	if a.number && a.text != "" {
		return []byte(a.text), nil
	}
	return json.Marshal(a.text)
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0:
		return errInvalidAmount
	case string(data) == "null":
		*a = Amount{}
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Text(s)
	case data[0] == '-' || (data[0] >= '0' && data[0] <= '9'):
		if _, err := strconv.ParseFloat(string(data), 64); err != nil {
			return errInvalidAmount
		}
		*a = Amount{text: string(data), number: true}
	default:
		return errInvalidAmount
	}
	return nil
}

func parseFloatPrefix(s string) float64 {
	s = strings.TrimLeft(s, " \t\n\r")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := 0
	for end < len(s) && isDigit(s[end]) {
		end++
		digits++
	}
	if end < len(s) && s[end] == '.' {
		end++
		for end < len(s) && isDigit(s[end]) {
			end++
			digits++
		}
	}
	if digits == 0 {
		return 0
	}
	if end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		exp := end + 1
		if exp < len(s) && (s[exp] == '+' || s[exp] == '-') {
			exp++
		}
		expDigits := exp
		for expDigits < len(s) && isDigit(s[expDigits]) {
			expDigits++
		}
		if expDigits > exp {
			end = expDigits
		}
	}

	v, err := strconv.ParseFloat(strings.TrimSuffix(s[:end], "."), 64)
	if err != nil {
		return 0
	}
	return v
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

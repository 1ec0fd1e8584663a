package domain

import (
	"encoding/json"
	"errors"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

// Number is a form value after numeric coercion. Coercion never fails: text
// that is not a number becomes NaN, and non-finite values are encoded as JSON
// null so the estimation service is the one that rejects them.
type Number struct {
	value float64
}

var (
	reDecimalLiteral = regexp.MustCompile(`^[+-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)
	reRadixLiteral   = regexp.MustCompile(`^0([xXoObB])([0-9a-fA-F]+)$`)
)

// NewNumber wraps an already numeric value.
func NewNumber(v float64) Number { return Number{value: v} }

// ParseNumber coerces form text the way a browser's Number() does: surrounding
// whitespace is ignored, empty text is zero, decimal, exponent, 0x/0o/0b and
// Infinity literals are accepted, and everything else is NaN.
func ParseNumber(text string) Number {
	s := strings.TrimSpace(text)
	switch s {
	case "":
		return Number{value: 0}
	case "Infinity", "+Infinity":
		return Number{value: math.Inf(1)}
	case "-Infinity":
		return Number{value: math.Inf(-1)}
	}

	if m := reRadixLiteral.FindStringSubmatch(s); m != nil {
		base := map[byte]int{'x': 16, 'o': 8, 'b': 2}[strings.ToLower(m[1])[0]]
		n, ok := new(big.Int).SetString(m[2], base)
		if !ok {
			return Number{value: math.NaN()}
		}
		f, _ := new(big.Float).SetInt(n).Float64()
		return Number{value: f}
	}

	if !reDecimalLiteral.MatchString(s) {
		return Number{value: math.NaN()}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Out of range literals still carry ±Inf or 0 from ParseFloat.
		if !errors.Is(err, strconv.ErrRange) {
			return Number{value: math.NaN()}
		}
	}
	return Number{value: f}
}

// Float64 returns the value and whether it is finite.
func (n Number) Float64() (float64, bool) {
	return n.value, !math.IsNaN(n.value) && !math.IsInf(n.value, 0)
}

func (n Number) String() string {
	switch {
	case math.IsNaN(n.value):
		return "NaN"
	case math.IsInf(n.value, 1):
		return "Infinity"
	case math.IsInf(n.value, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(n.value, 'f', -1, 64)
}

func (n Number) MarshalJSON() ([]byte, error) {
	if _, ok := n.Float64(); !ok {
		return []byte("null"), nil
	}
	return json.Marshal(n.value)
}

func (n *Number) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		n.value = math.NaN()
		return nil
	}
	return json.Unmarshal(data, &n.value)
}

package value

import (
	"math"
	"strconv"
	"strings"
)

// InputState describes what the user has typed into the price field so far.
type InputState string

const (
	InputEmpty   InputState = "empty"
	InputInvalid InputState = "invalid"
	InputReady   InputState = "ready"
)

func (s InputState) String() string {
	return string(s)
}

// ParsePrice reads a raw asking price. Only a finite number strictly above
// zero is ready; the returned price is zero in every other state.
func ParsePrice(raw string) (float64, InputState) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, InputEmpty
	}

	price, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return 0, InputInvalid
	}

	return price, InputReady
}

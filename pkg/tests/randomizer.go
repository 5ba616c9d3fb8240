package tests

import (
	"math/rand"
	"time"
)

type Randomizer struct {
	Float64 func() float64
	Bool    func() bool

	// Price returns a strictly positive amount below limit with cent precision.
	Price func(limit float64) float64
}

func NewRandomizer() Randomizer {
	random := rand.New(rand.NewSource(time.Now().Unix())) //nolint:gosec // for tests

	return Randomizer{
		Float64: random.Float64,
		Bool:    func() bool { return random.Intn(2) == 0 }, //nolint:mnd // skip
		Price: func(limit float64) float64 {
			cents := int64(limit * 100) //nolint:mnd // skip
			if cents < 2 {              //nolint:mnd // skip
				return 0.01 //nolint:mnd // skip
			}

			return float64(random.Int63n(cents-1)+1) / 100 //nolint:mnd // skip
		},
	}
}

package tests

import (
	"math/rand"
	"time"
)

// Randomizer источник случайных входных данных для свойств-тестов.
// Seed печатается в сообщениях проверок, чтобы повторить падение.
type Randomizer struct {
	Seed     int64
	Range    func(lo, hi float64) float64
	IntRange func(lo, hi int) int
}

func NewRandomizer() Randomizer {
	return NewSeededRandomizer(time.Now().UnixNano())
}

func NewSeededRandomizer(seed int64) Randomizer {
	random := rand.New(rand.NewSource(seed)) //nolint:gosec // for tests

	return Randomizer{
		Seed:    seed,
		Range: func(lo, hi float64) float64 {
			return lo + random.Float64()*(hi-lo)
		},
		// IntRange включает обе границы.
		IntRange: func(lo, hi int) int {
			return lo + random.Intn(hi-lo+1)
		},
	}
}

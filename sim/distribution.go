package sim

import (
	"math"
	"math/rand"
)

// Exponential samples an exponentially distributed value with the given mean.
// Used for inter-arrival gaps and failure/repair timers.
func Exponential(rng *rand.Rand, mean float64) float64 {
	return rng.ExpFloat64() * mean
}

// Triangular samples from a triangular distribution on [min, max] with the
// given mode, via inverse transform sampling.
func Triangular(rng *rand.Rand, min, mode, max float64) float64 {
	if max <= min {
		return min
	}
	u := rng.Float64()
	c := (mode - min) / (max - min)
	if u < c {
		return min + math.Sqrt(u*(max-min)*(mode-min))
	}
	return max - math.Sqrt((1-u)*(max-min)*(max-mode))
}

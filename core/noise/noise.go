// Package noise provides deterministic per-motor perturbation streams.
//
// Every motor owns exactly one Stream. Streams seeded with the same values
// replay the same draw sequence, which makes whole simulation runs
// reproducible from a single top-level seed.
package noise

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Stream draws uniform perturbations from a private source. It is not safe
// for concurrent use; each motor must own its stream exclusively.
type Stream struct {
	src rand.Source
}

// NewStream returns a stream seeded from the top-level seed and the motor
// index. Multiplying keeps the per-motor sources independent while staying
// fully reproducible for a fixed base seed.
func NewStream(baseSeed, motorIndex uint64) *Stream {
	return &Stream{src: rand.NewSource(baseSeed * motorIndex)}
}

// Vary returns value offset by a uniform draw in [-value*pct/100, +value*pct/100].
// The stream always advances by one draw, even when the spread is zero.
func (s *Stream) Vary(value, pct float64) float64 {
	spread := math.Abs(value) * pct / 100
	u := distuv.Uniform{Min: value - spread, Max: value + spread, Src: s.src}
	return u.Rand()
}

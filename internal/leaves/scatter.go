package leaves

import (
	"math/rand/v2"
	"time"
)

// Decoration is a statically placed leaf animated purely by CSS. The
// standalone login and signup screens use these instead of a ticking Field.
type Decoration struct {
	Top      float64
	Left     float64
	Rotation float64
	Size     float64
	Opacity  float64
	Duration time.Duration
}

const (
	decorationOpacity     = 0.4
	decorationMinSize     = 20.0
	decorationSizeRange   = 30.0
	decorationMinDuration = 5 * time.Second
	decorationDurRange    = 10 * time.Second
)

// Scatter places n decorations at random positions.
func Scatter(n int, rng *rand.Rand) []Decoration {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if n < 0 {
		n = 0
	}
	out := make([]Decoration, n)
	for i := range out {
		out[i] = Decoration{
			Top:      rng.Float64() * 100,
			Left:     rng.Float64() * 100,
			Rotation: rng.Float64() * fullTurnDegrees,
			Size:     decorationMinSize + rng.Float64()*decorationSizeRange,
			Opacity:  decorationOpacity,
			Duration: decorationMinDuration + time.Duration(rng.Float64()*float64(decorationDurRange)),
		}
	}
	return out
}

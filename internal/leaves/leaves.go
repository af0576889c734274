// Package leaves implements the decorative falling-leaf particle field.
//
// A Field holds a fixed batch of leaves that is created once and advanced on
// every tick. Leaves are never destroyed; a leaf that falls past the bottom
// edge is recycled in place with a fresh position above the top edge.
// Coordinates are percentages of the viewport.
package leaves

import (
	"math"
	"math/rand/v2"
)

// Tuning for the falling motion.
const (
	// FallStep is how far a leaf drops per tick (viewport %).
	FallStep = 0.5
	// SpinStep is how far a leaf rotates per tick (degrees).
	SpinStep = 0.5
	// SwayAmplitude scales the sinusoidal horizontal drift per tick.
	SwayAmplitude = 0.5
	// SwayPeriod divides the vertical position before taking the sine.
	SwayPeriod = 20.0
	// RecycleThreshold is the vertical position past which a leaf is recycled.
	RecycleThreshold = 100.0

	// Spawn ranges for a fresh field.
	spawnMinY       = -100.0
	recycleMinY     = -50.0
	minSize         = 10.0
	sizeRange       = 15.0
	minOpacity      = 0.2
	opacityRange    = 0.5
	fullTurnDegrees = 360.0
)

// Leaf is one decorative particle.
type Leaf struct {
	ID       int     `json:"id"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Size     float64 `json:"size"`
	Opacity  float64 `json:"opacity"`
	Rotation float64 `json:"rotation"`
}

// Field is a fixed-size set of leaves. It is not safe for concurrent use;
// callers serialize access (the owning view holds a lock around Tick and
// Snapshot).
type Field struct {
	leaves []Leaf
	rng    *rand.Rand
	ticks  uint64
}

// NewField creates n leaves scattered across and above the viewport.
// A nil rng gets a randomly seeded source.
func NewField(n int, rng *rand.Rand) *Field {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if n < 0 {
		n = 0
	}

	f := &Field{leaves: make([]Leaf, n), rng: rng}
	for i := range f.leaves {
		f.leaves[i] = Leaf{
			ID:       i,
			X:        rng.Float64() * 100,
			Y:        rng.Float64() * spawnMinY,
			Size:     rng.Float64()*sizeRange + minSize,
			Opacity:  rng.Float64()*opacityRange + minOpacity,
			Rotation: rng.Float64() * fullTurnDegrees,
		}
	}
	return f
}

// Len returns the number of leaves.
func (f *Field) Len() int { return len(f.leaves) }

// Ticks returns how many times the field has been advanced.
func (f *Field) Ticks() uint64 { return f.ticks }

// Tick advances every leaf by one step, recycling those past the threshold.
func (f *Field) Tick() {
	for i := range f.leaves {
		l := &f.leaves[i]
		if l.Y > RecycleThreshold {
			l.Y = f.rng.Float64() * recycleMinY
			l.X = f.rng.Float64() * 100
			l.Rotation = f.rng.Float64() * fullTurnDegrees
			continue
		}
		// Sway uses the position before this tick's fall.
		l.X += math.Sin(l.Y/SwayPeriod) * SwayAmplitude
		l.Y += FallStep
		l.Rotation += SpinStep
	}
	f.ticks++
}

// Snapshot returns a copy of the leaves for rendering.
func (f *Field) Snapshot() []Leaf {
	out := make([]Leaf, len(f.leaves))
	copy(out, f.leaves)
	return out
}

package leaves

import (
	"context"
	"math/rand/v2"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded() *rand.Rand { return rand.New(rand.NewPCG(1, 2)) }

func TestNewField_SpawnRanges(t *testing.T) {
	f := NewField(10, seeded())
	require.Equal(t, 10, f.Len())

	for i, l := range f.Snapshot() {
		assert.Equal(t, i, l.ID)
		assert.GreaterOrEqual(t, l.X, 0.0)
		assert.Less(t, l.X, 100.0)
		assert.LessOrEqual(t, l.Y, 0.0)
		assert.Greater(t, l.Y, -100.0)
		assert.GreaterOrEqual(t, l.Size, 10.0)
		assert.Less(t, l.Size, 25.0)
		assert.GreaterOrEqual(t, l.Opacity, 0.2)
		assert.Less(t, l.Opacity, 0.7)
		assert.GreaterOrEqual(t, l.Rotation, 0.0)
		assert.Less(t, l.Rotation, 360.0)
	}
}

func TestNewField_NegativeCount(t *testing.T) {
	assert.Equal(t, 0, NewField(-3, seeded()).Len())
}

func TestTick_AdvancesOneStep(t *testing.T) {
	f := NewField(1, seeded())
	before := f.Snapshot()[0]

	f.Tick()
	after := f.Snapshot()[0]

	assert.InDelta(t, before.Y+FallStep, after.Y, 1e-9)
	assert.InDelta(t, before.Rotation+SpinStep, after.Rotation, 1e-9)
	assert.Equal(t, before.Size, after.Size)
	assert.Equal(t, before.Opacity, after.Opacity)
	assert.Equal(t, uint64(1), f.Ticks())
}

func TestTick_YNonDecreasingBetweenRecycles(t *testing.T) {
	f := NewField(10, seeded())
	prev := f.Snapshot()
	recycled := 0

	// Enough ticks for every leaf to cross the viewport at least once.
	for range 600 {
		f.Tick()
		cur := f.Snapshot()
		for i := range cur {
			if prev[i].Y > RecycleThreshold {
				recycled++
				assert.Less(t, cur[i].Y, RecycleThreshold, "recycled leaf must restart below the threshold")
				assert.LessOrEqual(t, cur[i].Y, 0.0)
				assert.Greater(t, cur[i].Y, -50.0)
				assert.Equal(t, prev[i].Size, cur[i].Size, "recycling keeps size")
				continue
			}
			assert.GreaterOrEqual(t, cur[i].Y, prev[i].Y, "leaf %d moved up without recycling", i)
		}
		prev = cur
	}
	assert.Positive(t, recycled)
}

func TestSnapshot_IsACopy(t *testing.T) {
	f := NewField(2, seeded())
	snap := f.Snapshot()
	snap[0].Y = 999

	assert.NotEqual(t, 999.0, f.Snapshot()[0].Y)
}

func TestScatter(t *testing.T) {
	decos := Scatter(10, seeded())
	require.Len(t, decos, 10)
	for _, d := range decos {
		assert.Equal(t, 0.4, d.Opacity)
		assert.GreaterOrEqual(t, d.Size, 20.0)
		assert.Less(t, d.Size, 50.0)
		assert.GreaterOrEqual(t, d.Duration, 5*time.Second)
		assert.Less(t, d.Duration, 15*time.Second)
	}
}

func TestAnimator_TicksUntilStopped(t *testing.T) {
	f := NewField(3, seeded())
	var frames atomic.Int32

	a := NewAnimator(time.Millisecond, func() []Leaf {
		f.Tick()
		return f.Snapshot()
	}, func(frame []Leaf) {
		assert.Len(t, frame, 3)
		frames.Add(1)
	})

	a.Start(context.Background())
	a.Start(context.Background()) // second start is ignored
	require.True(t, a.Running())

	require.Eventually(t, func() bool { return frames.Load() >= 5 }, time.Second, time.Millisecond)

	a.Stop()
	assert.False(t, a.Running())
	stopped := frames.Load()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, stopped, frames.Load(), "no frames after Stop")
}

func TestAnimator_StopsOnContextCancel(t *testing.T) {
	var frames atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	a := NewAnimator(time.Millisecond, func() []Leaf { return nil }, func([]Leaf) { frames.Add(1) })

	a.Start(ctx)
	require.Eventually(t, func() bool { return frames.Load() > 0 }, time.Second, time.Millisecond)
	cancel()
	a.Stop() // must not hang after the context already ended

	n := frames.Load()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, n, frames.Load())
}

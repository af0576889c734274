// Command leafpreview opens a desktop window showing the falling-leaf field
// at the same tick rate the login screens use.
package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/agrogen/agrogen/internal/config"
	"github.com/agrogen/agrogen/internal/leaves"
	"github.com/agrogen/agrogen/internal/logging"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/spf13/cobra"
)

var (
	background = color.NRGBA{R: 0xf0, G: 0xfd, B: 0xf4, A: 0xff} // green-50
	leafColor  = color.NRGBA{R: 0x16, G: 0xa3, B: 0x4a, A: 0xff} // green-600
)

type game struct {
	field  *leaves.Field
	width  int
	height int
	paused bool

	spaceDown bool
}

func (g *game) Update() error {
	down := ebiten.IsKeyPressed(ebiten.KeySpace)
	if down && !g.spaceDown {
		g.paused = !g.paused
	}
	g.spaceDown = down
	if !g.paused {
		g.field.Tick()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	w, h := float32(g.width), float32(g.height)
	for _, l := range g.field.Snapshot() {
		c := leafColor
		c.A = uint8(l.Opacity * 0xff)
		cx := float32(l.X) / 100 * w
		cy := float32(l.Y) / 100 * h
		vector.DrawFilledCircle(screen, cx, cy, float32(l.Size)/2, c, true)
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("leaves: %d  tick: %d  (space pauses)", g.field.Len(), g.field.Ticks()))
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func main() {
	cfg := config.New()
	logging.New()

	var (
		count int
		seed  uint64
		tick  time.Duration
	)
	cmd := &cobra.Command{
		Use:   "leafpreview",
		Short: "Preview the falling-leaf field in a desktop window",
		RunE: func(cmd *cobra.Command, args []string) error {
			if tick <= 0 {
				return fmt.Errorf("--tick must be positive")
			}
			var rng *rand.Rand
			if seed != 0 {
				rng = rand.New(rand.NewPCG(seed, seed))
			}
			g := &game{field: leaves.NewField(count, rng), width: 960, height: 640}

			ebiten.SetWindowSize(g.width, g.height)
			ebiten.SetWindowTitle("AgroGen leaves")
			ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
			ebiten.SetTPS(max(1, int(time.Second/tick)))

			slog.Info("Opening leaf preview", "leaves", count, "tick", tick)
			return ebiten.RunGame(g)
		},
	}
	cmd.Flags().IntVar(&count, "count", cfg.GetLeafCount(), "Number of leaves")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed (0 picks one)")
	cmd.Flags().DurationVar(&tick, "tick", cfg.GetLeafTick(), "Interval between ticks")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

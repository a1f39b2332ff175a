package ember

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// StatsOverlay is a small debug HUD showing per-pool utilization and the
// live emitter count. Draw it after the effects render so it sits on top.
// The text refreshes every ~0.5 seconds to stay readable.
type StatsOverlay struct {
	img         *ebiten.Image
	sinceRedraw float64
	buf         strings.Builder
}

// NewStatsOverlay creates an overlay sized for the standard four-pool
// readout.
func NewStatsOverlay() *StatsOverlay {
	return &StatsOverlay{
		img:         ebiten.NewImage(190, 88),
		sinceRedraw: 1, // force a redraw on first update
	}
}

// Update refreshes the overlay text from a stats snapshot.
func (o *StatsOverlay) Update(st Stats, dt float64) {
	o.sinceRedraw += dt
	if o.sinceRedraw < 0.5 {
		return
	}
	o.sinceRedraw = 0

	o.buf.Reset()
	fmt.Fprintf(&o.buf, "emitters: %d  util: %3.0f%%\n", st.Emitters, st.Utilization*100)
	for _, ps := range st.Pools {
		fmt.Fprintf(&o.buf, "%-6s %3d/%3d (free %d)\n", ps.Kind, ps.Active, ps.Cap, ps.Available)
	}

	o.img.Clear()
	// Semi-transparent background for readability.
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, o.buf.String())
}

// Draw blits the overlay at the top-left corner of screen.
func (o *StatsOverlay) Draw(screen *ebiten.Image) {
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(4, 4)
	screen.DrawImage(o.img, &op)
}

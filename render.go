package ember

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ImageSurface adapts an ebiten image to the Surface interface using the
// vector package's primitives. Blur is approximated by layering translucent
// fills of growing radius; real gaussian blur is not worth a shader for
// particle-scale glows.
type ImageSurface struct {
	Dst       *ebiten.Image
	Antialias bool
}

// NewImageSurface wraps dst with antialiasing enabled.
func NewImageSurface(dst *ebiten.Image) *ImageSurface {
	return &ImageSurface{Dst: dst, Antialias: true}
}

// FillCircle draws a filled circle, layering translucent fills when the
// paint requests blur.
func (s *ImageSurface) FillCircle(center Vec2, radius float64, p Paint) {
	if radius <= 0 || p.Color.A <= 0 {
		return
	}
	cx, cy := float32(center.X), float32(center.Y)
	if p.Blur <= 0 {
		vector.DrawFilledCircle(s.Dst, cx, cy, float32(radius), toNRGBA(p.Color), s.Antialias)
		return
	}
	// Soft edge: three fills at stepped radii, splitting the alpha.
	soft := p.Color.Scaled(1.0 / 3)
	clr := toNRGBA(soft)
	vector.DrawFilledCircle(s.Dst, cx, cy, float32(radius+p.Blur), clr, s.Antialias)
	vector.DrawFilledCircle(s.Dst, cx, cy, float32(radius+p.Blur*0.5), clr, s.Antialias)
	vector.DrawFilledCircle(s.Dst, cx, cy, float32(radius), clr, s.Antialias)
}

// StrokeCircle draws a circle outline.
func (s *ImageSurface) StrokeCircle(center Vec2, radius float64, p Paint) {
	if radius <= 0 || p.Color.A <= 0 {
		return
	}
	w := float32(clampMin(p.StrokeWidth, 1))
	vector.StrokeCircle(s.Dst, float32(center.X), float32(center.Y), float32(radius), w, toNRGBA(p.Color), s.Antialias)
}

// Polyline strokes the line strip segment by segment.
func (s *ImageSurface) Polyline(points []Vec2, p Paint) {
	if len(points) < 2 || p.Color.A <= 0 {
		return
	}
	w := float32(clampMin(p.StrokeWidth, 1))
	clr := toNRGBA(p.Color)
	for i := 1; i < len(points); i++ {
		vector.StrokeLine(s.Dst,
			float32(points[i-1].X), float32(points[i-1].Y),
			float32(points[i].X), float32(points[i].Y),
			w, clr, s.Antialias)
	}
}

// toNRGBA converts a [0, 1] Color to non-premultiplied 8-bit RGBA.
func toNRGBA(c Color) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

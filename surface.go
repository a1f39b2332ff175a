package ember

// Paint describes how a primitive is drawn: tint, stroke width for outlined
// primitives, and a blur radius for soft/glowing fills. The engine performs
// no compositing itself; it only hands paints to the surface.
type Paint struct {
	Color Color
	// StrokeWidth is the line width for stroked primitives, in pixels.
	// Ignored by filled primitives.
	StrokeWidth float64
	// Blur softens the edge of filled circles. Zero draws a hard edge.
	// Surfaces without real blur approximate it with layered translucent
	// fills.
	Blur float64
}

// Surface is the drawing sink the engine renders into. Implementations own
// all windowing, batching, and compositing concerns; the engine only issues
// primitive calls in back-to-front order, once per frame.
//
// ImageSurface adapts an ebiten image to this interface. Tests use a
// recording implementation.
type Surface interface {
	// FillCircle draws a filled circle. Blur > 0 requests a soft edge.
	FillCircle(center Vec2, radius float64, p Paint)
	// StrokeCircle draws a circle outline.
	StrokeCircle(center Vec2, radius float64, p Paint)
	// Polyline draws an open line strip through points. Fewer than two
	// points is a no-op.
	Polyline(points []Vec2, p Paint)
}

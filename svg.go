package occlusion

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
)

// Diagnostic SVG export. Opaque items are drawn in blue-ish colors and
// alpha items in red-ish translucent colors, with the hue seeded from the
// item key so fragments of the same input rectangle share a color. Purely
// illustrative; the export never mutates builder state.

// WriteSVG writes the accumulated items as an SVG document for visual
// debugging. It returns the first error reported by w, if any.
func (b *FrontToBackBuilder) WriteSVG(w io.Writer) error {
	return writeSVG(w, b.opaque, b.alpha)
}

// WriteSVG writes the items computed by the most recent Build as an SVG
// document for visual debugging. It returns the first error reported by w,
// if any.
func (b *BackToFrontBuilder) WriteSVG(w io.Writer) error {
	return writeSVG(w, b.inner.opaque, b.inner.alpha)
}

// keyHue derives a deterministic color seed in [0, 100) from an item key.
func keyHue(key uint64) int {
	return int(key * 37 % 100)
}

func writeSVG(w io.Writer, opaque, alpha []Item) error {
	ew := &errWriter{w: w}
	width, height := sceneExtent(opaque, alpha)

	canvas := svg.New(ew)
	canvas.Start(width, height)
	for _, item := range opaque {
		i := keyHue(item.Key)
		style := fmt.Sprintf("fill:rgb(0,%d,%d);stroke:black;stroke-width:1", i, 150+i)
		svgRect(canvas, item.Rect, style)
	}
	for _, item := range alpha {
		i := keyHue(item.Key)
		style := fmt.Sprintf("fill:rgb(%d,%d,0);fill-opacity:0.6;stroke:black;stroke-width:1", 150+i, i)
		svgRect(canvas, item.Rect, style)
	}
	canvas.End()

	return ew.err
}

// svgRect rounds the edges, not the size, so the emitted edges match the
// pixel edges of the raster export.
func svgRect(canvas *svg.SVG, r Rect, style string) {
	x0 := int(math.Round(r.Min.X))
	y0 := int(math.Round(r.Min.Y))
	x1 := int(math.Round(r.Max.X))
	y1 := int(math.Round(r.Max.Y))
	canvas.Rect(x0, y0, x1-x0, y1-y0, style)
}

// sceneExtent returns the canvas size enclosing every item, assuming the
// scene origin is at (0, 0).
func sceneExtent(opaque, alpha []Item) (width, height int) {
	var w, h float64
	for _, item := range opaque {
		w = math.Max(w, item.Rect.Max.X)
		h = math.Max(h, item.Rect.Max.Y)
	}
	for _, item := range alpha {
		w = math.Max(w, item.Rect.Max.X)
		h = math.Max(h, item.Rect.Max.Y)
	}
	return int(math.Ceil(w)), int(math.Ceil(h))
}

// errWriter forwards writes to w and remembers the first error, so SVG
// emission can run unconditionally and report the error once at the end.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}

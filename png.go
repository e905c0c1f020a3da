package occlusion

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Diagnostic raster export, the PNG sibling of WriteSVG. Uses the same
// key-seeded palette; each fragment is labeled with its key.

// RenderImage rasterizes the accumulated items into an image for visual
// debugging. The builder state is not modified.
func (b *FrontToBackBuilder) RenderImage() *image.RGBA {
	return renderImage(b.opaque, b.alpha)
}

// WritePNG writes the accumulated items as a PNG image for visual
// debugging.
func (b *FrontToBackBuilder) WritePNG(w io.Writer) error {
	return png.Encode(w, b.RenderImage())
}

// RenderImage rasterizes the items computed by the most recent Build into
// an image for visual debugging. The builder state is not modified.
func (b *BackToFrontBuilder) RenderImage() *image.RGBA {
	return renderImage(b.inner.opaque, b.inner.alpha)
}

// WritePNG writes the items computed by the most recent Build as a PNG
// image for visual debugging.
func (b *BackToFrontBuilder) WritePNG(w io.Writer) error {
	return png.Encode(w, b.RenderImage())
}

func renderImage(opaque, alpha []Item) *image.RGBA {
	width, height := sceneExtent(opaque, alpha)
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	for _, item := range opaque {
		i := uint8(keyHue(item.Key))
		fill := color.NRGBA{R: 0, G: i, B: 150 + i, A: 255}
		draw.Draw(img, pixelRect(item.Rect), image.NewUniform(fill), image.Point{}, draw.Src)
	}
	for _, item := range alpha {
		i := uint8(keyHue(item.Key))
		fill := color.NRGBA{R: 150 + i, G: i, B: 0, A: 153}
		draw.Draw(img, pixelRect(item.Rect), image.NewUniform(fill), image.Point{}, draw.Over)
	}

	for _, item := range opaque {
		labelKey(img, item, color.White)
	}
	for _, item := range alpha {
		labelKey(img, item, color.Black)
	}

	return img
}

// labelKey draws the item key near the fragment's top-left corner.
func labelKey(img *image.RGBA, item Item, c color.Color) {
	face := basicfont.Face7x13
	if item.Rect.Width() < float64(face.Advance*2) || item.Rect.Height() < float64(face.Height) {
		return
	}
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot: fixed.P(
			int(math.Round(item.Rect.Min.X))+2,
			int(math.Round(item.Rect.Min.Y))+face.Ascent+1,
		),
	}
	d.DrawString(strconv.FormatUint(item.Key, 10))
}

func pixelRect(r Rect) image.Rectangle {
	return image.Rect(
		int(math.Round(r.Min.X)),
		int(math.Round(r.Min.Y)),
		int(math.Round(r.Max.X)),
		int(math.Round(r.Max.Y)),
	)
}

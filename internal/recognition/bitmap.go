package recognition

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/runegrid/runegrid/internal/errors"
)

// BitmapSize is the square edge length, in pixels, of every payload sent
// to the recognition service. The service contract fixes the size; both
// the glyph rasterizer and the draw-mode canvas produce it.
const BitmapSize = 64

// RasterizeGlyph renders r centered on a white square and returns the PNG
// payload. The bitmap does not need typographic fidelity; the service
// matches shapes, and the fixed-size black-on-white contract is what
// matters.
func RasterizeGlyph(r rune) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, BitmapSize, BitmapSize))
	fill(img, color.White)

	face := basicfont.Face7x13
	glyph := string(r)
	width := font.MeasureString(face, glyph).Ceil()

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: face,
		Dot: fixed.P(
			(BitmapSize-width)/2,
			(BitmapSize+face.Metrics().Ascent.Ceil())/2,
		),
	}
	d.DrawString(glyph)

	return encodePNG(img)
}

// RasterizeCanvas converts the draw-mode cell grid into the service's
// bitmap format. Cells are scaled to fill the square; a set cell paints
// black, the rest stays white.
func RasterizeCanvas(cells [][]bool) ([]byte, error) {
	rows := len(cells)
	if rows == 0 {
		return nil, errors.NewValidationError("empty canvas")
	}
	cols := len(cells[0])
	if cols == 0 {
		return nil, errors.NewValidationError("empty canvas")
	}

	img := image.NewRGBA(image.Rect(0, 0, BitmapSize, BitmapSize))
	fill(img, color.White)

	for y := 0; y < BitmapSize; y++ {
		for x := 0; x < BitmapSize; x++ {
			cy := y * rows / BitmapSize
			cx := x * cols / BitmapSize
			if cells[cy][cx] {
				img.Set(x, y, color.Black)
			}
		}
	}

	return encodePNG(img)
}

func fill(img *image.RGBA, c color.Color) {
	for y := img.Rect.Min.Y; y < img.Rect.Max.Y; y++ {
		for x := img.Rect.Min.X; x < img.Rect.Max.X; x++ {
			img.Set(x, y, c)
		}
	}
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(err, "encoding bitmap")
	}
	return buf.Bytes(), nil
}

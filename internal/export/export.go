// Package export writes single-glyph image files: vector SVG and raster
// PNG. Filenames are deterministic from the code point's hex value, with
// a slugified font name appended when the output is font-specific.
//
// Bulk export operates over the selection manager's ordered records and
// skips individual failures rather than aborting the batch.
package export

import (
	"bytes"
	"fmt"
	"html"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/runegrid/runegrid/internal/codepoint"
	"github.com/runegrid/runegrid/internal/errors"
	"github.com/runegrid/runegrid/internal/logging"
)

// ImageSize is the square edge length of exported images, in pixels for
// PNG and user units for the SVG viewBox.
const ImageSize = 128

var svgTemplate = template.Must(template.New("glyph").Parse(
	`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 {{.Size}} {{.Size}}">
  <rect width="{{.Size}}" height="{{.Size}}" fill="white"/>
  <text x="50%" y="50%" dominant-baseline="central" text-anchor="middle" font-size="{{.FontSize}}"{{if .Font}} font-family="{{.Font}}"{{end}}>{{.Glyph}}</text>
</svg>
`))

// Exporter writes glyph images into a directory.
type Exporter struct {
	dir  string
	font string
	log  *logging.Logger
}

// New creates an Exporter targeting dir. font names the typeface recorded
// in outputs; empty means the renderer's default, and PNG filenames then
// omit the font slug.
func New(dir, font string, log *logging.Logger) *Exporter {
	if log == nil {
		log = logging.NopLogger()
	}
	return &Exporter{dir: dir, font: font, log: log.WithComponent("export")}
}

// SVG writes the vector image for rec and returns the written path.
func (e *Exporter) SVG(rec codepoint.Record) (string, error) {
	var buf bytes.Buffer
	err := svgTemplate.Execute(&buf, struct {
		Size     int
		FontSize int
		Font     string
		Glyph    string
	}{
		Size:     ImageSize,
		FontSize: ImageSize * 3 / 4,
		Font:     e.font,
		Glyph:    html.EscapeString(rec.Glyph),
	})
	if err != nil {
		return "", errors.NewExportError("rendering svg", err)
	}

	path := filepath.Join(e.dir, FileName(rec, "svg", ""))
	if err := e.write(path, buf.Bytes()); err != nil {
		return "", err
	}
	return path, nil
}

// PNG writes the raster image for rec and returns the written path. The
// filename carries the font slug because raster output is font-specific.
func (e *Exporter) PNG(rec codepoint.Record) (string, error) {
	img := image.NewRGBA(image.Rect(0, 0, ImageSize, ImageSize))
	for y := 0; y < ImageSize; y++ {
		for x := 0; x < ImageSize; x++ {
			img.Set(x, y, color.White)
		}
	}

	face := basicfont.Face7x13
	width := font.MeasureString(face, rec.Glyph).Ceil()
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: face,
		Dot: fixed.P(
			(ImageSize-width)/2,
			(ImageSize+face.Metrics().Ascent.Ceil())/2,
		),
	}
	d.DrawString(rec.Glyph)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", errors.NewExportError("encoding png", err)
	}

	path := filepath.Join(e.dir, FileName(rec, "png", e.font))
	if err := e.write(path, buf.Bytes()); err != nil {
		return "", err
	}
	return path, nil
}

// Bulk writes both formats for every record, skipping individual
// failures, and returns the paths actually written. An empty selection is
// an error; a partially failed batch is not.
func (e *Exporter) Bulk(records []codepoint.Record) ([]string, error) {
	if len(records) == 0 {
		return nil, errors.ErrNothingSelected
	}

	var written []string
	for _, rec := range records {
		if path, err := e.SVG(rec); err != nil {
			e.log.Warn("svg export failed", "code_point", rec.Hex, "error", err)
		} else {
			written = append(written, path)
		}
		if path, err := e.PNG(rec); err != nil {
			e.log.Warn("png export failed", "code_point", rec.Hex, "error", err)
		} else {
			written = append(written, path)
		}
	}
	return written, nil
}

func (e *Exporter) write(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewExportError("creating directory", err).WithPath(path)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.NewExportError("writing file", err).WithPath(path)
	}
	e.log.Debug("wrote glyph image", "path", path)
	return nil
}

// FileName builds the deterministic output name for a record: the hex
// value in lowercase, prefixed with "u", plus the slugified font name for
// font-specific outputs.
func FileName(rec codepoint.Record, ext, fontName string) string {
	hex := strings.ToLower(strings.TrimPrefix(rec.Hex, "U+"))
	if slug := Slugify(fontName); slug != "" {
		return fmt.Sprintf("u%s-%s.%s", hex, slug, ext)
	}
	return fmt.Sprintf("u%s.%s", hex, ext)
}

// Slugify lowercases a font name and collapses runs of non-alphanumerics
// to single hyphens: "Noto Sans Mono" -> "noto-sans-mono".
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastHyphen = false
		} else if !lastHyphen {
			b.WriteRune('-')
			lastHyphen = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

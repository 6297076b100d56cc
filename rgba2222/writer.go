package rgba2222

import (
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/ericpauley/go-quantize/quantize"
)

type encoder struct {
	w io.Writer
}

func (e *encoder) encode(m *image.Paletted) error {
	b := m.Bounds()

	// Pre-pack the palette so each pixel is a table lookup.
	packed := make([]byte, len(m.Palette))
	for i, c := range m.Palette {
		packed[i] = pack(c)
	}

	row := make([]byte, b.Dx())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			row[x-b.Min.X] = packed[m.ColorIndexAt(x, y)]
		}
		if _, err := e.w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

// Encode writes the Image m to w as a raw RGBA2222 pixel stream. Images
// with more colours than the format can represent are reduced to a
// 64 colour palette first; each palette entry then snaps to the nearest
// point on the 2-bit-per-channel lattice.
func Encode(w io.Writer, m image.Image) error {
	b := m.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return errBadSize
	}

	pm, _ := m.(*image.Paletted)
	if pm == nil {
		if cp, ok := m.ColorModel().(color.Palette); ok && len(cp) <= maxColors {
			pm = image.NewPaletted(b, cp)
			for y := b.Min.Y; y < b.Max.Y; y++ {
				for x := b.Min.X; x < b.Max.X; x++ {
					pm.Set(x, y, cp.Convert(m.At(x, y)))
				}
			}
		}
	}
	if pm == nil || len(pm.Palette) > maxColors {
		q := quantize.MedianCutQuantizer{}
		pm = image.NewPaletted(b, q.Quantize(make(color.Palette, 0, maxColors), m))
		draw.Draw(pm, b, m, b.Min, draw.Src)
	}

	e := encoder{w: w}

	return e.encode(pm)
}

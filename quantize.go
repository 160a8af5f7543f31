package iconrez

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/bodgit/iconrez/clut"
)

// A pixel with 16-bit alpha below this is transparent.
const alphaThreshold = 0x8000

// Options control how sources are quantized. The zero value is the
// fixed historical behavior.
type Options struct {
	// Distance overrides the color metric used for nearest-color
	// matching. nil means clut.SquaredRGB.
	Distance clut.Distance

	// Dither diffuses quantization error with Floyd-Steinberg instead
	// of straight nearest-color matching. Still deterministic for
	// identical input.
	Dither bool
}

// QuantizedIcon is a role-tagged grid of palette indices plus the
// transparency mask derived from the source alpha channel. Mono roles
// hold 0 or 1 per pixel where 1 is a set (black) bit.
type QuantizedIcon struct {
	Role    Role
	Bounds  image.Point
	Indices []uint8 // row-major, one palette index per pixel
	Mask    []bool  // row-major, true = opaque
}

func quantize(src *SourceImage, opts Options) (*QuantizedIcon, error) {
	if !hasAlpha(src.Image) {
		return nil, &UnsupportedPixelFormatError{Path: src.Path, Role: src.Role}
	}

	b := src.Image.Bounds()
	q := &QuantizedIcon{
		Role:    src.Role,
		Bounds:  b.Size(),
		Indices: make([]uint8, b.Dx()*b.Dy()),
		Mask:    make([]bool, b.Dx()*b.Dy()),
	}

	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			_, _, _, a := src.Image.At(b.Min.X+x, b.Min.Y+y).RGBA()
			q.Mask[y*b.Dx()+x] = a >= alphaThreshold
		}
	}

	switch src.Role.Depth() {
	case 1:
		// A set bit is an opaque pixel darker than 50% gray
		for y := 0; y < b.Dy(); y++ {
			for x := 0; x < b.Dx(); x++ {
				i := y*b.Dx() + x
				if !q.Mask[i] {
					continue
				}
				g := color.Gray16Model.Convert(src.Image.At(b.Min.X+x, b.Min.Y+y)).(color.Gray16)
				if g.Y < 0x8000 {
					q.Indices[i] = 1
				}
			}
		}
	default:
		table := clut.Clut8
		if src.Role.Depth() == 4 {
			table = clut.Clut4
		}
		if opts.Dither {
			ditherIndices(q, src.Image, table)
		} else {
			for y := 0; y < b.Dy(); y++ {
				for x := 0; x < b.Dx(); x++ {
					i := y*b.Dx() + x
					if !q.Mask[i] {
						// Transparent pixels map to index zero; the
						// real transparency lives in the mono masks
						continue
					}
					c := color.NRGBAModel.Convert(src.Image.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
					q.Indices[i] = table.Index(c, opts.Distance)
				}
			}
		}
	}

	return q, nil
}

func ditherIndices(q *QuantizedIcon, m image.Image, table clut.Table) {
	b := m.Bounds()
	dst := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), table.Palette())
	draw.FloydSteinberg.Draw(dst, dst.Bounds(), m, b.Min)
	for i, v := range dst.Pix {
		if q.Mask[i] {
			q.Indices[i] = v
		}
	}
}

// hasAlpha reports whether the color model of m carries an alpha
// channel. JPEG sources decode as YCbCr and are rejected.
func hasAlpha(m image.Image) bool {
	switch m.ColorModel() {
	case color.NRGBAModel, color.NRGBA64Model, color.RGBAModel, color.RGBA64Model, color.AlphaModel, color.Alpha16Model:
		return true
	}
	if _, ok := m.ColorModel().(color.Palette); ok {
		return true
	}
	return false
}

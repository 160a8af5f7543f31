package iconrez

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/nfnt/resize"

	"github.com/bodgit/iconrez/clut"
)

const previewGap = 8

// render expands the index grid back into colors so the quantized
// result can be inspected without a resource compiler round trip.
func (q *QuantizedIcon) render() image.Image {
	m := image.NewNRGBA(image.Rect(0, 0, q.Bounds.X, q.Bounds.Y))
	for i, idx := range q.Indices {
		if !q.Mask[i] {
			continue
		}

		var c color.NRGBA
		switch q.Role.Depth() {
		case 1:
			c = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
			if idx != 0 {
				c = color.NRGBA{A: 0xff}
			}
		case 4:
			c = clut.Clut4[idx]
		default:
			c = clut.Clut8[idx]
		}

		m.SetNRGBA(i%q.Bounds.X, i/q.Bounds.X, c)
	}
	return m
}

// Preview renders the quantized family as a contact sheet PNG, each
// member upscaled by scale and laid out in emission order.
func (m *IconRez) Preview(inputs map[Role]string, scale int, opts Options) ([]byte, error) {
	icons, err := m.quantizeAll(inputs, opts)
	if err != nil {
		return nil, err
	}

	if scale < 1 {
		scale = 1
	}

	width, height := previewGap, 0
	scaled := make([]image.Image, len(icons))
	for i, q := range icons {
		s := resize.Resize(uint(q.Bounds.X*scale), 0, q.render(), resize.NearestNeighbor)
		scaled[i] = s
		width += s.Bounds().Dx() + previewGap
		if h := s.Bounds().Dy(); h > height {
			height = h
		}
	}

	sheet := image.NewNRGBA(image.Rect(0, 0, width, height+2*previewGap))
	draw.Draw(sheet, sheet.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	x := previewGap
	for _, s := range scaled {
		r := s.Bounds().Add(image.Pt(x, previewGap).Sub(s.Bounds().Min))
		draw.Draw(sheet, r, s, s.Bounds().Min, draw.Over)
		x += s.Bounds().Dx() + previewGap
	}

	b := new(bytes.Buffer)
	if err := png.Encode(b, sheet); err != nil {
		return nil, err
	}

	return b.Bytes(), nil
}

// PreviewFile writes the contact sheet for the six inputs to path.
func (m *IconRez) PreviewFile(path string, inputs map[Role]string, scale int, opts Options) error {
	b, err := m.Preview(inputs, scale, opts)
	if err != nil {
		return err
	}

	m.logger.Printf("writing %d bytes to %s\n", len(b), path)

	return os.WriteFile(path, b, 0644)
}

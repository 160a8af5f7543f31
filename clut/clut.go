/*
Package clut implements the fixed classic Mac OS color lookup tables
and nearest-color matching against them.

Two tables are defined: the 256 entry 8-bit system palette and the 16
entry 4-bit system palette. Both are built once at startup and never
modified; every color maps to exactly one entry with ties broken in
favor of the lowest index.
*/
package clut

import "image/color"

// Distance computes a distance between two colors. Smaller is closer.
type Distance func(a, b color.NRGBA) uint32

// SquaredRGB is the default Distance: squared Euclidean over the 8-bit
// red, green and blue channels. Alpha is ignored.
func SquaredRGB(a, b color.NRGBA) uint32 {
	return sqDiff(a.R, b.R) + sqDiff(a.G, b.G) + sqDiff(a.B, b.B)
}

func sqDiff(x, y uint8) uint32 {
	d := int32(x) - int32(y)
	return uint32(d * d)
}

// Table is an ordered palette. The index of each entry is its position
// in the slice.
type Table []color.NRGBA

// Index returns the index of the entry closest to c according to dist,
// resolving exact ties to the lowest index. A nil dist uses SquaredRGB.
func (t Table) Index(c color.NRGBA, dist Distance) uint8 {
	if dist == nil {
		dist = SquaredRGB
	}

	var best int
	bestDist := ^uint32(0)
	for i, e := range t {
		if d := dist(c, e); d < bestDist {
			best, bestDist = i, d
		}
	}
	return uint8(best)
}

// Palette returns the table as an image/color palette.
func (t Table) Palette() color.Palette {
	p := make(color.Palette, len(t))
	for i, c := range t {
		p[i] = c
	}
	return p
}

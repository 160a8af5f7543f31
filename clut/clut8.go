package clut

import "image/color"

// The 8-bit system palette is mostly a 6x6x6 color cube. Component
// values descend from 0xff in steps of 0x33 so index 0 is white; the
// final cube entry (black) is displaced to index 255 and the freed
// indices 215-254 hold red, green, blue and gray ramps over the
// intermediate values not already present in the cube.

const cubeStep = 0x33

var rampValues = [...]uint8{0xee, 0xdd, 0xbb, 0xaa, 0x88, 0x77, 0x55, 0x44, 0x22, 0x11}

func makeClut8() Table {
	t := make(Table, 0, 256)

	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				if r == 5 && g == 5 && b == 5 {
					// Black lives at index 255 instead
					continue
				}
				t = append(t, color.NRGBA{
					R: 0xff - uint8(r)*cubeStep,
					G: 0xff - uint8(g)*cubeStep,
					B: 0xff - uint8(b)*cubeStep,
					A: 0xff,
				})
			}
		}
	}

	for _, v := range rampValues {
		t = append(t, color.NRGBA{R: v, A: 0xff})
	}
	for _, v := range rampValues {
		t = append(t, color.NRGBA{G: v, A: 0xff})
	}
	for _, v := range rampValues {
		t = append(t, color.NRGBA{B: v, A: 0xff})
	}
	for _, v := range rampValues {
		t = append(t, color.NRGBA{R: v, G: v, B: v, A: 0xff})
	}

	return append(t, color.NRGBA{A: 0xff})
}

// Clut8 is the classic 256 color system palette.
var Clut8 = makeClut8()

package clut

// Clut4 is the classic 16 color system palette.
var Clut4 = Table{
	{0xff, 0xff, 0xff, 0xff}, // white
	{0xfc, 0xf3, 0x05, 0xff}, // yellow
	{0xff, 0x64, 0x02, 0xff}, // orange
	{0xdd, 0x08, 0x06, 0xff}, // red
	{0xf2, 0x08, 0x84, 0xff}, // magenta
	{0x46, 0x00, 0xa5, 0xff}, // purple
	{0x00, 0x00, 0xd4, 0xff}, // blue
	{0x02, 0xab, 0xea, 0xff}, // cyan
	{0x1f, 0xb7, 0x14, 0xff}, // green
	{0x00, 0x64, 0x11, 0xff}, // dark green
	{0x56, 0x2c, 0x05, 0xff}, // brown
	{0x90, 0x71, 0x3a, 0xff}, // tan
	{0xc0, 0xc0, 0xc0, 0xff}, // light gray
	{0x80, 0x80, 0x80, 0xff}, // medium gray
	{0x40, 0x40, 0x40, 0xff}, // dark gray
	{0x00, 0x00, 0x00, 0xff}, // black
}

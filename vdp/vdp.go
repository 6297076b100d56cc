/*
Package vdp encodes Agon VDP commands as VDU byte sequences.

Every command is a short escape sequence written to the byte stream the
VDP reads, normally the eZ80 serial link. Buffered commands are VDU 23,
0, &A0 followed by a 16-bit buffer ID and a command byte; bitmap
commands are VDU 23, 27. All 16-bit values are little-endian.
*/
package vdp

const (
	vduClearScreen = 12
	vduColour      = 17
	vduMode        = 22
	vduEscape      = 23
	vduCursorTab   = 31
)

// VDU 23 command groups.
const (
	escSystem = 0
	escCursor = 1
	escBitmap = 27
)

// System (VDU 23, 0) commands.
const (
	sysLogicalCoords = 0xC0
	sysBuffered      = 0xA0
)

// Buffered (VDU 23, 0, &A0) commands.
const (
	bufWrite        = 0x00
	bufClear        = 0x02
	bufSplitWidthID = 0x14
)

// Bitmap (VDU 23, 27) commands.
const (
	bmpPlot       = 3
	bmpSelect     = 0x20
	bmpFromBuffer = 0x21
)

// Logical text colours in the default VDP palette. Adding 128 to a
// colour selects the background instead of the foreground.
const (
	Black uint8 = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

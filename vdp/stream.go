package vdp

import (
	"errors"
	"io"
)

const maxBufferID = 0xffff

var errBufferID = errors.New("vdp: buffer ID out of range")

// Stream encodes VDP commands onto an io.Writer. Each method emits one
// complete VDU sequence with a single Write call, so a command is never
// left half-written on the stream when an error surfaces.
type Stream struct {
	w io.Writer
}

// NewStream returns a Stream writing to w.
func NewStream(w io.Writer) *Stream {
	return &Stream{w: w}
}

func word(v int) (byte, byte) {
	return byte(v), byte(v >> 8)
}

func (s *Stream) emit(b ...byte) error {
	_, err := s.w.Write(b)
	return err
}

func buffered(id int, command byte) []byte {
	lo, hi := word(id)
	return []byte{vduEscape, escSystem, sysBuffered, lo, hi, command}
}

// ClearBuffer empties the named buffer.
func (s *Stream) ClearBuffer(id int) error {
	if id < 0 || id > maxBufferID {
		return errBufferID
	}
	return s.emit(buffered(id, bufClear)...)
}

// WriteBlock appends a block of bytes to the named buffer.
func (s *Stream) WriteBlock(id int, b []byte) error {
	if id < 0 || id > maxBufferID {
		return errBufferID
	}
	lo, hi := word(len(b))
	cmd := append(buffered(id, bufWrite), lo, hi)
	return s.emit(append(cmd, b...)...)
}

// SplitByWidth partitions the source buffer into count equal-width
// vertical slices, creating new buffers with sequential IDs starting at
// destStart.
func (s *Stream) SplitByWidth(src, width, count, destStart int) error {
	if src < 0 || src > maxBufferID || destStart < 0 || destStart > maxBufferID {
		return errBufferID
	}
	wl, wh := word(width)
	cl, ch := word(count)
	dl, dh := word(destStart)
	return s.emit(append(buffered(src, bufSplitWidthID), wl, wh, cl, ch, dl, dh)...)
}

// SelectBitmap makes the named buffer the current bitmap target.
func (s *Stream) SelectBitmap(id int) error {
	if id < 0 || id > maxBufferID {
		return errBufferID
	}
	lo, hi := word(id)
	return s.emit(vduEscape, escBitmap, bmpSelect, lo, hi)
}

// BitmapFromBuffer converts the currently selected buffer into a bitmap
// of the given dimensions and pixel format.
func (s *Stream) BitmapFromBuffer(width, height int, format uint8) error {
	wl, wh := word(width)
	hl, hh := word(height)
	return s.emit(vduEscape, escBitmap, bmpFromBuffer, wl, wh, hl, hh, format)
}

// PlotBitmap draws the currently selected bitmap at a screen pixel
// coordinate.
func (s *Stream) PlotBitmap(x, y int) error {
	xl, xh := word(x)
	yl, yh := word(y)
	return s.emit(vduEscape, escBitmap, bmpPlot, xl, xh, yl, yh)
}

// Mode switches the VDP screen mode.
func (s *Stream) Mode(mode uint8) error {
	return s.emit(vduMode, mode)
}

// ClearScreen clears the text and graphics viewports.
func (s *Stream) ClearScreen() error {
	return s.emit(vduClearScreen)
}

// CursorEnable shows or hides the text cursor.
func (s *Stream) CursorEnable(enable bool) error {
	var b byte
	if enable {
		b = 1
	}
	return s.emit(vduEscape, escCursor, b)
}

// CursorTab moves the text cursor to column x, row y.
func (s *Stream) CursorTab(x, y uint8) error {
	return s.emit(vduCursorTab, x, y)
}

// TextColour sets the text foreground colour.
func (s *Stream) TextColour(colour uint8) error {
	return s.emit(vduColour, colour)
}

// TextBgColour sets the text background colour.
func (s *Stream) TextBgColour(colour uint8) error {
	return s.emit(vduColour, colour+128)
}

// PixelCoordinates switches the VDP from logical (1280x1024) to
// physical pixel coordinates for graphics operations.
func (s *Stream) PixelCoordinates() error {
	return s.emit(vduEscape, escSystem, sysLogicalCoords, 0)
}

// Print writes plain text at the current cursor position.
func (s *Stream) Print(text string) error {
	return s.emit([]byte(text)...)
}

package tilemap

// Device is the VDP command surface the loader and renderer drive.
// Buffers and bitmaps are addressed by 16-bit numeric IDs; every command
// reports transport failure through its error return.
//
// vdp.Stream implements Device by encoding the commands onto a byte
// stream; tests substitute an in-memory implementation.
type Device interface {
	// ClearBuffer resets the named buffer to empty.
	ClearBuffer(id int) error

	// WriteBlock appends a block of bytes to the named buffer.
	WriteBlock(id int, b []byte) error

	// SplitByWidth partitions the source buffer into count equal-width
	// vertical slices, creating new buffers with sequential IDs
	// starting at destStart.
	SplitByWidth(src, width, count, destStart int) error

	// SelectBitmap makes the named buffer the current bitmap target.
	SelectBitmap(id int) error

	// BitmapFromBuffer converts the currently selected buffer into a
	// renderable bitmap of the given dimensions and pixel format.
	BitmapFromBuffer(width, height int, format uint8) error

	// PlotBitmap draws the currently selected bitmap at a screen pixel
	// coordinate.
	PlotBitmap(x, y int) error
}

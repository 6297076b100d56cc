package tilemap

import (
	"errors"
	"fmt"
	"image"
)

// fakeDevice implements Device in memory with real buffer semantics so
// the split and conversion arithmetic can be checked byte for byte.
type fakeDevice struct {
	buffers  map[int][]byte
	bitmaps  map[int]fakeBitmap
	selected int
	clears   int
	plots    []image.Point
	plotIDs  []int

	// failOn injects err from the named command.
	failOn string
	err    error
}

type fakeBitmap struct {
	width  int
	height int
	format uint8
	data   []byte
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		buffers: make(map[int][]byte),
		bitmaps: make(map[int]fakeBitmap),
	}
}

func (d *fakeDevice) fail(command string) error {
	if d.failOn == command {
		return d.err
	}
	return nil
}

func (d *fakeDevice) ClearBuffer(id int) error {
	if err := d.fail("clear"); err != nil {
		return err
	}
	d.clears++
	d.buffers[id] = nil
	return nil
}

func (d *fakeDevice) WriteBlock(id int, b []byte) error {
	if err := d.fail("write"); err != nil {
		return err
	}
	d.buffers[id] = append(d.buffers[id], b...)
	return nil
}

func (d *fakeDevice) SplitByWidth(src, width, count, destStart int) error {
	if err := d.fail("split"); err != nil {
		return err
	}
	b, ok := d.buffers[src]
	if !ok {
		return fmt.Errorf("no buffer %d", src)
	}
	stride := width * count
	if stride == 0 || len(b)%stride != 0 {
		return fmt.Errorf("buffer %d length %d does not split into %d slices of width %d", src, len(b), count, width)
	}
	for i := 0; i < count; i++ {
		var slice []byte
		for off := i * width; off < len(b); off += stride {
			slice = append(slice, b[off:off+width]...)
		}
		d.buffers[destStart+i] = slice
	}
	return nil
}

func (d *fakeDevice) SelectBitmap(id int) error {
	if err := d.fail("select"); err != nil {
		return err
	}
	d.selected = id
	return nil
}

func (d *fakeDevice) BitmapFromBuffer(width, height int, format uint8) error {
	if err := d.fail("convert"); err != nil {
		return err
	}
	b, ok := d.buffers[d.selected]
	if !ok {
		return fmt.Errorf("no buffer %d", d.selected)
	}
	if len(b) != width*height {
		return fmt.Errorf("buffer %d holds %d bytes, bitmap needs %d", d.selected, len(b), width*height)
	}
	d.bitmaps[d.selected] = fakeBitmap{
		width:  width,
		height: height,
		format: format,
		data:   b,
	}
	return nil
}

func (d *fakeDevice) PlotBitmap(x, y int) error {
	if err := d.fail("plot"); err != nil {
		return err
	}
	if _, ok := d.bitmaps[d.selected]; !ok {
		return fmt.Errorf("no bitmap %d", d.selected)
	}
	d.plots = append(d.plots, image.Point{X: x, Y: y})
	d.plotIDs = append(d.plotIDs, d.selected)
	return nil
}

var errDevice = errors.New("device rejected command")

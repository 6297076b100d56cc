package rgba2222

import (
	"errors"
	"image"
	"io"
)

var (
	errNotEnough = errors.New("rgba2222: not enough image data")
	errTooMuch   = errors.New("rgba2222: too much image data")
	errBadSize   = errors.New("rgba2222: invalid image dimensions")
)

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

type decoder struct {
	r io.Reader

	image *image.NRGBA
}

func (d *decoder) decode(r io.Reader, width, height int) error {
	d.r = r

	buf := make([]byte, width*height*BytesPerPixel)
	if err := readFull(d.r, buf); err != nil {
		if err != io.ErrUnexpectedEOF {
			return err
		}
		return errNotEnough
	}

	var tmp [1]byte
	if n, err := r.Read(tmp[:]); n != 0 || (err != io.EOF && err != io.ErrUnexpectedEOF) {
		if err != nil {
			return err
		}
		return errTooMuch
	}

	d.image = image.NewNRGBA(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			d.image.SetNRGBA(x, y, unpack(buf[y*width+x]))
		}
	}

	return nil
}

// Decode reads a complete RGBA2222 pixel stream of the given dimensions
// from r and returns it as an image.Image. The format carries no header
// so the dimensions must be supplied by the caller; a stream shorter or
// longer than width*height bytes is an error.
func Decode(r io.Reader, width, height int) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, errBadSize
	}
	var d decoder
	if err := d.decode(r, width, height); err != nil {
		return nil, err
	}
	return d.image, nil
}

/*
Package rgba2222 implements a decoder and encoder for the raw RGBA2222
pixel format used by the Agon VDP.

Each pixel is one byte laid out %AABBGGRR, two bits per channel, giving
64 opaque colours plus four alpha levels. The stream is row-major pixel
data with no header or metadata of any kind, so the caller must supply
the image dimensions out-of-band when decoding.
*/
package rgba2222

import "image/color"

const (
	// BytesPerPixel is fixed by the format.
	BytesPerPixel = 1

	channelBits = 2
	channelMax  = 1<<channelBits - 1

	// maxColors is the size of the representable colour lattice,
	// ignoring alpha.
	maxColors = 1 << (3 * channelBits)
)

// scale maps a 2-bit channel value to 8 bits.
var scale = [channelMax + 1]uint8{0, 85, 170, 255}

// pack converts through NRGBA as the format stores straight alpha.
func pack(c color.Color) byte {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return n.A>>6<<6 | n.B>>6<<4 | n.G>>6<<2 | n.R>>6
}

func unpack(b byte) color.NRGBA {
	return color.NRGBA{
		R: scale[b&channelMax],
		G: scale[b>>2&channelMax],
		B: scale[b>>4&channelMax],
		A: scale[b>>6&channelMax],
	}
}

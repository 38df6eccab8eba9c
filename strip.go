package stripgif

import (
	"errors"
	"image"
)

var (
	ErrInvalidFrameCount = errors.New("frames per strip must be positive")
	ErrFrameTooNarrow    = errors.New("strip is narrower than the number of frames")
)

// FrameWidth is the width of each frame when a strip total pixels wide is cut
// into n frames. Any remainder columns belong to no frame.
func FrameWidth(total, n int) int {
	if n <= 0 {
		return 0
	}
	return total / n
}

/*
Split cuts a stitched strip into n contiguous vertical frames, left to right,
each spanning the strip's full height. Frames share pixels with img.

When the strip width is not a multiple of n the rightmost width%n columns are
left out of every frame.
*/
func Split(img *BGR, n int) ([]*BGR, error) {
	if n <= 0 {
		return nil, ErrInvalidFrameCount
	}
	bounds := img.Bounds()
	fw := FrameWidth(bounds.Dx(), n)
	if fw == 0 {
		return nil, ErrFrameTooNarrow
	}

	frames := make([]*BGR, n)
	for i := range frames {
		x0 := bounds.Min.X + i*fw
		frames[i] = img.SubImage(image.Rect(x0, bounds.Min.Y, x0+fw, bounds.Max.Y))
	}
	return frames, nil
}

// ToRGB swaps a BGR frame into RGBA byte order. The result is opaque and its
// bounds start at (0, 0).
func ToRGB(src *BGR) *image.RGBA {
	bounds := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		si := src.PixOffset(bounds.Min.X, y)
		di := dst.PixOffset(0, y-bounds.Min.Y)
		for x := 0; x < bounds.Dx(); x++ {
			dst.Pix[di+0] = src.Pix[si+2]
			dst.Pix[di+1] = src.Pix[si+1]
			dst.Pix[di+2] = src.Pix[si+0]
			dst.Pix[di+3] = 0xff
			si += 3
			di += 4
		}
	}
	return dst
}

package stripgif

import (
	"bufio"
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/nfnt/resize"
)

// cellDots holds the bit of each dot in a braille cell, by row then column.
// Unicode numbers the left column 1, 2, 3, 7 and the right 4, 5, 6, 8.
var cellDots = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

const blankCell = '\u2800'

var monochrome = color.Palette{color.Black, color.White}

/*
Preview draws img to w as rows of unicode braille symbols, each covering a 2x4
pixel block, so a frame can be eyeballed in a terminal. Images wider than cols
symbols are scaled down first. Pixels are reduced to black or white with Floyd
Steinberg diffusion; black pixels become raised dots.
*/
func Preview(w io.Writer, img image.Image, cols int) error {
	if cols > 0 && img.Bounds().Dx() > cols*2 {
		img = resize.Thumbnail(uint(cols*2), uint(img.Bounds().Dy()), img, resize.NearestNeighbor)
	}

	bw := image.NewPaletted(img.Bounds(), monochrome)
	draw.FloydSteinberg.Draw(bw, bw.Bounds(), img, img.Bounds().Min)

	out := bufio.NewWriter(w)
	r := bw.Bounds()
	for top := r.Min.Y; top < r.Max.Y; top += 4 {
		for left := r.Min.X; left < r.Max.X; left += 2 {
			out.WriteRune(cell(bw, left, top))
		}
		out.WriteByte('\n')
	}
	return out.Flush()
}

// cell returns the symbol for the 2x4 block whose top left pixel is at
// (left, top). Dots past the image edge stay lowered.
func cell(bw *image.Paletted, left, top int) rune {
	sym := blankCell
	for row, bits := range cellDots {
		for col, bit := range bits {
			p := image.Pt(left+col, top+row)
			if p.In(bw.Rect) && bw.ColorIndexAt(p.X, p.Y) == 0 {
				sym |= bit
			}
		}
	}
	return sym
}

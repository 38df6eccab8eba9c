package stripgif

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// Decode reads a PNG, JPEG, BMP or TIFF image from r as a 3-channel BGR
// raster, along with the format name the decoder reported.
func Decode(r io.Reader) (*BGR, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", err
	}
	return FromImage(img), format, nil
}

func DecodeFile(path string) (*BGR, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

package ocr

import (
	"image"
	"image/draw"
)

// Status describes the availability of the OCR capability.
type Status struct {
	// Available reports whether text extraction can be performed.
	Available bool

	// Version is the Tesseract version when available.
	Version string

	// Reason explains why the capability is unavailable, including how to
	// enable it. Empty when Available is true.
	Reason string
}

// toGray converts an image to a single-channel luminance raster. Tesseract
// performs better on grayscale input, and the conversion also normalizes
// whatever color mode the source decoded to.
func toGray(img image.Image) *image.Gray {
	bounds := img.Bounds()
	dst := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	return dst
}

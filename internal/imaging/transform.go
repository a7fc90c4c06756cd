package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"
)

// UnknownFormat is reported by Info when the source container format cannot
// be determined.
const UnknownFormat = "(unknown)"

// InfoResult contains basic metadata about a resolved image.
type InfoResult struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Mode is the color mode of the raster (e.g. "rgb", "rgba", "gray").
	Mode string `json:"mode"`

	// Format is the detected container format, or "(unknown)" when the
	// source did not carry one.
	Format string `json:"format"`
}

// Info extracts width, height, color mode and source format from a decoded
// image.
func Info(d *Decoded) *InfoResult {
	format := d.Format
	if format == "" {
		format = UnknownFormat
	}
	return &InfoResult{
		Width:  d.Width(),
		Height: d.Height(),
		Mode:   d.Mode(),
		Format: format,
	}
}

// Grayscale converts an image to grayscale using a perceptual luminance
// transform. The input is not modified.
func Grayscale(img image.Image) image.Image {
	return effect.Grayscale(img)
}

// Fit scales an image down to fit within a maxW x maxH bounding box while
// preserving the aspect ratio. Images that already fit are returned at their
// original size; Fit never upscales.
func Fit(img image.Image, maxW, maxH int) image.Image {
	if maxW < 1 {
		maxW = 1
	}
	if maxH < 1 {
		maxH = 1
	}

	bounds := img.Bounds()
	if bounds.Dx() <= maxW && bounds.Dy() <= maxH {
		return img
	}
	return imaging.Fit(img, maxW, maxH, imaging.Lanczos)
}

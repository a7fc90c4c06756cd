package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"strings"

	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// DecodeError indicates that an image reference could not be resolved to a
// valid raster: the path did not contain a readable image, the base64 payload
// was malformed, or the decoded bytes were not a supported image container.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Decoded is an in-memory raster produced by Resolve. It is created fresh for
// every tool call and never mutated; transforms produce new images.
type Decoded struct {
	// Image is the decoded pixel buffer.
	Image image.Image

	// Format is the detected container format ("png", "jpeg", "gif", ...)
	// as reported by the registered decoder. Empty when the source bytes
	// did not carry a recognizable container (never happens via Resolve,
	// but callers may construct Decoded values directly).
	Format string
}

// Width returns the raster width in pixels.
func (d *Decoded) Width() int {
	return d.Image.Bounds().Dx()
}

// Height returns the raster height in pixels.
func (d *Decoded) Height() int {
	return d.Image.Bounds().Dy()
}

// Mode reports the color mode of the decoded raster, derived from the
// concrete image type: "rgb", "rgba", "rgba64", "gray", "gray16",
// "palette", "cmyk" or "unknown".
func (d *Decoded) Mode() string {
	switch d.Image.(type) {
	case *image.Gray:
		return "gray"
	case *image.Gray16:
		return "gray16"
	case *image.Paletted:
		return "palette"
	case *image.RGBA, *image.NRGBA:
		return "rgba"
	case *image.RGBA64, *image.NRGBA64:
		return "rgba64"
	case *image.YCbCr, *image.NYCbCrA:
		return "rgb"
	case *image.CMYK:
		return "cmyk"
	default:
		return "unknown"
	}
}

// Resolve turns an opaque image reference into a decoded raster.
//
// The reference is disambiguated by inspection, first match wins:
//  1. An existing filesystem path is opened and decoded as an image file.
//  2. A string with the "data:" prefix is treated as a data URI; everything
//     after the first comma is the base64 payload (the MIME header before
//     the comma is discarded, not validated).
//  3. Anything else is treated as raw base64.
//
// The image container is auto-detected from the decoded bytes, never from a
// file extension. Every call decodes from scratch; nothing is cached.
func Resolve(reference string) (*Decoded, error) {
	if _, err := os.Stat(reference); err == nil {
		f, err := os.Open(reference)
		if err != nil {
			return nil, &DecodeError{Reason: "failed to open image file", Err: err}
		}
		defer f.Close()

		img, format, err := image.Decode(f)
		if err != nil {
			return nil, &DecodeError{Reason: "failed to decode image file", Err: err}
		}
		return &Decoded{Image: img, Format: format}, nil
	}

	payload := reference
	if strings.HasPrefix(reference, "data:") {
		_, b64, found := strings.Cut(reference, ",")
		if !found {
			return nil, &DecodeError{Reason: "data URI has no comma-separated payload"}
		}
		payload = b64
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, &DecodeError{Reason: "invalid base64 payload", Err: err}
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Reason: "failed to decode image bytes", Err: err}
	}
	return &Decoded{Image: img, Format: format}, nil
}

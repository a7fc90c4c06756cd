//go:build !cgo

package ocr

import (
	"errors"
	"image"
)

// Probe reports the OCR capability as unavailable. Tesseract bindings need
// cgo; this build was compiled without it.
func Probe() Status {
	return Status{
		Available: false,
		Reason: "OCR is not available in this build. Rebuild with CGO_ENABLED=1 and " +
			"install Tesseract (e.g. apt-get install tesseract-ocr libtesseract-dev " +
			"tesseract-ocr-eng, or brew install tesseract) to enable ocr_text.",
	}
}

// ExtractText is unavailable in non-cgo builds.
func ExtractText(_ image.Image, _ string) (string, error) {
	return "", errors.New("OCR engine not available")
}

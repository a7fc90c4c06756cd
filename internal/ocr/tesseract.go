//go:build cgo

package ocr

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/otiai10/gosseract/v2"
)

// Probe checks whether the Tesseract engine can be acquired. The probe runs
// per call; acquiring the client twice is harmless and converges to the same
// result.
func Probe() Status {
	client := gosseract.NewClient()
	defer client.Close()

	version := client.Version()
	if version == "" {
		return Status{
			Available: false,
			Reason: "Tesseract library found but not functional. " +
				"Install language data (e.g. apt-get install tesseract-ocr-eng) and retry.",
		}
	}
	return Status{Available: true, Version: version}
}

// ExtractText recognizes text in an image using Tesseract.
//
// The image is converted to single-channel luminance and staged as a
// temporary PNG, since Tesseract consumes file paths. The language is a
// Tesseract language code such as "eng"; its training data must be
// installed.
func ExtractText(img image.Image, language string) (string, error) {
	gray := toGray(img)

	tmpFile, err := os.CreateTemp("", "ocr-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	if err := png.Encode(tmpFile, gray); err != nil {
		tmpFile.Close()
		return "", fmt.Errorf("failed to encode temp image: %w", err)
	}
	tmpFile.Close()

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(language); err != nil {
		return "", fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetImage(tmpPath); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}
	return text, nil
}

//go:build !noqr

package qr

import (
	"fmt"
	"image"

	"github.com/makiuchi-d/gozxing"
	multiqr "github.com/makiuchi-d/gozxing/multi/qrcode"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// Probe reports the availability of the QR detection engine. The zxing port
// is pure Go, so builds without the noqr tag always have it.
func Probe() Status {
	return Status{Available: true}
}

// Detect finds and decodes QR symbols in an image.
//
// The plain reader is tried first, then the multi-symbol reader; unique
// non-empty payloads from both are merged in first-seen order. The two
// readers have asymmetric strengths, so neither alone is sufficient. An
// image with no QR symbols yields an empty Result, not an error.
func Detect(img image.Image) (*Result, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare bitmap: %w", err)
	}

	data := []string{}
	seen := make(map[string]bool)

	reader := qrcode.NewQRCodeReader()
	if result, err := reader.Decode(bmp, nil); err == nil {
		data = appendUnique(data, seen, result.GetText())
	}

	multiReader := multiqr.NewQRCodeMultiReader()
	if results, err := multiReader.DecodeMultiple(bmp, nil); err == nil {
		for _, result := range results {
			data = appendUnique(data, seen, result.GetText())
		}
	}

	return &Result{Count: len(data), Data: data}, nil
}

// appendUnique adds a decoded payload unless it is empty or already present.
func appendUnique(data []string, seen map[string]bool, s string) []string {
	if s == "" || seen[s] {
		return data
	}
	seen[s] = true
	return append(data, s)
}

//go:build noqr

package qr

import (
	"errors"
	"image"
)

// Probe reports the availability of the QR detection engine. Builds with the
// noqr tag exclude the zxing port entirely.
func Probe() Status {
	return Status{
		Available: false,
		Reason:    "QR detection was excluded from this build (noqr tag). Rebuild without the tag to enable detect_qr.",
	}
}

// Detect is unavailable in noqr builds.
func Detect(_ image.Image) (*Result, error) {
	return nil, errors.New("QR detection engine not available")
}

// Package ocr provides optional text extraction using Tesseract via
// gosseract/v2.
//
// The capability requires cgo and a system Tesseract installation. Non-cgo
// builds compile a stub whose Probe reports the engine as unavailable with
// installation guidance; the ocr_text tool returns that guidance as its
// result instead of failing the call. Even in cgo builds, Probe verifies at
// call time that the engine actually initializes.
//
// Input images are converted to single-channel luminance before recognition
// and staged as temporary PNG files, which Tesseract consumes by path. The
// temporary file is removed after the call.
package ocr

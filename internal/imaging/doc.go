// Package imaging provides image reference resolution and the pure transform
// operations behind the server's tools.
//
// # Reference Resolution
//
// Resolve accepts an untagged string reference and disambiguates it by
// inspection, in a fixed priority order: an existing filesystem path first,
// then a "data:" URI, then raw base64. The container format is auto-detected
// from the decoded bytes. PNG, JPEG, GIF, BMP, TIFF and WebP decoders are
// registered.
//
// Nothing is cached: every Resolve call decodes from scratch, so concurrent
// tool calls share no mutable state.
//
// # Transforms
//
// All operations are pure functions of their inputs. Transforms that produce
// pixels (Grayscale, Fit) return new images and always encode to PNG via
// EncodePNG. Fit preserves the aspect ratio and never upscales.
// DominantColors uses a median-cut quantization and ranks the reduced
// palette by pixel frequency.
//
// # Error Handling
//
// Resolve failures are reported as *DecodeError, wrapping the underlying
// cause (missing file, malformed base64, unsupported container). Transforms
// on a successfully resolved image only fail on encoding errors.
package imaging

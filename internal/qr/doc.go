// Package qr detects and decodes QR codes using a pure-Go zxing port.
//
// Detection merges the results of two readers: the plain QR reader, which
// decodes at most one symbol, and the multi-symbol reader. Unique non-empty
// payloads are kept in first-seen order.
//
// The capability is probed via Probe rather than assumed: binaries built
// with the noqr tag carry a stub whose Probe reports the engine as
// unavailable, and callers degrade the detect_qr tool to a descriptive
// empty result instead of failing the call.
package qr

// Package server implements the MCP (Model Context Protocol) server exposing
// the image tools.
//
// # Protocol
//
// The server speaks JSON-RPC 2.0 over two interchangeable transports:
//
//   - stdio (default): one request per line on stdin, responses on stdout
//   - streamable HTTP: one request per POST to the configured path
//
// Supported MCP methods:
//   - initialize: protocol handshake
//   - tools/list: enumerate available tools
//   - tools/call: execute a tool with arguments
//   - ping: health check
//
// # Tool Registry
//
// Tools are declared as data: an ordered registry of Tool values carrying
// name, title, description, JSON input schema with defaults, and the handler
// function. Dispatch is a map lookup; the registry is fixed at construction
// and never mutated, so concurrent calls need no locking.
//
// Six tools are exposed: image_info, grayscale, resize, dominant_colors,
// detect_qr and ocr_text. Every tool accepts an untagged image reference
// (filesystem path, data URI, or raw base64) and re-resolves it per call.
//
// # Error Handling
//
// Unresolvable references and handler failures return JSON-RPC errors
// (code -32000); unknown tools and methods return -32601. Missing optional
// capabilities (QR engine, OCR engine) never produce protocol errors: the
// affected tool returns a descriptive result and every other tool keeps
// working.
package server

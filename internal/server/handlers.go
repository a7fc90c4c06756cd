package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/image-scan-mcp/internal/imaging"
	"github.com/ironsheep/image-scan-mcp/internal/ocr"
	"github.com/ironsheep/image-scan-mcp/internal/qr"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_info", "resize").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request.
//
// Structured results are wrapped as MCP text content holding JSON; encoded
// image payloads become MCP image content blocks. Unknown tool names and
// handler failures return JSON-RPC error responses; a missing optional
// capability is not a failure and is reported inside the tool result.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	tool, ok := s.byName[params.Name]
	if !ok {
		return s.errorResponse(req.ID, -32601, fmt.Sprintf("Unknown tool: %s", params.Name), "")
	}

	result, err := tool.Handler(params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": toolContent(result),
		},
	}
}

// toolContent shapes a handler result into MCP content blocks.
func toolContent(result interface{}) []map[string]interface{} {
	switch v := result.(type) {
	case *imaging.EncodedImage:
		return []map[string]interface{}{
			{
				"type":     "image",
				"data":     v.ImageBase64,
				"mimeType": v.MimeType,
			},
		}
	case string:
		return []map[string]interface{}{
			{
				"type": "text",
				"text": v,
			},
		}
	default:
		return []map[string]interface{}{
			{
				"type": "text",
				"text": mustMarshalJSON(result),
			},
		}
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// intArg tolerates float-encoded integers in JSON arguments; clients routed
// through loosely typed layers often send 1024.0 for 1024. Fractions are
// truncated toward zero.
type intArg int

func (n *intArg) UnmarshalJSON(b []byte) error {
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*n = intArg(f)
	return nil
}

// === Tool Handlers ===

type imageArgs struct {
	Image string `json:"image"`
}

func handleImageInfo(args json.RawMessage) (interface{}, error) {
	var a imageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	d, err := imaging.Resolve(a.Image)
	if err != nil {
		return nil, err
	}
	return imaging.Info(d), nil
}

func handleGrayscale(args json.RawMessage) (interface{}, error) {
	var a imageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	d, err := imaging.Resolve(a.Image)
	if err != nil {
		return nil, err
	}
	return imaging.EncodePNG(imaging.Grayscale(d.Image))
}

// Optional numeric arguments are pointers so that absence (apply the declared
// default) is distinguishable from an explicit zero (clamped downstream).
type resizeArgs struct {
	Image string  `json:"image"`
	MaxW  *intArg `json:"max_w"`
	MaxH  *intArg `json:"max_h"`
}

func handleResize(args json.RawMessage) (interface{}, error) {
	var a resizeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	maxW, maxH := 1024, 1024
	if a.MaxW != nil {
		maxW = int(*a.MaxW)
	}
	if a.MaxH != nil {
		maxH = int(*a.MaxH)
	}
	d, err := imaging.Resolve(a.Image)
	if err != nil {
		return nil, err
	}
	return imaging.EncodePNG(imaging.Fit(d.Image, maxW, maxH))
}

type dominantColorsArgs struct {
	Image  string  `json:"image"`
	Colors *intArg `json:"colors"`
}

// dominantColorsResult lists hex colors ordered by descending frequency.
type dominantColorsResult struct {
	Colors []string `json:"colors"`
}

func handleDominantColors(args json.RawMessage) (interface{}, error) {
	var a dominantColorsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	colors := 5
	if a.Colors != nil {
		colors = int(*a.Colors)
	}
	d, err := imaging.Resolve(a.Image)
	if err != nil {
		return nil, err
	}
	return &dominantColorsResult{Colors: imaging.DominantColors(d.Image, colors)}, nil
}

// detectQRResult carries decoded payloads, or an explanation when the QR
// engine is unavailable.
type detectQRResult struct {
	Count int      `json:"count"`
	Data  []string `json:"data"`
	Error string   `json:"error,omitempty"`
}

func handleDetectQR(args json.RawMessage) (interface{}, error) {
	var a imageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	d, err := imaging.Resolve(a.Image)
	if err != nil {
		return nil, err
	}

	if status := qr.Probe(); !status.Available {
		return &detectQRResult{Count: 0, Data: []string{}, Error: status.Reason}, nil
	}

	result, err := qr.Detect(imaging.ToRGBA(d.Image))
	if err != nil {
		return nil, err
	}
	return &detectQRResult{Count: result.Count, Data: result.Data}, nil
}

type ocrTextArgs struct {
	Image string `json:"image"`
	Lang  string `json:"lang"`
}

func handleOCRText(args json.RawMessage) (interface{}, error) {
	var a ocrTextArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Lang == "" {
		a.Lang = "eng"
	}
	d, err := imaging.Resolve(a.Image)
	if err != nil {
		return nil, err
	}

	if status := ocr.Probe(); !status.Available {
		return status.Reason, nil
	}

	return ocr.ExtractText(d.Image, a.Lang)
}

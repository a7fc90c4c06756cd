package server

import "encoding/json"

// Tool describes one invocable operation: its wire metadata and the handler
// that executes it. The parameter schema is declared as data so the
// dispatcher's contract is checkable without inspecting handler signatures.
type Tool struct {
	Name        string                 `json:"name"`
	Title       string                 `json:"title,omitempty"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`

	Handler func(args json.RawMessage) (interface{}, error) `json:"-"`
}

// imageProperty is the schema fragment shared by every tool's image argument.
func imageProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Image reference: a filesystem path, a data URI, or raw base64",
	}
}

// toolDefinitions returns the fixed tool registry: every tool the server
// exposes, with its schema and handler.
func toolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "image_info",
			Title:       "Image Info",
			Description: "Return width/height/mode/format of an image (path or base64)",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"image": imageProperty(),
				},
				"required": []string{"image"},
			},
			Handler: handleImageInfo,
		},
		{
			Name:        "grayscale",
			Title:       "Grayscale",
			Description: "Convert to grayscale and return PNG image bytes",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"image": imageProperty(),
				},
				"required": []string{"image"},
			},
			Handler: handleGrayscale,
		},
		{
			Name:        "resize",
			Title:       "Resize",
			Description: "Resize keeping aspect ratio to fit within max_w x max_h and return PNG",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"image": imageProperty(),
					"max_w": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum output width in pixels",
						"default":     1024,
					},
					"max_h": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum output height in pixels",
						"default":     1024,
					},
				},
				"required": []string{"image"},
			},
			Handler: handleResize,
		},
		{
			Name:        "dominant_colors",
			Title:       "Dominant Colors",
			Description: "Approximate dominant colors using median-cut quantization",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"image": imageProperty(),
					"colors": map[string]interface{}{
						"type":        "integer",
						"description": "Number of dominant colors to return (minimum 1)",
						"default":     5,
					},
				},
				"required": []string{"image"},
			},
			Handler: handleDominantColors,
		},
		{
			Name:        "detect_qr",
			Title:       "Detect QR",
			Description: "Detect and decode QR codes in an image",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"image": imageProperty(),
				},
				"required": []string{"image"},
			},
			Handler: handleDetectQR,
		},
		{
			Name:        "ocr_text",
			Title:       "OCR Text (optional)",
			Description: "Extract text using Tesseract OCR if available",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"image": imageProperty(),
					"lang": map[string]interface{}{
						"type":        "string",
						"description": "Tesseract language code",
						"default":     "eng",
					},
				},
				"required": []string{"image"},
			},
			Handler: handleOCRText,
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": s.tools,
		},
	}
}

package server

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
)

// maxRequestBytes bounds HTTP request bodies; inline base64 images can be
// large but unbounded bodies are not accepted.
const maxRequestBytes = 32 * 1024 * 1024

// HTTPHandler returns an http.Handler serving the streamable HTTP transport
// on the given URL path. Each POST carries a single JSON-RPC request;
// notifications are acknowledged with 202 and no body.
func (s *Server) HTTPHandler(path string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST "+path, s.handleHTTP)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	return mux
}

// RunHTTP starts the streamable HTTP transport on addr, serving MCP requests
// at path. Blocks until the listener fails.
func (s *Server) RunHTTP(addr, path string) error {
	log.Printf("serving streamable HTTP on http://%s%s", addr, path)
	return http.ListenAndServe(addr, s.HTTPHandler(path))
}

func (s *Server) handleHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	if err != nil {
		writeJSON(w, http.StatusRequestEntityTooLarge, &MCPResponse{
			JSONRPC: "2.0",
			Error:   &MCPError{Code: -32600, Message: "Request too large"},
		})
		return
	}

	var req MCPRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, &MCPResponse{
			JSONRPC: "2.0",
			Error:   &MCPError{Code: -32700, Message: "Parse error", Data: err.Error()},
		})
		return
	}

	resp := s.handleRequest(&req)
	if resp == nil {
		// Notification: acknowledged, nothing to send back
		w.WriteHeader(http.StatusAccepted)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

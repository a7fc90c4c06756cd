package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", bytes.NewBufferString(body))
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	return resp
}

func TestHTTPHandler_ToolsList(t *testing.T) {
	ts := httptest.NewServer(New().HTTPHandler("/mcp"))
	defer ts.Close()

	resp := postJSON(t, ts.URL+"/mcp", `{"jsonrpc":"2.0","id":1,"method":"tools/list"}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: got %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type: got %q", ct)
	}

	var decoded struct {
		JSONRPC string `json:"jsonrpc"`
		Result  struct {
			Tools []Tool `json:"tools"`
		} `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.JSONRPC != "2.0" {
		t.Errorf("jsonrpc: got %q", decoded.JSONRPC)
	}
	if len(decoded.Result.Tools) != 6 {
		t.Errorf("tool count: got %d, want 6", len(decoded.Result.Tools))
	}
}

func TestHTTPHandler_Notification(t *testing.T) {
	ts := httptest.NewServer(New().HTTPHandler("/mcp"))
	defer ts.Close()

	resp := postJSON(t, ts.URL+"/mcp", `{"jsonrpc":"2.0","method":"notifications/initialized"}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted {
		t.Errorf("status: got %d, want 202", resp.StatusCode)
	}
}

func TestHTTPHandler_ParseError(t *testing.T) {
	ts := httptest.NewServer(New().HTTPHandler("/mcp"))
	defer ts.Close()

	resp := postJSON(t, ts.URL+"/mcp", "this is not json")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", resp.StatusCode)
	}

	var decoded MCPResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.Error == nil || decoded.Error.Code != -32700 {
		t.Errorf("expected parse error -32700, got %+v", decoded.Error)
	}
}

func TestHTTPHandler_MethodNotAllowed(t *testing.T) {
	ts := httptest.NewServer(New().HTTPHandler("/mcp"))
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/mcp")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("status: got %d, want 405", resp.StatusCode)
	}
}

func TestHTTPHandler_Healthz(t *testing.T) {
	ts := httptest.NewServer(New().HTTPHandler("/mcp"))
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status: got %d, want 200", resp.StatusCode)
	}
}

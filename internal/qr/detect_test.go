//go:build !noqr

package qr

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// encodeQR renders a QR symbol for the given payload
func encodeQR(t *testing.T, payload string, size int) image.Image {
	t.Helper()
	writer := qrcode.NewQRCodeWriter()
	matrix, err := writer.Encode(payload, gozxing.BarcodeFormat_QR_CODE, size, size, nil)
	if err != nil {
		t.Fatalf("failed to encode QR: %v", err)
	}
	return matrix
}

func TestProbe(t *testing.T) {
	status := Probe()
	if !status.Available {
		t.Fatalf("Probe reported unavailable: %s", status.Reason)
	}
}

func TestDetect_SingleSymbol(t *testing.T) {
	img := encodeQR(t, "HELLO", 256)

	result, err := Detect(img)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if result.Count != 1 {
		t.Fatalf("count: got %d, want 1 (data=%v)", result.Count, result.Data)
	}
	if result.Data[0] != "HELLO" {
		t.Errorf("payload: got %q, want HELLO", result.Data[0])
	}
}

func TestDetect_TwoSymbols(t *testing.T) {
	first := encodeQR(t, "FIRST", 200)
	second := encodeQR(t, "SECOND", 200)

	// Two symbols side by side on a white canvas with quiet zones between
	canvas := image.NewRGBA(image.Rect(0, 0, 460, 240))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(canvas, image.Rect(20, 20, 220, 220), first, first.Bounds().Min, draw.Src)
	draw.Draw(canvas, image.Rect(240, 20, 440, 220), second, second.Bounds().Min, draw.Src)

	result, err := Detect(canvas)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}

	seen := make(map[string]int)
	for _, s := range result.Data {
		seen[s]++
		if s != "FIRST" && s != "SECOND" {
			t.Errorf("unexpected payload %q", s)
		}
		if seen[s] > 1 {
			t.Errorf("duplicate payload %q", s)
		}
	}
	if result.Count != 2 {
		t.Errorf("count: got %d, want 2 (data=%v)", result.Count, result.Data)
	}
}

func TestDetect_NoSymbols(t *testing.T) {
	blank := image.NewRGBA(image.Rect(0, 0, 100, 100))
	draw.Draw(blank, blank.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	result, err := Detect(blank)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if result.Count != 0 || len(result.Data) != 0 {
		t.Errorf("expected empty result, got count=%d data=%v", result.Count, result.Data)
	}
}

func TestAppendUnique(t *testing.T) {
	seen := make(map[string]bool)
	data := []string{}

	data = appendUnique(data, seen, "a")
	data = appendUnique(data, seen, "")
	data = appendUnique(data, seen, "b")
	data = appendUnique(data, seen, "a")

	if len(data) != 2 || data[0] != "a" || data[1] != "b" {
		t.Errorf("got %v, want [a b]", data)
	}
}

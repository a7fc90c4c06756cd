package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func TestInfo(t *testing.T) {
	d := &Decoded{
		Image:  createInMemoryImage(120, 90, color.RGBA{10, 20, 30, 255}),
		Format: "png",
	}

	info := Info(d)
	if info.Width != 120 || info.Height != 90 {
		t.Errorf("dimensions: got %dx%d, want 120x90", info.Width, info.Height)
	}
	if info.Mode != "rgba" {
		t.Errorf("mode: got %q, want rgba", info.Mode)
	}
	if info.Format != "png" {
		t.Errorf("format: got %q, want png", info.Format)
	}
}

func TestInfo_UnknownFormat(t *testing.T) {
	d := &Decoded{Image: createInMemoryImage(10, 10, color.White)}

	info := Info(d)
	if info.Format != UnknownFormat {
		t.Errorf("format: got %q, want %q", info.Format, UnknownFormat)
	}
}

func TestGrayscale(t *testing.T) {
	img := createInMemoryImage(30, 30, color.RGBA{255, 0, 0, 255})

	gray := Grayscale(img)
	bounds := gray.Bounds()
	if bounds.Dx() != 30 || bounds.Dy() != 30 {
		t.Errorf("dimensions changed: got %dx%d", bounds.Dx(), bounds.Dy())
	}

	r, g, b, _ := gray.At(15, 15).RGBA()
	if r != g || g != b {
		t.Errorf("pixel not gray: r=%d g=%d b=%d", r, g, b)
	}
	// Pure red must not map to black or white
	if r == 0 || r == 0xffff {
		t.Errorf("red luminance out of range: %d", r)
	}
}

func TestFit_Downscale(t *testing.T) {
	img := createInMemoryImage(200, 100, color.White)

	fitted := Fit(img, 50, 50)
	bounds := fitted.Bounds()
	if bounds.Dx() > 50 || bounds.Dy() > 50 {
		t.Errorf("exceeds bounding box: got %dx%d", bounds.Dx(), bounds.Dy())
	}
	// 2:1 aspect preserved within a pixel of rounding
	if bounds.Dx() != 50 || bounds.Dy() < 24 || bounds.Dy() > 26 {
		t.Errorf("aspect not preserved: got %dx%d, want 50x25", bounds.Dx(), bounds.Dy())
	}
}

func TestFit_NeverUpscales(t *testing.T) {
	img := createInMemoryImage(10, 10, color.White)

	fitted := Fit(img, 100, 100)
	bounds := fitted.Bounds()
	if bounds.Dx() != 10 || bounds.Dy() != 10 {
		t.Errorf("upscaled: got %dx%d, want 10x10", bounds.Dx(), bounds.Dy())
	}
}

func TestFit_AlreadyFits(t *testing.T) {
	img := createInMemoryImage(640, 480, color.White)

	fitted := Fit(img, 1024, 1024)
	bounds := fitted.Bounds()
	if bounds.Dx() != 640 || bounds.Dy() != 480 {
		t.Errorf("dimensions changed: got %dx%d, want 640x480", bounds.Dx(), bounds.Dy())
	}
}

func TestFit_ClampsNonPositiveBox(t *testing.T) {
	img := createInMemoryImage(20, 20, color.White)

	fitted := Fit(img, 0, -5)
	bounds := fitted.Bounds()
	if bounds.Dx() != 1 || bounds.Dy() != 1 {
		t.Errorf("got %dx%d, want 1x1", bounds.Dx(), bounds.Dy())
	}
}

func TestEncodePNG(t *testing.T) {
	img := createInMemoryImage(8, 6, color.RGBA{1, 2, 3, 255})

	encoded, err := EncodePNG(img)
	if err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}
	if encoded.Width != 8 || encoded.Height != 6 {
		t.Errorf("dimensions: got %dx%d, want 8x6", encoded.Width, encoded.Height)
	}
	if encoded.MimeType != "image/png" {
		t.Errorf("mime type: got %q, want image/png", encoded.MimeType)
	}

	data, err := base64.StdEncoding.DecodeString(encoded.ImageBase64)
	if err != nil {
		t.Fatalf("payload is not valid base64: %v", err)
	}
	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("payload is not valid PNG: %v", err)
	}
	if decoded.Bounds() != image.Rect(0, 0, 8, 6) {
		t.Errorf("decoded bounds: got %v", decoded.Bounds())
	}
}

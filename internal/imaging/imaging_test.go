package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func createTestJPEG(w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{255, 0, 0, 255})
		}
	}
	var buf bytes.Buffer
	jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90})
	return buf.Bytes()
}

func createTestPNG(w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{0, 0, 255, 255})
		}
	}
	var buf bytes.Buffer
	png.Encode(&buf, img)
	return buf.Bytes()
}

func TestNormalizeJPEG(t *testing.T) {
	data := createTestJPEG(100, 100)
	result, err := Normalize(data)
	if err != nil {
		t.Fatalf("Normalize JPEG: %v", err)
	}
	if result.MIME != "image/jpeg" {
		t.Errorf("expected image/jpeg, got %s", result.MIME)
	}
	// Small JPEG passes through untouched.
	if !bytes.Equal(result.Data, data) {
		t.Error("expected small JPEG to keep its original bytes")
	}
}

func TestNormalizePNG(t *testing.T) {
	data := createTestPNG(100, 100)
	result, err := Normalize(data)
	if err != nil {
		t.Fatalf("Normalize PNG: %v", err)
	}
	if result.MIME != "image/jpeg" {
		t.Errorf("expected image/jpeg after re-encode, got %s", result.MIME)
	}
}

func TestNormalizeDownscale(t *testing.T) {
	data := createTestJPEG(2048, 2048)
	result, err := Normalize(data)
	if err != nil {
		t.Fatalf("Normalize large image: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(result.Data))
	if err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() > MaxDimension || bounds.Dy() > MaxDimension {
		t.Errorf("expected max %dx%d, got %dx%d", MaxDimension, MaxDimension, bounds.Dx(), bounds.Dy())
	}
}

func TestNormalizeRejectsNonImage(t *testing.T) {
	_, err := Normalize([]byte("definitely not an image"))
	if err == nil {
		t.Error("expected error for non-image data")
	}
}

func TestNormalizePassesThroughGIF(t *testing.T) {
	// Minimal GIF header; sniffed as image/gif, no registered decoder needed.
	data := []byte("GIF89a\x01\x00\x01\x00\x00\x00\x00;")
	result, err := Normalize(data)
	if err != nil {
		t.Fatalf("Normalize GIF: %v", err)
	}
	if result.MIME != "image/gif" {
		t.Errorf("expected image/gif, got %s", result.MIME)
	}
	if !bytes.Equal(result.Data, data) {
		t.Error("expected GIF bytes unchanged")
	}
}

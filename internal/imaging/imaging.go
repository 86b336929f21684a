package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"net/http"
	"strings"

	"golang.org/x/image/draw"
)

// MaxDimension is the maximum width or height for stored images.
const MaxDimension = 1024

// JPEGQuality is the compression quality for JPEG output.
const JPEGQuality = 85

// Result contains the normalized image data and its detected MIME type.
type Result struct {
	Data []byte
	MIME string
}

// Normalize sniffs the real content type from the bytes (never trusting client
// headers) and rejects non-images. JPEG and PNG larger than MaxDimension are
// downscaled and re-encoded as JPEG; other image formats pass through unchanged.
func Normalize(data []byte) (*Result, error) {
	detected := http.DetectContentType(data)
	if !strings.HasPrefix(detected, "image/") {
		return nil, fmt.Errorf("unsupported content type: %s", detected)
	}

	// Only JPEG and PNG have registered decoders; anything else (webp, gif,
	// ...) is stored as-is.
	if detected != "image/jpeg" && detected != "image/png" {
		return &Result{Data: data, MIME: detected}, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	scaled := downscale(img, MaxDimension)
	if scaled == img && detected == "image/jpeg" {
		// Already small enough and already JPEG, keep the original bytes.
		return &Result{Data: data, MIME: detected}, nil
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, scaled, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, fmt.Errorf("encoding JPEG: %w", err)
	}

	return &Result{Data: buf.Bytes(), MIME: "image/jpeg"}, nil
}

// downscale resizes the image so neither dimension exceeds maxDim.
// Uses high-quality Catmull-Rom interpolation.
// Returns the original image if already within bounds.
func downscale(img image.Image, maxDim int) image.Image {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	if w <= maxDim && h <= maxDim {
		return img
	}

	// Calculate new dimensions preserving aspect ratio.
	newW, newH := w, h
	if w > h {
		newW = maxDim
		newH = int(float64(h) * float64(maxDim) / float64(w))
	} else {
		newH = maxDim
		newW = int(float64(w) * float64(maxDim) / float64(h))
	}

	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

func init() {
	// Register decoders (jpeg is registered by default, but be explicit).
	image.RegisterFormat("jpeg", "\xff\xd8", jpeg.Decode, jpeg.DecodeConfig)
	image.RegisterFormat("png", "\x89PNG", png.Decode, png.DecodeConfig)
}

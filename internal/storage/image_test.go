package storage

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 100, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func encodeJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestProcessUploadImageConvertsPNGToJPEG(t *testing.T) {
	src := encodePNG(t, 320, 200)

	data, contentType, size, err := ProcessUploadImage(bytes.NewReader(src), DefaultCoverOptions())
	if err != nil {
		t.Fatalf("ProcessUploadImage failed: %v", err)
	}
	if contentType != "image/jpeg" {
		t.Errorf("expected image/jpeg, got %s", contentType)
	}
	if size != int64(len(data)) {
		t.Errorf("size mismatch: %d vs %d bytes", size, len(data))
	}

	out, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not decodable JPEG: %v", err)
	}
	bounds := out.Bounds()
	if bounds.Dx() != 320 || bounds.Dy() != 200 {
		t.Errorf("small image must not be resized, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestProcessUploadImageDownscalesLargeImage(t *testing.T) {
	src := encodeJPEG(t, 4000, 2000)

	opts := DefaultCoverOptions()
	opts.MaxBytes = 32 * 1024 * 1024
	data, _, _, err := ProcessUploadImage(bytes.NewReader(src), opts)
	if err != nil {
		t.Fatalf("ProcessUploadImage failed: %v", err)
	}

	out, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	bounds := out.Bounds()
	if bounds.Dx() != 1920 {
		t.Errorf("expected width clamped to 1920, got %d", bounds.Dx())
	}
	if bounds.Dy() != 960 {
		t.Errorf("expected aspect preserved (960), got %d", bounds.Dy())
	}
}

func TestProcessUploadImageRejectsOversize(t *testing.T) {
	src := encodePNG(t, 64, 64)
	opts := DefaultCoverOptions()
	opts.MaxBytes = 10 // far below any real PNG

	_, _, _, err := ProcessUploadImage(bytes.NewReader(src), opts)
	if !errors.Is(err, ErrTooLarge) {
		t.Errorf("expected ErrTooLarge, got %v", err)
	}
}

func TestProcessUploadImageRejectsUnsupportedType(t *testing.T) {
	garbage := []byte("GIF89a this is not an allowed format......")
	_, _, _, err := ProcessUploadImage(bytes.NewReader(garbage), DefaultCoverOptions())
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected ErrUnsupported, got %v", err)
	}
}

func TestProcessUploadImageRejectsTruncatedInput(t *testing.T) {
	_, _, _, err := ProcessUploadImage(bytes.NewReader([]byte{0xFF, 0xD8}), DefaultCoverOptions())
	if !errors.Is(err, ErrInvalidImage) {
		t.Errorf("expected ErrInvalidImage, got %v", err)
	}
}

func TestSniffFormat(t *testing.T) {
	tests := []struct {
		name    string
		header  []byte
		want    string
		wantErr error
	}{
		{"jpeg", []byte{0xFF, 0xD8, 0xFF, 0xE0, 0, 0, 0, 0, 0, 0, 0, 0}, "image/jpeg", nil},
		{"png", []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}, "image/png", nil},
		{"webp", []byte{'R', 'I', 'F', 'F', 0, 0, 0, 0, 'W', 'E', 'B', 'P'}, "image/webp", nil},
		{"unknown", []byte("BM..........."), "", ErrUnsupported},
		{"short", []byte{0xFF, 0xD8}, "", ErrInvalidImage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sniffFormat(tt.header)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("sniffFormat error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("sniffFormat = %q, want %q", got, tt.want)
			}
		})
	}
}

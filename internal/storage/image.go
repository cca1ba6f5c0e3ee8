package storage

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/draw"
	"golang.org/x/image/webp"
)

var (
	ErrTooLarge     = errors.New("file too large")
	ErrInvalidImage = errors.New("invalid image")
	ErrUnsupported  = errors.New("unsupported image type")
)

// ImageProcessOptions bound what an upload may cost: bytes read, output
// dimensions, and JPEG quality.
type ImageProcessOptions struct {
	MaxBytes    int64
	MaxDim      int
	JPEGQuality int
}

// DefaultCoverOptions suits article covers and hero/service imagery.
func DefaultCoverOptions() ImageProcessOptions {
	return ImageProcessOptions{
		MaxBytes:    8 << 20,
		MaxDim:      1920,
		JPEGQuality: 85,
	}
}

var (
	jpegMagic = []byte{0xFF, 0xD8, 0xFF}
	pngMagic  = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}
)

// sniffFormat identifies the upload by magic bytes; file extensions and
// declared content types are not trusted.
func sniffFormat(data []byte) (string, error) {
	if len(data) < 12 {
		return "", ErrInvalidImage
	}
	switch {
	case bytes.HasPrefix(data, jpegMagic):
		return "image/jpeg", nil
	case bytes.HasPrefix(data, pngMagic):
		return "image/png", nil
	case bytes.HasPrefix(data, []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP")):
		return "image/webp", nil
	}
	return "", ErrUnsupported
}

func decodeImage(data []byte, format string) (image.Image, error) {
	switch format {
	case "image/jpeg":
		return jpeg.Decode(bytes.NewReader(data))
	case "image/png":
		return png.Decode(bytes.NewReader(data))
	case "image/webp":
		return webp.Decode(bytes.NewReader(data))
	}
	return nil, ErrUnsupported
}

// fitWithin shrinks (w, h) so the long edge is at most max, preserving aspect
// ratio. Never upscales.
func fitWithin(w, h, max int) (int, int) {
	if w <= max && h <= max {
		return w, h
	}
	if w >= h {
		if h = h * max / w; h < 1 {
			h = 1
		}
		return max, h
	}
	if w = w * max / h; w < 1 {
		w = 1
	}
	return w, max
}

// ProcessUploadImage validates an uploaded image and re-encodes it as a
// bounded JPEG, returning the bytes, content type and size. Transparency is
// flattened onto white.
func ProcessUploadImage(r io.Reader, opts ImageProcessOptions) ([]byte, string, int64, error) {
	if opts.MaxBytes <= 0 {
		opts.MaxBytes = 8 << 20
	}
	if opts.MaxDim <= 0 {
		opts.MaxDim = 1920
	}
	if opts.JPEGQuality <= 0 || opts.JPEGQuality > 100 {
		opts.JPEGQuality = 85
	}

	data, err := io.ReadAll(io.LimitReader(r, opts.MaxBytes+1))
	if err != nil {
		return nil, "", 0, err
	}
	if int64(len(data)) > opts.MaxBytes {
		return nil, "", 0, ErrTooLarge
	}

	format, err := sniffFormat(data)
	if err != nil {
		return nil, "", 0, err
	}
	src, err := decodeImage(data, format)
	if err != nil {
		return nil, "", 0, fmt.Errorf("decode: %w", err)
	}

	bounds := src.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, "", 0, ErrInvalidImage
	}
	tw, th := fitWithin(bounds.Dx(), bounds.Dy(), opts.MaxDim)

	dst := image.NewRGBA(image.Rect(0, 0, tw, th))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	var out bytes.Buffer
	if err := jpeg.Encode(&out, dst, &jpeg.Options{Quality: opts.JPEGQuality}); err != nil {
		return nil, "", 0, fmt.Errorf("encode: %w", err)
	}
	return out.Bytes(), "image/jpeg", int64(out.Len()), nil
}

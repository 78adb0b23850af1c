// Package importer loads source and reference images for puzzle generation.
// PNG, JPEG and GIF come from the standard decoders; BMP, TIFF and WebP are
// registered from golang.org/x/image.
package importer

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// SupportedExtensions lists the file extensions offered in open dialogs.
var SupportedExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp"}

// IsSupported reports whether path has one of the SupportedExtensions.
func IsSupported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range SupportedExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// ImageInfo describes a decoded image.
type ImageInfo struct {
	Path   string
	Format string
	Width  int
	Height int
}

// Decode reads an image from r.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, format, fmt.Errorf("image has no pixels (%dx%d)", b.Dx(), b.Dy())
	}
	return img, format, nil
}

// LoadImage opens and decodes the image at path. It blocks until the whole
// file is decoded.
func LoadImage(path string) (image.Image, ImageInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ImageInfo{}, fmt.Errorf("failed to read image file: %w", err)
	}
	img, format, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, ImageInfo{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	b := img.Bounds()
	return img, ImageInfo{Path: path, Format: format, Width: b.Dx(), Height: b.Dy()}, nil
}

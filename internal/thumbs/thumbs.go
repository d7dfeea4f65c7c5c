// Package thumbs maintains a JPEG thumbnail cache for catalog images.
package thumbs

import (
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
)

const jpegQuality = 85

// Ensure returns the cached thumbnail path for an image, rendering it
// when the cache entry is missing or older than the source file.
// Thumbnails are named <stem>_<width>px.jpg inside cacheDir.
func Ensure(imagePath, cacheDir string, maxWidth int) (string, error) {
	if maxWidth < 1 {
		return "", fmt.Errorf("thumbnail width must be >= 1, got %d", maxWidth)
	}
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return "", fmt.Errorf("create thumbnail dir: %w", err)
	}

	base := filepath.Base(imagePath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	thumbPath := filepath.Join(cacheDir, fmt.Sprintf("%s_%dpx.jpg", stem, maxWidth))

	srcInfo, err := os.Stat(imagePath)
	if err != nil {
		return "", fmt.Errorf("stat source image: %w", err)
	}
	if thumbInfo, err := os.Stat(thumbPath); err == nil && !thumbInfo.ModTime().Before(srcInfo.ModTime()) {
		return thumbPath, nil
	}

	if err := render(imagePath, thumbPath, maxWidth); err != nil {
		return "", err
	}
	return thumbPath, nil
}

// render decodes the source, scales it down to maxWidth when wider, and
// encodes the result as JPEG. Images at or below maxWidth keep their size.
func render(imagePath, thumbPath string, maxWidth int) error {
	src, err := decodeImage(imagePath)
	if err != nil {
		return err
	}

	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	dstWidth, dstHeight := width, height
	if width > maxWidth {
		ratio := float64(maxWidth) / float64(width)
		dstWidth = maxWidth
		dstHeight = int(float64(height) * ratio)
		if dstHeight < 1 {
			dstHeight = 1
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, dstWidth, dstHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)

	out, err := os.Create(thumbPath)
	if err != nil {
		return fmt.Errorf("create thumbnail: %w", err)
	}
	if err := jpeg.Encode(out, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		out.Close()
		return fmt.Errorf("encode thumbnail: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close thumbnail: %w", err)
	}
	return nil
}

func decodeImage(imagePath string) (image.Image, error) {
	file, err := os.Open(imagePath)
	if err != nil {
		return nil, fmt.Errorf("open source image: %w", err)
	}
	defer file.Close()

	src, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(imagePath), err)
	}
	return src, nil
}

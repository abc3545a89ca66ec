package imaging

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// PNGWriter buffers pixels in memory and writes <dir>/<name>.png on Flush
type PNGWriter struct {
	dir  string
	name string
	img  *image.RGBA
}

// NewPNGWriter creates a width×height image sink
func NewPNGWriter(dir, name string, width, height int) *PNGWriter {
	return &PNGWriter{
		dir:  dir,
		name: name,
		img:  image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// Width returns the image width in pixels
func (w *PNGWriter) Width() int {
	return w.img.Bounds().Dx()
}

// Height returns the image height in pixels
func (w *PNGWriter) Height() int {
	return w.img.Bounds().Dy()
}

// WritePixel stores c at (x, y), clamping each channel to 0..255
func (w *PNGWriter) WritePixel(x, y int, c core.Color) {
	w.img.SetRGBA(x, y, c.ToRGBA())
}

// Path returns the file Flush writes to
func (w *PNGWriter) Path() string {
	return filepath.Join(w.dir, w.name+".png")
}

// Image returns the in-memory image
func (w *PNGWriter) Image() *image.RGBA {
	return w.img
}

// Flush encodes the image, creating the output directory if needed
func (w *PNGWriter) Flush() error {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(w.Path())
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}

	if err := png.Encode(file, w.img); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return file.Close()
}

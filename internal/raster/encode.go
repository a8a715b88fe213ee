package raster

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// Format selects the output image encoding.
type Format string

const (
	FormatPNG  Format = "png"
	FormatWebP Format = "webp"
	FormatTGA  Format = "tga"
)

// ParseFormat validates a format name from config or flags.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatPNG, FormatWebP, FormatTGA:
		return f, nil
	default:
		return "", fmt.Errorf("unknown image format %q (png, webp, tga)", s)
	}
}

// Ext returns the format's file extension including the leading dot.
func (f Format) Ext() string {
	return "." + string(f)
}

// Encode writes img to w in the selected format.
func (f Format) Encode(w io.Writer, img image.Image) error {
	switch f {
	case FormatWebP:
		return nativewebp.Encode(w, img, nil)
	case FormatTGA:
		return tga.Encode(w, img)
	default:
		return png.Encode(w, img)
	}
}

// EncodeFile writes img to path in the selected format, creating the parent
// directory when missing.
func EncodeFile(path string, img image.Image, f Format) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer out.Close()

	if err := f.Encode(out, img); err != nil {
		return fmt.Errorf("encoding %s: %w", f, err)
	}
	return nil
}

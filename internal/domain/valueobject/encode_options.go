package valueobject

import (
	"fmt"
	"strings"
)

const (
	CompressionNone    = "none"
	CompressionDeflate = "deflate"
)

// ParseCompression normalizes a tiff compression name. Empty means none.
func ParseCompression(s string) (string, error) {
	switch c := strings.ToLower(s); c {
	case "", CompressionNone:
		return CompressionNone, nil
	case CompressionDeflate:
		return c, nil
	default:
		return "", fmt.Errorf("unsupported tiff compression %q", s)
	}
}

type EncodeOptions struct {
	// Quality applies to jpeg and lossy webp, 1-100.
	Quality int `yaml:"quality"`
	// CompressionLevel applies to png, 1 (fastest) to 9 (smallest). 0 keeps
	// the encoder default.
	CompressionLevel int  `yaml:"compressionLevel"`
	Lossless         bool `yaml:"lossless"`
	// Compression applies to tiff: none or deflate.
	Compression string `yaml:"compression"`
}

type OptimizeOptions struct {
	JPEG EncodeOptions `yaml:"jpeg"`
	PNG  EncodeOptions `yaml:"png"`
	WebP EncodeOptions `yaml:"webp"`
	TIFF EncodeOptions `yaml:"tiff"`
}

func (o OptimizeOptions) For(f ImageFormat) EncodeOptions {
	switch f {
	case FormatJPEG:
		return o.JPEG
	case FormatPNG:
		return o.PNG
	case FormatWebP:
		return o.WebP
	case FormatTIFF:
		return o.TIFF
	default:
		return EncodeOptions{}
	}
}

func DefaultOptimizeOptions() OptimizeOptions {
	return OptimizeOptions{
		JPEG: EncodeOptions{Quality: 85},
		PNG:  EncodeOptions{CompressionLevel: 6},
		WebP: EncodeOptions{Quality: 80},
		TIFF: EncodeOptions{Compression: CompressionDeflate},
	}
}

package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"golang.org/x/image/tiff"

	"github.com/marcos-nsantos/asset-store/internal/adapter/storage"
	"github.com/marcos-nsantos/asset-store/internal/domain"
	"github.com/marcos-nsantos/asset-store/internal/domain/valueobject"
)

const (
	JPEGQuality = 85
	WebPQuality = 80
)

type ImageProcessor struct {
	filter     imaging.ResampleFilter
	background color.Color
}

func NewImageProcessor() *ImageProcessor {
	return &ImageProcessor{
		filter:     imaging.Lanczos,
		background: color.Black,
	}
}

// Transform decodes data, optionally applies EXIF orientation and a resize,
// then encodes into the requested format.
func (p *ImageProcessor) Transform(data []byte, req storage.TransformRequest) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(req.AutoOrient))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	img = p.resize(img, req.Resize)

	var buf bytes.Buffer
	if err := encode(&buf, img, req.Format, req.Encode); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (p *ImageProcessor) resize(img image.Image, opts valueobject.ResizeOptions) image.Image {
	if opts.IsZero() {
		return img
	}

	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	w, h := max(opts.Width, 0), max(opts.Height, 0)

	if opts.WithoutEnlargement && (w == 0 || srcW <= w) && (h == 0 || srcH <= h) {
		return img
	}

	// One dimension given keeps the aspect ratio whatever the fit.
	if w == 0 || h == 0 {
		return imaging.Resize(img, w, h, p.filter)
	}

	scaleW := float64(w) / float64(srcW)
	scaleH := float64(h) / float64(srcH)

	// Without enlargement the scale factor never exceeds 1.
	clamp := func(f float64) float64 {
		if opts.WithoutEnlargement {
			return math.Min(f, 1)
		}
		return f
	}

	switch opts.Fit {
	case valueobject.FitFill:
		if opts.WithoutEnlargement {
			w, h = min(w, srcW), min(h, srcH)
		}
		return imaging.Resize(img, w, h, p.filter)
	case valueobject.FitInside:
		return p.scale(img, clamp(math.Min(scaleW, scaleH)))
	case valueobject.FitOutside:
		return p.scale(img, clamp(math.Max(scaleW, scaleH)))
	case valueobject.FitContain:
		scaled := p.scale(img, clamp(math.Min(scaleW, scaleH)))
		return imaging.PasteCenter(imaging.New(w, h, p.background), scaled)
	default:
		if opts.WithoutEnlargement {
			scaled := p.scale(img, clamp(math.Max(scaleW, scaleH)))
			sb := scaled.Bounds()
			return imaging.CropCenter(scaled, min(w, sb.Dx()), min(h, sb.Dy()))
		}
		return imaging.Fill(img, w, h, imaging.Center, p.filter)
	}
}

func (p *ImageProcessor) scale(img image.Image, factor float64) image.Image {
	bounds := img.Bounds()
	w := max(1, int(math.Round(float64(bounds.Dx())*factor)))
	h := max(1, int(math.Round(float64(bounds.Dy())*factor)))
	return imaging.Resize(img, w, h, p.filter)
}

func encode(w io.Writer, img image.Image, format valueobject.ImageFormat, opts valueobject.EncodeOptions) error {
	var err error
	switch format {
	case valueobject.FormatJPEG:
		err = imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(quality(opts.Quality, JPEGQuality)))
	case valueobject.FormatPNG:
		err = imaging.Encode(w, img, imaging.PNG, imaging.PNGCompressionLevel(pngLevel(opts.CompressionLevel)))
	case valueobject.FormatWebP:
		err = webp.Encode(w, img, &webp.Options{
			Lossless: opts.Lossless,
			Quality:  float32(quality(opts.Quality, WebPQuality)),
		})
	case valueobject.FormatTIFF:
		err = tiff.Encode(w, img, tiffOptions(opts.Compression))
	default:
		return fmt.Errorf("encoding %s: %w", format, domain.ErrUnsupportedFormat)
	}
	if err != nil {
		return fmt.Errorf("encoding %s: %w", format, err)
	}
	return nil
}

func quality(q, fallback int) int {
	if q <= 0 {
		return fallback
	}
	return min(q, 100)
}

func pngLevel(level int) png.CompressionLevel {
	switch {
	case level <= 0:
		return png.DefaultCompression
	case level <= 3:
		return png.BestSpeed
	case level <= 6:
		return png.DefaultCompression
	default:
		return png.BestCompression
	}
}

func tiffOptions(compression string) *tiff.Options {
	switch strings.ToLower(compression) {
	case valueobject.CompressionDeflate:
		return &tiff.Options{Compression: tiff.Deflate, Predictor: true}
	default:
		return &tiff.Options{Compression: tiff.Uncompressed}
	}
}

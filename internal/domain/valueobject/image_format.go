package valueobject

import "strings"

type ImageFormat int

const (
	FormatOtherImage ImageFormat = iota
	FormatJPEG
	FormatPNG
	FormatWebP
	FormatTIFF
)

type formatInfo struct {
	name        string
	contentType string
}

var formats = map[ImageFormat]formatInfo{
	FormatJPEG:       {name: "jpeg", contentType: "image/jpeg"},
	FormatPNG:        {name: "png", contentType: "image/png"},
	FormatWebP:       {name: "webp", contentType: "image/webp"},
	FormatTIFF:       {name: "tiff", contentType: "image/tiff"},
	FormatOtherImage: {name: "other", contentType: "application/octet-stream"},
}

func FormatOf(ext string) ImageFormat {
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg":
		return FormatJPEG
	case ".png":
		return FormatPNG
	case ".webp":
		return FormatWebP
	case ".tiff":
		return FormatTIFF
	default:
		return FormatOtherImage
	}
}

// Encodable reports whether the codec can re-encode into this format.
func (f ImageFormat) Encodable() bool {
	return f != FormatOtherImage
}

func (f ImageFormat) ContentType() string {
	return formats[f].contentType
}

func (f ImageFormat) String() string {
	return formats[f].name
}

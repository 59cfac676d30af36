package valueobject

import "strings"

type Category string

const (
	CategoryImage Category = "image"
	CategoryIcon  Category = "icon"
	CategoryFile  Category = "file"
)

func CategoryOf(ext string) Category {
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg", ".png", ".webp", ".tiff":
		return CategoryImage
	case ".svg":
		return CategoryIcon
	default:
		return CategoryFile
	}
}

// Dir is the top-level bucket directory for the category, e.g. "images".
func (c Category) Dir() string {
	return string(c) + "s"
}

func (c Category) String() string {
	return string(c)
}

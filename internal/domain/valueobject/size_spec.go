package valueobject

import (
	"fmt"
	"strings"
)

type Fit string

const (
	FitCover   Fit = "cover"
	FitContain Fit = "contain"
	FitFill    Fit = "fill"
	FitInside  Fit = "inside"
	FitOutside Fit = "outside"
)

func ParseFit(s string) (Fit, error) {
	switch f := Fit(strings.ToLower(s)); f {
	case "":
		return FitCover, nil
	case FitCover, FitContain, FitFill, FitInside, FitOutside:
		return f, nil
	default:
		return "", fmt.Errorf("unknown fit %q", s)
	}
}

// ResizeOptions with zero Width and Height means no resize.
type ResizeOptions struct {
	Width              int  `yaml:"width"`
	Height             int  `yaml:"height"`
	Fit                Fit  `yaml:"fit"`
	WithoutEnlargement bool `yaml:"withoutEnlargement"`
}

func (r ResizeOptions) IsZero() bool {
	return r.Width <= 0 && r.Height <= 0
}

type SizeSpec struct {
	Name         string        `yaml:"name"`
	Resize       ResizeOptions `yaml:"resizeOptions"`
	GenerateWebp bool          `yaml:"generateWebp"`
}
